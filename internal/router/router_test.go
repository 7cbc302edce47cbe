package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthfit/internal/auth"
	"healthfit/internal/config"
	"healthfit/internal/handler"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	webDir := t.TempDir()
	for _, page := range []string{"index.html", "login.html", "signup.html", "profile.html"} {
		require.NoError(t, os.WriteFile(filepath.Join(webDir, page), []byte("<html>"+page+"</html>"), 0o600))
	}

	cfg := &config.Config{
		Server: config.ServerConfig{WebDir: webDir, SwaggerHost: "api.healthfit.test"},
		Auth:   config.AuthConfig{LoginRateLimit: 0, LoginRateWindow: time.Minute},
	}
	jwtService := auth.NewJWTService("router-secret")

	e := New()
	Register(e, cfg, jwtService, Handlers{
		Auth:    handler.NewAuthHandler(nil, jwtService, false),
		Profile: handler.NewProfileHandler(nil),
		Health:  handler.NewHealthHandler(nil, nil, nil),
	})
	return e
}

func serve(e *echo.Echo, method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	e := newTestRouter(t)
	serve(e, http.MethodGet, "/healthz", nil)

	rec := serve(e, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthfit_api_requests_total")
}

func TestSwaggerDocUsesConfiguredHost(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"host": "api.healthfit.test"`)
}

func TestProtectedRoutesNeedSession(t *testing.T) {
	e := newTestRouter(t)
	for _, path := range []string{"/api/profile", "/api/health-activity/activities", "/api/health-activity/sleep"} {
		rec := serve(e, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.JSONEq(t, `{"error":"Unauthorized","code":"UNAUTHORIZED"}`, rec.Body.String())
	}
}

func TestLogoutNeedsNoSession(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPagesAreGated(t *testing.T) {
	e := newTestRouter(t)
	session := &http.Cookie{Name: auth.CookieName, Value: "anything"}

	tests := []struct {
		name         string
		path         string
		cookie       *http.Cookie
		wantCode     int
		wantLocation string
		wantBody     string
	}{
		{"anonymous home", "/", nil, http.StatusFound, "/login", ""},
		{"anonymous profile subpage", "/profile/edit", nil, http.StatusFound, "/login", ""},
		{"anonymous login page", "/login", nil, http.StatusOK, "", "login.html"},
		{"signed in signup page", "/signup", session, http.StatusFound, "/", ""},
		{"signed in profile page", "/profile", session, http.StatusOK, "", "profile.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, http.MethodGet, tt.path, tt.cookie)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestUnknownRouteUsesErrorBody(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found","code":"NOT_FOUND"}`, rec.Body.String())
}
