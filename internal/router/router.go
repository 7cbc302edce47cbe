package router

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"healthfit/docs"
	"healthfit/internal/auth"
	"healthfit/internal/codec"
	"healthfit/internal/config"
	apperrors "healthfit/internal/errors"
	"healthfit/internal/handler"
	"healthfit/internal/logging"
	"healthfit/internal/middleware"
	"healthfit/internal/validation"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth    *handler.AuthHandler
	Profile *handler.ProfileHandler
	Health  *handler.HealthHandler
}

// New returns an echo instance with the JSON codec, validator and error
// rendering used across the API.
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = codec.JSONSerializer{}
	e.Validator = validation.New()
	e.HTTPErrorHandler = errorHandler(e)
	return e
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, jwtService *auth.JWTService, h Handlers) {
	e.Use(echomw.RequestID())
	e.Use(logging.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(middleware.Metrics())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	docs.SwaggerInfo.Host = cfg.Server.SwaggerHost
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	limit := middleware.RateLimitByIP(cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow)
	api.POST("/auth/signup", h.Auth.Signup, limit)
	api.POST("/auth/login", h.Auth.Login, limit)
	api.POST("/auth/logout", h.Auth.Logout)

	guard := handler.SessionGuard(jwtService)

	profile := api.Group("/profile", guard)
	profile.GET("", handler.Authenticated(h.Profile.GetProfile))
	profile.PUT("", handler.Authenticated(h.Profile.UpdateProfile))

	health := api.Group("/health-activity", guard)
	health.POST("/activities", handler.Authenticated(h.Health.LogActivity))
	health.GET("/activities", handler.Authenticated(h.Health.ListActivities))
	health.POST("/nutrition", handler.Authenticated(h.Health.LogNutrition))
	health.GET("/nutrition", handler.Authenticated(h.Health.ListNutrition))
	health.POST("/sleep", handler.Authenticated(h.Health.LogSleep))
	health.GET("/sleep", handler.Authenticated(h.Health.ListSleep))

	registerPages(e, cfg.Server.WebDir)
}

// registerPages serves the page shells. Each page route carries the session
// gate itself; a gated group would also catch unmatched paths.
func registerPages(e *echo.Echo, webDir string) {
	pages := map[string]string{
		"/":          "index.html",
		"/login":     "login.html",
		"/signup":    "signup.html",
		"/profile":   "profile.html",
		"/profile/*": "profile.html",
	}
	for path, file := range pages {
		e.GET(path, serveFile(filepath.Join(webDir, file)), middleware.SessionGate())
	}
	e.Static("/static", filepath.Join(webDir, "static"))
}

func serveFile(path string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.File(path)
	}
}

// errorHandler renders echo's own errors (unknown route, bad method, panics
// recovered as 500) with the same body as API errors.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			err = apperrors.MapErrorToHTTP(err).Echo()
		} else if msg, ok := he.Message.(string); ok {
			err = apperrors.NewHTTPError(he.Code, msg, codeFor(he.Code)).Echo()
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

func codeFor(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusBadRequest:
		return "INVALID_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	default:
		return "INTERNAL_ERROR"
	}
}
