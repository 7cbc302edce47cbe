package handler

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"healthfit/internal/auth"
	apperrors "healthfit/internal/errors"
	"healthfit/internal/logging"
)

// ClaimsContextKey is where the guard stores the verified *auth.Claims.
const ClaimsContextKey = "claims"

// SessionGuard verifies the session cookie on every protected route. A
// missing cookie and a bad token produce the same 401.
func SessionGuard(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + auth.CookieName,
		ContextKey:  ClaimsContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.Verify(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.Unauthorized().Echo()
		},
	})
}

// Authenticated hands the verified user id to fn. It must run behind
// SessionGuard.
func Authenticated(fn func(c echo.Context, userID string) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(ClaimsContextKey).(*auth.Claims)
		if !ok || claims.UserID == "" {
			return apperrors.Unauthorized().Echo()
		}
		return fn(c, claims.UserID)
	}
}

// normalizer is implemented by requests that clean up their fields after
// binding and before validation.
type normalizer interface {
	normalize()
}

// bindAndValidate decodes the JSON body into req, normalizes it and runs its
// validate tags.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		msg := "invalid request body"
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusBadRequest {
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}
		return apperrors.BadRequest(msg, "INVALID_REQUEST").Echo()
	}
	if n, ok := req.(normalizer); ok {
		n.normalize()
	}
	if err := c.Validate(req); err != nil {
		return fail(c, err)
	}
	return nil
}

// fail maps a domain error to its HTTP response. Server-side failures are
// logged with the request id before the message is passed to the client.
func fail(c echo.Context, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	if he.StatusCode >= http.StatusInternalServerError {
		logging.Error().
			Err(err).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Str("route", c.Path()).
			Msg("request failed")
	}
	return he.Echo()
}
