package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"healthfit/internal/errors"
)

// RateLimitByIP limits requests per client IP within window. A limit of zero
// or less disables limiting.
func RateLimitByIP(limit int, window time.Duration) echo.MiddlewareFunc {
	if limit <= 0 || window <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return echo.WrapMiddleware(httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(writeTooManyRequests),
	))
}

func writeTooManyRequests(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(errors.ErrorResponse{
		Error: "Too many requests, try again later",
		Code:  "RATE_LIMITED",
	})
}
