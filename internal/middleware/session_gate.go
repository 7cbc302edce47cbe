package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"healthfit/internal/auth"
)

const (
	homePath  = "/"
	loginPath = "/login"
)

var authPages = map[string]bool{
	"/login":  true,
	"/signup": true,
}

// GateRedirect decides where a page request must be sent, or "" to let it
// through. It only looks at whether a token value is present; validity is
// checked by the API guard, never here.
func GateRedirect(path, token string) string {
	isAuthPage := authPages[path]
	switch {
	case isAuthPage && token != "":
		return homePath
	case !isAuthPage && token == "":
		return loginPath
	default:
		return ""
	}
}

// SessionGate redirects page requests based on presence of the session cookie.
// Signed-in users are kept away from login/signup and anonymous users are
// sent to login. An expired or forged cookie still passes.
func SessionGate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string
			if cookie, err := c.Cookie(auth.CookieName); err == nil {
				token = cookie.Value
			}
			if target := GateRedirect(c.Request().URL.Path, token); target != "" {
				return c.Redirect(http.StatusFound, target)
			}
			return next(c)
		}
	}
}
