package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireSession lets the request through only when its session carries a
// user; otherwise it redirects to redirectTo.
func RequireSession(redirectTo string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := UserFromContext(c.Request().Context()); !ok {
				return c.Redirect(http.StatusFound, redirectTo)
			}
			return next(c)
		}
	}
}
