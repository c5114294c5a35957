package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/obrasys/backoffice/internal/core/domain"
)

// RequireAdmin rejects any request whose authenticated user is not an
// administrator. Must run after Authenticate.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*domain.User)
			if !ok || !user.IsAdmin() {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
