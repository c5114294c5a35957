package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/obrasys/backoffice/internal/api/middleware"
	"github.com/obrasys/backoffice/internal/core/domain"
)

// currentUser extracts the authenticated user injected by the Authenticate
// middleware. Absence means the route was wired without the middleware,
// which is a programming error surfaced as a plain 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return user, nil
}
