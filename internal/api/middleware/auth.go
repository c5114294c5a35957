package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/obrasys/backoffice/internal/api/metrics"
	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
)

// UserContextKey is where Authenticate stores the resolved *domain.User.
const UserContextKey = "auth.user"

// Authenticate extracts the bearer token, resolves it through the access
// guard, and injects the resulting user into the request context. An absent
// or malformed Authorization header is treated exactly like a missing
// credential; the error handler maps the guard's sentinels to 401/403.
func Authenticate(guard ports.Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := guard.Resolve(c.Request().Context(), bearerToken(c))
			if err != nil {
				metrics.AuthDecisionsTotal.WithLabelValues(outcomeLabel(err)).Inc()
				return err
			}

			metrics.AuthDecisionsTotal.WithLabelValues("allowed").Inc()
			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// bearerToken returns the raw token from the Authorization header, or ""
// when the header is absent or not a bearer scheme.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "unauthenticated"
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, domain.ErrAccountPending):
		return "pending"
	default:
		return "error"
	}
}
