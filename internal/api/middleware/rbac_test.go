package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/obrasys/backoffice/internal/core/domain"
)

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	c := newContext(t, "")
	c.Set(UserContextKey, &domain.User{ID: "a1", Role: domain.RoleAdmin, Active: true})

	called := false
	handler := RequireAdmin()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireAdmin_RejectsClient(t *testing.T) {
	c := newContext(t, "")
	c.Set(UserContextKey, &domain.User{ID: "c1", Role: domain.RoleClient, Active: true})

	handler := RequireAdmin()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireAdmin_RejectsMissingUser(t *testing.T) {
	handler := RequireAdmin()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(newContext(t, "")); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
