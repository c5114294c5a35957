package ports

import (
	"context"

	"github.com/obrasys/backoffice/internal/core/domain"
)

// CreateUserInput is an admin-created account; it is active immediately.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Document string
	Phone    string
}

// UserService covers the admin-side account management operations. Every
// mutation that touches role or active must invalidate the guard cache
// entry for that user.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, pendingOnly bool) ([]domain.User, error)
	Approve(ctx context.Context, id string) (*domain.User, error)
	Promote(ctx context.Context, id string) (*domain.User, error)
	Deactivate(ctx context.Context, id string) (*domain.User, error)
}
