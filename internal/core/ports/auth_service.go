package ports

import (
	"context"

	"github.com/obrasys/backoffice/internal/core/domain"
)

// RegisterInput is a self-service client signup. Accounts created this way
// start inactive and wait for admin approval.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Document string
	Phone    string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// Guard converts a raw bearer credential into an authorization decision:
// the resolved user on allow, or one of the domain auth errors on deny.
type Guard interface {
	Resolve(ctx context.Context, rawToken string) (*domain.User, error)
}
