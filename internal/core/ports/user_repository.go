package ports

import (
	"context"

	"github.com/obrasys/backoffice/internal/core/domain"
)

// UserRepository defines user persistence. The access guard only ever reads
// through FindByID; mutations happen in the user/auth services.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, pendingOnly bool) ([]domain.User, error)
	SetActive(ctx context.Context, id string, active bool) error
	SetRole(ctx context.Context, id string, role string) error
}

// UserCache is a bounded, TTL'd cache keyed by subject id sitting in front
// of the guard's user lookup. It is never authoritative: a miss or error
// simply falls through to the repository. Entries must be invalidated on
// any role/active mutation.
type UserCache interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	Invalidate(ctx context.Context, id string) error
}
