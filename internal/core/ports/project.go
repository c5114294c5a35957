package ports

import (
	"context"

	"github.com/obrasys/backoffice/internal/core/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, ownerID string) ([]domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, ownerID string) (int64, error)
	AverageProgress(ctx context.Context, ownerID string) (float64, error)
}

type CreateProjectInput struct {
	ClientID    string
	Name        string
	Description string
	Address     string
	StartsAt    string // RFC 3339 date, optional
	EndsAt      string
}

type UpdateProjectInput struct {
	Name        string
	Description string
	Address     string
	Status      string
	Progress    int
}

// ProjectService: creation and mutation are admin-only; reads are
// ownership-checked by the caller via the acting user.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Project, error)
	List(ctx context.Context, actor *domain.User, requestedOwner string) ([]domain.Project, error)
	Update(ctx context.Context, id string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
