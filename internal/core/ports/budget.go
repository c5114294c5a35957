package ports

import (
	"context"

	"github.com/obrasys/backoffice/internal/core/domain"
)

type BudgetRepository interface {
	Create(ctx context.Context, b *domain.Budget) (*domain.Budget, error)
	FindByID(ctx context.Context, id string) (*domain.Budget, error)
	List(ctx context.Context, ownerID string) ([]domain.Budget, error)
	Update(ctx context.Context, b *domain.Budget) error
	Delete(ctx context.Context, id string) error
	SumByStatus(ctx context.Context, ownerID string) (map[domain.BudgetStatus]float64, error)
}

type CreateBudgetInput struct {
	ClientID  string
	ProjectID string
	Title     string
	Amount    float64
	Notes     string
}

// BudgetService: clients request budgets for themselves (always PENDING);
// only admins move the status, which notifies the owning client.
type BudgetService interface {
	Request(ctx context.Context, actor *domain.User, input CreateBudgetInput) (*domain.Budget, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Budget, error)
	List(ctx context.Context, actor *domain.User, requestedOwner string) ([]domain.Budget, error)
	SetStatus(ctx context.Context, id string, status domain.BudgetStatus, notes string) (*domain.Budget, error)
	Delete(ctx context.Context, id string) error
}
