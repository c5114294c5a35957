package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
)

// BudgetService manages budget requests. Clients may open a request for
// themselves; only admins move it out of PENDING, which notifies the owner.
type BudgetService struct {
	repo     ports.BudgetRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewBudgetService(repo ports.BudgetRepository, notifier ports.Notifier, logger zerolog.Logger) *BudgetService {
	return &BudgetService{repo: repo, notifier: notifier, logger: logger}
}

func (s *BudgetService) Request(ctx context.Context, actor *domain.User, input ports.CreateBudgetInput) (*domain.Budget, error) {
	clientID := input.ClientID
	if !actor.IsAdmin() {
		// Clients can only open budgets for themselves.
		clientID = actor.ID
	}
	if clientID == "" || input.Title == "" || input.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Budget{
		ClientID:  clientID,
		ProjectID: input.ProjectID,
		Title:     input.Title,
		Amount:    input.Amount,
		Status:    domain.BudgetPending,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("budget_id", created.ID).Str("client_id", clientID).Msg("budget requested")
	return created, nil
}

func (s *BudgetService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Budget, error) {
	budget, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(budget.ClientID) {
		return nil, domain.ErrForbidden
	}
	return budget, nil
}

func (s *BudgetService) List(ctx context.Context, actor *domain.User, requestedOwner string) ([]domain.Budget, error) {
	return s.repo.List(ctx, actor.ScopeOwner(requestedOwner))
}

// SetStatus approves or rejects a budget and notifies the owning client.
func (s *BudgetService) SetStatus(ctx context.Context, id string, status domain.BudgetStatus, notes string) (*domain.Budget, error) {
	if !domain.ValidBudgetStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	budget, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	budget.Status = status
	if notes != "" {
		budget.Notes = notes
	}
	budget.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, budget); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Notify(ports.NotificationInput{
			RecipientID: budget.ClientID,
			Kind:        domain.NotifyBudgetUpdated,
			Message:     fmt.Sprintf("Budget %q is now %s.", budget.Title, budget.Status),
		})
	}
	return budget, nil
}

func (s *BudgetService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
