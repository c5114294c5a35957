package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
)

// InvoiceService manages billing. Writes are admin-only; creating an
// invoice notifies the billed client.
type InvoiceService struct {
	repo     ports.InvoiceRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewInvoiceService(repo ports.InvoiceRepository, notifier ports.Notifier, logger zerolog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, notifier: notifier, logger: logger}
}

func (s *InvoiceService) Create(ctx context.Context, input ports.CreateInvoiceInput) (*domain.Invoice, error) {
	if input.ClientID == "" || input.Number == "" || input.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Invoice{
		ClientID:  input.ClientID,
		ProjectID: input.ProjectID,
		Number:    input.Number,
		Amount:    input.Amount,
		Status:    domain.InvoiceOpen,
		DueAt:     input.DueAt,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Notify(ports.NotificationInput{
			RecipientID: created.ClientID,
			Kind:        domain.NotifyInvoiceCreated,
			Message:     fmt.Sprintf("Invoice %s for %.2f is due %s.", created.Number, created.Amount, created.DueAt.Format("2006-01-02")),
		})
	}

	s.logger.Info().Str("invoice_id", created.ID).Str("client_id", created.ClientID).Msg("invoice created")
	return created, nil
}

func (s *InvoiceService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(invoice.ClientID) {
		return nil, domain.ErrForbidden
	}
	return invoice, nil
}

func (s *InvoiceService) List(ctx context.Context, actor *domain.User, requestedOwner string) ([]domain.Invoice, error) {
	return s.repo.List(ctx, actor.ScopeOwner(requestedOwner))
}

func (s *InvoiceService) MarkPaid(ctx context.Context, id string) (*domain.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	invoice.Status = domain.InvoicePaid
	invoice.PaidAt = now
	invoice.UpdatedAt = now

	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
