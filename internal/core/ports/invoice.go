package ports

import (
	"context"
	"time"

	"github.com/obrasys/backoffice/internal/core/domain"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context, ownerID string) ([]domain.Invoice, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	Delete(ctx context.Context, id string) error
	SumByStatus(ctx context.Context, ownerID string) (map[domain.InvoiceStatus]float64, error)
}

type CreateInvoiceInput struct {
	ClientID  string
	ProjectID string
	Number    string
	Amount    float64
	DueAt     time.Time
}

// InvoiceService: writes are admin-only; creation notifies the client.
type InvoiceService interface {
	Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Invoice, error)
	List(ctx context.Context, actor *domain.User, requestedOwner string) ([]domain.Invoice, error)
	MarkPaid(ctx context.Context, id string) (*domain.Invoice, error)
	Delete(ctx context.Context, id string) error
}
