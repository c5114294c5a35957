package ports

import (
	"context"

	"github.com/obrasys/backoffice/internal/core/domain"
)

type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	FindByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context, ownerID string) ([]domain.Document, error)
	Delete(ctx context.Context, id string) error
}

type CreateDocumentInput struct {
	ClientID  string
	ProjectID string
	Name      string
	Kind      string
	URL       string
}

// DocumentService stores metadata records only; the referenced file lives
// in external storage.
type DocumentService interface {
	Create(ctx context.Context, input CreateDocumentInput) (*domain.Document, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Document, error)
	List(ctx context.Context, actor *domain.User, requestedOwner string) ([]domain.Document, error)
	Delete(ctx context.Context, id string) error
}
