package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
)

// DocumentService tracks metadata for externally stored files. The service
// never touches file bytes.
type DocumentService struct {
	repo   ports.DocumentRepository
	logger zerolog.Logger
}

func NewDocumentService(repo ports.DocumentRepository, logger zerolog.Logger) *DocumentService {
	return &DocumentService{repo: repo, logger: logger}
}

func (s *DocumentService) Create(ctx context.Context, input ports.CreateDocumentInput) (*domain.Document, error) {
	if input.ClientID == "" || input.Name == "" || input.URL == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Document{
		ClientID:  input.ClientID,
		ProjectID: input.ProjectID,
		Name:      input.Name,
		Kind:      input.Kind,
		URL:       input.URL,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *DocumentService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Document, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(doc.ClientID) {
		return nil, domain.ErrForbidden
	}
	return doc, nil
}

func (s *DocumentService) List(ctx context.Context, actor *domain.User, requestedOwner string) ([]domain.Document, error) {
	return s.repo.List(ctx, actor.ScopeOwner(requestedOwner))
}

func (s *DocumentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
