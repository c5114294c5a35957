package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
)

// NotificationService persists feed rows. Process is called by the async
// dispatcher workers; List/MarkRead serve the authenticated feed endpoints.
type NotificationService struct {
	repo   ports.NotificationRepository
	logger zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

func (s *NotificationService) Process(ctx context.Context, input ports.NotificationInput) error {
	if input.RecipientID == "" || input.Message == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.repo.Create(ctx, &domain.Notification{
		RecipientID: input.RecipientID,
		Kind:        input.Kind,
		Message:     input.Message,
		CreatedAt:   time.Now().UTC(),
	})
	return err
}

// List returns the caller's own feed. There is no cross-user feed access,
// not even for admins.
func (s *NotificationService) List(ctx context.Context, actor *domain.User) ([]domain.Notification, error) {
	return s.repo.ListByRecipient(ctx, actor.ID)
}

func (s *NotificationService) MarkRead(ctx context.Context, actor *domain.User, id string) error {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	// Strictly the recipient's own: the admin bypass does not apply to feeds.
	if n.RecipientID != actor.ID {
		return domain.ErrForbidden
	}
	return s.repo.MarkRead(ctx, id)
}
