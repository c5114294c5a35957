package ports

import (
	"context"

	"github.com/obrasys/backoffice/internal/core/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// NotificationInput is the payload handed to the async dispatcher.
type NotificationInput struct {
	RecipientID string
	Kind        string
	Message     string
}

// Notifier is fire-and-forget: callers never wait on, nor observe, the
// outcome of a notification write.
type Notifier interface {
	Notify(input NotificationInput)
}

// NotificationService is the synchronous side: feed reads and read-marking,
// plus the Process entry point the dispatcher workers call.
type NotificationService interface {
	Process(ctx context.Context, input NotificationInput) error
	List(ctx context.Context, actor *domain.User) ([]domain.Notification, error)
	MarkRead(ctx context.Context, actor *domain.User, id string) error
}
