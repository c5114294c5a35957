package ports

import (
	"context"
	"time"

	"github.com/obrasys/backoffice/internal/core/domain"
)

type DiaryRepository interface {
	Create(ctx context.Context, e *domain.DiaryEntry) (*domain.DiaryEntry, error)
	FindByID(ctx context.Context, id string) (*domain.DiaryEntry, error)
	List(ctx context.Context, ownerID string) ([]domain.DiaryEntry, error)
	Update(ctx context.Context, e *domain.DiaryEntry) error
	Delete(ctx context.Context, id string) error
}

type CreateDiaryEntryInput struct {
	ClientID   string
	ProjectID  string
	EntryDate  time.Time
	Weather    string
	Workforce  int
	Activities string
}

// DiaryService: writes are admin-only (site engineers); clients read the
// entries of their own projects.
type DiaryService interface {
	Create(ctx context.Context, input CreateDiaryEntryInput) (*domain.DiaryEntry, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.DiaryEntry, error)
	List(ctx context.Context, actor *domain.User, requestedOwner string) ([]domain.DiaryEntry, error)
	Update(ctx context.Context, id string, input CreateDiaryEntryInput) (*domain.DiaryEntry, error)
	Delete(ctx context.Context, id string) error
}
