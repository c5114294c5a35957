package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
)

// DiaryService manages daily work diary entries. Writes come from the site
// engineers (admins); the owning client can read their projects' entries.
type DiaryService struct {
	repo   ports.DiaryRepository
	logger zerolog.Logger
}

func NewDiaryService(repo ports.DiaryRepository, logger zerolog.Logger) *DiaryService {
	return &DiaryService{repo: repo, logger: logger}
}

func (s *DiaryService) Create(ctx context.Context, input ports.CreateDiaryEntryInput) (*domain.DiaryEntry, error) {
	if input.ClientID == "" || input.ProjectID == "" || input.Activities == "" {
		return nil, domain.ErrInvalidInput
	}

	entryDate := input.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.DiaryEntry{
		ClientID:   input.ClientID,
		ProjectID:  input.ProjectID,
		EntryDate:  entryDate,
		Weather:    input.Weather,
		Workforce:  input.Workforce,
		Activities: input.Activities,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (s *DiaryService) Get(ctx context.Context, actor *domain.User, id string) (*domain.DiaryEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(entry.ClientID) {
		return nil, domain.ErrForbidden
	}
	return entry, nil
}

func (s *DiaryService) List(ctx context.Context, actor *domain.User, requestedOwner string) ([]domain.DiaryEntry, error) {
	return s.repo.List(ctx, actor.ScopeOwner(requestedOwner))
}

func (s *DiaryService) Update(ctx context.Context, id string, input ports.CreateDiaryEntryInput) (*domain.DiaryEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Weather != "" {
		entry.Weather = input.Weather
	}
	if input.Workforce > 0 {
		entry.Workforce = input.Workforce
	}
	if input.Activities != "" {
		entry.Activities = input.Activities
	}
	if !input.EntryDate.IsZero() {
		entry.EntryDate = input.EntryDate
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *DiaryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
