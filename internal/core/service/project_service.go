package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
)

// ProjectService manages construction projects. Writes are admin-only
// (enforced at the route level); reads apply the ownership predicate here.
type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	if input.ClientID == "" || input.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	project := &domain.Project{
		ClientID:    input.ClientID,
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		Status:      domain.ProjectPlanning,
		Progress:    0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.StartsAt != "" {
		t, err := time.Parse(time.RFC3339, input.StartsAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		project.StartsAt = t
	}
	if input.EndsAt != "" {
		t, err := time.Parse(time.RFC3339, input.EndsAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		project.EndsAt = t
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("project_id", created.ID).Str("client_id", created.ClientID).Msg("project created")
	return created, nil
}

func (s *ProjectService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(project.ClientID) {
		return nil, domain.ErrForbidden
	}
	return project, nil
}

func (s *ProjectService) List(ctx context.Context, actor *domain.User, requestedOwner string) ([]domain.Project, error) {
	return s.repo.List(ctx, actor.ScopeOwner(requestedOwner))
}

func (s *ProjectService) Update(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		project.Name = input.Name
	}
	if input.Description != "" {
		project.Description = input.Description
	}
	if input.Address != "" {
		project.Address = input.Address
	}
	if input.Status != "" {
		status := domain.ProjectStatus(input.Status)
		if !domain.ValidProjectStatus(status) {
			return nil, domain.ErrInvalidInput
		}
		project.Status = status
	}
	if input.Progress < 0 || input.Progress > 100 {
		return nil, domain.ErrInvalidInput
	}
	project.Progress = input.Progress
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
