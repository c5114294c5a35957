package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
)

// AppointmentService manages meetings and site visits. Both roles may
// schedule; clients only for themselves. Updates and deletes follow the
// owner-or-admin rule.
type AppointmentService struct {
	repo     ports.AppointmentRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, notifier ports.Notifier, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, notifier: notifier, logger: logger}
}

func (s *AppointmentService) Create(ctx context.Context, actor *domain.User, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	clientID := input.ClientID
	if !actor.IsAdmin() {
		clientID = actor.ID
	}
	if clientID == "" || input.Title == "" || input.StartsAt.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Appointment{
		ClientID:  clientID,
		Title:     input.Title,
		Location:  input.Location,
		Notes:     input.Notes,
		StartsAt:  input.StartsAt,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	// An admin scheduling on a client's behalf is news to the client.
	if s.notifier != nil && actor.IsAdmin() && clientID != actor.ID {
		s.notifier.Notify(ports.NotificationInput{
			RecipientID: clientID,
			Kind:        domain.NotifyAppointment,
			Message:     fmt.Sprintf("Appointment %q scheduled for %s.", created.Title, created.StartsAt.Format("2006-01-02 15:04")),
		})
	}
	return created, nil
}

func (s *AppointmentService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Appointment, error) {
	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(appt.ClientID) {
		return nil, domain.ErrForbidden
	}
	return appt, nil
}

func (s *AppointmentService) List(ctx context.Context, actor *domain.User, requestedOwner string) ([]domain.Appointment, error) {
	return s.repo.List(ctx, actor.ScopeOwner(requestedOwner))
}

func (s *AppointmentService) Update(ctx context.Context, actor *domain.User, id string, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(appt.ClientID) {
		return nil, domain.ErrForbidden
	}

	if input.Title != "" {
		appt.Title = input.Title
	}
	if input.Location != "" {
		appt.Location = input.Location
	}
	if input.Notes != "" {
		appt.Notes = input.Notes
	}
	if !input.StartsAt.IsZero() {
		appt.StartsAt = input.StartsAt
	}
	appt.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *AppointmentService) Delete(ctx context.Context, actor *domain.User, id string) error {
	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanAccess(appt.ClientID) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
