package ports

import (
	"context"
	"time"

	"github.com/obrasys/backoffice/internal/core/domain"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, ownerID string) ([]domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) error
	Delete(ctx context.Context, id string) error
}

type CreateAppointmentInput struct {
	ClientID string
	Title    string
	Location string
	Notes    string
	StartsAt time.Time
}

// AppointmentService: clients schedule for themselves, admins for anyone;
// update/delete follow the owner-or-admin rule.
type AppointmentService interface {
	Create(ctx context.Context, actor *domain.User, input CreateAppointmentInput) (*domain.Appointment, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Appointment, error)
	List(ctx context.Context, actor *domain.User, requestedOwner string) ([]domain.Appointment, error)
	Update(ctx context.Context, actor *domain.User, id string, input CreateAppointmentInput) (*domain.Appointment, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}
