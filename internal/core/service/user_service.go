package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
)

// UserService implements admin-side account management. Every role/active
// mutation invalidates the guard's cache entry so stale records can never
// outlive an approval or demotion.
type UserService struct {
	users    ports.UserRepository
	cache    ports.UserCache
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, cache ports.UserCache, notifier ports.Notifier, logger zerolog.Logger) *UserService {
	return &UserService{users: users, cache: cache, notifier: notifier, logger: logger}
}

// Create adds an admin-provisioned account, active immediately.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Role != domain.RoleAdmin && input.Role != domain.RoleClient {
		return nil, domain.ErrInvalidInput
	}
	if input.Document != "" && !domain.ValidDocument(input.Document) {
		return nil, domain.ErrInvalidDocument
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.users.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Active:       true,
		Document:     input.Document,
		Phone:        input.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, pendingOnly bool) ([]domain.User, error) {
	return s.users.List(ctx, pendingOnly)
}

// Approve activates a pending client and notifies them.
func (s *UserService) Approve(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.setActive(ctx, id, true)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Notify(ports.NotificationInput{
			RecipientID: user.ID,
			Kind:        domain.NotifyAccountApproved,
			Message:     fmt.Sprintf("Welcome, %s! Your account has been approved.", user.Name),
		})
	}
	return user, nil
}

// Promote grants the ADMIN role.
func (s *UserService) Promote(ctx context.Context, id string) (*domain.User, error) {
	if err := s.users.SetRole(ctx, id, domain.RoleAdmin); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return s.users.FindByID(ctx, id)
}

// Deactivate suspends a client account.
func (s *UserService) Deactivate(ctx context.Context, id string) (*domain.User, error) {
	return s.setActive(ctx, id, false)
}

func (s *UserService) setActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	if err := s.users.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return s.users.FindByID(ctx, id)
}

func (s *UserService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("guard cache invalidation failed")
	}
}
