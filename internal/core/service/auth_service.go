package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
	"github.com/obrasys/backoffice/pkg/token"
)

// AuthService implements self-service registration and login.
type AuthService struct {
	users  ports.UserRepository
	codec  *token.Codec
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, logger: logger}
}

// Register creates a CLIENT account that stays inactive until an admin
// approves it.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
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
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
		Active:       false,
		Document:     input.Document,
		Phone:        input.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("client registered, awaiting approval")
	return created, nil
}

// Login verifies the password and mints a credential. Unknown emails and
// wrong passwords collapse to the same error. Inactive clients are refused
// with the same policy the guard applies.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive() {
		return "", nil, domain.ErrAccountPending
	}

	raw, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	return raw, user, nil
}
