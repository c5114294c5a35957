package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
	"github.com/obrasys/backoffice/pkg/token"
)

func testAuthService(repo *stubUserRepo) (*AuthService, *token.Codec) {
	codec := token.NewCodec("test-secret", time.Hour)
	return NewAuthService(repo, codec, zerolog.Nop()), codec
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := testAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "s3cret",
		Document: "529.982.247-25",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RoleClient {
		t.Fatalf("expected CLIENT role, got %s", user.Role)
	}
	if user.Active {
		t.Fatalf("self-service signup must start inactive")
	}
	if user.PasswordHash == "s3cret" {
		t.Fatalf("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := testAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "x@example.com", Password: "p"}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Bob", Email: "bob@example.com", Password: "p", Document: "11111111111",
	}); err != domain.ErrInvalidDocument {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := testAuthService(newStubUserRepo())

	input := ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "p"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, codec := testAuthService(repo)

	created, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Carla", Email: "carla@example.com", Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := repo.SetActive(context.Background(), created.ID, true); err != nil {
		t.Fatalf("activate: %v", err)
	}

	raw, user, err := svc.Login(context.Background(), "carla@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	subject, err := codec.Verify(raw)
	if err != nil || subject != created.ID {
		t.Fatalf("token does not round-trip to user id: %q, %v", subject, err)
	}
}

func TestAuthService_Login_PendingAccount(t *testing.T) {
	svc, _ := testAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Davi", Email: "davi@example.com", Password: "p4ss",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "davi@example.com", "p4ss"); err != domain.ErrAccountPending {
		t.Fatalf("expected ErrAccountPending, got %v", err)
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := testAuthService(repo)

	created, _ := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Eva", Email: "eva@example.com", Password: "right",
	})
	_ = repo.SetActive(context.Background(), created.ID, true)

	if _, _, err := svc.Login(context.Background(), "eva@example.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	// Unknown email must be indistinguishable from a bad password.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "right"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
