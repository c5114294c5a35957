package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
	"github.com/obrasys/backoffice/pkg/token"
)

type stubUserRepo struct {
	users map[string]*domain.User
	calls int
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	clone := *u
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("u%d", len(r.users)+1)
	}
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.calls++
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, pendingOnly bool) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if pendingOnly && (u.Active || u.Role != domain.RoleClient) {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) SetActive(_ context.Context, id string, active bool) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Active = active
	return nil
}

func (r *stubUserRepo) SetRole(_ context.Context, id, role string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

type stubUserCache struct {
	entries     map[string]*domain.User
	getErr      error
	invalidated []string
}

func newStubUserCache() *stubUserCache {
	return &stubUserCache{entries: make(map[string]*domain.User)}
}

func (c *stubUserCache) Get(_ context.Context, id string) (*domain.User, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	u, ok := c.entries[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (c *stubUserCache) Set(_ context.Context, u *domain.User) error {
	clone := *u
	c.entries[u.ID] = &clone
	return nil
}

func (c *stubUserCache) Invalidate(_ context.Context, id string) error {
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
	return nil
}

func testGuard(repo *stubUserRepo, cache ports.UserCache) (*Guard, *token.Codec) {
	codec := token.NewCodec("test-secret", time.Hour)
	return NewGuard(codec, repo, cache, zerolog.Nop()), codec
}

func TestGuard_Allow(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "c1", Role: domain.RoleClient, Active: true, Name: "Ana"})
	guard, codec := testGuard(repo, nil)

	raw, err := codec.Issue("c1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	user, err := guard.Resolve(context.Background(), raw)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user.ID != "c1" || user.Name != "Ana" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestGuard_NoCredential(t *testing.T) {
	guard, _ := testGuard(newStubUserRepo(), nil)

	if _, err := guard.Resolve(context.Background(), ""); err != domain.ErrNotAuthenticated {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestGuard_InvalidCredential(t *testing.T) {
	guard, _ := testGuard(newStubUserRepo(), nil)

	if _, err := guard.Resolve(context.Background(), "not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestGuard_ForeignSignature(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "c1", Role: domain.RoleClient, Active: true})
	codec := token.NewCodec("test-secret", time.Hour)
	guard := NewGuard(codec, repo, nil, zerolog.Nop())

	raw, err := token.NewCodec("other-secret", time.Hour).Issue("c1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := guard.Resolve(context.Background(), raw); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestGuard_UnknownSubject(t *testing.T) {
	guard, codec := testGuard(newStubUserRepo(), nil)

	raw, err := codec.Issue("ghost")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Deleted-but-tokened subjects must be indistinguishable from a bad token.
	if _, err := guard.Resolve(context.Background(), raw); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestGuard_InactiveClient(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "c1", Role: domain.RoleClient, Active: false})
	guard, codec := testGuard(repo, nil)

	raw, err := codec.Issue("c1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := guard.Resolve(context.Background(), raw); err != domain.ErrAccountPending {
		t.Fatalf("expected ErrAccountPending, got %v", err)
	}
}

func TestGuard_InactiveAdminBypasses(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "a1", Role: domain.RoleAdmin, Active: false})
	guard, codec := testGuard(repo, nil)

	raw, err := codec.Issue("a1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	user, err := guard.Resolve(context.Background(), raw)
	if err != nil {
		t.Fatalf("expected admin to bypass activation, got %v", err)
	}
	if user.ID != "a1" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestGuard_CacheServesSecondLookup(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "c1", Role: domain.RoleClient, Active: true})
	cache := newStubUserCache()
	guard, codec := testGuard(repo, cache)

	raw, err := codec.Issue("c1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := guard.Resolve(context.Background(), raw); err != nil {
			t.Fatalf("resolve %d: %v", i, err)
		}
	}
	if repo.calls != 1 {
		t.Fatalf("expected one store lookup, got %d", repo.calls)
	}
}

func TestGuard_CacheErrorFallsThrough(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "c1", Role: domain.RoleClient, Active: true})
	cache := newStubUserCache()
	cache.getErr = errors.New("redis down")
	guard, codec := testGuard(repo, cache)

	raw, err := codec.Issue("c1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := guard.Resolve(context.Background(), raw); err != nil {
		t.Fatalf("cache failure must not deny the request: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected store fallback, got %d calls", repo.calls)
	}
}
