package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/obrasys/backoffice/internal/api/handler"
	"github.com/obrasys/backoffice/internal/api/middleware"
	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/service"
	"github.com/obrasys/backoffice/pkg/token"
)

// In-memory stand-ins so the full chain runs for real: codec-issued tokens
// pass through the guard, the middleware, the ownership check in the
// service, and finally the error handler.

type memUserRepo struct {
	users map[string]*domain.User
}

func (r *memUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.users[u.ID] = u
	return u, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) List(_ context.Context, _ bool) ([]domain.User, error) { return nil, nil }
func (r *memUserRepo) SetActive(_ context.Context, _ string, _ bool) error   { return nil }
func (r *memUserRepo) SetRole(_ context.Context, _ string, _ string) error   { return nil }

type memProjectRepo struct {
	projects map[string]*domain.Project
}

func (r *memProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.projects[p.ID] = p
	return p, nil
}

func (r *memProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *memProjectRepo) List(_ context.Context, ownerID string) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range r.projects {
		if ownerID == "" || p.ClientID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProjectRepo) Update(_ context.Context, _ *domain.Project) error { return nil }
func (r *memProjectRepo) Delete(_ context.Context, _ string) error          { return nil }
func (r *memProjectRepo) Count(_ context.Context, _ string) (int64, error)  { return 0, nil }
func (r *memProjectRepo) AverageProgress(_ context.Context, _ string) (float64, error) {
	return 0, nil
}

type accessFixture struct {
	e     *echo.Echo
	codec *token.Codec
}

func newAccessFixture(t *testing.T) *accessFixture {
	t.Helper()

	users := &memUserRepo{users: map[string]*domain.User{
		"c1": {ID: "c1", Email: "c1@example.com", Role: domain.RoleClient, Active: true},
		"c2": {ID: "c2", Email: "c2@example.com", Role: domain.RoleClient, Active: true},
		"p1": {ID: "p1", Email: "p1@example.com", Role: domain.RoleClient, Active: false},
		"a1": {ID: "a1", Email: "a1@example.com", Role: domain.RoleAdmin, Active: true},
	}}
	projects := &memProjectRepo{projects: map[string]*domain.Project{
		"proj-c1": {ID: "proj-c1", ClientID: "c1", Name: "Casa Alphaville"},
		"proj-c2": {ID: "proj-c2", ClientID: "c2", Name: "Galpão Industrial"},
	}}

	codec := token.NewCodec("test-secret", 0)
	guard := service.NewGuard(codec, users, nil, zerolog.Nop())
	projectService := service.NewProjectService(projects, zerolog.Nop())
	projectHandler := handler.NewProjectHandler(projectService)

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	authed := e.Group("/v1", middleware.Authenticate(guard))
	authed.GET("/projects", projectHandler.List)
	authed.GET("/projects/:id", projectHandler.Get)

	return &accessFixture{e: e, codec: codec}
}

func (f *accessFixture) request(t *testing.T, subject, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if subject != "" {
		raw, err := f.codec.Issue(subject)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+raw)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestAccess_OwnerReadsOwnProject(t *testing.T) {
	f := newAccessFixture(t)

	rec := f.request(t, "c1", "/v1/projects/proj-c1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAccess_ClientCannotReadForeignProject(t *testing.T) {
	f := newAccessFixture(t)

	rec := f.request(t, "c1", "/v1/projects/proj-c2")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAccess_AdminReadsAnyProject(t *testing.T) {
	f := newAccessFixture(t)

	rec := f.request(t, "a1", "/v1/projects/proj-c2")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAccess_NoCredential(t *testing.T) {
	f := newAccessFixture(t)

	rec := f.request(t, "", "/v1/projects/proj-c1")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAccess_GarbageToken(t *testing.T) {
	f := newAccessFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-c1", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

// A verified token for a deleted account must be indistinguishable from an
// invalid token.
func TestAccess_UnknownSubject(t *testing.T) {
	f := newAccessFixture(t)

	rec := f.request(t, "ghost", "/v1/projects/proj-c1")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != domain.ErrInvalidToken.Error() {
		t.Fatalf("expected the invalid-token message, got %q", body.Error)
	}
}

func TestAccess_PendingClient(t *testing.T) {
	f := newAccessFixture(t)

	rec := f.request(t, "p1", "/v1/projects/proj-c1")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != domain.ErrAccountPending.Error() {
		t.Fatalf("expected the pending-account message, got %q", body.Error)
	}
}

func TestAccess_ClientListIsScopedToOwn(t *testing.T) {
	f := newAccessFixture(t)

	// The client_id filter is ignored for clients; they always get their own.
	rec := f.request(t, "c1", "/v1/projects?client_id=c2")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var projects []domain.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &projects); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(projects) != 1 || projects[0].ClientID != "c1" {
		t.Fatalf("expected only c1's projects, got %+v", projects)
	}
}
