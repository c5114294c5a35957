package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
)

type stubBudgetRepo struct {
	budgets map[string]*domain.Budget
	seq     int
}

func newStubBudgetRepo() *stubBudgetRepo {
	return &stubBudgetRepo{budgets: make(map[string]*domain.Budget)}
}

func (r *stubBudgetRepo) Create(_ context.Context, b *domain.Budget) (*domain.Budget, error) {
	r.seq++
	clone := *b
	clone.ID = fmt.Sprintf("b%d", r.seq)
	r.budgets[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubBudgetRepo) FindByID(_ context.Context, id string) (*domain.Budget, error) {
	b, ok := r.budgets[id]
	if !ok {
		return nil, domain.ErrBudgetNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBudgetRepo) List(_ context.Context, ownerID string) ([]domain.Budget, error) {
	var out []domain.Budget
	for _, b := range r.budgets {
		if ownerID == "" || b.ClientID == ownerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBudgetRepo) Update(_ context.Context, b *domain.Budget) error {
	if _, ok := r.budgets[b.ID]; !ok {
		return domain.ErrBudgetNotFound
	}
	clone := *b
	r.budgets[b.ID] = &clone
	return nil
}

func (r *stubBudgetRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.budgets[id]; !ok {
		return domain.ErrBudgetNotFound
	}
	delete(r.budgets, id)
	return nil
}

func (r *stubBudgetRepo) SumByStatus(_ context.Context, ownerID string) (map[domain.BudgetStatus]float64, error) {
	sums := make(map[domain.BudgetStatus]float64)
	for _, b := range r.budgets {
		if ownerID == "" || b.ClientID == ownerID {
			sums[b.Status] += b.Amount
		}
	}
	return sums, nil
}

func TestBudgetService_Request_ClientPinnedToSelf(t *testing.T) {
	repo := newStubBudgetRepo()
	svc := NewBudgetService(repo, nil, zerolog.Nop())
	client := &domain.User{ID: "c1", Role: domain.RoleClient, Active: true}

	budget, err := svc.Request(context.Background(), client, ports.CreateBudgetInput{
		ClientID: "c2", // ignored for clients
		Title:    "Kitchen refit",
		Amount:   125000,
	})
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if budget.ClientID != "c1" {
		t.Fatalf("client budget must be owned by the caller, got %s", budget.ClientID)
	}
	if budget.Status != domain.BudgetPending {
		t.Fatalf("new budgets must be PENDING, got %s", budget.Status)
	}
}

func TestBudgetService_Request_AdminForAnyClient(t *testing.T) {
	svc := NewBudgetService(newStubBudgetRepo(), nil, zerolog.Nop())
	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin}

	budget, err := svc.Request(context.Background(), admin, ports.CreateBudgetInput{
		ClientID: "c7", Title: "Facade", Amount: 300000,
	})
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if budget.ClientID != "c7" {
		t.Fatalf("expected owner c7, got %s", budget.ClientID)
	}
}

func TestBudgetService_Get_OwnershipEnforced(t *testing.T) {
	repo := newStubBudgetRepo()
	svc := NewBudgetService(repo, nil, zerolog.Nop())
	owner := &domain.User{ID: "c1", Role: domain.RoleClient, Active: true}
	other := &domain.User{ID: "c2", Role: domain.RoleClient, Active: true}
	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin}

	budget, err := svc.Request(context.Background(), owner, ports.CreateBudgetInput{Title: "T", Amount: 1000})
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	if _, err := svc.Get(context.Background(), owner, budget.ID); err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if _, err := svc.Get(context.Background(), other, budget.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if _, err := svc.Get(context.Background(), admin, budget.ID); err != nil {
		t.Fatalf("admin bypass failed: %v", err)
	}
}

func TestBudgetService_SetStatus_NotifiesOwner(t *testing.T) {
	repo := newStubBudgetRepo()
	notifier := &stubNotifier{}
	svc := NewBudgetService(repo, notifier, zerolog.Nop())
	client := &domain.User{ID: "c1", Role: domain.RoleClient, Active: true}

	budget, _ := svc.Request(context.Background(), client, ports.CreateBudgetInput{Title: "T", Amount: 1000})

	updated, err := svc.SetStatus(context.Background(), budget.ID, domain.BudgetApproved, "")
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if updated.Status != domain.BudgetApproved {
		t.Fatalf("expected APPROVED, got %s", updated.Status)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].RecipientID != "c1" || notifier.sent[0].Kind != domain.NotifyBudgetUpdated {
		t.Fatalf("expected budget notification for owner, got %v", notifier.sent)
	}
}

func TestBudgetService_SetStatus_RejectsUnknownStatus(t *testing.T) {
	svc := NewBudgetService(newStubBudgetRepo(), nil, zerolog.Nop())

	if _, err := svc.SetStatus(context.Background(), "b1", "MAYBE", ""); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBudgetService_List_Scoping(t *testing.T) {
	repo := newStubBudgetRepo()
	svc := NewBudgetService(repo, nil, zerolog.Nop())
	c1 := &domain.User{ID: "c1", Role: domain.RoleClient, Active: true}
	c2 := &domain.User{ID: "c2", Role: domain.RoleClient, Active: true}
	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin}

	_, _ = svc.Request(context.Background(), c1, ports.CreateBudgetInput{Title: "A", Amount: 1})
	_, _ = svc.Request(context.Background(), c2, ports.CreateBudgetInput{Title: "B", Amount: 2})

	own, err := svc.List(context.Background(), c1, "c2") // filter ignored for clients
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(own) != 1 || own[0].ClientID != "c1" {
		t.Fatalf("client list not scoped to own id: %v", own)
	}

	all, err := svc.List(context.Background(), admin, "")
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin should see all budgets, got %d", len(all))
	}
}
