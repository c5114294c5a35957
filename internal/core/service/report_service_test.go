package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/obrasys/backoffice/internal/core/domain"
)

type stubProjectRepo struct {
	projects map[string]*domain.Project
	seq      int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.seq++
	clone := *p
	clone.ID = fmt.Sprintf("p%d", r.seq)
	r.projects[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) List(_ context.Context, ownerID string) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range r.projects {
		if ownerID == "" || p.ClientID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *stubProjectRepo) Count(_ context.Context, ownerID string) (int64, error) {
	var n int64
	for _, p := range r.projects {
		if ownerID == "" || p.ClientID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *stubProjectRepo) AverageProgress(_ context.Context, ownerID string) (float64, error) {
	var sum, n float64
	for _, p := range r.projects {
		if ownerID == "" || p.ClientID == ownerID {
			sum += float64(p.Progress)
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return sum / n, nil
}

type stubInvoiceRepo struct {
	invoices map[string]*domain.Invoice
	seq      int
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{invoices: make(map[string]*domain.Invoice)}
}

func (r *stubInvoiceRepo) Create(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	r.seq++
	clone := *inv
	clone.ID = fmt.Sprintf("i%d", r.seq)
	r.invoices[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id string) (*domain.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	clone := *inv
	return &clone, nil
}

func (r *stubInvoiceRepo) List(_ context.Context, ownerID string) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for _, inv := range r.invoices {
		if ownerID == "" || inv.ClientID == ownerID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *stubInvoiceRepo) Update(_ context.Context, inv *domain.Invoice) error {
	if _, ok := r.invoices[inv.ID]; !ok {
		return domain.ErrInvoiceNotFound
	}
	clone := *inv
	r.invoices[inv.ID] = &clone
	return nil
}

func (r *stubInvoiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.invoices[id]; !ok {
		return domain.ErrInvoiceNotFound
	}
	delete(r.invoices, id)
	return nil
}

func (r *stubInvoiceRepo) SumByStatus(_ context.Context, ownerID string) (map[domain.InvoiceStatus]float64, error) {
	sums := make(map[domain.InvoiceStatus]float64)
	for _, inv := range r.invoices {
		if ownerID == "" || inv.ClientID == ownerID {
			sums[inv.Status] += inv.Amount
		}
	}
	return sums, nil
}

func TestReportService_Summary_ClientScoped(t *testing.T) {
	projects := newStubProjectRepo()
	budgets := newStubBudgetRepo()
	invoices := newStubInvoiceRepo()

	_, _ = projects.Create(context.Background(), &domain.Project{ClientID: "c1", Progress: 40})
	_, _ = projects.Create(context.Background(), &domain.Project{ClientID: "c1", Progress: 60})
	_, _ = projects.Create(context.Background(), &domain.Project{ClientID: "c2", Progress: 100})

	_, _ = budgets.Create(context.Background(), &domain.Budget{ClientID: "c1", Status: domain.BudgetApproved, Amount: 1000})
	_, _ = budgets.Create(context.Background(), &domain.Budget{ClientID: "c1", Status: domain.BudgetPending, Amount: 500})
	_, _ = budgets.Create(context.Background(), &domain.Budget{ClientID: "c2", Status: domain.BudgetApproved, Amount: 9999})

	_, _ = invoices.Create(context.Background(), &domain.Invoice{ClientID: "c1", Status: domain.InvoiceOpen, Amount: 750})
	_, _ = invoices.Create(context.Background(), &domain.Invoice{ClientID: "c1", Status: domain.InvoicePaid, Amount: 250})

	svc := NewReportService(projects, budgets, invoices, zerolog.Nop())
	client := &domain.User{ID: "c1", Role: domain.RoleClient, Active: true}

	// The explicit filter must be ignored for clients.
	summary, err := svc.Summary(context.Background(), client, "c2")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Scope != "c1" {
		t.Fatalf("expected scope c1, got %q", summary.Scope)
	}
	if summary.Projects != 2 {
		t.Fatalf("expected 2 projects, got %d", summary.Projects)
	}
	if summary.AverageProgress != 50 {
		t.Fatalf("expected average progress 50, got %v", summary.AverageProgress)
	}
	if summary.BudgetsApproved != 1000 || summary.BudgetsPending != 500 {
		t.Fatalf("unexpected budget sums: %+v", summary)
	}
	if summary.InvoicesOpen != 750 || summary.InvoicesPaid != 250 {
		t.Fatalf("unexpected invoice sums: %+v", summary)
	}
}

func TestReportService_Summary_AdminSeesAll(t *testing.T) {
	projects := newStubProjectRepo()
	budgets := newStubBudgetRepo()
	invoices := newStubInvoiceRepo()

	_, _ = projects.Create(context.Background(), &domain.Project{ClientID: "c1", Progress: 20})
	_, _ = projects.Create(context.Background(), &domain.Project{ClientID: "c2", Progress: 80})

	svc := NewReportService(projects, budgets, invoices, zerolog.Nop())
	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin}

	summary, err := svc.Summary(context.Background(), admin, "")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Projects != 2 || summary.AverageProgress != 50 {
		t.Fatalf("unexpected firm-wide summary: %+v", summary)
	}
}
