package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
)

// ReportService assembles the summary report: budget totals by status,
// invoice totals by status, project count and average progress. Clients are
// scoped to their own data; admins see the firm-wide picture or a single
// client via the explicit filter.
type ReportService struct {
	projects ports.ProjectRepository
	budgets  ports.BudgetRepository
	invoices ports.InvoiceRepository
	logger   zerolog.Logger
}

func NewReportService(projects ports.ProjectRepository, budgets ports.BudgetRepository, invoices ports.InvoiceRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{projects: projects, budgets: budgets, invoices: invoices, logger: logger}
}

func (s *ReportService) Summary(ctx context.Context, actor *domain.User, requestedOwner string) (*ports.ReportSummary, error) {
	owner := actor.ScopeOwner(requestedOwner)

	count, err := s.projects.Count(ctx, owner)
	if err != nil {
		return nil, err
	}
	avg, err := s.projects.AverageProgress(ctx, owner)
	if err != nil {
		return nil, err
	}
	budgetSums, err := s.budgets.SumByStatus(ctx, owner)
	if err != nil {
		return nil, err
	}
	invoiceSums, err := s.invoices.SumByStatus(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &ports.ReportSummary{
		Scope:           owner,
		Projects:        count,
		AverageProgress: avg,
		BudgetsPending:  budgetSums[domain.BudgetPending],
		BudgetsApproved: budgetSums[domain.BudgetApproved],
		BudgetsRejected: budgetSums[domain.BudgetRejected],
		InvoicesOpen:    invoiceSums[domain.InvoiceOpen],
		InvoicesPaid:    invoiceSums[domain.InvoicePaid],
		InvoicesOverdue: invoiceSums[domain.InvoiceOverdue],
	}, nil
}
