package ports

import (
	"context"

	"github.com/obrasys/backoffice/internal/core/domain"
)

// ReportSummary aggregates the financial and progress picture for one
// client, or firm-wide when Scope is empty (admin only).
type ReportSummary struct {
	Scope           string  `json:"scope,omitempty"` // client id, empty = all
	Projects        int64   `json:"projects"`
	AverageProgress float64 `json:"average_progress"`
	BudgetsPending  float64 `json:"budgets_pending"`
	BudgetsApproved float64 `json:"budgets_approved"`
	BudgetsRejected float64 `json:"budgets_rejected"`
	InvoicesOpen    float64 `json:"invoices_open"`
	InvoicesPaid    float64 `json:"invoices_paid"`
	InvoicesOverdue float64 `json:"invoices_overdue"`
}

type ReportService interface {
	Summary(ctx context.Context, actor *domain.User, requestedOwner string) (*ReportSummary, error)
}
