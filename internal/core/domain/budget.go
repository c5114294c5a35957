package domain

import "time"

// BudgetStatus represents the review state of a budget request.
type BudgetStatus string

const (
	BudgetPending  BudgetStatus = "PENDING"
	BudgetApproved BudgetStatus = "APPROVED"
	BudgetRejected BudgetStatus = "REJECTED"
)

// ValidBudgetStatus reports whether s is one of the known statuses.
func ValidBudgetStatus(s BudgetStatus) bool {
	switch s {
	case BudgetPending, BudgetApproved, BudgetRejected:
		return true
	}
	return false
}

// Budget is a priced proposal for work on a project. Clients may request
// one; only admins move it out of PENDING.
type Budget struct {
	ID        string       `json:"id" bson:"_id,omitempty"`
	ClientID  string       `json:"client_id" bson:"client_id"`
	ProjectID string       `json:"project_id,omitempty" bson:"project_id,omitempty"`
	Title     string       `json:"title" bson:"title"`
	Amount    float64      `json:"amount" bson:"amount"`
	Status    BudgetStatus `json:"status" bson:"status"`
	Notes     string       `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}
