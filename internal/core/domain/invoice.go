package domain

import "time"

// InvoiceStatus represents the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceOpen    InvoiceStatus = "OPEN"
	InvoicePaid    InvoiceStatus = "PAID"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
)

// Invoice bills a client for project work. Writes are admin-only.
type Invoice struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	ClientID  string        `json:"client_id" bson:"client_id"`
	ProjectID string        `json:"project_id,omitempty" bson:"project_id,omitempty"`
	Number    string        `json:"number" bson:"number"`
	Amount    float64       `json:"amount" bson:"amount"`
	Status    InvoiceStatus `json:"status" bson:"status"`
	DueAt     time.Time     `json:"due_at" bson:"due_at"`
	PaidAt    time.Time     `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}
