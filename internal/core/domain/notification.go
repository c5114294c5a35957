package domain

import "time"

// Notification kinds written by the dispatcher on domain events.
const (
	NotifyAccountApproved = "account_approved"
	NotifyBudgetUpdated   = "budget_updated"
	NotifyInvoiceCreated  = "invoice_created"
	NotifyAppointment     = "appointment_created"
)

// Notification is one row in a user's internal feed.
type Notification struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	RecipientID string    `json:"recipient_id" bson:"recipient_id"`
	Kind        string    `json:"kind" bson:"kind"`
	Message     string    `json:"message" bson:"message"`
	Read        bool      `json:"read" bson:"read"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
