package domain

import "time"

// Appointment is a scheduled meeting or site visit between the firm and a
// client.
type Appointment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ClientID  string    `json:"client_id" bson:"client_id"`
	Title     string    `json:"title" bson:"title"`
	Location  string    `json:"location,omitempty" bson:"location,omitempty"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	StartsAt  time.Time `json:"starts_at" bson:"starts_at"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
