package domain

import "time"

// Document is a metadata record pointing at an externally stored file
// (blueprint, contract, permit). The file bytes themselves never pass
// through this service.
type Document struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ClientID  string    `json:"client_id" bson:"client_id"`
	ProjectID string    `json:"project_id,omitempty" bson:"project_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Kind      string    `json:"kind,omitempty" bson:"kind,omitempty"`
	URL       string    `json:"url" bson:"url"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
