package domain

import "time"

// ProjectStatus represents the lifecycle state of a construction project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "PLANNING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectPaused     ProjectStatus = "PAUSED"
	ProjectDone       ProjectStatus = "DONE"
)

// ValidProjectStatus reports whether s is one of the known statuses.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectPaused, ProjectDone:
		return true
	}
	return false
}

// Project is the aggregate every client-facing resource hangs off.
type Project struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	ClientID    string        `json:"client_id" bson:"client_id"`
	Name        string        `json:"name" bson:"name"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Address     string        `json:"address,omitempty" bson:"address,omitempty"`
	Status      ProjectStatus `json:"status" bson:"status"`
	Progress    int           `json:"progress" bson:"progress"` // 0..100
	StartsAt    time.Time     `json:"starts_at,omitempty" bson:"starts_at,omitempty"`
	EndsAt      time.Time     `json:"ends_at,omitempty" bson:"ends_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
