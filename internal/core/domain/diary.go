package domain

import "time"

// DiaryEntry is one day's record in a project's work diary, written by the
// site engineer (an admin user) and readable by the owning client.
type DiaryEntry struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	ClientID   string    `json:"client_id" bson:"client_id"`
	ProjectID  string    `json:"project_id" bson:"project_id"`
	EntryDate  time.Time `json:"entry_date" bson:"entry_date"`
	Weather    string    `json:"weather,omitempty" bson:"weather,omitempty"`
	Workforce  int       `json:"workforce" bson:"workforce"`
	Activities string    `json:"activities" bson:"activities"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
