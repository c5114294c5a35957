package domain

import "time"

const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"
)

// User models an actor in the back office: either a firm administrator or a
// client whose projects the firm manages.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	Document     string    `json:"document,omitempty"` // CPF or CNPJ
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user carries the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive reports whether the user may pass the access guard. Admins are
// always treated as active regardless of the stored flag.
func (u *User) IsActive() bool {
	return u.IsAdmin() || u.Active
}

// CanAccess is the single ownership predicate applied to every protected
// resource: admins bypass, clients must own.
func (u *User) CanAccess(ownerID string) bool {
	return u.IsAdmin() || u.ID == ownerID
}

// ScopeOwner narrows list queries: clients are pinned to their own id,
// admins may pass an explicit owner filter (or empty for all).
func (u *User) ScopeOwner(requested string) string {
	if u.IsAdmin() {
		return requested
	}
	return u.ID
}
