package domain

import "testing"

func TestUser_IsActive(t *testing.T) {
	cases := []struct {
		name string
		user User
		want bool
	}{
		{"active client", User{Role: RoleClient, Active: true}, true},
		{"inactive client", User{Role: RoleClient, Active: false}, false},
		{"active admin", User{Role: RoleAdmin, Active: true}, true},
		{"inactive admin bypasses flag", User{Role: RoleAdmin, Active: false}, true},
	}
	for _, tc := range cases {
		if got := tc.user.IsActive(); got != tc.want {
			t.Fatalf("%s: IsActive() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestUser_CanAccess(t *testing.T) {
	admin := User{ID: "a1", Role: RoleAdmin}
	owner := User{ID: "c1", Role: RoleClient, Active: true}
	other := User{ID: "c2", Role: RoleClient, Active: true}

	if !admin.CanAccess("c1") {
		t.Fatalf("admin must bypass ownership")
	}
	if !owner.CanAccess("c1") {
		t.Fatalf("owner must access own resource")
	}
	if other.CanAccess("c1") {
		t.Fatalf("non-owner client must be rejected")
	}
}

func TestUser_ScopeOwner(t *testing.T) {
	admin := User{ID: "a1", Role: RoleAdmin}
	client := User{ID: "c1", Role: RoleClient}

	if got := admin.ScopeOwner(""); got != "" {
		t.Fatalf("admin without filter should see all, got %q", got)
	}
	if got := admin.ScopeOwner("c9"); got != "c9" {
		t.Fatalf("admin filter not honoured, got %q", got)
	}
	if got := client.ScopeOwner("c9"); got != "c1" {
		t.Fatalf("client must be pinned to own id, got %q", got)
	}
}
