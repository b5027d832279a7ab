package constants

import "testing"

func TestMapRole(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", RolePassenger},
		{"   ", RolePassenger},
		{"admin", RoleAdmin},
		{"ADMIN", RoleAdmin},
		{"Admin", RoleAdmin},
		{"staff", RoleStaff},
		{"Staff", RoleStaff},
		{"passenger", RolePassenger},
		{"ROLE_ADMIN", RoleAdmin},
		{"ROLE_STAFF", RoleStaff},
		{"ROLE_PASSENGER", RolePassenger},
		{"ROLE_SUPERUSER", RolePassenger}, // unknown prefixed token falls through
		{"role_admin", RolePassenger},     // prefix match is exact, bare match misses
		{"xyz", RolePassenger},
		{"  ADMIN  ", RoleAdmin},
	}

	for _, tc := range cases {
		if got := MapRole(tc.in); got != tc.want {
			t.Errorf("MapRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMapRoleAlwaysCanonical(t *testing.T) {
	inputs := []string{"", "admin", "ADMIN", "ROLE_ADMIN", "xyz", "Staff", "💥", "role_", "ROLE_"}
	for _, in := range inputs {
		got := MapRole(in)
		if !IsValidRole(got) {
			t.Errorf("MapRole(%q) = %q, not a canonical role", in, got)
		}
	}
}
