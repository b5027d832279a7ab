package constants

import (
	"fmt"
	"strings"
)

// Canonical role values as stored on users.user_role.
const (
	RoleAdmin     = "admin"
	RoleStaff     = "staff"
	RolePassenger = "passenger"
)

// Legacy serialized form still accepted from admin forms and old clients.
const rolePrefix = "ROLE_"

// Role error message templates
const (
	ErrOnlyAdminsCanAccess = "❌ Only admin may access %s."
	ErrOnlyStaffCanAccess  = "❌ Only staff or admin may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleStaff,
		RolePassenger,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// MapRole normalizes a free-form role token to one of the canonical roles.
// Total function: any unrecognized input degrades to passenger, never errors.
// The least-privilege fallback is security relevant, keep it.
func MapRole(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return RolePassenger
	}

	// Exact legacy form first: ROLE_ADMIN / ROLE_STAFF / ROLE_PASSENGER.
	// Anything else ROLE_-prefixed falls through to the bare-name match.
	if strings.HasPrefix(val, rolePrefix) {
		switch val {
		case "ROLE_ADMIN":
			return RoleAdmin
		case "ROLE_STAFF":
			return RoleStaff
		case "ROLE_PASSENGER":
			return RolePassenger
		}
	}

	switch strings.ToUpper(val) {
	case "ADMIN":
		return RoleAdmin
	case "STAFF":
		return RoleStaff
	case "PASSENGER":
		return RolePassenger
	}

	return RolePassenger
}

// IsValidRole reports whether s is one of the canonical role values.
func IsValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleStaff, RolePassenger:
		return true
	}
	return false
}
