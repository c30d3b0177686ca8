// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// May delete any question or answer and remove user accounts
	RoleAdmin UserRole = "admin"

	// Default role for standard registered users
	RoleNonAdmin UserRole = "nonadmin"
)

// IsAdmin reports whether the role grants administrative rights.
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleNonAdmin:
		return true
	default:
		return false
	}
}
