// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Authorization Rules
//
// Rules are pure: they compare the caller's external UUID with the resource
// owner's external UUID and inspect the caller's role. A nil user is never
// authorized.

// AuthorizeOwnerOrAdmin allows the resource owner or any admin.
func AuthorizeOwnerOrAdmin(user *User, ownerUUID string) bool {
	if user == nil {
		return false
	}
	return user.UUID == ownerUUID || user.IsAdmin()
}

// AuthorizeOwnerOnly allows the resource owner alone. Admins get no exemption.
func AuthorizeOwnerOnly(user *User, ownerUUID string) bool {
	if user == nil {
		return false
	}
	return user.UUID == ownerUUID
}

// AuthorizeAdminOnly allows admins alone.
func AuthorizeAdminOnly(user *User) bool {
	return user.IsAdmin()
}

// # Guard Helpers

// RequireOwnerOrAdmin returns Forbidden(msg) unless [AuthorizeOwnerOrAdmin] holds.
func RequireOwnerOrAdmin(user *User, ownerUUID, msg string) error {
	if !AuthorizeOwnerOrAdmin(user, ownerUUID) {
		return Forbidden(msg)
	}
	return nil
}

// RequireOwnerOnly returns Forbidden(msg) unless [AuthorizeOwnerOnly] holds.
func RequireOwnerOnly(user *User, ownerUUID, msg string) error {
	if !AuthorizeOwnerOnly(user, ownerUUID) {
		return Forbidden(msg)
	}
	return nil
}

// RequireAdmin returns Forbidden(msg) unless [AuthorizeAdminOnly] holds.
func RequireAdmin(user *User, msg string) error {
	if !AuthorizeAdminOnly(user) {
		return Forbidden(msg)
	}
	return nil
}
