// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the user identity and session management layer.

It defines the core domain entities (User, Session) and the logic that decides
whether a caller is signed in and what they are allowed to touch.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import (
	"time"

	"github.com/taibuivan/quorum/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Quorum platform.
//
// ID is the internal storage key and never leaves the process. UUID is the
// external identifier used in URLs and in every ownership comparison.
type User struct {
	ID            int64        `json:"-"`
	UUID          string       `json:"id"`
	FirstName     string       `json:"first_name"`
	LastName      string       `json:"last_name"`
	Username      string       `json:"username"`
	Email         string       `json:"email_address"`
	PasswordHash  string       `json:"-"` // Explicitly omitted from JSON for security.
	Salt          string       `json:"-"`
	Country       string       `json:"country,omitempty"`
	AboutMe       string       `json:"about_me,omitempty"`
	DOB           string       `json:"dob,omitempty"`
	ContactNumber string       `json:"contact_number,omitempty"`
	Role          sec.UserRole `json:"role"`
	CreatedAt     time.Time    `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (user *User) IsAdmin() bool {
	return user != nil && user.Role.IsAdmin()
}

// Session is one sign-in of one user.
//
// # Invariants
//
//   - ExpiresAt is strictly after IssuedAt.
//   - LoggedOutAt, once set, is never cleared or moved.
//   - Sessions are never deleted; logged-out and expired rows stay as history.
type Session struct {
	ID          string     `json:"id"`
	UserID      int64      `json:"-"`
	Token       string     `json:"-"` // Raw token. Only populated on issuance, never persisted.
	TokenHash   string     `json:"-"`
	IssuedAt    time.Time  `json:"issued_at"`
	ExpiresAt   time.Time  `json:"expires_at"`
	LoggedOutAt *time.Time `json:"logged_out_at,omitempty"`
}

// IsActive reports whether the session still authenticates its holder at now.
func (session *Session) IsActive(now time.Time) bool {
	return session.LoggedOutAt == nil && session.ExpiresAt.After(now)
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldUsername      = "username"
	FieldEmail         = "email_address"
	FieldPassword      = "password"
	FieldCountry       = "country"
	FieldAboutMe       = "about_me"
	FieldDOB           = "dob"
	FieldContactNumber = "contact_number"
	FieldUser          = "user"
	FieldID            = "id"
	FieldMessage       = "message"
)
