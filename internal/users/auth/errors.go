// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/taibuivan/quorum/internal/platform/apperr"
)

// # Error Codes

// Codes are part of the public API and must never change meaning.
const (
	CodeNotSignedIn     = "ATHR-001"
	CodeSignedOut       = "ATHR-002"
	CodeForbidden       = "ATHR-003"
	CodeUserNotFound    = "USR-001"
	CodeUsernameTaken   = "SGR-001"
	CodeEmailTaken      = "SGR-002"
	CodeUnknownUsername = "ATH-001"
	CodeWrongPassword   = "ATH-002"
)

// # Sentinel Errors

// errors.Is matches on code, so the per-call variants built with [SignedOut],
// [Forbidden] and [UserNotFound] still satisfy errors.Is against these.
var (
	ErrNotSignedIn = apperr.New(http.StatusUnauthorized, CodeNotSignedIn, "User has not signed in")
	ErrSignedOut   = apperr.New(http.StatusUnauthorized, CodeSignedOut, "User is signed out")
	ErrForbidden   = apperr.New(http.StatusForbidden, CodeForbidden, "Forbidden")

	ErrUserNotFound = apperr.New(http.StatusNotFound, CodeUserNotFound, "User with entered uuid does not exist")

	ErrUsernameTaken   = apperr.New(http.StatusConflict, CodeUsernameTaken, "Try any other Username, this Username has already been taken")
	ErrEmailTaken      = apperr.New(http.StatusConflict, CodeEmailTaken, "This user has already been registered, try with any other emailId")
	ErrUnknownUsername = apperr.New(http.StatusNotFound, CodeUnknownUsername, "This username does not exist")
	ErrWrongPassword   = apperr.New(http.StatusUnauthorized, CodeWrongPassword, "Password Failed")

	// ErrSignoutRejected reuses SGR-001 for sign-out with an unknown token.
	ErrSignoutRejected = apperr.New(http.StatusUnauthorized, CodeUsernameTaken, "User is not Signed in")

	// ErrTokenCollision is returned by session stores when a token hash already exists.
	ErrTokenCollision = apperr.Conflict("Session token already exists")
)

// SignedOut returns an ATHR-002 error carrying the caller-chosen message.
func SignedOut(msg string) error {
	return ErrSignedOut.WithMessage(msg)
}

// Forbidden returns an ATHR-003 error carrying the rule-specific message.
func Forbidden(msg string) error {
	return ErrForbidden.WithMessage(msg)
}

// UserNotFound returns a USR-001 error carrying the use-case-specific message.
func UserNotFound(msg string) error {
	return ErrUserNotFound.WithMessage(msg)
}
