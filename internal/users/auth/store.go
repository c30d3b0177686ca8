// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// Every finder excludes soft-deleted accounts and reports absence with an
// error matching [dberr.ErrNotFound].
type UserRepository interface {

	/*
		FindByID returns the account with the given internal ID.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *User: Hydrated entity
		  - error: Not found or database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*User, error)

	/*
		FindByUUID returns the account with the given external UUID.

		Parameters:
		  - context: context.Context
		  - uuid: string

		Returns:
		  - *User: Hydrated entity
		  - error: Not found or database retrieval failures
	*/
	FindByUUID(context context.Context, uuid string) (*User, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: Not found or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		FindByUsername returns the account with the given username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: Not found or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		Create persists a brand-new user account and assigns its internal ID.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: ErrUsernameTaken, ErrEmailTaken or persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		SoftDeleteByUUID marks the account as deleted without removing the row.

		Parameters:
		  - context: context.Context
		  - uuid: string
		  - deletedAt: time.Time

		Returns:
		  - int64: Number of accounts affected (0 or 1)
		  - error: Persistence failures
	*/
	SoftDeleteByUUID(context context.Context, uuid string, deletedAt time.Time) (int64, error)
}

// # Session Data Access

// SessionRepository defines the data access contract for sign-in sessions.
//
// Implementations guarantee that token hashes are unique and that
// LoggedOutAt is written at most once. Sessions are never deleted.
type SessionRepository interface {

	/*
		Insert persists a freshly issued session.

		Parameters:
		  - context: context.Context
		  - session: *Session

		Returns:
		  - error: ErrTokenCollision if the token hash exists, or persistence failures
	*/
	Insert(context context.Context, session *Session) error

	/*
		FindByTokenHash returns the session matching the given token hash,
		whether active or not.

		Parameters:
		  - context: context.Context
		  - tokenHash: string

		Returns:
		  - *Session: Hydrated entity
		  - error: Not found or database retrieval failures
	*/
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)

	/*
		Update persists the logout timestamp of a session.

		Only LoggedOutAt is written, and only if it was not already set.
		A concurrent logout that won the race leaves the stored value untouched.

		Parameters:
		  - context: context.Context
		  - session: *Session

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, session *Session) error
}
