// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/quorum/internal/platform/apperr"
	"github.com/taibuivan/quorum/internal/platform/dberr"
	"github.com/taibuivan/quorum/pkg/uuid"
)

// Unique constraint names declared in data/migrations.
const (
	constraintAccountUsername = "account_username_key"
	constraintAccountEmail    = "account_email_key"
	constraintSessionToken    = "session_tokenhash_key"
)

// # User Repository
//
// Storage-specific errors (like pgx.ErrNoRows) are mapped to domain-friendly
// [apperr.AppError] types to avoid leaking storage implementation details.

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

const userColumns = `
	id, uuid, firstname, lastname, username, email, passwordhash, salt,
	country, aboutme, dob, contactnumber, role, createdat`

/*
Create persists a new user record into the users.account table.

Description: Relies on the table's unique constraints as the final arbiter
of username and email uniqueness, so two racing sign-ups cannot both win.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist; ID is filled in)

Returns:
  - error: ErrUsernameTaken, ErrEmailTaken or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (
			uuid, firstname, lastname, username, email, passwordhash, salt,
			country, aboutme, dob, contactnumber, role, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	err := repository.pool.QueryRow(context, query,
		user.UUID,
		user.FirstName,
		user.LastName,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Salt,
		user.Country,
		user.AboutMe,
		user.DOB,
		user.ContactNumber,
		user.Role,
		user.CreatedAt,
	).Scan(&user.ID)

	if err != nil {
		if constraint, ok := dberr.UniqueViolation(err); ok {
			switch constraint {
			case constraintAccountUsername:
				return ErrUsernameTaken
			case constraintAccountEmail:
				return ErrEmailTaken
			}
		}
		return fmt.Errorf("postgres_user_repo_create_failed: %w", err)
	}

	return nil
}

// FindByID retrieves an active account by its internal key.
func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	return repository.findOne(context, "id = $1", id)
}

// FindByUUID retrieves an active account by its external identifier.
func (repository *PostgresUserRepository) FindByUUID(context context.Context, id string) (*User, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("User")
	}
	return repository.findOne(context, "uuid = $1", id)
}

// FindByEmail retrieves an active account by its unique email address.
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.findOne(context, "email = $1", email)
}

// FindByUsername retrieves an active account by its unique username.
func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findOne(context, "username = $1", username)
}

/*
SoftDeleteByUUID stamps deletedat on a single active account.

Parameters:
  - context: context.Context
  - id: string (external UUID)
  - deletedAt: time.Time

Returns:
  - int64: Rows affected (0 when the account is absent or already deleted)
  - error: Execution failures
*/
func (repository *PostgresUserRepository) SoftDeleteByUUID(context context.Context, id string, deletedAt time.Time) (int64, error) {
	if !uuid.Valid(id) {
		return 0, nil
	}

	const query = `UPDATE users.account SET deletedat = $2 WHERE uuid = $1 AND deletedat IS NULL`

	tag, err := repository.pool.Exec(context, query, id, deletedAt)
	if err != nil {
		return 0, fmt.Errorf("postgres_user_repo_soft_delete_failed: %w", err)
	}

	return tag.RowsAffected(), nil
}

// findOne runs a single-row lookup filtered by predicate, skipping soft-deleted rows.
func (repository *PostgresUserRepository) findOne(context context.Context, predicate string, argument any) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users.account WHERE ` + predicate + ` AND deletedat IS NULL`

	user := &User{}
	err := repository.pool.QueryRow(context, query, argument).Scan(
		&user.ID,
		&user.UUID,
		&user.FirstName,
		&user.LastName,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Salt,
		&user.Country,
		&user.AboutMe,
		&user.DOB,
		&user.ContactNumber,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_failed: %w", err)
	}

	return user, nil
}

// # Session Repository

// PostgresSessionRepository implements the SessionRepository interface using pgx.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new PostgreSQL implementation of the SessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

/*
Insert persists a freshly issued session.

Parameters:
  - context: context.Context
  - session: *Session

Returns:
  - error: ErrTokenCollision on a duplicate token hash, or execution failures
*/
func (repository *PostgresSessionRepository) Insert(context context.Context, session *Session) error {
	const query = `
		INSERT INTO users.session (id, userid, tokenhash, issuedat, expiresat)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := repository.pool.Exec(context, query,
		session.ID,
		session.UserID,
		session.TokenHash,
		session.IssuedAt,
		session.ExpiresAt,
	)

	if err != nil {
		if constraint, ok := dberr.UniqueViolation(err); ok && constraint == constraintSessionToken {
			return ErrTokenCollision
		}
		return fmt.Errorf("postgres_session_repo_insert_failed: %w", err)
	}

	return nil
}

/*
FindByTokenHash returns the session with the given token hash, active or not.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - *Session: Hydrated entity
  - error: apperr.NotFound or execution failures
*/
func (repository *PostgresSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	const query = `
		SELECT id, userid, tokenhash, issuedat, expiresat, loggedoutat
		FROM users.session
		WHERE tokenhash = $1`

	session := &Session{}
	err := repository.pool.QueryRow(context, query, tokenHash).Scan(
		&session.ID,
		&session.UserID,
		&session.TokenHash,
		&session.IssuedAt,
		&session.ExpiresAt,
		&session.LoggedOutAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Session")
		}
		return nil, fmt.Errorf("postgres_session_repo_find_failed: %w", err)
	}

	return session, nil
}

/*
Update writes loggedoutat once.

Description: The "loggedoutat IS NULL" guard makes the write set-once at
the row level; a second writer affects zero rows and is not an error.

Parameters:
  - context: context.Context
  - session: *Session

Returns:
  - error: Execution failures
*/
func (repository *PostgresSessionRepository) Update(context context.Context, session *Session) error {
	if session.LoggedOutAt == nil {
		return nil
	}

	const query = `
		UPDATE users.session
		SET loggedoutat = $2
		WHERE tokenhash = $1 AND loggedoutat IS NULL`

	if _, err := repository.pool.Exec(context, query, session.TokenHash, *session.LoggedOutAt); err != nil {
		return fmt.Errorf("postgres_session_repo_update_failed: %w", err)
	}

	return nil
}
