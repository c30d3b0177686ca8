// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"sync"
	"time"

	"github.com/taibuivan/quorum/internal/platform/apperr"
	"github.com/taibuivan/quorum/internal/platform/sec"
)

// # In-Memory Adapters
//
// Used by tests and by STORAGE_BACKEND=memory for local development.
// A single mutex per store provides the per-record atomicity the
// repository contracts require.

type memoryUser struct {
	user      User
	deletedAt *time.Time
}

// MemoryUserRepository implements UserRepository on a map.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*memoryUser
}

// NewMemoryUserRepository returns an empty in-memory account store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[int64]*memoryUser)}
}

// Create stores a copy of user and assigns its ID. Uniqueness includes soft-deleted rows.
func (repository *MemoryUserRepository) Create(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	// Username conflicts win over email conflicts regardless of map order.
	for _, row := range repository.users {
		if row.user.Username == user.Username {
			return ErrUsernameTaken
		}
	}
	for _, row := range repository.users {
		if row.user.Email == user.Email {
			return ErrEmailTaken
		}
	}

	repository.nextID++
	user.ID = repository.nextID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	repository.users[user.ID] = &memoryUser{user: *user}
	return nil
}

// FindByID returns an active account by internal key.
func (repository *MemoryUserRepository) FindByID(_ context.Context, id int64) (*User, error) {
	return repository.find(func(user *User) bool { return user.ID == id })
}

// FindByUUID returns an active account by external identifier.
func (repository *MemoryUserRepository) FindByUUID(_ context.Context, id string) (*User, error) {
	return repository.find(func(user *User) bool { return user.UUID == id })
}

// FindByEmail returns an active account by email.
func (repository *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	return repository.find(func(user *User) bool { return user.Email == email })
}

// FindByUsername returns an active account by username.
func (repository *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	return repository.find(func(user *User) bool { return user.Username == username })
}

// SoftDeleteByUUID marks at most one active account as deleted.
func (repository *MemoryUserRepository) SoftDeleteByUUID(_ context.Context, id string, deletedAt time.Time) (int64, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, row := range repository.users {
		if row.user.UUID == id && row.deletedAt == nil {
			stamp := deletedAt
			row.deletedAt = &stamp
			return 1, nil
		}
	}

	return 0, nil
}

// SetRole changes an account's role. Admins are provisioned out of band, so
// only bootstrap code and tests call this.
func (repository *MemoryUserRepository) SetRole(_ context.Context, id string, role sec.UserRole) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, row := range repository.users {
		if row.user.UUID == id {
			row.user.Role = role
			return nil
		}
	}

	return apperr.NotFound("User")
}

func (repository *MemoryUserRepository) find(match func(*User) bool) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, row := range repository.users {
		if row.deletedAt == nil && match(&row.user) {
			found := row.user
			return &found, nil
		}
	}

	return nil, apperr.NotFound("User")
}

// MemorySessionRepository implements SessionRepository on a map keyed by token hash.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemorySessionRepository returns an empty in-memory session store.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]Session)}
}

// Insert stores a session unless its token hash is already present.
func (repository *MemorySessionRepository) Insert(_ context.Context, session *Session) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.sessions[session.TokenHash]; exists {
		return ErrTokenCollision
	}

	stored := *session
	stored.Token = ""
	repository.sessions[session.TokenHash] = stored
	return nil
}

// FindByTokenHash returns a copy of the stored session.
func (repository *MemorySessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*Session, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	stored, ok := repository.sessions[tokenHash]
	if !ok {
		return nil, apperr.NotFound("Session")
	}

	if stored.LoggedOutAt != nil {
		loggedOutAt := *stored.LoggedOutAt
		stored.LoggedOutAt = &loggedOutAt
	}

	return &stored, nil
}

// Update sets LoggedOutAt if and only if it is still unset.
func (repository *MemorySessionRepository) Update(_ context.Context, session *Session) error {
	if session.LoggedOutAt == nil {
		return nil
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.sessions[session.TokenHash]
	if !ok {
		return apperr.NotFound("Session")
	}

	if stored.LoggedOutAt != nil {
		return nil
	}

	loggedOutAt := *session.LoggedOutAt
	stored.LoggedOutAt = &loggedOutAt
	repository.sessions[session.TokenHash] = stored
	return nil
}
