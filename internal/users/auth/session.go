// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/quorum/internal/platform/dberr"
	"github.com/taibuivan/quorum/internal/platform/sec"
	"github.com/taibuivan/quorum/pkg/uuid"
)

// # Contracts & Types

// TokenIssuer produces new, unguessable session tokens.
//
// Tokens are opaque to the session service: they are hashed and looked up,
// never decoded. See [sec.TokenService] and [sec.OpaqueTokenIssuer].
type TokenIssuer interface {
	IssueToken(subject string, issuedAt, expiresAt time.Time) (string, error)
}

// SessionService issues, resolves and invalidates session tokens.
//
// It holds no per-request state; every decision is made against the
// injected [SessionRepository] at call time.
type SessionService struct {
	sessionRepository SessionRepository
	userRepository    UserRepository
	tokenIssuer       TokenIssuer
	now               func() time.Time
	logger            *slog.Logger
}

// SessionOption customises a [SessionService].
type SessionOption func(*SessionService)

// WithClock overrides the time source used for issuance and expiry checks.
func WithClock(now func() time.Time) SessionOption {
	return func(service *SessionService) {
		service.now = now
	}
}

// NewSessionService constructs a [SessionService].
func NewSessionService(
	sessionRepo SessionRepository,
	userRepo UserRepository,
	issuer TokenIssuer,
	logger *slog.Logger,
	options ...SessionOption,
) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}

	service := &SessionService{
		sessionRepository: sessionRepo,
		userRepository:    userRepo,
		tokenIssuer:       issuer,
		now:               time.Now,
		logger:            logger,
	}

	for _, option := range options {
		option(service)
	}

	return service
}

// # Session Lifecycle

/*
IssueSession creates a new session for a user whose credentials were already verified.

Parameters:
  - context: context.Context
  - user: *User

Returns:
  - *Session: Persisted session with the raw Token populated
  - error: Token generation or store failures
*/
func (service *SessionService) IssueSession(context context.Context, user *User) (*Session, error) {
	issuedAt := service.now()
	expiresAt := issuedAt.Add(SessionTTL)

	token, err := service.tokenIssuer.IssueToken(user.UUID, issuedAt, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("auth_session_token_generation_failed: %w", err)
	}

	session := &Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     token,
		TokenHash: sec.HashToken(token),
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}

	if err := service.sessionRepository.Insert(context, session); err != nil {
		return nil, fmt.Errorf("auth_session_insert_failed: %w", err)
	}

	service.logger.InfoContext(context, "session_issued",
		slog.String("session_id", session.ID),
		slog.String("user_id", user.UUID),
		slog.Time("expires_at", expiresAt),
	)

	return session, nil
}

/*
Authenticate resolves a token into the signed-in user.

Description: The single entry point every access-controlled use case calls
first. Expiry and logout are evaluated at call time and both surface as
ATHR-002 with the caller's message. Nothing is mutated.

Parameters:
  - context: context.Context
  - token: string (raw, as sent by the client)
  - signedOutMessage: string (message used if the session is no longer active)

Returns:
  - *User: The session owner
  - error: ErrNotSignedIn, SignedOut(signedOutMessage) or store failures
*/
func (service *SessionService) Authenticate(context context.Context, token, signedOutMessage string) (*User, error) {
	session, err := service.lookup(context, token)
	if err != nil {
		return nil, err
	}

	if !session.IsActive(service.now()) {
		return nil, SignedOut(signedOutMessage)
	}

	return service.owner(context, session)
}

/*
Invalidate ends the session identified by token.

Description: Sets LoggedOutAt once. Calling it on an already logged-out
session succeeds without touching the stored timestamp.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - *User: The session owner
  - error: ErrNotSignedIn or store failures
*/
func (service *SessionService) Invalidate(context context.Context, token string) (*User, error) {
	session, err := service.lookup(context, token)
	if err != nil {
		return nil, err
	}

	user, err := service.owner(context, session)
	if err != nil {
		return nil, err
	}

	// Already logged out: idempotent success
	if session.LoggedOutAt != nil {
		return user, nil
	}

	loggedOutAt := service.now()
	if loggedOutAt.Before(session.IssuedAt) {
		loggedOutAt = session.IssuedAt
	}
	session.LoggedOutAt = &loggedOutAt

	if err := service.sessionRepository.Update(context, session); err != nil {
		return nil, fmt.Errorf("auth_session_invalidate_failed: %w", err)
	}

	service.logger.InfoContext(context, "session_invalidated",
		slog.String("session_id", session.ID),
		slog.String("user_id", user.UUID),
	)

	return user, nil
}

// # Internal Helpers

// lookup finds the session for a raw token, mapping absence to ErrNotSignedIn.
func (service *SessionService) lookup(context context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNotSignedIn
	}

	session, err := service.sessionRepository.FindByTokenHash(context, sec.HashToken(token))
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, ErrNotSignedIn
		}
		return nil, fmt.Errorf("auth_session_lookup_failed: %w", err)
	}

	return session, nil
}

// owner loads the identity behind a session. Removed accounts are treated as never signed in.
func (service *SessionService) owner(context context.Context, session *Session) (*User, error) {
	user, err := service.userRepository.FindByID(context, session.UserID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, ErrNotSignedIn
		}
		return nil, fmt.Errorf("auth_session_owner_lookup_failed: %w", err)
	}

	return user, nil
}
