// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/quorum/internal/platform/dberr"
	"github.com/taibuivan/quorum/internal/platform/sec"
	"github.com/taibuivan/quorum/pkg/uuid"
)

// Service implements the account entry points: sign-up, sign-in and sign-out.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed by the security team.
type Service struct {
	userRepository UserRepository
	sessions       *SessionService
	logger         *slog.Logger
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, sessions *SessionService, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		userRepository: userRepo,
		sessions:       sessions,
		logger:         logger,
	}
}

// # Registration Flow

// SignupInput holds the data required to enroll a new member.
type SignupInput struct {
	FirstName     string
	LastName      string
	Username      string
	Email         string
	Password      string
	Country       string
	AboutMe       string
	DOB           string
	ContactNumber string
}

/*
Signup hashes the password and persists a brand new non-admin account.

Parameters:
  - context: context.Context
  - input: SignupInput

Returns:
  - *User: Created entity
  - err: ErrUsernameTaken (SGR-001), ErrEmailTaken (SGR-002) or storage errors
*/
func (service *Service) Signup(context context.Context, input SignupInput) (*User, error) {

	// Username is checked first, matching the order clients have always seen
	if err := service.ensureAbsent(context, service.userRepository.FindByUsername, input.Username, ErrUsernameTaken); err != nil {
		return nil, err
	}

	if err := service.ensureAbsent(context, service.userRepository.FindByEmail, input.Email, ErrEmailTaken); err != nil {
		return nil, err
	}

	salt, hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		UUID:          uuid.New(),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Username:      input.Username,
		Email:         input.Email,
		PasswordHash:  hash,
		Salt:          salt,
		Country:       input.Country,
		AboutMe:       input.AboutMe,
		DOB:           input.DOB,
		ContactNumber: input.ContactNumber,
		Role:          sec.RoleNonAdmin,
	}

	// The store repeats both uniqueness checks atomically for racing sign-ups
	if err := service.userRepository.Create(context, user); err != nil {
		if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("auth_service_signup_failed: %w", err)
	}

	service.logger.InfoContext(context, "user_signed_up", slog.String("user_id", user.UUID))

	return user, nil
}

// # Authentication Flow

/*
Signin verifies a username and password and opens a new session.

Parameters:
  - context: context.Context
  - username: string
  - password: string

Returns:
  - *Session: New session with the raw token populated
  - *User: The authenticated account
  - err: ErrUnknownUsername (ATH-001), ErrWrongPassword (ATH-002) or internal failures
*/
func (service *Service) Signin(context context.Context, username, password string) (*Session, *User, error) {
	user, err := service.userRepository.FindByUsername(context, username)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, nil, ErrUnknownUsername
		}
		return nil, nil, fmt.Errorf("auth_service_signin_lookup_failed: %w", err)
	}

	if !sec.VerifyPassword(password, user.Salt, user.PasswordHash) {
		service.logger.WarnContext(context, "signin_password_rejected", slog.String("user_id", user.UUID))
		return nil, nil, ErrWrongPassword
	}

	session, err := service.sessions.IssueSession(context, user)
	if err != nil {
		return nil, nil, err
	}

	return session, user, nil
}

/*
Signout invalidates the caller's session.

Description: Repeating sign-out with the same token succeeds; an unknown
token is reported as SGR-001 "User is not Signed in".

Parameters:
  - context: context.Context
  - token: string

Returns:
  - *User: The account whose session was closed
  - err: ErrSignoutRejected or store failures
*/
func (service *Service) Signout(context context.Context, token string) (*User, error) {
	user, err := service.sessions.Invalidate(context, token)
	if err != nil {
		if errors.Is(err, ErrNotSignedIn) {
			return nil, ErrSignoutRejected
		}
		return nil, err
	}

	return user, nil
}

// ensureAbsent returns conflict when finder locates value, and nil when it reports not found.
func (service *Service) ensureAbsent(
	context context.Context,
	finder func(context.Context, string) (*User, error),
	value string,
	conflict error,
) error {
	_, err := finder(context, value)
	switch {
	case err == nil:
		return conflict
	case errors.Is(err, dberr.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("auth_service_uniqueness_check_failed: %w", err)
	}
}
