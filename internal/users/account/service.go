// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/quorum/internal/platform/dberr"
	"github.com/taibuivan/quorum/internal/users/auth"
)

// # Use-Case Messages

const (
	msgProfileSignedOut = "User is signed out.Sign in first to get user details"
	msgProfileNotFound  = "User with entered uuid does not exist"

	msgDeleteSignedOut = "User is signed out"
	msgDeleteNotFound  = "User with entered uuid to be deleted does not exist"
	msgDeleteForbidden = "Unauthorized Access, Entered user is not an admin"
)

// # Dependencies

// Authenticator resolves a session token to a signed-in user.
type Authenticator interface {
	Authenticate(context context.Context, token, signedOutMessage string) (*auth.User, error)
}

// UserStore is the subset of [auth.UserRepository] this package needs.
type UserStore interface {
	FindByUUID(context context.Context, uuid string) (*auth.User, error)
	SoftDeleteByUUID(context context.Context, uuid string, deletedAt time.Time) (int64, error)
}

// # Service Layer

// Service implements profile lookup and account administration.
type Service struct {
	users         UserStore
	authenticator Authenticator
	logger        *slog.Logger
	now           func() time.Time
}

// NewService constructs a new [Service] with its dependencies.
func NewService(users UserStore, authenticator Authenticator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:         users,
		authenticator: authenticator,
		logger:        logger,
		now:           time.Now,
	}
}

/*
GetProfile returns the public profile of any user to a signed-in caller.

Parameters:
  - context: context.Context
  - token: string
  - userUUID: string

Returns:
  - *auth.User: The requested account
  - error: ATHR-001, ATHR-002, USR-001 or retrieval failures
*/
func (service *Service) GetProfile(context context.Context, token, userUUID string) (*auth.User, error) {
	if _, err := service.authenticator.Authenticate(context, token, msgProfileSignedOut); err != nil {
		return nil, err
	}

	user, err := service.users.FindByUUID(context, userUUID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, auth.UserNotFound(msgProfileNotFound)
		}
		return nil, fmt.Errorf("account_service_get_profile_failed: %w", err)
	}

	return user, nil
}

/*
DeleteUser removes an account on behalf of an admin.

Description: The caller's role is checked before the target is resolved.
Deletion is soft: the row and its sessions remain, but the account can no
longer sign in or authenticate.

Parameters:
  - context: context.Context
  - token: string (the admin's session)
  - userUUID: string (account to delete)

Returns:
  - error: ATHR-001, ATHR-002, ATHR-003, USR-001 or persistence failures
*/
func (service *Service) DeleteUser(context context.Context, token, userUUID string) error {
	caller, err := service.authenticator.Authenticate(context, token, msgDeleteSignedOut)
	if err != nil {
		return err
	}

	if err := auth.RequireAdmin(caller, msgDeleteForbidden); err != nil {
		return err
	}

	affected, err := service.users.SoftDeleteByUUID(context, userUUID, service.now())
	if err != nil {
		return fmt.Errorf("account_service_delete_failed: %w", err)
	}

	if affected == 0 {
		return auth.UserNotFound(msgDeleteNotFound)
	}

	service.logger.WarnContext(context, "user_deleted_by_admin",
		slog.String("user_id", userUUID),
		slog.String("admin_id", caller.UUID),
	)

	return nil
}
