// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/quorum/internal/platform/apperr"
	"github.com/taibuivan/quorum/internal/platform/constants"
	"github.com/taibuivan/quorum/internal/platform/middleware"
	"github.com/taibuivan/quorum/internal/platform/sec"
	"github.com/taibuivan/quorum/internal/users/account"
	"github.com/taibuivan/quorum/internal/users/auth"
)

const password = "s3cret-password"

type fixture struct {
	users    *auth.MemoryUserRepository
	accounts *auth.Service
	sessions *auth.SessionService
	service  *account.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := auth.NewMemoryUserRepository()
	sessions := auth.NewSessionService(auth.NewMemorySessionRepository(), users, sec.NewOpaqueTokenIssuer(), logger)

	return &fixture{
		users:    users,
		accounts: auth.NewService(users, sessions, logger),
		sessions: sessions,
		service:  account.NewService(users, sessions, logger),
	}
}

func (f *fixture) member(t *testing.T, username string, role sec.UserRole) (*auth.User, string) {
	t.Helper()

	user, err := f.accounts.Signup(context.Background(), auth.SignupInput{
		FirstName: "First",
		LastName:  "Last",
		Username:  username,
		Email:     username + "@example.com",
		Password:  password,
	})
	require.NoError(t, err)
	require.NoError(t, f.users.SetRole(context.Background(), user.UUID, role))

	session, _, err := f.accounts.Signin(context.Background(), username, password)
	require.NoError(t, err)

	return user, session.Token
}

/*
TestDeleteUser_ByAdmin removes the account and locks out its sessions.
*/
func TestDeleteUser_ByAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, adminToken := f.member(t, "root", sec.RoleAdmin)
	victim, victimToken := f.member(t, "alice", sec.RoleNonAdmin)

	require.NoError(t, f.service.DeleteUser(ctx, adminToken, victim.UUID))

	// 1. The account no longer resolves
	_, err := f.service.GetProfile(ctx, adminToken, victim.UUID)
	assert.True(t, errors.Is(err, auth.ErrUserNotFound))

	// 2. Its session no longer authenticates
	_, err = f.sessions.Authenticate(ctx, victimToken, "signed out")
	assert.True(t, errors.Is(err, auth.ErrNotSignedIn))

	// 3. Deleting again reports USR-001 with the delete-specific message
	err = f.service.DeleteUser(ctx, adminToken, victim.UUID)
	assert.True(t, errors.Is(err, auth.ErrUserNotFound))
	assert.Equal(t, "User with entered uuid to be deleted does not exist", apperr.As(err).Message)
}

/*
TestDeleteUser_NonAdmin is forbidden regardless of whether the target exists.
*/
func TestDeleteUser_NonAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, token := f.member(t, "alice", sec.RoleNonAdmin)
	target, _ := f.member(t, "bob", sec.RoleNonAdmin)

	for _, id := range []string{target.UUID, "0190c0de-0000-7000-8000-00000000dead"} {
		err := f.service.DeleteUser(ctx, token, id)
		require.Error(t, err)
		assert.True(t, errors.Is(err, auth.ErrForbidden))
		assert.Equal(t, "Unauthorized Access, Entered user is not an admin", apperr.As(err).Message)
	}

	_, err := f.users.FindByUUID(ctx, target.UUID)
	assert.NoError(t, err)
}

/*
TestGetProfile covers lookup, unknown users and signed-out callers.
*/
func TestGetProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice, token := f.member(t, "alice", sec.RoleNonAdmin)

	profile, err := f.service.GetProfile(ctx, token, alice.UUID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)

	_, err = f.service.GetProfile(ctx, token, "missing")
	assert.True(t, errors.Is(err, auth.ErrUserNotFound))
	assert.Equal(t, "User with entered uuid does not exist", apperr.As(err).Message)

	_, err = f.accounts.Signout(ctx, token)
	require.NoError(t, err)

	_, err = f.service.GetProfile(ctx, token, alice.UUID)
	assert.True(t, errors.Is(err, auth.ErrSignedOut))
	assert.Equal(t, "User is signed out.Sign in first to get user details", apperr.As(err).Message)
}

/*
TestHandler_Routes checks status codes for profile and admin endpoints.
*/
func TestHandler_Routes(t *testing.T) {
	f := newFixture(t)
	_, adminToken := f.member(t, "root", sec.RoleAdmin)
	alice, aliceToken := f.member(t, "alice", sec.RoleNonAdmin)

	handler := account.NewHandler(f.service)
	router := chi.NewRouter()
	router.Use(middleware.AccessToken())
	router.Mount("/userprofile", handler.ProfileRoutes())
	router.Mount("/admin", handler.AdminRoutes())

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{"profile", http.MethodGet, "/userprofile/" + alice.UUID, aliceToken, http.StatusOK},
		{"profile_anonymous", http.MethodGet, "/userprofile/" + alice.UUID, "", http.StatusUnauthorized},
		{"delete_by_member", http.MethodDelete, "/admin/user/" + alice.UUID, aliceToken, http.StatusForbidden},
		{"delete_by_admin", http.MethodDelete, "/admin/user/" + alice.UUID, adminToken, http.StatusOK},
		{"delete_again", http.MethodDelete, "/admin/user/" + alice.UUID, adminToken, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				request.Header.Set(constants.HeaderAuthorization, tt.token)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
