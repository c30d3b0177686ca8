// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/quorum/internal/platform/sec"
	"github.com/taibuivan/quorum/internal/users/auth"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) Advance(d time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = clock.now.Add(d)
}

type fixture struct {
	users          *auth.MemoryUserRepository
	sessions       *auth.MemorySessionRepository
	sessionService *auth.SessionService
	service        *auth.Service
	clock          *fakeClock
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := newFakeClock()
	users := auth.NewMemoryUserRepository()
	sessions := auth.NewMemorySessionRepository()
	sessionService := auth.NewSessionService(sessions, users, sec.NewOpaqueTokenIssuer(), discardLogger(), auth.WithClock(clock.Now))

	return &fixture{
		users:          users,
		sessions:       sessions,
		sessionService: sessionService,
		service:        auth.NewService(users, sessionService, discardLogger()),
		clock:          clock,
	}
}

// signup registers a user with a predictable email and the given password.
func (f *fixture) signup(t *testing.T, username, password string) *auth.User {
	t.Helper()

	user, err := f.service.Signup(context.Background(), auth.SignupInput{
		FirstName: "First",
		LastName:  "Last",
		Username:  username,
		Email:     username + "@example.com",
		Password:  password,
	})
	require.NoError(t, err)
	return user
}

// signin returns a fresh raw token for username.
func (f *fixture) signin(t *testing.T, username, password string) string {
	t.Helper()

	session, _, err := f.service.Signin(context.Background(), username, password)
	require.NoError(t, err)
	return session.Token
}
