// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package question_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/quorum/internal/platform/sec"
	"github.com/taibuivan/quorum/internal/qa/question"
	"github.com/taibuivan/quorum/internal/users/auth"
)

const password = "s3cret-password"

type fixture struct {
	users     *auth.MemoryUserRepository
	accounts  *auth.Service
	questions *question.MemoryRepository
	service   *question.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := auth.NewMemoryUserRepository()
	sessions := auth.NewSessionService(auth.NewMemorySessionRepository(), users, sec.NewOpaqueTokenIssuer(), logger)
	questions := question.NewMemoryRepository()

	return &fixture{
		users:     users,
		accounts:  auth.NewService(users, sessions, logger),
		questions: questions,
		service:   question.NewService(questions, sessions, users, logger),
	}
}

// member signs up and signs in a user, returning the account and a live token.
func (f *fixture) member(t *testing.T, username string) (*auth.User, string) {
	t.Helper()

	user, err := f.accounts.Signup(context.Background(), auth.SignupInput{
		FirstName: "First",
		LastName:  "Last",
		Username:  username,
		Email:     username + "@example.com",
		Password:  password,
	})
	require.NoError(t, err)

	session, _, err := f.accounts.Signin(context.Background(), username, password)
	require.NoError(t, err)

	return user, session.Token
}

// admin is like member but promotes the account before returning.
func (f *fixture) admin(t *testing.T, username string) (*auth.User, string) {
	t.Helper()

	user, token := f.member(t, username)
	require.NoError(t, f.users.SetRole(context.Background(), user.UUID, sec.RoleAdmin))
	user.Role = sec.RoleAdmin
	return user, token
}
