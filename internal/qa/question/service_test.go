// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package question_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/quorum/internal/platform/apperr"
	"github.com/taibuivan/quorum/internal/qa/question"
	"github.com/taibuivan/quorum/internal/users/auth"
)

/*
TestOwnershipLifecycle: A creates, B cannot delete, A deletes, the question is gone.
*/
func TestOwnershipLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, tokenA := f.member(t, "alice")
	_, tokenB := f.member(t, "bob")

	created, err := f.service.Create(ctx, tokenA, "What is a goroutine?")
	require.NoError(t, err)

	// 1. Stranger is forbidden
	err = f.service.Delete(ctx, tokenB, created.UUID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrForbidden))
	assert.Equal(t, "Only the question owner or admin can delete the question", apperr.As(err).Message)

	_, err = f.questions.FindByUUID(ctx, created.UUID)
	require.NoError(t, err)

	// 2. Owner deletes
	require.NoError(t, f.service.Delete(ctx, tokenA, created.UUID))

	_, err = f.questions.FindByUUID(ctx, created.UUID)
	assert.Error(t, err)

	// 3. Deleting again reports QUES-001
	err = f.service.Delete(ctx, tokenA, created.UUID)
	assert.True(t, errors.Is(err, question.ErrQuestionNotFound))
}

/*
TestEdit_PreservesOwnerAndCreation checks that editing only replaces content.
*/
func TestEdit_PreservesOwnerAndCreation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice, token := f.member(t, "alice")

	created, err := f.service.Create(ctx, token, "original")
	require.NoError(t, err)

	edited, err := f.service.Edit(ctx, token, created.UUID, "rewritten")
	require.NoError(t, err)

	stored, err := f.questions.FindByUUID(ctx, created.UUID)
	require.NoError(t, err)

	for _, q := range []*question.Question{edited, stored} {
		assert.Equal(t, "rewritten", q.Content)
		assert.Equal(t, created.ID, q.ID)
		assert.Equal(t, alice.UUID, q.OwnerUUID)
		assert.Equal(t, alice.ID, q.OwnerID)
		assert.True(t, created.CreatedAt.Equal(q.CreatedAt))
	}
}

/*
TestEdit_Rules covers owner-only editing and lookup failures.
*/
func TestEdit_Rules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, ownerToken := f.member(t, "alice")
	_, adminToken := f.admin(t, "root")

	created, err := f.service.Create(ctx, ownerToken, "original")
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		questionID  string
		wantErr     error
		wantMessage string
	}{
		{"admin_is_not_owner", adminToken, created.UUID, auth.ErrForbidden, "Only the question owner can edit the question"},
		{"unknown_question", ownerToken, "0190c0de-0000-7000-8000-00000000dead", question.ErrQuestionNotFound, "Entered question uuid does not exist"},
		{"anonymous", "", created.UUID, auth.ErrNotSignedIn, "User has not signed in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Edit(ctx, tt.token, tt.questionID, "hijacked")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Equal(t, tt.wantMessage, apperr.As(err).Message)
		})
	}

	stored, err := f.questions.FindByUUID(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Content)
}

/*
TestDelete_ByAdmin lets an admin remove someone else's question.
*/
func TestDelete_ByAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, ownerToken := f.member(t, "alice")
	_, adminToken := f.admin(t, "root")

	created, err := f.service.Create(ctx, ownerToken, "spam")
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, adminToken, created.UUID))
}

/*
TestSignedOutMessages verifies that every use case reports its own message after sign-out.
*/
func TestSignedOutMessages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice, token := f.member(t, "alice")

	created, err := f.service.Create(ctx, token, "before sign-out")
	require.NoError(t, err)

	_, err = f.accounts.Signout(ctx, token)
	require.NoError(t, err)

	tests := []struct {
		name    string
		call    func() error
		message string
	}{
		{"create", func() error { _, err := f.service.Create(ctx, token, "x"); return err }, "User is signed out.Sign in first to post a question"},
		{"list", func() error { _, err := f.service.List(ctx, token); return err }, "User is signed out.Sign in first to get all questions"},
		{"list_by_user", func() error { _, err := f.service.ListByUser(ctx, token, alice.UUID); return err }, "User is signed out.Sign in first to get all questions posted by a specific user"},
		{"edit", func() error { _, err := f.service.Edit(ctx, token, created.UUID, "x"); return err }, "User is signed out.Sign in first to edit the question"},
		{"delete", func() error { return f.service.Delete(ctx, token, created.UUID) }, "User is signed out.Sign in first to post a question"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, auth.ErrSignedOut))
			assert.Equal(t, tt.message, apperr.As(err).Message)
		})
	}
}

/*
TestListings covers global and per-user listings.
*/
func TestListings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice, tokenA := f.member(t, "alice")
	bob, tokenB := f.member(t, "bob")

	for _, content := range []string{"a1", "a2"} {
		_, err := f.service.Create(ctx, tokenA, content)
		require.NoError(t, err)
	}
	_, err := f.service.Create(ctx, tokenB, "b1")
	require.NoError(t, err)

	all, err := f.service.List(ctx, tokenB)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Any signed-in user may list another user's questions
	byAlice, err := f.service.ListByUser(ctx, tokenB, alice.UUID)
	require.NoError(t, err)
	require.Len(t, byAlice, 2)
	assert.Equal(t, "a1", byAlice[0].Content)
	assert.Equal(t, "a2", byAlice[1].Content)

	byBob, err := f.service.ListByUser(ctx, tokenA, bob.UUID)
	require.NoError(t, err)
	assert.Len(t, byBob, 1)

	_, err = f.service.ListByUser(ctx, tokenA, "0190c0de-0000-7000-8000-00000000dead")
	assert.True(t, errors.Is(err, auth.ErrUserNotFound))
	assert.Equal(t, "User with entered uuid whose question details are to be seen does not exist", apperr.As(err).Message)
}

/*
TestMemoryRepository_OnDelete fires the cascade callback with the internal ID.
*/
func TestMemoryRepository_OnDelete(t *testing.T) {
	var removed []int64
	repository := question.NewMemoryRepository(question.OnDelete(func(_ context.Context, id int64) {
		removed = append(removed, id)
	}))

	q := &question.Question{UUID: "q-1", Content: "x"}
	require.NoError(t, repository.Create(context.Background(), q))

	affected, err := repository.DeleteByUUID(context.Background(), "q-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, []int64{q.ID}, removed)

	affected, err = repository.DeleteByUUID(context.Background(), "q-1")
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.Len(t, removed, 1)
}
