// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package answer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/quorum/internal/platform/apperr"
	"github.com/taibuivan/quorum/internal/qa/answer"
	"github.com/taibuivan/quorum/internal/qa/question"
	"github.com/taibuivan/quorum/internal/users/auth"
)

const missingUUID = "0190c0de-0000-7000-8000-00000000dead"

/*
TestCreate_RequiresExistingQuestion reports QUES-001 with the create-specific message.
*/
func TestCreate_RequiresExistingQuestion(t *testing.T) {
	f := newFixture(t)
	_, token := f.member(t, "alice")

	_, err := f.service.Create(context.Background(), token, missingUUID, "answer")
	require.Error(t, err)
	assert.True(t, errors.Is(err, question.ErrQuestionNotFound))
	assert.Equal(t, "The question entered is invalid", apperr.As(err).Message)
}

/*
TestAnswerLifecycle: A answers, B cannot edit or delete, A edits, admin deletes.
*/
func TestAnswerLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice, tokenA := f.member(t, "alice")
	_, tokenB := f.member(t, "bob")
	_, tokenRoot := f.admin(t, "root")

	asked := f.ask(t, tokenB, "How do I close a channel?")

	posted, err := f.service.Create(ctx, tokenA, asked.UUID, "close(ch)")
	require.NoError(t, err)
	assert.Equal(t, asked.UUID, posted.QuestionUUID)
	assert.Equal(t, alice.UUID, posted.OwnerUUID)

	// 1. Stranger edit and delete
	_, err = f.service.Edit(ctx, tokenB, posted.UUID, "hijack")
	assert.True(t, errors.Is(err, auth.ErrForbidden))
	assert.Equal(t, "Only the question owner or admin can delete the question", apperr.As(err).Message)

	err = f.service.Delete(ctx, tokenB, posted.UUID)
	assert.True(t, errors.Is(err, auth.ErrForbidden))
	assert.Equal(t, "Only the question owner or admin can delete the question", apperr.As(err).Message)

	// 2. Admin cannot edit someone else's answer
	_, err = f.service.Edit(ctx, tokenRoot, posted.UUID, "moderated")
	assert.True(t, errors.Is(err, auth.ErrForbidden))

	// 3. Owner edits; identity fields are preserved
	edited, err := f.service.Edit(ctx, tokenA, posted.UUID, "close(ch) from the sender")
	require.NoError(t, err)
	assert.Equal(t, posted.ID, edited.ID)
	assert.Equal(t, posted.OwnerUUID, edited.OwnerUUID)
	assert.Equal(t, posted.QuestionID, edited.QuestionID)
	assert.True(t, posted.CreatedAt.Equal(edited.CreatedAt))

	// 4. Admin deletes
	require.NoError(t, f.service.Delete(ctx, tokenRoot, posted.UUID))

	_, err = f.answers.FindByUUID(ctx, posted.UUID)
	assert.Error(t, err)

	err = f.service.Delete(ctx, tokenA, posted.UUID)
	assert.True(t, errors.Is(err, answer.ErrAnswerNotFound))
}

/*
TestListByQuestion returns answers in order and reports unknown questions.
*/
func TestListByQuestion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, token := f.member(t, "alice")
	asked := f.ask(t, token, "q")

	for _, content := range []string{"first", "second"} {
		_, err := f.service.Create(ctx, token, asked.UUID, content)
		require.NoError(t, err)
	}

	parent, answers, err := f.service.ListByQuestion(ctx, token, asked.UUID)
	require.NoError(t, err)
	assert.Equal(t, "q", parent.Content)
	require.Len(t, answers, 2)
	assert.Equal(t, "first", answers[0].Content)
	assert.Equal(t, "second", answers[1].Content)

	_, _, err = f.service.ListByQuestion(ctx, token, missingUUID)
	assert.True(t, errors.Is(err, question.ErrQuestionNotFound))
	assert.Equal(t, "The question with entered uuid whose details are to be seen does not exist", apperr.As(err).Message)
}

/*
TestQuestionDelete_CascadesAnswers removes answers along with their question.
*/
func TestQuestionDelete_CascadesAnswers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, token := f.member(t, "alice")
	asked := f.ask(t, token, "q")

	posted, err := f.service.Create(ctx, token, asked.UUID, "a")
	require.NoError(t, err)

	require.NoError(t, f.questions.Delete(ctx, token, asked.UUID))

	_, err = f.answers.FindByUUID(ctx, posted.UUID)
	assert.Error(t, err)
}

/*
TestSignedOutMessages verifies each answer use case reports its own message.
*/
func TestSignedOutMessages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, token := f.member(t, "alice")
	asked := f.ask(t, token, "q")

	posted, err := f.service.Create(ctx, token, asked.UUID, "a")
	require.NoError(t, err)

	_, err = f.accounts.Signout(ctx, token)
	require.NoError(t, err)

	tests := []struct {
		name    string
		call    func() error
		message string
	}{
		{"create", func() error { _, err := f.service.Create(ctx, token, asked.UUID, "x"); return err }, "User is signed out.Sign in first to post a question"},
		{"edit", func() error { _, err := f.service.Edit(ctx, token, posted.UUID, "x"); return err }, "User is signed out.Sign in first to post a question"},
		{"delete", func() error { return f.service.Delete(ctx, token, posted.UUID) }, "User is signed out.Sign in first to post a question"},
		{"list", func() error { _, _, err := f.service.ListByQuestion(ctx, token, asked.UUID); return err }, "User is signed out.Sign in first to post a question"},
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
