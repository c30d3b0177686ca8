// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/quorum/internal/platform/apperr"
)

/*
TestAppError_IsMatchesOnCode verifies that errors.Is compares codes, not messages.
*/
func TestAppError_IsMatchesOnCode(t *testing.T) {
	sentinel := apperr.New(http.StatusUnauthorized, "ATHR-002", "User is signed out")

	tests := []struct {
		name    string
		err     error
		matches bool
	}{
		{"same_instance", sentinel, true},
		{"different_message", sentinel.WithMessage("Sign in first to post a question"), true},
		{"wrapped", fmt.Errorf("question_service_create_failed: %w", sentinel), true},
		{"other_code", apperr.New(http.StatusUnauthorized, "ATHR-001", "User has not signed in"), false},
		{"plain_error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, errors.Is(tt.err, sentinel))
		})
	}
}

/*
TestAppError_WithMessageKeepsOriginal verifies that WithMessage does not mutate the sentinel.
*/
func TestAppError_WithMessageKeepsOriginal(t *testing.T) {
	sentinel := apperr.New(http.StatusForbidden, "ATHR-003", "Forbidden")

	clone := sentinel.WithMessage("Only the question owner can edit the question")

	assert.Equal(t, "Forbidden", sentinel.Message)
	assert.Equal(t, "Only the question owner can edit the question", clone.Message)
	assert.Equal(t, http.StatusForbidden, clone.HTTPStatus)
}

/*
TestAs extracts the AppError from a wrapped chain.
*/
func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", apperr.Conflict("taken"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.True(t, apperr.IsAppError(wrapped))

	assert.Nil(t, apperr.As(errors.New("plain")))
}
