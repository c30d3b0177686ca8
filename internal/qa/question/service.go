// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package question

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/quorum/internal/platform/dberr"
	"github.com/taibuivan/quorum/internal/users/auth"
	"github.com/taibuivan/quorum/pkg/uuid"
)

// # Use-Case Messages

const (
	msgCreateSignedOut     = "User is signed out.Sign in first to post a question"
	msgListSignedOut       = "User is signed out.Sign in first to get all questions"
	msgListByUserSignedOut = "User is signed out.Sign in first to get all questions posted by a specific user"
	msgEditSignedOut       = "User is signed out.Sign in first to edit the question"
	msgDeleteSignedOut     = msgCreateSignedOut

	msgOwnerNotFound    = "User with entered uuid whose question details are to be seen does not exist"
	msgQuestionNotFound = "Entered question uuid does not exist"

	msgEditForbidden   = "Only the question owner can edit the question"
	msgDeleteForbidden = "Only the question owner or admin can delete the question"
)

// # Dependencies

// Authenticator resolves a session token to a signed-in user.
//
// [auth.SessionService] satisfies it.
type Authenticator interface {
	Authenticate(context context.Context, token, signedOutMessage string) (*auth.User, error)
}

// UserFinder looks up accounts by external UUID.
type UserFinder interface {
	FindByUUID(context context.Context, uuid string) (*auth.User, error)
}

// Service implements the question use cases.
type Service struct {
	repository    Repository
	authenticator Authenticator
	users         UserFinder
	logger        *slog.Logger
	now           func() time.Time
}

// NewService constructs a new [Service].
func NewService(repository Repository, authenticator Authenticator, users UserFinder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repository:    repository,
		authenticator: authenticator,
		users:         users,
		logger:        logger,
		now:           time.Now,
	}
}

// # Commands

/*
Create posts a new question owned by the caller.

Parameters:
  - context: context.Context
  - token: string (caller's session token)
  - content: string

Returns:
  - *Question: Created entity
  - error: ATHR-001, ATHR-002 or persistence failures
*/
func (service *Service) Create(context context.Context, token, content string) (*Question, error) {
	user, err := service.authenticator.Authenticate(context, token, msgCreateSignedOut)
	if err != nil {
		return nil, err
	}

	question := &Question{
		UUID:      uuid.New(),
		Content:   content,
		OwnerID:   user.ID,
		OwnerUUID: user.UUID,
		CreatedAt: service.now(),
	}

	if err := service.repository.Create(context, question); err != nil {
		return nil, fmt.Errorf("question_service_create_failed: %w", err)
	}

	service.logger.InfoContext(context, "question_created",
		slog.String("question_id", question.UUID),
		slog.String("user_id", user.UUID),
	)

	return question, nil
}

/*
Edit replaces the content of a question. Only its owner may do so.

Parameters:
  - context: context.Context
  - token: string
  - questionUUID: string
  - content: string

Returns:
  - *Question: Updated entity with owner and creation time unchanged
  - error: ATHR-001, ATHR-002, QUES-001, ATHR-003 or persistence failures
*/
func (service *Service) Edit(context context.Context, token, questionUUID, content string) (*Question, error) {
	user, err := service.authenticator.Authenticate(context, token, msgEditSignedOut)
	if err != nil {
		return nil, err
	}

	question, err := service.find(context, questionUUID, msgQuestionNotFound)
	if err != nil {
		return nil, err
	}

	if err := auth.RequireOwnerOnly(user, question.OwnerUUID, msgEditForbidden); err != nil {
		return nil, err
	}

	question.Content = content
	if err := service.repository.Update(context, question); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, NotFound(msgQuestionNotFound)
		}
		return nil, fmt.Errorf("question_service_update_failed: %w", err)
	}

	return question, nil
}

/*
Delete removes a question and its answers. The owner or an admin may do so.

Parameters:
  - context: context.Context
  - token: string
  - questionUUID: string

Returns:
  - error: ATHR-001, ATHR-002, QUES-001, ATHR-003 or persistence failures
*/
func (service *Service) Delete(context context.Context, token, questionUUID string) error {
	user, err := service.authenticator.Authenticate(context, token, msgDeleteSignedOut)
	if err != nil {
		return err
	}

	question, err := service.find(context, questionUUID, msgQuestionNotFound)
	if err != nil {
		return err
	}

	if err := auth.RequireOwnerOrAdmin(user, question.OwnerUUID, msgDeleteForbidden); err != nil {
		return err
	}

	affected, err := service.repository.DeleteByUUID(context, questionUUID)
	if err != nil {
		return fmt.Errorf("question_service_delete_failed: %w", err)
	}

	// Lost a race with another delete
	if affected == 0 {
		return NotFound(msgQuestionNotFound)
	}

	service.logger.InfoContext(context, "question_deleted",
		slog.String("question_id", questionUUID),
		slog.String("user_id", user.UUID),
		slog.Bool("by_admin", user.UUID != question.OwnerUUID),
	)

	return nil
}

// # Queries

// List returns every question to any signed-in caller.
func (service *Service) List(context context.Context, token string) ([]*Question, error) {
	if _, err := service.authenticator.Authenticate(context, token, msgListSignedOut); err != nil {
		return nil, err
	}

	questions, err := service.repository.List(context)
	if err != nil {
		return nil, fmt.Errorf("question_service_list_failed: %w", err)
	}

	return questions, nil
}

/*
ListByUser returns the questions posted by one user.

Any signed-in caller may list any user's questions.

Parameters:
  - context: context.Context
  - token: string
  - userUUID: string (owner whose questions are listed)

Returns:
  - []*Question: Possibly empty, never nil
  - error: ATHR-001, ATHR-002, USR-001 or retrieval failures
*/
func (service *Service) ListByUser(context context.Context, token, userUUID string) ([]*Question, error) {
	if _, err := service.authenticator.Authenticate(context, token, msgListByUserSignedOut); err != nil {
		return nil, err
	}

	owner, err := service.users.FindByUUID(context, userUUID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, auth.UserNotFound(msgOwnerNotFound)
		}
		return nil, fmt.Errorf("question_service_owner_lookup_failed: %w", err)
	}

	questions, err := service.repository.ListByOwner(context, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("question_service_list_by_owner_failed: %w", err)
	}

	return questions, nil
}

// find loads a question, mapping absence to QUES-001 with the given message.
func (service *Service) find(context context.Context, questionUUID, notFoundMessage string) (*Question, error) {
	question, err := service.repository.FindByUUID(context, questionUUID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, NotFound(notFoundMessage)
		}
		return nil, fmt.Errorf("question_service_lookup_failed: %w", err)
	}
	return question, nil
}
