// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package answer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/quorum/internal/platform/dberr"
	"github.com/taibuivan/quorum/internal/qa/question"
	"github.com/taibuivan/quorum/internal/users/auth"
	"github.com/taibuivan/quorum/pkg/uuid"
)

const (
	msgSignedOut = "User is signed out.Sign in first to post a question"

	msgQuestionInvalid    = "The question entered is invalid"
	msgQuestionNotVisible = "The question with entered uuid whose details are to be seen does not exist"

	msgForbidden = "Only the question owner or admin can delete the question"
)

// QuestionFinder resolves the question an answer belongs to. [question.Repository] satisfies it.
type QuestionFinder interface {
	FindByUUID(context context.Context, uuid string) (*question.Question, error)
}

// Service implements the answer use cases.
type Service struct {
	repository    Repository
	questions     QuestionFinder
	authenticator question.Authenticator
	logger        *slog.Logger
	now           func() time.Time
}

// NewService constructs a new answer [Service].
func NewService(repository Repository, questions QuestionFinder, authenticator question.Authenticator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repository:    repository,
		questions:     questions,
		authenticator: authenticator,
		logger:        logger,
		now:           time.Now,
	}
}

/*
Create posts an answer to an existing question.

Parameters:
  - context: context.Context
  - token: string
  - questionUUID: string
  - content: string

Returns:
  - *Answer: Created entity
  - error: ATHR-001, ATHR-002, QUES-001 or persistence failures
*/
func (service *Service) Create(context context.Context, token, questionUUID, content string) (*Answer, error) {
	user, err := service.authenticator.Authenticate(context, token, msgSignedOut)
	if err != nil {
		return nil, err
	}

	parent, err := service.lookupQuestion(context, questionUUID, msgQuestionInvalid)
	if err != nil {
		return nil, err
	}

	answer := &Answer{
		UUID:         uuid.New(),
		Content:      content,
		QuestionID:   parent.ID,
		QuestionUUID: parent.UUID,
		OwnerID:      user.ID,
		OwnerUUID:    user.UUID,
		CreatedAt:    service.now(),
	}

	if err := service.repository.Create(context, answer); err != nil {
		return nil, fmt.Errorf("answer_service_create_failed: %w", err)
	}

	service.logger.InfoContext(context, "answer_created",
		slog.String("answer_id", answer.UUID),
		slog.String("question_id", parent.UUID),
		slog.String("user_id", user.UUID),
	)

	return answer, nil
}

/*
Edit replaces the content of an answer. Only its owner may do so.

Returns:
  - *Answer: Updated entity; question, owner and creation time unchanged
  - error: ATHR-001, ATHR-002, ANS-001, ATHR-003 or persistence failures
*/
func (service *Service) Edit(context context.Context, token, answerUUID, content string) (*Answer, error) {
	user, err := service.authenticator.Authenticate(context, token, msgSignedOut)
	if err != nil {
		return nil, err
	}

	answer, err := service.find(context, answerUUID)
	if err != nil {
		return nil, err
	}

	if err := auth.RequireOwnerOnly(user, answer.OwnerUUID, msgForbidden); err != nil {
		return nil, err
	}

	answer.Content = content
	if err := service.repository.Update(context, answer); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, ErrAnswerNotFound
		}
		return nil, fmt.Errorf("answer_service_update_failed: %w", err)
	}

	return answer, nil
}

/*
Delete removes an answer. The owner or an admin may do so.

Returns:
  - error: ATHR-001, ATHR-002, ANS-001, ATHR-003 or persistence failures
*/
func (service *Service) Delete(context context.Context, token, answerUUID string) error {
	user, err := service.authenticator.Authenticate(context, token, msgSignedOut)
	if err != nil {
		return err
	}

	answer, err := service.find(context, answerUUID)
	if err != nil {
		return err
	}

	if err := auth.RequireOwnerOrAdmin(user, answer.OwnerUUID, msgForbidden); err != nil {
		return err
	}

	affected, err := service.repository.DeleteByUUID(context, answerUUID)
	if err != nil {
		return fmt.Errorf("answer_service_delete_failed: %w", err)
	}

	if affected == 0 {
		return ErrAnswerNotFound
	}

	service.logger.InfoContext(context, "answer_deleted",
		slog.String("answer_id", answerUUID),
		slog.String("user_id", user.UUID),
		slog.Bool("by_admin", user.UUID != answer.OwnerUUID),
	)

	return nil
}

/*
ListByQuestion returns a question together with all its answers.

Returns:
  - *question.Question: The parent question
  - []*Answer: Possibly empty, never nil
  - error: ATHR-001, ATHR-002, QUES-001 or retrieval failures
*/
func (service *Service) ListByQuestion(context context.Context, token, questionUUID string) (*question.Question, []*Answer, error) {
	if _, err := service.authenticator.Authenticate(context, token, msgSignedOut); err != nil {
		return nil, nil, err
	}

	parent, err := service.lookupQuestion(context, questionUUID, msgQuestionNotVisible)
	if err != nil {
		return nil, nil, err
	}

	answers, err := service.repository.ListByQuestion(context, parent.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("answer_service_list_failed: %w", err)
	}

	return parent, answers, nil
}

func (service *Service) find(context context.Context, answerUUID string) (*Answer, error) {
	answer, err := service.repository.FindByUUID(context, answerUUID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, ErrAnswerNotFound
		}
		return nil, fmt.Errorf("answer_service_lookup_failed: %w", err)
	}
	return answer, nil
}

func (service *Service) lookupQuestion(context context.Context, questionUUID, notFoundMessage string) (*question.Question, error) {
	parent, err := service.questions.FindByUUID(context, questionUUID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, question.NotFound(notFoundMessage)
		}
		return nil, fmt.Errorf("answer_service_question_lookup_failed: %w", err)
	}
	return parent, nil
}
