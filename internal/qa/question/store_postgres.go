// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package question

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/quorum/internal/platform/apperr"
	"github.com/taibuivan/quorum/pkg/uuid"
)

// PostgresRepository implements [Repository] on the qa.question table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL question store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// The owner's external UUID comes from users.account so callers can authorize
// without a second lookup.
const selectQuestion = `
	SELECT q.id, q.uuid, q.content, q.ownerid, a.uuid, q.createdat
	FROM qa.question q
	JOIN users.account a ON a.id = q.ownerid`

/*
Create inserts a question row and fills in its internal ID.

Parameters:
  - context: context.Context
  - question: *Question

Returns:
  - error: Execution failures
*/
func (repository *PostgresRepository) Create(context context.Context, question *Question) error {
	const query = `
		INSERT INTO qa.question (uuid, content, ownerid, createdat)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}

	err := repository.pool.QueryRow(context, query,
		question.UUID,
		question.Content,
		question.OwnerID,
		question.CreatedAt,
	).Scan(&question.ID)

	if err != nil {
		return fmt.Errorf("postgres_question_repo_create_failed: %w", err)
	}

	return nil
}

// FindByUUID retrieves one question. Malformed identifiers are reported as not found.
func (repository *PostgresRepository) FindByUUID(context context.Context, id string) (*Question, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Question")
	}

	question, err := scanQuestion(repository.pool.QueryRow(context, selectQuestion+` WHERE q.uuid = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Question")
		}
		return nil, fmt.Errorf("postgres_question_repo_find_failed: %w", err)
	}

	return question, nil
}

// Update writes the content column only.
func (repository *PostgresRepository) Update(context context.Context, question *Question) error {
	const query = `UPDATE qa.question SET content = $2 WHERE uuid = $1`

	tag, err := repository.pool.Exec(context, query, question.UUID, question.Content)
	if err != nil {
		return fmt.Errorf("postgres_question_repo_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Question")
	}

	return nil
}

/*
DeleteByUUID removes one question.

Description: Answers are removed by the ON DELETE CASCADE constraint on
qa.answer.questionid.

Parameters:
  - context: context.Context
  - id: string (external UUID)

Returns:
  - int64: Rows affected
  - error: Execution failures
*/
func (repository *PostgresRepository) DeleteByUUID(context context.Context, id string) (int64, error) {
	if !uuid.Valid(id) {
		return 0, nil
	}

	tag, err := repository.pool.Exec(context, `DELETE FROM qa.question WHERE uuid = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("postgres_question_repo_delete_failed: %w", err)
	}

	return tag.RowsAffected(), nil
}

// List returns every question, oldest first.
func (repository *PostgresRepository) List(context context.Context) ([]*Question, error) {
	return repository.list(context, selectQuestion+` ORDER BY q.createdat, q.id`)
}

// ListByOwner returns one user's questions, oldest first.
func (repository *PostgresRepository) ListByOwner(context context.Context, ownerID int64) ([]*Question, error) {
	return repository.list(context, selectQuestion+` WHERE q.ownerid = $1 ORDER BY q.createdat, q.id`, ownerID)
}

func (repository *PostgresRepository) list(context context.Context, query string, arguments ...any) ([]*Question, error) {
	rows, err := repository.pool.Query(context, query, arguments...)
	if err != nil {
		return nil, fmt.Errorf("postgres_question_repo_list_failed: %w", err)
	}
	defer rows.Close()

	questions := make([]*Question, 0)
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_question_repo_scan_failed: %w", err)
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_question_repo_rows_failed: %w", err)
	}

	return questions, nil
}

func scanQuestion(row pgx.Row) (*Question, error) {
	question := &Question{}
	err := row.Scan(
		&question.ID,
		&question.UUID,
		&question.Content,
		&question.OwnerID,
		&question.OwnerUUID,
		&question.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return question, nil
}
