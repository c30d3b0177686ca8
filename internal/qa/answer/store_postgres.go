// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package answer

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

// PostgresRepository implements [Repository] on the qa.answer table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL answer store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const selectAnswer = `
	SELECT a.id, a.uuid, a.content, a.questionid, q.uuid, a.ownerid, u.uuid, a.createdat
	FROM qa.answer a
	JOIN qa.question q ON q.id = a.questionid
	JOIN users.account u ON u.id = a.ownerid`

// Create inserts an answer row and fills in its internal ID.
func (repository *PostgresRepository) Create(context context.Context, answer *Answer) error {
	const query = `
		INSERT INTO qa.answer (uuid, content, questionid, ownerid, createdat)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = time.Now()
	}

	err := repository.pool.QueryRow(context, query,
		answer.UUID,
		answer.Content,
		answer.QuestionID,
		answer.OwnerID,
		answer.CreatedAt,
	).Scan(&answer.ID)

	if err != nil {
		return fmt.Errorf("postgres_answer_repo_create_failed: %w", err)
	}

	return nil
}

// FindByUUID retrieves one answer. Malformed identifiers are reported as not found.
func (repository *PostgresRepository) FindByUUID(context context.Context, id string) (*Answer, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Answer")
	}

	answer, err := scanAnswer(repository.pool.QueryRow(context, selectAnswer+` WHERE a.uuid = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Answer")
		}
		return nil, fmt.Errorf("postgres_answer_repo_find_failed: %w", err)
	}

	return answer, nil
}

// Update writes the content column only.
func (repository *PostgresRepository) Update(context context.Context, answer *Answer) error {
	tag, err := repository.pool.Exec(context, `UPDATE qa.answer SET content = $2 WHERE uuid = $1`, answer.UUID, answer.Content)
	if err != nil {
		return fmt.Errorf("postgres_answer_repo_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Answer")
	}

	return nil
}

// DeleteByUUID removes at most one answer.
func (repository *PostgresRepository) DeleteByUUID(context context.Context, id string) (int64, error) {
	if !uuid.Valid(id) {
		return 0, nil
	}

	tag, err := repository.pool.Exec(context, `DELETE FROM qa.answer WHERE uuid = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("postgres_answer_repo_delete_failed: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ListByQuestion returns the answers of one question, oldest first.
func (repository *PostgresRepository) ListByQuestion(context context.Context, questionID int64) ([]*Answer, error) {
	rows, err := repository.pool.Query(context, selectAnswer+` WHERE a.questionid = $1 ORDER BY a.createdat, a.id`, questionID)
	if err != nil {
		return nil, fmt.Errorf("postgres_answer_repo_list_failed: %w", err)
	}
	defer rows.Close()

	answers := make([]*Answer, 0)
	for rows.Next() {
		answer, err := scanAnswer(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_answer_repo_scan_failed: %w", err)
		}
		answers = append(answers, answer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_answer_repo_rows_failed: %w", err)
	}

	return answers, nil
}

func scanAnswer(row pgx.Row) (*Answer, error) {
	answer := &Answer{}
	err := row.Scan(
		&answer.ID,
		&answer.UUID,
		&answer.Content,
		&answer.QuestionID,
		&answer.QuestionUUID,
		&answer.OwnerID,
		&answer.OwnerUUID,
		&answer.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return answer, nil
}
