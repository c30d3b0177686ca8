// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package answer

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/quorum/internal/platform/apperr"
	"github.com/taibuivan/quorum/pkg/slice"
)

// MemoryRepository implements [Repository] on an insertion-ordered slice.
type MemoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	answers []Answer
}

// NewMemoryRepository returns an empty in-memory answer store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Create stores a copy of answer and assigns its ID.
func (repository *MemoryRepository) Create(_ context.Context, answer *Answer) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.nextID++
	answer.ID = repository.nextID
	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = time.Now()
	}

	repository.answers = append(repository.answers, *answer)
	return nil
}

// FindByUUID returns a copy of the stored answer.
func (repository *MemoryRepository) FindByUUID(_ context.Context, id string) (*Answer, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, stored := range repository.answers {
		if stored.UUID == id {
			found := stored
			return &found, nil
		}
	}

	return nil, apperr.NotFound("Answer")
}

// Update replaces the stored content only.
func (repository *MemoryRepository) Update(_ context.Context, answer *Answer) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for index := range repository.answers {
		if repository.answers[index].UUID == answer.UUID {
			repository.answers[index].Content = answer.Content
			return nil
		}
	}

	return apperr.NotFound("Answer")
}

// DeleteByUUID removes at most one answer.
func (repository *MemoryRepository) DeleteByUUID(_ context.Context, id string) (int64, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	before := len(repository.answers)
	repository.answers = slices.DeleteFunc(repository.answers, func(stored Answer) bool {
		return stored.UUID == id
	})

	return int64(before - len(repository.answers)), nil
}

// DeleteByQuestion removes every answer of one question.
//
// Pass it to question.OnDelete to reproduce the SQL cascade.
func (repository *MemoryRepository) DeleteByQuestion(_ context.Context, questionID int64) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.answers = slices.DeleteFunc(repository.answers, func(stored Answer) bool {
		return stored.QuestionID == questionID
	})
}

// ListByQuestion returns copies of one question's answers in creation order.
func (repository *MemoryRepository) ListByQuestion(_ context.Context, questionID int64) ([]*Answer, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	matching := slice.Filter(repository.answers, func(stored Answer) bool {
		return stored.QuestionID == questionID
	})

	return slice.Map(matching, func(stored Answer) *Answer { return &stored }), nil
}
