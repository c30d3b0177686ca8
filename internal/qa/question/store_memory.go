// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package question

import (
	"context"
	"sync"
	"time"

	"github.com/taibuivan/quorum/internal/platform/apperr"
	"github.com/taibuivan/quorum/pkg/slice"
)

// MemoryRepository implements [Repository] on an insertion-ordered slice.
type MemoryRepository struct {
	mu        sync.RWMutex
	nextID    int64
	questions []Question
	onDelete  func(context.Context, int64)
}

// MemoryOption customises a [MemoryRepository].
type MemoryOption func(*MemoryRepository)

// OnDelete registers a callback run with the internal ID of every removed
// question. It stands in for the ON DELETE CASCADE of the SQL schema.
func OnDelete(callback func(context.Context, int64)) MemoryOption {
	return func(repository *MemoryRepository) {
		repository.onDelete = callback
	}
}

// NewMemoryRepository returns an empty in-memory question store.
func NewMemoryRepository(options ...MemoryOption) *MemoryRepository {
	repository := &MemoryRepository{}
	for _, option := range options {
		option(repository)
	}
	return repository
}

// Create stores a copy of question and assigns its ID.
func (repository *MemoryRepository) Create(_ context.Context, question *Question) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.nextID++
	question.ID = repository.nextID
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}

	repository.questions = append(repository.questions, *question)
	return nil
}

// FindByUUID returns a copy of the stored question.
func (repository *MemoryRepository) FindByUUID(_ context.Context, id string) (*Question, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, stored := range repository.questions {
		if stored.UUID == id {
			found := stored
			return &found, nil
		}
	}

	return nil, apperr.NotFound("Question")
}

// Update replaces the stored content only.
func (repository *MemoryRepository) Update(_ context.Context, question *Question) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for index := range repository.questions {
		if repository.questions[index].UUID == question.UUID {
			repository.questions[index].Content = question.Content
			return nil
		}
	}

	return apperr.NotFound("Question")
}

// DeleteByUUID removes at most one question and fires the OnDelete callback.
func (repository *MemoryRepository) DeleteByUUID(context context.Context, id string) (int64, error) {
	repository.mu.Lock()

	var removed *Question
	for index, stored := range repository.questions {
		if stored.UUID == id {
			removed = &stored
			repository.questions = append(repository.questions[:index], repository.questions[index+1:]...)
			break
		}
	}

	repository.mu.Unlock()

	if removed == nil {
		return 0, nil
	}

	if repository.onDelete != nil {
		repository.onDelete(context, removed.ID)
	}

	return 1, nil
}

// List returns copies of every question in creation order.
func (repository *MemoryRepository) List(_ context.Context) ([]*Question, error) {
	return repository.filter(func(*Question) bool { return true }), nil
}

// ListByOwner returns copies of one owner's questions in creation order.
func (repository *MemoryRepository) ListByOwner(_ context.Context, ownerID int64) ([]*Question, error) {
	return repository.filter(func(question *Question) bool { return question.OwnerID == ownerID }), nil
}

func (repository *MemoryRepository) filter(match func(*Question) bool) []*Question {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	matching := slice.Filter(repository.questions, func(stored Question) bool {
		return match(&stored)
	})
	return slice.Map(matching, func(stored Question) *Question { return &stored })
}
