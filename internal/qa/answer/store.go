// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package answer

import "context"

// Repository defines the data access contract for answers.
//
// Lookups report absence with an error matching [dberr.ErrNotFound].
type Repository interface {
	FindByUUID(context context.Context, uuid string) (*Answer, error)

	// Create persists a new answer and assigns its internal ID.
	Create(context context.Context, answer *Answer) error

	// Update replaces the content of an existing answer and nothing else.
	Update(context context.Context, answer *Answer) error

	// DeleteByUUID removes one answer and reports how many rows went away.
	DeleteByUUID(context context.Context, uuid string) (int64, error)

	// ListByQuestion returns a question's answers, oldest first.
	ListByQuestion(context context.Context, questionID int64) ([]*Answer, error)
}
