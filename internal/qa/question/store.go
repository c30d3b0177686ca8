// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package question

import "context"

// Repository defines the data access contract for questions.
//
// Lookups report absence with an error matching [dberr.ErrNotFound].
// Listings are ordered by creation time, oldest first.
type Repository interface {

	/*
		FindByUUID returns the question with the given external UUID.

		Parameters:
		  - context: context.Context
		  - uuid: string

		Returns:
		  - *Question: Hydrated entity, OwnerUUID included
		  - error: Not found or retrieval failures
	*/
	FindByUUID(context context.Context, uuid string) (*Question, error)

	/*
		Create persists a new question and assigns its internal ID.

		Parameters:
		  - context: context.Context
		  - question: *Question

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, question *Question) error

	/*
		Update replaces the content of an existing question.

		Owner and creation time are never written.

		Parameters:
		  - context: context.Context
		  - question: *Question

		Returns:
		  - error: Not found or persistence failures
	*/
	Update(context context.Context, question *Question) error

	/*
		DeleteByUUID removes a question and, through the store, its answers.

		Parameters:
		  - context: context.Context
		  - uuid: string

		Returns:
		  - int64: Number of questions removed (0 or 1)
		  - error: Persistence failures
	*/
	DeleteByUUID(context context.Context, uuid string) (int64, error)

	// List returns every question.
	List(context context.Context) ([]*Question, error)

	// ListByOwner returns the questions posted by the user with the given internal ID.
	ListByOwner(context context.Context, ownerID int64) ([]*Question, error)
}
