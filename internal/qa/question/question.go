// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package question implements the question resource of the Q&A domain.

Every operation authenticates the caller through the session service before
touching storage, and mutations are authorized against the question owner's
external UUID.
*/
package question

import "time"

// # Domain Entities

// Question is a piece of content posted by one user.
//
// # Invariants
//
//   - OwnerID, OwnerUUID and CreatedAt are fixed at creation; editing only
//     replaces Content.
//   - UUID is the external identifier; ID never leaves the process.
type Question struct {
	ID        int64     `json:"-"`
	UUID      string    `json:"id"`
	Content   string    `json:"content"`
	OwnerID   int64     `json:"-"`
	OwnerUUID string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// # Constraints

const (
	// FieldContent is the request field carrying question text.
	FieldContent = "content"

	// MaxContentLength mirrors the width of qa.question.content.
	MaxContentLength = 500
)
