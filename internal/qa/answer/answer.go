// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package answer implements answers posted against questions.

Answers belong to exactly one question and are removed with it.
*/
package answer

import "time"

// Answer is a reply by one user to one question.
//
// QuestionID, OwnerID and CreatedAt never change after creation.
type Answer struct {
	ID           int64     `json:"-"`
	UUID         string    `json:"id"`
	Content      string    `json:"content"`
	QuestionID   int64     `json:"-"`
	QuestionUUID string    `json:"question_id"`
	OwnerID      int64     `json:"-"`
	OwnerUUID    string    `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	// FieldContent is the request field carrying answer text.
	FieldContent     = "answer"
	MaxContentLength = 500
)
