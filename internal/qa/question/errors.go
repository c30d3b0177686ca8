// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package question

import (
	"net/http"

	"github.com/taibuivan/quorum/internal/platform/apperr"
)

// CodeQuestionNotFound identifies a missing question in every use case.
const CodeQuestionNotFound = "QUES-001"

// ErrQuestionNotFound is the sentinel for QUES-001. The message varies per use case.
var ErrQuestionNotFound = apperr.New(http.StatusNotFound, CodeQuestionNotFound, "Entered question uuid does not exist")

// NotFound returns a QUES-001 error carrying the use-case-specific message.
func NotFound(msg string) error {
	return ErrQuestionNotFound.WithMessage(msg)
}
