// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package answer

import (
	"net/http"

	"github.com/taibuivan/quorum/internal/platform/apperr"
)

const CodeAnswerNotFound = "ANS-001"

var ErrAnswerNotFound = apperr.New(http.StatusNotFound, CodeAnswerNotFound, "Entered answer uuid does not exist")
