// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package answer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/quorum/internal/platform/constants"
	"github.com/taibuivan/quorum/internal/platform/middleware"
	"github.com/taibuivan/quorum/internal/qa/answer"
)

type envelope struct {
	Data json.RawMessage `json:"data"`
	Code string          `json:"code"`
}

func serve(t *testing.T, router http.Handler, method, path, token, body string) (int, envelope) {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		request.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	var decoded envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return recorder.Code, decoded
}

/*
TestHandler_AnswerRoutes covers creation under a question path, listing, editing and deletion.
*/
func TestHandler_AnswerRoutes(t *testing.T) {
	f := newFixture(t)
	_, token := f.member(t, "alice")
	_, stranger := f.member(t, "bob")
	asked := f.ask(t, token, "What is nil?")

	handler := answer.NewHandler(f.service)
	router := chi.NewRouter()
	router.Use(middleware.AccessToken())
	router.Mount("/question/{questionId}/answer", handler.QuestionRoutes())
	router.Mount("/answer", handler.Routes())

	// 1. Create
	status, body := serve(t, router, http.MethodPost, "/question/"+asked.UUID+"/answer/create", token, `{"answer":"The zero value."}`)
	require.Equal(t, http.StatusCreated, status)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.Equal(t, "ANSWER CREATED", created.Status)

	// 2. Unknown question
	status, body = serve(t, router, http.MethodPost, "/question/"+missingUUID+"/answer/create", token, `{"answer":"x"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "QUES-001", body.Code)

	// 3. List carries both contents
	status, body = serve(t, router, http.MethodGet, "/answer/all/"+asked.UUID, stranger, "")
	require.Equal(t, http.StatusOK, status)

	var details []struct {
		ID              string `json:"id"`
		QuestionContent string `json:"question_content"`
		AnswerContent   string `json:"answer_content"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &details))
	require.Len(t, details, 1)
	assert.Equal(t, created.ID, details[0].ID)
	assert.Equal(t, "What is nil?", details[0].QuestionContent)
	assert.Equal(t, "The zero value.", details[0].AnswerContent)

	// 4. Edit by stranger, then by owner
	status, body = serve(t, router, http.MethodPut, "/answer/edit/"+created.ID, stranger, `{"answer":"mine"}`)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "ATHR-003", body.Code)

	status, _ = serve(t, router, http.MethodPut, "/answer/edit/"+created.ID, token, `{"answer":"The zero value of pointers."}`)
	assert.Equal(t, http.StatusOK, status)

	// 5. Delete
	status, _ = serve(t, router, http.MethodDelete, "/answer/delete/"+created.ID, token, "")
	assert.Equal(t, http.StatusOK, status)

	status, body = serve(t, router, http.MethodDelete, "/answer/delete/"+created.ID, token, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "ANS-001", body.Code)
}
