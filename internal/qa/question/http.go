// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package question

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/quorum/internal/platform/request"
	"github.com/taibuivan/quorum/internal/platform/respond"
	"github.com/taibuivan/quorum/internal/platform/validate"
)

// Handler exposes question use cases over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new question [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the question router, mounted under /question.
//
// # Endpoints
//   - POST   /create               : Posts a question.
//   - GET    /all                  : Lists every question.
//   - GET    /all/{userId}         : Lists one user's questions.
//   - PUT    /edit/{questionId}    : Owner edits content.
//   - DELETE /delete/{questionId}  : Owner or admin deletes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/create", handler.create)
	router.Get("/all", handler.list)
	router.Get("/all/{userId}", handler.listByUser)
	router.Put("/edit/{questionId}", handler.edit)
	router.Delete("/delete/{questionId}", handler.delete)

	return router
}

// # Payloads

type contentRequest struct {
	Content string `json:"content"`
}

type statusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// decodeContent reads and validates a {"content": ...} body.
func decodeContent(request *http.Request) (string, error) {
	var input contentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		return "", err
	}

	validator := &validate.Validator{}
	validator.Required(FieldContent, input.Content).
		MaxLen(FieldContent, input.Content, MaxContentLength)

	if err := validator.Err(); err != nil {
		return "", err
	}

	return input.Content, nil
}

// # Handlers

/*
POST /api/v1/question/create

Response:
  - 201: statusResponse "QUESTION CREATED"
  - 401: ATHR-001 / ATHR-002
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	content, err := decodeContent(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	question, err := handler.service.Create(request.Context(), requestutil.AccessToken(request), content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, statusResponse{ID: question.UUID, Status: "QUESTION CREATED"})
}

// list handles GET /api/v1/question/all.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	questions, err := handler.service.List(request.Context(), requestutil.AccessToken(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, questions)
}

// listByUser handles GET /api/v1/question/all/{userId}.
func (handler *Handler) listByUser(writer http.ResponseWriter, request *http.Request) {
	questions, err := handler.service.ListByUser(request.Context(), requestutil.AccessToken(request), requestutil.ID(request, "userId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, questions)
}

/*
PUT /api/v1/question/edit/{questionId}

Response:
  - 200: statusResponse "QUESTION EDITED"
  - 403: ATHR-003 when the caller is not the owner
  - 404: QUES-001
*/
func (handler *Handler) edit(writer http.ResponseWriter, request *http.Request) {
	content, err := decodeContent(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	question, err := handler.service.Edit(request.Context(), requestutil.AccessToken(request), requestutil.ID(request, "questionId"), content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, statusResponse{ID: question.UUID, Status: "QUESTION EDITED"})
}

/*
DELETE /api/v1/question/delete/{questionId}

Response:
  - 200: statusResponse "QUESTION DELETED"
  - 403: ATHR-003 when the caller is neither owner nor admin
  - 404: QUES-001
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	questionUUID := requestutil.ID(request, "questionId")

	if err := handler.service.Delete(request.Context(), requestutil.AccessToken(request), questionUUID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, statusResponse{ID: questionUUID, Status: "QUESTION DELETED"})
}
