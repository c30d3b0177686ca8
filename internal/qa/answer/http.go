// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package answer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/quorum/internal/platform/request"
	"github.com/taibuivan/quorum/internal/platform/respond"
	"github.com/taibuivan/quorum/internal/platform/validate"
	"github.com/taibuivan/quorum/pkg/slice"
)

// Handler exposes answer use cases over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new answer [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the answer router, mounted under /answer.
//
// # Endpoints
//   - PUT    /edit/{answerId}   : Owner edits content.
//   - DELETE /delete/{answerId} : Owner or admin deletes.
//   - GET    /all/{questionId}  : Lists a question's answers.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Put("/edit/{answerId}", handler.edit)
	router.Delete("/delete/{answerId}", handler.delete)
	router.Get("/all/{questionId}", handler.list)

	return router
}

// QuestionRoutes returns the router mounted under /question/{questionId}/answer.
//
// # Endpoints
//   - POST /create : Posts an answer to the question in the path.
func (handler *Handler) QuestionRoutes() chi.Router {
	router := chi.NewRouter()
	router.Post("/create", handler.create)
	return router
}

type contentRequest struct {
	Content string `json:"answer"`
}

type statusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type detailsResponse struct {
	ID              string `json:"id"`
	QuestionContent string `json:"question_content"`
	AnswerContent   string `json:"answer_content"`
}

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

/*
POST /api/v1/question/{questionId}/answer/create

Response:
  - 201: statusResponse "ANSWER CREATED"
  - 404: QUES-001 The question entered is invalid
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	content, err := decodeContent(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	answer, err := handler.service.Create(request.Context(), requestutil.AccessToken(request), requestutil.ID(request, "questionId"), content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, statusResponse{ID: answer.UUID, Status: "ANSWER CREATED"})
}

/*
PUT /api/v1/answer/edit/{answerId}

Response:
  - 200: statusResponse "ANSWER EDITED"
  - 403: ATHR-003 when the caller is not the owner
  - 404: ANS-001
*/
func (handler *Handler) edit(writer http.ResponseWriter, request *http.Request) {
	content, err := decodeContent(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	answer, err := handler.service.Edit(request.Context(), requestutil.AccessToken(request), requestutil.ID(request, "answerId"), content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, statusResponse{ID: answer.UUID, Status: "ANSWER EDITED"})
}

// delete handles DELETE /api/v1/answer/delete/{answerId}.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	answerUUID := requestutil.ID(request, "answerId")

	if err := handler.service.Delete(request.Context(), requestutil.AccessToken(request), answerUUID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, statusResponse{ID: answerUUID, Status: "ANSWER DELETED"})
}

// list handles GET /api/v1/answer/all/{questionId}.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	parent, answers, err := handler.service.ListByQuestion(request.Context(), requestutil.AccessToken(request), requestutil.ID(request, "questionId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, slice.Map(answers, func(answer *Answer) detailsResponse {
		return detailsResponse{
			ID:              answer.UUID,
			QuestionContent: parent.Content,
			AnswerContent:   answer.Content,
		}
	}))
}
