// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account provides profile lookup and admin account management.

# Security

Every endpoint authenticates the caller's session token. Deleting an account
additionally requires the admin role.
*/
package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/quorum/internal/platform/request"
	"github.com/taibuivan/quorum/internal/platform/respond"
)

// Handler implements the HTTP layer for account lookup and administration.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// ProfileRoutes returns the router mounted under /userprofile.
func (handler *Handler) ProfileRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{userId}", handler.getUserProfile)
	return router
}

// AdminRoutes returns the router mounted under /admin.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Delete("/user/{userId}", handler.deleteUser)
	return router
}

type statusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

/*
GET /api/v1/userprofile/{userId}

Response:
  - 200: User: Profile without credentials
  - 401: ATHR-001 / ATHR-002
  - 404: USR-001
*/
func (handler *Handler) getUserProfile(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.accountService.GetProfile(request.Context(), requestutil.AccessToken(request), requestutil.ID(request, "userId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
DELETE /api/v1/admin/user/{userId}

Response:
  - 200: statusResponse "USER SUCCESSFULLY DELETED"
  - 403: ATHR-003 when the caller is not an admin
  - 404: USR-001
*/
func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	userUUID := requestutil.ID(request, "userId")

	if err := handler.accountService.DeleteUser(request.Context(), requestutil.AccessToken(request), userUUID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, statusResponse{ID: userUUID, Status: "USER SUCCESSFULLY DELETED"})
}
