// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth provides the HTTP delivery layer for user identity management.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Security: Reads Basic credentials on sign-in and returns the session token
    in the 'access-token' header.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/quorum/internal/platform/constants"
	requestutil "github.com/taibuivan/quorum/internal/platform/request"
	"github.com/taibuivan/quorum/internal/platform/respond"
	"github.com/taibuivan/quorum/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /signup  : Creates a new account.
//   - POST /signin  : Authenticates with Basic credentials and opens a session.
//   - POST /signout : Closes the session carried in the Authorization header.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/signup", handler.signup)
	router.Post("/signin", handler.signin)
	router.Post("/signout", handler.signout)

	return router
}

// # Request Payloads

type signupRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Username      string `json:"username"`
	Email         string `json:"email_address"`
	Password      string `json:"password"`
	Country       string `json:"country"`
	AboutMe       string `json:"about_me"`
	DOB           string `json:"dob"`
	ContactNumber string `json:"contact_number"`
}

type signinResponse struct {
	ID          string    `json:"id"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Message     string    `json:"message"`
}

type statusResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

/*
Signup handles the creation of a new user account.

POST /api/v1/user/signup

Request:
  - Body: signupRequest

Response:
  - 201: statusResponse: New user UUID
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: SGR-001 / SGR-002: Username or Email already exists
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldFirstName, input.FirstName).
		MaxLen(FieldFirstName, input.FirstName, MaxNameLength).
		Required(FieldLastName, input.LastName).
		MaxLen(FieldLastName, input.LastName, MaxNameLength).
		Required(FieldUsername, input.Username).
		Username(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, MaxNameLength).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, MinPasswordLength).
		MaxLen(FieldCountry, input.Country, MaxNameLength).
		MaxLen(FieldAboutMe, input.AboutMe, MaxAboutMeLength).
		Date(FieldDOB, input.DOB, DOBLayout).
		MaxLen(FieldContactNumber, input.ContactNumber, MaxNameLength)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Signup(request.Context(), SignupInput{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Username:      input.Username,
		Email:         input.Email,
		Password:      input.Password,
		Country:       input.Country,
		AboutMe:       input.AboutMe,
		DOB:           input.DOB,
		ContactNumber: input.ContactNumber,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, statusResponse{ID: user.UUID, Message: "USER SUCCESSFULLY REGISTERED"})
}

/*
Signin authenticates a user and establishes a session.

POST /api/v1/user/signin

Request:
  - Header: Authorization: Basic base64(username:password)

Response:
  - 200: signinResponse; the token is also sent in the 'access-token' header
  - 401: ATH-002: Password Failed
  - 404: ATH-001: This username does not exist
*/
func (handler *Handler) signin(writer http.ResponseWriter, request *http.Request) {
	username, password, err := requestutil.BasicCredentials(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, user, err := handler.authService.Signin(request.Context(), username, password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set(constants.HeaderAccessToken, session.Token)

	respond.OK(writer, signinResponse{
		ID:          user.UUID,
		AccessToken: session.Token,
		TokenType:   constants.AuthSchemeBearer,
		ExpiresAt:   session.ExpiresAt,
		Message:     "SIGNED IN SUCCESSFULLY",
	})
}

/*
Signout terminates the current user session.

POST /api/v1/user/signout

Response:
  - 200: statusResponse; the user UUID is also sent in the 'user-uuid' header
  - 401: SGR-001: User is not Signed in
*/
func (handler *Handler) signout(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.authService.Signout(request.Context(), requestutil.AccessToken(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set(constants.HeaderUserUUID, user.UUID)

	respond.OK(writer, statusResponse{ID: user.UUID, Message: "SIGNED OUT SUCCESSFULLY"})
}
