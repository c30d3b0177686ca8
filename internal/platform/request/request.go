// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/quorum/internal/platform/apperr"
	"github.com/taibuivan/quorum/internal/platform/ctxutil"
	"github.com/taibuivan/quorum/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (external UUID) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
AccessToken returns the session token the caller sent, or "" when anonymous.

The token is placed in the context by [middleware.AccessToken].
*/
func AccessToken(request *http.Request) string {
	return ctxutil.GetAccessToken(request.Context())
}

/*
BasicCredentials extracts the username and password of an HTTP Basic header.

Returns:
  - username, password: decoded credentials
  - error: apperr.Unauthorized if the header is missing or malformed
*/
func BasicCredentials(request *http.Request) (string, string, error) {
	username, password, ok := request.BasicAuth()
	if !ok {
		return "", "", apperr.Unauthorized("Basic authorization header is required")
	}
	return username, password, nil
}
