// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/quorum/internal/platform/ctxutil"
	"github.com/taibuivan/quorum/internal/platform/middleware"
)

/*
TestExtractToken covers the accepted Authorization header shapes.
*/
func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty", "", ""},
		{"bearer", "Bearer abc.def", "abc.def"},
		{"bearer_lowercase", "bearer abc", "abc"},
		{"raw_token", "abc.def", "abc.def"},
		{"surrounding_space", "  Bearer  abc  ", "abc"},
		{"basic_credentials_ignored", "Basic dXNlcjpwYXNz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, middleware.ExtractToken(tt.header))
		})
	}
}

/*
TestAccessToken_InjectsIntoContext verifies that downstream handlers see the raw token.
*/
func TestAccessToken_InjectsIntoContext(t *testing.T) {
	var seen string
	handler := middleware.AccessToken()(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetAccessToken(request.Context())
		writer.WriteHeader(http.StatusNoContent)
	}))

	// 1. Anonymous request
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, seen)

	// 2. Bearer request
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer token-123")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "token-123", seen)
}

type corsConfig struct {
	development bool
	origins     []string
}

func (c corsConfig) IsDevelopment() bool      { return c.development }
func (c corsConfig) AllowedOrigins() []string { return c.origins }

/*
TestCORS checks origin filtering outside development.
*/
func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
	handler := middleware.CORS(corsConfig{origins: []string{"https://partner.example"}})(next)

	tests := []struct {
		name    string
		origin  string
		allowed bool
	}{
		{"first_party", "https://www.quorum.app", true},
		{"extra_origin", "https://partner.example", true},
		{"unknown", "https://evil.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set("Origin", tt.origin)
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
