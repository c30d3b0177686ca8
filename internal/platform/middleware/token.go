// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/taibuivan/quorum/internal/platform/constants"
	"github.com/taibuivan/quorum/internal/platform/ctxutil"
)

// AccessToken extracts the caller's session token from the Authorization header.
//
// # Flow
//  1. Read 'Authorization'. Both 'Bearer <token>' and a bare '<token>' are accepted.
//  2. If absent, the request proceeds as anonymous.
//  3. If present, the raw token is stored in the context via [ctxutil.WithAccessToken].
//
// The token is NOT validated here. Whether a caller is signed in is decided by
// the session service of each use case, which is also what chooses the
// signed-out message returned to the client.
//
// Basic credentials are left alone so the sign-in endpoint can read them.
func AccessToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := ExtractToken(request.Header.Get(constants.HeaderAuthorization))

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if token == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAccessToken(request.Context(), token)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// ExtractToken returns the session token carried by an Authorization header value.
func ExtractToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}

	scheme, rest, found := strings.Cut(header, " ")
	if !found {
		return header
	}

	switch {
	case strings.EqualFold(scheme, constants.AuthSchemeBearer):
		return strings.TrimSpace(rest)
	case strings.EqualFold(scheme, constants.AuthSchemeBasic):
		return ""
	default:
		return header
	}
}
