// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// DefaultTokenLength is the byte length of opaque session tokens.
const DefaultTokenLength = 32

// GenerateSecureToken returns n bytes from crypto/rand, base64url-encoded without padding.
func GenerateSecureToken(n int) (string, error) {
	buffer := make([]byte, n)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("sec: failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buffer), nil
}

// OpaqueTokenIssuer issues random session tokens that carry no payload.
//
// It is used when no signing key is configured. Tokens are only meaningful
// as lookup keys into the session store.
type OpaqueTokenIssuer struct {
	length int
}

// NewOpaqueTokenIssuer returns an issuer producing tokens of [DefaultTokenLength] bytes.
func NewOpaqueTokenIssuer() *OpaqueTokenIssuer {
	return &OpaqueTokenIssuer{length: DefaultTokenLength}
}

// IssueToken implements the session token issuer contract. Subject and times are ignored.
func (issuer *OpaqueTokenIssuer) IssueToken(_ string, _, _ time.Time) (string, error) {
	return GenerateSecureToken(issuer.length)
}
