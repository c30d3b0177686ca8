// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (password hashing, token
// signing) from the domain logic. Session tokens produced here are opaque to
// the rest of the system: they are never decoded, only hashed and looked up.
package sec

import (
	"crypto/rsa"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Signed Session Tokens

// TokenService signs session tokens as RS256 JWTs.
//
// The signature makes tokens tamper-evident for external consumers, but the
// authoritative state (expiry, logout) always lives in the session store.
type TokenService struct {
	privateKey *rsa.PrivateKey
	issuer     string
}

// NewTokenService reads a PEM-encoded RSA private key from disk.
func NewTokenService(privateKeyPath, issuer string) (*TokenService, error) {
	privateKeyData, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read private key from %s: %w", privateKeyPath, err)
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyData)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse private key: %w", err)
	}

	return NewTokenServiceFromKey(privateKey, issuer), nil
}

// NewTokenServiceFromKey builds a [TokenService] around an already parsed key.
func NewTokenServiceFromKey(privateKey *rsa.PrivateKey, issuer string) *TokenService {
	return &TokenService{
		privateKey: privateKey,
		issuer:     issuer,
	}
}

/*
IssueToken signs a session token for subject.

A random jti is embedded so that two sessions issued for the same user in the
same second still produce distinct tokens.

Parameters:
  - subject: string (external user UUID)
  - issuedAt: time.Time
  - expiresAt: time.Time

Returns:
  - string: compact JWS
  - error: entropy or signing failures
*/
func (service *TokenService) IssueToken(subject string, issuedAt, expiresAt time.Time) (string, error) {
	tokenID, err := GenerateSecureToken(16)
	if err != nil {
		return "", err
	}

	claims := jwt.RegisteredClaims{
		ID:        tokenID,
		Subject:   subject,
		Issuer:    service.issuer,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signedToken, err := token.SignedString(service.privateKey)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}
