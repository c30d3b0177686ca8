// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// # Password Hashing

// argon2id cost parameters. Changing any of them invalidates every stored hash.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	// SaltLength is the byte length of the per-identity random salt.
	SaltLength = 16
)

/*
HashPassword derives a salted one-way hash of a plain-text password.

A fresh random salt is drawn for every call, so hashing the same password
twice never yields the same pair.

Parameters:
  - plainTextPassword: string

Returns:
  - salt: hex-encoded random salt
  - hash: hex-encoded argon2id digest
  - err: entropy failures
*/
func HashPassword(plainTextPassword string) (salt string, hash string, err error) {
	saltBytes := make([]byte, SaltLength)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", fmt.Errorf("sec: failed to generate salt: %w", err)
	}

	salt = hex.EncodeToString(saltBytes)
	return salt, derive(plainTextPassword, saltBytes), nil
}

// VerifyPassword reports whether plainTextPassword hashes to storedHash under salt.
//
// It is pure and compares in constant time. Malformed salts never verify.
func VerifyPassword(plainTextPassword, salt, storedHash string) bool {
	saltBytes, err := hex.DecodeString(salt)
	if err != nil || len(saltBytes) == 0 {
		return false
	}

	candidate := derive(plainTextPassword, saltBytes)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}

func derive(plainTextPassword string, salt []byte) string {
	key := argon2.IDKey([]byte(plainTextPassword), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

// # Token Hashing

// HashToken returns the hex SHA-256 digest of a session token.
//
// Only this digest is persisted, so a leaked session table cannot be
// replayed as bearer tokens.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
