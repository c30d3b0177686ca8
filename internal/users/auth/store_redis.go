// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/quorum/internal/platform/apperr"
	"github.com/taibuivan/quorum/internal/platform/constants"
)

// maxLogoutRetries bounds optimistic WATCH retries when two logouts race.
const maxLogoutRetries = 3

// RedisSessionRepository implements SessionRepository using Redis.
//
// Each session is one JSON value under [constants.RedisPrefixSession] + token hash.
// Keys carry no TTL: expired and logged-out sessions are kept like any other
// backend keeps them, and expiry is evaluated by the session service.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a new Redis-backed SessionRepository.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

// redisSession is the stored representation; Session hides its keys from JSON.
type redisSession struct {
	ID          string     `json:"id"`
	UserID      int64      `json:"user_id"`
	TokenHash   string     `json:"token_hash"`
	IssuedAt    time.Time  `json:"issued_at"`
	ExpiresAt   time.Time  `json:"expires_at"`
	LoggedOutAt *time.Time `json:"logged_out_at,omitempty"`
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

/*
Insert stores a new session with SETNX so an existing token hash is never overwritten.

Parameters:
  - context: context.Context
  - session: *Session

Returns:
  - error: ErrTokenCollision or execution errors
*/
func (repository *RedisSessionRepository) Insert(context context.Context, session *Session) error {
	payload, err := json.Marshal(toRedisSession(session))
	if err != nil {
		return fmt.Errorf("redis_session_marshal_failed: %w", err)
	}

	created, err := repository.client.SetNX(context, sessionKey(session.TokenHash), payload, 0).Result()
	if err != nil {
		return fmt.Errorf("redis_session_insert_failed: %w", err)
	}

	if !created {
		return ErrTokenCollision
	}

	return nil
}

/*
FindByTokenHash loads a session.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - *Session: Hydrated entity
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	payload, err := repository.client.Get(context, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Session")
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	return decodeRedisSession(payload)
}

/*
Update sets the logout timestamp once using WATCH/MULTI.

Description: If another client sets the value first, the transaction is
retried, finds LoggedOutAt already present and returns without writing.

Parameters:
  - context: context.Context
  - session: *Session

Returns:
  - error: Execution failures
*/
func (repository *RedisSessionRepository) Update(context context.Context, session *Session) error {
	if session.LoggedOutAt == nil {
		return nil
	}

	key := sessionKey(session.TokenHash)

	transaction := func(tx *redis.Tx) error {
		payload, err := tx.Get(context, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return apperr.NotFound("Session")
			}
			return err
		}

		stored, err := decodeRedisSession(payload)
		if err != nil {
			return err
		}

		// Set-once: a concurrent logout already won
		if stored.LoggedOutAt != nil {
			return nil
		}

		stored.LoggedOutAt = session.LoggedOutAt
		updated, err := json.Marshal(toRedisSession(stored))
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(context, func(pipe redis.Pipeliner) error {
			pipe.Set(context, key, updated, redis.KeepTTL)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxLogoutRetries; attempt++ {
		err := repository.client.Watch(context, transaction, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("redis_session_update_failed: %w", err)
		}
		return nil
	}

	return fmt.Errorf("redis_session_update_failed: %w", redis.TxFailedErr)
}

func toRedisSession(session *Session) redisSession {
	return redisSession{
		ID:          session.ID,
		UserID:      session.UserID,
		TokenHash:   session.TokenHash,
		IssuedAt:    session.IssuedAt,
		ExpiresAt:   session.ExpiresAt,
		LoggedOutAt: session.LoggedOutAt,
	}
}

func decodeRedisSession(payload []byte) (*Session, error) {
	var stored redisSession
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, fmt.Errorf("redis_session_unmarshal_failed: %w", err)
	}

	return &Session{
		ID:          stored.ID,
		UserID:      stored.UserID,
		TokenHash:   stored.TokenHash,
		IssuedAt:    stored.IssuedAt,
		ExpiresAt:   stored.ExpiresAt,
		LoggedOutAt: stored.LoggedOutAt,
	}, nil
}
