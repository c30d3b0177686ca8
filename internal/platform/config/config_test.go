// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/quorum/internal/platform/config"
)

/*
TestLoad_Defaults verifies that the session backend follows the storage backend when unset.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("SESSION_BACKEND", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, config.BackendMemory, cfg.SessionBackend)
	assert.Equal(t, "quorum.app", cfg.TokenIssuer)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.NeedsPostgres())
}

/*
TestConfig_Validate covers the cross-field backend rules.
*/
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"memory_everywhere", config.Config{StorageBackend: "memory", SessionBackend: "memory"}, false},
		{"postgres_with_dsn", config.Config{StorageBackend: "postgres", SessionBackend: "postgres", DatabaseURL: "postgres://x"}, false},
		{"postgres_without_dsn", config.Config{StorageBackend: "postgres", SessionBackend: "postgres"}, true},
		{"redis_sessions_with_url", config.Config{StorageBackend: "memory", SessionBackend: "redis", RedisURL: "redis://localhost:6379/0"}, false},
		{"redis_sessions_without_url", config.Config{StorageBackend: "memory", SessionBackend: "redis"}, true},
		{"postgres_sessions_memory_storage", config.Config{StorageBackend: "memory", SessionBackend: "postgres", DatabaseURL: "postgres://x"}, true},
		{"unknown_storage", config.Config{StorageBackend: "mongo", SessionBackend: "memory"}, true},
		{"unknown_session", config.Config{StorageBackend: "memory", SessionBackend: "memcached"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
