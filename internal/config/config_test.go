package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/usestring/ing-mcp/pkg/client"
	"github.com/usestring/ing-mcp/pkg/jsoncompact"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ING_COOKIE", "ING_BASE_URL", "HTTP_CLIENT_TIMEOUT_MS", "FETCH_WORKERS", "LOG_LEVEL", "LOG_COMPRESS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Empty(t, cfg.Cookie)
	assert.Equal(t, client.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.HTTPClientTimeout)
	assert.Equal(t, 4, cfg.FetchWorkers)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.LogCompress)
	assert.Equal(t, jsoncompact.DefaultMaxArrayItems, cfg.CompactOptions().MaxArrayItems)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ING_COOKIE", "genoma-session-id=abc")
	t.Setenv("ING_BASE_URL", "http://localhost:9999/rest")
	t.Setenv("HTTP_CLIENT_TIMEOUT_MS", "1500")
	t.Setenv("FETCH_WORKERS", "8")
	t.Setenv("LOG_COMPRESS", "off")

	cfg := Load()
	assert.Equal(t, "genoma-session-id=abc", cfg.Cookie)
	assert.Equal(t, "http://localhost:9999/rest", cfg.BaseURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.HTTPClientTimeout)
	assert.Equal(t, 8, cfg.FetchWorkers)
	assert.False(t, cfg.LogCompress)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("FETCH_WORKERS", "many")
	t.Setenv("LOG_COMPRESS", "maybe")

	cfg := Load()
	assert.Equal(t, 4, cfg.FetchWorkers)
	assert.True(t, cfg.LogCompress)
}
