// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/usestring/ing-mcp/pkg/client"
	"github.com/usestring/ing-mcp/pkg/jsoncompact"
)

// Tool output limit defaults
const (
	DefaultQueryLimitValue = 50
	MaxBatchMovementsValue = 50
)

// Config holds all configuration for the MCP server.
type Config struct {
	Cookie                string        // ING_COOKIE, raw Cookie header copied from the browser
	BaseURL               string        // ING_BASE_URL, default client.DefaultBaseURL
	HTTPClientTimeout     time.Duration // HTTP_CLIENT_TIMEOUT_MS, default 0 (no timeout)
	MovementCacheMaxItems int           // MOVEMENT_CACHE_MAX_ITEMS, default 512
	FetchWorkers          int           // FETCH_WORKERS, default 4
	MaxBatchMovements     int           // MAX_BATCH_MOVEMENTS, default 50

	// Compaction defaults (for AI-optimized responses)
	CompactMaxArrayItems int // COMPACT_MAX_ARRAY_ITEMS
	CompactMaxStringLen  int // COMPACT_MAX_STRING_LEN
	CompactMaxDepth      int // COMPACT_MAX_DEPTH

	// Tool output limits
	DefaultQueryLimit int // DEFAULT_QUERY_LIMIT

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Cookie:                os.Getenv("ING_COOKIE"),
		BaseURL:               getEnvString("ING_BASE_URL", client.DefaultBaseURL),
		HTTPClientTimeout:     getEnvDurationMs("HTTP_CLIENT_TIMEOUT_MS", 0),
		MovementCacheMaxItems: getEnvInt("MOVEMENT_CACHE_MAX_ITEMS", 512),
		FetchWorkers:          getEnvInt("FETCH_WORKERS", 4),
		MaxBatchMovements:     getEnvInt("MAX_BATCH_MOVEMENTS", MaxBatchMovementsValue),

		// Compaction defaults (from jsoncompact package)
		CompactMaxArrayItems: getEnvInt("COMPACT_MAX_ARRAY_ITEMS", jsoncompact.DefaultMaxArrayItems),
		CompactMaxStringLen:  getEnvInt("COMPACT_MAX_STRING_LEN", jsoncompact.DefaultMaxStringLen),
		CompactMaxDepth:      getEnvInt("COMPACT_MAX_DEPTH", jsoncompact.DefaultMaxDepth),

		DefaultQueryLimit: getEnvInt("DEFAULT_QUERY_LIMIT", DefaultQueryLimitValue),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

// CompactOptions returns the compaction settings as jsoncompact options.
func (c *Config) CompactOptions() *jsoncompact.Options {
	return &jsoncompact.Options{
		MaxArrayItems: c.CompactMaxArrayItems,
		MaxStringLen:  c.CompactMaxStringLen,
		MaxDepth:      c.CompactMaxDepth,
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
