package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Normalize tool defaults.
	MinOccurrences    int
	PlaceholderPrefix string

	// Limits.
	ResultLimit   int
	MaxLimit      int
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASCOMPONENTS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("OASCOMPONENTS_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("OASCOMPONENTS_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("OASCOMPONENTS_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("OASCOMPONENTS_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("OASCOMPONENTS_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MinOccurrences:     envInt("OASCOMPONENTS_MIN_OCCURRENCES", 2),
		PlaceholderPrefix:  envString("OASCOMPONENTS_PLACEHOLDER_PREFIX", "id_"),
		ResultLimit:        envInt("OASCOMPONENTS_RESULT_LIMIT", 100),
		MaxLimit:           envInt("OASCOMPONENTS_MAX_LIMIT", 1000),
		MaxInlineSize:      int64(envInt("OASCOMPONENTS_MAX_INLINE_SIZE", 10*1024*1024)),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
