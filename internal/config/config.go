// Package config provides environment-based configuration management
// Everything is read once at startup and passed down explicitly
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"learning-web/internal/core/domain"
)

// Content cache backends
const (
	ContentCacheOff    = "off"
	ContentCacheMemory = "memory"
	ContentCacheRedis  = "redis"
)

// AppConfig holds application-level configuration
type AppConfig struct {
	Port          int
	CacheStrategy domain.CacheStrategy
	LogLevel      slog.Level
}

// PathsConfig holds the content roots, all absolute after LoadConfig
type PathsConfig struct {
	FrontendDir string
	DistDir     string
	ViewsDir    string
	LayoutFile  string // relative to ViewsDir
}

// ContentCacheConfig selects and tunes the file content cache
type ContentCacheConfig struct {
	Backend          string
	TTL              time.Duration
	WatchdogInterval time.Duration
	MemoryThreshold  float64 // percent of system memory that forces a purge
}

// RedisConfig holds Redis connection parameters
type RedisConfig struct {
	Addr string // Format: host:port
}

// HTTPConfig holds server timeouts
type HTTPConfig struct {
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// LogStreamConfig controls the websocket log stream
type LogStreamConfig struct {
	Secret string // empty disables the endpoint
}

// Config aggregates all configuration sections
type Config struct {
	App       AppConfig
	Paths     PathsConfig
	Cache     ContentCacheConfig
	Redis     RedisConfig
	HTTP      HTTPConfig
	LogStream LogStreamConfig
}

// LoadConfig reads configuration from environment variables
// Returns error if a value is invalid or a required variable is missing
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	// Application Configuration
	cfg.App.Port = getEnvAsInt("APP_PORT", 3000)
	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		return nil, fmt.Errorf("APP_PORT must be between 1 and 65535, got %d", cfg.App.Port)
	}

	strategy, err := domain.ParseCacheStrategy(getEnv("CACHE_STRATEGY", string(domain.CacheStrategyDev)))
	if err != nil {
		return nil, fmt.Errorf("CACHE_STRATEGY: %w", err)
	}
	cfg.App.CacheStrategy = strategy

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.App.LogLevel = level

	// Content Roots
	paths := map[string]*string{
		"FRONTEND_DIR": &cfg.Paths.FrontendDir,
		"DIST_DIR":     &cfg.Paths.DistDir,
		"VIEWS_DIR":    &cfg.Paths.ViewsDir,
	}
	defaults := map[string]string{
		"FRONTEND_DIR": "src/frontend",
		"DIST_DIR":     "dist",
		"VIEWS_DIR":    "src/views",
	}
	for key, target := range paths {
		abs, err := filepath.Abs(getEnv(key, defaults[key]))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		*target = abs
	}
	cfg.Paths.LayoutFile = getEnv("LAYOUT_FILE", "layout.html")

	// Content Cache Configuration
	cfg.Cache.Backend = strings.ToLower(getEnv("CONTENT_CACHE", ContentCacheMemory))
	switch cfg.Cache.Backend {
	case ContentCacheOff, ContentCacheMemory, ContentCacheRedis:
	default:
		return nil, fmt.Errorf("CONTENT_CACHE must be %q, %q or %q, got %q",
			ContentCacheOff, ContentCacheMemory, ContentCacheRedis, cfg.Cache.Backend)
	}
	cfg.Cache.TTL = getEnvAsSeconds("CONTENT_CACHE_TTL_SECONDS", 600)
	cfg.Cache.WatchdogInterval = getEnvAsSeconds("CACHE_WATCHDOG_INTERVAL_SECONDS", 60)
	cfg.Cache.MemoryThreshold = float64(getEnvAsInt("CACHE_WATCHDOG_MEM_PERCENT", 85))

	// Redis Configuration
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	if cfg.Cache.Backend == ContentCacheRedis && cfg.Redis.Addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR environment variable is required when CONTENT_CACHE=redis")
	}

	// HTTP Server Configuration
	cfg.HTTP.ReadTimeout = getEnvAsSeconds("HTTP_READ_TIMEOUT_SECONDS", 5)
	cfg.HTTP.ReadHeaderTimeout = getEnvAsSeconds("HTTP_READ_HEADER_TIMEOUT_SECONDS", 2)
	cfg.HTTP.WriteTimeout = getEnvAsSeconds("HTTP_WRITE_TIMEOUT_SECONDS", 10)
	cfg.HTTP.IdleTimeout = getEnvAsSeconds("HTTP_IDLE_TIMEOUT_SECONDS", 60)
	cfg.HTTP.ShutdownTimeout = getEnvAsSeconds("SHUTDOWN_TIMEOUT_SECONDS", 5)

	// Log Stream
	cfg.LogStream.Secret = getEnv("LOG_STREAM_SECRET", "")

	return cfg, nil
}

// Addr returns the listen address
func (c *AppConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// parseLogLevel accepts debug, info, warn, error
func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return level, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

// getEnv reads environment variable with fallback default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads environment variable as integer with fallback default
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvAsSeconds reads a whole number of seconds as a duration
func getEnvAsSeconds(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvAsInt(key, defaultSeconds)) * time.Second
}
