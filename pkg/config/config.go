// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, content, HTTP and logging settings

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Content contains article extraction configuration
	Content ContentConfig

	// HTTP contains outbound HTTP client configuration
	HTTP HTTPConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged, in seconds
	CleanupInterval int
}

// ContentConfig holds article cache configuration
type ContentConfig struct {
	// TTL is how long a processed article stays cached, in seconds
	TTL int
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	// Timeout is the per-request timeout in seconds
	Timeout int

	// MaxRetries is the number of extra attempts on transport errors and 5xx
	MaxRetries int

	// RequestsPerSecond throttles outbound requests; 0 disables throttling
	RequestsPerSecond float64
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string

	// Format is json or text
	Format string

	// File is an optional rotating log file path
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: strings.ToLower(getEnvOrDefault("CACHE_TYPE", "memory")),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "cache.db"),
			},
			Memory: MemoryConfig{
				CleanupInterval: getEnvAsIntOrDefault("MEMORY_CLEANUP_INTERVAL", 300),
			},
		},
		Content: ContentConfig{
			TTL: getEnvAsIntOrDefault("CONTENT_TTL", 60),
		},
		HTTP: HTTPConfig{
			Timeout:           getEnvAsIntOrDefault("HTTP_TIMEOUT", 20),
			MaxRetries:        getEnvAsIntOrDefault("HTTP_MAX_RETRIES", 0),
			RequestsPerSecond: getEnvAsFloatOrDefault("OUTBOUND_RPS", 0),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json")),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// ContentTTL returns the article cache TTL as a duration
func (c *Config) ContentTTL() time.Duration {
	return time.Duration(c.Content.TTL) * time.Second
}

// HTTPTimeout returns the outbound request timeout as a duration
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTP.Timeout) * time.Second
}

// MemoryCleanupInterval returns the memory cache purge interval as a duration
func (c *Config) MemoryCleanupInterval() time.Duration {
	return time.Duration(c.Cache.Memory.CleanupInterval) * time.Second
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return fmt.Errorf("cache type must be 'memory', 'redis' or 'sqlite', got %q", c.Cache.Type)
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Content.TTL < 1 {
		return errors.New("content TTL must be at least 1 second")
	}

	if c.HTTP.Timeout < 1 {
		return errors.New("http timeout must be at least 1 second")
	}

	if c.HTTP.MaxRetries < 0 {
		return errors.New("http max retries cannot be negative")
	}

	if c.HTTP.RequestsPerSecond < 0 {
		return errors.New("outbound requests per second cannot be negative")
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log format must be 'json' or 'text', got %q", c.Log.Format)
	}

	return nil
}
