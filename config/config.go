package config

import (
	"os"
	"strconv"
	"strings"

	"go-recruitment-ops/pkg/logger"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Storage
	StoreDriver    string
	DBUrl          string
	MigrateOnStart bool
	MemorySeedFile string
	// Auth
	JWTSecret   string
	FrontendURL string
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitThreshold     int
	// Shortlist sync lock TTL
	SyncLockTTLSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file (local only; absent in production)
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		// Storage
		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		DBUrl:          getEnv("DATABASE_URL", ""),
		MigrateOnStart: getEnvBool("MIGRATE_ON_START", false),
		MemorySeedFile: getEnv("MEMORY_SEED_FILE", ""),
		// Auth
		JWTSecret:   getEnv("JWT_SECRET", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60), // 1 minute window
		RateLimitThreshold:     getEnvInt("RATE_LIMIT_THRESHOLD", 100),     // 100 requests per window
		SyncLockTTLSeconds:     getEnvInt("SYNC_LOCK_TTL_SECONDS", 30),
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DBUrl == "" {
			logger.Log.Warn("DATABASE_URL is missing. Application may fail to connect.")
		}
	case StoreDriverMemory:
		logger.Log.Warn("STORE_DRIVER=memory: records live in process memory and are lost on exit")
	default:
		return nil, &InvalidValueError{Key: "STORE_DRIVER", Value: cfg.StoreDriver}
	}

	if cfg.JWTSecret == "" {
		logger.Log.Warn("JWT_SECRET not configured. Every authenticated request will be rejected.")
	}
	if cfg.RedisURL == "" {
		logger.Log.Warn("REDIS_URL not configured. Rate limiting and sync locks will be in-memory.")
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// InvalidValueError reports an environment variable with an unsupported value
type InvalidValueError struct {
	Key   string
	Value string
}

func (e *InvalidValueError) Error() string {
	return "invalid value for " + e.Key + ": " + strconv.Quote(e.Value)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
