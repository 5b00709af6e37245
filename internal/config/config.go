package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config struct {
	Host string
	Port string

	StorageDriver string
	StorageFile   string
	SQLitePath    string
	DatabaseURL   string
	RedisURL      string

	LogLevel string
	LogFile  string
}

// FromEnv loads configuration from the environment, honouring a .env
// file when present.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Host:          envDefault("HOST", "localhost"),
		Port:          envDefault("PORT", "8092"),
		StorageDriver: envDefault("STORAGE_DRIVER", DriverFile),
		StorageFile:   envDefault("STORAGE_FILE", "data/bookings.json"),
		SQLitePath:    envDefault("SQLITE_PATH", "data/stay.db"),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisURL:      strings.TrimSpace(os.Getenv("REDIS_URL")),
		LogLevel:      envDefault("LOG_LEVEL", "info"),
		LogFile:       strings.TrimSpace(os.Getenv("LOG_FILE")),
	}

	switch cfg.StorageDriver {
	case DriverMemory, DriverFile, DriverSQLite:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return cfg, fmt.Errorf("DATABASE_URL is required for STORAGE_DRIVER=%v", DriverPostgres)
		}
	case DriverRedis:
		if cfg.RedisURL == "" {
			return cfg, fmt.Errorf("REDIS_URL is required for STORAGE_DRIVER=%v", DriverRedis)
		}
	default:
		return cfg, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	return cfg, nil
}

func envDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	return v
}
