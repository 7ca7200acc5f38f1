package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Storage drivers the mirror can run on.
const (
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Port string
	Env  string

	StorageDriver string
	StoragePath   string
	DatabaseURL   string

	CORSOrigins string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		StorageDriver: getEnv("STORAGE_DRIVER", StorageFile),
		StoragePath:   getEnv("STORAGE_PATH", "data/roster.json"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),

		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}

	switch cfg.StorageDriver {
	case StorageFile, StorageSQLite, StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORAGE_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER: %s", cfg.StorageDriver)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
