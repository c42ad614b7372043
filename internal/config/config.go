package config

import (
	"os"
	"strconv"
	"time"

	"fishmarket/utils"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, populated from the environment with
// sane defaults for local development.
type Config struct {
	Port          string
	GinMode       string
	DatabasePath  string
	JWTSecret     string
	JWTTTL        time.Duration
	BulkMinWeight float64
}

// Load reads an optional .env file and builds the configuration from the
// environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		// .env is optional; environment variables alone are fine
		utils.Debug("no .env file loaded", map[string]any{"error": err.Error()})
	}

	return Config{
		Port:          getEnvString("PORT", "8080"),
		GinMode:       getEnvString("GIN_MODE", "debug"),
		DatabasePath:  getEnvString("DATABASE_PATH", ""),
		JWTSecret:     getEnvString("JWT_SECRET", "dev-secret-change-me"),
		JWTTTL:        getEnvDuration("JWT_TTL", 24*time.Hour),
		BulkMinWeight: getEnvFloat("BULK_MIN_WEIGHT_KG", 50),
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
