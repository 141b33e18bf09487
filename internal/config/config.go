// Package config loads environment variables at startup. Fail-fast: the
// token-signing secret has no default, so a misconfigured deployment stops
// before serving a single request.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration.
type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	APIVersion     string
	JWTSecret      string
	AllowedOrigins []string
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg := &Config{
		Port:       getEnv("PORT", "3000"),
		MongoURI:   getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		DBName:     getEnv("DB_NAME", "jobboard"),
		APIVersion: getEnv("API_VERSION", "v1"),
		JWTSecret:  secret,
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
