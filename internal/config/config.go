package config

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultBaseURL = "http://localhost:8080"

type Config struct {
	// APIBaseURL is the root of the catalog backend, no trailing slash.
	APIBaseURL string
	// Token is an optional identity-provider session token. When empty the
	// client runs anonymously and authenticated endpoints will reject calls.
	Token string
	Debug bool
}

// Load reads configuration from the environment, with .env.local as a
// development convenience.
func Load() *Config {
	_ = godotenv.Load(".env.local")

	return &Config{
		APIBaseURL: getEnv("SHELF_API_URL", defaultBaseURL),
		Token:      os.Getenv("SHELF_TOKEN"),
		Debug:      os.Getenv("SHELF_DEBUG") != "",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
