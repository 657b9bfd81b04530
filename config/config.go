package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL     string
	AuthToken      string
	HTTPTimeout    time.Duration
	SearchDebounce time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %s, relying on environment variables", err)
	}

	return &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8000/api"),
		AuthToken:      os.Getenv("AUTH_TOKEN"),
		HTTPTimeout:    getDuration("HTTP_TIMEOUT", 30*time.Second),
		SearchDebounce: getDuration("SEARCH_DEBOUNCE", 300*time.Millisecond),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Printf("invalid %s %q, using default %s", key, val, defaultVal)
		return defaultVal
	}
	return d
}
