package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	MongoURI        string
	MongoDatabase   string
	RedisAddr       string
	CatalogURL      string
	AuthBaseURL     string
	FrontendOrigin  string
	GoogleClientID  string
	GoogleSecret    string
	GithubClientID  string
	GithubSecret    string
	SessionTTL      time.Duration
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:        envOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:   envOrDefault("MONGODB_DB", "artisty"),
		RedisAddr:       envOrDefault("REDIS_ADDR", "localhost:6379"),
		CatalogURL:      envOrDefault("CATALOG_URL", "https://api.artic.edu/api/v1"),
		AuthBaseURL:     envOrDefault("AUTH_BASE_URL", "http://localhost:8080"),
		FrontendOrigin:  envOrDefault("FRONTEND_ORIGIN", "http://localhost:3000"),
		GoogleClientID:  envOrDefault("GOOGLE_CLIENT_ID", ""),
		GoogleSecret:    envOrDefault("GOOGLE_CLIENT_SECRET", ""),
		GithubClientID:  envOrDefault("GITHUB_CLIENT_ID", ""),
		GithubSecret:    envOrDefault("GITHUB_CLIENT_SECRET", ""),
		SessionTTL:      envHours("SESSION_TTL_HOURS", 7*24*time.Hour),
		ShutdownTimeout: envSeconds("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envHours(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		hours, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(hours) * time.Hour
		}
	}
	return def
}
