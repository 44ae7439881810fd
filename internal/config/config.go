// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"strings"
)

const (
	ProviderGroq   = "groq"
	ProviderOllama = "ollama"

	EnvironmentProduction = "production"
)

// Config holds the application configuration.
type Config struct {
	Environment string
	Port        string
	LogLevel    string

	// Spotify client credentials
	SpotifyClientID     string
	SpotifyClientSecret string
	SpotifyTokenURL     string
	SpotifyAPIBaseURL   string

	// Reflection provider: "groq" (hosted) or "ollama" (local)
	ReflectionProvider string
	GroqAPIKey         string
	GroqBaseURL        string
	GroqModel          string
	OllamaHost         string
	OllamaModel        string

	// Storage
	StorageDriver string
	DatabasePath  string

	// HTTP surface
	StaticDir          string
	CORSAllowedOrigins []string

	// Observability
	SentryDSN string
}

// Load reads the configuration. Call godotenv.Load first to pick up a .env file.
func Load() *Config {
	return &Config{
		Environment:         getEnv("ENVIRONMENT", "development"),
		Port:                getEnv("PORT", "5000"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		SpotifyClientID:     getEnv("SPOTIFY_CLIENT_ID", ""),
		SpotifyClientSecret: getEnv("SPOTIFY_CLIENT_SECRET", ""),
		SpotifyTokenURL:     getEnv("SPOTIFY_TOKEN_URL", ""),
		SpotifyAPIBaseURL:   getEnv("SPOTIFY_API_BASE_URL", ""),
		ReflectionProvider:  strings.ToLower(getEnv("REFLECTION_PROVIDER", ProviderGroq)),
		GroqAPIKey:          getEnv("GROQ_API_KEY", ""),
		GroqBaseURL:         getEnv("GROQ_BASE_URL", ""),
		GroqModel:           getEnv("GROQ_MODEL", ""),
		OllamaHost:          getEnv("OLLAMA_HOST", ""),
		OllamaModel:         getEnv("OLLAMA_MODEL", ""),
		StorageDriver:       getEnv("STORAGE_DRIVER", "sqlite"),
		DatabasePath:        getEnv("DATABASE_PATH", "lumiya.db"),
		StaticDir:           getEnv("STATIC_DIR", "frontend"),
		CORSAllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SentryDSN:           getEnv("SENTRY_DSN", ""),
	}
}

// Missing lists required secrets that are not set for the selected providers.
// The server still starts without them; affected requests fail upstream.
func (c *Config) Missing() []string {
	var missing []string
	if c.SpotifyClientID == "" {
		missing = append(missing, "SPOTIFY_CLIENT_ID")
	}
	if c.SpotifyClientSecret == "" {
		missing = append(missing, "SPOTIFY_CLIENT_SECRET")
	}
	if c.ReflectionProvider == ProviderGroq && c.GroqAPIKey == "" {
		missing = append(missing, "GROQ_API_KEY")
	}
	return missing
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
