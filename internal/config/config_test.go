package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "LOG_LEVEL", "SPOTIFY_CLIENT_ID", "SPOTIFY_CLIENT_SECRET",
		"REFLECTION_PROVIDER", "GROQ_API_KEY", "STORAGE_DRIVER", "DATABASE_PATH",
		"STATIC_DIR", "CORS_ALLOWED_ORIGINS", "SENTRY_DSN",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ProviderGroq, cfg.ReflectionProvider)
	assert.Equal(t, "sqlite", cfg.StorageDriver)
	assert.Equal(t, "lumiya.db", cfg.DatabasePath)
	assert.Equal(t, "frontend", cfg.StaticDir)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, []string{"SPOTIFY_CLIENT_ID", "SPOTIFY_CLIENT_SECRET", "GROQ_API_KEY"}, cfg.Missing())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("SPOTIFY_CLIENT_ID", "id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "secret")
	t.Setenv("REFLECTION_PROVIDER", "Ollama")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test,")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ProviderOllama, cfg.ReflectionProvider)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.Missing(), "ollama needs no api key")
}
