package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MIGRATIONS_PATH", "")
	t.Setenv("DEFAULT_LOCALE", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "postgres://localhost:5432/ndastro?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.IsLocal())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("DATABASE_URL", "postgres://astro:secret@db:5432/ndastro")
	t.Setenv("MIGRATIONS_PATH", "db/migrations")
	t.Setenv("DEFAULT_LOCALE", "ta")
	t.Setenv("ENVIRONMENT", "local")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, "postgres://astro:secret@db:5432/ndastro", cfg.DatabaseURL)
	assert.Equal(t, "db/migrations", cfg.MigrationsPath)
	assert.Equal(t, "ta", cfg.DefaultLocale)
	assert.True(t, cfg.IsLocal())
}

func TestLoadRejectsBadDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "not-a-url")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
