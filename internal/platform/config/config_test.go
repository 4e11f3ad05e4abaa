package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Memory(t *testing.T) {
	t.Setenv("DATA_BACKEND", "Memory")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.DataBackend)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "300-M", cfg.RateLimit)
}

func TestLoadConfig_PostgresNeedsURL(t *testing.T) {
	t.Setenv("DATA_BACKEND", "postgres")
	t.Setenv("PGSQL_URL", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "PGSQL_URL")
}

func TestLoadConfig_UnknownBackend(t *testing.T) {
	t.Setenv("DATA_BACKEND", "mongo")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "unknown DATA_BACKEND")
}
