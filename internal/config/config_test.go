package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "CATALOG_DSN", "METRICS_ENABLED", "METRICS_TOKEN",
		"BASKET_WRITE_LIMIT", "BASKET_WRITE_WINDOW", "TRUST_FORWARDED_FOR", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
		t.Setenv("BOOTIQUE_"+k, "")
		os.Unsetenv("BOOTIQUE_" + k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, ":8080", c.Addr())
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.CatalogDSN)
	assert.True(t, c.MetricsEnabled)
	assert.Zero(t, c.BasketWriteLimit)
	assert.Equal(t, time.Minute, c.BasketWriteWindow)
	assert.False(t, c.TrustForwardedFor)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
}

func TestLoad_PrefixedWinsOverPlain(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("BOOTIQUE_PORT", "9100")
	t.Setenv("BASKET_WRITE_LIMIT", "30")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9100", c.Port)
	assert.Equal(t, 30, c.BasketWriteLimit)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\nMETRICS_TOKEN=tok\n"), 0o600))

	c, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "tok", c.MetricsToken)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"bad level":      {"LOG_LEVEL": "loud"},
		"negative limit": {"BASKET_WRITE_LIMIT": "-1"},
		"zero shutdown":  {"SHUTDOWN_TIMEOUT": "0s"},
		"not a number":   {"BASKET_WRITE_LIMIT": "many"},
		"zero window":    {"BASKET_WRITE_LIMIT": "5", "BASKET_WRITE_WINDOW": "0s"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
