package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3000/api", c.APIBaseURL)
	assert.Equal(t, "development", c.Environment)
	assert.Equal(t, "typical", c.NeuroMode)
	assert.Equal(t, "divergentflow.db", c.DBPath)
	assert.Equal(t, "slog", c.LogBackend)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.False(t, c.IsProduction())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:3000/api", cfg.APIBaseURL)
	assert.Equal(t, "typical", cfg.NeuroMode)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTemp(t, "cfg.yaml", "api_base_url: https://file.example/api\nenvironment: production\n")
	os.Args = []string{"testbin", "-c", path, "-a", "https://flag.example/api"}

	cfg := LoadConfig()

	assert.Equal(t, "https://flag.example/api", cfg.APIBaseURL)
	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.IsProduction())
}
