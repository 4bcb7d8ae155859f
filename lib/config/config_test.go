package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultWindowTitle, cfg.Window.Title)
	assert.Equal(t, 500, cfg.Window.Width)
	assert.Equal(t, 270, cfg.Window.Height)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "jfree", cfg.Render.Theme)
	assert.NoError(t, cfg.Validate())
}

func TestLoadAndValidateEmptyPath(t *testing.T) {
	cfg, err := LoadAndValidate("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadAppliesDefaultsAndEnv(t *testing.T) {
	t.Setenv("COOLCHART_LOG", "debug")
	path := writeConfig(t, `
window:
  width: 800
logging:
  level: ${COOLCHART_LOG}
render:
  theme: gray
  format: svg
`)
	cfg, err := LoadAndValidate(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, DefaultWindowHeight, cfg.Window.Height)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "gray", cfg.Render.Theme)
	assert.Equal(t, "svg", cfg.Render.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "window: [1, 2"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative width", func(c *Config) { c.Window.Width = -1 }},
		{"huge height", func(c *Config) { c.Render.Height = maxDimension + 1 }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad theme", func(c *Config) { c.Render.Theme = "neon" }},
		{"bad format", func(c *Config) { c.Render.Format = "bmp" }},
		{"no title", func(c *Config) { c.Window.Title = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
