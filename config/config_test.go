package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	m := NewManager()
	err := m.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	cfg := m.Get()
	assert.Equal(t, "en", cfg.General.Language)
	assert.Equal(t, "dark", cfg.General.Theme)
	assert.False(t, cfg.General.AlwaysOnTop)
	assert.Equal(t, time.Second, cfg.Monitor.RefreshInterval)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 12, cfg.Font.RegularSize)
}

func TestLoad_CorruptFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not: [valid yaml"), 0o644))

	m := NewManager()
	err := m.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en", m.Get().General.Language)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	m := NewManager()
	require.NoError(t, m.Load(path))

	m.Update(func(c *Config) {
		c.General.Language = "es"
		c.General.Theme = "light"
		c.General.AlwaysOnTop = true
		c.Font.MonoSize = 14
	})
	require.NoError(t, m.Save())

	reloaded := NewManager()
	require.NoError(t, reloaded.Load(path))
	cfg := reloaded.Get()
	assert.Equal(t, "es", cfg.General.Language)
	assert.Equal(t, "light", cfg.General.Theme)
	assert.True(t, cfg.General.AlwaysOnTop)
	assert.Equal(t, 14, cfg.Font.MonoSize)
}

func TestSave_NoPath(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Load(""))
	assert.Error(t, m.Save())
}

func TestValidate(t *testing.T) {
	valid := &Config{
		General: GeneralConfig{Language: "en", Theme: "dark"},
		Font:    FontConfig{RegularSize: 12, MonoSize: 12},
		Monitor: MonitorConfig{RefreshInterval: time.Second},
		Logging: LoggingConfig{Level: "info"},
	}
	assert.Empty(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero interval", func(c *Config) { c.Monitor.RefreshInterval = 0 }},
		{"negative interval", func(c *Config) { c.Monitor.RefreshInterval = -time.Second }},
		{"bad theme", func(c *Config) { c.General.Theme = "neon" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"tiny font", func(c *Config) { c.Font.RegularSize = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *valid
			tt.mutate(&cfg)
			assert.NotEmpty(t, cfg.Validate())
		})
	}
}
