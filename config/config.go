// Package config manages persisted user preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config holds all persisted settings.
type Config struct {
	General GeneralConfig `mapstructure:"general"`
	Font    FontConfig    `mapstructure:"font"`
	Monitor MonitorConfig `mapstructure:"monitor"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GeneralConfig holds the main user preferences.
type GeneralConfig struct {
	// Language is the display language code (e.g. "en", "es").
	Language string `mapstructure:"language"`
	// Theme is the color theme: "dark", "light" or "system".
	Theme string `mapstructure:"theme"`
	// AlwaysOnTop asks the window manager to keep the monitor on top.
	AlwaysOnTop bool `mapstructure:"always_on_top"`
}

// FontConfig holds the font preferences.
type FontConfig struct {
	// RegularFamily is the proportional font family name.
	RegularFamily string `mapstructure:"regular_family"`
	// RegularSize is the proportional font size in points.
	RegularSize int `mapstructure:"regular_size"`
	// MonoFamily is the fixed-width font family name.
	MonoFamily string `mapstructure:"mono_family"`
	// MonoSize is the fixed-width font size in points.
	MonoSize int `mapstructure:"mono_size"`
}

// MonitorConfig holds refresh behavior settings.
type MonitorConfig struct {
	// RefreshInterval is the delay between telemetry polls.
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `mapstructure:"level"`
	// FilePath is the log file path, relative to the config dir unless absolute.
	FilePath string `mapstructure:"file_path"`
	// MaxSizeMB is the maximum log file size before rotation.
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is how many rotated files to keep.
	MaxBackups int `mapstructure:"max_backups"`
	// MaxAge is the maximum age of rotated files in days.
	MaxAge int `mapstructure:"max_age"`
}

// Manager handles loading and saving the settings file.
type Manager struct {
	mu       sync.RWMutex
	config   *Config
	viper    *viper.Viper
	filePath string
}

// NewManager creates a manager with defaults applied but nothing loaded.
func NewManager() *Manager {
	m := &Manager{viper: viper.New()}
	m.viper.SetConfigType("yaml")
	m.setDefaults()
	return m
}

// Load reads the settings file at path. A missing or unreadable file is not
// an error: defaults are used and the file is created on the next Save.
func (m *Manager) Load(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.filePath = path
	if path != "" {
		m.viper.SetConfigFile(path)
		if err := m.viper.ReadInConfig(); err != nil {
			// Corrupt or missing settings fall back to defaults silently;
			// the caller may log the reason.
			m.config = &Config{}
			if uerr := m.viper.Unmarshal(m.config); uerr != nil {
				return fmt.Errorf("apply default config: %w", uerr)
			}
			return nil
		}
	}

	m.config = &Config{}
	if err := m.viper.Unmarshal(m.config); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

// Save writes the current settings to the file loaded from.
func (m *Manager) Save() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.filePath == "" {
		return fmt.Errorf("no config file path set")
	}
	if err := os.MkdirAll(filepath.Dir(m.filePath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return m.viper.WriteConfigAs(m.filePath)
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Path returns the settings file path in use.
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filePath
}

// Update applies a modifier to the configuration and syncs it back into the
// underlying store so a following Save persists it.
func (m *Manager) Update(modifier func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	modifier(m.config)

	m.viper.Set("general.language", m.config.General.Language)
	m.viper.Set("general.theme", m.config.General.Theme)
	m.viper.Set("general.always_on_top", m.config.General.AlwaysOnTop)
	m.viper.Set("font.regular_family", m.config.Font.RegularFamily)
	m.viper.Set("font.regular_size", m.config.Font.RegularSize)
	m.viper.Set("font.mono_family", m.config.Font.MonoFamily)
	m.viper.Set("font.mono_size", m.config.Font.MonoSize)
	m.viper.Set("monitor.refresh_interval", m.config.Monitor.RefreshInterval.String())
	m.viper.Set("logging.level", m.config.Logging.Level)
}

// DefaultPath returns the standard settings file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sysmon", "config.yaml"), nil
}

func (m *Manager) setDefaults() {
	m.viper.SetDefault("general.language", "en")
	m.viper.SetDefault("general.theme", "dark")
	m.viper.SetDefault("general.always_on_top", false)

	m.viper.SetDefault("font.regular_family", "Sans")
	m.viper.SetDefault("font.regular_size", 12)
	m.viper.SetDefault("font.mono_family", "Monospace")
	m.viper.SetDefault("font.mono_size", 12)

	m.viper.SetDefault("monitor.refresh_interval", "1s")

	m.viper.SetDefault("logging.level", "info")
	m.viper.SetDefault("logging.file_path", "logs/sysmon.log")
	m.viper.SetDefault("logging.max_size_mb", 10)
	m.viper.SetDefault("logging.max_backups", 3)
	m.viper.SetDefault("logging.max_age", 7)
}

// Validate checks the configuration and returns all problems found.
func (c *Config) Validate() []error {
	var errs []error

	if c.Monitor.RefreshInterval <= 0 {
		errs = append(errs, fmt.Errorf("refresh_interval must be positive"))
	}

	validThemes := map[string]bool{"dark": true, "light": true, "system": true}
	if !validThemes[c.General.Theme] {
		errs = append(errs, fmt.Errorf("invalid theme: %s", c.General.Theme))
	}

	if c.Font.RegularSize < 6 || c.Font.RegularSize > 72 {
		errs = append(errs, fmt.Errorf("regular font size must be between 6 and 72"))
	}
	if c.Font.MonoSize < 6 || c.Font.MonoSize > 72 {
		errs = append(errs, fmt.Errorf("mono font size must be between 6 and 72"))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Errorf("invalid log level: %s", c.Logging.Level))
	}

	return errs
}
