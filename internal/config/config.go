package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const configFile = ".popup/config.json"

// Defaults applied when the file is missing or a field is zero.
const (
	DefaultCloseDelayMs = 250
	DefaultWidth        = 50
	DefaultDBFile       = ".popup/items.db"
	DefaultLogLevel     = "info"
)

// Config holds the demo's persisted settings.
type Config struct {
	CloseDelayMs  int    `json:"close_delay_ms,omitempty"`
	Width         int    `json:"width,omitempty"`
	Markdown      bool   `json:"markdown,omitempty"`
	HideHints     bool   `json:"hide_hints,omitempty"`
	LogLevel      string `json:"log_level,omitempty"`
	LogFile       string `json:"log_file,omitempty"`
	DBPath        string `json:"db_path,omitempty"`
	RemindSeconds int    `json:"remind_seconds,omitempty"`
}

// Default returns a config with every default filled in.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// CloseDelay returns the configured callback delay.
func (c *Config) CloseDelay() time.Duration {
	return time.Duration(c.CloseDelayMs) * time.Millisecond
}

// RemindEvery returns the reminder interval, or 0 when reminders are off.
func (c *Config) RemindEvery() time.Duration {
	return time.Duration(c.RemindSeconds) * time.Second
}

// ResolveDBPath returns DBPath made absolute against baseDir.
func (c *Config) ResolveDBPath(baseDir string) string {
	if filepath.IsAbs(c.DBPath) {
		return c.DBPath
	}
	return filepath.Join(baseDir, c.DBPath)
}

func (c *Config) applyDefaults() {
	if c.CloseDelayMs <= 0 {
		c.CloseDelayMs = DefaultCloseDelayMs
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.DBPath == "" {
		c.DBPath = DefaultDBFile
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.RemindSeconds < 0 {
		c.RemindSeconds = 0
	}
}

// Path returns the config file location under baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Load reads the config from disk
func Load(baseDir string) (*Config, error) {
	data, err := os.ReadFile(Path(baseDir))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := Path(baseDir)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// write via temp file + rename
	tmp, err := os.CreateTemp(filepath.Dir(configPath), "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, configPath)
}
