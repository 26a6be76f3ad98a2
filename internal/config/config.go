package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultAccentColor is the brand red used when no settings file exists.
const DefaultAccentColor = "#E50914"

// Store modes select which record-store implementation backs the catalog.
const (
	StoreLocal  = "local"
	StoreRemote = "remote"
)

type Config struct {
	AccentColor         string `toml:"accent_color"`
	ReduceMotion        bool   `toml:"reduce_motion"`
	EnableNotifications bool   `toml:"enable_notifications"`

	Store  string `toml:"store"`
	APIURL string `toml:"api_url"`
}

func DefaultConfig() *Config {
	return &Config{
		AccentColor:         DefaultAccentColor,
		ReduceMotion:        false,
		EnableNotifications: true,
		Store:               StoreLocal,
	}
}

func FetspaceDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".fetspace"), nil
}

func ConfigPath() (string, error) {
	dir, err := FetspaceDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func DatabasePath() (string, error) {
	dir, err := FetspaceDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "db", "fetspace.sqlite"), nil
}

func ErrorLogPath() (string, error) {
	dir, err := FetspaceDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "errors.log"), nil
}

func EnsureDirectories() error {
	dir, err := FetspaceDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	dbDir := filepath.Join(dir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return err
	}

	return nil
}

// Load reads the settings file, creating it with defaults on first run. A
// missing or unreadable file falls back to defaults rather than failing the
// launch.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := EnsureDirectories(); err != nil {
			return nil, err
		}
		if err := Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return DefaultConfig(), nil
	}

	if cfg.AccentColor == "" {
		cfg.AccentColor = DefaultAccentColor
	}
	if cfg.Store == "" {
		cfg.Store = StoreLocal
	}

	return cfg, nil
}

func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}
