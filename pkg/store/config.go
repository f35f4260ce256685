package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	// ConfigFileName is the config file written by WriteConfig.
	ConfigFileName = ".tasklists.toml"
)

// Config selects where and how state is persisted.
type Config struct {
	Path     string `mapstructure:"path" toml:"path"`
	Backend  string `mapstructure:"backend" toml:"backend"`
	LogLevel string `mapstructure:"log_level" toml:"log_level"`
	View     string `mapstructure:"view" toml:"view"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Path:     "~/.tasklists",
		Backend:  BackendDiskv,
		LogLevel: "warn",
		View:     "list",
	}
}

// LoadConfig reads .tasklists.{yaml,toml,json} from $TASKLISTS_CONFIG_PATH,
// the working directory and the home directory, overlaid with TASKLISTS_*
// environment variables. A missing config file is not an error.
func LoadConfig() (*Config, error) {
	def := DefaultConfig()
	v := viper.New()
	v.SetDefault("path", def.Path)
	v.SetDefault("backend", def.Backend)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("view", def.View)
	v.SetConfigName(".tasklists")
	v.SetEnvPrefix("TASKLISTS")
	v.AutomaticEnv()

	if override := os.Getenv("TASKLISTS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("store: decode config: %w", err)
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	return cfg, nil
}

// BasePath returns Path with a leading ~ expanded.
func (c *Config) BasePath() string {
	if c == nil {
		return ""
	}
	p, err := homedir.Expand(c.Path)
	if err != nil {
		return c.Path
	}
	return p
}

// TOML renders the config the way WriteConfig stores it.
func (c *Config) TOML() ([]byte, error) {
	return toml.Marshal(c)
}

// WriteConfig writes cfg to path unless a file already exists there.
func WriteConfig(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("store: %s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	data, err := cfg.TOML()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
