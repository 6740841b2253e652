// Package config loads and persists the client settings file: the server
// URL, API key and the bearer token of the last session.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

const (
	DefaultServerURL = "https://budget.appz.wtf"
	DefaultAPIKey    = "your-secret-api-key-change-this"

	appDir   = "budget-tui"
	fileName = "config.toml"
)

// Config mirrors config.toml.
type Config struct {
	Server ServerConfig `mapstructure:"server" toml:"server"`
	Auth   AuthConfig   `mapstructure:"auth" toml:"auth"`
	Log    LogConfig    `mapstructure:"log" toml:"log,omitempty"`

	path string
}

type ServerConfig struct {
	URL    string `mapstructure:"url" toml:"url"`
	APIKey string `mapstructure:"api_key" toml:"api_key"`
}

type AuthConfig struct {
	Token string `mapstructure:"token" toml:"token,omitempty"`
}

type LogConfig struct {
	Level string `mapstructure:"level" toml:"level,omitempty"`
}

// Dir returns the per-user config directory for the client.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", appDir), nil
}

// Path returns the location of config.toml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Default returns the settings used when no file exists yet.
func Default() *Config {
	return &Config{
		Server: ServerConfig{URL: DefaultServerURL, APIKey: DefaultAPIKey},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file is created with
// defaults; an unreadable or malformed file is an error naming the path.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.url", DefaultServerURL)
	v.SetDefault("server.api_key", DefaultAPIKey)
	v.SetDefault("auth.token", "")
	v.SetDefault("log.level", "info")
	v.SetConfigType("toml")
	v.SetConfigFile(path)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		c := Default()
		c.path = path
		if err := c.Save(); err != nil {
			return nil, err
		}
		return c, nil
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	c.path = path
	return &c, nil
}

// Location is the file this config is saved to.
func (c *Config) Location() string { return c.path }

// Save writes the config atomically with owner-only permissions.
func (c *Config) Save() error {
	if c.path == "" {
		path, err := Path()
		if err != nil {
			return err
		}
		c.path = path
	}
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, fileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod config: %w", err)
	}
	if err := toml.NewEncoder(tmp).Encode(c); err != nil {
		tmp.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close config: %w", err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) HasToken() bool { return c.Auth.Token != "" }

func (c *Config) SetToken(token string) error {
	c.Auth.Token = token
	return c.Save()
}

func (c *Config) ClearToken() error {
	c.Auth.Token = ""
	return c.Save()
}

// SetServer updates the connection settings. The URL is stored without a
// trailing slash.
func (c *Config) SetServer(url, apiKey string) error {
	c.Server.URL = strings.TrimRight(strings.TrimSpace(url), "/")
	c.Server.APIKey = strings.TrimSpace(apiKey)
	return c.Save()
}
