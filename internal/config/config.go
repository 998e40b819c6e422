// Package config handles the XDG configuration directory, file paths
// and the optional config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todoq"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// ConfigFile is the optional settings filename.
	ConfigFile = "config.toml"
)

// Backend names accepted in config.toml and on the command line.
const (
	BackendMemory      = "memory"
	BackendLocal       = "local"
	BackendGoogleTasks = "googletasks"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Backend selects the storage backend: memory, local or
	// googletasks.
	Backend string

	// Locale is the BCP 47 tag used for CLI output and the about
	// page.
	Locale string

	// List is the Google Tasks list id used by the googletasks
	// backend.
	List string

	// DataDir is the directory for the local backend's database.
	DataDir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig mirrors config.toml. Pointer fields so absent keys leave
// the defaults alone.
type fileConfig struct {
	Backend *string `toml:"backend"`
	Locale  *string `toml:"locale"`
	List    *string `toml:"list"`
	DataDir *string `toml:"data_dir"`
	Quiet   *bool   `toml:"quiet"`
}

// New creates a Config for the default or specified config directory,
// applying config.toml on top of the defaults if the file exists.
// If configDir is empty, uses XDG_CONFIG_HOME/todoq or
// $HOME/.config/todoq.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:     dir,
		Backend: BackendLocal,
		Locale:  "en",
		List:    "@default",
		DataDir: DefaultDataDir(),
	}
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile() error {
	path := filepath.Join(c.Dir, ConfigFile)
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	if fc.Backend != nil {
		c.Backend = *fc.Backend
	}
	if fc.Locale != nil {
		c.Locale = *fc.Locale
	}
	if fc.List != nil {
		c.List = *fc.List
	}
	if fc.DataDir != nil {
		c.DataDir = *fc.DataDir
	}
	if fc.Quiet != nil {
		c.Quiet = *fc.Quiet
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendMemory, BackendLocal, BackendGoogleTasks:
		return nil
	default:
		return fmt.Errorf("unknown backend: %s", c.Backend)
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultDataDir returns the default data directory for the local
// backend. Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
