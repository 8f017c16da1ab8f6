// Package config loads and saves taxdiff presentation preferences.
//
// Only appearance and server settings live here. Income figures are never
// written to disk.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds all taxdiff configuration.
type Config struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Server     ServerConfig     `toml:"server"`
}

// AppearanceConfig holds theme and layout settings.
type AppearanceConfig struct {
	Theme  string `toml:"theme"`
	Layout string `toml:"layout"`
}

// ServerConfig holds settings for `taxdiff serve`.
type ServerConfig struct {
	Addr     string `toml:"addr"`
	LogLevel string `toml:"log_level"`
}

// Layout modes for the comparison views.
const (
	LayoutAuto    = "auto"
	LayoutCompact = "compact"
	LayoutWide    = "wide"
)

// Layouts lists every accepted layout value.
var Layouts = []string{LayoutAuto, LayoutCompact, LayoutWide}

// Environment overrides, applied after the config file.
const (
	EnvTheme    = "TAXDIFF_THEME"
	EnvAddr     = "TAXDIFF_ADDR"
	EnvLogLevel = "TAXDIFF_LOG_LEVEL"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme:  "dark",
			Layout: LayoutAuto,
		},
		Server: ServerConfig{
			Addr:     "127.0.0.1:8788",
			LogLevel: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "taxdiff")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "taxdiff")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top.
func Load() (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return cfg, err
	}
	return ApplyEnv(cfg), nil
}

// LoadFile reads the config file without environment overrides. Commands
// that write the config back start from this so env values never leak into
// the file.
func LoadFile() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", Path(), err)
	}

	return cfg, nil
}

// ApplyEnv overlays TAXDIFF_* environment variables onto cfg.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Server.LogLevel = v
	}
	return cfg
}

// Validate checks enumerated fields and the server address.
func (c Config) Validate() error {
	if !slices.Contains(Layouts, c.Appearance.Layout) {
		return fmt.Errorf("appearance.layout %q: want one of %v", c.Appearance.Layout, Layouts)
	}
	if err := ValidateAddr(c.Server.Addr); err != nil {
		return fmt.Errorf("server.addr: %w", err)
	}
	return nil
}

// ValidateAddr checks a host:port listen address.
func ValidateAddr(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("invalid port %q", port)
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
