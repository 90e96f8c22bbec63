// Package config loads the DungeonDaily settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"dungeondaily/pkg/engine/input"
	"dungeondaily/pkg/engine/logging"
	"dungeondaily/pkg/game/state"
)

// Frontends that main knows how to start
const (
	FrontendTUI    = "tui"
	FrontendEbiten = "ebiten"
	FrontendServe  = "serve"
)

// Window holds the graphical window settings
type Window struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tile_size"`
}

// Server holds the remote adapter settings
type Server struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Config is the full settings file
type Config struct {
	Frontend       string  `yaml:"frontend"`
	Locale         string  `yaml:"locale"`
	LocalesDir     string  `yaml:"locales_dir"`
	LogLevel       string  `yaml:"log_level"`
	EnemyPolicy    string  `yaml:"enemy_policy"`
	SwipeThreshold float64 `yaml:"swipe_threshold"`
	ShareURL       string  `yaml:"share_url"`
	Window         Window  `yaml:"window"`
	Server         Server  `yaml:"server"`
}

// Default returns the settings used when no file is present
func Default() *Config {
	return &Config{
		Frontend:       FrontendTUI,
		Locale:         "en_GB",
		LocalesDir:     "locales",
		LogLevel:       "info",
		EnemyPolicy:    state.PolicyCompat.String(),
		SwipeThreshold: input.DefaultSwipeThreshold,
		ShareURL:       "https://dungeondaily.example/",
		Window: Window{
			Width:    480,
			Height:   640,
			TileSize: 40,
		},
		Server: Server{
			Addr: ":8080",
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file gives
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be corrected silently
func (c *Config) Validate() error {
	switch c.Frontend {
	case FrontendTUI, FrontendEbiten, FrontendServe:
	default:
		return fmt.Errorf("unknown frontend %q (want tui, ebiten or serve)", c.Frontend)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.SwipeThreshold <= 0 {
		return fmt.Errorf("swipe_threshold must be positive, got %v", c.SwipeThreshold)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 || c.Window.TileSize < 0 {
		return errors.New("window sizes must not be negative")
	}
	return nil
}

// Policy returns the configured enemy contact policy
func (c *Config) Policy() (state.EnemyPolicy, error) {
	return state.ParseEnemyPolicy(c.EnemyPolicy)
}

var (
	current   = Default()
	currentMu sync.RWMutex
)

// Current returns the active settings
func Current() *Config {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the active settings
func SetCurrent(c *Config) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = c
}
