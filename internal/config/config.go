package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"cinerate/internal/eventbus"
)

// Tab names accepted by UISettings.DefaultTab
const (
	TabTrending = "trending"
	TabUpcoming = "upcoming"
)

// Config represents the application configuration
type Config struct {
	Version     int            `toml:"version"`
	CatalogFile string         `toml:"catalog_file"` // optional TOML catalog, built-in data when empty
	StartRoute  string         `toml:"start_route"`
	Search      SearchSettings `toml:"search"`
	UISettings  UISettings     `toml:"ui"`
}

// SearchSettings configures the hero search box
type SearchSettings struct {
	DebounceMS  int    `toml:"debounce_ms"`
	Placeholder string `toml:"placeholder"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DefaultTab string `toml:"default_tab"`
	ShowBadges bool   `toml:"show_badges"`
}

// Debounce returns the search debounce window
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Search.DebounceMS) * time.Millisecond
}

// Validate checks values that would otherwise misbehave at runtime
func (c *Config) Validate() error {
	var errs []error
	if c.Search.DebounceMS < 0 {
		errs = append(errs, fmt.Errorf("search.debounce_ms must not be negative, got %d", c.Search.DebounceMS))
	}
	switch c.UISettings.DefaultTab {
	case TabTrending, TabUpcoming:
	default:
		errs = append(errs, fmt.Errorf("ui.default_tab must be %q or %q, got %q", TabTrending, TabUpcoming, c.UISettings.DefaultTab))
	}
	if c.StartRoute != "" && c.StartRoute[0] != '/' {
		errs = append(errs, fmt.Errorf("start_route must begin with '/', got %q", c.StartRoute))
	}
	return errors.Join(errs...)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "cinerate", "config.toml")
}

// NewConfigService creates a config service backed by path, or DefaultPath when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file. A missing file
// yields DefaultConfig.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{})
		}
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		StartRoute: "/",
		Search: SearchSettings{
			DebounceMS:  500,
			Placeholder: "Search for movies, directors, or actors...",
		},
		UISettings: UISettings{
			DefaultTab: TabTrending,
			ShowBadges: true,
		},
	}
}
