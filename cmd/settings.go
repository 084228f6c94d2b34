package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"

	"cinerate/internal/catalog"
	"cinerate/internal/config"
	"cinerate/internal/eventbus"
)

// settings is everything a command needs after flags, env and file are merged
type settings struct {
	ConfigPath string
	Config     *config.Config
	Catalog    *catalog.Catalog
	ConfigErr  error // set when the config file was ignored in favour of defaults
}

// loadSettings reads the config file and applies flag and env overrides.
// An unreadable config file falls back to defaults; an unreadable catalog
// file is an error.
func loadSettings(v *viper.Viper, bus eventbus.EventBus) (*settings, error) {
	svc := config.NewConfigServiceWithBus(v.GetString("config"), bus)

	cfg, configErr := svc.Load()
	if configErr != nil {
		log.Printf("Error loading config: %v", configErr)
		cfg = config.DefaultConfig()
	}

	if v.IsSet("catalog") {
		cfg.CatalogFile = v.GetString("catalog")
	}
	if v.IsSet("route") {
		cfg.StartRoute = v.GetString("route")
	}
	if v.IsSet("debounce") {
		cfg.Search.DebounceMS = int(v.GetDuration("debounce") / time.Millisecond)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	var err error
	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		cat, err = catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded %d movies from %s", cat.Len(), cfg.CatalogFile)
	}

	return &settings{
		ConfigPath: svc.Path(),
		Config:     cfg,
		Catalog:    cat,
		ConfigErr:  configErr,
	}, nil
}

// reportStartupErrors publishes problems that did not stop start-up
func reportStartupErrors(bus eventbus.EventBus, s *settings) {
	if s.ConfigErr != nil {
		bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("config ignored, using defaults: %v", s.ConfigErr),
			Err:     s.ConfigErr,
		})
	}
}
