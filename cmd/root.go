// Package cmd provides the cinerate command-line interface.
//
// Settings are resolved with this precedence, highest first:
//  1. Command-line flags (--catalog, --route, --debounce)
//  2. CINERATE_* environment variables (CINERATE_CATALOG, CINERATE_ROUTE, ...)
//  3. The TOML config file (--config, default ~/.config/cinerate/config.toml)
//  4. Built-in defaults
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cinerate/internal/eventbus"
	"cinerate/internal/ui"
)

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Each call gets its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:   "cinerate",
		Short: "Discover and rate movies from the terminal",
		Long: `CineRate is a terminal movie-discovery app: a search box with
search-as-you-type over a movie catalog, a Discover grid of trending
and upcoming movies, and session-only ratings and watchlist.

Quick Start:
  cinerate                       Start the TUI
  cinerate search nolan          One-shot search
  cinerate trending              List trending movies
  cinerate config init           Write the default config file`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			closer, err := setupLogging(v.GetString("log-file"))
			if err != nil {
				return err
			}
			logCloser = closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is ~/.config/cinerate/config.toml)")
	flags.String("catalog", "", "TOML catalog file (default is the built-in catalog)")
	flags.String("route", "", "start route, anything but / shows the 404 page")
	flags.Duration("debounce", 0, "search debounce window, e.g. 500ms")
	flags.String("log-file", "cinerate.log", "log file, empty to discard logs")

	bindFlags(v, flags)
	v.SetEnvPrefix("CINERATE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(
		newSearchCmd(v),
		newTrendingCmd(v),
		newConfigCmd(v),
		newCatalogCmd(v),
	)

	return rootCmd
}

// bindFlags registers every flag in fs with v under the flag's own name
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
	})
}

// setupLogging sends the standard logger to path. Bubble Tea owns stdout,
// so logs never go to the terminal.
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	log.SetOutput(logFile)
	return logFile, nil
}

func runTUI(cmd *cobra.Command, v *viper.Viper) error {
	ctx, cancel := signal.NotifyContext(contextOf(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	s, err := loadSettings(v, bus)
	if err != nil {
		return err
	}

	uiModel := ui.NewModel(bus, s.Config, s.Catalog)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward errors to the UI; the rest is only logged
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	bus.Subscribe(eventbus.EventMovieRated, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.MovieRatedEvent); ok {
			log.Printf("Movie %d rated %d/10", event.Rating.MovieID, event.Rating.Score)
		}
	})
	bus.Subscribe(eventbus.EventWatchlistChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.WatchlistChangedEvent); ok {
			log.Printf("Watchlist: movie %d added=%v", event.MovieID, event.Added)
		}
	})

	reportStartupErrors(bus, s)

	log.Printf("Starting UI on route %s with %d movies", s.Config.StartRoute, s.Catalog.Len())
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
