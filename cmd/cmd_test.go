package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinerate/internal/catalog"
	"cinerate/internal/config"
	"cinerate/internal/eventbus"
)

// execute runs the command tree with an isolated config and log file
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	base := []string{
		"--config", filepath.Join(dir, "config.toml"),
		"--log-file", filepath.Join(dir, "test.log"),
	}

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, base...))

	err := root.Execute()
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	out, err := execute(t, "search", "nolan", "--debounce", "1ms")
	require.NoError(t, err)

	assert.Contains(t, out, "Inception")
	assert.Contains(t, out, "The Dark Knight")
	assert.Contains(t, out, "Interstellar")
	assert.NotContains(t, out, "Pulp Fiction")
	assert.Contains(t, out, `3 result(s) for "nolan"`)
}

func TestSearchCommandJoinsArgs(t *testing.T) {
	out, err := execute(t, "search", "the", "dark", "--debounce", "0s")
	require.NoError(t, err)
	assert.Contains(t, out, "The Dark Knight")
	assert.Contains(t, out, `1 result(s) for "the dark"`)
}

func TestSearchCommandNoResults(t *testing.T) {
	out, err := execute(t, "search", "zzz", "--debounce", "0s")
	require.NoError(t, err)
	assert.Contains(t, out, `No results found for "zzz"`)
}

func TestSearchCommandRejectsBlankQuery(t *testing.T) {
	_, err := execute(t, "search", "   ", "--debounce", "0s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blank")
}

func TestSearchCommandRequiresQuery(t *testing.T) {
	_, err := execute(t, "search")
	require.Error(t, err)
}

func TestTrendingCommand(t *testing.T) {
	out, err := execute(t, "trending")
	require.NoError(t, err)
	assert.Contains(t, out, "The Godfather")
	assert.Contains(t, out, "Sci-Fi, Action, Thriller")
	assert.Contains(t, out, "GENRES")
}

func TestTrendingCommandUpcomingEmpty(t *testing.T) {
	out, err := execute(t, "trending", "--upcoming")
	require.NoError(t, err)
	assert.Contains(t, out, "No upcoming movies yet.")
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	require.FileExists(t, path)

	cfg, err := config.NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	// A second init refuses to overwrite
	_, err = execute(t, "config", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", path, "--force")
	require.NoError(t, err)
}

func TestConfigShowAppliesOverrides(t *testing.T) {
	out, err := execute(t, "config", "show", "--route", "/movies", "--debounce", "250ms")
	require.NoError(t, err)
	assert.Contains(t, out, "start route:   /movies")
	assert.Contains(t, out, "debounce:      250ms")
	assert.Contains(t, out, "(built-in)")
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	t.Setenv("CINERATE_ROUTE", "/from-env")

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "start route:   /from-env")
}

func TestInvalidOverrideIsRejected(t *testing.T) {
	_, err := execute(t, "config", "show", "--route", "no-slash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_route")
}

func TestCatalogExportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")

	out, err := execute(t, "catalog", "export", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 10 movies")

	c, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Movies(), c.Movies())
	assert.Equal(t, catalog.Default().Trending(), c.Trending())
}

func TestSearchUsesCatalogFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	doc := `
[[movies]]
id = 1
title = "Alien"
year = 1979
rating = 8.5
director = "Ridley Scott"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	out, err := execute(t, "search", "scott", "--catalog", path, "--debounce", "0s")
	require.NoError(t, err)
	assert.Contains(t, out, "Alien")
	assert.NotContains(t, out, "Inception")
}

func TestMissingCatalogFileFails(t *testing.T) {
	_, err := execute(t, "trending", "--catalog", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog")
}

func TestBrokenConfigFallsBackAndIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\ndebounce_ms = -5\n"), 0644))

	v := viper.New()
	v.Set("config", path)
	s, err := loadSettings(v, nil)
	require.NoError(t, err)
	require.Error(t, s.ConfigErr)
	assert.Equal(t, config.DefaultConfig().Search.DebounceMS, s.Config.Search.DebounceMS)

	bus := eventbus.New()
	defer bus.Close()
	got := make(chan eventbus.ErrorEvent, 1)
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.ErrorEvent)
	})

	reportStartupErrors(bus, s)

	select {
	case e := <-got:
		assert.Contains(t, e.Message, "using defaults")
		assert.Contains(t, e.Message, "debounce_ms")
		assert.ErrorIs(t, e.Err, s.ConfigErr)
	case <-time.After(2 * time.Second):
		t.Fatal("expected an error event")
	}
}

func TestValidConfigReportsNothing(t *testing.T) {
	v := viper.New()
	v.Set("config", filepath.Join(t.TempDir(), "missing.toml"))
	s, err := loadSettings(v, nil)
	require.NoError(t, err)
	assert.NoError(t, s.ConfigErr)

	bus := eventbus.New()
	defer bus.Close()
	got := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) { got <- e })

	reportStartupErrors(bus, s)

	select {
	case e := <-got:
		t.Fatalf("unexpected event %v", e)
	case <-time.After(100 * time.Millisecond):
	}
}
