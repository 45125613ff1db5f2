package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shayne-snap/llmscape/internal/catalog"
	"github.com/shayne-snap/llmscape/internal/config"
	"github.com/shayne-snap/llmscape/internal/display"
	"github.com/shayne-snap/llmscape/internal/hardware"
)

var errNotFound = errors.New("no entry found")

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}

func setupLogger(w io.Writer) error {
	name := cfg.Log.Level
	if globalLogLevel != "" {
		name = globalLogLevel
	}
	lvl, err := config.ParseLevel(name)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// openLogFile opens the TUI log file for appending; the terminal belongs to the UI.
func openLogFile() (*os.File, error) {
	path, err := cfg.LogFile()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// resolveView picks --view over the configured default.
func resolveView() (string, error) {
	if globalView != "" {
		return config.ParseView(globalView)
	}
	return config.ParseView(cfg.UI.DefaultView)
}

func catalogFor(view string) *catalog.Catalog {
	if view == config.ViewSmall {
		return catalog.Small()
	}
	return catalog.Large()
}

// detectSpecs reads host specs for the fit badge. Failure only hides the badge.
func detectSpecs() *hardware.SystemSpecs {
	specs, err := hardware.Detect()
	if err != nil {
		slog.Warn("hardware detection failed", "err", err)
		return nil
	}
	return specs
}

// landscape projects the view's catalog: every entry for llm, one category for slm.
// An empty category on slm lists the whole landscape.
func landscape(view, category string, specs *hardware.SystemSpecs) (display.Landscape, error) {
	c := catalogFor(view)
	l := display.Landscape{Catalog: c}
	if !c.Categorised() {
		if category != "" {
			return l, fmt.Errorf("--category only applies to the %s view", config.ViewSmall)
		}
		l.Entries = catalog.ProjectAll(c)
		return l, nil
	}
	l.Specs = specs
	if category == "" {
		l.Entries = catalog.ProjectAll(c)
		return l, nil
	}
	cat, err := catalog.ParseCategory(category)
	if err != nil {
		return l, err
	}
	l.Entries = catalog.Project(c, cat)
	return l, nil
}

// findEntry looks an id up in both landscapes, large first. Without an exact id
// match it falls back to a search that must hit exactly one entry.
func findEntry(query string) (*catalog.Catalog, catalog.Entry, []catalog.Entry, error) {
	cats := []*catalog.Catalog{catalog.Large(), catalog.Small()}
	for _, c := range cats {
		if e, ok := c.Get(query); ok {
			return c, e, nil, nil
		}
	}
	var hits []catalog.Entry
	var owner *catalog.Catalog
	for _, c := range cats {
		found := catalog.Search(c.All(), query)
		if len(found) > 0 {
			owner = c
		}
		hits = append(hits, found...)
	}
	switch len(hits) {
	case 0:
		return nil, catalog.Entry{}, nil, fmt.Errorf("%w matching '%s'", errNotFound, query)
	case 1:
		return owner, hits[0], nil, nil
	default:
		return nil, catalog.Entry{}, hits, nil
	}
}
