package docgen

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	runerrors "github.com/PentesterFlow/hardocs/internal/errors"
	"github.com/PentesterFlow/hardocs/internal/extract"
	"github.com/PentesterFlow/hardocs/internal/har"
	"github.com/PentesterFlow/hardocs/internal/logger"
	"github.com/PentesterFlow/hardocs/internal/markdown"
	"github.com/PentesterFlow/hardocs/internal/output"
)

// Generator orchestrates one documentation run: load the capture, extract
// and deduplicate endpoints, print the listing, render the tree, export
// the inventory. A run is single-threaded and one-shot; any failure
// surfaces immediately.
type Generator struct {
	config *Config
	logger *logger.Logger
	stdout io.Writer
}

// Result summarizes a completed run.
type Result struct {
	Base      string
	Endpoints []extract.Endpoint
	Stats     extract.Stats
	Duration  time.Duration
}

// New creates a new generator with the given options.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		config: DefaultConfig(),
		stdout: os.Stdout,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	// Validate config
	if err := g.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if g.logger == nil {
		logLevel := logger.WarnLevel
		if g.config.Debug {
			logLevel = logger.DebugLevel
		} else if g.config.Verbose {
			logLevel = logger.InfoLevel
		}
		g.logger = logger.New(logger.Config{
			Level:     logLevel,
			Pretty:    true,
			Component: "docgen",
		})
	}
	logger.SetGlobal(g.logger)

	return g, nil
}

// Run executes the whole transform. The context is consulted between
// phases only; a batch run has no internal suspension points.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	archive, err := har.Load(g.config.HARPath)
	if err != nil {
		return nil, err
	}
	g.logger.Infof("loaded %d entries from %s", len(archive.Log.Entries), g.config.HARPath)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	set, stats, err := extract.New(g.config.BaseURL).Extract(archive)
	if err != nil {
		return nil, err
	}
	endpoints := set.Sorted()

	// The listing is product output and goes out before any file is
	// written, in the same order as the rendered index.
	for _, ep := range endpoints {
		fmt.Fprintf(g.stdout, "%s %s\n", ep.Method, ep.URL)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := markdown.New(g.config.OutputDir).Render(g.config.BaseURL, endpoints); err != nil {
		return nil, err
	}

	if g.config.JSONPath != "" {
		if err := g.exportInventory(endpoints, stats); err != nil {
			return nil, err
		}
	}

	return &Result{
		Base:      g.config.BaseURL,
		Endpoints: endpoints,
		Stats:     stats,
		Duration:  time.Since(start),
	}, nil
}

// exportInventory writes the JSON inventory next to the rendered tree.
func (g *Generator) exportInventory(endpoints []extract.Endpoint, stats extract.Stats) error {
	f, err := os.Create(g.config.JSONPath)
	if err != nil {
		return runerrors.NewFilesystemError(g.config.JSONPath, "create", err)
	}

	w := output.NewJSONWriter(f, g.config.JSONPretty)
	inv := output.BuildInventory(g.config.BaseURL, endpoints, stats)
	if err := w.WriteInventory(inv); err != nil {
		f.Close()
		return runerrors.NewFilesystemError(g.config.JSONPath, "write", err)
	}
	if err := w.Close(); err != nil {
		return runerrors.NewFilesystemError(g.config.JSONPath, "close", err)
	}

	g.logger.Infof("wrote endpoint inventory to %s", g.config.JSONPath)
	return nil
}
