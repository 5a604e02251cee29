package docgen

import (
	"io"

	"github.com/PentesterFlow/hardocs/internal/logger"
)

// Option is a functional option for configuring the Generator.
type Option func(*Generator) error

// WithHARPath sets the HAR capture to read.
func WithHARPath(path string) Option {
	return func(g *Generator) error {
		g.config.HARPath = path
		return nil
	}
}

// WithBaseURL sets the base URL prefix entries are filtered against.
func WithBaseURL(base string) Option {
	return func(g *Generator) error {
		g.config.BaseURL = base
		return nil
	}
}

// WithOutputDir sets the directory the documentation tree is written to.
func WithOutputDir(dir string) Option {
	return func(g *Generator) error {
		g.config.OutputDir = dir
		return nil
	}
}

// WithJSONExport enables writing a JSON endpoint inventory to path.
func WithJSONExport(path string, pretty bool) Option {
	return func(g *Generator) error {
		g.config.JSONPath = path
		g.config.JSONPretty = pretty
		return nil
	}
}

// WithStdout sets the writer the endpoint listing is printed to. Defaults
// to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(g *Generator) error {
		g.stdout = w
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *logger.Logger) Option {
	return func(g *Generator) error {
		g.logger = l
		return nil
	}
}

// WithVerbose enables/disables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(g *Generator) error {
		g.config.Verbose = verbose
		return nil
	}
}

// WithDebug enables/disables debug mode.
func WithDebug(debug bool) Option {
	return func(g *Generator) error {
		g.config.Debug = debug
		return nil
	}
}

// WithConfig sets the entire configuration.
func WithConfig(config *Config) Option {
	return func(g *Generator) error {
		g.config = config
		return nil
	}
}
