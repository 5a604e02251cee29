package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	runerrors "github.com/PentesterFlow/hardocs/internal/errors"
	"github.com/PentesterFlow/hardocs/internal/output"
	"github.com/PentesterFlow/hardocs/pkg/docgen"
)

var (
	version = "1.0.0"

	// Global flags
	verbose bool
	debug   bool

	// Export flags
	jsonFile    string
	compactJSON bool
	summary     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hardocs <HAR file> <API base URL> <output dir>",
		Short: "hardocs - HAR capture to API documentation",
		Long: `hardocs - Generate browsable API documentation from captured traffic.

Reads a HAR capture, extracts the distinct endpoints observed under the
given base URL, and writes a Markdown documentation tree: an index page
plus one page per endpoint with example headers, parameters, body fields
and response content.`,
		Version:       version,
		Args:          checkArgs,
		RunE:          runGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Debug mode")
	rootCmd.Flags().StringVar(&jsonFile, "json", "", "Also write a JSON endpoint inventory to this file")
	rootCmd.Flags().BoolVar(&compactJSON, "compact-json", false, "Write the JSON inventory without indentation")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Print a YAML run summary to stderr")

	if err := rootCmd.Execute(); err != nil {
		if !runerrors.IsUsage(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(runerrors.ExitCode(err))
	}
}

// checkArgs enforces the three positional arguments. The usage message
// goes to stdout, and the run exits non-zero without further processing.
func checkArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		fmt.Fprintln(os.Stdout, "Usage: hardocs <HAR file> <API base URL> <output dir>")
		return runerrors.NewUsageError(fmt.Sprintf("expected 3 arguments, got %d", len(args)))
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	harFile, baseURL, outDir := args[0], args[1], args[2]

	opts := []docgen.Option{
		docgen.WithHARPath(harFile),
		docgen.WithBaseURL(baseURL),
		docgen.WithOutputDir(outDir),
		docgen.WithVerbose(verbose),
		docgen.WithDebug(debug),
	}
	if jsonFile != "" {
		opts = append(opts, docgen.WithJSONExport(jsonFile, !compactJSON))
	}

	g, err := docgen.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	result, err := g.Run(context.Background())
	if err != nil {
		return err
	}

	if summary {
		s := output.BuildSummary(result.Base, result.Endpoints, result.Stats)
		data, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to render summary: %w", err)
		}
		os.Stderr.Write(data)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Documented %d endpoints in %v\n", len(result.Endpoints), result.Duration.Round(time.Millisecond))
	}
	return nil
}
