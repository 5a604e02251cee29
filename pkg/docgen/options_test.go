package docgen

import (
	"bytes"
	"testing"
)

func TestNew_RequiresConfig(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("New() with no options should fail validation")
	}

	if _, err := New(WithHARPath("f.har"), WithBaseURL("https://x")); err == nil {
		t.Fatal("missing output dir should fail validation")
	}
}

func TestOptions(t *testing.T) {
	var buf bytes.Buffer

	g, err := New(
		WithHARPath("capture.har"),
		WithBaseURL("https://api.example.com/v1"),
		WithOutputDir("docs"),
		WithJSONExport("inventory.json", false),
		WithStdout(&buf),
		WithVerbose(true),
		WithDebug(true),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if g.config.HARPath != "capture.har" {
		t.Errorf("HARPath = %q", g.config.HARPath)
	}
	if g.config.BaseURL != "https://api.example.com/v1" {
		t.Errorf("BaseURL = %q", g.config.BaseURL)
	}
	if g.config.OutputDir != "docs" {
		t.Errorf("OutputDir = %q", g.config.OutputDir)
	}
	if g.config.JSONPath != "inventory.json" || g.config.JSONPretty {
		t.Errorf("JSON export = %q pretty=%v", g.config.JSONPath, g.config.JSONPretty)
	}
	if g.stdout != &buf {
		t.Error("stdout writer not applied")
	}
	if !g.config.Verbose || !g.config.Debug {
		t.Error("logging flags not applied")
	}
}

func TestWithConfig(t *testing.T) {
	c := &Config{
		HARPath:   "a.har",
		BaseURL:   "https://x",
		OutputDir: "out",
	}

	g, err := New(WithConfig(c))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if g.config != c {
		t.Error("WithConfig should replace the whole configuration")
	}
}
