package docgen

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	runerrors "github.com/PentesterFlow/hardocs/internal/errors"
	"github.com/PentesterFlow/hardocs/internal/output"
)

const captureHAR = `{
  "log": {
    "version": "1.2",
    "entries": [
      {
        "request": {
          "method": "GET",
          "url": "https://api.example.com/v1/users?limit=10",
          "headers": [{"name": "Accept", "value": "application/json"}]
        },
        "response": {
          "status": 200,
          "headers": [{"name": "Content-Type", "value": "application/json"}],
          "content": {"mimeType": "application/json", "text": "{\"users\":[]}"}
        }
      },
      {
        "request": {
          "method": "OPTIONS",
          "url": "https://api.example.com/v1/users?limit=10",
          "headers": []
        },
        "response": {"status": 204, "headers": []}
      },
      {
        "request": {
          "method": "GET",
          "url": "https://api.example.com/v1/users?limit=50",
          "headers": []
        },
        "response": {"status": 200, "headers": []}
      },
      {
        "request": {
          "method": "POST",
          "url": "https://api.example.com/v1/users/",
          "headers": [{"name": "Content-Type", "value": "application/json"}],
          "postData": {"mimeType": "application/json", "text": "{\"name\":\"a\"}"}
        },
        "response": {
          "status": 201,
          "headers": [],
          "content": {"mimeType": "application/json", "text": "{\"id\":1}"}
        }
      },
      {
        "request": {
          "method": "GET",
          "url": "https://somewhere-else.example.com/users",
          "headers": []
        },
        "response": {"status": 200, "headers": []}
      }
    ]
  }
}`

func writeCapture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capture.har")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerator_Run(t *testing.T) {
	harPath := writeCapture(t, captureHAR)
	outDir := filepath.Join(t.TempDir(), "docs")
	var stdout bytes.Buffer

	g, err := New(
		WithHARPath(harPath),
		WithBaseURL("https://api.example.com/v1"),
		WithOutputDir(outDir),
		WithStdout(&stdout),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	result, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Two GET /users/?limit collapse into one; POST is separate.
	if len(result.Endpoints) != 2 {
		t.Fatalf("len(Endpoints) = %d, want 2", len(result.Endpoints))
	}
	if result.Stats.Entries != 5 || result.Stats.SkippedOptions != 1 || result.Stats.SkippedScope != 1 || result.Stats.Duplicates != 1 {
		t.Errorf("stats = %+v", result.Stats)
	}

	// Stdout listing is sorted and precedes nothing else on stdout.
	wantListing := "GET /users/\nPOST /users/\n"
	if stdout.String() != wantListing {
		t.Errorf("stdout = %q, want %q", stdout.String(), wantListing)
	}

	// Rendered tree exists.
	for _, want := range []string{
		filepath.Join(outDir, "index.md"),
		filepath.Join(outDir, "users", "GET_0.md"),
		filepath.Join(outDir, "users", "POST_1.md"),
	} {
		if _, err := os.Stat(want); err != nil {
			t.Errorf("missing %s", want)
		}
	}

	// The kept GET example is the first capture.
	page, err := os.ReadFile(filepath.Join(outDir, "users", "GET_0.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), "`limit` | <code>10</code>") {
		t.Errorf("GET page should keep the first example:\n%s", page)
	}
}

func TestGenerator_Run_JSONExport(t *testing.T) {
	harPath := writeCapture(t, captureHAR)
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "inventory.json")

	g, err := New(
		WithHARPath(harPath),
		WithBaseURL("https://api.example.com/v1"),
		WithOutputDir(filepath.Join(dir, "docs")),
		WithJSONExport(jsonPath, true),
		WithStdout(&bytes.Buffer{}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("inventory not written: %v", err)
	}

	var inv output.Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		t.Fatalf("inventory is not valid JSON: %v", err)
	}
	if inv.Total != 2 {
		t.Errorf("Total = %d, want 2", inv.Total)
	}
	if inv.ByMethod["GET"] != 1 || inv.ByMethod["POST"] != 1 {
		t.Errorf("ByMethod = %v", inv.ByMethod)
	}
	if inv.Endpoints[0].Ordinal != 0 || inv.Endpoints[0].Method != "GET" {
		t.Errorf("first record = %+v", inv.Endpoints[0])
	}
}

func TestGenerator_Run_MissingHAR(t *testing.T) {
	g, err := New(
		WithHARPath(filepath.Join(t.TempDir(), "nope.har")),
		WithBaseURL("https://x"),
		WithOutputDir(t.TempDir()),
		WithStdout(&bytes.Buffer{}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = g.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for missing HAR file")
	}
	if runerrors.GetType(err) != runerrors.Input {
		t.Errorf("error type = %v, want Input", runerrors.GetType(err))
	}
}

func TestGenerator_Run_MalformedPayloadAborts(t *testing.T) {
	harContent := `{
  "log": {
    "entries": [
      {
        "request": {
          "method": "POST",
          "url": "https://api.example.com/v1/users/",
          "headers": [],
          "postData": {"mimeType": "application/json", "text": "{broken"}
        },
        "response": {"status": 200, "headers": []}
      }
    ]
  }
}`
	harPath := writeCapture(t, harContent)
	outDir := filepath.Join(t.TempDir(), "docs")

	g, err := New(
		WithHARPath(harPath),
		WithBaseURL("https://api.example.com/v1"),
		WithOutputDir(outDir),
		WithStdout(&bytes.Buffer{}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = g.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for malformed payload")
	}
	if runerrors.GetType(err) != runerrors.Parse {
		t.Errorf("error type = %v, want Parse", runerrors.GetType(err))
	}

	// No partial tree for a run that failed before rendering.
	if _, statErr := os.Stat(filepath.Join(outDir, "index.md")); statErr == nil {
		t.Error("failed run should not leave an index behind")
	}
}

func TestGenerator_Run_Cancelled(t *testing.T) {
	harPath := writeCapture(t, captureHAR)

	g, err := New(
		WithHARPath(harPath),
		WithBaseURL("https://api.example.com/v1"),
		WithOutputDir(filepath.Join(t.TempDir(), "docs")),
		WithStdout(&bytes.Buffer{}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.Run(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestGenerator_Run_EmptyCapture(t *testing.T) {
	harPath := writeCapture(t, `{"log": {"entries": []}}`)
	outDir := filepath.Join(t.TempDir(), "docs")
	var stdout bytes.Buffer

	g, err := New(
		WithHARPath(harPath),
		WithBaseURL("https://x"),
		WithOutputDir(outDir),
		WithStdout(&stdout),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	result, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(result.Endpoints) != 0 {
		t.Errorf("len(Endpoints) = %d, want 0", len(result.Endpoints))
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", stdout.String())
	}

	// The index still exists, just with no links.
	index, err := os.ReadFile(filepath.Join(outDir, "index.md"))
	if err != nil {
		t.Fatalf("index not written: %v", err)
	}
	if !strings.Contains(string(index), "## `https://x`") {
		t.Errorf("index = %q", index)
	}
}
