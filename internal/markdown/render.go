// Package markdown renders extracted endpoints as a browsable Markdown
// tree: one index page plus one page per endpoint, mirrored onto the
// endpoint's URL segments.
package markdown

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	runerrors "github.com/PentesterFlow/hardocs/internal/errors"
	"github.com/PentesterFlow/hardocs/internal/extract"
	"github.com/PentesterFlow/hardocs/internal/logger"
)

// Renderer writes the documentation tree. It is a stateless projection of
// the sorted endpoint sequence; re-running it overwrites existing files.
type Renderer struct {
	Out string

	log *logger.Logger
}

// New creates a renderer targeting the given output directory.
func New(out string) *Renderer {
	return &Renderer{
		Out: strings.TrimSuffix(out, "/"),
		log: logger.Global().WithComponent("markdown"),
	}
}

// frontMatter is the YAML block at the top of every endpoint page, there
// for static site generators that want page metadata without parsing the
// Markdown body.
type frontMatter struct {
	Title   string `yaml:"title"`
	Method  string `yaml:"method"`
	URL     string `yaml:"url"`
	Ordinal int    `yaml:"ordinal"`
}

// Render writes the index and one page per endpoint. The endpoints must
// already be sorted by (method, url); each page is named after its global
// position in that order. The first write failure aborts the run.
func (r *Renderer) Render(base string, endpoints []extract.Endpoint) error {
	if err := os.MkdirAll(r.Out, 0o755); err != nil {
		return runerrors.NewFilesystemError(r.Out, "mkdir", err)
	}

	// The index is assembled in memory and flushed in one write, so an
	// aborted run never leaves a half-written index behind.
	var index strings.Builder
	fmt.Fprintf(&index, "## `%s`\n\n", base)

	for i, ep := range endpoints {
		fmt.Fprintf(&index, "- [`%s %s`](%s%s_%d.html)\n",
			ep.Method, ep.URL, strings.TrimPrefix(ep.URL, "/"), ep.Method, i)

		if err := r.renderPage(ep, i); err != nil {
			return err
		}
	}

	indexPath := filepath.Join(r.Out, "index.md")
	if err := os.WriteFile(indexPath, []byte(index.String()), 0o644); err != nil {
		return runerrors.NewFilesystemError(indexPath, "write", err)
	}

	r.log.Infof("wrote %d pages to %s", len(endpoints), r.Out)
	return nil
}

// renderPage writes the page for one endpoint into its mirrored directory.
func (r *Renderer) renderPage(ep extract.Endpoint, ordinal int) error {
	dir := filepath.Join(r.Out, filepath.FromSlash(ep.URL))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return runerrors.NewFilesystemError(dir, "mkdir", err)
	}

	var b strings.Builder

	meta, err := yaml.Marshal(frontMatter{
		Title:   fmt.Sprintf("%s %s", ep.Method, ep.URL),
		Method:  ep.Method,
		URL:     ep.URL,
		Ordinal: ordinal,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal front matter: %w", err)
	}
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")

	// One separator belongs to the page's own directory; the rest each
	// cost one parent traversal back to the index.
	depth := strings.Count(ep.URL, "/") - 1
	fmt.Fprintf(&b, "[Back to index](%sindex.html)\n\n", strings.Repeat("../", depth))
	fmt.Fprintf(&b, "## `%s %s`\n\n", ep.Method, ep.URL)

	writeRequest(&b, ep)
	if err := writeResponse(&b, ep); err != nil {
		return err
	}

	pagePath := filepath.Join(dir, fmt.Sprintf("%s_%d.md", ep.Method, ordinal))
	if err := os.WriteFile(pagePath, []byte(b.String()), 0o644); err != nil {
		return runerrors.NewFilesystemError(pagePath, "write", err)
	}
	return nil
}

func writeRequest(b *strings.Builder, ep extract.Endpoint) {
	b.WriteString("## Request\n\n")

	b.WriteString("<details>\n")
	b.WriteString("<summary>Headers</summary>\n\n")
	writeTable(b, ep.Request.Headers, "Header", "Value")
	b.WriteString("</details>\n")

	b.WriteString("### Parameters\n\n")
	if len(ep.Request.Params) > 0 {
		writeTable(b, ep.Request.Params, "Parameter", "Value")
	} else {
		writeNoneTable(b)
	}

	if ep.Method == "POST" {
		b.WriteString("### Body\n\n")
		if len(ep.Request.Body) > 0 {
			writeTable(b, ep.Request.Body, "Parameter", "Value")
		} else {
			writeNoneTable(b)
		}
	}
}

func writeResponse(b *strings.Builder, ep extract.Endpoint) error {
	b.WriteString("## Response\n\n")

	b.WriteString("<details>\n")
	b.WriteString("<summary>Headers</summary>\n\n")
	writeTable(b, ep.Response.Headers, "Header", "Value")
	b.WriteString("</details>\n")

	b.WriteString("### Content\n\n")
	content, err := json.MarshalIndent(ep.Response.Content, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to render response content for %s %s: %w", ep.Method, ep.URL, err)
	}
	b.WriteString("```\n")
	b.Write(content)
	b.WriteString("\n```\n")
	return nil
}
