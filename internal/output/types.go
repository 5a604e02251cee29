// Package output provides machine-readable export of the extracted
// endpoint inventory.
package output

import (
	"fmt"
	"time"

	"github.com/PentesterFlow/hardocs/internal/extract"
)

// Inventory is the JSON companion to the rendered Markdown tree: the full
// deduplicated endpoint list in rendering order, plus run statistics.
type Inventory struct {
	Base        string           `json:"base"`
	GeneratedAt time.Time        `json:"generated_at"`
	Total       int              `json:"total"`
	ByMethod    map[string]int   `json:"by_method"`
	Stats       extract.Stats    `json:"stats"`
	Endpoints   []EndpointRecord `json:"endpoints"`
}

// EndpointRecord describes one endpoint's identity and where its page
// lives in the generated tree. Example values are left to the Markdown
// pages; the inventory carries shape only.
type EndpointRecord struct {
	Ordinal    int      `json:"ordinal"`
	Method     string   `json:"method"`
	URL        string   `json:"url"`
	Params     []string `json:"params"`
	BodyFields []string `json:"body_fields"`
	Page       string   `json:"page"`
}

// Summary is the run-level rollup printed by --summary: counts only, no
// per-endpoint records.
type Summary struct {
	Base     string         `json:"base" yaml:"base"`
	Total    int            `json:"total" yaml:"total"`
	ByMethod map[string]int `json:"by_method" yaml:"by_method"`
	Stats    extract.Stats  `json:"stats" yaml:"stats"`
}

// BuildInventory assembles an inventory from the globally sorted endpoint
// sequence. Ordinals match the page file names.
func BuildInventory(base string, endpoints []extract.Endpoint, stats extract.Stats) *Inventory {
	inv := &Inventory{
		Base:        base,
		GeneratedAt: time.Now().UTC(),
		Total:       len(endpoints),
		ByMethod:    make(map[string]int),
		Stats:       stats,
		Endpoints:   make([]EndpointRecord, 0, len(endpoints)),
	}

	for i, ep := range endpoints {
		inv.ByMethod[ep.Method]++
		inv.Endpoints = append(inv.Endpoints, EndpointRecord{
			Ordinal:    i,
			Method:     ep.Method,
			URL:        ep.URL,
			Params:     ep.ParamNames(),
			BodyFields: ep.BodyFields(),
			Page:       fmt.Sprintf("%s%s_%d.md", ep.URL, ep.Method, i),
		})
	}

	return inv
}

// BuildSummary assembles the run-level rollup.
func BuildSummary(base string, endpoints []extract.Endpoint, stats extract.Stats) *Summary {
	s := &Summary{
		Base:     base,
		Total:    len(endpoints),
		ByMethod: make(map[string]int),
		Stats:    stats,
	}
	for _, ep := range endpoints {
		s.ByMethod[ep.Method]++
	}
	return s
}
