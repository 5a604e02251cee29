// Package extract turns HAR entries into deduplicated endpoint records.
package extract

import (
	"sort"
	"strings"
)

// Endpoint is one documented API operation: a method and normalized path
// plus the first captured example of its request and response. Records are
// built once and never mutated.
type Endpoint struct {
	Method   string
	URL      string
	Request  Request
	Response Response
}

// Request holds the request side of a captured example.
type Request struct {
	Headers map[string]string
	Params  map[string]string
	Body    map[string]any
}

// Response holds the response side of a captured example.
type Response struct {
	Headers map[string]string
	Content map[string]any
}

// Key returns the structural identity of the endpoint: method, normalized
// path, and the sets of parameter and body field names. Header values,
// parameter values and payload contents never participate. Two endpoints
// with the same key are the same logical operation regardless of the
// example data they carry.
func (e Endpoint) Key() string {
	var b strings.Builder
	b.WriteString(e.Method)
	b.WriteByte(' ')
	b.WriteString(e.URL)
	b.WriteString(" ?")
	b.WriteString(strings.Join(sortedNames(e.Request.Params), "&"))
	b.WriteString(" #")
	b.WriteString(strings.Join(sortedKeys(e.Request.Body), "&"))
	return b.String()
}

func sortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(m map[string]any) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParamNames returns the endpoint's parameter names in sorted order.
func (e Endpoint) ParamNames() []string {
	return sortedNames(e.Request.Params)
}

// BodyFields returns the endpoint's body field names in sorted order.
func (e Endpoint) BodyFields() []string {
	return sortedKeys(e.Request.Body)
}

// Less orders endpoints lexicographically by (method, url). Endpoints that
// compare equal here may still be distinct records when their parameter or
// body shapes differ; their relative order is settled by insertion order.
func (e Endpoint) Less(other Endpoint) bool {
	if e.Method != other.Method {
		return e.Method < other.Method
	}
	return e.URL < other.URL
}
