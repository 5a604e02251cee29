package extract

import (
	"encoding/json"
	"strings"

	runerrors "github.com/PentesterFlow/hardocs/internal/errors"
	"github.com/PentesterFlow/hardocs/internal/har"
	"github.com/PentesterFlow/hardocs/internal/logger"
)

// Stats counts what happened to the capture's entries during extraction.
type Stats struct {
	Entries        int `json:"entries" yaml:"entries"`
	SkippedOptions int `json:"skipped_options" yaml:"skipped_options"`
	SkippedScope   int `json:"skipped_scope" yaml:"skipped_scope"`
	Duplicates     int `json:"duplicates" yaml:"duplicates"`
	Unique         int `json:"unique" yaml:"unique"`
}

// Extractor filters HAR entries against a base URL and normalizes the
// survivors into endpoint records.
type Extractor struct {
	Base string

	log *logger.Logger
}

// New creates an extractor for the given base URL.
func New(base string) *Extractor {
	return &Extractor{
		Base: base,
		log:  logger.Global().WithComponent("extract"),
	}
}

// Extract runs the single-pass transform over the archive. Entries using
// the OPTIONS method or addressed outside the base URL are skipped;
// everything else is normalized and inserted into the deduplicating set. A
// present-but-malformed JSON payload fails the whole run.
func (x *Extractor) Extract(archive *har.Archive) (*Set, Stats, error) {
	var stats Stats
	set := NewSet(len(archive.Log.Entries))

	for _, entry := range archive.Log.Entries {
		stats.Entries++
		req := entry.Request

		if req.Method == "OPTIONS" {
			stats.SkippedOptions++
			continue
		}
		if !strings.HasPrefix(req.URL, x.Base) {
			stats.SkippedScope++
			x.log.Debugf("out of scope: %s %s", req.Method, req.URL)
			continue
		}

		body, err := decodePayload(postText(req.PostData))
		if err != nil {
			return nil, stats, runerrors.NewParseError(req.URL, "body", err)
		}
		content, err := decodePayload(contentText(entry.Response.Content))
		if err != nil {
			return nil, stats, runerrors.NewParseError(req.URL, "content", err)
		}

		ep := Endpoint{
			Method: req.Method,
			URL:    NormalizeURL(req.URL, x.Base),
			Request: Request{
				Headers: headerMap(req.Headers),
				Params:  parseParams(req.URL),
				Body:    body,
			},
			Response: Response{
				Headers: headerMap(entry.Response.Headers),
				Content: content,
			},
		}

		if set.Add(ep) {
			x.log.Debugf("endpoint: %s %s", ep.Method, ep.URL)
		} else {
			stats.Duplicates++
		}
	}

	stats.Unique = set.Len()
	x.log.Infof("extracted %d unique endpoints from %d entries", stats.Unique, stats.Entries)
	return set, stats, nil
}

// NormalizeURL strips the base prefix, drops the query string and ensures
// exactly one trailing slash. Applying it to an already normalized path is
// a no-op.
func NormalizeURL(rawURL, base string) string {
	url := strings.TrimPrefix(rawURL, base)
	if idx := strings.Index(url, "?"); idx != -1 {
		url = url[:idx]
	}
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	return url
}

// headerMap flattens a HAR header array into a name→value map. A name that
// repeats keeps its last value.
func headerMap(headers []har.Header) map[string]string {
	m := make(map[string]string, len(headers))
	for _, h := range headers {
		m[h.Name] = h.Value
	}
	return m
}

// parseParams splits the query string of the captured URL on & and =. The
// split is deliberately naive: a token with no = (or with more than one)
// yields the text before the first = as the name and an empty value, and a repeated
// name overwrites. Values never feed endpoint identity, so a blanked value
// is harmless while a truncated one would be misleading as an example.
func parseParams(rawURL string) map[string]string {
	idx := strings.Index(rawURL, "?")
	if idx == -1 {
		return map[string]string{}
	}

	params := make(map[string]string)
	for _, pv := range strings.Split(rawURL[idx+1:], "&") {
		parts := strings.Split(pv, "=")
		if len(parts) == 2 {
			params[parts[0]] = parts[1]
		} else {
			params[parts[0]] = ""
		}
	}
	return params
}

// postText returns the request payload text, or nil when the capture has
// no postData or no text field.
func postText(pd *har.PostData) *string {
	if pd == nil {
		return nil
	}
	return pd.Text
}

// contentText returns the response payload text, or nil when absent.
func contentText(c *har.Content) *string {
	if c == nil {
		return nil
	}
	return c.Text
}

// decodePayload decodes a JSON object payload. An absent field yields an
// empty map; a field that is present but does not hold a JSON object is an
// error. The asymmetry is intentional: silence means "nothing captured",
// garbage means the capture cannot be trusted.
func decodePayload(text *string) (map[string]any, error) {
	if text == nil {
		return map[string]any{}, nil
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(*text), &m); err != nil {
		return nil, err
	}
	if m == nil {
		// JSON null decodes to a nil map; keep the empty-map shape.
		m = map[string]any{}
	}
	return m, nil
}
