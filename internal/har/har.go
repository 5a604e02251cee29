// Package har reads HTTP Archive (HAR) documents.
//
// Only the sub-trees the documentation generator consumes are modeled:
// log.entries[].request and .response, restricted to method, url, headers,
// postData.text and content.text. Everything else in the capture is ignored
// by the decoder.
package har

// Archive is the root of a HAR document.
type Archive struct {
	Log *Log `json:"log"`
}

// Log holds the captured entries.
type Log struct {
	Version string  `json:"version"`
	Entries []Entry `json:"entries"`
}

// Entry is one captured request/response pair.
type Entry struct {
	Request  Request  `json:"request"`
	Response Response `json:"response"`
}

// Request is the request half of an entry.
type Request struct {
	Method   string    `json:"method"`
	URL      string    `json:"url"`
	Headers  []Header  `json:"headers"`
	PostData *PostData `json:"postData"`
}

// Response is the response half of an entry.
type Response struct {
	Status  int      `json:"status"`
	Headers []Header `json:"headers"`
	Content *Content `json:"content"`
}

// Header is a single name/value pair from a header array.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PostData carries the request payload. Text is a pointer so an absent
// field can be told apart from a present-but-empty one.
type PostData struct {
	MimeType string  `json:"mimeType"`
	Text     *string `json:"text"`
}

// Content carries the response payload.
type Content struct {
	MimeType string  `json:"mimeType"`
	Text     *string `json:"text"`
}
