package har

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	runerrors "github.com/PentesterFlow/hardocs/internal/errors"
)

// Load reads and decodes a HAR document from path.
func Load(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, runerrors.NewInputError(path, "open", err)
	}
	defer f.Close()

	archive, err := Decode(f)
	if err != nil {
		return nil, runerrors.NewInputError(path, "decode", err)
	}
	return archive, nil
}

// Decode decodes a HAR document from r and validates its top-level
// structure. A document without a log object or without an entries array
// is malformed.
func Decode(r io.Reader) (*Archive, error) {
	var archive Archive

	dec := json.NewDecoder(r)
	if err := dec.Decode(&archive); err != nil {
		return nil, fmt.Errorf("failed to parse HAR document: %w", err)
	}

	if archive.Log == nil {
		return nil, fmt.Errorf("HAR document does not contain a log")
	}
	if archive.Log.Entries == nil {
		return nil, fmt.Errorf("HAR log does not contain an entries array")
	}

	return &archive, nil
}
