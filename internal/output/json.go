package output

import (
	"encoding/json"
	"io"
)

// Writer defines the interface for inventory writers.
type Writer interface {
	// WriteInventory writes the complete endpoint inventory
	WriteInventory(inv *Inventory) error

	// Close closes the writer
	Close() error
}

// JSONWriter writes the inventory in JSON format.
type JSONWriter struct {
	writer io.Writer
	pretty bool
	closed bool
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, pretty bool) *JSONWriter {
	return &JSONWriter{
		writer: w,
		pretty: pretty,
	}
}

// WriteInventory writes the complete inventory.
func (j *JSONWriter) WriteInventory(inv *Inventory) error {
	if j.closed {
		return nil
	}

	var data []byte
	var err error

	if j.pretty {
		data, err = json.MarshalIndent(inv, "", "  ")
	} else {
		data, err = json.Marshal(inv)
	}
	if err != nil {
		return err
	}

	if _, err := j.writer.Write(data); err != nil {
		return err
	}
	_, err = j.writer.Write([]byte("\n"))
	return err
}

// Close closes the writer.
func (j *JSONWriter) Close() error {
	j.closed = true

	if closer, ok := j.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
