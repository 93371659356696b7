package reporter

import (
	"encoding/json"
	"io"

	"github.com/apeview/apeview/internal/keymap"
)

// JSONReporter generates a machine-readable JSON keymap.
type JSONReporter struct {
	writer io.Writer
	pretty bool
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(writer io.Writer, pretty bool) *JSONReporter {
	return &JSONReporter{
		writer: writer,
		pretty: pretty,
	}
}

// Generate writes the keymap as JSON.
func (r *JSONReporter) Generate(km *keymap.Keymap) error {
	var data []byte
	var err error

	if r.pretty {
		data, err = json.MarshalIndent(km, "", "  ")
	} else {
		data, err = json.Marshal(km)
	}
	if err != nil {
		return err
	}

	if _, err := r.writer.Write(data); err != nil {
		return err
	}

	// Trailing newline for terminal output
	_, err = r.writer.Write([]byte("\n"))
	return err
}
