package reporter

import (
	"io"

	"github.com/apeview/apeview/internal/keymap"
	"gopkg.in/yaml.v3"
)

// YAMLReporter generates a YAML keymap, convenient for diffing against
// a checked-in snapshot.
type YAMLReporter struct {
	writer io.Writer
}

// NewYAMLReporter creates a new YAML reporter.
func NewYAMLReporter(writer io.Writer) *YAMLReporter {
	return &YAMLReporter{
		writer: writer,
	}
}

// Generate writes the keymap as YAML.
func (r *YAMLReporter) Generate(km *keymap.Keymap) error {
	enc := yaml.NewEncoder(r.writer)
	enc.SetIndent(2)
	if err := enc.Encode(km); err != nil {
		return err
	}
	return enc.Close()
}
