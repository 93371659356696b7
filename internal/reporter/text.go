// Package reporter renders a parsed keymap for non-interactive use:
// plain text for reading, JSON and YAML for scripting.
package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/apeview/apeview/internal/keymap"
)

// DefaultTitle is shown when the begin marker carried no title.
const DefaultTitle = "Key bindings"

// TextReporter generates a human-readable keymap listing.
type TextReporter struct {
	writer io.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(writer io.Writer) *TextReporter {
	return &TextReporter{
		writer: writer,
	}
}

// Generate writes the keymap as an aligned text listing.
func (r *TextReporter) Generate(km *keymap.Keymap) error {
	title := km.Title
	if title == "" {
		title = DefaultTitle
	}
	r.printf("%s\n%s\n", title, strings.Repeat("=", len(title)))

	if km.Empty() {
		r.printf("\nNo annotated keybindings found.\n")
		return nil
	}

	keysWidth := r.keysWidth(km)
	for _, section := range km.Sections {
		r.printSection(section, keysWidth)
	}

	r.printf("\n%d sections, %d keybinds\n", km.SectionCount(), km.KeybindCount())
	return nil
}

func (r *TextReporter) printSection(section keymap.Section, keysWidth int) {
	name := section.Name
	if name == "" {
		name = "(general)"
	}
	r.printf("\n%s\n%s\n", name, strings.Repeat("-", len(name)))

	if len(section.Keybinds) == 0 {
		r.printf("  (no bindings)\n")
		return
	}

	for _, kb := range section.Keybinds {
		if kb.Comment {
			r.printf("  %s\n", kb.Description)
			continue
		}
		desc := kb.Description
		if desc == "" {
			desc = kb.Action
		}
		r.printf("  %-*s  %s\n", keysWidth, kb.Keys, desc)
	}
}

// keysWidth returns the width of the widest key combination, used to
// align the description column.
func (r *TextReporter) keysWidth(km *keymap.Keymap) int {
	width := 0
	for _, section := range km.Sections {
		for _, kb := range section.Keybinds {
			if len(kb.Keys) > width {
				width = len(kb.Keys)
			}
		}
	}
	return width
}

func (r *TextReporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.writer, format, args...)
}
