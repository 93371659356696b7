// Package keymap parses the annotation comments of an xmonad
// configuration file into a browsable keymap model.
//
// The grammar is line-oriented. Inside a region delimited by `-- #`
// boundary markers, `-- ## Name` opens a section, a plain `-- text`
// comment describes the binding tuple on the next code line,
// `-- "Keys" text` declares a keybind that has no backing code line,
// and `-- ! text` suppresses the next binding from the result.
package keymap

// Keymap is the parsed model for one configuration file. It is built in
// a single pass and never mutated afterwards; reparsing produces a
// fresh Keymap.
type Keymap struct {
	Title    string    `json:"title" yaml:"title"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Section is a named group of keybinds. Name is empty for the implicit
// section holding keybinds that appear before any `-- ##` header.
type Section struct {
	Name     string    `json:"name" yaml:"name"`
	Keybinds []Keybind `json:"keybinds" yaml:"keybinds"`
}

// Keybind is one entry of the keymap.
type Keybind struct {
	// Keys is the raw key-combination literal, e.g. "M-x".
	Keys string `json:"keys" yaml:"keys"`
	// Description is the annotation text. May be empty for bindings
	// that carry no description comment.
	Description string `json:"description" yaml:"description"`
	// Action is the tail of the binding tuple, kept only as a display
	// fallback when there is no description.
	Action string `json:"action,omitempty" yaml:"action,omitempty"`
	// Section is the owning section name, set on flattened entries so
	// search results can still be grouped.
	Section string `json:"-" yaml:"-"`
	// Fake marks an entry synthesized entirely from a `-- "Keys" text`
	// comment, with no backing binding line.
	Fake bool `json:"fake,omitempty" yaml:"fake,omitempty"`
	// Comment marks a plain region comment retained by
	// Options.KeepComments. Comment entries have no Keys and are
	// excluded from Flatten and the counts.
	Comment bool `json:"comment,omitempty" yaml:"comment,omitempty"`

	// ignored entries are filtered out after the build pass and never
	// appear in a finished Keymap.
	ignored bool
}

// Empty reports whether the parse produced no sections at all, which is
// what a file without annotation markers yields. It is a valid result,
// not an error.
func (k *Keymap) Empty() bool {
	return len(k.Sections) == 0
}

// SectionCount returns the number of sections.
func (k *Keymap) SectionCount() int {
	return len(k.Sections)
}

// KeybindCount returns the number of keybinds, excluding retained
// comments.
func (k *Keymap) KeybindCount() int {
	n := 0
	for _, s := range k.Sections {
		for _, kb := range s.Keybinds {
			if !kb.Comment {
				n++
			}
		}
	}
	return n
}

// Flatten returns the keybinds of every section in source order, with
// each entry's Section field set to its owning section name. Retained
// comments are skipped; the flattened list is what the search layer
// scans.
func (k *Keymap) Flatten() []Keybind {
	out := make([]Keybind, 0, k.KeybindCount())
	for _, s := range k.Sections {
		for _, kb := range s.Keybinds {
			if kb.Comment {
				continue
			}
			kb.Section = s.Name
			out = append(out, kb)
		}
	}
	return out
}
