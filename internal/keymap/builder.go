package keymap

import "strings"

// Options controls optional builder behavior.
type Options struct {
	// KeepComments retains plain region comments that never attached to
	// a binding line as description-only entries (Comment=true). They
	// appear in reports but not in search.
	KeepComments bool
}

// Parse builds a Keymap from the raw contents of an annotated
// configuration file. Malformed input never fails: dangling annotations
// are dropped, stray markers are no-ops, and a file without any begin
// marker yields an empty Keymap.
func Parse(src string) *Keymap {
	return ParseWith(src, Options{})
}

// ParseWith is Parse with explicit Options.
func ParseWith(src string, opts Options) *Keymap {
	b := builder{opts: opts, km: &Keymap{}, cur: -1}
	for _, line := range strings.Split(src, "\n") {
		b.feed(Classify(line))
	}
	return b.finish()
}

type state int

const (
	stateOutside state = iota
	stateInsideNoSection
	stateInsideSection
)

// builder assembles the Keymap from the classified line stream.
// Description and ignore annotations are buffered as explicit pending
// fields so that cancellation by a non-matching next line is an
// ordinary transition.
type builder struct {
	opts Options

	km  *Keymap
	st  state
	cur int // index of the open section, -1 before any keybind landed

	closed bool // end marker seen, everything after is out of scope

	pendingDesc    string
	hasPendingDesc bool
	pendingIgnore  bool
}

func (b *builder) feed(ev LineEvent) {
	if b.closed {
		return
	}

	if b.st == stateOutside {
		// Everything before the first boundary is out of scope.
		if ev.Kind == EventBoundary {
			b.km.Title = ev.Text
			b.st = stateInsideNoSection
		}
		return
	}

	switch ev.Kind {
	case EventBoundary:
		if ev.Text == "" {
			// Bare `-- #` closes the region.
			b.dropPending()
			b.closed = true
		}
		// A titled boundary inside an open region is a stray second
		// begin marker; the first region wins and the marker is a no-op.

	case EventSection:
		b.dropPending()
		b.km.Sections = append(b.km.Sections, Section{Name: ev.Text})
		b.cur = len(b.km.Sections) - 1
		b.st = stateInsideSection

	case EventIgnore:
		b.dropPending()
		b.pendingIgnore = true

	case EventFake:
		// Inline keybinds are complete in themselves; they attach
		// immediately and need no backing code line.
		b.dropPending()
		b.append(Keybind{Keys: ev.Keys, Description: ev.Text, Fake: true})

	case EventDescription:
		// Two consecutive descriptions: the later one wins, the earlier
		// one degrades to an ordinary comment.
		b.dropPending()
		b.pendingDesc = ev.Text
		b.hasPendingDesc = true

	case EventCode:
		keys, action, ok := ExtractBinding(ev.Text)
		if !ok {
			// Not a binding line. Whatever was pending was aimed at
			// nothing and is discarded.
			b.dropPending()
			return
		}
		b.append(Keybind{
			Keys:        keys,
			Description: b.pendingDesc,
			Action:      action,
			ignored:     b.pendingIgnore,
		})
		b.resetPending()

	case EventBlank, EventOther:
		// Filler between an annotation and its target line; pending
		// state survives.
	}
}

// append adds a keybind to the open section, lazily creating the
// implicit unnamed section for keybinds that appear before any header.
func (b *builder) append(kb Keybind) {
	if b.cur < 0 {
		b.km.Sections = append(b.km.Sections, Section{})
		b.cur = len(b.km.Sections) - 1
	}
	b.km.Sections[b.cur].Keybinds = append(b.km.Sections[b.cur].Keybinds, kb)
}

// dropPending discards buffered annotation state that failed to attach,
// optionally keeping the description as a plain comment entry.
func (b *builder) dropPending() {
	if b.hasPendingDesc && b.opts.KeepComments {
		b.append(Keybind{Description: b.pendingDesc, Comment: true})
	}
	b.resetPending()
}

func (b *builder) resetPending() {
	b.pendingDesc = ""
	b.hasPendingDesc = false
	b.pendingIgnore = false
}

// finish applies the post-pass filter: ignored keybinds are removed,
// and the implicit unnamed section is dropped when nothing survived in
// it. Explicitly declared sections are kept even when empty; a header
// without bindings still means something to a viewer.
func (b *builder) finish() *Keymap {
	sections := make([]Section, 0, len(b.km.Sections))
	for _, s := range b.km.Sections {
		kept := make([]Keybind, 0, len(s.Keybinds))
		for _, kb := range s.Keybinds {
			if kb.ignored {
				continue
			}
			kept = append(kept, kb)
		}
		s.Keybinds = kept
		if s.Name == "" && len(kept) == 0 {
			continue
		}
		sections = append(sections, s)
	}
	b.km.Sections = sections
	return b.km
}
