package keymap

import (
	"regexp"
	"strings"
)

// commentPrefix is the Haskell line-comment sequence that introduces
// every annotation.
const commentPrefix = "--"

// EventKind classifies a single source line.
type EventKind int

const (
	// EventBlank is a whitespace-only line.
	EventBlank EventKind = iota
	// EventBoundary is a `-- #` marker. The lexer is stateless, so it
	// cannot tell a begin from an end; the builder treats the first
	// boundary as Begin and a later bare one as End.
	EventBoundary
	// EventSection is a `-- ##` section header.
	EventSection
	// EventIgnore is a `-- !` marker suppressing the next binding line.
	EventIgnore
	// EventFake is a `-- "Keys" text` inline keybind comment.
	EventFake
	// EventDescription is a plain annotation comment, a candidate
	// description for the next binding line.
	EventDescription
	// EventCode is a non-comment, non-blank line.
	EventCode
	// EventOther is a comment that takes no part in the grammar, such
	// as an empty `--` or a `-->` arrow comment.
	EventOther
)

// LineEvent is the classified form of one source line. It exists only
// during the parse pass.
type LineEvent struct {
	Kind EventKind
	// Text holds the boundary title, section name, description text or
	// raw code line, depending on Kind.
	Text string
	// Keys holds the quoted key combination of an EventFake.
	Keys string
}

// fakeKeybindRe splits `"Keys" description` comment bodies. Both parts
// must be non-empty for the comment to count as an inline keybind.
var fakeKeybindRe = regexp.MustCompile(`^"(.+?)"(.+)$`)

// Classify maps one source line to its line event. It is pure and total:
// no input fails, unrecognized content degrades to Code, Other or Blank.
// Sigils are tried in fixed priority order (`##` before `#`, then `!`,
// then `"`) so a section header is never read as a boundary.
func Classify(line string) LineEvent {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return LineEvent{Kind: EventBlank}
	}
	if !strings.HasPrefix(trimmed, commentPrefix) {
		return LineEvent{Kind: EventCode, Text: line}
	}

	body := trimmed[len(commentPrefix):]
	if strings.HasPrefix(body, ">") {
		// `-->` is an ordinary Haskell doc comment, not an annotation.
		return LineEvent{Kind: EventOther, Text: trimmed}
	}
	body = strings.TrimSpace(body)

	switch {
	case strings.HasPrefix(body, "##"):
		return LineEvent{Kind: EventSection, Text: strings.TrimSpace(body[2:])}
	case strings.HasPrefix(body, "#"):
		return LineEvent{Kind: EventBoundary, Text: strings.TrimSpace(body[1:])}
	case strings.HasPrefix(body, "!"):
		return LineEvent{Kind: EventIgnore, Text: strings.TrimSpace(body[1:])}
	case strings.HasPrefix(body, `"`):
		if m := fakeKeybindRe.FindStringSubmatch(body); m != nil {
			keys := strings.TrimSpace(m[1])
			text := strings.TrimSpace(m[2])
			if keys != "" && text != "" {
				return LineEvent{Kind: EventFake, Keys: keys, Text: text}
			}
		}
		// A lone quoted fragment is just a comment.
		return LineEvent{Kind: EventDescription, Text: body}
	case body == "":
		return LineEvent{Kind: EventOther}
	default:
		return LineEvent{Kind: EventDescription, Text: body}
	}
}
