package keymap

import (
	"regexp"
	"strings"
)

// quotedTokenRe finds the first double-quoted token on a binding line,
// e.g. the "M-x" in `, ("M-x", kill)`.
var quotedTokenRe = regexp.MustCompile(`"(.+?)"`)

// ExtractBinding pulls the key-combination literal out of a binding
// tuple line. The remainder of the line after the closing quote is
// returned as action text, stripped of tuple punctuation; it is a
// display fallback only and is never parsed further. ok is false when
// the line carries no quoted token, which tells the builder the line is
// not a real binding and any pending annotation must be dropped.
func ExtractBinding(line string) (keys, action string, ok bool) {
	loc := quotedTokenRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", "", false
	}
	keys = line[loc[2]:loc[3]]

	action = strings.TrimSpace(line[loc[1]:])
	action = strings.TrimPrefix(action, ",")
	action = strings.TrimSuffix(strings.TrimSpace(action), ")")
	action = strings.TrimSpace(action)
	return keys, action, true
}
