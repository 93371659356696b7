package tui

import (
	"fmt"
	"strings"

	"github.com/apeview/apeview/internal/fuzzy"
	"github.com/charmbracelet/lipgloss"
)

// highlight renders s with the runes at the given positions in the
// match style and everything else in the base style. Positions are
// rune indices as produced by the matcher.
func highlight(s string, positions []int, base, match lipgloss.Style) string {
	if len(positions) == 0 {
		return base.Render(s)
	}
	marked := make(map[int]bool, len(positions))
	for _, p := range positions {
		marked[p] = true
	}

	var b strings.Builder
	for i, r := range []rune(s) {
		if marked[i] {
			b.WriteString(match.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// keysColumnWidth returns the width of the widest key combination in
// the result list, used to align the description column.
func keysColumnWidth(results []fuzzy.Result) int {
	width := 0
	for _, r := range results {
		if n := len([]rune(r.Keys)); n > width {
			width = n
		}
	}
	return width
}

// renderList renders the result list into display lines and returns
// them along with the line index of the cursor. When grouped, section
// headers are interleaved (results arrive in source order); when
// filtering, the ranked flat list carries a per-entry section tag.
func renderList(results []fuzzy.Result, grouped bool, cursor int, st styles) (lines []string, cursorLine int) {
	cursorLine = 0
	keysWidth := keysColumnWidth(results)
	lastSection := ""
	first := true

	for i, r := range results {
		if grouped && (first || r.Section != lastSection) {
			if !first {
				lines = append(lines, "")
			}
			name := r.Section
			if name == "" {
				name = "(general)"
			}
			lines = append(lines, st.Section.Render(name))
			lastSection = r.Section
			first = false
		}

		line := renderEntry(r, keysWidth, i == cursor, !grouped, st)
		if i == cursor {
			cursorLine = len(lines)
		}
		lines = append(lines, line)
	}
	return lines, cursorLine
}

func renderEntry(r fuzzy.Result, keysWidth int, selected, tagged bool, st styles) string {
	marker := "  "
	if selected {
		marker = st.Selected.Render("> ")
	}

	keys := highlight(r.Keys, r.KeyPositions, st.Keys, st.Match)
	pad := strings.Repeat(" ", keysWidth-len([]rune(r.Keys))+2)

	desc := r.Description
	positions := r.DescPositions
	if desc == "" {
		desc = r.Action
		positions = nil
	}
	rendered := highlight(desc, positions, st.Desc, st.Match)

	line := marker + keys + pad + rendered
	if r.Fake {
		line += st.Footer.Render("  (virtual)")
	}
	if tagged && r.Section != "" {
		line += st.Footer.Render(fmt.Sprintf("  [%s]", r.Section))
	}
	return line
}
