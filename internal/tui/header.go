package tui

import (
	"fmt"
	"strings"
)

// headerHeight is the number of terminal lines the header occupies,
// including its trailing separator.
const headerHeight = 3

// renderHeader produces the title line and the counts line.
func renderHeader(title string, sections, total, shown, width int, st styles) string {
	var b strings.Builder

	b.WriteString(st.Title.Render(title))
	b.WriteString("\n")

	counts := fmt.Sprintf("%d sections", sections)
	if shown == total {
		counts += fmt.Sprintf("  %d keybinds", total)
	} else {
		counts += fmt.Sprintf("  %d/%d keybinds", shown, total)
	}
	b.WriteString(st.Footer.Render(counts))
	b.WriteString("\n")

	if width > 0 {
		b.WriteString(strings.Repeat("─", width))
	}
	return b.String()
}
