package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderHeading renders a bold section heading.
func RenderHeading(s string) string {
	return headingStyle.Render(s)
}

// RenderWordColumns lays words out in even columns sized to the longest
// entry, wrapped to the given terminal width.
func RenderWordColumns(words []string, width int) string {
	if len(words) == 0 {
		return ""
	}

	colWidth := 0
	for _, w := range words {
		colWidth = max(colWidth, lipgloss.Width(w))
	}
	colWidth += 2
	cols := max(1, width/colWidth)

	cell := lipgloss.NewStyle().Width(colWidth)
	var b strings.Builder
	for i, w := range words {
		b.WriteString(cell.Render(w))
		if (i+1)%cols == 0 && i != len(words)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderPhraseList renders multi-word phrases one per line.
func RenderPhraseList(phrases []string) string {
	var b strings.Builder
	for i, p := range phrases {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(dimStyle.Render("  - "))
		b.WriteString(p)
	}
	return b.String()
}
