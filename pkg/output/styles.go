package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")
	colorRed    = lipgloss.Color("#D14D41")
	colorMuted  = lipgloss.Color("#6F6E69")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	incomeStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	expenseStyle = lipgloss.NewStyle().Foreground(colorRed)
	underStyle   = lipgloss.NewStyle().Foreground(colorOrange)
	overStyle    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

// table is a plain column-aligned text table.
type table struct {
	title   string
	headers []string
	rows    [][]string
	// rightAlign marks numeric columns.
	rightAlign map[int]bool
}

func (t table) render() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	if t.title != "" {
		b.WriteString(titleStyle.Render(t.title))
		b.WriteString("\n")
	}

	b.WriteString(headerStyle.Render(t.line(t.headers, widths)))
	b.WriteString("\n")
	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = strings.Repeat("─", w)
	}
	b.WriteString(mutedStyle.Render(t.line(rules, widths)))
	b.WriteString("\n")

	if len(t.rows) == 0 {
		b.WriteString(mutedStyle.Render("(none)"))
		b.WriteString("\n")
	}
	for _, row := range t.rows {
		b.WriteString(t.line(row, widths))
		b.WriteString("\n")
	}
	return b.String()
}

func (t table) line(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := strings.Repeat(" ", w-lipgloss.Width(cell))
		if t.rightAlign[i] {
			parts[i] = pad + cell
		} else {
			parts[i] = cell + pad
		}
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
