package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles used by rendered report blocks.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Good   lipgloss.Style
	Bad    lipgloss.Style
	Dim    lipgloss.Style
	Box    lipgloss.Style
}

// NewStyles builds the report styles for a palette.
func NewStyles(p Palette) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Header: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.Text),
		Label:  lipgloss.NewStyle().Foreground(p.Dim),
		Value:  lipgloss.NewStyle().Foreground(p.Info),
		Good:   lipgloss.NewStyle().Foreground(p.Success),
		Bad:    lipgloss.NewStyle().Bold(true).Foreground(p.Error),
		Dim:    lipgloss.NewStyle().Foreground(p.Dim),
		Box:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
	}
}

// CurrentStyles returns the styles of the active theme.
func CurrentStyles() Styles { return NewStyles(CurrentPalette()) }

// Table renders rows under headers as left-aligned columns separated by
// three spaces. Cells may already carry styling; widths are measured with
// lipgloss.Width so escape codes do not skew alignment. Short rows are
// padded with empty cells.
func Table(st Styles, headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style *lipgloss.Style) {
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if style != nil {
				cell = style.Render(cell)
			}
			b.WriteString(cell)
			if i < len(widths)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+3))
			}
		}
		b.WriteByte('\n')
	}
	writeRow(headers, &st.Header)
	for _, row := range rows {
		writeRow(row, nil)
	}
	return b.String()
}
