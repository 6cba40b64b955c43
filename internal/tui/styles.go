package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/qdcalc/internal/ui"
)

// Style variables for the dashboard, built from the ui palette by
// initTUIStyles.
var (
	panelStyle         lipgloss.Style
	headerStyle        lipgloss.Style
	titleStyle         lipgloss.Style
	versionStyle       lipgloss.Style
	elapsedStyle       lipgloss.Style
	variantStyle       lipgloss.Style
	metricLabelStyle   lipgloss.Style
	metricValueStyle   lipgloss.Style
	statusRunningStyle lipgloss.Style
	statusPausedStyle  lipgloss.Style
	statusDoneStyle    lipgloss.Style
	statusErrorStyle   lipgloss.Style
	cpuSparklineStyle  lipgloss.Style
	memSparklineStyle  lipgloss.Style
	rateSparklineStyle lipgloss.Style

	// barColors are the full and empty colors of the variant progress bars.
	barFull, barEmpty string
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui palette.
// Called at package init and again from Run after InitTheme has been invoked.
func initTUIStyles() {
	p := ui.CurrentPalette()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Foreground(p.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	versionStyle = lipgloss.NewStyle().Foreground(p.Dim)
	elapsedStyle = lipgloss.NewStyle().Foreground(p.Accent)
	variantStyle = lipgloss.NewStyle().Foreground(p.Info)
	metricLabelStyle = lipgloss.NewStyle().Foreground(p.Dim)
	metricValueStyle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)

	statusRunningStyle = lipgloss.NewStyle().Foreground(p.Success).Bold(true)
	statusPausedStyle = lipgloss.NewStyle().Foreground(p.Warning).Bold(true)
	statusDoneStyle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	statusErrorStyle = lipgloss.NewStyle().Foreground(p.Error).Bold(true)

	cpuSparklineStyle = lipgloss.NewStyle().Foreground(p.Accent)
	memSparklineStyle = lipgloss.NewStyle().Foreground(p.Warning)
	rateSparklineStyle = lipgloss.NewStyle().Foreground(p.Success)

	barFull, barEmpty = colorString(p.Accent), colorString(p.Dim)
}

// colorString returns the hex form of a palette color, or "" for
// lipgloss.NoColor.
func colorString(c lipgloss.TerminalColor) string {
	if col, ok := c.(lipgloss.Color); ok {
		return string(col)
	}
	return ""
}
