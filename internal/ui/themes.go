package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the lipgloss colors of rendered report blocks such as the
// accuracy table and the self-test summary.
type Palette struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
}

// Theme pairs the ANSI codes used inline by the REPL and the CLI with the
// palette of rendered blocks.
type Theme struct {
	Name string

	Error   string // failures and usage errors
	Success string // results and the prompt
	Warning string // commands and timings
	Detail  string // configuration values
	Info    string // study parameters
	Bold    string
	Reset   string

	Palette Palette
}

var (
	// ColorTheme is the default theme, tuned for dark terminals.
	ColorTheme = Theme{
		Name:    "color",
		Error:   "\033[38;5;196m",
		Success: "\033[38;5;82m",
		Warning: "\033[38;5;214m",
		Detail:  "\033[38;5;245m",
		Info:    "\033[38;5;69m",
		Bold:    "\033[1m",
		Reset:   "\033[0m",
		Palette: Palette{
			Text:    lipgloss.Color("#E0E0E0"),
			Border:  lipgloss.Color("#FF6600"),
			Accent:  lipgloss.Color("#FF8C00"),
			Success: lipgloss.Color("#9ece6a"),
			Warning: lipgloss.Color("#FFB347"),
			Error:   lipgloss.Color("#FF4444"),
			Dim:     lipgloss.Color("#666666"),
			Info:    lipgloss.Color("#4488FF"),
		},
	}

	// NoColorTheme leaves every code empty and renders blocks in the
	// terminal's default colors.
	NoColorTheme = Theme{
		Name: "none",
		Palette: Palette{
			Text:    lipgloss.NoColor{},
			Border:  lipgloss.NoColor{},
			Accent:  lipgloss.NoColor{},
			Success: lipgloss.NoColor{},
			Warning: lipgloss.NoColor{},
			Error:   lipgloss.NoColor{},
			Dim:     lipgloss.NoColor{},
			Info:    lipgloss.NoColor{},
		},
	}

	themeMu      sync.RWMutex
	currentTheme = ColorTheme
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = t
}

// CurrentPalette returns the palette of the active theme.
func CurrentPalette() Palette { return GetCurrentTheme().Palette }

// InitTheme selects NoColorTheme when noColor is set or NO_COLOR is present
// in the environment (https://no-color.org/), and ColorTheme otherwise.
func InitTheme(noColor bool) {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		noColor = true
	}
	if noColor {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(ColorTheme)
}
