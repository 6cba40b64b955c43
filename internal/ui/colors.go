package ui

// The Color* accessors return codes of the active theme for inline use in
// fmt format strings. They return "" when colors are disabled.

// ColorReset clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed marks errors.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen marks results.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow marks commands and timings.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorMagenta marks study parameters.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorCyan marks configuration values.
func ColorCyan() string { return GetCurrentTheme().Detail }

// ColorBold is the bold code.
func ColorBold() string { return GetCurrentTheme().Bold }
