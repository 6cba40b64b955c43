// Package ui provides theme and color support for the application's user interface.
// It defines color schemes, ANSI escape code accessors for inline coloring and
// lipgloss styles for rendered report blocks, so that the REPL, the accuracy
// report and the self-test summary share one look.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between business logic and presentation.
package ui
