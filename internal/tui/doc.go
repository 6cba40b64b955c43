// Package tui implements the interactive accuracy dashboard: live
// per-variant progress of the study, host load and trial throughput
// sparklines, and the error table once the study completes. It is built on
// bubbletea, with bubbles components for the progress bars, spinner, key
// bindings and help line.
package tui
