// Package format provides pure formatting helpers shared by the CLI, the
// accuracy study report and the HTTP server: durations, ETAs, progress bars
// and digit grouping. It has no dependency on presentation state.
package format
