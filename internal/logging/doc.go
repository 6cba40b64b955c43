// Package logging provides the structured logger of qdcalc: a small Logger
// interface with typed fields, backed by zerolog JSON output.
package logging
