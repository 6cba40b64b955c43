// Package accuracy measures the error of the quad-double arithmetic variants
// against a math/big reference.
//
// A study draws random canonical operand pairs with a wide exponent spread,
// evaluates every variant (sloppy and IEEE-style addition, sloppy and
// accurate multiplication and division) on them, and reports the mean and
// maximum relative error in units of qd.Eps together with the number of
// results that left canonical form. Trials run on a bounded worker pool
// coordinated by an errgroup; progress is streamed to a ProgressReporter
// and the study stops early when its context is canceled.
package accuracy
