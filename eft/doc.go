// Package eft implements the word-level error-free transformations that
// every multi-word expansion operation is built on.
//
// Each transform returns the native rounded result of an elementary
// operation together with its exact rounding error, both as words, so that
// result+err equals the mathematically exact value. The guarantees hold
// under IEEE round-to-nearest without operation contraction; every product
// below is wrapped in an explicit Word conversion so the Go compiler cannot
// fuse it with a following addition.
//
// The quick variants assume |a| >= |b|. The assumption is a caller contract
// and is not checked: violating it degrades accuracy silently.
package eft
