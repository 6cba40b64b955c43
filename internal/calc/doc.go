// Package calc evaluates reverse Polish notation expressions over quad-double
// values.
//
// An expression is a whitespace-separated sequence of tokens. Numbers push a
// value, named constants (pi, e, ln2, ...) push the constant, and operators
// pop their operands and push the result:
//
//	2 sqrt 3 *        3·√2
//	1 3 / 3 *         (1/3)·3
//	2 10 ^ 1 -        2¹⁰ - 1
//	27 3 root         ∛27
//
// Errors carry the byte offset of the offending token.
package calc
