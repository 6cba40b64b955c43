// Package qd implements quad-word floating-point expansion arithmetic.
//
// A Real is the unevaluated sum of four native words. With float64 words it
// carries about 212 significand bits (62 decimal digits); built with the
// qd_float32 tag the words are float32 and a Real carries about 96 bits.
//
// Every operation keeps the rounding error of each intermediate step as an
// additional component and finishes by renormalizing, so results are always
// in canonical form: |c0| >= |c1| >= |c2| >= |c3|, consecutive components
// do not overlap, and c0 is the best single-word approximation of the value.
// Comparisons are lexicographic on the components and rely on that form.
//
// The addition, multiplication and division used by Add, Mul and Div are
// chosen at build time:
//
//	default        sloppy add, accurate mul, accurate div
//	qd_ieee_add    Add uses IEEEAdd
//	qd_sloppy_mul  Mul uses SloppyMul
//	qd_sloppy_div  Div uses SloppyDiv
//
// All variants stay callable explicitly. Strategy reports the build.
//
// Values are plain arrays. The arithmetic never allocates, never blocks and
// holds no mutable shared state, so it is safe on any number of goroutines.
package qd
