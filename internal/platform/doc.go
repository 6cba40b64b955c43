// Package platform fixes the build-time configuration of the expansion
// arithmetic: the width of a component word, whether a fused
// multiply-subtract is used for exact products, and whether the code is
// built for the restricted GPU kernel profile.
//
// Every axis is selected with a build tag and resolved at compile time:
//
//	qd_float32  component words are float32 (quad-float) instead of float64
//	qd_nofms    exact products use split-based emulation instead of FMA
//	qd_gpu      GPU kernel profile; requires the fused multiply-subtract
//
// The algorithms in the eft and qd packages are written once against Word
// and the constants exported here. Nothing in this package branches at
// runtime on the configuration.
package platform
