//go:build qd_gpu && qd_nofms

package platform

// The GPU kernel profile has no split-based product emulation. Building
// with both qd_gpu and qd_nofms must fail here rather than silently fall
// back to a slower, differently rounded path.
var _ = qdGPUProfileRequiresFusedMultiplySubtract_RemoveTagQdNofms
