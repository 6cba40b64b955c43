//go:build qd_nofms

package platform

// HasFMS reports whether exact products are formed with a fused
// multiply-subtract rather than split-based emulation.
const HasFMS = false
