//go:build arm64

package platform

import "golang.org/x/sys/cpu"

// ARMv8 makes FMADD/FMSUB part of the base instruction set.
func detectHost(h *HostFeatures) {
	h.HardwareFMA = true
	if cpu.ARM64.HasASIMD {
		h.Extra = append(h.Extra, "asimd")
	}
	if cpu.ARM64.HasSVE {
		h.Extra = append(h.Extra, "sve")
	}
}
