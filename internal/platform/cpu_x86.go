//go:build 386 || amd64

package platform

import "golang.org/x/sys/cpu"

func detectHost(h *HostFeatures) {
	h.HardwareFMA = cpu.X86.HasFMA
	if cpu.X86.HasAVX2 {
		h.Extra = append(h.Extra, "avx2")
	}
	if cpu.X86.HasAVX512F {
		h.Extra = append(h.Extra, "avx512f")
	}
}
