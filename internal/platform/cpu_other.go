//go:build !(386 || amd64 || arm64)

package platform

import "runtime"

func detectHost(h *HostFeatures) {
	switch runtime.GOARCH {
	case "ppc64", "ppc64le", "s390x", "riscv64", "loong64":
		h.HardwareFMA = true
	}
}
