package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// HostFeatures describes the floating-point capabilities of the machine
// the binary is running on. It is informational only: the arithmetic is
// selected at build time and never consults these values.
type HostFeatures struct {
	// Arch is runtime.GOARCH.
	Arch string
	// HardwareFMA reports whether the CPU executes fused multiply-add
	// natively. Without it math.FMA falls back to a software emulation,
	// which is still exact but slower.
	HardwareFMA bool
	// Extra lists additional vector extensions relevant to float kernels.
	Extra []string
}

// String returns a compact, human-readable summary of the features.
func (h HostFeatures) String() string {
	fma := "no"
	if h.HardwareFMA {
		fma = "yes"
	}
	s := fmt.Sprintf("%s fma=%s", h.Arch, fma)
	if len(h.Extra) > 0 {
		s += " " + strings.Join(h.Extra, ",")
	}
	return s
}

// DetectHost inspects the running CPU.
func DetectHost() HostFeatures {
	h := HostFeatures{Arch: runtime.GOARCH}
	detectHost(&h)
	return h
}

// Profile is the compile-time configuration of the build.
type Profile struct {
	WordBits    int
	Mantissa    int
	FusedMulSub bool
	GPU         bool
}

// CurrentProfile returns the configuration this binary was built with.
func CurrentProfile() Profile {
	return Profile{
		WordBits:    WordBits,
		Mantissa:    Mantissa,
		FusedMulSub: HasFMS,
		GPU:         GPU,
	}
}

// String renders the profile, e.g. "float64x4 fms cpu".
func (p Profile) String() string {
	prod := "split"
	if p.FusedMulSub {
		prod = "fms"
	}
	target := "cpu"
	if p.GPU {
		target = "gpu"
	}
	return fmt.Sprintf("float%dx4 %s %s", p.WordBits, prod, target)
}
