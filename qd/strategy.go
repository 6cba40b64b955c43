package qd

import (
	"fmt"

	"github.com/agbru/qdcalc/internal/platform"
)

// BuildStrategy describes the algorithms and word configuration this
// binary was compiled with.
type BuildStrategy struct {
	Add      string `json:"add"`
	Mul      string `json:"mul"`
	Div      string `json:"div"`
	WordBits int    `json:"word_bits"`
	FMS      bool   `json:"fms"`
	GPU      bool   `json:"gpu"`
}

// Strategy reports the build configuration.
func Strategy() BuildStrategy {
	return BuildStrategy{
		Add:      addStrategy,
		Mul:      mulStrategy,
		Div:      divStrategy,
		WordBits: platform.WordBits,
		FMS:      platform.HasFMS,
		GPU:      platform.GPU,
	}
}

func (s BuildStrategy) String() string {
	return fmt.Sprintf("add=%s mul=%s div=%s word=float%d fms=%t gpu=%t",
		s.Add, s.Mul, s.Div, s.WordBits, s.FMS, s.GPU)
}
