package app

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/qdcalc/internal/platform"
	"github.com/agbru/qdcalc/qd"
)

// Build metadata, set with -ldflags "-X github.com/agbru/qdcalc/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args request the version banner.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner, including the arithmetic build.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "qdcalc %s (commit %s, built %s)\n", Version, Commit, BuildDate)
	fmt.Fprintf(out, "%s, %s, %s %s/%s\n", qd.Strategy(), platform.CurrentProfile(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
