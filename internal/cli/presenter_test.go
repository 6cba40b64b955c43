package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/agbru/qdcalc/internal/accuracy"
	"github.com/agbru/qdcalc/internal/ui"
)

func TestPresentAccuracyReport(t *testing.T) {
	ui.InitTheme(true)

	report, err := accuracy.Run(context.Background(), accuracy.Config{Trials: 256, Seed: 3, Workers: 2},
		accuracy.NullProgressReporter{}, io.Discard)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentAccuracyReport(report, &buf)
	out := buf.String()
	for _, s := range []string{"Accuracy study", "Variant", "Max err (eps)", "sloppy mul", "accurate div", "seed 3", "Completed in"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestPresentChecks(t *testing.T) {
	ui.InitTheme(true)

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentChecks("Self-test", []CheckLine{
		{Name: "rounding"},
		{Name: "allocations", Detail: "0 per op"},
		{Name: "scenario", Err: errors.New("mismatch")},
	}, &buf)

	out := buf.String()
	for _, s := range []string{"Self-test", "ok", "rounding", "allocations", "(0 per op)", "FAIL", "scenario: mismatch"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
	if n := strings.Count(out, "\n"); n != 4 {
		t.Errorf("got %d lines, want 4:\n%s", n, out)
	}
}
