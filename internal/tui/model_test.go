package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/qdcalc/internal/accuracy"
	apperrors "github.com/agbru/qdcalc/internal/errors"
	"github.com/agbru/qdcalc/qd"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(context.Background(), accuracy.Config{Trials: 100, Seed: 7, Workers: 2}, "v1.2.3")
	t.Cleanup(func() { m.cancel() })
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func passingReport() *accuracy.Report {
	return &accuracy.Report{
		Trials: 100,
		Results: []accuracy.Result{
			{Name: "sloppy mul", Op: accuracy.OpMul, Trials: 100, MeanErr: 2, MaxErr: 8},
			{Name: "accurate mul", Op: accuracy.OpMul, Accurate: true, Trials: 100, MeanErr: 1, MaxErr: 4},
		},
		Duration: 3 * time.Millisecond,
	}
}

func TestModelProgress(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, ProgressMsg{Index: 2, Value: 0.5, Average: 0.25, ETA: time.Second})
	if m.values[2] != 0.5 || m.average != 0.25 || m.eta != time.Second {
		t.Fatalf("progress not applied: values %v average %g eta %v", m.values, m.average, m.eta)
	}

	m, _ = update(t, m, ProgressMsg{Index: 2, Value: 0.9, Generation: 5})
	if m.values[2] != 0.5 {
		t.Error("stale generation update was applied")
	}

	m, _ = update(t, m, ProgressMsg{Index: 42, Value: 1, Average: 0.3})
	if m.average != 0.3 {
		t.Error("out of range index dropped the average")
	}

	m, _ = update(t, m, keyMsg("p"))
	if !m.paused {
		t.Fatal("pause key did not pause")
	}
	m, _ = update(t, m, ProgressMsg{Index: 0, Value: 1, Average: 0.9})
	if m.values[0] != 0 {
		t.Error("update applied while paused")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before sizing = %q", got)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 40})
	view := m.View()
	for _, want := range []string{"qdcalc accuracy v1.2.3", qd.Strategy().String(), "Running", "sloppy add", "accurate div", "trials/s", "seed 7"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q:\n%s", want, view)
		}
	}
	if m.bars[0].Width != 160-nameWidth-16 {
		t.Errorf("bar width %d", m.bars[0].Width)
	}
}

func TestModelStudyComplete(t *testing.T) {
	tests := []struct {
		name     string
		report   *accuracy.Report
		err      error
		contains string
		wantCode int
	}{
		{"passing report", passingReport(), nil, "All accuracy checks passed.", apperrors.ExitSuccess},
		{
			name: "failed check",
			report: &accuracy.Report{Results: []accuracy.Result{
				{Name: "sloppy mul", Op: accuracy.OpMul, Trials: 10, MeanErr: 1},
				{Name: "accurate mul", Op: accuracy.OpMul, Accurate: true, Trials: 10, MeanErr: 2},
			}},
			contains: "FAIL",
			wantCode: apperrors.ExitErrorMismatch,
		},
		{"study error", nil, context.DeadlineExceeded, "Error:", apperrors.ExitErrorTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
			m, _ = update(t, m, StudyCompleteMsg{Report: tt.report, Err: tt.err})
			if !m.done {
				t.Fatal("model not done")
			}
			if view := m.View(); !strings.Contains(view, tt.contains) {
				t.Errorf("View missing %q:\n%s", tt.contains, view)
			}
			if got := apperrors.ExitCodeFor(m.Result()); got != tt.wantCode {
				t.Errorf("exit code %d, want %d (err %v)", got, tt.wantCode, m.Result())
			}
		})
	}
}

func TestModelIgnoresStaleCompletion(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, StudyCompleteMsg{Report: passingReport(), Generation: 3})
	if m.done {
		t.Error("stale completion finished the run")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, keyMsg("q"))
	if !isQuit(cmd) {
		t.Fatal("quit key did not quit")
	}
	if !errors.Is(m.Result(), context.Canceled) {
		t.Errorf("Result() = %v, want context.Canceled", m.Result())
	}
	if m.ctx.Err() == nil {
		t.Error("run context not canceled")
	}

	done := newTestModel(t)
	done, _ = update(t, done, StudyCompleteMsg{Report: passingReport()})
	done, cmd = update(t, done, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) || done.Result() != nil {
		t.Errorf("quit after completion: quit %v result %v", isQuit(cmd), done.Result())
	}
}

func TestModelContextCancelled(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, ContextCancelledMsg{Err: context.DeadlineExceeded, Generation: 1})
	if cmd != nil || m.done {
		t.Fatal("stale cancellation was handled")
	}

	m, cmd = update(t, m, ContextCancelledMsg{Err: context.DeadlineExceeded})
	if !isQuit(cmd) {
		t.Fatal("cancellation did not quit")
	}
	if !errors.Is(m.Result(), context.DeadlineExceeded) {
		t.Errorf("Result() = %v, want DeadlineExceeded", m.Result())
	}
}

func TestModelRerun(t *testing.T) {
	m := newTestModel(t)
	oldCtx := m.ctx
	m, _ = update(t, m, ProgressMsg{Index: 1, Value: 0.5, Average: 0.5})
	m, _ = update(t, m, StudyCompleteMsg{Report: passingReport()})
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.ticking {
		t.Fatal("ticking continued after completion")
	}

	m, cmd := update(t, m, keyMsg("r"))
	t.Cleanup(func() { m.cancel() })
	if cmd == nil {
		t.Fatal("rerun returned no command")
	}
	if oldCtx.Err() == nil {
		t.Error("previous run not canceled")
	}
	if m.generation != 1 || m.config.Seed != 8 {
		t.Errorf("generation %d seed %d, want 1 and 8", m.generation, m.config.Seed)
	}
	if m.done || m.report != nil || m.average != 0 || m.values[1] != 0 || !m.ticking {
		t.Errorf("state not reset: %+v", m.ExecutionState)
	}

	m, _ = update(t, m, StudyCompleteMsg{Report: passingReport(), Generation: 0})
	if m.done {
		t.Error("completion of the previous run was applied")
	}
}

func TestModelSampling(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, SysStatsMsg{CPUPercent: 40, MemPercent: 60})
	if m.cpu.Last() != 40 || m.mem.Last() != 60 {
		t.Errorf("cpu %g mem %g", m.cpu.Last(), m.mem.Last())
	}

	start := time.Now()
	m.sampleRate(start)
	m.average = 0.5
	m.sampleRate(start.Add(time.Second))
	// 6 variants of 100 trials, half done in one second.
	if got := m.rate.Last(); got != 300 {
		t.Errorf("rate = %g, want 300", got)
	}
	if !strings.Contains(m.systemView(), "(peak 300)") {
		t.Errorf("system view missing peak rate:\n%s", m.systemView())
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyMsg("?"))
	if !m.help.ShowAll {
		t.Error("help key did not expand the help")
	}
}
