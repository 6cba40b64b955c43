package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/qdcalc/internal/accuracy"
	"github.com/agbru/qdcalc/internal/format"
	"github.com/agbru/qdcalc/internal/sysmon"
	"github.com/agbru/qdcalc/internal/ui"
	"github.com/agbru/qdcalc/qd"
)

// Layout constants for the dashboard.
const (
	tickInterval   = 500 * time.Millisecond
	nameWidth      = 14
	minBarWidth    = 10
	historyReserve = 24 // label and value columns beside a sparkline
)

// ExecutionState holds the execution-related fields of a dashboard session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
	done       bool
	ticking    bool
	report     *accuracy.Report
	err        error
}

// Model is the root bubbletea model of the accuracy dashboard.
type Model struct {
	header  HeaderModel
	keymap  KeyMap
	help    help.Model
	spinner spinner.Model
	bars    []progress.Model

	variants []accuracy.Variant
	values   []float64
	average  float64
	eta      time.Duration

	cpu, mem, rate *RingBuffer
	lastTick       time.Time
	lastCompleted  float64

	ExecutionState

	parentCtx context.Context
	config    accuracy.Config
	ref       *programRef
	paused    bool
	width     int
	height    int
}

// NewModel creates a dashboard that runs the study described by cfg.
func NewModel(parentCtx context.Context, cfg accuracy.Config, version string) Model {
	variants := accuracy.Variants()
	bars := make([]progress.Model, len(variants))
	for i := range bars {
		bars[i] = newBar()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	return Model{
		header:   NewHeaderModel(version, qd.Strategy().String()),
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(statusRunningStyle)),
		bars:     bars,
		variants: variants,
		values:   make([]float64, len(variants)),
		cpu:      NewRingBuffer(minBarWidth),
		mem:      NewRingBuffer(minBarWidth),
		rate:     NewRingBuffer(minBarWidth),
		ExecutionState: ExecutionState{
			ctx:     ctx,
			cancel:  cancel,
			ticking: true,
		},
		parentCtx: parentCtx,
		config:    cfg,
		ref:       &programRef{},
	}
}

func newBar() progress.Model {
	opts := []progress.Option{progress.WithWidth(minBarWidth)}
	if barFull != "" {
		opts = append(opts, progress.WithSolidFill(barFull))
	}
	bar := progress.New(opts...)
	if barEmpty != "" {
		bar.EmptyColor = barEmpty
	}
	return bar
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tickCmd(),
		startStudyCmd(m.ref, m.ctx, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case ProgressMsg:
		if msg.Generation != m.generation || m.paused {
			return m, nil
		}
		if msg.Index >= 0 && msg.Index < len(m.values) {
			m.values[msg.Index] = msg.Value
		}
		m.average = msg.Average
		m.eta = msg.ETA
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case StudyCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.finish(msg.Report, msg.Err)
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		if !m.done {
			m.finish(nil, msg.Err)
		}
		return m, tea.Quit

	case TickMsg:
		if m.done {
			m.ticking = false
			return m, nil
		}
		if m.paused {
			return m, tickCmd()
		}
		m.sampleRate(time.Time(msg))
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.cpu.Push(msg.CPUPercent)
		m.mem.Push(msg.MemPercent)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// finish records the outcome of the current run.
func (m *Model) finish(report *accuracy.Report, err error) {
	m.done = true
	m.report = report
	m.err = err
	if report != nil {
		for i := range m.values {
			m.values[i] = 1
		}
		m.average = 1
		m.eta = 0
	}
	m.header.SetDone()
}

// sampleRate pushes the trial throughput since the previous tick.
func (m *Model) sampleRate(now time.Time) {
	completed := m.average * float64(m.config.Trials*len(m.variants))
	if !m.lastTick.IsZero() {
		if dt := now.Sub(m.lastTick).Seconds(); dt > 0 {
			m.rate.Push(max(completed-m.lastCompleted, 0) / dt)
		}
	}
	m.lastTick = now
	m.lastCompleted = completed
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if !m.done {
			m.finish(nil, context.Canceled)
		}
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		if !m.done {
			m.paused = !m.paused
		}
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		return m.rerun()
	}
	return m, nil
}

// rerun cancels the current run and starts a new one with the next seed.
func (m Model) rerun() (tea.Model, tea.Cmd) {
	m.cancel()
	m.generation++
	m.ctx, m.cancel = context.WithCancel(m.parentCtx)
	m.config.Seed++

	m.header.Reset()
	for i := range m.values {
		m.values[i] = 0
	}
	m.average, m.eta = 0, 0
	m.rate.Reset()
	m.lastTick, m.lastCompleted = time.Time{}, 0
	m.done, m.paused = false, false
	m.report, m.err = nil, nil

	cmds := []tea.Cmd{
		startStudyCmd(m.ref, m.ctx, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	}
	if !m.ticking {
		m.ticking = true
		cmds = append(cmds, tickCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) layout() {
	m.header.SetWidth(m.width)
	m.help.Width = m.width
	barWidth := max(m.width-nameWidth-16, minBarWidth)
	for i := range m.bars {
		m.bars[i].Width = barWidth
	}
	history := max(m.width-historyReserve, minBarWidth)
	m.cpu.Resize(history)
	m.mem.Resize(history)
	m.rate.Resize(history)
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	panel := panelStyle.Width(max(m.width-2, 0))
	sections := []string{
		m.header.View(),
		panel.Render(m.progressView()),
		panel.Render(m.systemView()),
	}
	if m.done {
		sections = append(sections, panel.Render(m.resultsView()))
	}
	sections = append(sections, m.help.View(m.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) statusView() string {
	switch {
	case m.err != nil:
		return statusErrorStyle.Render("Failed")
	case m.done:
		return statusDoneStyle.Render("Done")
	case m.paused:
		return statusPausedStyle.Render("Paused")
	}
	return m.spinner.View() + " " + statusRunningStyle.Render("Running")
}

func (m Model) progressView() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s %s  %s %s\n", m.statusView(),
		metricLabelStyle.Render("overall"), metricValueStyle.Render(fmt.Sprintf("%5.1f%%", m.average*100)),
		metricLabelStyle.Render("ETA"), metricValueStyle.Render(format.FormatETA(m.eta)))
	fmt.Fprintf(&b, "%s %s  %s %d  %s %d\n",
		metricLabelStyle.Render("trials"), format.FormatNumberString(fmt.Sprint(m.config.Trials)),
		metricLabelStyle.Render("seed"), m.config.Seed,
		metricLabelStyle.Render("workers"), m.config.Workers)
	for i, v := range m.variants {
		name := variantStyle.Render(fmt.Sprintf("%-*s", nameWidth, v.Name))
		fmt.Fprintf(&b, "\n%s %s", name, m.bars[i].ViewAs(m.values[i]))
	}
	return b.String()
}

func (m Model) systemView() string {
	rate := format.FormatRate(m.rate.Last())
	return strings.Join([]string{
		fmt.Sprintf("%s %s %5.1f%%", metricLabelStyle.Render("CPU "), cpuSparklineStyle.Render(RenderSparkline(m.cpu.Slice())), m.cpu.Last()),
		fmt.Sprintf("%s %s %5.1f%%", metricLabelStyle.Render("MEM "), memSparklineStyle.Render(RenderSparkline(m.mem.Slice())), m.mem.Last()),
		fmt.Sprintf("%s %s %s trials/s (peak %s)", metricLabelStyle.Render("Rate"), rateSparklineStyle.Render(RenderScaledSparkline(m.rate.Slice(), 0)), rate, format.FormatRate(m.rate.Peak())),
	}, "\n")
}

func (m Model) resultsView() string {
	if m.err != nil {
		return statusErrorStyle.Render("Error: ") + m.err.Error()
	}
	if m.report == nil {
		return ""
	}
	st := ui.CurrentStyles()
	rows := make([][]string, 0, len(m.report.Results))
	for _, res := range m.report.Results {
		rows = append(rows, []string{
			res.Name,
			fmt.Sprintf("%.4g", res.MeanErr),
			fmt.Sprintf("%.4g", res.MaxErr),
			fmt.Sprint(res.NonCanonical),
		})
	}
	var b strings.Builder
	b.WriteString(ui.Table(st, []string{"Variant", "Mean err (eps)", "Max err (eps)", "Non-canonical"}, rows))
	if err := m.report.Check(); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(&b, "%s %s\n", st.Bad.Render("FAIL"), line)
		}
	} else {
		b.WriteString(st.Good.Render("All accuracy checks passed."))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Completed in %s", format.FormatExecutionDuration(m.report.Duration))
	return b.String()
}

// Result returns the outcome of the last run: its error, the failed
// accuracy checks, or context.Canceled when the dashboard was quit first.
func (m Model) Result() error {
	if m.err != nil {
		return m.err
	}
	if m.report != nil {
		return m.report.Check()
	}
	return context.Canceled
}

// Run is the public entry point of the dashboard. It runs the study
// described by cfg until the user quits or ctx ends and returns the
// outcome.
func Run(ctx context.Context, cfg accuracy.Config, version string) error {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so the bridge can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	m, ok := finalModel.(Model)
	if !ok {
		return errors.New("dashboard: unexpected final model")
	}
	m.cancel()
	return m.Result()
}

// startStudyCmd returns a tea.Cmd that runs the study.
func startStudyCmd(ref *programRef, ctx context.Context, cfg accuracy.Config, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref, generation: gen}
		report, err := accuracy.Run(ctx, cfg, reporter, io.Discard)
		return StudyCompleteMsg{Report: report, Err: err, Generation: gen}
	}
}

// watchContextCmd reports the end of ctx.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after tickInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory load.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Load()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}
