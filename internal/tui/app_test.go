package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/sectionbar/internal/anim"
	"github.com/pablasso/sectionbar/internal/config"
	"github.com/pablasso/sectionbar/internal/demo"
	"github.com/pablasso/sectionbar/internal/testutil"
	"github.com/pablasso/sectionbar/internal/tui/msgs"
)

func newTestModel(t *testing.T, opts ...Option) (Model, *testutil.ManualScheduler) {
	t.Helper()
	sched := &testutil.ManualScheduler{}
	opts = append([]Option{WithScheduler(sched)}, opts...)
	m := newModel(resolveOptions(opts))
	t.Cleanup(m.bar.Close)
	return m, sched
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var right = tea.KeyMsg{Type: tea.KeyRight}

func TestModel_View_TerminalTooSmall(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		height      int
		expectSmall bool
	}{
		{"exactly minimum size", MinTerminalWidth, MinTerminalHeight, false},
		{"width too small", MinTerminalWidth - 1, MinTerminalHeight, true},
		{"height too small", MinTerminalWidth, MinTerminalHeight - 1, true},
		{"larger than minimum", 100, 50, false},
		{"size not yet known", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			m.width = tt.width
			m.height = tt.height

			view := m.View()

			if tt.expectSmall != strings.Contains(view, "Terminal too small") {
				t.Errorf("expectSmall=%v, got view: %s", tt.expectSmall, view)
			}
		})
	}
}

func TestModel_Update_WindowSizeMsg(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	got := next.(Model)

	if cmd != nil {
		t.Error("expected no command from WindowSizeMsg")
	}
	if got.width != 120 || got.height != 30 {
		t.Errorf("expected 120x30, got %dx%d", got.width, got.height)
	}
	if got.Frame().Width != 120 {
		t.Errorf("expected frame width 120, got %d", got.Frame().Width)
	}
}

func TestModel_AdvanceAndSplitKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, right, right, runes("s"), right, runes("+"), runes("s"))

	if got := m.bar.CurrentProgress(); got != 60 {
		t.Errorf("expected progress 60, got %v", got)
	}
	secs := m.bar.Sections()
	if len(secs) != 2 || secs[0].End != 30 || secs[1].End != 60 {
		t.Errorf("expected sections ending at 30 and 60, got %v", secs)
	}
	if m.status != "section added" {
		t.Errorf("expected status 'section added', got %q", m.status)
	}
}

func TestModel_BackKeyClampsAtZero(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, right, tea.KeyMsg{Type: tea.KeyLeft}, runes("-"))

	if got := m.bar.CurrentProgress(); got != 0 {
		t.Errorf("expected progress 0, got %v", got)
	}
}

func TestModel_ToggleSelectsThenDeletes(t *testing.T) {
	m, sched := newTestModel(t)
	m = press(t, m, right, runes("s"), right, runes("s"))

	m = press(t, m, runes("d"))
	if !m.bar.Sections()[1].Selected {
		t.Fatal("expected last section selected after first toggle")
	}
	if !sched.Scheduled() {
		t.Error("expected pulse to be running")
	}
	if !strings.Contains(m.View(), "pulsing") {
		t.Error("expected status bar to show pulsing")
	}

	m = press(t, m, runes("d"))
	if n := len(m.bar.Sections()); n != 1 {
		t.Fatalf("expected 1 section after delete, got %d", n)
	}
	if got := m.bar.CurrentProgress(); got != 15 {
		t.Errorf("expected progress rewound to 15, got %v", got)
	}
	if sched.Scheduled() {
		t.Error("expected pulse stopped after delete")
	}
}

func TestModel_OrderingViolationShowsHint(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, right, runes("s"), right)

	m = press(t, m, runes("d"))

	if !strings.Contains(m.errorMsg, "Add a block first") {
		t.Errorf("expected add-a-block hint, got %q", m.errorMsg)
	}
	if len(m.bar.Sections()) != 1 || m.bar.Sections()[0].Selected {
		t.Error("expected no mutation after rejected toggle")
	}

	m = press(t, m, runes("s"))
	if m.errorMsg != "" {
		t.Errorf("expected error cleared after a successful op, got %q", m.errorMsg)
	}
}

func TestModel_EmptyStoreShowsHint(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, runes("x"))

	if !strings.Contains(m.errorMsg, "No blocks yet") {
		t.Errorf("expected no-blocks hint, got %q", m.errorMsg)
	}
}

func TestModel_ResetKey(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, right, runes("s"), right, runes("r"))

	if m.bar.CurrentProgress() != 0 || m.bar.HasSections() {
		t.Errorf("expected reset state, got %v %v", m.bar.CurrentProgress(), m.bar.Sections())
	}
}

func TestModel_QuitStopsPulse(t *testing.T) {
	m, sched := newTestModel(t)
	m = press(t, m, right, runes("s"), tea.KeyMsg{Type: tea.KeyEnter})
	if !sched.Scheduled() {
		t.Fatal("expected pulse running after select")
	}

	_, cmd := m.Update(runes("q"))

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if sched.Scheduled() {
		t.Error("expected pulse stopped on quit")
	}
}

func TestModel_RedrawSignal(t *testing.T) {
	m, sched := newTestModel(t)
	m = press(t, m, right, runes("s"), tea.KeyMsg{Type: tea.KeyEnter})

	// Drain the signal left by the key presses.
	msg := m.Init()()
	if _, ok := msg.(msgs.RedrawMsg); !ok {
		t.Fatalf("expected RedrawMsg, got %#v", msg)
	}

	sched.Fire(1)
	msg = waitForRedraw(m.redraw)()
	if _, ok := msg.(msgs.RedrawMsg); !ok {
		t.Fatalf("expected RedrawMsg from pulse tick, got %#v", msg)
	}

	_, cmd := m.Update(msgs.RedrawMsg{})
	if cmd == nil {
		t.Error("expected RedrawMsg to re-arm the listener")
	}
}

func TestModel_DemoMessages(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(demo.StepMsg{Step: demo.Step{Op: demo.OpSet, Value: 40}})
	m = next.(Model)
	next, _ = m.Update(demo.StepMsg{Step: demo.Step{Op: demo.OpSplit}})
	m = next.(Model)
	next, _ = m.Update(demo.DoneMsg{})
	m = next.(Model)

	if len(m.bar.Sections()) != 1 {
		t.Errorf("expected one section, got %v", m.bar.Sections())
	}
	if !m.demoDone || m.status != "demo finished" {
		t.Errorf("expected demo finished, got done=%v status=%q", m.demoDone, m.status)
	}
}

func TestModel_AnimationDisabledByConfig(t *testing.T) {
	cfg := config.Default()
	off := false
	cfg.SectionAnimation = &off
	m, sched := newTestModel(t, WithConfig(cfg))

	m = press(t, m, right, runes("s"), tea.KeyMsg{Type: tea.KeyEnter})

	if !m.bar.Sections()[0].Selected {
		t.Error("expected section selected")
	}
	if sched.Starts() != 0 {
		t.Errorf("expected no pulse, got %d starts", sched.Starts())
	}
}

func TestModel_WithStep(t *testing.T) {
	m, _ := newTestModel(t, WithStep(40))

	m = press(t, m, right, right, right)

	if got := m.bar.CurrentProgress(); got != 100 {
		t.Errorf("expected clamp at 100, got %v", got)
	}
}

func TestModel_View_ShowsLabelAndHelp(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	m = next.(Model)
	m = press(t, m, right, runes("s"))

	view := m.View()

	for _, want := range []string{"Section Progress", "15% · 1 section", "add block", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestDefaultParamsFlowIntoModel(t *testing.T) {
	m, sched := newTestModel(t)
	m = press(t, m, right, runes("s"), tea.KeyMsg{Type: tea.KeyEnter})

	if sched.Interval() != anim.DefaultInterval {
		t.Errorf("expected interval %s, got %s", anim.DefaultInterval, sched.Interval())
	}
	step, ok := m.bar.AnimationStep()
	if !ok || step != anim.DefaultMaxStep {
		t.Errorf("expected step %d, got %d ok=%v", anim.DefaultMaxStep, step, ok)
	}
}
