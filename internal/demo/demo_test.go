package demo

import (
	"errors"
	"strings"
	"testing"

	"github.com/pablasso/sectionbar/internal/anim"
	"github.com/pablasso/sectionbar/internal/progress"
	"github.com/pablasso/sectionbar/internal/section"
	"github.com/pablasso/sectionbar/internal/testutil"
)

func newModel(t *testing.T) *progress.Model {
	t.Helper()
	m := progress.New(
		progress.WithAnimation(true, anim.DefaultParams()),
		progress.WithScheduler(&testutil.ManualScheduler{}),
	)
	t.Cleanup(m.Close)
	return m
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		input   string
		want    Step
		wantErr string
	}{
		{input: "set=25", want: Step{Op: OpSet, Value: 25}},
		{input: " Advance=15.5 ", want: Step{Op: OpAdvance, Value: 15.5}},
		{input: "split", want: Step{Op: OpSplit}},
		{input: "select", want: Step{Op: OpSelect}},
		{input: "remove", want: Step{Op: OpRemove}},
		{input: "toggle", want: Step{Op: OpToggle}},
		{input: "RESET", want: Step{Op: OpReset}},
		{input: "set", wantErr: "needs a value"},
		{input: "set=abc", wantErr: "invalid number"},
		{input: "set=NaN", wantErr: "invalid number"},
		{input: "advance=inf", wantErr: "invalid number"},
		{input: "advance=-Inf", wantErr: "invalid number"},
		{input: "split=3", wantErr: "takes no value"},
		{input: "jump", wantErr: "invalid step"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStep(tt.input)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseStep(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSteps_StopsAtFirstError(t *testing.T) {
	_, err := ParseSteps([]string{"set=10", "bogus", "split"})
	if err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("expected error about bogus, got %v", err)
	}
}

func TestStep_String(t *testing.T) {
	if s := (Step{Op: OpSet, Value: 12.5}).String(); s != "set=12.5" {
		t.Errorf("unexpected %q", s)
	}
	if s := (Step{Op: OpSplit}).String(); s != "split" {
		t.Errorf("unexpected %q", s)
	}
}

func TestApply_Sequence(t *testing.T) {
	m := newModel(t)
	steps, err := ParseSteps([]string{"set=25", "split", "set=60", "split", "select", "remove"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var outcomes []string
	for _, s := range steps {
		out, err := Apply(m, s)
		if err != nil {
			t.Fatalf("step %s: %v", s, err)
		}
		outcomes = append(outcomes, out)
	}

	if got := m.CurrentProgress(); got != 25 {
		t.Errorf("expected progress 25, got %v", got)
	}
	if secs := m.Sections(); len(secs) != 1 || secs[0].End != 25 {
		t.Errorf("expected one section ending at 25, got %v", secs)
	}
	if outcomes[4] != "section selected" {
		t.Errorf("expected select outcome, got %q", outcomes[4])
	}
	if !strings.HasPrefix(outcomes[5], "removed [25, 60)") {
		t.Errorf("expected remove outcome, got %q", outcomes[5])
	}
}

func TestApply_PropagatesErrors(t *testing.T) {
	m := newModel(t)

	if _, err := Apply(m, Step{Op: OpSet, Value: 150}); !errors.Is(err, progress.ErrRange) {
		t.Errorf("expected ErrRange, got %v", err)
	}
	if _, err := Apply(m, Step{Op: OpRemove}); !errors.Is(err, progress.ErrEmptyStore) {
		t.Errorf("expected ErrEmptyStore, got %v", err)
	}
	if _, err := Apply(m, Step{Op: "warp"}); err == nil {
		t.Error("expected error for unknown op")
	}
}

func TestApply_Toggle(t *testing.T) {
	m := newModel(t)
	Apply(m, Step{Op: OpSet, Value: 40})
	Apply(m, Step{Op: OpSplit})

	out, err := Apply(m, Step{Op: OpToggle})
	if err != nil || out != "section selected" {
		t.Fatalf("expected select, got %q, %v", out, err)
	}
	out, err = Apply(m, Step{Op: OpToggle})
	if err != nil || out != "section deleted" {
		t.Fatalf("expected delete, got %q, %v", out, err)
	}
	if m.HasSections() {
		t.Error("expected no sections left")
	}
}

func TestDefaultScenario_RunsCleanly(t *testing.T) {
	m := newModel(t)

	for i, s := range DefaultScenario() {
		if _, err := Apply(m, s); err != nil {
			t.Fatalf("step %d (%s): %v", i, s, err)
		}
		if err := section.Validate(m.Sections()); err != nil {
			t.Fatalf("step %d (%s): %v", i, s, err)
		}
	}
	if m.CurrentProgress() != 0 || m.HasSections() {
		t.Errorf("expected scenario to end reset, got %v %v", m.CurrentProgress(), m.Sections())
	}
}

func TestParseSpeed(t *testing.T) {
	if s, err := ParseSpeed(" Fast "); err != nil || s != SpeedFast {
		t.Errorf("expected fast, got %q, %v", s, err)
	}
	if _, err := ParseSpeed("ludicrous"); err == nil || !strings.Contains(err.Error(), "invalid demo speed") {
		t.Errorf("expected invalid speed error, got %v", err)
	}
}

func TestNewConfig_Delays(t *testing.T) {
	fast := NewConfig(SpeedFast, false)
	normal := NewConfig(SpeedNormal, false)
	slow := NewConfig(SpeedSlow, true)

	if !(fast.StepDelay < normal.StepDelay && normal.StepDelay < slow.StepDelay) {
		t.Errorf("expected fast < normal < slow, got %s %s %s", fast.StepDelay, normal.StepDelay, slow.StepDelay)
	}
	if !slow.Loop || len(slow.Steps) == 0 {
		t.Error("expected looping config with steps")
	}
}
