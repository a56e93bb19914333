// Package demo scripts progress-bar operations for playback and headless runs.
package demo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pablasso/sectionbar/internal/section"
)

// Op names a progress-bar operation.
type Op string

const (
	OpSet     Op = "set"
	OpAdvance Op = "advance"
	OpSplit   Op = "split"
	OpSelect  Op = "select"
	OpRemove  Op = "remove"
	OpToggle  Op = "toggle" // select, or delete when already selected
	OpReset   Op = "reset"
)

// Step is one scripted operation. Value is used by set and advance.
type Step struct {
	Op    Op
	Value float64
}

func (s Step) String() string {
	switch s.Op {
	case OpSet, OpAdvance:
		return fmt.Sprintf("%s=%g", s.Op, s.Value)
	default:
		return string(s.Op)
	}
}

// ParseStep parses "set=25", "advance=15", "split", "select", "remove",
// "toggle", or "reset".
func ParseStep(value string) (Step, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(value), "=")
	op := Op(strings.ToLower(name))

	switch op {
	case OpSet, OpAdvance:
		if !hasArg {
			return Step{}, fmt.Errorf("step %q needs a value (e.g. %s=15)", value, op)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Step{}, fmt.Errorf("step %q: invalid number %q", value, arg)
		}
		return Step{Op: op, Value: v}, nil
	case OpSplit, OpSelect, OpRemove, OpToggle, OpReset:
		if hasArg {
			return Step{}, fmt.Errorf("step %q takes no value", value)
		}
		return Step{Op: op}, nil
	default:
		return Step{}, fmt.Errorf("invalid step %q (valid: set=N, advance=N, split, select, remove, toggle, reset)", value)
	}
}

// ParseSteps parses every value, stopping at the first error.
func ParseSteps(values []string) ([]Step, error) {
	steps := make([]Step, 0, len(values))
	for _, v := range values {
		s, err := ParseStep(v)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// Target is the set of operations a Step can drive.
type Target interface {
	SetProgress(percent float64) error
	Advance(delta float64) error
	SplitAtCurrent() (bool, error)
	SelectLastSection() (bool, error)
	RemoveLastSection() (section.Section, error)
	DeleteOrSelect() (bool, error)
	Reset()
}

// Apply runs step against t and returns a short description of the outcome.
func Apply(t Target, step Step) (string, error) {
	switch step.Op {
	case OpSet:
		if err := t.SetProgress(step.Value); err != nil {
			return "", err
		}
		return fmt.Sprintf("progress %g%%", step.Value), nil
	case OpAdvance:
		if err := t.Advance(step.Value); err != nil {
			return "", err
		}
		return fmt.Sprintf("advanced %g%%", step.Value), nil
	case OpSplit:
		added, err := t.SplitAtCurrent()
		if err != nil {
			return "", err
		}
		if !added {
			return "split skipped", nil
		}
		return "section added", nil
	case OpSelect:
		prev, err := t.SelectLastSection()
		if err != nil {
			return "", err
		}
		if prev {
			return "already selected", nil
		}
		return "section selected", nil
	case OpRemove:
		removed, err := t.RemoveLastSection()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("removed %s", removed), nil
	case OpToggle:
		deleted, err := t.DeleteOrSelect()
		if err != nil {
			return "", err
		}
		if deleted {
			return "section deleted", nil
		}
		return "section selected", nil
	case OpReset:
		t.Reset()
		return "reset", nil
	default:
		return "", fmt.Errorf("unknown op %q", step.Op)
	}
}
