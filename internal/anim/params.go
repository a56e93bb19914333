// Package anim drives the pulse animation of a selected section.
//
// The engine is a bounded triangle-wave oscillator advanced by a periodic
// scheduler. Timing (Scheduler) is kept apart from the value (Oscillator) so
// hosts can plug in their own timer facility.
package anim

import (
	"fmt"
	"time"
)

const (
	DefaultMinStep   = 50
	DefaultMaxStep   = 200
	DefaultIncrement = 10
	DefaultInterval  = 80 * time.Millisecond
)

// Params configures the oscillator bounds and tick rate.
type Params struct {
	MinStep   int
	MaxStep   int
	Increment int
	Interval  time.Duration
}

// DefaultParams returns the stock pulse settings.
func DefaultParams() Params {
	return Params{
		MinStep:   DefaultMinStep,
		MaxStep:   DefaultMaxStep,
		Increment: DefaultIncrement,
		Interval:  DefaultInterval,
	}
}

// Validate reports the first invalid field.
func (p Params) Validate() error {
	if p.MinStep < 0 {
		return fmt.Errorf("min step must be >= 0, got %d", p.MinStep)
	}
	if p.MaxStep < p.MinStep {
		return fmt.Errorf("max step %d is below min step %d", p.MaxStep, p.MinStep)
	}
	if p.Increment <= 0 {
		return fmt.Errorf("increment must be > 0, got %d", p.Increment)
	}
	if p.Interval <= 0 {
		return fmt.Errorf("interval must be > 0, got %s", p.Interval)
	}
	return nil
}
