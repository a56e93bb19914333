package anim

// Direction is the current travel of the oscillator.
type Direction int

const (
	Falling Direction = iota
	Rising
)

func (d Direction) String() string {
	if d == Rising {
		return "rising"
	}
	return "falling"
}

// Oscillator bounces a step value between MinStep and MaxStep.
// It is not safe for concurrent use; Engine guards it.
type Oscillator struct {
	min, max, inc int
	step          int
	dir           Direction
}

// NewOscillator starts at the upper bound, falling.
func NewOscillator(p Params) Oscillator {
	return Oscillator{
		min:  p.MinStep,
		max:  p.MaxStep,
		inc:  p.Increment,
		step: p.MaxStep,
		dir:  Falling,
	}
}

// Step returns the current value.
func (o *Oscillator) Step() int { return o.step }

// Direction returns the current travel direction.
func (o *Oscillator) Direction() Direction { return o.dir }

// Advance moves one increment, clamping at the bounds and flipping direction
// when a bound is reached. It reports whether the value changed.
func (o *Oscillator) Advance() bool {
	prev := o.step
	switch o.dir {
	case Falling:
		o.step -= o.inc
		if o.step <= o.min {
			o.step = o.min
			o.dir = Rising
		}
	case Rising:
		o.step += o.inc
		if o.step >= o.max {
			o.step = o.max
			o.dir = Falling
		}
	}
	return o.step != prev
}
