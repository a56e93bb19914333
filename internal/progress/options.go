package progress

import (
	"github.com/charmbracelet/log"
	"github.com/pablasso/sectionbar/internal/anim"
)

// Option configures a Model.
type Option func(*Model)

// WithAnimation enables or disables the selection pulse and sets its params.
func WithAnimation(enabled bool, params anim.Params) Option {
	return func(m *Model) {
		m.animate = enabled
		m.params = params
	}
}

// WithScheduler sets the timer facility used by the selection pulse.
func WithScheduler(s anim.Scheduler) Option {
	return func(m *Model) {
		if s != nil {
			m.scheduler = s
		}
	}
}

// WithRedraw sets the callback invoked whenever the model or its animation
// changes. It may be called from the animation goroutine and must not block.
func WithRedraw(fn func()) Option {
	return func(m *Model) {
		if fn != nil {
			m.redraw = fn
		}
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}
