package tui

import (
	"github.com/charmbracelet/log"
	"github.com/pablasso/sectionbar/internal/anim"
	"github.com/pablasso/sectionbar/internal/config"
	"github.com/pablasso/sectionbar/internal/demo"
)

// Option configures TUI startup behavior.
type Option func(*options)

type options struct {
	config    config.Config
	logger    *log.Logger
	demo      *demo.Config
	scheduler anim.Scheduler
	step      float64
}

func defaultOptions() options {
	return options{
		config: config.Default(),
		step:   DefaultStep,
	}
}

// WithConfig sets colors, sizes, and animation settings.
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithLogger sets the logger. The TUI owns the terminal, so pass a logger
// that writes to a file or discards.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithDemoMode starts scripted playback alongside the TUI.
func WithDemoMode(cfg demo.Config) Option {
	return func(o *options) {
		o.demo = &cfg
	}
}

// WithScheduler overrides the pulse timer.
func WithScheduler(s anim.Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithStep sets how far the advance/back keys move progress.
func WithStep(step float64) Option {
	return func(o *options) {
		if step > 0 {
			o.step = step
		}
	}
}
