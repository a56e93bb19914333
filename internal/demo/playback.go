package demo

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StepMsg asks the TUI to apply one scripted step.
type StepMsg struct {
	Step Step
}

// DoneMsg signals that a non-looping playback finished.
type DoneMsg struct{}

// Sender is the part of *tea.Program that playback needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Playback drives scripted steps into the TUI.
type Playback struct {
	Config Config
}

// NewPlayback creates a playback from config.
func NewPlayback(config Config) *Playback {
	return &Playback{Config: config}
}

// Run sends each step, waiting StepDelay before each one, until the steps
// run out (or forever when looping) or ctx is cancelled.
func (p *Playback) Run(ctx context.Context, program Sender) {
	if program == nil || len(p.Config.Steps) == 0 {
		return
	}

	for {
		for _, step := range p.Config.Steps {
			if !p.wait(ctx, p.Config.StepDelay) {
				return
			}
			program.Send(StepMsg{Step: step})
		}
		if !p.Config.Loop {
			program.Send(DoneMsg{})
			return
		}
	}
}

func (p *Playback) wait(ctx context.Context, delay time.Duration) bool {
	if delay <= 0 {
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
