package anim

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	// ErrEngineRunning is returned by Start on an engine that is already ticking.
	ErrEngineRunning = errors.New("animation engine already running")
	// ErrEngineStopped is returned by Start on an engine that has been stopped.
	// Engines are single-use.
	ErrEngineStopped = errors.New("animation engine already stopped")
)

type engineState int

const (
	stateIdle engineState = iota
	stateRunning
	stateStopped
)

// Engine ticks an Oscillator on a Scheduler and requests a redraw whenever
// the step changes.
type Engine struct {
	params    Params
	scheduler Scheduler
	onChange  func()
	logger    *log.Logger

	mu     sync.Mutex
	osc    Oscillator
	state  engineState
	cancel func()
}

// NewEngine creates an idle engine. onChange is called from the scheduler's
// goroutine with the engine lock held and must not block or call back into
// the engine. A nil scheduler falls back to TickerScheduler.
func NewEngine(params Params, scheduler Scheduler, onChange func()) *Engine {
	if scheduler == nil {
		scheduler = TickerScheduler{}
	}
	if onChange == nil {
		onChange = func() {}
	}
	return &Engine{
		params:    params,
		scheduler: scheduler,
		onChange:  onChange,
		logger:    log.New(io.Discard),
		osc:       NewOscillator(params),
	}
}

// SetLogger replaces the engine logger. Call before Start.
func (e *Engine) SetLogger(l *log.Logger) {
	if l != nil {
		e.logger = l
	}
}

// Start schedules the repeating tick.
func (e *Engine) Start() error {
	e.mu.Lock()
	switch e.state {
	case stateRunning:
		e.mu.Unlock()
		return ErrEngineRunning
	case stateStopped:
		e.mu.Unlock()
		return ErrEngineStopped
	}
	e.state = stateRunning
	e.mu.Unlock()

	cancel := e.scheduler.Every(e.params.Interval, e.tick)

	e.mu.Lock()
	if e.state != stateRunning {
		e.mu.Unlock()
		cancel()
		return ErrEngineStopped
	}
	e.cancel = cancel
	e.mu.Unlock()

	e.logger.Debug("animation started", "interval", e.params.Interval, "step", e.params.MaxStep)
	return nil
}

// Stop cancels the tick. It is safe to call more than once and from any
// goroutine other than the tick itself. No redraw is requested after Stop
// returns.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.state == stateStopped {
		e.mu.Unlock()
		return
	}
	wasRunning := e.state == stateRunning
	e.state = stateStopped
	cancel := e.cancel
	e.cancel = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if wasRunning {
		e.logger.Debug("animation stopped")
	}
}

// Step returns the current oscillator value.
func (e *Engine) Step() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.osc.Step()
}

// Active reports whether the engine is ticking.
func (e *Engine) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == stateRunning
}

func (e *Engine) tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateRunning {
		return
	}
	if e.osc.Advance() {
		e.onChange()
	}
}
