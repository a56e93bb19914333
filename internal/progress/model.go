// Package progress implements the section/selection state machine behind the
// segmented progress bar.
//
// A Model is owned by a single goroutine. The only concurrent activity is the
// selection pulse, which runs on its own scheduler and reports changes
// through the redraw callback.
package progress

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/pablasso/sectionbar/internal/anim"
	"github.com/pablasso/sectionbar/internal/section"
)

// Model holds the live progress pointer and the committed sections.
type Model struct {
	current float64
	store   section.Store

	animate   bool
	params    anim.Params
	scheduler anim.Scheduler
	engine    *anim.Engine // non-nil only while a section is selected and animated

	redraw func()
	logger *log.Logger
}

// New creates an empty model at 0%. The selection pulse is enabled with
// default params unless overridden.
func New(opts ...Option) *Model {
	m := &Model{
		animate:   true,
		params:    anim.DefaultParams(),
		scheduler: anim.TickerScheduler{},
		redraw:    func() {},
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetProgress moves the live pointer. Any selection is dropped. NaN is out
// of range.
func (m *Model) SetProgress(percent float64) error {
	if !(percent >= 0 && percent <= 100) {
		return fmt.Errorf("%w: got %g", ErrRange, percent)
	}

	m.deselect()
	m.current = percent
	m.logger.Debug("progress set", "percent", percent)
	m.markDirty()
	return nil
}

// Advance moves the live pointer by delta, clamped to [0, 100].
func (m *Model) Advance(delta float64) error {
	target := m.current + delta
	if target > 100 {
		target = 100
	}
	if target < 0 {
		target = 0
	}
	return m.SetProgress(target)
}

// SplitAtCurrent closes a new section at the live pointer. It returns false
// when the pointer sits exactly on the last section end.
func (m *Model) SplitAtCurrent() (bool, error) {
	sec, ok, err := m.store.Append(m.current)
	if err != nil {
		return false, fmt.Errorf("split at %g: %w", m.current, err)
	}
	if !ok {
		m.logger.Debug("split skipped, zero width", "percent", m.current)
		return false, nil
	}

	m.stopAnimation()
	m.logger.Debug("section added", "start", sec.Start, "end", sec.End, "count", m.store.Len())
	m.markDirty()
	return true, nil
}

// RemoveLastSection pops the last section and rewinds the pointer to its start.
func (m *Model) RemoveLastSection() (section.Section, error) {
	if err := m.checkOrdering("remove"); err != nil {
		return section.Section{}, err
	}

	removed, err := m.store.RemoveLast()
	if err != nil {
		return section.Section{}, fmt.Errorf("remove last section: %w", err)
	}

	m.stopAnimation()
	m.current = removed.Start
	m.logger.Debug("section removed", "start", removed.Start, "end", removed.End, "count", m.store.Len())
	m.markDirty()
	return removed, nil
}

// SelectLastSection selects the last section and returns whether it was
// already selected. Selecting never toggles a selection off.
func (m *Model) SelectLastSection() (bool, error) {
	if err := m.checkOrdering("select"); err != nil {
		return false, err
	}

	prev, err := m.store.SelectLast()
	if err != nil {
		return false, fmt.Errorf("select last section: %w", err)
	}

	if m.animate && m.engine == nil {
		m.startAnimation()
	}
	if !prev {
		m.logger.Debug("section selected", "percent", m.current)
	}
	m.markDirty()
	return prev, nil
}

// DeleteOrSelect selects the last section, or deletes it when it is already
// selected. It reports whether a section was deleted.
func (m *Model) DeleteOrSelect() (bool, error) {
	prev, err := m.SelectLastSection()
	if err != nil {
		return false, err
	}
	if !prev {
		return false, nil
	}
	if _, err := m.RemoveLastSection(); err != nil {
		return false, err
	}
	return true, nil
}

// Reset clears all sections and moves the pointer back to 0.
func (m *Model) Reset() {
	m.stopAnimation()
	m.store.Clear()
	m.current = 0
	m.logger.Debug("progress reset")
	m.markDirty()
}

// CurrentProgress returns the live pointer.
func (m *Model) CurrentProgress() float64 {
	return m.current
}

// Sections returns a copy of the committed sections in track order.
func (m *Model) Sections() []section.Section {
	return m.store.Sections()
}

// HasSections reports whether any section has been committed.
func (m *Model) HasSections() bool {
	return m.store.Len() > 0
}

// LastSection returns the most recent section.
func (m *Model) LastSection() (section.Section, bool) {
	return m.store.Last()
}

// AnimationStep returns the pulse value while a selected section is animating.
func (m *Model) AnimationStep() (int, bool) {
	if m.engine == nil {
		return 0, false
	}
	return m.engine.Step(), true
}

// Close stops any running animation.
func (m *Model) Close() {
	m.stopAnimation()
}

func (m *Model) checkOrdering(op string) error {
	last, ok := m.store.Last()
	if ok && m.current > last.End {
		return fmt.Errorf("%s: %w: progress %g is past last section end %g", op, ErrOrderingViolation, m.current, last.End)
	}
	return nil
}

func (m *Model) deselect() {
	if m.store.Deselect() {
		m.logger.Debug("section deselected")
	}
	m.stopAnimation()
}

func (m *Model) startAnimation() {
	engine := anim.NewEngine(m.params, m.scheduler, m.redraw)
	engine.SetLogger(m.logger)
	if err := engine.Start(); err != nil {
		m.logger.Warn("animation did not start", "err", err)
		return
	}
	m.engine = engine
}

func (m *Model) stopAnimation() {
	if m.engine == nil {
		return
	}
	m.engine.Stop()
	m.engine = nil
}

func (m *Model) markDirty() {
	m.redraw()
}
