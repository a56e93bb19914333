package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/pablasso/sectionbar/internal/config"
	"github.com/pablasso/sectionbar/internal/demo"
	"github.com/pablasso/sectionbar/internal/logging"
	"github.com/pablasso/sectionbar/internal/progress"
	"github.com/pablasso/sectionbar/internal/render"
	"github.com/pablasso/sectionbar/internal/tui/components"
	"github.com/pablasso/sectionbar/internal/tui/msgs"
	"github.com/pablasso/sectionbar/internal/tui/styles"
)

const (
	// DefaultStep is how far one advance/back key press moves progress.
	DefaultStep = 15.0

	// MinTerminalWidth is the narrowest terminal the bar is drawn in.
	MinTerminalWidth = 20
	// MinTerminalHeight leaves room for title, bar, label, and status.
	MinTerminalHeight = 8

	fallbackWidth = 80
)

// Model is the Bubble Tea model hosting one progress bar.
type Model struct {
	bar    *progress.Model
	cfg    config.Config
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	redraw chan struct{}
	step   float64

	width  int
	height int

	status   string
	errorMsg string
	demoDone bool
}

// Run starts the TUI application.
func Run(opts ...Option) error {
	o := resolveOptions(opts)
	m := newModel(o)
	defer m.bar.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())

	if o.demo != nil {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go demo.NewPlayback(*o.demo).Run(ctx, p)
	}

	_, err := p.Run()
	return err
}

func resolveOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newModel(o options) Model {
	logger := o.logger
	if logger == nil {
		logger = logging.Discard()
	}

	redraw := make(chan struct{}, 1)
	signal := func() {
		select {
		case redraw <- struct{}{}:
		default:
		}
	}

	barOpts := []progress.Option{
		progress.WithAnimation(o.config.AnimationEnabled(), o.config.AnimationParams()),
		progress.WithRedraw(signal),
		progress.WithLogger(logger),
	}
	if o.scheduler != nil {
		barOpts = append(barOpts, progress.WithScheduler(o.scheduler))
	}

	return Model{
		bar:    progress.New(barOpts...),
		cfg:    o.config,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		redraw: redraw,
		step:   o.step,
		status: "ready",
	}
}

// waitForRedraw blocks until the model or its pulse asks for a repaint.
func waitForRedraw(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return msgs.RedrawMsg{}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForRedraw(m.redraw)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case msgs.RedrawMsg:
		return m, waitForRedraw(m.redraw)

	case demo.StepMsg:
		m.apply(msg.Step)
		return m, nil

	case demo.DoneMsg:
		m.demoDone = true
		m.status = "demo finished"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.bar.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Advance):
		m.apply(demo.Step{Op: demo.OpAdvance, Value: m.step})
	case key.Matches(msg, m.keys.Back):
		m.apply(demo.Step{Op: demo.OpAdvance, Value: -m.step})
	case key.Matches(msg, m.keys.Split):
		m.apply(demo.Step{Op: demo.OpSplit})
	case key.Matches(msg, m.keys.Select):
		m.apply(demo.Step{Op: demo.OpSelect})
	case key.Matches(msg, m.keys.Toggle):
		m.apply(demo.Step{Op: demo.OpToggle})
	case key.Matches(msg, m.keys.Remove):
		m.apply(demo.Step{Op: demo.OpRemove})
	case key.Matches(msg, m.keys.Reset):
		m.apply(demo.Step{Op: demo.OpReset})
	}
	return m, nil
}

// apply runs a step and records the outcome for the status line.
func (m *Model) apply(step demo.Step) {
	out, err := demo.Apply(m.bar, step)
	if err != nil {
		m.errorMsg = describeError(err)
		m.logger.Warn("operation rejected", "step", step.String(), "err", err)
		return
	}
	m.errorMsg = ""
	m.status = out
	m.logger.Debug("operation applied", "step", step.String(), "percent", m.bar.CurrentProgress())
}

func describeError(err error) string {
	switch {
	case errors.Is(err, progress.ErrOrderingViolation):
		return "Progress has moved past the last block. Add a block first."
	case errors.Is(err, progress.ErrEmptyStore):
		return "No blocks yet. Add a block first."
	case errors.Is(err, progress.ErrRange):
		return "Progress must stay between 0% and 100%."
	default:
		return err.Error()
	}
}

// Frame returns the render surface for the current terminal width.
func (m Model) Frame() render.Frame {
	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}
	return m.cfg.Frame(width)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < MinTerminalWidth || m.height < MinTerminalHeight) {
		return styles.ErrorStyle.Render("Terminal too small")
	}

	frame := m.Frame()
	style := m.cfg.Style()
	fills := render.Render(frame, style, m.bar)

	track := frame.Track()
	barTop := frame.Height/2 - style.ProgressHeight/2
	bar := components.NewSectionBar(frame.Width, frame.Height).
		WithTrack(track.Start, barTop, track.End(), barTop+style.ProgressHeight)

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Section Progress"))
	b.WriteString("\n")
	b.WriteString(bar.View(fills))
	b.WriteString("\n\n")

	label := components.Label(m.bar.CurrentProgress(), len(m.bar.Sections()))
	b.WriteString(lipgloss.NewStyle().PaddingLeft(frame.PaddingLeft).Render(styles.LabelStyle.Render(label)))
	b.WriteString("\n")

	if m.errorMsg != "" {
		b.WriteString(styles.ErrorStyle.Render(m.errorMsg))
		b.WriteString("\n")
	}

	items := []string{}
	if _, animating := m.bar.AnimationStep(); animating {
		items = append(items, "pulsing")
	}
	if m.demoDone {
		items = append(items, "demo")
	}
	b.WriteString(components.NewStatusBar().Render(frame.Width, m.status, items))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}
