package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pablasso/sectionbar/internal/config"
	"github.com/pablasso/sectionbar/internal/demo"
	"github.com/pablasso/sectionbar/internal/display"
	"github.com/pablasso/sectionbar/internal/logging"
	"github.com/pablasso/sectionbar/internal/progress"
	"github.com/pablasso/sectionbar/internal/render"
	"github.com/pablasso/sectionbar/internal/tui/components"
	"github.com/spf13/cobra"
)

var (
	scriptWidth    int
	scriptSections bool
	scriptHold     time.Duration
)

func newScriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script STEP...",
		Short: "Apply steps headlessly and print the resulting bar",
		Long: `Apply a sequence of steps to a fresh bar and print the result.

Steps:
  set=N       set progress to N percent
  advance=N   move progress by N percent (clamped)
  split       add a block at the current progress
  select      select the last block
  remove      delete the last block and rewind progress
  toggle      select the last block, or delete it if already selected
  reset       clear all blocks and progress

Example:
  sectionbar script set=25 split set=60 split select

With --hold the bar stays on screen for the given duration, repainting in
place, so a selected block can be seen pulsing.`,
		Args: cobra.MinimumNArgs(1),
		Annotations: map[string]string{
			"headless": "true",
		},
		RunE: runScript,
	}

	cmd.Flags().IntVar(&scriptWidth, "width", 60, "Bar width in cells")
	cmd.Flags().BoolVar(&scriptSections, "sections", false, "Also list the sections")
	cmd.Flags().DurationVar(&scriptHold, "hold", 0, "Keep repainting the bar for this long after the last step")
	return cmd
}

func runScript(cmd *cobra.Command, args []string) error {
	steps, err := demo.ParseSteps(args)
	if err != nil {
		return err
	}
	if scriptWidth <= 0 {
		return fmt.Errorf("--width must be > 0, got %d", scriptWidth)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.From(cmd.Context())
	if scriptHold > 0 {
		return holdScript(cmd, cfg, steps)
	}

	// Printed once and exited, so the pulse would never tick.
	bar := progress.New(
		progress.WithAnimation(false, cfg.AnimationParams()),
		progress.WithLogger(logger),
	)
	defer bar.Close()

	if err := applySteps(cmd, bar, steps); err != nil {
		return err
	}
	return printBar(cmd.OutOrStdout(), cfg, bar, scriptWidth, scriptSections)
}

// holdScript applies steps and then keeps the bar live on a line display
// until --hold elapses or the command context is cancelled.
func holdScript(cmd *cobra.Command, cfg config.Config, steps []demo.Step) error {
	logger := logging.From(cmd.Context())

	var bar *progress.Model
	disp := display.New(cmd.OutOrStdout(), func() string {
		var b strings.Builder
		_ = printBar(&b, cfg, bar, scriptWidth, scriptSections)
		return strings.TrimRight(b.String(), "\n")
	})
	bar = progress.New(
		progress.WithAnimation(cfg.AnimationEnabled(), cfg.AnimationParams()),
		progress.WithRedraw(disp.Invalidate),
		progress.WithLogger(logger),
	)

	if err := applySteps(cmd, bar, steps); err != nil {
		bar.Close()
		return err
	}

	disp.Start()
	timer := time.NewTimer(scriptHold)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-cmd.Context().Done():
	}

	disp.Stop()
	bar.Close()
	return nil
}

func applySteps(cmd *cobra.Command, bar *progress.Model, steps []demo.Step) error {
	logger := logging.From(cmd.Context())
	for i, step := range steps {
		out, err := demo.Apply(bar, step)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		logger.Debug(out, "step", step.String())
	}
	return nil
}

func printBar(w io.Writer, cfg config.Config, bar *progress.Model, width int, listSections bool) error {
	frame := cfg.Frame(width)
	style := cfg.Style()
	track := frame.Track()
	barTop := frame.Height/2 - style.ProgressHeight/2

	view := components.NewSectionBar(frame.Width, frame.Height).
		WithTrack(track.Start, barTop, track.End(), barTop+style.ProgressHeight).
		View(render.Render(frame, style, bar))

	if _, err := fmt.Fprintln(w, view); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, components.Label(bar.CurrentProgress(), len(bar.Sections()))); err != nil {
		return err
	}
	if listSections {
		for i, sec := range bar.Sections() {
			if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, sec); err != nil {
				return err
			}
		}
	}
	return nil
}
