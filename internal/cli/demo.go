package cli

import (
	"fmt"

	"github.com/pablasso/sectionbar/internal/demo"
	"github.com/pablasso/sectionbar/internal/logging"
	"github.com/pablasso/sectionbar/internal/tui"
	"github.com/spf13/cobra"
)

var (
	demoSpeed string
	demoLoop  bool
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the TUI with scripted playback",
		Long: `Launch the TUI and replay a scripted walk through every operation:
advancing, adding blocks, selecting and deleting the last block, and reset.

Speeds:
  fast     250ms per step
  normal   800ms per step (default)
  slow     2s per step`,
		Args: cobra.NoArgs,
		RunE: runDemo,
	}

	cmd.Flags().StringVar(&demoSpeed, "speed", string(demo.SpeedNormal), "Playback speed: fast, normal, slow")
	cmd.Flags().BoolVar(&demoLoop, "loop", false, "Repeat the scenario until quit")
	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	speed, err := demo.ParseSpeed(demoSpeed)
	if err != nil {
		return err
	}
	if err := checkStep(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.From(cmd.Context())
	logger.Info("starting demo", "speed", speed, "loop", demoLoop)

	if err := tui.Run(
		tui.WithConfig(cfg),
		tui.WithLogger(logger),
		tui.WithStep(stepSize),
		tui.WithDemoMode(demo.NewConfig(speed, demoLoop)),
	); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
