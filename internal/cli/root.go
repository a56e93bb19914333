// Package cli wires the sectionbar commands.
package cli

import (
	"fmt"
	"io"

	"github.com/pablasso/sectionbar/internal/config"
	"github.com/pablasso/sectionbar/internal/logging"
	"github.com/pablasso/sectionbar/internal/tui"
	"github.com/pablasso/sectionbar/internal/version"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	logLevel    string
	logFile     string
	noAnimation bool
	stepSize    float64

	logCloser io.Closer
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sectionbar",
		Short: "Segmented, selectable progress bar",
		Long: `Sectionbar shows a progress bar split into blocks. Add a block at the
current progress, select the last block to make it pulse, and delete it to
rewind progress to where the block began.`,
		Version:           version.Version,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		PersistentPostRun: closeLogging,
		RunE:              runTUI,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (the TUI discards logs otherwise)")
	cmd.PersistentFlags().BoolVar(&noAnimation, "no-animation", false, "Disable the pulse on the selected block")
	cmd.PersistentFlags().Float64Var(&stepSize, "step", tui.DefaultStep, "Percent moved by each advance/back key press")

	cmd.AddCommand(newDemoCmd(), newScriptCmd(), newVersionCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setupLogging stores a logger on the command context. Interactive commands
// only log when --log-file is given; headless ones log to stderr.
func setupLogging(cmd *cobra.Command, args []string) error {
	var w io.Writer
	if logFile != "" {
		f, err := logging.OpenFile(logFile)
		if err != nil {
			return err
		}
		w = f
		logCloser = f
	} else if cmd.Annotations["headless"] == "true" {
		w = cmd.ErrOrStderr()
	}

	logger, err := logging.New(logLevel, w)
	if err != nil {
		return err
	}
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}

// loadConfig reads --config and applies --no-animation.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if noAnimation {
		off := false
		cfg.SectionAnimation = &off
	}
	return cfg, nil
}

// checkStep rejects a --step outside (0, 100], including NaN.
func checkStep() error {
	if !(stepSize > 0 && stepSize <= 100) {
		return fmt.Errorf("--step must be in (0, 100], got %g", stepSize)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := checkStep(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.From(cmd.Context())
	logger.Info("starting tui", "config", configPath, "animation", cfg.AnimationEnabled())

	if err := tui.Run(
		tui.WithConfig(cfg),
		tui.WithLogger(logger),
		tui.WithStep(stepSize),
	); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			"headless": "true",
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sectionbar %s (commit %s, built %s)\n",
				version.Version, version.CommitSHA, version.BuildDate)
		},
	}
}
