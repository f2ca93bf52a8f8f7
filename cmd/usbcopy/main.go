package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"usbcopy/internal/app"
	"usbcopy/internal/config"
	"usbcopy/internal/domain"
	appErrors "usbcopy/internal/errors"
	"usbcopy/internal/infra/device"
	"usbcopy/internal/infra/fs"
	"usbcopy/internal/logging"
	"usbcopy/internal/presentation"
	"usbcopy/internal/tui"
)

// simulatedRoot stands in for the device root when simulating without a
// removable drive attached.
const simulatedRoot = "SIMULATED_USB"

var flags config.Flags

var rootCmd = &cobra.Command{
	Use:   "usbcopy",
	Short: "Copy a directory tree onto removable storage, skipping junk",
	Long: `usbcopy mirrors a directory onto the first removable storage device it
finds, pruning directories like node_modules and venv and skipping
configured extensions and file names. Dry-run mode writes a report of
what would be copied instead of touching the device.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flags.Source, "source", "s", "", "Source directory to copy from")
	f.StringVarP(&flags.Target, "target", "t", "", "Destination root (skips removable-device detection)")
	f.BoolVarP(&flags.DryRun, "dry-run", "d", false, "Simulate and write a report instead of copying")
	f.BoolVarP(&flags.Verbose, "verbose", "v", false, "Verbose output")
	f.BoolVarP(&flags.Interactive, "interactive", "i", false, "Interactive progress UI")
	f.StringVar(&flags.Report, "report", "", "Simulation report path (default "+config.DefaultReportPath+")")
	f.StringVar(&flags.ConfigFile, "config", "", "Config file (default ~/.config/usbcopy/config.toml)")
	f.StringVar(&flags.IgnoreDirs, "ignore-dirs", "", "Comma-separated directory names to prune (replaces defaults)")
	f.StringVar(&flags.IgnoreExts, "ignore-exts", "", "Comma-separated name suffixes to skip (replaces defaults)")
	f.StringVar(&flags.IgnoreFiles, "ignore-files", "", "Comma-separated file names to skip (replaces defaults)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	logger := logging.New(os.Stderr, flags.Verbose)
	cfg, err := config.Resolve(flags, logger.Infof)
	if err != nil {
		return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
	}
	logger.Verbose = cfg.Verbose

	filesystem := fs.OSFS{}
	if _, err := filesystem.Stat(cfg.SourceDir); err != nil {
		return appErrors.Wrap(appErrors.NotFound, "stat", cfg.SourceDir, err)
	}

	destRoot, err := resolveDestination(cfg, device.Resolver{}, logger)
	if err != nil {
		return err
	}

	excl := cfg.Exclusions()
	planner := app.Planner{FS: filesystem, Exclude: excl, Logger: logger}

	if cfg.Interactive {
		return runInteractive(ctx, cfg, excl, planner, filesystem, destRoot)
	}

	plan, err := planner.Plan(ctx, cfg.SourceDir, destRoot)
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "plan", cfg.SourceDir, err)
	}

	if cfg.DryRun {
		return writeReport(cfg, excl, plan, logger)
	}

	executor := app.Executor{
		FS:     filesystem,
		Logger: logger,
		OnProgress: func(done, total int, file string) {
			logger.Verbosef("[%d/%d] %s", done, total, file)
		},
	}
	res, err := executor.Execute(ctx, plan)
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "copy", plan.TargetDir, err)
	}

	printer := presentation.Printer{Writer: os.Stdout, Verbose: cfg.Verbose}
	printer.PrintExecution(plan, res)
	return nil
}

// resolveDestination picks the destination root: an explicit --target wins,
// otherwise the first removable device. Without a device, execute mode aborts
// before any file operation; simulate mode falls back to a placeholder root.
func resolveDestination(cfg config.Config, resolver app.DeviceResolver, logger logging.Logger) (string, error) {
	if cfg.TargetDir != "" {
		return cfg.TargetDir, nil
	}
	root, err := resolver.RemovableRoot()
	if err != nil {
		if cfg.DryRun {
			logger.Infof("No removable device found, simulating against %s", simulatedRoot)
			return simulatedRoot, nil
		}
		return "", appErrors.Wrap(appErrors.NoDevice, "resolve", "", err)
	}
	logger.Verbosef("Using removable device at %s", root)
	return root, nil
}

func writeReport(cfg config.Config, excl domain.ExclusionConfig, plan domain.CopyPlan, logger logging.Logger) error {
	report, err := os.Create(cfg.ReportPath)
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "create report", cfg.ReportPath, err)
	}
	defer report.Close()

	printer := presentation.Printer{Writer: report, Verbose: cfg.Verbose}
	printer.PrintSimulation(excl, plan)
	logger.Infof("Simulation report written to %s", cfg.ReportPath)
	return nil
}

func runInteractive(ctx context.Context, cfg config.Config, excl domain.ExclusionConfig, planner app.Planner, filesystem app.FileSystem, destRoot string) error {
	// The TUI owns the terminal, so planner/executor logs are discarded and
	// surfaced through the plan's warnings instead.
	planner.Logger = logging.New(io.Discard, false)

	var program *tea.Program

	buildPlan := func() tea.Msg {
		plan, err := planner.Plan(ctx, cfg.SourceDir, destRoot)
		if err != nil {
			return tui.ErrorMsg{Err: err}
		}
		return tui.PlanReadyMsg{Plan: plan}
	}

	executeCopy := func(plan domain.CopyPlan) tea.Cmd {
		return func() tea.Msg {
			executor := app.Executor{
				FS:     filesystem,
				Logger: logging.New(io.Discard, false),
				OnProgress: func(done, total int, file string) {
					program.Send(tui.CopyProgressMsg{Done: done, Total: total, File: file})
				},
			}
			res, err := executor.Execute(ctx, plan)
			if err != nil {
				return tui.ErrorMsg{Err: err}
			}
			return tui.CopyDoneMsg{Result: res}
		}
	}

	model := tui.NewModel(tui.Config{
		SourceDir:   cfg.SourceDir,
		DestRoot:    destRoot,
		DryRun:      cfg.DryRun,
		Verbose:     cfg.Verbose,
		BuildPlan:   buildPlan,
		ExecuteCopy: executeCopy,
	})
	program = tea.NewProgram(model)

	final, err := program.Run()
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "tui", "", err)
	}

	if m, ok := final.(tui.Model); ok {
		if m.Err != nil {
			return appErrors.Wrap(appErrors.Internal, "run", cfg.SourceDir, m.Err)
		}
		if cfg.DryRun && m.Phase == tui.PhaseDone {
			logger := logging.New(os.Stderr, cfg.Verbose)
			return writeReport(cfg, excl, m.Plan, logger)
		}
	}
	return nil
}
