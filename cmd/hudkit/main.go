// Package main provides the CLI entrypoint for hudkit.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hudkit/internal/config"
	"hudkit/internal/hud"
	"hudkit/internal/task"
	"hudkit/internal/timer"
	"hudkit/internal/trace"
	"hudkit/internal/ui"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
)

var globalOpts struct {
	configPath string
	logFile    string
	verbose    bool
	grace      time.Duration
	noDim      bool
}

var rootCmd = &cobra.Command{
	Use:   "hudkit",
	Short: "Loading-HUD overlay demo for terminal applications",
	Long: `hudkit demonstrates a modal loading/status overlay for Bubble Tea
applications: grace periods that keep fast tasks from flashing the HUD,
background dimming, delayed auto-hide, and completion callbacks.

Select a task and press enter; the HUD appears only if the task outlives
the configured grace period.`,
	Version: fmt.Sprintf("%s (commit: %s)", version, commit),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalOpts.configPath, "config", "c", "", "config file (default ~/.config/hudkit/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.logFile, "log-file", "", "write logs to this file (stderr is unusable while the TUI runs)")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().DurationVar(&globalOpts.grace, "grace", -1, "override hud.grace_period")
	rootCmd.Flags().BoolVar(&globalOpts.noDim, "no-dim", false, "disable background dimming")
}

func run(ctx context.Context) error {
	logger, closeLog, err := setupLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfgPath := globalOpts.configPath
	if cfgPath == "" {
		if cfgPath, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if globalOpts.grace >= 0 {
		cfg.HUD.GracePeriod = globalOpts.grace.String()
	}
	if globalOpts.noDim {
		cfg.HUD.DimsBackground = false
	}

	tracing, err := trace.NewExporter(ctx)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	if tracing != nil {
		defer func() { _ = tracing.Shutdown(context.Background()) }()
	}

	// Presentation wiring: one dispatcher marshals timer callbacks and hide
	// completions onto the program goroutine.
	dispatcher := ui.NewDispatcher()
	timers := timer.NewService(dispatcher.Call)
	surface := ui.NewOverlaySurface(dispatcher.Call)
	notifier := ui.NewNotifier()

	hud.SetSharedProvider(func() *hud.Controller {
		c := hud.New(surface, timers)
		c.SetLogger(logger)
		cfg.HUD.Apply(c)
		c.ObserveLifecycle(notifier)
		return c
	})

	app := ui.NewApp(cfg, task.NewPTYRunner(), notifier, tracing, logger)
	hud.SetFallbackHost(app.Screen())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithReportFocus())
	dispatcher.Bind(p)

	// Hot reload: HUD tuning changes land on the program goroutine via the
	// dispatcher, like every other controller entry.
	if watcher, werr := config.NewWatcher(cfgPath, logger); werr == nil {
		if werr = watcher.Start(func(next *config.Config) {
			dispatcher.Call(func() { next.HUD.Apply(hud.Shared()) })
		}); werr != nil {
			logger.Warn("config watch disabled", "error", werr)
		}
		defer watcher.Stop()
	} else {
		logger.Warn("config watch disabled", "error", werr)
	}

	defer hud.Shared().Close()
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// setupLogger routes slog to the --log-file, or discards everything so log
// lines never corrupt the TUI.
func setupLogger() (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if globalOpts.logFile != "" {
		f, err := os.OpenFile(globalOpts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeLog = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closeLog, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
