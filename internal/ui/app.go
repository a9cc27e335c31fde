package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/spinner"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"hudkit/internal/config"
	"hudkit/internal/hud"
	"hudkit/internal/task"
	"hudkit/internal/trace"
)

// App is the demo model: a task dashboard with the shared HUD overlaid while
// a task runs. Running a fast task never flashes the HUD (grace period);
// slow tasks show the spinner, then a lingering done label, then hide with a
// completion callback.
type App struct {
	screen    *Screen
	dashboard *DashboardView
	spinner   *Spinner
	notifier  *Notifier
	runner    task.Runner
	cfg       *config.Config
	logger    *slog.Logger
	tracing   *trace.Exporter

	running     bool
	runningName string
	ticking     bool
	wasVisible  bool
	statusLine  string

	span oteltrace.Span
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp builds the demo model. The HUD controller itself comes from
// hud.Shared, wired up by the caller before the program starts.
func NewApp(cfg *config.Config, runner task.Runner, notifier *Notifier, tracing *trace.Exporter, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	rows := make([]TaskRow, len(cfg.Tasks))
	for i, t := range cfg.Tasks {
		rows[i] = TaskRow{Name: t.Name, Command: t.Command}
	}
	dashboard := NewDashboardView(rows)
	return &App{
		screen:    NewScreen(dashboard),
		dashboard: dashboard,
		spinner:   NewSpinner(""),
		notifier:  notifier,
		runner:    runner,
		cfg:       cfg,
		logger:    logger,
		tracing:   tracing,
	}
}

// Screen returns the hud.Host the app renders into; the caller registers it
// as the process-wide fallback host.
func (a *App) Screen() *Screen { return a.screen }

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.screen.SetSize(msg.Width, msg.Height)

	case invokeMsg:
		// Deferred re-entry from the timer service or a hide completion.
		msg.fn()
		cmds = append(cmds, a.kickSpinner())
		a.trackVisibility()
		return a, tea.Batch(cmds...)

	case spinner.TickMsg:
		cmd := a.spinner.Update(msg)
		if cmd == nil {
			a.ticking = false
		}
		return a, cmd

	case task.DoneMsg:
		return a, a.taskFinished(msg.Result)

	case tea.ResumeMsg:
		a.notifier.NotifyForeground()
		return a, a.kickSpinner()

	case tea.FocusMsg:
		a.notifier.NotifyForeground()
		return a, a.kickSpinner()

	case tea.KeyMsg:
		if cmd, handled := a.handleKey(msg); handled {
			return a, cmd
		}
		if hud.Shared().IsVisible() && !a.surface().InteractionPassthrough() {
			return a, nil // HUD is modal: swallow input to the view beneath
		}
	}

	v, cmd := a.dashboard.Update(msg)
	if d, ok := v.(*DashboardView); ok {
		a.dashboard = d
		a.screen.Base = d
	}
	cmds = append(cmds, cmd)
	a.trackVisibility()
	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *App) View() string {
	base := a.dashboard.View()
	if a.statusLine != "" {
		base += "\n" + Styles.Hint.Render(a.statusLine)
	}
	return a.surface().Render(base)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit, true
	case "enter":
		return a.runSelected(), true
	case "h":
		if hud.Shared().IsVisible() {
			hud.Shared().Hide(true, func(finished bool) {
				a.statusLine = fmt.Sprintf("hud dismissed (finished=%v)", finished)
			})
			a.trackVisibility()
		}
		return nil, true
	}
	return nil, false
}

func (a *App) runSelected() tea.Cmd {
	if a.running {
		return nil
	}
	row := a.dashboard.Selected()
	if row == nil {
		return nil
	}

	a.running = true
	a.runningName = row.Name
	a.dashboard.SetRunning(row.Name)
	a.statusLine = ""

	_, a.span = a.tracing.StartTask(context.Background(), row.Name, row.Command)

	ctrl := hud.Shared()
	a.spinner.Label = fmt.Sprintf("Running %s…", row.Name)
	ctrl.SetContent(a.spinner)
	ctrl.Show(nil) // fallback host: the screen

	a.logger.Info("task started", "task", row.Name)
	a.trackVisibility()
	return tea.Batch(
		a.runner.Run(context.Background(), row.Name, row.Command),
		a.kickSpinner(), // starts immediately when the grace period is zero
	)
}

func (a *App) taskFinished(res task.Result) tea.Cmd {
	a.running = false
	a.runningName = ""
	a.dashboard.SetResult(res)

	if a.span != nil {
		if res.Err != nil {
			a.span.SetStatus(codes.Error, res.Err.Error())
		}
		a.span.End()
		a.span = nil
	}
	a.logger.Info("task finished",
		"task", res.Name, "status", res.Status, "took", res.Duration())

	ctrl := hud.Shared()
	linger := a.cfg.HUD.LingerDuration()
	name := res.Name

	if !ctrl.IsVisible() || linger == 0 {
		// Still inside the grace window (or no linger configured): hide
		// right away. For fast tasks the HUD never appeared at all.
		ctrl.Hide(false, nil)
		a.trackVisibility()
		return nil
	}

	// Swap the spinner for a done label and keep it up briefly.
	a.spinner.StopAnimating()
	text := fmt.Sprintf("%s finished in %s", name, res.Duration().Round(time.Millisecond))
	if res.Err != nil {
		text = fmt.Sprintf("%s failed: %v", name, res.Err)
	}
	ctrl.SetContent(Label(text))
	ctrl.HideAfter(linger, func(finished bool) {
		a.statusLine = fmt.Sprintf("%s result dismissed (finished=%v)", name, finished)
	})
	a.trackVisibility()
	return nil
}

// kickSpinner starts the tick loop when the spinner is animating and no loop
// is already running; issuing two loops would double the frame rate.
func (a *App) kickSpinner() tea.Cmd {
	if a.spinner.IsAnimating() && !a.ticking {
		a.ticking = true
		return a.spinner.Tick()
	}
	return nil
}

// trackVisibility records HUD show/hide transitions on the active span.
func (a *App) trackVisibility() {
	visible := hud.Shared().IsVisible()
	if visible == a.wasVisible {
		return
	}
	a.wasVisible = visible
	if a.span == nil {
		return
	}
	if visible {
		a.span.AddEvent("hud shown")
	} else {
		a.span.AddEvent("hud hidden")
	}
}

func (a *App) surface() *OverlaySurface {
	return hud.Shared().Surface().(*OverlaySurface)
}
