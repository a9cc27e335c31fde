package hud

import (
	"log/slog"
	"time"
)

// CompletionFunc is invoked after a hide transition completes. finished is
// true when the transition ran to the end.
type CompletionFunc func(finished bool)

// Controller owns one Surface and orchestrates grace-period and delayed-hide
// behavior. Construct one per overlay, or use Shared for the process-wide
// instance. All methods must be called on the UI event-loop context.
type Controller struct {
	// GracePeriod delays the first showing of the HUD so fast-completing
	// tasks never flash it. Zero shows immediately.
	GracePeriod time.Duration

	// DimsBackground dims the view beneath the HUD while it is up.
	DimsBackground bool

	// LeadingMargin and TrailingMargin offset the HUD box horizontally.
	LeadingMargin  int
	TrailingMargin int

	// InteractionPassthrough lets input reach the view beneath the HUD.
	InteractionPassthrough bool

	surface Surface
	timers  TimerService
	logger  *slog.Logger

	// Default target for Show(nil); falls back to the process-wide host.
	defaultHost Host

	// At most one of each timer is active at any time. A superseded handle
	// is canceled before the replacement is scheduled.
	graceTimer TimerHandle
	hideTimer  TimerHandle

	// Delayed-hide completions keyed by their timer handle. The entry is
	// removed when the timer fires or when a later delayed hide (or an
	// explicit Hide) supersedes it, so canceled timers leave nothing behind.
	hideCompletions map[TimerHandle]CompletionFunc

	unsubscribe func()
}

// New creates a controller presenting on surface, scheduling through timers.
// DimsBackground defaults to true; everything else to its zero value.
func New(surface Surface, timers TimerService) *Controller {
	return &Controller{
		DimsBackground:  true,
		surface:         surface,
		timers:          timers,
		logger:          slog.Default(),
		hideCompletions: make(map[TimerHandle]CompletionFunc),
	}
}

// SetLogger replaces the controller's logger (slog.Default otherwise).
func (c *Controller) SetLogger(l *slog.Logger) {
	if l != nil {
		c.logger = l
	}
}

// SetDefaultHost sets the target used when Show is called with a nil host.
func (c *Controller) SetDefaultHost(h Host) { c.defaultHost = h }

// Surface returns the presentable surface the controller owns.
func (c *Controller) Surface() Surface { return c.surface }

// Show attaches the surface to the target host and makes the HUD visible.
// A nil host falls back to the controller default, then the process-wide
// fallback host; resolving none is a precondition violation and panics.
// With a positive GracePeriod the HUD appears only after the grace timer
// expires, so a Hide issued in between means it never shows at all.
func (c *Controller) Show(on Host) {
	target := c.resolveHost(on)
	if target == nil {
		panic("hud: Show called with no resolvable host")
	}

	c.surface.Attach(target)
	c.surface.SetMargins(c.LeadingMargin, c.TrailingMargin)
	c.surface.SetInteractionPassthrough(c.InteractionPassthrough)
	if c.DimsBackground {
		c.surface.SetBackgroundDimming(true, true)
	}

	if c.GracePeriod > 0 {
		c.logger.Debug("hud show deferred", "grace", c.GracePeriod)
		c.restartGraceTimer()
		return
	}
	c.showNow()
}

// IsVisible reports whether the surface is currently visible.
func (c *Controller) IsVisible() bool { return c.surface.IsVisible() }

// Content returns the object displayed inside the HUD.
func (c *Controller) Content() Content { return c.surface.Content() }

// SetContent replaces the displayed content and immediately re-evaluates
// whether to start its animation, under the same visibility-gated rule as a
// show.
func (c *Controller) SetContent(v Content) {
	c.surface.SetContent(v)
	c.startContentAnimation()
}

// Hide cancels any pending grace or delayed-hide timer, stops the content
// animation, and runs the hide transition. completion (optional) fires after
// the transition. Hiding before a grace timer expires leaves the surface
// untouched: it was never shown, so there is nothing to animate away.
func (c *Controller) Hide(animated bool, completion CompletionFunc) {
	c.cancelGrace()
	c.cancelDelayedHide()
	c.hideNow(animated, completion)
}

// HideAfter schedules a hide in delay from now. A later HideAfter or an
// explicit Hide supersedes it: the earlier timer is canceled and its
// completion never fires.
func (c *Controller) HideAfter(delay time.Duration, completion CompletionFunc) {
	c.cancelDelayedHide()

	var h TimerHandle
	h = c.timers.ScheduleOnce(delay, func() {
		cb := c.hideCompletions[h]
		delete(c.hideCompletions, h)
		if h != c.hideTimer {
			// Superseded between scheduling and firing; the timer service
			// should have prevented this, but a stale fire must never hide.
			return
		}
		c.hideTimer = nil
		c.cancelGrace()
		c.hideNow(true, cb)
	})
	c.hideTimer = h
	if completion != nil {
		c.hideCompletions[h] = completion
	}
	c.logger.Debug("hud hide scheduled", "delay", delay)
}

// ObserveLifecycle subscribes the controller to foreground-reentry events so
// it can re-assert the content animation: render-driven spinners freeze while
// the application is backgrounded and need an explicit restart. Any earlier
// subscription is released first.
func (c *Controller) ObserveLifecycle(events LifecycleEvents) {
	c.releaseLifecycle()
	c.unsubscribe = events.SubscribeForeground(c.foregroundResumed)
}

// Close cancels pending timers and releases the lifecycle subscription. It
// must be called before dropping a controller that observes lifecycle
// events; otherwise the event source would call into a dead controller.
func (c *Controller) Close() {
	c.cancelGrace()
	c.cancelDelayedHide()
	c.releaseLifecycle()
}

func (c *Controller) resolveHost(on Host) Host {
	if on != nil {
		return on
	}
	if c.defaultHost != nil {
		return c.defaultHost
	}
	return FallbackHost()
}

// restartGraceTimer supersedes any pending grace timer with a fresh one; a
// second Show restarts the grace window rather than coalescing into it.
func (c *Controller) restartGraceTimer() {
	c.cancelGrace()
	var h TimerHandle
	h = c.timers.ScheduleOnce(c.GracePeriod, func() {
		if h != c.graceTimer {
			return // stale fire, never show
		}
		c.graceTimer = nil
		c.showNow()
	})
	c.graceTimer = h
}

func (c *Controller) cancelGrace() {
	if c.graceTimer == nil {
		return
	}
	c.graceTimer.Cancel()
	c.graceTimer = nil
}

func (c *Controller) cancelDelayedHide() {
	if c.hideTimer == nil {
		return
	}
	c.hideTimer.Cancel()
	delete(c.hideCompletions, c.hideTimer)
	c.hideTimer = nil
}

func (c *Controller) showNow() {
	c.cancelGrace()
	c.surface.ShowAnimated()
	c.logger.Debug("hud shown")
	c.startContentAnimation()
}

func (c *Controller) hideNow(animated bool, completion CompletionFunc) {
	// Stop unconditionally: the content should stop animating even if the
	// hide lands mid-transition or before the surface ever became visible.
	if s, ok := c.surface.Content().(AnimationStopper); ok {
		s.StopAnimating()
	}
	c.surface.HideAnimated(animated, completion)
	c.logger.Debug("hud hidden", "animated", animated)
}

// startContentAnimation signals the content to animate, gated on the surface
// actually being visible after the show call.
func (c *Controller) startContentAnimation() {
	if a, ok := c.surface.Content().(Animatable); ok && c.surface.IsVisible() {
		a.StartAnimating()
	}
}

func (c *Controller) foregroundResumed() {
	if a, ok := c.surface.Content().(Animatable); ok {
		a.StartAnimating()
	}
}

func (c *Controller) releaseLifecycle() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}
