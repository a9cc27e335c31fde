package hud

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualTimers is a TimerService fired explicitly by the test, standing in
// for the cooperative event loop.
type manualTimers struct {
	scheduled []*manualTimer
}

type manualTimer struct {
	delay    time.Duration
	fn       func()
	canceled bool
	fired    bool
}

func (t *manualTimer) Cancel() { t.canceled = true }

func (t *manualTimer) fire() {
	if t.canceled || t.fired {
		return
	}
	t.fired = true
	t.fn()
}

func (m *manualTimers) ScheduleOnce(d time.Duration, fn func()) TimerHandle {
	t := &manualTimer{delay: d, fn: fn}
	m.scheduled = append(m.scheduled, t)
	return t
}

func (m *manualTimers) last() *manualTimer {
	if len(m.scheduled) == 0 {
		return nil
	}
	return m.scheduled[len(m.scheduled)-1]
}

func (m *manualTimers) fireAll() {
	for _, t := range m.scheduled {
		t.fire()
	}
}

// fakeSurface records every surface operation.
type fakeSurface struct {
	host        Host
	attaches    int // effective attaches; re-attach is a no-op per contract
	visible     bool
	dimmed      bool
	passthrough bool
	leading     int
	trailing    int
	effect      Effect
	content     Content
	shows       int
	hides       int
}

func (s *fakeSurface) Attach(h Host) {
	if s.host != nil {
		return
	}
	s.host = h
	s.attaches++
}

func (s *fakeSurface) SetBackgroundDimming(enabled, animated bool) { s.dimmed = enabled }
func (s *fakeSurface) SetMargins(leading, trailing int)            { s.leading, s.trailing = leading, trailing }
func (s *fakeSurface) SetInteractionPassthrough(enabled bool)      { s.passthrough = enabled }
func (s *fakeSurface) ShowAnimated()                               { s.visible = true; s.shows++ }
func (s *fakeSurface) Content() Content                            { return s.content }
func (s *fakeSurface) SetContent(v Content)                        { s.content = v }
func (s *fakeSurface) Effect() Effect                              { return s.effect }
func (s *fakeSurface) SetEffect(e Effect)                          { s.effect = e }
func (s *fakeSurface) IsVisible() bool                             { return s.visible }

func (s *fakeSurface) HideAnimated(animated bool, completion func(finished bool)) {
	s.visible = false
	s.hides++
	if completion != nil {
		completion(true)
	}
}

type fakeHost struct{}

func (fakeHost) Bounds() (int, int) { return 80, 24 }

// animContent implements both capabilities.
type animContent struct {
	starts int
	stops  int
}

func (c *animContent) StartAnimating() { c.starts++ }
func (c *animContent) StopAnimating()  { c.stops++ }

// startOnlyContent implements only the required half of the capability.
type startOnlyContent struct {
	starts int
}

func (c *startOnlyContent) StartAnimating() { c.starts++ }

func newTestController() (*Controller, *fakeSurface, *manualTimers) {
	surface := &fakeSurface{}
	timers := &manualTimers{}
	c := New(surface, timers)
	c.SetDefaultHost(fakeHost{})
	return c, surface, timers
}

func TestShow_ZeroGraceShowsSynchronously(t *testing.T) {
	c, surface, timers := newTestController()

	c.Show(nil)

	assert.True(t, c.IsVisible(), "zero grace must show without a timer")
	assert.Empty(t, timers.scheduled, "no timer involved for zero grace")
	assert.Equal(t, 1, surface.attaches)
	assert.True(t, surface.dimmed, "dims background by default")
}

func TestShow_GracePeriodDefersDisplay(t *testing.T) {
	c, surface, timers := newTestController()
	c.GracePeriod = 500 * time.Millisecond

	c.Show(nil)

	assert.False(t, c.IsVisible(), "surface must stay hidden during grace")
	require.Len(t, timers.scheduled, 1)
	assert.Equal(t, 500*time.Millisecond, timers.last().delay)

	timers.last().fire()
	assert.True(t, c.IsVisible(), "grace expiry shows the HUD")
	assert.Equal(t, 1, surface.shows)
}

func TestShow_HideBeforeGraceExpiryNeverShows(t *testing.T) {
	// grace = 0.5s, show, hide at t=0.2s: the surface remains hidden for
	// all t and the grace timer is invalidated.
	c, surface, timers := newTestController()
	c.GracePeriod = 500 * time.Millisecond

	c.Show(nil)
	c.Hide(true, nil)

	require.Len(t, timers.scheduled, 1)
	assert.True(t, timers.last().canceled, "hide must invalidate the grace timer")

	timers.fireAll() // even a buggy service firing anyway must not show
	assert.False(t, c.IsVisible(), "no flicker for fast tasks")
	assert.Zero(t, surface.shows)
}

func TestShow_TwiceWhileVisibleIsIdempotent(t *testing.T) {
	c, surface, _ := newTestController()

	c.Show(nil)
	c.Show(nil)

	assert.Equal(t, 1, surface.attaches, "attach must be a no-op the second time")
	assert.True(t, c.IsVisible())
}

func TestShow_SecondShowRestartsGraceWindow(t *testing.T) {
	c, surface, timers := newTestController()
	c.GracePeriod = 300 * time.Millisecond

	c.Show(nil)
	first := timers.last()
	c.Show(nil)
	second := timers.last()

	require.NotSame(t, first, second, "a fresh timer must be scheduled")
	assert.True(t, first.canceled, "previous grace timer must be invalidated")

	first.fire()
	assert.False(t, c.IsVisible(), "stale grace timer must not show")
	second.fire()
	assert.True(t, c.IsVisible())
	assert.Equal(t, 1, surface.shows)
}

func TestShow_NoResolvableHostPanics(t *testing.T) {
	surface := &fakeSurface{}
	c := New(surface, &manualTimers{})

	prev := FallbackHost()
	SetFallbackHost(nil)
	defer SetFallbackHost(prev)

	assert.Panics(t, func() { c.Show(nil) })
}

func TestShow_FallsBackToProcessWideHost(t *testing.T) {
	surface := &fakeSurface{}
	c := New(surface, &manualTimers{})

	prev := FallbackHost()
	SetFallbackHost(fakeHost{})
	defer SetFallbackHost(prev)

	c.Show(nil)
	assert.True(t, c.IsVisible())
}

func TestShow_AppliesConfigurationToSurface(t *testing.T) {
	c, surface, _ := newTestController()
	c.DimsBackground = false
	c.LeadingMargin = 4
	c.TrailingMargin = 2
	c.InteractionPassthrough = true

	c.Show(nil)

	assert.False(t, surface.dimmed)
	assert.Equal(t, 4, surface.leading)
	assert.Equal(t, 2, surface.trailing)
	assert.True(t, surface.passthrough)
}

func TestShow_StartsContentAnimationWhenVisible(t *testing.T) {
	c, surface, _ := newTestController()
	content := &animContent{}
	surface.content = content

	c.Show(nil)

	assert.Equal(t, 1, content.starts, "animatable content starts after show")
}

func TestHide_StopsAnimationExactlyOnce(t *testing.T) {
	c, surface, _ := newTestController()
	content := &animContent{}
	surface.content = content

	c.Show(nil)
	c.Hide(true, nil)

	assert.Equal(t, 1, content.stops)
	assert.False(t, c.IsVisible())
}

func TestHide_ContentWithoutStopCapabilityIsFine(t *testing.T) {
	c, surface, _ := newTestController()
	content := &startOnlyContent{}
	surface.content = content

	c.Show(nil)
	assert.NotPanics(t, func() { c.Hide(true, nil) })
	assert.False(t, c.IsVisible())
}

func TestHide_InvokesCompletion(t *testing.T) {
	c, _, _ := newTestController()
	c.Show(nil)

	var got []bool
	c.Hide(true, func(finished bool) { got = append(got, finished) })

	require.Len(t, got, 1, "completion fires exactly once")
	assert.True(t, got[0])
}

func TestHideAfter_HidesAndInvokesCompletion(t *testing.T) {
	c, _, timers := newTestController()

	c.Show(nil)
	require.True(t, c.IsVisible())

	var calls []bool
	c.HideAfter(time.Second, func(finished bool) { calls = append(calls, finished) })
	assert.True(t, c.IsVisible(), "nothing happens until the delay elapses")

	timers.last().fire()
	assert.False(t, c.IsVisible())
	require.Len(t, calls, 1, "completion invoked exactly once")
	assert.True(t, calls[0])
}

func TestHideAfter_LaterCallSupersedesEarlier(t *testing.T) {
	c, _, timers := newTestController()
	c.Show(nil)

	var first, second int
	c.HideAfter(time.Second, func(bool) { first++ })
	firstTimer := timers.last()
	c.HideAfter(2*time.Second, func(bool) { second++ })

	assert.True(t, firstTimer.canceled, "earlier delayed hide must be invalidated")

	timers.fireAll()
	assert.Zero(t, first, "superseded completion must never fire")
	assert.Equal(t, 1, second)
	assert.False(t, c.IsVisible())
}

func TestHideAfter_SupersededCompletionIsNotRetained(t *testing.T) {
	c, _, _ := newTestController()
	c.Show(nil)

	for i := 0; i < 100; i++ {
		c.HideAfter(time.Second, func(bool) {})
	}
	assert.Len(t, c.hideCompletions, 1,
		"superseded entries must be removed, not leaked")
}

func TestHideAfter_NoCompletionIsNotAnError(t *testing.T) {
	c, _, timers := newTestController()
	c.Show(nil)

	c.HideAfter(time.Second, nil)
	assert.NotPanics(t, func() { timers.last().fire() })
	assert.False(t, c.IsVisible())
	assert.Empty(t, c.hideCompletions)
}

func TestHide_CancelsPendingDelayedHide(t *testing.T) {
	c, _, timers := newTestController()
	c.Show(nil)

	var delayed int
	c.HideAfter(time.Second, func(bool) { delayed++ })
	c.Hide(true, nil)

	timers.fireAll()
	assert.Zero(t, delayed, "explicit hide supersedes the delayed one")
	assert.Empty(t, c.hideCompletions)
}

func TestSetContent_ReplacesAndReevaluatesAnimation(t *testing.T) {
	c, surface, _ := newTestController()

	hidden := &animContent{}
	c.SetContent(hidden)
	assert.Zero(t, hidden.starts, "no animation while hidden")

	c.Show(nil)
	visible := &animContent{}
	c.SetContent(visible)
	assert.Same(t, visible, surface.content)
	assert.Equal(t, 1, visible.starts, "animation starts once visible")
}

func TestForegroundReentry_RestartsAnimation(t *testing.T) {
	c, surface, _ := newTestController()
	content := &animContent{}
	surface.content = content

	events := &recordingLifecycle{}
	c.ObserveLifecycle(events)
	c.Show(nil)
	require.Equal(t, 1, content.starts)

	events.notify()
	assert.Equal(t, 2, content.starts, "foreground reentry re-asserts animation")
}

func TestClose_ReleasesLifecycleSubscription(t *testing.T) {
	c, _, _ := newTestController()
	events := &recordingLifecycle{}

	c.ObserveLifecycle(events)
	require.Equal(t, 1, events.subscribed)

	c.Close()
	assert.Equal(t, 1, events.canceled, "Close must unsubscribe")

	events.notify() // must not reach the controller
}

func TestControllers_AreIndependent(t *testing.T) {
	a, _, _ := newTestController()
	b, _, _ := newTestController()

	a.Show(nil)

	assert.True(t, a.IsVisible())
	assert.False(t, b.IsVisible(), "showing one controller must not affect another")
}

// recordingLifecycle tracks subscriptions and lets the test raise the event.
type recordingLifecycle struct {
	fn         func()
	subscribed int
	canceled   int
}

func (l *recordingLifecycle) SubscribeForeground(fn func()) func() {
	l.fn = fn
	l.subscribed++
	return func() {
		l.canceled++
		l.fn = nil
	}
}

func (l *recordingLifecycle) notify() {
	if l.fn != nil {
		l.fn()
	}
}
