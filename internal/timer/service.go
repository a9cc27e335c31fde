// Package timer provides the one-shot timer service consumed by the HUD
// controller. Timers fire on the wall clock but their callbacks are
// marshaled onto the UI context through a Dispatch, so they behave as
// deferred re-entries rather than concurrent calls.
package timer

import (
	"sync"
	"time"

	"hudkit/internal/hud"
)

// Dispatch posts a function onto the UI event-loop context. The Bubble Tea
// backend sends it into the program as a message; tests can run it inline.
type Dispatch func(func())

// Service schedules one-shot cancelable actions.
type Service struct {
	dispatch Dispatch
}

// Ensure Service implements the controller's contract.
var _ hud.TimerService = (*Service)(nil)

// NewService creates a timer service. A nil dispatch runs callbacks inline
// on the timer goroutine; real programs should always pass one.
func NewService(dispatch Dispatch) *Service {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Service{dispatch: dispatch}
}

// ScheduleOnce runs fn once after d on the dispatch context. The returned
// handle cancels the action; cancellation before firing guarantees fn never
// runs, even if the underlying timer already expired, because the validity
// check happens on the dispatch context where Cancel also runs.
func (s *Service) ScheduleOnce(d time.Duration, fn func()) hud.TimerHandle {
	h := &handle{fn: fn}
	h.timer = time.AfterFunc(d, func() {
		s.dispatch(h.fire)
	})
	return h
}

type handle struct {
	mu    sync.Mutex
	timer *time.Timer
	fn    func()
	done  bool // fired or canceled; either way the action is spent
}

// Cancel invalidates the handle. Safe to call on a fired or already-canceled
// timer.
func (h *handle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		return
	}
	h.done = true
	h.timer.Stop()
}

func (h *handle) fire() {
	h.mu.Lock()
	if h.done {
		h.mu.Unlock()
		return
	}
	h.done = true
	fn := h.fn
	h.mu.Unlock()
	fn()
}
