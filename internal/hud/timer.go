package hud

import "time"

// TimerHandle identifies a scheduled one-shot action. Cancel before firing
// guarantees the action never runs; canceling a fired or already-canceled
// handle is a no-op.
type TimerHandle interface {
	Cancel()
}

// TimerService schedules one-shot delayed actions. Callbacks run on the same
// cooperative scheduling context as the caller, never concurrently with
// other controller logic. If cancellation and firing land in the same
// event-loop tick, whichever was issued first in program order wins.
type TimerService interface {
	ScheduleOnce(d time.Duration, fn func()) TimerHandle
}
