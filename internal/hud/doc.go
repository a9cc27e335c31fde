// Package hud orchestrates when a modal loading/status overlay becomes
// visible and which completion callback fires when it goes away.
//
// Core abstractions:
//   - Controller: the presentation state machine (grace period, show/hide
//     lifecycle, delayed hide with supersession)
//   - Surface: the presentable view collaborator (attach, dim, show/hide)
//   - Host: what a Surface attaches to, with a process-wide fallback
//   - TimerService: one-shot cancelable timers on the UI context
//   - Animatable / AnimationStopper: optional content animation capabilities
//   - LifecycleEvents: foreground-reentry subscription
//
// Everything in this package follows a single-threaded cooperative model:
// all controller entry points run on the UI event-loop context, and timer
// callbacks are deferred re-entries dispatched onto that same context.
package hud
