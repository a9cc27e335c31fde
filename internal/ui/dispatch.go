package ui

import tea "github.com/charmbracelet/bubbletea"

// invokeMsg carries a deferred controller re-entry (a timer callback or a
// hide completion) into the program. App.Update executes it, so the function
// runs on the program goroutine like every other message handler.
type invokeMsg struct {
	fn func()
}

// Dispatcher posts functions into a running Bubble Tea program. It is the
// "post to the UI thread" primitive the timer service and the overlay
// surface marshal through. Before Bind (program setup, tests) functions run
// inline.
type Dispatcher struct {
	send func(tea.Msg)
}

// NewDispatcher creates an unbound dispatcher.
func NewDispatcher() *Dispatcher { return &Dispatcher{} }

// Bind connects the dispatcher to a program. Must happen before the program
// starts processing timer-driven messages.
func (d *Dispatcher) Bind(p *tea.Program) { d.send = p.Send }

// Call runs fn on the program goroutine, or inline when unbound.
func (d *Dispatcher) Call(fn func()) {
	if d.send == nil {
		fn()
		return
	}
	d.send(invokeMsg{fn: fn})
}
