package ui

import "hudkit/internal/hud"

// Notifier fans process-lifecycle signals out to subscribers. The app model
// feeds it from tea.ResumeMsg and tea.FocusMsg, so controllers can re-assert
// spinner animation after the program was suspended or unfocused.
type Notifier struct {
	nextID int
	subs   map[int]func()
}

var _ hud.LifecycleEvents = (*Notifier)(nil)

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func())}
}

// SubscribeForeground implements hud.LifecycleEvents. The returned cancel
// removes the subscription; calling it twice is a no-op.
func (n *Notifier) SubscribeForeground(fn func()) (cancel func()) {
	n.nextID++
	id := n.nextID
	n.subs[id] = fn
	return func() { delete(n.subs, id) }
}

// NotifyForeground invokes every live subscriber.
func (n *Notifier) NotifyForeground() {
	for _, fn := range n.subs {
		fn()
	}
}

// Len reports the number of live subscriptions.
func (n *Notifier) Len() int { return len(n.subs) }
