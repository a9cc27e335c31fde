package hud

// LifecycleEvents delivers process-wide "entered foreground" signals.
// Subscribe returns a cancel function; holders must call it when done so the
// event source never invokes a dangling callback.
type LifecycleEvents interface {
	SubscribeForeground(fn func()) (cancel func())
}
