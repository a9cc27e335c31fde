package hud

// Animatable is implemented by content that animates while visible (e.g. a
// spinner). The controller signals it after a successful show and again on
// foreground reentry, since render-driven animations can freeze while the
// application is backgrounded.
type Animatable interface {
	StartAnimating()
}

// AnimationStopper is the optional half of the capability: content that also
// wants a stop signal implements it. Content without it simply keeps the
// no-op behavior; the controller checks with a type assertion before hiding.
type AnimationStopper interface {
	StopAnimating()
}
