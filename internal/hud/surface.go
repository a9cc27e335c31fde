package hud

// Host is the region a Surface attaches to (e.g. the terminal screen in the
// Bubble Tea backend). The controller sizes the surface to fill it.
type Host interface {
	Bounds() (width, height int)
}

// Content is the object displayed inside the HUD. It is owned by the surface
// once assigned; the controller only cares whether it implements the
// animation capabilities.
type Content any

// Effect selects the HUD box chrome. The zero value is the default look.
type Effect int

const (
	EffectBordered Effect = iota // rounded border around the content
	EffectShaded                 // shaded background, no border
	EffectNone                   // bare content
)

// Surface is the presentable view collaborator. Implementations render the
// HUD; the controller only decides when it is visible and what callback
// fires. Keyboard-avoidance hooks are intentionally absent.
type Surface interface {
	// Attach binds the surface to a host, sized to fill it, initially
	// hidden. Attaching an already-attached surface is a no-op.
	Attach(Host)

	// SetBackgroundDimming toggles dimming of the content beneath the HUD.
	SetBackgroundDimming(enabled, animated bool)

	// SetMargins applies leading/trailing layout offsets to the HUD box.
	SetMargins(leading, trailing int)

	// SetInteractionPassthrough controls whether input reaches the view
	// beneath the HUD while it is visible.
	SetInteractionPassthrough(enabled bool)

	// ShowAnimated runs the show transition.
	ShowAnimated()

	// HideAnimated runs the hide transition and invokes completion after it
	// finishes. completion may be nil.
	HideAnimated(animated bool, completion func(finished bool))

	Content() Content
	SetContent(Content)

	Effect() Effect
	SetEffect(Effect)

	IsVisible() bool
}
