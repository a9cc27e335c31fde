package ui

import (
	"fmt"

	"hudkit/internal/hud"
)

// OverlaySurface implements hud.Surface for terminal rendering. It does no
// drawing of its own; App.View calls Render with the current frame and the
// surface composites the HUD box over it.
//
// Terminal "transitions" are a single frame, so show and hide apply
// immediately and hide completions are posted through the dispatcher: they
// still run strictly after the state change, in program order, matching the
// contract that the completion fires once the transition is done.
type OverlaySurface struct {
	dispatch func(func())

	host        *Screen
	attached    bool
	visible     bool
	dimmed      bool
	passthrough bool
	leading     int
	trailing    int
	effect      hud.Effect
	content     hud.Content
}

var _ hud.Surface = (*OverlaySurface)(nil)

// NewOverlaySurface creates a detached, hidden surface. dispatch marshals
// hide completions onto the UI context; nil runs them inline.
func NewOverlaySurface(dispatch func(func())) *OverlaySurface {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &OverlaySurface{dispatch: dispatch}
}

// Attach implements hud.Surface. The surface fills its host, so there is no
// frame to compute; attaching while already attached is a no-op.
func (s *OverlaySurface) Attach(h hud.Host) {
	if s.attached {
		return
	}
	scr, ok := h.(*Screen)
	if !ok {
		panic("ui: OverlaySurface requires a *Screen host")
	}
	s.host = scr
	s.attached = true
	s.visible = false
}

// SetBackgroundDimming implements hud.Surface. Terminals have no gradual
// dim, so animated is accepted and applied in one step.
func (s *OverlaySurface) SetBackgroundDimming(enabled, animated bool) {
	_ = animated
	s.dimmed = enabled
}

// SetMargins implements hud.Surface.
func (s *OverlaySurface) SetMargins(leading, trailing int) {
	s.leading = leading
	s.trailing = trailing
}

// SetInteractionPassthrough implements hud.Surface.
func (s *OverlaySurface) SetInteractionPassthrough(enabled bool) {
	s.passthrough = enabled
}

// InteractionPassthrough reports whether input should reach the view beneath
// the HUD. App.Update consults it before swallowing keys.
func (s *OverlaySurface) InteractionPassthrough() bool { return s.passthrough }

// ShowAnimated implements hud.Surface.
func (s *OverlaySurface) ShowAnimated() {
	s.visible = true
}

// HideAnimated implements hud.Surface. The completion is posted rather than
// called inline so it observes the hidden state and never re-enters the
// caller.
func (s *OverlaySurface) HideAnimated(animated bool, completion func(finished bool)) {
	_ = animated
	s.visible = false
	s.dimmed = false
	if completion != nil {
		done := completion
		s.dispatch(func() { done(true) })
	}
}

// Content implements hud.Surface.
func (s *OverlaySurface) Content() hud.Content { return s.content }

// SetContent implements hud.Surface.
func (s *OverlaySurface) SetContent(v hud.Content) { s.content = v }

// Effect implements hud.Surface.
func (s *OverlaySurface) Effect() hud.Effect { return s.effect }

// SetEffect implements hud.Surface.
func (s *OverlaySurface) SetEffect(e hud.Effect) { s.effect = e }

// IsVisible implements hud.Surface.
func (s *OverlaySurface) IsVisible() bool { return s.visible }

// Render composites the HUD over base. When the surface is hidden the base
// frame passes through untouched.
func (s *OverlaySurface) Render(base string) string {
	if !s.visible || s.host == nil {
		return base
	}
	width, height := s.host.Bounds()
	if s.dimmed {
		base = dim(base)
	}
	// Leading pushes the box toward the trailing edge and vice versa.
	return composite(s.renderBox(), base, width, height, s.leading-s.trailing, 0)
}

// renderBox renders the content inside the chrome selected by the effect.
func (s *OverlaySurface) renderBox() string {
	body := s.renderContent()
	switch s.effect {
	case hud.EffectNone:
		return body
	case hud.EffectShaded:
		return Styles.HUDShaded.Render(body)
	default:
		return Styles.HUDBox.Render(body)
	}
}

func (s *OverlaySurface) renderContent() string {
	switch v := s.content.(type) {
	case nil:
		return ""
	case interface{ View() string }:
		return v.View()
	case fmt.Stringer:
		return v.String()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
