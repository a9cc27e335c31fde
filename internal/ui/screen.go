package ui

// Screen is the host region the HUD attaches to: the terminal bounds plus
// the base view rendered beneath the overlay. It implements hud.Host.
type Screen struct {
	Base View

	width  int
	height int
}

// NewScreen creates a screen hosting base. Size arrives with the first
// WindowSizeMsg; until then Bounds reports a conventional 80x24.
func NewScreen(base View) *Screen {
	return &Screen{Base: base, width: 80, height: 24}
}

// Bounds implements hud.Host.
func (s *Screen) Bounds() (width, height int) {
	return s.width, s.height
}

// SetSize records the terminal dimensions.
func (s *Screen) SetSize(width, height int) {
	s.width = width
	s.height = height
}
