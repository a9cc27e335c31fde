package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"hudkit/internal/hud"
)

// Spinner is HUD content with a tick-driven animation. It implements both
// hud.Animatable and hud.AnimationStopper: the controller starts it when the
// HUD becomes visible and stops it on hide.
type Spinner struct {
	Label string

	model     spinner.Model
	animating bool
}

var (
	_ hud.Animatable       = (*Spinner)(nil)
	_ hud.AnimationStopper = (*Spinner)(nil)
)

// NewSpinner creates a spinner with an optional label shown next to it.
func NewSpinner(label string) *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &Spinner{Label: label, model: s}
}

// StartAnimating implements hud.Animatable. Re-asserting an already-running
// animation is harmless; frames keep advancing from wherever they were.
func (sp *Spinner) StartAnimating() { sp.animating = true }

// StopAnimating implements hud.AnimationStopper.
func (sp *Spinner) StopAnimating() { sp.animating = false }

// IsAnimating reports whether the spinner wants tick messages.
func (sp *Spinner) IsAnimating() bool { return sp.animating }

// Tick returns the command that drives the next animation frame.
func (sp *Spinner) Tick() tea.Cmd { return sp.model.Tick }

// Update advances the animation. Ticks arriving after StopAnimating are
// dropped, which ends the tick loop.
func (sp *Spinner) Update(msg spinner.TickMsg) tea.Cmd {
	if !sp.animating {
		return nil
	}
	var cmd tea.Cmd
	sp.model, cmd = sp.model.Update(msg)
	return cmd
}

// View renders the current frame plus label.
func (sp *Spinner) View() string {
	if sp.Label == "" {
		return sp.model.View()
	}
	return sp.model.View() + " " + Styles.HUDLabel.Render(sp.Label)
}

// Label is static HUD content. It implements neither animation capability,
// exercising the optional no-op path: showing or hiding it animates nothing
// and errors nowhere.
type Label string

// View renders the label text.
func (l Label) View() string { return Styles.HUDLabel.Render(string(l)) }
