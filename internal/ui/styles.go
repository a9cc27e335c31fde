package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, spinner, highlights
	ColorHighlight = "205" // Magenta - HUD border, selected items
	ColorDanger    = "196" // Red - failed tasks
	ColorMuted     = "241" // Gray - hints, dimmed text
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "243" // Darker gray - dimmed background
	ColorWarning   = "208" // Orange - running tasks
)

// Styles contains shared style definitions used across the dashboard and
// the HUD chrome.
var Styles = struct {
	Title    lipgloss.Style // Bold accent - main titles
	Hint     lipgloss.Style // Help/hint text
	Selected lipgloss.Style // Highlighted list rows
	Normal   lipgloss.Style // Normal text
	Muted    lipgloss.Style // Dimmed text
	Danger   lipgloss.Style // Failure markers
	Running  lipgloss.Style // In-flight markers

	HUDBox    lipgloss.Style // Bordered HUD chrome
	HUDShaded lipgloss.Style // Shaded HUD chrome (no border)
	HUDLabel  lipgloss.Style // Text next to the spinner
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Danger: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Running: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),

	HUDBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 3),
	HUDShaded: lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Padding(1, 3),
	HUDLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
}
