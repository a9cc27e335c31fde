package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestSpinner_AnimationCapabilities(t *testing.T) {
	sp := NewSpinner("working")

	assert.False(t, sp.IsAnimating())
	sp.StartAnimating()
	assert.True(t, sp.IsAnimating())
	sp.StartAnimating() // re-asserting is harmless
	assert.True(t, sp.IsAnimating())
	sp.StopAnimating()
	assert.False(t, sp.IsAnimating())
}

func TestSpinner_UpdateDropsTicksWhenStopped(t *testing.T) {
	sp := NewSpinner("")

	sp.StartAnimating()
	assert.NotNil(t, sp.Update(spinner.TickMsg{}), "animating spinner keeps the tick loop alive")

	sp.StopAnimating()
	assert.Nil(t, sp.Update(spinner.TickMsg{}), "stopped spinner ends the tick loop")
}

func TestSpinner_ViewIncludesLabel(t *testing.T) {
	sp := NewSpinner("Running slow…")
	assert.Contains(t, ansi.Strip(sp.View()), "Running slow…")
}

func TestLabel_RendersText(t *testing.T) {
	l := Label("all done")
	assert.Equal(t, "all done", ansi.Strip(l.View()))
}
