package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// composite draws the fg block over bg inside a width x height region,
// centered, then shifted by xOffset/yOffset. Background styling around the
// overlay survives; the rows and columns underneath it are replaced.
func composite(fg, bg string, width, height, xOffset, yOffset int) string {
	if fg == "" {
		return bg
	}

	fgLines := splitLines(fg)
	bgLines := splitLines(bg)
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	fgWidth := 0
	for _, l := range fgLines {
		if w := ansi.StringWidth(l); w > fgWidth {
			fgWidth = w
		}
	}

	x := clamp((width-fgWidth)/2+xOffset, 0, max(width-fgWidth, 0))
	y := clamp((height-len(fgLines))/2+yOffset, 0, max(height-len(fgLines), 0))

	out := make([]string, len(bgLines))
	copy(out, bgLines)
	for i, fl := range fgLines {
		row := y + i
		if row < 0 || row >= len(out) {
			continue
		}
		// Pad the foreground row to the block width so the overlay is
		// rectangular even when its lines differ in length.
		if w := ansi.StringWidth(fl); w < fgWidth {
			fl += strings.Repeat(" ", fgWidth-w)
		}
		out[row] = overlayLine(out[row], fl, x)
	}
	return strings.Join(out, "\n")
}

// overlayLine splices fg into bg starting at display column x.
func overlayLine(bg, fg string, x int) string {
	fgWidth := ansi.StringWidth(fg)
	bgWidth := ansi.StringWidth(bg)
	if bgWidth < x {
		bg += strings.Repeat(" ", x-bgWidth)
		bgWidth = x
	}
	left := ansi.Truncate(bg, x, "")
	var right string
	if bgWidth > x+fgWidth {
		right = ansi.TruncateLeft(bg, x+fgWidth, "")
	}
	return left + fg + right
}

var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim))

// dim re-renders s with styling stripped and a uniform muted foreground, the
// terminal stand-in for dimming the view beneath a modal overlay.
func dim(s string) string {
	lines := splitLines(s)
	for i, l := range lines {
		lines[i] = dimStyle.Render(ansi.Strip(l))
	}
	return strings.Join(lines, "\n")
}

// splitLines splits on \n, tolerating \r\n.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return v
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
