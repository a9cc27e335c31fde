// Package textutil provides unicode-aware text helpers for TUI rendering.
package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis is appended when Truncate has to cut a string.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to fit maxWidth visual columns, appending the ellipsis
// when anything was removed. Wide runes are never split.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}

	avail := maxWidth - Width(Ellipsis)
	if avail < 0 {
		return Ellipsis
	}

	var (
		out []rune
		w   int
	)
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + Ellipsis
}

// PadRight pads s with spaces to targetWidth columns, truncating when it is
// already wider.
func PadRight(s string, targetWidth int) string {
	w := Width(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + runewidth.FillRight("", targetWidth-w)
}
