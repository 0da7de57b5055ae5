package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// position returns the top-left cell of box centred on the screen.
func position(box string, screenW, screenH int) (int, int) {
	x := (screenW - lipgloss.Width(box)) / 2
	y := (screenH - lipgloss.Height(box)) / 2
	return max(0, x), max(0, y)
}

// Overlay composites box centred over background. The background is
// stripped of its own styling and dimmed so the modal reads as foreground.
func Overlay(background, box string, width, height int) string {
	bg := strings.Split(background, "\n")
	for len(bg) < height {
		bg = append(bg, "")
	}

	boxLines := strings.Split(box, "\n")
	boxW := lipgloss.Width(box)
	x0, y0 := position(box, width, height)

	out := make([]string, len(bg))
	for i, line := range bg {
		plain := ansi.Strip(line)
		if i < y0 || i >= y0+len(boxLines) {
			out[i] = dim(plain)
			continue
		}

		left := ansi.Truncate(plain, x0, "")
		if w := ansi.StringWidth(left); w < x0 {
			left += strings.Repeat(" ", x0-w)
		}
		right := ansi.TruncateLeft(plain, x0+boxW, "")
		out[i] = dim(left) + boxLines[i-y0] + dim(right)
	}

	return strings.Join(out, "\n")
}

func dim(s string) string {
	if s == "" {
		return ""
	}
	return Backdrop.Render(s)
}
