package ui

import (
	"math"
	"strings"
)

// renderLane draws a horizontal track with a marker at the given fraction of
// the way across. Fractions outside [0, 1] pin to the ends, so an
// overshooting spring visibly slams into the right edge.
func renderLane(frac float64, width int) string {
	cells := width - 2
	if cells < 8 {
		cells = 8
	}
	pos := int(math.Round(frac * float64(cells-1)))
	if pos < 0 {
		pos = 0
	}
	if pos > cells-1 {
		pos = cells - 1
	}
	left := "[" + strings.Repeat("─", pos)
	right := strings.Repeat("─", cells-1-pos) + "]"
	return trackStyle.Render(left) + markerStyle.Render("●") + trackStyle.Render(right)
}

// renderScaleBar draws a bar whose filled width follows the scale factor,
// relative to a full-scale width.
func renderScaleBar(scale float64, width int) string {
	if width < 4 {
		width = 4
	}
	filled := int(math.Round(scale * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return markerStyle.Render(strings.Repeat("━", filled)) + trackStyle.Render(strings.Repeat("─", width-filled))
}
