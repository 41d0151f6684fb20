// Package display holds the pieces both frametimer front ends draw with.
package display

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
)

const (
	// Hue of a full countdown; drains towards 0 (red)
	FULL_HUE     = 120
	PALETTE_SIZE = 256
)

// Uses a precomputed HSV hue ramp so drawing doesn't convert every frame
var colorTable = genColorTable()

func genColorTable() [PALETTE_SIZE]color.RGBA {
	table := [PALETTE_SIZE]color.RGBA{}
	for i := range table {
		place := float64(i) / (PALETTE_SIZE - 1)
		hue := math.Mod(place*FULL_HUE, 360)
		r, g, b, _ := colorconv.HSVToRGB(hue, 1, 1)
		table[i] = color.RGBA{r, g, b, 0xff}
	}
	return table
}

// ProgressColor maps a remaining fraction to green (1) through red (0).
// Clamps anything outside [0, 1]; NaN counts as drained.
func ProgressColor(fraction float64) color.RGBA {
	if math.IsNaN(fraction) {
		fraction = 0
	}
	place := max(0, min(1, fraction))
	return colorTable[int(place*(PALETTE_SIZE-1))]
}
