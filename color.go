package main

import (
	"image/color"

	"git.sr.ht/~whereswaldon/energy-viewer/chart"
)

var (
	axisColor        = color.NRGBA{A: 0xff}
	errorColor       = color.NRGBA{R: 0xb0, G: 0x20, B: 0x20, A: 0xff}
	tooltipColor     = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xd0}
	tooltipTextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// stripe returns the background of alternating legend rows.
func stripe(row int) color.NRGBA {
	c := chart.NeutralColor
	c.A = 0
	if row&1 != 0 {
		c.A = 25
	}
	return c
}
