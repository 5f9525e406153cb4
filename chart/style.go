package chart

import "image/color"

var (
	NeutralColor   = color.NRGBA{B: 0x80, A: 0xff}
	HighlightColor = color.NRGBA{R: 0xff, A: 0xff}
)

// Style is how a line is stroked.
type Style struct {
	Color   color.NRGBA
	Width   float32
	Opacity float32
}

var (
	// NeutralStyle applies while no state is selected.
	NeutralStyle = Style{Color: NeutralColor, Width: 1, Opacity: 1}
	// DimmedStyle applies to lines that are not the selected state.
	DimmedStyle = Style{Color: NeutralColor, Width: 1, Opacity: .5}
	// HighlightStyle applies to the line of the selected state.
	HighlightStyle = Style{Color: HighlightColor, Width: 3, Opacity: 1}
)

// StyleFor returns the style of the line keyed by state under sel.
func StyleFor(state string, sel Selection) Style {
	switch {
	case sel.State == "":
		return NeutralStyle
	case sel.State == state:
		return HighlightStyle
	default:
		return DimmedStyle
	}
}

// NRGBA returns the style's color with its opacity applied.
func (s Style) NRGBA() color.NRGBA {
	c := s.Color
	c.A = uint8(float32(c.A)*s.Opacity + .5)
	return c
}
