// Package chart models the consumption line chart independently of any
// drawing toolkit: the coordinate frame, one line per state of the active
// consumption type, animated transitions between selections, highlight
// styling, axis ticks, hover hit testing and the selection state that
// drives all of it.
package chart

import (
	"time"

	"gioui.org/f32"
)

const (
	// CanvasWidth and CanvasHeight are the outer chart size, margins included.
	CanvasWidth  = 800
	CanvasHeight = 950

	// DefaultType is the consumption type shown before any selection.
	DefaultType = "Consumption.Commercial.Natural Gas"

	// PathDuration is how long line geometry takes to move to a new selection.
	PathDuration = 1000 * time.Millisecond
	// AxisDuration is how long the vertical axis takes to reach a new domain.
	AxisDuration = 1500 * time.Millisecond

	// XTicks is the horizontal tick density.
	XTicks = 20
	// InitialYTicks and UpdateYTicks are the vertical tick densities before
	// and after the first consumption type change.
	InitialYTicks = 10
	UpdateYTicks  = 5
	// TickSize is the length of tick marks on both axes until the vertical
	// axis drops its marks on update.
	TickSize = 6
	// TickPadding is the gap between tick marks and their labels;
	// UpdateTickPadding replaces it once the vertical axis drops its marks.
	TickPadding       = 3
	UpdateTickPadding = 6

	// HitRadius is how close the pointer must be to a line to hover it.
	HitRadius = 5
	// TooltipOffset is the vertical distance between the pointer and the
	// tooltip anchor.
	TooltipOffset = -28

	YAxisLabel = "Consumption Value (in BTU)"
	// YAxisLabelOffset is the horizontal distance of the rotated y axis label
	// from the plot's left edge.
	YAxisLabelOffset = -60
)

var (
	// DomainStart and DomainEnd bound the horizontal axis.
	DomainStart = time.Date(1985, time.January, 1, 0, 0, 0, 0, time.UTC)
	DomainEnd   = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	DefaultMargin = Insets{Top: 100, Right: 10, Bottom: 100, Left: 100}
)

// Insets are distances from each edge of the canvas.
type Insets struct {
	Top, Right, Bottom, Left float32
}

// Frame describes where the plot sits on the canvas. Width and Height are
// the plot area inside the margins; all line geometry is expressed in plot
// coordinates with the origin at the top-left corner of that area.
type Frame struct {
	Margin        Insets
	Width, Height float32
}

// NewFrame returns the frame for a canvas of the given outer size.
func NewFrame(outerWidth, outerHeight float32, margin Insets) Frame {
	return Frame{
		Margin: margin,
		Width:  outerWidth - margin.Left - margin.Right,
		Height: outerHeight - margin.Top - margin.Bottom,
	}
}

// DefaultFrame is the 800x950 canvas with the standard margins.
func DefaultFrame() Frame {
	return NewFrame(CanvasWidth, CanvasHeight, DefaultMargin)
}

// Outer returns the canvas size including margins.
func (f Frame) Outer() f32.Point {
	return f32.Pt(f.Width+f.Margin.Left+f.Margin.Right, f.Height+f.Margin.Top+f.Margin.Bottom)
}

// ToPlot converts a canvas position into plot coordinates.
func (f Frame) ToPlot(p f32.Point) f32.Point {
	return p.Sub(f32.Pt(f.Margin.Left, f.Margin.Top))
}

// ToCanvas converts a plot position into canvas coordinates.
func (f Frame) ToCanvas(p f32.Point) f32.Point {
	return p.Add(f32.Pt(f.Margin.Left, f.Margin.Top))
}
