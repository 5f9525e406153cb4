package main

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"git.sr.ht/~whereswaldon/energy-viewer/chart"
)

// ChartView draws a chart.Scene and feeds pointer input back into it. The
// scene's canvas is scaled uniformly to fit the available space.
type ChartView struct {
	scene      *chart.Scene
	invalidate func()
	// scale is the number of pixels per canvas unit in the last frame.
	scale float32
}

func NewChartView(scene *chart.Scene, invalidate func()) *ChartView {
	return &ChartView{
		scene:      scene,
		invalidate: invalidate,
		scale:      1,
	}
}

func rec(gtx C, w layout.Widget) (D, op.CallOp) {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	return dims, call
}

// toPlot converts a pointer position into plot coordinates.
func (v *ChartView) toPlot(p f32.Point) f32.Point {
	return v.scene.Frame.ToPlot(p.Div(v.scale))
}

// px converts a plot position into pixels relative to the view.
func (v *ChartView) px(p f32.Point) f32.Point {
	return v.scene.Frame.ToCanvas(p).Mul(v.scale)
}

func (v *ChartView) Update(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: v,
			Kinds:  pointer.Enter | pointer.Leave | pointer.Move,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Enter, pointer.Move:
			v.scene.Hover(v.toPlot(e.Position), gtx.Now)
		case pointer.Leave, pointer.Cancel:
			v.scene.Leave()
		}
	}
}

func (v *ChartView) Layout(gtx C, th *material.Theme) D {
	outer := v.scene.Frame.Outer()
	v.scale = min(float32(gtx.Constraints.Max.X)/outer.X, float32(gtx.Constraints.Max.Y)/outer.Y)
	if v.scale <= 0 || math.IsInf(float64(v.scale), 0) {
		v.scale = 1
	}
	v.Update(gtx)
	size := image.Pt(int(outer.X*v.scale), int(outer.Y*v.scale))

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	event.Op(gtx.Ops, v)
	if v.scene.Tooltip.Visible {
		pointer.CursorPointer.Add(gtx.Ops)
	}
	area.Pop()

	gtx.Constraints.Min = image.Point{}
	v.layoutXAxis(gtx, th)
	v.layoutYAxis(gtx, th)
	v.layoutYAxisLabel(gtx, th)
	v.layoutLines(gtx)
	v.layoutTooltip(gtx, th)

	if v.scene.Animating(gtx.Now) {
		v.invalidate()
	}
	return D{Size: size}
}

// strokeLine draws a straight line between two plot positions.
func (v *ChartView) strokeLine(gtx C, a, b f32.Point, width float32) {
	var p clip.Path
	p.Begin(gtx.Ops)
	p.MoveTo(v.px(a))
	p.LineTo(v.px(b))
	paint.FillShape(gtx.Ops, axisColor, clip.Stroke{
		Path:  p.End(),
		Width: max(width*v.scale, 1),
	}.Op())
}

// placeLabel draws call with its anchor (a fraction of dims along each
// axis) at the pixel position at.
func placeLabel(gtx C, dims D, call op.CallOp, at, anchor f32.Point) {
	off := at.Sub(f32.Pt(float32(dims.Size.X)*anchor.X, float32(dims.Size.Y)*anchor.Y))
	stack := op.Offset(off.Round()).Push(gtx.Ops)
	call.Add(gtx.Ops)
	stack.Pop()
}

func (v *ChartView) layoutXAxis(gtx C, th *material.Theme) {
	f := v.scene.Frame
	ax := v.scene.XAxis
	v.strokeLine(gtx, f32.Pt(0, f.Height), f32.Pt(f.Width, f.Height), 1)
	for _, tick := range v.scene.XTicks() {
		base := f32.Pt(tick.Pos, f.Height)
		if ax.TickSize > 0 {
			v.strokeLine(gtx, base, base.Add(f32.Pt(0, ax.TickSize)), 1)
		}
		l := material.Caption(th, tick.Label)
		l.Color = axisColor
		dims, call := rec(gtx, l.Layout)
		at := v.px(base.Add(f32.Pt(0, ax.TickSize+ax.TickPadding)))
		placeLabel(gtx, dims, call, at, f32.Pt(.5, 0))
	}
}

func (v *ChartView) layoutYAxis(gtx C, th *material.Theme) {
	f := v.scene.Frame
	ax := v.scene.YAxis
	v.strokeLine(gtx, f32.Pt(0, 0), f32.Pt(0, f.Height), 1)
	for _, tick := range v.scene.YTicks(gtx.Now) {
		base := f32.Pt(0, tick.Pos)
		if ax.TickSize > 0 {
			v.strokeLine(gtx, base, base.Sub(f32.Pt(ax.TickSize, 0)), 1)
		}
		l := material.Caption(th, tick.Label)
		l.Color = axisColor
		l.MaxLines = 1
		dims, call := rec(gtx, l.Layout)
		at := v.px(base.Sub(f32.Pt(ax.TickSize+ax.TickPadding, 0)))
		placeLabel(gtx, dims, call, at, f32.Pt(1, .5))
	}
}

// layoutYAxisLabel draws the axis title rotated a quarter turn
// counter-clockwise and centred on the plot's height.
func (v *ChartView) layoutYAxisLabel(gtx C, th *material.Theme) {
	f := v.scene.Frame
	l := material.Body2(th, chart.YAxisLabel)
	l.MaxLines = 1
	dims, call := rec(gtx, l.Layout)
	anchor := v.px(f32.Pt(chart.YAxisLabelOffset, f.Height/2))
	defer op.Affine(
		f32.Affine2D{}.
			Offset(f32.Pt(-float32(dims.Size.X)/2, -float32(dims.Size.Y))).
			Rotate(f32.Point{}, -math.Pi/2).
			Offset(anchor),
	).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}

func (v *ChartView) layoutLines(gtx C) {
	lines := v.scene.Lines()
	var highlighted *chart.Line
	for _, l := range lines {
		if l.Style == chart.HighlightStyle {
			highlighted = l
			continue
		}
		v.strokeSeries(gtx, l)
	}
	// The selected state's line is drawn last so it stays on top.
	if highlighted != nil {
		v.strokeSeries(gtx, highlighted)
	}
}

func (v *ChartView) strokeSeries(gtx C, l *chart.Line) {
	width := l.Style.Width * v.scale
	col := l.Style.NRGBA()
	for _, seg := range chart.Segments(l.Points(gtx.Now)) {
		if len(seg) < 2 {
			continue
		}
		var p clip.Path
		p.Begin(gtx.Ops)
		p.MoveTo(v.px(seg[0]))
		for _, pt := range seg[1:] {
			p.LineTo(v.px(pt))
		}
		paint.FillShape(gtx.Ops, col, clip.Stroke{
			Path:  p.End(),
			Width: width,
		}.Op())
	}
}

func (v *ChartView) layoutTooltip(gtx C, th *material.Theme) {
	tip := v.scene.Tooltip
	if !tip.Visible {
		return
	}
	dims, call := rec(gtx, func(gtx C) D {
		return layout.Background{}.Layout(gtx,
			func(gtx C) D {
				paint.FillShape(gtx.Ops, tooltipColor, clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(2)).Op(gtx.Ops))
				return D{Size: gtx.Constraints.Min}
			},
			func(gtx C) D {
				return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx C) D {
					l := material.Body2(th, tip.Text)
					l.Color = tooltipTextColor
					return l.Layout(gtx)
				})
			},
		)
	})
	placeLabel(gtx, dims, call, v.px(tip.Pos), f32.Pt(0, 0))
}
