package main

import (
	"fmt"
	"image"
	"math"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"github.com/dustin/go-humanize"

	"git.sr.ht/~whereswaldon/energy-viewer/backend"
	"git.sr.ht/~whereswaldon/energy-viewer/chart"
)

const legendWidth = unit.Dp(280)

// Legend lists the states of the active consumption type with their peak
// consumption and the years they cover.
type Legend struct {
	table component.GridState
}

// stateSummary condenses one state's records for display.
type stateSummary struct {
	peak        float64
	first, last int
	hasYears    bool
}

func summarize(sg *backend.StateGroup) stateSummary {
	s := stateSummary{peak: sg.MaxValue()}
	s.first, s.last, s.hasYears = sg.Span()
	return s
}

func (s stateSummary) peakLabel() string {
	if math.IsNaN(s.peak) {
		return "–"
	}
	return humanize.CommafWithDigits(s.peak, 0)
}

func (s stateSummary) yearsLabel() string {
	if !s.hasYears {
		return "–"
	}
	if s.first == s.last {
		return fmt.Sprint(s.first)
	}
	return fmt.Sprintf("%d–%d", s.first, s.last)
}

func (lg *Legend) Layout(gtx C, th *material.Theme, ctrl *chart.Controller) D {
	group, ok := ctrl.ActiveGroup()
	if !ok {
		return material.Body2(th, "No data for "+ctrl.Selection().Type).Layout(gtx)
	}
	sel := ctrl.Selection()
	summaries := make([]stateSummary, len(group.States))
	for i := range group.States {
		summaries[i] = summarize(&group.States[i])
	}

	table := component.Table(th, &lg.table)
	table.HScrollbarStyle.Indicator.MinorWidth = 0
	table.HScrollbarStyle.Track.MinorPadding = 0
	colorColWidth := gtx.Dp(24)
	stateColWidth := gtx.Dp(40)
	yearsColWidth := gtx.Dp(80)
	peakColWidth := gtx.Constraints.Max.X - colorColWidth - stateColWidth - yearsColWidth - gtx.Dp(table.VScrollbarStyle.Width())
	rowHeight := gtx.Sp(20)
	const (
		colorCol = iota
		stateCol
		peakCol
		yearsCol
		numCols
	)
	return table.Layout(gtx, len(group.States), numCols,
		func(axis layout.Axis, index, constraint int) int {
			if axis == layout.Vertical {
				return min(constraint, rowHeight)
			}
			var size int
			switch index {
			case colorCol:
				size = colorColWidth
			case stateCol:
				size = stateColWidth
			case peakCol:
				size = peakColWidth
			case yearsCol:
				size = yearsColWidth
			}
			return min(size, constraint)
		},
		func(gtx C, index int) D {
			var l material.LabelStyle
			switch index {
			case colorCol:
				l = material.Body2(th, "")
			case stateCol:
				l = material.Body2(th, "State")
			case peakCol:
				l = material.Body2(th, "Peak (BTU)")
				l.Alignment = text.End
			case yearsCol:
				l = material.Body2(th, "Years")
				l.Alignment = text.End
			}
			l.Color = th.ContrastFg
			return layout.Background{}.Layout(gtx,
				func(gtx C) D {
					paint.FillShape(gtx.Ops, th.ContrastBg, clip.Rect{Max: gtx.Constraints.Max}.Op())
					return D{Size: gtx.Constraints.Min}
				},
				l.Layout,
			)
		},
		func(gtx C, row, col int) (dims D) {
			defer func() {
				dims.Size = gtx.Constraints.Constrain(dims.Size)
			}()
			sg := &group.States[row]
			style := chart.StyleFor(sg.State, sel)
			paint.FillShape(gtx.Ops, stripe(row), clip.Rect{Max: gtx.Constraints.Max}.Op())
			return layout.UniformInset(2).Layout(gtx, func(gtx C) D {
				var l material.LabelStyle
				switch col {
				case colorCol:
					return layout.Center.Layout(gtx, func(gtx C) D {
						sz := image.Pt(gtx.Dp(12), max(gtx.Dp(unit.Dp(style.Width)), 1))
						paint.FillShape(gtx.Ops, style.NRGBA(), clip.Rect{Max: sz}.Op())
						return D{Size: sz}
					})
				case stateCol:
					l = material.Body2(th, sg.State)
				case peakCol:
					l = material.Body2(th, summaries[row].peakLabel())
					l.Alignment = text.End
				case yearsCol:
					l = material.Body2(th, summaries[row].yearsLabel())
					l.Alignment = text.End
				default:
					return D{Size: gtx.Constraints.Max}
				}
				if style == chart.HighlightStyle {
					l.Color = chart.HighlightColor
				}
				l.MaxLines = 1
				return l.Layout(gtx)
			})
		})
}
