package main

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var dropDownIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.NavigationArrowDropDown)
	return icon
}()

var dropUpIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.NavigationArrowDropUp)
	return icon
}()

const maxOptionsHeight = unit.Dp(320)

// Dropdown is a labelled selector offering one of a fixed list of options.
// The option list opens below the header and floats above later widgets.
type Dropdown struct {
	Label   string
	Options []string

	selected string
	open     bool
	toggle   widget.Clickable
	enum     widget.Enum
	list     widget.List
}

// NewDropdown returns a dropdown showing selected. An empty selection shows
// a placeholder until the user chooses an option.
func NewDropdown(label string, options []string, selected string) *Dropdown {
	d := &Dropdown{
		Label:    label,
		Options:  options,
		selected: selected,
	}
	d.enum.Value = selected
	d.list.Axis = layout.Vertical
	return d
}

// Update processes input and reports the newly chosen option, if the user
// picked one other than the current selection.
func (d *Dropdown) Update(gtx C) (string, bool) {
	if d.toggle.Clicked(gtx) {
		d.open = !d.open
	}
	if !d.enum.Update(gtx) {
		return "", false
	}
	return d.pick(d.enum.Value)
}

// pick closes the option list and makes value the selection. It reports
// false when value is already selected.
func (d *Dropdown) pick(value string) (string, bool) {
	d.open = false
	d.enum.Value = value
	if value == d.selected {
		return "", false
	}
	d.selected = value
	return value, true
}

func (d *Dropdown) display() string {
	if d.selected == "" {
		return "Select…"
	}
	return d.selected
}

func (d *Dropdown) Layout(gtx C, th *material.Theme) D {
	dims := material.Clickable(gtx, &d.toggle, func(gtx C) D {
		return widget.Border{
			Color:        th.Fg,
			CornerRadius: unit.Dp(2),
			Width:        unit.Dp(1),
		}.Layout(gtx, func(gtx C) D {
			return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(material.Body2(th, d.Label+":").Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
					layout.Flexed(1, func(gtx C) D {
						l := material.Body1(th, d.display())
						l.MaxLines = 1
						return l.Layout(gtx)
					}),
					layout.Rigid(func(gtx C) D {
						gtx.Constraints.Min = image.Point{}
						icon := dropDownIcon
						if d.open {
							icon = dropUpIcon
						}
						return icon.Layout(gtx, th.Fg)
					}),
				)
			})
		})
	})
	if !d.open {
		return dims
	}

	macro := op.Record(gtx.Ops)
	listGtx := gtx
	listGtx.Constraints = layout.Constraints{
		Min: image.Pt(dims.Size.X, 0),
		Max: image.Pt(dims.Size.X, gtx.Dp(maxOptionsHeight)),
	}
	widget.Border{Color: th.Fg, Width: unit.Dp(1)}.Layout(listGtx, func(gtx C) D {
		return layout.Background{}.Layout(gtx,
			func(gtx C) D {
				paint.FillShape(gtx.Ops, th.Bg, clip.Rect{Max: gtx.Constraints.Min}.Op())
				return D{Size: gtx.Constraints.Min}
			},
			func(gtx C) D {
				return material.List(th, &d.list).Layout(gtx, len(d.Options), func(gtx C, i int) D {
					return material.RadioButton(th, &d.enum, d.Options[i], d.Options[i]).Layout(gtx)
				})
			},
		)
	})
	call := macro.Stop()
	stack := op.Offset(image.Pt(0, dims.Size.Y)).Push(gtx.Ops)
	op.Defer(gtx.Ops, call)
	stack.Pop()
	return dims
}
