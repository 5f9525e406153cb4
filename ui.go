package main

import (
	"image"
	"log"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"

	"git.sr.ht/~whereswaldon/energy-viewer/backend"
	"git.sr.ht/~whereswaldon/energy-viewer/chart"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// UI is responsible for holding the state of and drawing the top-level UI.
type UI struct {
	ws          backend.WindowState
	expl        *explorer.Explorer
	th          *material.Theme
	defaultType string

	statusStream *stream.Stream[backend.Status]
	status       backend.Status

	controller  *chart.Controller
	view        *ChartView
	typeSelect  *Dropdown
	stateSelect *Dropdown
	legend      Legend

	openBtn  widget.Clickable
	opening  bool
	openErrs chan error
	loadErr  string
}

func NewUI(ws backend.WindowState, expl *explorer.Explorer, defaultType string) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	return &UI{
		ws:           ws,
		expl:         expl,
		th:           th,
		defaultType:  defaultType,
		statusStream: stream.New(ws.Controller, ws.Datasource.Status),
		openErrs:     make(chan error, 1),
	}
}

// Update the state of the UI and apply any selection changes made since the
// last frame.
func (ui *UI) Update(gtx C) {
	ui.statusStream.ReadInto(gtx, &ui.status, backend.Status{})
	if ui.status.Mode == backend.ModeReady && ui.controller == nil {
		ui.mount(ui.status.Data)
	}
	if ui.status.Err != nil {
		ui.loadErr = ui.status.Err.Error()
	}
	select {
	case err := <-ui.openErrs:
		ui.opening = false
		ui.loadErr = err.Error()
	default:
	}
	if !ui.opening && ui.openBtn.Clicked(gtx) {
		ui.opening = true
		go func() {
			if err := ui.ws.Datasource.LoadFromExplorer(ui.expl); err != nil {
				log.Printf("could not open consumption data: %v", err)
				ui.openErrs <- err
				ui.ws.Invalidate()
			}
		}()
	}
	if ui.controller == nil {
		return
	}
	if key, changed := ui.typeSelect.Update(gtx); changed {
		ui.controller.SelectType(key, gtx.Now)
	}
	if key, changed := ui.stateSelect.Update(gtx); changed {
		ui.controller.SelectState(key)
	}
}

// mount builds the chart and its selectors for a freshly loaded dataset.
func (ui *UI) mount(data *backend.Dataset) {
	scene := chart.NewScene(chart.DefaultFrame())
	ui.controller = chart.NewController(data, scene, ui.defaultType)
	ui.view = NewChartView(scene, ui.ws.Invalidate)
	ui.typeSelect = NewDropdown("Consumption type", ui.controller.TypeOptions(), ui.controller.Selection().Type)
	ui.stateSelect = NewDropdown("Highlight state", ui.controller.StateOptions(), "")
}

func (ui *UI) layoutMainArea(gtx C) D {
	inset := layout.UniformInset(unit.Dp(4))
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layout.Flex{}.Layout(gtx,
				layout.Flexed(2, func(gtx C) D {
					return inset.Layout(gtx, func(gtx C) D {
						return ui.typeSelect.Layout(gtx, ui.th)
					})
				}),
				layout.Flexed(1, func(gtx C) D {
					return inset.Layout(gtx, func(gtx C) D {
						return ui.stateSelect.Layout(gtx, ui.th)
					})
				}),
			)
		}),
		layout.Flexed(1, func(gtx C) D {
			return layout.Flex{}.Layout(gtx,
				layout.Flexed(1, func(gtx C) D {
					return ui.view.Layout(gtx, ui.th)
				}),
				layout.Rigid(func(gtx C) D {
					gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(legendWidth))
					gtx.Constraints.Min.X = gtx.Constraints.Max.X
					return inset.Layout(gtx, func(gtx C) D {
						return ui.legend.Layout(gtx, ui.th, ui.controller)
					})
				}),
			)
		}),
	)
}

func (ui *UI) layoutStartScreen(gtx C) D {
	message := "No data yet."
	switch ui.status.Mode {
	case backend.ModeLoading:
		message = "Loading " + ui.status.Source + "…"
	case backend.ModeFailed:
		message = "Could not load consumption data."
	}
	return layout.Flex{
		Axis:      layout.Vertical,
		Alignment: layout.Middle,
		Spacing:   layout.SpaceAround,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return material.Body1(ui.th, message).Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			if ui.opening || ui.status.Mode != backend.ModeNone {
				gtx = gtx.Disabled()
			}
			return material.Button(ui.th, &ui.openBtn, "Open CSV").Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			l := material.Body2(ui.th, ui.loadErr)
			l.Color = errorColor
			return l.Layout(gtx)
		}),
	)
}

// Layout the UI into the provided context.
func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	if ui.controller != nil {
		return ui.layoutMainArea(gtx)
	}
	return ui.layoutStartScreen(gtx)
}
