package backend

import (
	"context"

	"gioui.org/app"
	"git.sr.ht/~gioverse/skel/stream"
)

type WindowState struct {
	Bundle
	Controller *stream.Controller
	// Invalidate requests a new frame from the window.
	Invalidate func()
}

func NewWindowState(ctx context.Context, bundle Bundle, win *app.Window) WindowState {
	return WindowState{
		Bundle:     bundle,
		Controller: stream.NewController(ctx, win.Invalidate),
		Invalidate: win.Invalidate,
	}
}

type Bundle struct {
	Datasource *Datasource
}

func NewBundle() Bundle {
	return Bundle{
		Datasource: NewDatasource(),
	}
}
