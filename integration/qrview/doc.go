// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package qrview connects a qrgrid.Viewport to a gogpu window.
//
// The data flow is:
//
//	gpucontext.EventSource -> View -> qrgrid.Viewport -> Frame
//	Frame -> View.Compose (gg.Context) -> ggcanvas.Canvas -> Window
//
// # Usage
//
//	vp, _ := qrgrid.NewViewport()
//	view := qrview.Attach(app.EventSource(), vp)
//	presenter := qrview.NewPresenter(view)
//	defer presenter.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = presenter.Present(app.GPUContextProvider(), dc.AsTextureDrawer(), dc.Width(), dc.Height())
//	})
//
// # Input
//
// Pointer movement is mapped through the current Layout into grid image
// coordinates, so hover stays correct when fullscreen scales the grid. The
// wheel zooms (up zooms in) and the keyboard shortcuts from CommandForKey are
// applied to the viewport unless a text-entry control holds focus.
//
// # Thread Safety
//
// View is safe for concurrent use. Presenter owns a ggcanvas.Canvas and must
// be used from the draw callback only.
package qrview
