// Package qrgrid renders QR codes as labeled module grids, so that a symbol
// can be copied onto graph paper by hand.
//
// # Overview
//
// A Matrix is the square bit array of one QR symbol. Every module of it
// belongs to a structural Region (finder, timing, alignment, format,
// version or data), which Classify derives from the coordinates alone. The
// Renderer draws the matrix as a grid with numbered axes, optional region
// coloring and a hover crosshair, and HitTest maps a pointer position back
// to a module.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/qrgrid"
//	    "github.com/gogpu/qrgrid/encoder"
//	)
//
//	vp, _ := qrgrid.NewViewport(qrgrid.WithExporter(qrgrid.PNGExporter{Dir: "."}))
//	_ = vp.Encode(encoder.New(), "https://example.com", qrgrid.ECLevelM)
//
//	_ = vp.ToggleRegions()
//	_ = vp.PointerMove(qrgrid.Pointer{X: 95, Y: 95})
//	fmt.Println(vp.Status()) // R3 C3 · ■ · Finder Pattern
//
//	_ = vp.Export() // writes qr-grid-25x25.png without the hover overlay
//
// # Viewport
//
// Viewport is the interactive session. It holds the installed matrix and an
// immutable ViewState value (cell size, region overlay, crosshair, hover)
// and redraws the whole grid after every command. Encoding failures leave
// the previous matrix installed. Commands from input adapters go through
// Apply; see integration/qrview for a gogpu window adapter.
//
// # Geometry
//
// A grid of n modules at cell size c is preceded on the top and left by a
// gutter of max(20, c) pixels for the axis labels, so the canvas is
// gutter+n*c pixels square. Module (row, col) covers
// [gutter+col*c, gutter+(col+1)*c) horizontally and likewise vertically.
//
// # Logging
//
// The package is silent by default. Install a logger with SetLogger to see
// render diagnostics (Debug), matrix installs and exports (Info) and
// recoverable failures (Warn).
package qrgrid
