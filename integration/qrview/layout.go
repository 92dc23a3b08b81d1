// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package qrview

import (
	"image"

	"github.com/gogpu/qrgrid"
)

// Layout is where a grid frame is placed in the window, in window pixels.
type Layout struct {
	X, Y int
	W, H int
}

// Fit places a frame of size frame inside a window of size win.
//
// In normal layout the frame is shown at its native size and centered; a
// frame larger than the window is pinned to the top-left corner and
// clipped. In fullscreen layout the frame is scaled to the largest size that
// fits the window while keeping its aspect ratio.
func Fit(frame, win image.Point, fullscreen bool) Layout {
	if frame.X <= 0 || frame.Y <= 0 || win.X <= 0 || win.Y <= 0 {
		return Layout{}
	}
	w, h := frame.X, frame.Y
	if fullscreen {
		// Compare win.X/frame.X with win.Y/frame.Y without floats.
		if win.X*frame.Y <= win.Y*frame.X {
			w = win.X
			h = frame.Y * win.X / frame.X
		} else {
			h = win.Y
			w = frame.X * win.Y / frame.Y
		}
	}
	return Layout{
		X: max(0, (win.X-w)/2),
		Y: max(0, (win.Y-h)/2),
		W: w,
		H: h,
	}
}

// Empty reports whether nothing is shown.
func (l Layout) Empty() bool {
	return l.W <= 0 || l.H <= 0
}

// Rect returns the layout as a rectangle in window coordinates.
func (l Layout) Rect() image.Rectangle {
	return image.Rect(l.X, l.Y, l.X+l.W, l.Y+l.H)
}

// Pointer converts a window position into a qrgrid.Pointer relative to the
// shown frame. It reports false when (x, y) is outside the frame.
func (l Layout) Pointer(x, y float64) (qrgrid.Pointer, bool) {
	if l.Empty() {
		return qrgrid.Pointer{}, false
	}
	px, py := x-float64(l.X), y-float64(l.Y)
	if px < 0 || py < 0 || px >= float64(l.W) || py >= float64(l.H) {
		return qrgrid.Pointer{}, false
	}
	return qrgrid.Pointer{
		X:        px,
		Y:        py,
		DisplayW: float64(l.W),
		DisplayH: float64(l.H),
	}, true
}
