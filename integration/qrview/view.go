// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package qrview

import (
	"image"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/qrgrid"
)

// Window background behind the grid.
const (
	pageColor       = "#e7e5e4"
	fullscreenColor = "#0c0a09"
)

// View routes window input to a Viewport and composes its frames into a
// window-sized gg.Context.
type View struct {
	vp *qrgrid.Viewport

	mu        sync.Mutex
	win       image.Point
	textFocus bool

	// last nearest-neighbor upscale, reused while the frame is unchanged
	scaledSrc *image.RGBA
	scaled    *image.RGBA
}

// New creates a View for vp without subscribing to any events.
func New(vp *qrgrid.Viewport) *View {
	return &View{vp: vp}
}

// Attach creates a View for vp and registers its handlers on src.
func Attach(src gpucontext.EventSource, vp *qrgrid.Viewport) *View {
	v := New(vp)
	src.OnKeyPress(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		v.HandleKey(key, mods)
	})
	src.OnMouseMove(v.HandleMouseMove)
	src.OnScroll(v.HandleScroll)
	src.OnResize(v.Resize)
	src.OnFocus(func(focused bool) {
		if !focused {
			v.leave()
		}
	})
	return v
}

// Viewport returns the viewport driven by v.
func (v *View) Viewport() *qrgrid.Viewport {
	return v.vp
}

// Resize records the window size in pixels.
func (v *View) Resize(width, height int) {
	v.mu.Lock()
	v.win = image.Pt(width, height)
	v.mu.Unlock()
}

// WindowSize returns the last recorded window size.
func (v *View) WindowSize() image.Point {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.win
}

// SetTextFocus marks whether a text-entry control owns the keyboard.
// Shortcuts are ignored while it does.
func (v *View) SetTextFocus(focused bool) {
	v.mu.Lock()
	v.textFocus = focused
	v.mu.Unlock()
}

// TextFocus reports whether a text-entry control owns the keyboard.
func (v *View) TextFocus() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.textFocus
}

// Layout returns where the current frame is shown in the window.
func (v *View) Layout() Layout {
	frame := v.vp.Frame()
	if frame.Image == nil {
		return Layout{}
	}
	return Fit(frame.Image.Bounds().Size(), v.WindowSize(), v.vp.Fullscreen())
}

// HandleKey applies the shortcut bound to key. It reports whether the key
// was consumed; Escape outside fullscreen is not.
func (v *View) HandleKey(key gpucontext.Key, mods gpucontext.Modifiers) bool {
	if v.TextFocus() {
		return false
	}
	cmd, ok := CommandForKey(key, mods)
	if !ok {
		return false
	}
	handled, err := v.vp.Apply(cmd)
	if err != nil {
		qrgrid.Logger().Warn("qrview: command failed", "command", cmd, "error", err)
	}
	return handled
}

// HandleMouseMove updates hover from a window position.
func (v *View) HandleMouseMove(x, y float64) {
	frame := v.vp.Frame()
	if frame.Image == nil {
		return
	}
	l := Fit(frame.Image.Bounds().Size(), v.WindowSize(), v.vp.Fullscreen())
	p, ok := l.Pointer(x, y)
	if !ok {
		v.leave()
		return
	}
	s := v.vp.State()
	hit := qrgrid.HitTest(p, frame.Geometry)
	if hit.OK == s.Hovered && (!hit.OK || hit.Cell == s.Hover) {
		return
	}
	if err := v.vp.PointerMove(p); err != nil {
		qrgrid.Logger().Warn("qrview: pointer move failed", "error", err)
	}
}

// HandleScroll zooms with the wheel. Negative dy is wheel up and zooms in.
func (v *View) HandleScroll(_, dy float64) {
	var err error
	switch {
	case dy < 0:
		err = v.vp.ZoomIn()
	case dy > 0:
		err = v.vp.ZoomOut()
	default:
		return
	}
	if err != nil {
		qrgrid.Logger().Warn("qrview: zoom failed", "error", err)
	}
}

func (v *View) leave() {
	if !v.vp.State().Hovered {
		return
	}
	if err := v.vp.PointerLeave(); err != nil {
		qrgrid.Logger().Warn("qrview: pointer leave failed", "error", err)
	}
}

// Compose paints the window background and the current frame into cc,
// which is expected to be window-sized.
func (v *View) Compose(cc *gg.Context) error {
	fullscreen := v.vp.Fullscreen()
	frame := v.vp.Frame()

	cc.Identity()
	cc.ResetClip()
	cc.ClearPath()
	bg := gg.Hex(pageColor)
	if fullscreen {
		bg = gg.Hex(fullscreenColor)
	}
	cc.SetRGBA(bg.R, bg.G, bg.B, bg.A)
	cc.DrawRectangle(0, 0, float64(cc.Width()), float64(cc.Height()))
	if err := cc.Fill(); err != nil {
		return err
	}
	if frame.Image == nil {
		return nil
	}

	l := Fit(frame.Image.Bounds().Size(), image.Pt(cc.Width(), cc.Height()), fullscreen)
	if l.Empty() {
		return nil
	}
	img := v.scale(frame.Image, l.W, l.H)
	cc.DrawImage(gg.ImageBufFromImage(img), float64(l.X), float64(l.Y))
	return nil
}

// scale returns src resized to w x h with nearest-neighbor sampling so that
// module edges stay sharp.
func (v *View) scale(src *image.RGBA, w, h int) *image.RGBA {
	if b := src.Bounds(); b.Dx() == w && b.Dy() == h {
		return src
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.scaledSrc == src && v.scaled.Bounds().Dx() == w && v.scaled.Bounds().Dy() == h {
		return v.scaled
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	v.scaledSrc, v.scaled = src, dst
	return dst
}
