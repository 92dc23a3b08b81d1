// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package qrview

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
)

// ErrPresenterClosed is returned by Present after Close.
var ErrPresenterClosed = errors.New("qrview: presenter is closed")

// presentKey identifies what the canvas currently shows.
type presentKey struct {
	frame      *image.RGBA
	fullscreen bool
	size       image.Point
}

// Presenter uploads composed frames to the GPU through a ggcanvas.Canvas and
// draws them into the window.
//
// Presenter is NOT safe for concurrent use; call it from the draw callback.
type Presenter struct {
	view   *View
	canvas *ggcanvas.Canvas
	last   presentKey
	closed bool
}

// NewPresenter creates a Presenter for view. The canvas is created lazily on
// the first Present, once the GPU device exists.
func NewPresenter(view *View) *Presenter {
	return &Presenter{view: view}
}

// Present composes the current frame into a window-sized canvas and draws it
// to dc. The canvas is redrawn only when the frame, the layout mode or the
// window size changed since the previous call.
func (p *Presenter) Present(provider gpucontext.DeviceProvider, dc gpucontext.TextureDrawer, width, height int) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if width <= 0 || height <= 0 {
		return nil
	}
	p.view.Resize(width, height)

	if p.canvas == nil {
		c, err := ggcanvas.New(provider, width, height)
		if err != nil {
			return fmt.Errorf("qrview: create canvas: %w", err)
		}
		p.canvas = c
		p.last = presentKey{}
	} else if cw, ch := p.canvas.Size(); cw != width || ch != height {
		if err := p.canvas.Resize(width, height); err != nil {
			return fmt.Errorf("qrview: resize canvas: %w", err)
		}
	}

	key := presentKey{
		frame:      p.view.Viewport().Frame().Image,
		fullscreen: p.view.Viewport().Fullscreen(),
		size:       image.Pt(width, height),
	}
	if key != p.last {
		var composeErr error
		if err := p.canvas.Draw(func(cc *gg.Context) {
			composeErr = p.view.Compose(cc)
		}); err != nil {
			return err
		}
		if composeErr != nil {
			return fmt.Errorf("qrview: compose: %w", composeErr)
		}
		p.last = key
	}
	return p.canvas.RenderTo(dc)
}

// Close releases the canvas. It is safe to call more than once.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.canvas == nil {
		return nil
	}
	err := p.canvas.Close()
	p.canvas = nil
	return err
}
