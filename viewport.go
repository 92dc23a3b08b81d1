package qrgrid

import (
	"errors"
	"image"
	"strings"
	"sync"
	"sync/atomic"
)

// Encoder turns text into a QR bit matrix at the given error-correction
// level. Implementations report capacity and input failures as errors.
type Encoder interface {
	Encode(text string, level ECLevel) (*Matrix, error)
}

// Frame is one completed render of the viewport.
type Frame struct {
	Image    *image.RGBA
	Matrix   *Matrix
	State    ViewState
	Geometry Geometry
}

// Viewport is an interactive grid session. It owns the installed matrix and
// the view state, and redraws the whole grid after every mutation.
//
// Viewport is safe for concurrent use. Commands are serialized, so a
// background re-encode never interleaves with a key or pointer event.
type Viewport struct {
	mu         sync.Mutex
	matrix     atomic.Pointer[Matrix]
	level      ECLevel
	state      ViewState
	fullscreen bool
	frame      Frame

	renderer *Renderer
	exporter Exporter
	printer  Printer
	onRender func(Frame)
}

// NewViewport creates an empty Viewport. Nothing is drawn until a matrix is
// installed with Install or Encode.
func NewViewport(opts ...ViewportOption) (*Viewport, error) {
	o := defaultViewportOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.renderer == nil {
		r, err := NewRenderer()
		if err != nil {
			return nil, err
		}
		o.renderer = r
	}
	return &Viewport{
		level:    ECLevelM,
		state:    o.state,
		renderer: o.renderer,
		exporter: o.exporter,
		printer:  o.printer,
		onRender: o.onRender,
	}, nil
}

// Encode trims text, encodes it with enc and installs the result. On any
// failure the returned error is an *EncodeError, the failure is logged and
// the previous matrix and view state are left as they were.
func (v *Viewport) Encode(enc Encoder, text string, level ECLevel) error {
	m, err := encode(enc, text, level)
	if err != nil {
		Logger().Warn("qrgrid: encode failed, keeping previous matrix", "level", level, "error", err)
		return err
	}
	return v.Install(m, level)
}

func encode(enc Encoder, text string, level ECLevel) (*Matrix, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &EncodeError{Level: level, Err: ErrEmptyPayload}
	}
	m, err := enc.Encode(text, level)
	if err != nil {
		var ee *EncodeError
		if !errors.As(err, &ee) {
			err = &EncodeError{Level: level, Err: err}
		}
		return nil, err
	}
	return m, nil
}

// Install replaces the current matrix with m and redraws. Hover is cleared
// since the previous coordinates may not exist in m.
func (v *Viewport) Install(m *Matrix, level ECLevel) error {
	if m == nil {
		return ErrNoMatrix
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.matrix.Store(m)
	v.level = level
	v.state = v.state.WithoutHover()
	Logger().Info("qrgrid: installed matrix", "size", m.Size(), "version", m.Version(), "level", level)
	return v.redraw()
}

// Matrix returns the installed matrix, or nil.
func (v *Viewport) Matrix() *Matrix {
	return v.matrix.Load()
}

// Level returns the error-correction level of the installed matrix.
func (v *Viewport) Level() ECLevel {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.level
}

// State returns the current view state.
func (v *Viewport) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Frame returns the most recent render. Its Image is nil before the first
// matrix is installed.
func (v *Viewport) Frame() Frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.frame
}

// Fullscreen reports whether fullscreen layout is active.
func (v *Viewport) Fullscreen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fullscreen
}

// SetZoom sets the cell size in pixels, clamped to [MinCellSize, MaxCellSize].
func (v *Viewport) SetZoom(px int) error {
	return v.update(func(s ViewState) ViewState {
		s = s.WithCellSize(px)
		Logger().Debug("qrgrid: zoom", "cell", s.CellSize)
		return s
	})
}

// ZoomIn enlarges cells by ZoomStep pixels.
func (v *Viewport) ZoomIn() error {
	return v.update(func(s ViewState) ViewState { return s.ZoomBy(ZoomStep) })
}

// ZoomOut shrinks cells by ZoomStep pixels.
func (v *Viewport) ZoomOut() error {
	return v.update(func(s ViewState) ViewState { return s.ZoomBy(-ZoomStep) })
}

// ToggleRegions flips the region overlay.
func (v *Viewport) ToggleRegions() error {
	return v.update(ViewState.ToggleRegions)
}

// ToggleCrosshair flips the hover crosshair.
func (v *Viewport) ToggleCrosshair() error {
	return v.update(ViewState.ToggleCrosshair)
}

// SetHover marks c as hovered. A cell outside the matrix clears hover.
func (v *Viewport) SetHover(c Cell) error {
	return v.update(func(s ViewState) ViewState {
		m := v.matrix.Load()
		if m == nil || !m.Contains(c.Row, c.Col) {
			return s.WithoutHover()
		}
		return s.WithHover(c)
	})
}

// ClearHover removes the hover marker.
func (v *Viewport) ClearHover() error {
	return v.update(ViewState.WithoutHover)
}

// PointerMove hit-tests p against the current layout and updates hover.
// Positions outside the module area clear hover.
func (v *Viewport) PointerMove(p Pointer) error {
	return v.update(func(s ViewState) ViewState {
		m := v.matrix.Load()
		if m == nil {
			return s
		}
		hit := HitTest(p, s.Geometry(m.Size()))
		if !hit.OK {
			return s.WithoutHover()
		}
		return s.WithHover(hit.Cell)
	})
}

// PointerLeave clears hover when the pointer leaves the grid.
func (v *Viewport) PointerLeave() error {
	return v.ClearHover()
}

// ToggleFullscreen flips the fullscreen layout flag and redraws.
func (v *Viewport) ToggleFullscreen() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fullscreen = !v.fullscreen
	return v.redraw()
}

// ExitFullscreen leaves fullscreen layout. It reports false, and does
// nothing, when fullscreen is not active.
func (v *Viewport) ExitFullscreen() (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.fullscreen {
		return false, nil
	}
	v.fullscreen = false
	return true, v.redraw()
}

// Status returns the readout for the hovered module, or StatusNone.
func (v *Viewport) Status() string {
	v.mu.Lock()
	s := v.state
	v.mu.Unlock()
	if !s.Hovered {
		return StatusNone
	}
	info, ok := Probe(v.Matrix(), s.Hover)
	if !ok {
		return StatusNone
	}
	return info.Status()
}

// Summary describes the installed matrix.
func (v *Viewport) Summary() (Summary, error) {
	m := v.Matrix()
	if m == nil {
		return Summary{}, ErrNoMatrix
	}
	return Summarize(m, v.Level()), nil
}

// Legend lists the legend entries for the installed matrix.
func (v *Viewport) Legend() ([]LegendEntry, error) {
	m := v.Matrix()
	if m == nil {
		return nil, ErrNoMatrix
	}
	return Legend(m.Version()), nil
}

// Snapshot returns a render of the current view with hover removed. The
// displayed frame is redrawn without hover for the capture and then
// restored.
func (v *Viewport) Snapshot() (*image.RGBA, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot()
}

// Export hands a hover-free snapshot named ExportName(n) to the exporter.
func (v *Viewport) Export() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.exporter == nil {
		return ErrNoExporter
	}
	img, err := v.snapshot()
	if err != nil {
		return err
	}
	return v.exporter.Export(ExportName(v.matrix.Load().Size()), img)
}

// Print hands a hover-free snapshot to the printer.
func (v *Viewport) Print() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.printer == nil {
		return ErrNoPrinter
	}
	img, err := v.snapshot()
	if err != nil {
		return err
	}
	return v.printer.Print(img)
}

func (v *Viewport) snapshot() (*image.RGBA, error) {
	if v.matrix.Load() == nil {
		return nil, ErrNoMatrix
	}
	prev := v.state
	v.state = prev.WithoutHover()
	if err := v.redraw(); err != nil {
		v.state = prev
		return nil, err
	}
	img := v.frame.Image
	v.state = prev
	if err := v.redraw(); err != nil {
		return nil, err
	}
	return img, nil
}

// update applies fn to the view state under v.mu and redraws, so fn sees
// the matrix that redraw will use.
func (v *Viewport) update(fn func(ViewState) ViewState) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = fn(v.state)
	return v.redraw()
}

// redraw renders the full grid. It must be called with v.mu held. Without a
// matrix there is nothing to draw and redraw is a no-op.
func (v *Viewport) redraw() error {
	m := v.matrix.Load()
	if m == nil {
		return nil
	}
	img, err := v.renderer.Render(m, v.state)
	if err != nil {
		Logger().Warn("qrgrid: render failed", "error", err)
		return err
	}
	v.frame = Frame{
		Image:    img,
		Matrix:   m,
		State:    v.state,
		Geometry: v.state.Geometry(m.Size()),
	}
	if v.onRender != nil {
		v.onRender(v.frame)
	}
	return nil
}
