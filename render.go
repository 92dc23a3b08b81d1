package qrgrid

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"strconv"

	"github.com/gogpu/gg"
)

// labelBaseline positions the digit baseline so the glyphs sit visually
// centered on the anchor point (gg anchors on the baseline).
const labelBaseline = 0.35

var errMissingFonts = errors.New("qrgrid: label fonts need both regular and bold sources")

// Renderer draws a matrix and a view state into a raster image. A Renderer
// holds only immutable configuration and is safe for concurrent use.
type Renderer struct {
	fonts  LabelFonts
	labels bool
}

// NewRenderer creates a Renderer. Unless WithoutLabels or WithLabelFonts is
// given, the embedded Go Mono fonts are used for axis labels.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Renderer{labels: o.labels}
	switch {
	case o.fonts != nil:
		r.fonts = *o.fonts
	case o.labels:
		f, err := DefaultLabelFonts()
		if err != nil {
			return nil, err
		}
		r.fonts = f
	}
	if r.labels && (r.fonts.Regular == nil || r.fonts.Bold == nil) {
		return nil, errMissingFonts
	}
	return r, nil
}

// Render draws m in view s onto a fresh canvas of side s.Geometry(m.Size()).Extent()
// and returns the pixels. Identical inputs produce identical pixels.
func (r *Renderer) Render(m *Matrix, s ViewState) (*image.RGBA, error) {
	if m == nil {
		return nil, ErrNoMatrix
	}
	s = s.WithCellSize(s.CellSize)
	e := s.Geometry(m.Size()).Extent()

	dc := gg.NewContext(e, e)
	defer func() { _ = dc.Close() }()

	if err := r.RenderTo(dc, m, s); err != nil {
		return nil, err
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("qrgrid: flush: %w", err)
	}
	return toRGBA(dc.Image()), nil
}

// RenderTo draws m in view s onto dc, starting from a cleared surface. The
// grid occupies the top-left extent×extent square; dc must be at least that
// large. Any previous content, transform and path of dc are discarded.
func (r *Renderer) RenderTo(dc *gg.Context, m *Matrix, s ViewState) error {
	if m == nil {
		return ErrNoMatrix
	}
	s = s.WithCellSize(s.CellSize)
	g := s.Geometry(m.Size())
	if e := g.Extent(); dc.Width() < e || dc.Height() < e {
		return fmt.Errorf("%w: have %dx%d, need %dx%d", ErrCanvasTooSmall, dc.Width(), dc.Height(), e, e)
	}

	dc.Identity()
	dc.ResetClip()
	dc.ClearPath()
	dc.Clear()

	steps := []struct {
		name string
		fn   func(*gg.Context, *Matrix, ViewState, Geometry) error
	}{
		{"background", drawBackground},
		{"bands", drawBands},
		{"modules", drawModules},
		{"grid", drawGrid},
		{"border", drawBorder},
		{"crosshair", drawCrosshair},
	}
	for _, st := range steps {
		if err := st.fn(dc, m, s, g); err != nil {
			return fmt.Errorf("qrgrid: draw %s: %w", st.name, err)
		}
	}
	if r.labels {
		r.drawLabels(dc, m, s, g)
	}

	Logger().Debug("qrgrid: rendered grid",
		"size", m.Size(),
		"cell", g.CellSize,
		"extent", g.Extent(),
		"regions", s.ShowRegions,
		"hovered", s.Hovered)
	return nil
}

func drawBackground(dc *gg.Context, _ *Matrix, _ ViewState, g Geometry) error {
	a := g.ModuleArea()
	setColor(dc, backgroundColor)
	dc.DrawRectangle(float64(a.Min.X), float64(a.Min.Y), float64(a.Dx()), float64(a.Dy()))
	return dc.Fill()
}

// drawBands paints the translucent hover bands. They lie beneath the module
// fills, so over opaque modules they are covered.
func drawBands(dc *gg.Context, _ *Matrix, s ViewState, g Geometry) error {
	if !s.Crosshair() {
		return nil
	}
	a := g.ModuleArea()
	cs := float64(g.CellSize)
	row := g.CellRect(s.Hover.Row, 0)
	col := g.CellRect(0, s.Hover.Col)

	setColor(dc, bandColor)
	dc.DrawRectangle(float64(a.Min.X), float64(row.Min.Y), float64(a.Dx()), cs)
	dc.DrawRectangle(float64(col.Min.X), float64(a.Min.Y), cs, float64(a.Dy()))
	return dc.Fill()
}

// drawModules fills every module. Modules are batched into one path per
// color; batches are filled in order of first appearance.
func drawModules(dc *gg.Context, m *Matrix, s ViewState, g Geometry) error {
	n := m.Size()
	var order []string
	batches := make(map[string][]image.Rectangle)
	for row := range n {
		for col := range n {
			hex := ModuleColor(m.Region(row, col), m.Dark(row, col), s.ShowRegions)
			if _, ok := batches[hex]; !ok {
				order = append(order, hex)
			}
			batches[hex] = append(batches[hex], g.CellRect(row, col))
		}
	}
	for _, hex := range order {
		setColor(dc, gg.Hex(hex))
		for _, rc := range batches[hex] {
			dc.DrawRectangle(float64(rc.Min.X), float64(rc.Min.Y), float64(rc.Dx()), float64(rc.Dy()))
		}
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func drawGrid(dc *gg.Context, m *Matrix, s ViewState, g Geometry) error {
	minor, major := gridAlpha(s.ShowRegions)
	if err := strokeGridLines(dc, m.Size(), g, 1, 1, minor); err != nil {
		return err
	}
	return strokeGridLines(dc, m.Size(), g, 5, 2, major)
}

// strokeGridLines strokes a line at every step-th module boundary on both
// axes, including the outer edges.
func strokeGridLines(dc *gg.Context, n int, g Geometry, step int, width, alpha float64) error {
	a := g.ModuleArea()
	lo, hi := float64(a.Min.X), float64(a.Max.X)
	dc.SetRGBA(0, 0, 0, alpha)
	dc.SetLineWidth(width)
	for i := 0; i <= n; i += step {
		p := float64(g.Gutter()+i*g.CellSize) + 0.5
		dc.MoveTo(p, lo)
		dc.LineTo(p, hi)
		dc.MoveTo(lo, p)
		dc.LineTo(hi, p)
	}
	return dc.Stroke()
}

func drawBorder(dc *gg.Context, _ *Matrix, _ ViewState, g Geometry) error {
	a := g.ModuleArea()
	setColor(dc, borderColor)
	dc.SetLineWidth(2)
	dc.DrawRectangle(float64(a.Min.X), float64(a.Min.Y), float64(a.Dx()), float64(a.Dy()))
	return dc.Stroke()
}

func drawCrosshair(dc *gg.Context, _ *Matrix, s ViewState, g Geometry) error {
	if !s.Crosshair() {
		return nil
	}
	a := g.ModuleArea()
	lo, hi := float64(a.Min.X), float64(a.Max.X)
	cs := float64(g.CellSize)
	hy := float64(g.CellRect(s.Hover.Row, 0).Min.Y) + 0.5
	hx := float64(g.CellRect(0, s.Hover.Col).Min.X) + 0.5

	setColor(dc, crosshairColor)
	dc.SetLineWidth(2)
	dc.MoveTo(lo, hy)
	dc.LineTo(hi, hy)
	dc.MoveTo(lo, hy+cs)
	dc.LineTo(hi, hy+cs)
	if err := dc.Stroke(); err != nil {
		return err
	}
	dc.MoveTo(hx, lo)
	dc.LineTo(hx, hi)
	dc.MoveTo(hx+cs, lo)
	dc.LineTo(hx+cs, hi)
	return dc.Stroke()
}

func (r *Renderer) drawLabels(dc *gg.Context, m *Matrix, s ViewState, g Geometry) {
	regular, bold := r.fonts.faces(g.LabelFontSize())
	mid := float64(g.Gutter()) / 2
	for i := range m.Size() {
		face, c := regular, labelColor
		if i%5 == 0 {
			face, c = bold, majorLabelColor
		}
		dc.SetFont(face)
		label := strconv.Itoa(i)
		cx, cy := g.CellCenter(i, i)

		setColor(dc, pickLabel(c, s.Crosshair() && i == s.Hover.Col))
		dc.DrawStringAnchored(label, cx, mid, 0.5, labelBaseline)

		setColor(dc, pickLabel(c, s.Crosshair() && i == s.Hover.Row))
		dc.DrawStringAnchored(label, mid, cy, 0.5, labelBaseline)
	}
}

func pickLabel(c gg.RGBA, hovered bool) gg.RGBA {
	if hovered {
		return accentColor
	}
	return c
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

// toRGBA returns img as *image.RGBA, converting only when gg hands back a
// different image type.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
