package qrgrid

import "image"

// Geometry describes the pixel layout of a rendered grid: a square gutter
// band for the axis labels on the top and left, followed by Size modules of
// CellSize pixels on each axis.
type Geometry struct {
	Size     int // modules per side
	CellSize int // pixels per module
}

// MinGutter is the smallest gutter width in pixels.
const MinGutter = 20

// NewGeometry returns the layout of an n-module grid at the given cell size.
func NewGeometry(size, cellSize int) Geometry {
	return Geometry{Size: size, CellSize: cellSize}
}

// Gutter returns the width of the label band: max(20, CellSize).
func (g Geometry) Gutter() int {
	return max(MinGutter, g.CellSize)
}

// Extent returns the canvas side length in pixels.
func (g Geometry) Extent() int {
	return g.Gutter() + g.Size*g.CellSize
}

// Bounds returns the full canvas rectangle.
func (g Geometry) Bounds() image.Rectangle {
	e := g.Extent()
	return image.Rect(0, 0, e, e)
}

// ModuleArea returns the rectangle covered by modules.
func (g Geometry) ModuleArea() image.Rectangle {
	o := g.Gutter()
	return image.Rect(o, o, o+g.Size*g.CellSize, o+g.Size*g.CellSize)
}

// CellRect returns the pixel rectangle of the module at (row, col).
func (g Geometry) CellRect(row, col int) image.Rectangle {
	x := g.Gutter() + col*g.CellSize
	y := g.Gutter() + row*g.CellSize
	return image.Rect(x, y, x+g.CellSize, y+g.CellSize)
}

// CellCenter returns the pixel center of the module at (row, col).
func (g Geometry) CellCenter(row, col int) (x, y float64) {
	r := g.CellRect(row, col)
	return float64(r.Min.X) + float64(g.CellSize)/2, float64(r.Min.Y) + float64(g.CellSize)/2
}

// LabelFontSize returns the axis label size in pixels:
// max(9, min(0.55*CellSize, 14)).
func (g Geometry) LabelFontSize() float64 {
	return max(9, min(float64(g.CellSize)*0.55, 14))
}
