package qrgrid

import (
	"fmt"
	"math"
)

// Pointer is a pointer position in display coordinates. DisplayW and
// DisplayH give the size at which the grid image is shown; when the image is
// scaled (fullscreen, HiDPI) the position is mapped back to image pixels.
// A zero display size means the image is shown at its native size.
type Pointer struct {
	X, Y               float64
	DisplayW, DisplayH float64
}

// Hit is the result of a hit test.
type Hit struct {
	Cell Cell
	OK   bool // false when the pointer is outside the module area
}

// HitTest maps p to the module under it in a grid laid out as g.
func HitTest(p Pointer, g Geometry) Hit {
	if g.CellSize <= 0 || g.Size <= 0 {
		return Hit{}
	}
	e := float64(g.Extent())
	sx, sy := 1.0, 1.0
	if p.DisplayW > 0 {
		sx = e / p.DisplayW
	}
	if p.DisplayH > 0 {
		sy = e / p.DisplayH
	}
	gutter, cs := float64(g.Gutter()), float64(g.CellSize)
	col := int(math.Floor((p.X*sx - gutter) / cs))
	row := int(math.Floor((p.Y*sy - gutter) / cs))
	if row < 0 || col < 0 || row >= g.Size || col >= g.Size {
		return Hit{}
	}
	return Hit{Cell: Cell{Row: row, Col: col}, OK: true}
}

// StatusNone is the status readout when no module is hovered.
const StatusNone = "—"

// ModuleInfo describes one module for the status readout.
type ModuleInfo struct {
	Cell   Cell
	Dark   bool
	Region Region
}

// Probe returns the bit and region of the module at c. It reports false
// when c lies outside m.
func Probe(m *Matrix, c Cell) (ModuleInfo, bool) {
	if m == nil || !m.Contains(c.Row, c.Col) {
		return ModuleInfo{}, false
	}
	return ModuleInfo{
		Cell:   c,
		Dark:   m.Dark(c.Row, c.Col),
		Region: m.Region(c.Row, c.Col),
	}, true
}

// Status formats the readout line, e.g. "R3 C10 · ■ · Finder Pattern".
func (i ModuleInfo) Status() string {
	bit := "□"
	if i.Dark {
		bit = "■"
	}
	return fmt.Sprintf("R%d C%d · %s · %s", i.Cell.Row, i.Cell.Col, bit, i.Region.Label())
}
