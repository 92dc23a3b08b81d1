package qrgrid

import (
	"math"
	"testing"
)

func TestDefaultViewState(t *testing.T) {
	s := DefaultViewState()
	if s.CellSize != 20 || s.ShowRegions || !s.ShowCrosshair || s.Hovered {
		t.Errorf("DefaultViewState() = %+v", s)
	}
}

func TestClampCellSize(t *testing.T) {
	tests := []struct{ in, want int }{
		{100, 60},
		{61, 60},
		{60, 60},
		{20, 20},
		{8, 8},
		{7, 8},
		{1, 8},
		{-5, 8},
	}
	for _, tt := range tests {
		if got := ClampCellSize(tt.in); got != tt.want {
			t.Errorf("ClampCellSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
		if got := DefaultViewState().WithCellSize(tt.in).CellSize; got != tt.want {
			t.Errorf("WithCellSize(%d).CellSize = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestViewStateTransitionsReturnCopies(t *testing.T) {
	s := DefaultViewState()
	z := s.ZoomBy(ZoomStep)
	r := s.ToggleRegions()
	c := s.ToggleCrosshair()
	h := s.WithHover(Cell{Row: 3, Col: 4})

	if s != DefaultViewState() {
		t.Errorf("receiver modified: %+v", s)
	}
	if z.CellSize != 22 {
		t.Errorf("ZoomBy(2).CellSize = %d, want 22", z.CellSize)
	}
	if !r.ShowRegions {
		t.Error("ToggleRegions() did not enable regions")
	}
	if c.ShowCrosshair {
		t.Error("ToggleCrosshair() did not disable crosshair")
	}
	if !h.Hovered || h.Hover != (Cell{Row: 3, Col: 4}) {
		t.Errorf("WithHover() = %+v", h)
	}
	if cleared := h.WithoutHover(); cleared.Hovered || cleared.Hover != (Cell{}) {
		t.Errorf("WithoutHover() = %+v", cleared)
	}
}

func TestViewStateCrosshair(t *testing.T) {
	s := DefaultViewState()
	if s.Crosshair() {
		t.Error("Crosshair() = true without hover")
	}
	s = s.WithHover(Cell{})
	if !s.Crosshair() {
		t.Error("Crosshair() = false with hover and crosshair enabled")
	}
	if s.ToggleCrosshair().Crosshair() {
		t.Error("Crosshair() = true with crosshair disabled")
	}
}

func TestGeometry(t *testing.T) {
	tests := []struct {
		size, cell     int
		gutter, extent int
		font           float64
	}{
		{21, 8, 20, 188, 9},
		{21, 20, 20, 440, 11},
		{25, 30, 30, 780, 14},
		{177, 60, 60, 10680, 14},
	}
	for _, tt := range tests {
		g := NewGeometry(tt.size, tt.cell)
		if g.Gutter() != tt.gutter || g.Extent() != tt.extent {
			t.Errorf("Geometry(%d, %d) gutter/extent = %d/%d, want %d/%d",
				tt.size, tt.cell, g.Gutter(), g.Extent(), tt.gutter, tt.extent)
		}
		if got := g.LabelFontSize(); math.Abs(got-tt.font) > 1e-9 {
			t.Errorf("Geometry(%d, %d).LabelFontSize() = %v, want %v", tt.size, tt.cell, got, tt.font)
		}
	}

	g := NewGeometry(21, 20)
	if got := g.CellRect(2, 3); got.Min.X != 80 || got.Min.Y != 60 || got.Dx() != 20 || got.Dy() != 20 {
		t.Errorf("CellRect(2, 3) = %v", got)
	}
	if x, y := g.CellCenter(0, 0); x != 30 || y != 30 {
		t.Errorf("CellCenter(0, 0) = %v, %v; want 30, 30", x, y)
	}
	if a := g.ModuleArea(); a.Min.X != 20 || a.Max.X != 440 {
		t.Errorf("ModuleArea() = %v", a)
	}
}
