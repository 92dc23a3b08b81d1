package qrgrid

// Zoom limits in pixels per module.
const (
	MinCellSize     = 8
	MaxCellSize     = 60
	DefaultCellSize = 20
	ZoomStep        = 2
)

// Cell addresses a module by row and column.
type Cell struct {
	Row, Col int
}

// ViewState is the complete set of view inputs to a render pass. It is a
// value: transitions return a modified copy and never touch the receiver.
type ViewState struct {
	CellSize      int
	ShowRegions   bool
	ShowCrosshair bool

	// Hover is meaningful only when Hovered is true.
	Hover   Cell
	Hovered bool
}

// DefaultViewState returns the initial view: 20px cells, flat palette,
// crosshair enabled, nothing hovered.
func DefaultViewState() ViewState {
	return ViewState{
		CellSize:      DefaultCellSize,
		ShowCrosshair: true,
	}
}

// ClampCellSize limits a cell size to [MinCellSize, MaxCellSize].
func ClampCellSize(px int) int {
	return min(MaxCellSize, max(MinCellSize, px))
}

// WithCellSize returns s zoomed to px, clamped to the allowed range.
func (s ViewState) WithCellSize(px int) ViewState {
	s.CellSize = ClampCellSize(px)
	return s
}

// ZoomBy returns s zoomed by delta pixels per module, clamped.
func (s ViewState) ZoomBy(delta int) ViewState {
	return s.WithCellSize(s.CellSize + delta)
}

// ToggleRegions returns s with the region overlay flipped.
func (s ViewState) ToggleRegions() ViewState {
	s.ShowRegions = !s.ShowRegions
	return s
}

// ToggleCrosshair returns s with the crosshair flipped.
func (s ViewState) ToggleCrosshair() ViewState {
	s.ShowCrosshair = !s.ShowCrosshair
	return s
}

// WithHover returns s hovering over c.
func (s ViewState) WithHover(c Cell) ViewState {
	s.Hover = c
	s.Hovered = true
	return s
}

// WithoutHover returns s with no hovered module.
func (s ViewState) WithoutHover() ViewState {
	s.Hover = Cell{}
	s.Hovered = false
	return s
}

// Crosshair reports whether the crosshair should be drawn, i.e. it is
// enabled and a module is hovered.
func (s ViewState) Crosshair() bool {
	return s.ShowCrosshair && s.Hovered
}

// Geometry returns the pixel layout of an n-module grid in this view.
func (s ViewState) Geometry(size int) Geometry {
	return NewGeometry(size, s.CellSize)
}
