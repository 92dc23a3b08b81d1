package qrgrid

import "github.com/gogpu/gg"

// Tone is a dark/light color pair. Dark modules are filled with Dark and
// light modules with Light.
type Tone struct {
	Dark, Light string // "#rrggbb"
}

// Pick returns the hex color for a module bit.
func (t Tone) Pick(dark bool) string {
	if dark {
		return t.Dark
	}
	return t.Light
}

// FlatTone is the plain two-tone palette used when the region overlay is off.
var FlatTone = Tone{Dark: "#1c1917", Light: "#fafaf9"}

var regionTones = [regionCount]Tone{
	RegionFinderTL:  {Dark: "#c026d3", Light: "#f0abfc"},
	RegionFinderTR:  {Dark: "#c026d3", Light: "#f0abfc"},
	RegionFinderBL:  {Dark: "#c026d3", Light: "#f0abfc"},
	RegionTiming:    {Dark: "#0ea5e9", Light: "#7dd3fc"},
	RegionAlignment: {Dark: "#f59e0b", Light: "#fcd34d"},
	RegionFormat:    {Dark: "#10b981", Light: "#6ee7b7"},
	RegionVersion:   {Dark: "#ef4444", Light: "#fca5a5"},
	RegionData:      {Dark: "#1c1917", Light: "#fafaf9"},
}

// RegionTone returns the overlay palette of a region.
// It panics if r is not a defined region.
func RegionTone(r Region) Tone {
	mustValid(r)
	return regionTones[r]
}

// ModuleColor returns the fill color of a module in overlay or flat mode.
func ModuleColor(r Region, dark, showRegions bool) string {
	if showRegions {
		return RegionTone(r).Pick(dark)
	}
	return FlatTone.Pick(dark)
}

// Chrome colors shared by the renderer.
var (
	backgroundColor = gg.Hex(FlatTone.Light)
	borderColor     = gg.Hex("#1c1917")
	labelColor      = gg.Hex("#78716c")
	majorLabelColor = gg.Hex("#44403c")
	accentColor     = gg.Hex("#3b82f6")
	bandColor       = gg.RGBA2(59.0/255, 130.0/255, 246.0/255, 0.08)
	crosshairColor  = gg.RGBA2(59.0/255, 130.0/255, 246.0/255, 0.6)
)

// gridAlpha returns the stroke opacity of the minor and major grid lines.
// Overlay mode uses fainter lines since the regions already carry contrast.
func gridAlpha(showRegions bool) (minor, major float64) {
	if showRegions {
		return 0.2, 0.35
	}
	return 0.25, 0.45
}
