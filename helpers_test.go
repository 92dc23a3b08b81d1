package qrgrid

import (
	"fmt"
	"image"
	"testing"
)

// fixture builds a matrix of the given version whose bits come from dark.
func fixture(t testing.TB, version int, dark func(row, col int) bool) *Matrix {
	t.Helper()
	n := SizeForVersion(version)
	bits := make([][]bool, n)
	for r := range bits {
		bits[r] = make([]bool, n)
		for c := range bits[r] {
			bits[r][c] = dark(r, c)
		}
	}
	m, err := NewMatrix(bits)
	if err != nil {
		t.Fatalf("NewMatrix(%dx%d) error = %v", n, n, err)
	}
	return m
}

func allDark(int, int) bool { return true }
func allLight(int, int) bool { return false }
func checkerboard(r, c int) bool { return (r+c)%2 == 0 }
func darkFinders(r, c int) bool { return r < 7 && c < 7 }
func darkDiagonal(r, c int) bool { return r == c }

// bareRenderer returns a renderer without axis labels.
func bareRenderer(t testing.TB) *Renderer {
	t.Helper()
	r, err := NewRenderer(WithoutLabels())
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return r
}

// assertPixel checks the color at (x, y) within a small tolerance to absorb
// float to 8-bit rounding.
func assertPixel(t *testing.T, img *image.RGBA, x, y int, want [4]uint8) {
	t.Helper()
	c := img.RGBAAt(x, y)
	got := [4]uint8{c.R, c.G, c.B, c.A}
	for i := range got {
		d := int(got[i]) - int(want[i])
		if d < -2 || d > 2 {
			t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			return
		}
	}
}

// hexPixel converts "#rrggbb" into an opaque pixel.
func hexPixel(t *testing.T, hex string) [4]uint8 {
	t.Helper()
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		t.Fatalf("bad hex %q: %v", hex, err)
	}
	return [4]uint8{r, g, b, 255}
}
