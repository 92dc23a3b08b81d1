package qrgrid

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Exporter receives hover-free snapshots from Viewport.Export.
type Exporter interface {
	Export(name string, img *image.RGBA) error
}

// Printer receives hover-free snapshots from Viewport.Print.
type Printer interface {
	Print(img *image.RGBA) error
}

// ExporterFunc adapts a function to the Exporter interface.
type ExporterFunc func(name string, img *image.RGBA) error

// Export calls f(name, img).
func (f ExporterFunc) Export(name string, img *image.RGBA) error { return f(name, img) }

// PrinterFunc adapts a function to the Printer interface.
type PrinterFunc func(img *image.RGBA) error

// Print calls f(img).
func (f PrinterFunc) Print(img *image.RGBA) error { return f(img) }

// ExportName returns the file name for an n×n grid, "qr-grid-{n}x{n}.png".
func ExportName(size int) string {
	return fmt.Sprintf("qr-grid-%dx%d.png", size, size)
}

// PNGExporter writes snapshots as PNG files into Dir. An empty Dir means
// the current directory.
type PNGExporter struct {
	Dir string
}

// Export encodes img to Dir/name. The file is written to a temporary name
// first and renamed, so a failed export never leaves a truncated PNG.
func (e PNGExporter) Export(name string, img *image.RGBA) error {
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, name)
	if err := WritePNG(path, img); err != nil {
		return err
	}
	Logger().Info("qrgrid: exported grid", "path", path)
	return nil
}

// WritePNG encodes img to path via a temporary file in the same directory.
func WritePNG(path string, img image.Image) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".qrgrid-*.png")
	if err != nil {
		return fmt.Errorf("qrgrid: export: %w", err)
	}
	tmp := f.Name()
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("qrgrid: encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("qrgrid: export: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("qrgrid: export: %w", err)
	}
	return nil
}
