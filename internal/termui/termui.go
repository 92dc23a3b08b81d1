// Package termui prints grid summaries, legends and region maps to a
// terminal, with color swatches when the output is a TTY.
package termui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/gogpu/qrgrid"
)

// Printer writes styled output to w.
type Printer struct {
	w     io.Writer
	color bool
	r     *lipgloss.Renderer

	label lipgloss.Style
	value lipgloss.Style
}

// New returns a Printer for w. Color is enabled only when w is a terminal.
func New(w io.Writer) *Printer {
	return NewWithColor(w, isTerminal(w))
}

// NewWithColor returns a Printer with color forced on or off.
func NewWithColor(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:     w,
		color: color,
		r:     r,
		label: r.NewStyle().Foreground(lipgloss.Color("#78716c")).Width(10),
		value: r.NewStyle().Bold(true),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Summary prints one "Label  value" line per field.
func (p *Printer) Summary(fields []qrgrid.SummaryField) {
	for _, f := range fields {
		if p.color {
			fmt.Fprintf(p.w, "%s %s\n", p.label.Render(f.Label), p.value.Render(f.Value))
			continue
		}
		fmt.Fprintf(p.w, "%-10s %s\n", f.Label, f.Value)
	}
}

// Legend prints the legend entries, each behind a swatch.
func (p *Printer) Legend(entries []qrgrid.LegendEntry) {
	for _, e := range entries {
		fmt.Fprintf(p.w, "%s %s\n", p.swatch(e.Swatch, "■■"), e.Label)
	}
}

// Status prints a single status readout line.
func (p *Printer) Status(line string) {
	fmt.Fprintln(p.w, line)
}

// RegionMap prints the module map. With color, each module becomes a two
// cell block in its overlay (regions) or flat color; without color the text
// map of qrgrid.RegionMap is printed.
func (p *Printer) RegionMap(m *qrgrid.Matrix, regions bool) {
	if !p.color {
		io.WriteString(p.w, qrgrid.RegionMap(m))
		return
	}
	var b strings.Builder
	for row := range m.Size() {
		for col := range m.Size() {
			hex := qrgrid.ModuleColor(m.Region(row, col), m.Dark(row, col), regions)
			b.WriteString(p.swatch(hex, "  "))
		}
		b.WriteByte('\n')
	}
	io.WriteString(p.w, b.String())
}

func (p *Printer) swatch(hex, cells string) string {
	if !p.color {
		return "[" + hex + "]"
	}
	c := lipgloss.Color(hex)
	return p.r.NewStyle().Foreground(c).Background(c).Render(cells)
}
