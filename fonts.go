package qrgrid

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

// LabelFonts holds the regular and bold sources used for axis labels.
type LabelFonts struct {
	Regular *text.FontSource
	Bold    *text.FontSource
}

// faces returns the label faces at the given pixel size.
func (f LabelFonts) faces(size float64) (regular, bold text.Face) {
	return f.Regular.Face(size), f.Bold.Face(size)
}

var (
	defaultFontsOnce sync.Once
	defaultFonts     LabelFonts
	defaultFontsErr  error
)

// DefaultLabelFonts returns the embedded Go Mono faces. The sources are
// parsed once and shared.
func DefaultLabelFonts() (LabelFonts, error) {
	defaultFontsOnce.Do(func() {
		regular, err := text.NewFontSource(gomono.TTF)
		if err != nil {
			defaultFontsErr = fmt.Errorf("qrgrid: load go mono: %w", err)
			return
		}
		bold, err := text.NewFontSource(gomonobold.TTF)
		if err != nil {
			defaultFontsErr = fmt.Errorf("qrgrid: load go mono bold: %w", err)
			return
		}
		defaultFonts = LabelFonts{Regular: regular, Bold: bold}
	})
	return defaultFonts, defaultFontsErr
}
