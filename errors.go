package qrgrid

import (
	"errors"
	"fmt"
)

// Matrix and session errors.
var (
	// ErrNotSquare is returned when a bit matrix has rows of differing length.
	ErrNotSquare = errors.New("qrgrid: matrix is not square")

	// ErrInvalidSize is returned when the matrix side length does not follow
	// the QR sizing law n = 21 + 4*(version-1) for versions 1..40.
	ErrInvalidSize = errors.New("qrgrid: invalid matrix size")

	// ErrNoMatrix is returned by operations that need an installed matrix.
	ErrNoMatrix = errors.New("qrgrid: no matrix installed")

	// ErrEmptyPayload is returned when asked to encode blank text.
	ErrEmptyPayload = errors.New("qrgrid: empty payload")

	// ErrInvalidECLevel is returned when parsing an unknown error-correction level.
	ErrInvalidECLevel = errors.New("qrgrid: invalid error-correction level")

	// ErrNoExporter is returned by Export when no Exporter is configured.
	ErrNoExporter = errors.New("qrgrid: no exporter configured")

	// ErrNoPrinter is returned by Print when no Printer is configured.
	ErrNoPrinter = errors.New("qrgrid: no printer configured")
)

// EncodeError reports a failed encode. The previously installed matrix, if
// any, is left untouched.
type EncodeError struct {
	Level ECLevel
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("qrgrid: encode at level %s: %v", e.Level, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// ErrCanvasTooSmall is returned by RenderTo when the target context cannot
// hold the grid at the requested cell size.
var ErrCanvasTooSmall = errors.New("qrgrid: canvas smaller than grid extent")
