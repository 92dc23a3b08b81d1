package encoder

import (
	"fmt"

	"github.com/gogpu/qrgrid"
	qrcode "github.com/skip2/go-qrcode"
)

// Encoder implements qrgrid.Encoder. The zero value picks the smallest
// version that fits the payload.
type Encoder struct {
	version int
	cache   *matrixCache
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithVersion forces a symbol version in [1, 40]. Payloads that do not fit
// the forced version fail to encode.
func WithVersion(v int) Option {
	return func(e *Encoder) {
		e.version = v
	}
}

// New creates an Encoder.
func New(opts ...Option) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ qrgrid.Encoder = (*Encoder)(nil)

// Encode encodes text at the given error-correction level. Failures are
// returned as *qrgrid.EncodeError.
func (e *Encoder) Encode(text string, level qrgrid.ECLevel) (*qrgrid.Matrix, error) {
	if e.cache == nil {
		return e.encode(text, level)
	}
	k := cacheKey{text: text, level: level}
	if m, ok := e.cache.get(k); ok {
		return m, nil
	}
	m, err := e.encode(text, level)
	if err != nil {
		return nil, err
	}
	e.cache.set(k, m)
	return m, nil
}

func (e *Encoder) encode(text string, level qrgrid.ECLevel) (*qrgrid.Matrix, error) {
	rl, err := recoveryLevel(level)
	if err != nil {
		return nil, &qrgrid.EncodeError{Level: level, Err: err}
	}
	if text == "" {
		return nil, &qrgrid.EncodeError{Level: level, Err: qrgrid.ErrEmptyPayload}
	}

	var q *qrcode.QRCode
	if e.version != 0 {
		q, err = qrcode.NewWithForcedVersion(text, e.version, rl)
	} else {
		q, err = qrcode.New(text, rl)
	}
	if err != nil {
		return nil, &qrgrid.EncodeError{Level: level, Err: err}
	}
	q.DisableBorder = true

	// Bitmap re-runs mask selection on every call.
	m, err := qrgrid.NewMatrix(q.Bitmap())
	if err != nil {
		return nil, &qrgrid.EncodeError{Level: level, Err: err}
	}
	if m.Version() != q.VersionNumber {
		return nil, &qrgrid.EncodeError{
			Level: level,
			Err:   fmt.Errorf("symbol size %d does not match version %d", m.Size(), q.VersionNumber),
		}
	}

	qrgrid.Logger().Debug("encoder: encoded payload",
		"bytes", len(text),
		"version", m.Version(),
		"level", level)
	return m, nil
}

func recoveryLevel(l qrgrid.ECLevel) (qrcode.RecoveryLevel, error) {
	switch l {
	case qrgrid.ECLevelL:
		return qrcode.Low, nil
	case qrgrid.ECLevelM:
		return qrcode.Medium, nil
	case qrgrid.ECLevelQ:
		return qrcode.High, nil
	case qrgrid.ECLevelH:
		return qrcode.Highest, nil
	}
	return 0, fmt.Errorf("%w: %d", qrgrid.ErrInvalidECLevel, uint8(l))
}
