// Package encoder turns text into qrgrid matrices using
// github.com/skip2/go-qrcode.
//
//	enc := encoder.New()
//	m, err := enc.Encode("https://example.com", qrgrid.ECLevelM)
//
// The returned matrix has no quiet zone; its side length is the symbol size
// (21 for version 1, 177 for version 40).
//
// WithCache keeps recent results so a watcher re-encoding an unchanged
// payload does not run the encoder again.
package encoder
