package qrgrid

import (
	"fmt"
	"math"
)

// Symbol size limits.
const (
	MinVersion = 1
	MaxVersion = 40
	MinSize    = 21  // side length of a version 1 symbol
	MaxSize    = 177 // side length of a version 40 symbol
)

// Matrix is an immutable square grid of QR modules. A true bit is a dark
// module. Bits are addressed as (row, col) with the origin at the top-left.
type Matrix struct {
	size    int
	version int
	bits    []bool // row-major, size*size
	dark    int
}

// NewMatrix copies bits into a new Matrix. bits[row][col] is true for dark
// modules. The side length must be 21 + 4*(v-1) for some version v in 1..40.
func NewMatrix(bits [][]bool) (*Matrix, error) {
	n := len(bits)
	if err := checkSize(n); err != nil {
		return nil, err
	}
	m := &Matrix{
		size:    n,
		version: VersionForSize(n),
		bits:    make([]bool, n*n),
	}
	for r, row := range bits {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d modules, want %d", ErrNotSquare, r, len(row), n)
		}
		copy(m.bits[r*n:], row)
		for _, b := range row {
			if b {
				m.dark++
			}
		}
	}
	return m, nil
}

// MustMatrix is like NewMatrix but panics on error.
// Use only for fixtures whose dimensions are known to be valid.
func MustMatrix(bits [][]bool) *Matrix {
	m, err := NewMatrix(bits)
	if err != nil {
		panic(err)
	}
	return m
}

func checkSize(n int) error {
	if n < MinSize || n > MaxSize || (n-MinSize)%4 != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return nil
}

// VersionForSize derives the QR version from a side length:
// max(1, round((n-21)/4) + 1).
func VersionForSize(n int) int {
	v := int(math.Floor(float64(n-MinSize)/4+0.5)) + 1
	if v < MinVersion {
		return MinVersion
	}
	return v
}

// SizeForVersion returns the side length of a symbol of the given version.
func SizeForVersion(version int) int {
	return MinSize + 4*(version-1)
}

// Size returns the side length in modules.
func (m *Matrix) Size() int {
	return m.size
}

// Version returns the QR version derived from the side length.
func (m *Matrix) Version() int {
	return m.version
}

// Dark reports whether the module at (row, col) is dark.
// Coordinates outside the matrix report false.
func (m *Matrix) Dark(row, col int) bool {
	if !m.Contains(row, col) {
		return false
	}
	return m.bits[row*m.size+col]
}

// Contains reports whether (row, col) addresses a module of the matrix.
func (m *Matrix) Contains(row, col int) bool {
	return row >= 0 && row < m.size && col >= 0 && col < m.size
}

// Region classifies the module at (row, col).
func (m *Matrix) Region(row, col int) Region {
	return Classify(row, col, m.size, m.version)
}

// Modules returns the total module count, size*size.
func (m *Matrix) Modules() int {
	return m.size * m.size
}

// DarkCount returns the number of dark modules.
func (m *Matrix) DarkCount() int {
	return m.dark
}

// Bits returns a copy of the matrix as rows of bits.
func (m *Matrix) Bits() [][]bool {
	out := make([][]bool, m.size)
	for r := range out {
		out[r] = make([]bool, m.size)
		copy(out[r], m.bits[r*m.size:(r+1)*m.size])
	}
	return out
}
