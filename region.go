package qrgrid

import "fmt"

// Region identifies the structural role of a module within a QR symbol.
type Region uint8

const (
	// RegionData covers data and error-correction codewords.
	RegionData Region = iota

	// RegionFinderTL is the top-left finder pattern including its separator.
	RegionFinderTL

	// RegionFinderTR is the top-right finder pattern including its separator.
	RegionFinderTR

	// RegionFinderBL is the bottom-left finder pattern including its separator.
	RegionFinderBL

	// RegionTiming is the alternating strip along row 6 and column 6.
	RegionTiming

	// RegionAlignment is a 5x5 alignment pattern (version 2 and above).
	RegionAlignment

	// RegionFormat holds the format information bits.
	RegionFormat

	// RegionVersion holds the version information bits (version 7 and above).
	RegionVersion

	regionCount
)

// Regions lists every region in legend order.
var Regions = [...]Region{
	RegionFinderTL,
	RegionFinderTR,
	RegionFinderBL,
	RegionTiming,
	RegionAlignment,
	RegionFormat,
	RegionVersion,
	RegionData,
}

var regionNames = [regionCount]string{
	RegionData:      "data",
	RegionFinderTL:  "finder-tl",
	RegionFinderTR:  "finder-tr",
	RegionFinderBL:  "finder-bl",
	RegionTiming:    "timing",
	RegionAlignment: "alignment",
	RegionFormat:    "format",
	RegionVersion:   "version",
}

var regionLabels = [regionCount]string{
	RegionData:      "Data / EC",
	RegionFinderTL:  "Finder Pattern",
	RegionFinderTR:  "Finder Pattern",
	RegionFinderBL:  "Finder Pattern",
	RegionTiming:    "Timing Pattern",
	RegionAlignment: "Alignment Pattern",
	RegionFormat:    "Format Info",
	RegionVersion:   "Version Info",
}

// Valid reports whether r is one of the defined regions.
func (r Region) Valid() bool {
	return r < regionCount
}

// String returns the short identifier of the region, e.g. "finder-tl".
func (r Region) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Region(%d)", uint8(r))
	}
	return regionNames[r]
}

// Label returns the human-readable name shown in the status readout.
// It panics if r is not a defined region.
func (r Region) Label() string {
	mustValid(r)
	return regionLabels[r]
}

// IsFinder reports whether r is one of the three finder regions.
func (r Region) IsFinder() bool {
	return r == RegionFinderTL || r == RegionFinderTR || r == RegionFinderBL
}

// mustValid panics on an unknown region. Classify never produces one, so
// reaching this is a programming error.
func mustValid(r Region) {
	if !r.Valid() {
		panic(fmt.Sprintf("qrgrid: unknown region %d", uint8(r)))
	}
}

// Classify returns the structural region of the module at (row, col) in a
// symbol of the given size and version.
//
// The checks run in a fixed order and the first match wins:
// finder, timing, alignment, format, version, data. Classify is total over
// its inputs and has no side effects.
func Classify(row, col, size, version int) Region {
	if r, ok := finderRegion(row, col, size); ok {
		return r
	}
	if row == 6 || col == 6 {
		return RegionTiming
	}
	if inAlignment(row, col, size, version) {
		return RegionAlignment
	}
	if inFormat(row, col, size) {
		return RegionFormat
	}
	if inVersionInfo(row, col, size, version) {
		return RegionVersion
	}
	return RegionData
}

// finderRegion reports which 9x9 finder zone (pattern plus separator and the
// adjacent format column/row) contains (row, col).
func finderRegion(row, col, size int) (Region, bool) {
	switch {
	case row < 9 && col < 9:
		return RegionFinderTL, true
	case row < 9 && col >= size-8:
		return RegionFinderTR, true
	case row >= size-8 && col < 9:
		return RegionFinderBL, true
	}
	return RegionData, false
}

// inAlignment reports whether (row, col) lies within Chebyshev distance 2 of
// an alignment center that does not collide with a finder zone.
func inAlignment(row, col, size, version int) bool {
	if version < 2 {
		return false
	}
	centers := alignmentCenters(version)
	for _, ar := range centers {
		for _, ac := range centers {
			if _, overlaps := finderRegion(ar, ac, size); overlaps {
				continue
			}
			if abs(row-ar) <= 2 && abs(col-ac) <= 2 {
				return true
			}
		}
	}
	return false
}

// inFormat reports whether (row, col) holds a format bit. The column-8 strip
// starts at size-7, one row later than the row-8 strip's size-8.
func inFormat(row, col, size int) bool {
	if row == 8 && (col < 9 || col >= size-8) {
		return true
	}
	return col == 8 && (row < 9 || row >= size-7)
}

// inVersionInfo reports whether (row, col) is in one of the two 6x3 version
// information blocks present from version 7.
func inVersionInfo(row, col, size, version int) bool {
	if version < 7 {
		return false
	}
	if row < 6 && col >= size-11 && col < size-8 {
		return true
	}
	return col < 6 && row >= size-11 && row < size-8
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
