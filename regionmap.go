package qrgrid

import "strings"

var regionRunes = [regionCount]byte{
	RegionFinderTL:  'F',
	RegionFinderTR:  'F',
	RegionFinderBL:  'F',
	RegionTiming:    'T',
	RegionAlignment: 'A',
	RegionFormat:    'f',
	RegionVersion:   'V',
}

// RegionMap renders m as text, one line per row and one character per
// module: F finder, T timing, A alignment, f format, V version, and '#' or
// '.' for dark or light data modules.
func RegionMap(m *Matrix) string {
	n := m.Size()
	var b strings.Builder
	b.Grow(n * (n + 1))
	for row := range n {
		for col := range n {
			r := m.Region(row, col)
			switch {
			case r != RegionData:
				b.WriteByte(regionRunes[r])
			case m.Dark(row, col):
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
