package qrgrid

import (
	"fmt"
	"strings"
)

// ECLevel is a QR error-correction level.
type ECLevel uint8

// Error-correction levels in increasing order of redundancy.
const (
	ECLevelL ECLevel = iota // ~7% recovery
	ECLevelM                // ~15% recovery
	ECLevelQ                // ~25% recovery
	ECLevelH                // ~30% recovery
)

// ECLevels lists every level from lowest to highest redundancy.
var ECLevels = [...]ECLevel{ECLevelL, ECLevelM, ECLevelQ, ECLevelH}

// String returns the single-letter code: "L", "M", "Q" or "H".
func (l ECLevel) String() string {
	switch l {
	case ECLevelL:
		return "L"
	case ECLevelM:
		return "M"
	case ECLevelQ:
		return "Q"
	case ECLevelH:
		return "H"
	}
	return fmt.Sprintf("ECLevel(%d)", uint8(l))
}

// Name returns the descriptive name: "Low", "Medium", "Quartile" or "High".
func (l ECLevel) Name() string {
	switch l {
	case ECLevelL:
		return "Low"
	case ECLevelM:
		return "Medium"
	case ECLevelQ:
		return "Quartile"
	case ECLevelH:
		return "High"
	}
	return l.String()
}

// ParseECLevel parses a level letter or name, case-insensitively.
func ParseECLevel(s string) (ECLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "low":
		return ECLevelL, nil
	case "m", "medium":
		return ECLevelM, nil
	case "q", "quartile":
		return ECLevelQ, nil
	case "h", "high":
		return ECLevelH, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidECLevel, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l ECLevel) MarshalText() ([]byte, error) {
	if l > ECLevelH {
		return nil, fmt.Errorf("%w: %d", ErrInvalidECLevel, uint8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *ECLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseECLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
