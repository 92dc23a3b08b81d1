package qrgrid

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary is the info-bar description of a matrix.
type Summary struct {
	Size    int
	Version int
	Level   ECLevel
	Modules int
	Dark    int
	Light   int
}

// Summarize counts the modules of m.
func Summarize(m *Matrix, level ECLevel) Summary {
	total := m.Modules()
	dark := m.DarkCount()
	return Summary{
		Size:    m.Size(),
		Version: m.Version(),
		Level:   level,
		Modules: total,
		Dark:    dark,
		Light:   total - dark,
	}
}

// DarkPercent returns the dark share in whole percent, rounded half up.
func (s Summary) DarkPercent() int { return percent(s.Dark, s.Modules) }

// LightPercent returns the light share in whole percent, rounded half up.
func (s Summary) LightPercent() int { return percent(s.Light, s.Modules) }

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*part + total) / (2 * total)
}

// SummaryField is one labeled value of the info bar.
type SummaryField struct {
	Label string
	Value string
}

// Fields formats the summary for display. Counts are grouped per the
// conventions of tag, e.g. "1,369" for English.
func (s Summary) Fields(tag language.Tag) []SummaryField {
	p := message.NewPrinter(tag)
	return []SummaryField{
		{"Size", p.Sprintf("%d × %d", s.Size, s.Size)},
		{"Modules", p.Sprintf("%d", s.Modules)},
		{"Version", p.Sprintf("%d", s.Version)},
		{"EC Level", s.Level.Name()},
		{"Dark", p.Sprintf("%d (%d%%)", s.Dark, s.DarkPercent())},
		{"Light", p.Sprintf("%d (%d%%)", s.Light, s.LightPercent())},
	}
}
