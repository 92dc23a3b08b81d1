package qrgrid

import "testing"

func legendLabels(entries []LegendEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

func TestLegendByVersion(t *testing.T) {
	tests := []struct {
		version int
		want    []string
	}{
		{1, []string{
			"Finder Pattern", "Timing Pattern", "Format Info", "Data / Error Correction",
			"Dark Module (fill in)", "Light Module (leave empty)",
		}},
		{2, []string{
			"Finder Pattern", "Timing Pattern", "Alignment Pattern", "Format Info",
			"Data / Error Correction", "Dark Module (fill in)", "Light Module (leave empty)",
		}},
		{7, []string{
			"Finder Pattern", "Timing Pattern", "Alignment Pattern", "Format Info", "Version Info",
			"Data / Error Correction", "Dark Module (fill in)", "Light Module (leave empty)",
		}},
	}
	for _, tt := range tests {
		got := legendLabels(Legend(tt.version))
		if len(got) != len(tt.want) {
			t.Errorf("Legend(%d) = %q, want %q", tt.version, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Legend(%d)[%d] = %q, want %q", tt.version, i, got[i], tt.want[i])
			}
		}
	}
}

func TestLegendSwatches(t *testing.T) {
	for _, e := range Legend(40) {
		if e.IsRegion && e.Swatch != RegionTone(e.Region).Dark {
			t.Errorf("%q swatch = %s, want dark tone %s", e.Label, e.Swatch, RegionTone(e.Region).Dark)
		}
	}
	l := Legend(1)
	if dark := l[len(l)-2]; dark.Swatch != "#1c1917" || dark.IsRegion {
		t.Errorf("dark module entry = %+v", dark)
	}
	if light := l[len(l)-1]; light.Swatch != "#fafaf9" || light.IsRegion {
		t.Errorf("light module entry = %+v", light)
	}
}

func TestModuleColor(t *testing.T) {
	tests := []struct {
		r       Region
		dark    bool
		regions bool
		want    string
	}{
		{RegionFinderTR, true, true, "#c026d3"},
		{RegionFinderTR, true, false, "#1c1917"},
		{RegionFormat, false, true, "#6ee7b7"},
		{RegionFormat, false, false, "#fafaf9"},
		{RegionData, true, true, "#1c1917"},
	}
	for _, tt := range tests {
		if got := ModuleColor(tt.r, tt.dark, tt.regions); got != tt.want {
			t.Errorf("ModuleColor(%v, %v, %v) = %s, want %s", tt.r, tt.dark, tt.regions, got, tt.want)
		}
	}
}
