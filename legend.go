package qrgrid

// LegendEntry is one swatch of the color legend.
type LegendEntry struct {
	Label  string
	Swatch string // "#rrggbb"

	// Region is set for region entries; the module entries have IsRegion false.
	Region   Region
	IsRegion bool
}

var legendRegions = []struct {
	region Region
	label  string
}{
	{RegionFinderTL, "Finder Pattern"},
	{RegionTiming, "Timing Pattern"},
	{RegionAlignment, "Alignment Pattern"},
	{RegionFormat, "Format Info"},
	{RegionVersion, "Version Info"},
	{RegionData, "Data / Error Correction"},
}

// Legend returns the legend for a symbol of the given version. Alignment is
// listed only from version 2 and Version info only from version 7. The two
// module entries always close the list.
func Legend(version int) []LegendEntry {
	out := make([]LegendEntry, 0, len(legendRegions)+2)
	for _, it := range legendRegions {
		if !RegionPresent(it.region, version) {
			continue
		}
		out = append(out, LegendEntry{
			Label:    it.label,
			Swatch:   RegionTone(it.region).Dark,
			Region:   it.region,
			IsRegion: true,
		})
	}
	return append(out,
		LegendEntry{Label: "Dark Module (fill in)", Swatch: FlatTone.Dark},
		LegendEntry{Label: "Light Module (leave empty)", Swatch: FlatTone.Light},
	)
}

// RegionPresent reports whether symbols of the given version contain r.
func RegionPresent(r Region, version int) bool {
	switch r {
	case RegionAlignment:
		return version >= 2
	case RegionVersion:
		return version >= 7
	}
	return r.Valid()
}
