package config

import "sort"

// Presets are named table ranges for the listing view.
var Presets = map[string]TableConfig{
	"quadrant1": {Show: true, Start: 0, End: 50},
	"quadrant2": {Show: true, Start: 90, End: 140},
	"quadrant3": {Show: true, Start: 180, End: 230},
	"quadrant4": {Show: true, Start: 270, End: 320},
	"special":   {Show: true, Start: 85, End: 95},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *TableConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
