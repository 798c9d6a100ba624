package config

import "sort"

// Presets are named field tunings selectable from the command line.
var Presets = map[string]FieldConfig{
	"default": {},
	"calm": {
		SpeedRange: 0.12, RepelStrength: 0.9, LinkAlpha: 0.3,
	},
	"dense": {
		MinNodes: 60, MaxNodes: 180, LinkWide: 120, LinkNarrow: 90,
	},
	"sparse": {
		MinNodes: 12, MaxNodes: 45, LinkWide: 210, LinkNarrow: 150,
	},
	"storm": {
		SpeedRange: 0.9, RepelStrength: 3.2, PointerBoost: 0.7, RadiusWide: 280, RadiusNarrow: 180,
	},
}

func GetPreset(name string) (FieldConfig, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
