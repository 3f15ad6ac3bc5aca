package anchor

import (
	"fmt"
	"maps"
	"slices"
)

// DefaultPreset names the preset used when no anchors are configured.
const DefaultPreset = "days"

var presets = map[string]Set{
	"days":     {{90, 1}, {365, 1.3}, {730, 1.95}, {1095, 3.3}},
	"months":   {{3, 1}, {12, 1.3}, {24, 1.95}, {36, 3.3}},
	"quarters": {{1, 1}, {4, 1.3}, {8, 1.95}, {12, 3.3}},
}

// Preset returns a copy of the named anchor set.
func Preset(name string) (Set, error) {
	s, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	return s.Clone(), nil
}

// Days returns the production anchor set in lock days.
func Days() Set {
	return presets[DefaultPreset].Clone()
}

// PresetNames lists the available presets in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}
