package grid

import (
	"fmt"
	"sort"

	"github.com/SophiaLi20/grid/element"
)

// PresetLevel is a radial-count/angular-degree pair selected by a preset
// name and the element's periodic-table row.
type PresetLevel struct {
	RadialCount   int
	AngularDegree int
}

// presets maps ordinal accuracy names to per-row grid sizes. Heavier rows
// get more radial shells and higher angular degrees; rows beyond the table
// reuse the last entry. All degrees stay within the Lebedev tables so a
// preset never falls back to the product rule.
var presets = map[string][5]PresetLevel{
	"coarse":    {{20, 7}, {25, 11}, {30, 13}, {35, 15}, {40, 15}},
	"medium":    {{25, 11}, {35, 13}, {45, 15}, {55, 17}, {60, 17}},
	"fine":      {{35, 13}, {50, 15}, {65, 17}, {80, 19}, {90, 19}},
	"veryfine":  {{50, 15}, {70, 17}, {90, 19}, {110, 23}, {120, 23}},
	"ultrafine": {{70, 17}, {90, 19}, {110, 23}, {130, 23}, {140, 23}},
	"insane":    {{100, 19}, {125, 23}, {150, 23}, {175, 23}, {200, 23}},
}

// PresetNames returns the recognized preset names in ascending accuracy
// order, for error messages and config validation.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return presets[names[i]][0].RadialCount < presets[names[j]][0].RadialCount
	})
	return names
}

// LookupPreset resolves a preset name and atomic number to grid sizes.
// Unknown names fail with ErrUnknownPreset; atomic numbers beyond the
// tabulated rows use the heaviest row's sizes.
func LookupPreset(name string, z int) (PresetLevel, error) {
	rows, ok := presets[name]
	if !ok {
		return PresetLevel{}, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownPreset, name, PresetNames())
	}
	row := element.Row(z)
	if row > len(rows) {
		row = len(rows)
	}
	return rows[row-1], nil
}
