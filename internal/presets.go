package internal

import "sort"

// Built-in polygons, all laid out for a 64x35 board.
var presets = map[string][]Point{
	"tri":  {{30, 5}, {10, 20}, {50, 30}},
	"poly": {{30, 5}, {10, 20}, {15, 30}, {50, 25}},
	"star": {{30, 5}, {10, 20}, {15, 30}, {30, 23}, {50, 30}},
}

// Board shape the presets are designed for.
var PresetShape = Shape{Width: 64, Height: 35}

// Look up a preset by name. The returned polygon owns its vertices, so it can
// be scaled or edited freely.
func Preset(name string) (Polygon, bool) {
	points, ok := presets[name]
	if !ok {
		return Polygon{}, false
	}
	return Polygon{Points: append([]Point(nil), points...)}, true
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
