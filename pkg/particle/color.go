package particle

import "strings"

// Color selects the smoke tint.
type Color int

const (
	White Color = iota
	LightGrey
	Grey
	Orange
	Black
	Blue
	Red
	Green

	ColorCount = int(Green) + 1
)

var palette = [ColorCount]struct {
	name string
	rgb  [3]float64
}{
	White:     {"white", [3]float64{1, 1, 1}},
	LightGrey: {"lightgrey", [3]float64{0.85, 0.85, 0.85}},
	Grey:      {"grey", [3]float64{0.5, 0.5, 0.5}},
	Orange:    {"orange", [3]float64{1, 0.65, 0}},
	Black:     {"black", [3]float64{0, 0, 0}},
	Blue:      {"blue", [3]float64{0, 0, 1}},
	Red:       {"red", [3]float64{1, 0, 0}},
	Green:     {"green", [3]float64{0, 1, 0}},
}

// Valid reports whether c is one of the palette entries.
func (c Color) Valid() bool {
	return c >= 0 && int(c) < ColorCount
}

// RGB returns the colour components in [0, 1].
func (c Color) RGB() [3]float64 {
	if !c.Valid() {
		return palette[LightGrey].rgb
	}
	return palette[c].rgb
}

func (c Color) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return palette[c].name
}

// Next returns the following palette entry, wrapping after Green.
func (c Color) Next() Color {
	if !c.Valid() {
		return LightGrey
	}
	return Color((int(c) + 1) % ColorCount)
}

// ParseColor resolves a palette entry by name; "lightgray" and "gray" are
// accepted too.
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "gray", "grey")
	for i, p := range palette {
		if p.name == name {
			return Color(i), true
		}
	}
	return -1, false
}
