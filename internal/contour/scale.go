package contour

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/floats"
)

// LevelCount is the number of contour levels and colour bands.
const LevelCount = 24

// RGB is a colour with components in [0, 1].
type RGB [3]float32

var bands = [LevelCount]RGB{
	{0, 0, 1},
	{0, 0.25, 1},
	{0, 0.5, 1},
	{0, 0.625, 1},
	{0, 0.75, 1},
	{0, 0.875, 1},
	{0, 1, 1},
	{0, 1, 0.88},
	{0, 1, 0.66},
	{0, 1, 0.33},
	{0, 1, 0},
	{0.375, 1, 0},
	{0.75, 1, 0},
	{0.875, 1, 0},
	{1, 1, 0},
	{1, 0.875, 0},
	{1, 0.75, 0},
	{1, 0.625, 0},
	{1, 0.5, 0},
	{1, 0.25, 0},
	{1, 0, 0},
	{1, 0, 0.29},
	{1, 0, 0.58},
	{1, 0, 1},
}

// Scale maps values to colour bands. Levels run evenly from zero to the
// largest value the scale was built from.
type Scale struct {
	Levels [LevelCount]float32
}

// NewScale builds a scale whose levels span zero to the maximum of values.
// Negative or empty input gives a flat scale at zero.
func NewScale(values []float32) Scale {
	upper := float32(0)
	for _, v := range values {
		upper = math32.Max(upper, v)
	}
	return ScaleTo(upper)
}

// ScaleTo builds a scale with levels from zero to upper.
func ScaleTo(upper float32) Scale {
	var s Scale
	if upper <= 0 || math32.IsNaN(upper) {
		return s
	}
	var levels [LevelCount]float64
	floats.Span(levels[:], 0, float64(upper))
	for i, l := range levels {
		s.Levels[i] = float32(l)
	}
	return s
}

// Max is the top level of the scale.
func (s Scale) Max() float32 { return s.Levels[LevelCount-1] }

// Band returns the index of the first level above v, or the last band when
// v is at or above every level. A flat scale puts everything in band 0.
func (s Scale) Band(v float32) int {
	if s.Max() == 0 {
		return 0
	}
	for i, l := range s.Levels {
		if v < l {
			return i
		}
	}
	return LevelCount - 1
}

// Colour returns the band colour for v.
func (s Scale) Colour(v float32) RGB {
	return bands[s.Band(v)]
}

// BandColour returns the colour of band i, clamped to the table.
func BandColour(i int) RGB {
	return bands[max(0, min(i, LevelCount-1))]
}

var partPalette = [...]RGB{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{0, 1, 1},
	{1, 0, 1},
	{1, 1, 0},
	{1, 0, 0.58},
	{1, 0.75, 0},
	{0.66, 1, 0},
	{0, 1, 0.66},
	{0, 0.5, 1},
	{1, 0.5, 0},
	{0, 0.75, 1},
}

// PartColour returns the default colour of part i (0-based). The palette
// repeats every 13 parts.
func PartColour(i int) RGB {
	n := len(partPalette)
	return partPalette[((i%n)+n)%n]
}
