package colorscale

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// Default marker areas (points²) for the least and most skilled player.
const (
	DefaultSizeMin = 40.0
	DefaultSizeMax = 140.0
)

// SizeScale maps a normalized value onto a marker area.
type SizeScale struct {
	Min, Max float64
}

// DefaultSizeScale spans DefaultSizeMin..DefaultSizeMax.
func DefaultSizeScale() SizeScale {
	return SizeScale{Min: DefaultSizeMin, Max: DefaultSizeMax}
}

// Size returns norm·(Max − Min) + Min.
func (s SizeScale) Size(norm float64) float64 {
	return norm*(s.Max-s.Min) + s.Min
}

// Radius converts a marker area in points² to a glyph radius.
// Negative areas give a zero radius.
func Radius(area float64) vg.Length {
	if area <= 0 || math.IsNaN(area) {
		return 0
	}

	return vg.Points(math.Sqrt(area) / 2)
}
