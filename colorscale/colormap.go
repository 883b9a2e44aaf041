package colorscale

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"gonum.org/v1/plot/palette/brewer"
)

// paletteSize is the largest class count every supported sequential palette has.
const paletteSize = 9

// Supported sequential palettes.
const (
	Blues   = "Blues"
	Greens  = "Greens"
	Reds    = "Reds"
	Greys   = "Greys"
	Oranges = "Oranges"
	Purples = "Purples"
)

var colormapNames = []string{Blues, Greens, Reds, Greys, Oranges, Purples}

// Names lists the supported colormap names.
func Names() []string { return slices.Clone(colormapNames) }

// Colormap is a continuous color scale interpolated between the classes of a
// ColorBrewer sequential palette, light at 0 and dark at 1.
type Colormap struct {
	name  string
	stops []color.NRGBA
}

// NewColormap builds the named colormap.
func NewColormap(name string) (*Colormap, error) {
	if !slices.Contains(colormapNames, name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}
	p, err := brewer.GetPalette(brewer.TypeSequential, name, paletteSize)
	if err != nil {
		return nil, fmt.Errorf("colorscale: %s: %w", name, err)
	}
	cs := p.Colors()
	stops := make([]color.NRGBA, len(cs))
	for i, c := range cs {
		stops[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
	}

	return &Colormap{name: name, stops: stops}, nil
}

// MustColormap is NewColormap for names known at compile time; it panics on error.
func MustColormap(name string) *Colormap {
	cm, err := NewColormap(name)
	if err != nil {
		panic(err)
	}

	return cm
}

// Name returns the palette name.
func (cm *Colormap) Name() string { return cm.name }

// At returns the color at position t. t is clamped into [0, 1]; NaN maps to 0.
func (cm *Colormap) At(t float64) color.NRGBA {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	pos := t * float64(len(cm.stops)-1)
	i := int(pos)
	if i >= len(cm.stops)-1 {
		return cm.stops[len(cm.stops)-1]
	}
	frac := pos - float64(i)
	a, b := cm.stops[i], cm.stops[i+1]

	return color.NRGBA{
		R: lerp8(a.R, b.R, frac),
		G: lerp8(a.G, b.G, frac),
		B: lerp8(a.B, b.B, frac),
		A: lerp8(a.A, b.A, frac),
	}
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}

// Fade returns c with its alpha replaced by alpha ∈ [0, 1].
func Fade(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(255 * math.Max(0, math.Min(1, alpha))))

	return n
}
