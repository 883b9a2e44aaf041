package figure

import (
	"github.com/katalvlaran/regmean/colorscale"
	"github.com/katalvlaran/regmean/roster"
	"gonum.org/v1/plot/vg"
)

// Perspective is the half a panel is drawn from.
type Perspective = roster.Half

// Default panel settings.
const (
	DefaultPerspective = roster.FirstHalf
	DefaultReveal      = true
	DefaultTone        = 0.5 // colormap position used when no normalizer is set
)

// Default figure sizes.
const (
	DefaultRegressionWidth  = 13 * vg.Inch
	DefaultRegressionHeight = 7 * vg.Inch
	DefaultPanelWidth       = 7 * vg.Inch
	DefaultPanelHeight      = 7 * vg.Inch
)

const panicNilColormap = "figure: WithColormap: nil colormap"

// PanelOption configures DrawArrows, DrawDots and GroupPanel.
type PanelOption func(*panelOptions)

type panelOptions struct {
	perspective Perspective
	reveal      bool
	cmap        *colorscale.Colormap
	norm        *colorscale.Normalizer
}

func newPanelOptions(opts ...PanelOption) panelOptions {
	o := panelOptions{
		perspective: DefaultPerspective,
		reveal:      DefaultReveal,
		cmap:        colorscale.MustColormap(colorscale.Blues),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// tone returns the colormap position of p.
func (o panelOptions) tone(p roster.Player) float64 {
	if o.norm == nil {
		return DefaultTone
	}

	return o.norm.At(p.TrueSkill)
}

// WithPerspective selects the focus half. Invalid values are reported as
// ErrBadPerspective by the drawing call.
func WithPerspective(p Perspective) PanelOption {
	return func(o *panelOptions) { o.perspective = p }
}

// WithReveal toggles drawing the other half.
func WithReveal(reveal bool) PanelOption {
	return func(o *panelOptions) { o.reveal = reveal }
}

// WithColormap sets the colormap players are shaded with.
func WithColormap(cm *colorscale.Colormap) PanelOption {
	if cm == nil {
		panic(panicNilColormap)
	}

	return func(o *panelOptions) { o.cmap = cm }
}

// WithNormalizer shades players by latent skill; nil gives every player DefaultTone.
func WithNormalizer(n *colorscale.Normalizer) PanelOption {
	return func(o *panelOptions) { o.norm = n }
}

// FigureOption configures Regression.
type FigureOption func(*figureOptions)

type figureOptions struct {
	width, height vg.Length
	sizes         colorscale.SizeScale
}

func newFigureOptions(opts ...FigureOption) figureOptions {
	o := figureOptions{
		width:  DefaultRegressionWidth,
		height: DefaultRegressionHeight,
		sizes:  colorscale.DefaultSizeScale(),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

const (
	panicBadFigureSize = "figure: WithFigureSize: width and height must be > 0"
	panicBadSizeScale  = "figure: WithSizeScale: need 0 <= Min <= Max"
)

// WithFigureSize sets the output size.
func WithFigureSize(w, h vg.Length) FigureOption {
	if w <= 0 || h <= 0 {
		panic(panicBadFigureSize)
	}

	return func(o *figureOptions) { o.width, o.height = w, h }
}

// WithSizeScale sets the marker area range dots are scaled into.
func WithSizeScale(s colorscale.SizeScale) FigureOption {
	if s.Min < 0 || s.Max < s.Min {
		panic(panicBadSizeScale)
	}

	return func(o *figureOptions) { o.sizes = s }
}
