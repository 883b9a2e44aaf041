package figure

import (
	"fmt"

	"github.com/katalvlaran/regmean/colorscale"
	"github.com/katalvlaran/regmean/grouping"
	"github.com/katalvlaran/regmean/roster"
	"gonum.org/v1/plot"
)

// PanelKind selects how GroupPanel draws each group.
type PanelKind int

const (
	ArrowPanel PanelKind = iota
	DotPanel
)

func (k PanelKind) String() string {
	switch k {
	case ArrowPanel:
		return "arrows"
	case DotPanel:
		return "dots"
	}

	return fmt.Sprintf("PanelKind(%d)", int(k))
}

// ParsePanelKind maps "arrows" or "dots" to a PanelKind.
func ParsePanelKind(s string) (PanelKind, error) {
	for _, k := range []PanelKind{ArrowPanel, DotPanel} {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrBadPanelKind, s)
}

// groupColormaps shades each group with its own palette.
var groupColormaps = []struct {
	group roster.Group
	cmap  string
}{
	{roster.GroupBest, colorscale.Greens},
	{roster.GroupAverage, colorscale.Blues},
	{roster.GroupWorst, colorscale.Reds},
}

// GroupPanel draws the best, average and worst groups on one panel, each in
// its own colormap (greens, blues, reds), followed by the group legend.
// opts apply to every group; a WithColormap option is overridden per group.
//
// Errors:
//   - ErrNilGroups, ErrBadPanelKind, ErrBadPerspective.
func GroupPanel(kind PanelKind, g *grouping.Groups, opts ...PanelOption) (*plot.Plot, error) {
	if g == nil {
		return nil, ErrNilGroups
	}
	var drawFn func(*plot.Plot, []grouping.Entry, ...PanelOption) error
	switch kind {
	case ArrowPanel:
		drawFn = DrawArrows
	case DotPanel:
		drawFn = DrawDots
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadPanelKind, int(kind))
	}

	p := NewPanel()
	for _, gc := range groupColormaps {
		groupOpts := append(append([]PanelOption(nil), opts...), WithColormap(colorscale.MustColormap(gc.cmap)))
		if err := drawFn(p, g.ByGroup(gc.group), groupOpts...); err != nil {
			return nil, fmt.Errorf("figure: %s panel %s: %w", kind, gc.group, err)
		}
	}
	if err := AddLegend(p, grouping.Legend(g)); err != nil {
		return nil, err
	}

	return p, nil
}
