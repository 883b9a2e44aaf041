package grouping

import (
	"fmt"

	"github.com/katalvlaran/regmean/roster"
)

// Legend returns the four legend lines used by the group panels: one per
// group with its mean regression, then the population mean marker.
func Legend(g *Groups) []LegendItem {
	if g == nil {
		return nil
	}

	return []LegendItem{
		{Group: roster.GroupBest, Label: fmt.Sprintf("Best Performers: %.2f", MeanRegression(g.Best))},
		{Group: roster.GroupAverage, Label: fmt.Sprintf("Average Performers: %.2f", MeanRegression(g.Average))},
		{Group: roster.GroupWorst, Label: fmt.Sprintf("Worst Performers: %.2f", MeanRegression(g.Worst))},
		{Group: roster.GroupOther, Label: "Population Mean"},
	}
}

// Annotate returns a copy of t with every selected row labeled. Labels are
// applied Best, Worst, then Average, so a row present in more than one group
// keeps the last label. Rows outside every group are reset to GroupOther.
// t itself is not modified.
func Annotate(t *roster.Table, g *Groups) (*roster.Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if g == nil {
		return nil, ErrNilGroups
	}
	out := t.Clone()
	for i := 0; i < out.Len(); i++ {
		_ = out.SetGroup(i, roster.GroupOther)
	}
	for _, label := range []roster.Group{roster.GroupBest, roster.GroupWorst, roster.GroupAverage} {
		for _, e := range g.ByGroup(label) {
			if err := out.SetGroup(e.Index, label); err != nil {
				return nil, fmt.Errorf("grouping: annotate %s: %w", label, err)
			}
		}
	}

	return out, nil
}
