package trend

import (
	"fmt"

	"github.com/katalvlaran/regmean/grouping"
	"github.com/katalvlaran/regmean/roster"
)

// Point is the mean regression of each group at one group size.
type Point struct {
	Size    int
	Best    float64
	Average float64
	Worst   float64
}

// Curve evaluates the mean regression of every group of half h for each size.
//
// Errors:
//   - ErrNoSizes, wrapped grouping errors (bad half, size out of range).
func Curve(t *roster.Table, h roster.Half, sizes []int) ([]Point, error) {
	if len(sizes) == 0 {
		return nil, ErrNoSizes
	}
	out := make([]Point, 0, len(sizes))
	for _, n := range sizes {
		g, err := grouping.SelectHalf(t, h, n)
		if err != nil {
			return nil, fmt.Errorf("trend: size %d: %w", n, err)
		}
		out = append(out, Point{
			Size:    n,
			Best:    grouping.MeanRegression(g.Best),
			Average: grouping.MeanRegression(g.Average),
			Worst:   grouping.MeanRegression(g.Worst),
		})
	}

	return out, nil
}

// Sizes returns from, from+step, … up to and including to.
func Sizes(from, to, step int) []int {
	if step <= 0 || from > to {
		return nil
	}
	var out []int
	for n := from; n <= to; n += step {
		out = append(out, n)
	}

	return out
}
