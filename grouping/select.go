package grouping

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/regmean/roster"
)

// Select picks the best, worst and average n players of t under spec.
//
// Errors:
//   - ErrNilTable, ErrGroupSize (n <= 0 or n > t.Len()),
//     roster.ErrUnknownColumn (invalid spec).
//
// Complexity:
//
//	Time O(N log N) (three stable sorts), Memory O(N).
func Select(t *roster.Table, spec Spec, n int) (*Groups, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if n <= 0 || n > t.Len() {
		return nil, fmt.Errorf("%w: n=%d len=%d", ErrGroupSize, n, t.Len())
	}

	best, err := Largest(t, spec.Z, n)
	if err != nil {
		return nil, err
	}
	worst, err := Smallest(t, spec.Z, n)
	if err != nil {
		return nil, err
	}
	avg, err := Smallest(t, spec.AbsZ, n)
	if err != nil {
		return nil, err
	}

	g := &Groups{Spec: spec}
	if g.Best, err = entries(t, spec, best); err != nil {
		return nil, err
	}
	if g.Worst, err = entries(t, spec, worst); err != nil {
		return nil, err
	}
	if g.Average, err = entries(t, spec, avg); err != nil {
		return nil, err
	}

	return g, nil
}

// SelectHalf is Select with the Spec of half h.
func SelectHalf(t *roster.Table, h roster.Half, n int) (*Groups, error) {
	spec, err := SpecFor(h)
	if err != nil {
		return nil, err
	}

	return Select(t, spec, n)
}

// Largest returns the row indices of the n largest values of col, largest
// first. Equal values keep table order.
func Largest(t *roster.Table, col roster.Column, n int) ([]int, error) {
	return ranked(t, col, n, func(a, b float64) int { return cmp.Compare(b, a) })
}

// Smallest returns the row indices of the n smallest values of col, smallest
// first. Equal values keep table order.
func Smallest(t *roster.Table, col roster.Column, n int) ([]int, error) {
	return ranked(t, col, n, cmp.Compare[float64])
}

func ranked(t *roster.Table, col roster.Column, n int, order func(a, b float64) int) ([]int, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	vals, err := t.Column(col)
	if err != nil {
		return nil, err
	}
	if n <= 0 || n > len(vals) {
		return nil, fmt.Errorf("%w: n=%d len=%d", ErrGroupSize, n, len(vals))
	}
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int { return order(vals[a], vals[b]) })

	return idx[:n:n], nil
}

func entries(t *roster.Table, spec Spec, idx []int) ([]Entry, error) {
	out := make([]Entry, len(idx))
	for k, i := range idx {
		p, err := t.Row(i)
		if err != nil {
			return nil, err
		}
		base, _ := p.Value(spec.Base)
		compare, _ := p.Value(spec.Compare)
		out[k] = Entry{
			Index:      i,
			Player:     p,
			Base:       base,
			Compare:    compare,
			Regression: compare - base,
		}
	}

	return out, nil
}

// MeanRegression is the average Compare − Base over entries; NaN when empty.
func MeanRegression(es []Entry) float64 {
	if len(es) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, e := range es {
		sum += e.Regression
	}

	return sum / float64(len(es))
}
