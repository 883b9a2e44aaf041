package grouping

import (
	"fmt"

	"github.com/katalvlaran/regmean/roster"
)

// DefaultSize is the number of players per group.
const DefaultSize = 10

// Spec names the columns a selection reads.
type Spec struct {
	Base    roster.Column // rating of the half groups are picked from
	Compare roster.Column // rating of the other half
	Z       roster.Column // ranking key for best/worst
	AbsZ    roster.Column // ranking key for average
}

var (
	// FirstHalfSpec picks groups by first-half performance.
	FirstHalfSpec = Spec{Base: roster.RatingFH, Compare: roster.RatingSH, Z: roster.ZFH, AbsZ: roster.AbsZFH}

	// SecondHalfSpec picks groups by second-half performance.
	SecondHalfSpec = Spec{Base: roster.RatingSH, Compare: roster.RatingFH, Z: roster.ZSH, AbsZ: roster.AbsZSH}
)

// SpecFor returns the Spec that picks groups from half h.
func SpecFor(h roster.Half) (Spec, error) {
	switch h {
	case roster.FirstHalf:
		return FirstHalfSpec, nil
	case roster.SecondHalf:
		return SecondHalfSpec, nil
	}

	return Spec{}, fmt.Errorf("grouping: %w: got %q", roster.ErrBadHalf, string(h))
}

// SpecHalf returns the half spec picks groups from.
func SpecHalf(spec Spec) roster.Half {
	if spec.Base == roster.RatingSH {
		return roster.SecondHalf
	}

	return roster.FirstHalf
}

// Validate checks every column is defined.
func (s Spec) Validate() error {
	for _, c := range []roster.Column{s.Base, s.Compare, s.Z, s.AbsZ} {
		if !c.Valid() {
			return fmt.Errorf("grouping: %w: %d", roster.ErrUnknownColumn, int(c))
		}
	}

	return nil
}

// Entry is one selected player.
type Entry struct {
	Index      int           // row index in the source table
	Player     roster.Player // copy of the row
	Base       float64       // rating in the selection half
	Compare    float64       // rating in the other half
	Regression float64       // Compare − Base
}

// Groups holds the three selections of one Spec.
type Groups struct {
	Spec    Spec
	Best    []Entry
	Worst   []Entry
	Average []Entry
}

// ByGroup returns the entries for g (nil for GroupOther).
func (g *Groups) ByGroup(label roster.Group) []Entry {
	if g == nil {
		return nil
	}
	switch label {
	case roster.GroupBest:
		return g.Best
	case roster.GroupWorst:
		return g.Worst
	case roster.GroupAverage:
		return g.Average
	}

	return nil
}

// LegendItem is one line of a group legend.
type LegendItem struct {
	Group roster.Group
	Label string
}
