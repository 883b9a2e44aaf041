package roster

import (
	"fmt"
	"strings"
)

// Player is one row of the roster.
type Player struct {
	ID        string  // "Player 1" … "Player N"
	TrueSkill float64 // latent skill the ratings are drawn around
	RatingFH  float64 // first-half rating, clipped into the configured bounds
	RatingSH  float64 // second-half rating, clipped into the configured bounds
	ZFH       float64
	ZSH       float64
	AbsZFH    float64
	AbsZSH    float64

	// Plotting columns; zero until a figure annotates a copy of the table.
	Group Group
	Size  float64
}

// Column selects one numeric column of the table.
type Column int

// Numeric columns. The String forms match the column names used in figure
// legends and CLI flags.
const (
	TrueSkill Column = iota
	RatingFH
	RatingSH
	ZFH
	ZSH
	AbsZFH
	AbsZSH
	Size
)

var columnNames = [...]string{
	TrueSkill: "true_skill",
	RatingFH:  "rating_fh",
	RatingSH:  "rating_sh",
	ZFH:       "z_fh",
	ZSH:       "z_sh",
	AbsZFH:    "abs_z_fh",
	AbsZSH:    "abs_z_sh",
	Size:      "size",
}

// Columns lists every numeric column in declaration order.
func Columns() []Column {
	return []Column{TrueSkill, RatingFH, RatingSH, ZFH, ZSH, AbsZFH, AbsZSH, Size}
}

// Valid reports whether c is one of the defined columns.
func (c Column) Valid() bool { return c >= TrueSkill && c <= Size }

func (c Column) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Column(%d)", int(c))
	}

	return columnNames[c]
}

// ParseColumn maps a column name ("rating_fh", "z_sh", …) back to a Column.
func ParseColumn(s string) (Column, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c, n := range columnNames {
		if n == name {
			return Column(c), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, s)
}

// Value returns the numeric value of column c for p.
func (p Player) Value(c Column) (float64, error) {
	switch c {
	case TrueSkill:
		return p.TrueSkill, nil
	case RatingFH:
		return p.RatingFH, nil
	case RatingSH:
		return p.RatingSH, nil
	case ZFH:
		return p.ZFH, nil
	case ZSH:
		return p.ZSH, nil
	case AbsZFH:
		return p.AbsZFH, nil
	case AbsZSH:
		return p.AbsZSH, nil
	case Size:
		return p.Size, nil
	}

	return 0, fmt.Errorf("%w: %d", ErrUnknownColumn, int(c))
}

// Half names one half of the match: the perspective a panel is drawn from.
type Half string

const (
	FirstHalf  Half = "fh"
	SecondHalf Half = "sh"
)

// ParseHalf validates s as a Half.
func ParseHalf(s string) (Half, error) {
	h := Half(strings.ToLower(strings.TrimSpace(s)))
	if err := h.Validate(); err != nil {
		return "", fmt.Errorf("%w: got %q", err, s)
	}

	return h, nil
}

// Validate returns ErrBadHalf unless h is FirstHalf or SecondHalf.
func (h Half) Validate() error {
	if h != FirstHalf && h != SecondHalf {
		return ErrBadHalf
	}

	return nil
}

// Other returns the opposite half. Other of an invalid half is itself.
func (h Half) Other() Half {
	switch h {
	case FirstHalf:
		return SecondHalf
	case SecondHalf:
		return FirstHalf
	}

	return h
}

// Label is the axis tick label for the half.
func (h Half) Label() string {
	switch h {
	case FirstHalf:
		return "First Half"
	case SecondHalf:
		return "Second Half"
	}

	return string(h)
}

// Group labels a player for the highlighted-regression figure.
type Group int

const (
	GroupOther Group = iota
	GroupBest
	GroupAverage
	GroupWorst
)

func (g Group) String() string {
	switch g {
	case GroupOther:
		return "Other"
	case GroupBest:
		return "Best"
	case GroupAverage:
		return "Average"
	case GroupWorst:
		return "Worst"
	}

	return fmt.Sprintf("Group(%d)", int(g))
}
