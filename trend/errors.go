package trend

import "errors"

var (
	// ErrNoSizes indicates an empty list of group sizes.
	ErrNoSizes = errors.New("trend: no group sizes")

	// ErrTooFewPoints indicates a curve too short to chart.
	ErrTooFewPoints = errors.New("trend: need at least two points to chart")

	// ErrUnsupportedFormat indicates a format other than png or svg.
	ErrUnsupportedFormat = errors.New("trend: unsupported output format")
)
