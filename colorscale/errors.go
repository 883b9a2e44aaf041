package colorscale

import "errors"

var (
	// ErrEmpty indicates a normalizer fitted on no values.
	ErrEmpty = errors.New("colorscale: no values")

	// ErrNonFinite indicates a NaN or ±Inf value.
	ErrNonFinite = errors.New("colorscale: NaN or Inf value")

	// ErrUnknownColormap indicates a palette name outside the supported set.
	ErrUnknownColormap = errors.New("colorscale: unknown colormap")
)
