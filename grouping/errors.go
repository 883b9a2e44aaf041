package grouping

import "errors"

var (
	// ErrGroupSize is returned when n <= 0 or n exceeds the table length.
	ErrGroupSize = errors.New("grouping: group size must be in [1, table length]")

	// ErrNilTable indicates a nil table.
	ErrNilTable = errors.New("grouping: nil table")

	// ErrNilGroups indicates a nil *Groups.
	ErrNilGroups = errors.New("grouping: nil groups")
)
