package roster

import "errors"

var (
	// ErrBadHalf is returned when a half/perspective is neither "fh" nor "sh".
	ErrBadHalf = errors.New(`roster: half must be "fh" or "sh"`)

	// ErrUnknownColumn indicates a Column value outside the defined set.
	ErrUnknownColumn = errors.New("roster: unknown column")

	// ErrRowOutOfRange indicates a row index outside [0, Len).
	ErrRowOutOfRange = errors.New("roster: row index out of range")

	// ErrNilTable indicates a nil *Table was passed in.
	ErrNilTable = errors.New("roster: nil table")
)
