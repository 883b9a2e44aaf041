package figure

import "errors"

var (
	// ErrBadPerspective indicates a perspective other than "fh" or "sh".
	ErrBadPerspective = errors.New("figure: perspective must be 'fh' or 'sh'")

	// ErrNilPlot indicates a nil *plot.Plot.
	ErrNilPlot = errors.New("figure: nil plot")

	// ErrNilTable indicates a nil roster table.
	ErrNilTable = errors.New("figure: nil table")

	// ErrNilGroups indicates nil groups.
	ErrNilGroups = errors.New("figure: nil groups")

	// ErrGridShape indicates a plot count that does not fill rows×cols.
	ErrGridShape = errors.New("figure: plots do not match grid shape")

	// ErrUnsupportedFormat indicates an output format gonum/plot cannot encode.
	ErrUnsupportedFormat = errors.New("figure: unsupported output format")

	// ErrBadPanelKind indicates an unknown PanelKind.
	ErrBadPanelKind = errors.New("figure: unknown panel kind")
)
