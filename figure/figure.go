package figure

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/katalvlaran/regmean/regression"
	"github.com/katalvlaran/regmean/roster"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Formats lists the output formats Save and Encode accept.
var Formats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tif", "tiff"}

// Figure is a rendered plot together with the data it was drawn from.
type Figure struct {
	Plot   *plot.Plot
	Table  *roster.Table     // annotated copy; nil for plain panels
	Model  *regression.Model // nil for plain panels
	Width  vg.Length
	Height vg.Length
}

// NewFigure wraps a panel for saving at the default panel size.
func NewFigure(p *plot.Plot) *Figure {
	return &Figure{Plot: p, Width: DefaultPanelWidth, Height: DefaultPanelHeight}
}

// Encode writes the figure in format ("png", "svg", …) to w.
func (f *Figure) Encode(w io.Writer, format string) (int64, error) {
	if f == nil || f.Plot == nil {
		return 0, ErrNilPlot
	}
	format, err := checkFormat(format)
	if err != nil {
		return 0, err
	}
	if format == "pdf" {
		defer pdfSafeTitle(f.Plot)()
	}
	wt, err := f.Plot.WriterTo(f.Width, f.Height, format)
	if err != nil {
		return 0, fmt.Errorf("figure: encode %s: %w", format, err)
	}

	return wt.WriteTo(w)
}

// Save writes the figure to path; the extension selects the format.
func (f *Figure) Save(path string) error {
	if f == nil || f.Plot == nil {
		return ErrNilPlot
	}

	return saveTo(path, f.Encode)
}

// Grid tiles plots row-major into one image.
type Grid struct {
	Plots  [][]*plot.Plot
	Width  vg.Length
	Height vg.Length
	Pad    vg.Length
}

// NewGrid arranges plots (row-major, rows×cols of them) into a Grid of the
// given total size.
//
// Errors:
//   - ErrGridShape (rows or cols < 1, or len(plots) != rows*cols), ErrNilPlot.
func NewGrid(rows, cols int, plots []*plot.Plot, w, h vg.Length) (*Grid, error) {
	if rows < 1 || cols < 1 || len(plots) != rows*cols {
		return nil, fmt.Errorf("%w: %d plots for %dx%d", ErrGridShape, len(plots), rows, cols)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: size %vx%v", ErrGridShape, w, h)
	}
	g := &Grid{Plots: make([][]*plot.Plot, rows), Width: w, Height: h, Pad: vg.Millimeter}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := plots[r*cols+c]
			if p == nil {
				return nil, fmt.Errorf("%w: cell (%d,%d)", ErrNilPlot, r, c)
			}
			g.Plots[r] = append(g.Plots[r], p)
		}
	}

	return g, nil
}

// Encode writes the grid in format to w.
func (g *Grid) Encode(w io.Writer, format string) (int64, error) {
	if g == nil || len(g.Plots) == 0 {
		return 0, ErrNilPlot
	}
	format, err := checkFormat(format)
	if err != nil {
		return 0, err
	}
	c, err := draw.NewFormattedCanvas(g.Width, g.Height, format)
	if err != nil {
		return 0, fmt.Errorf("figure: encode %s: %w", format, err)
	}
	tiles := draw.Tiles{
		Rows: len(g.Plots), Cols: len(g.Plots[0]),
		PadX: g.Pad, PadY: g.Pad,
		PadTop: g.Pad, PadBottom: g.Pad, PadLeft: g.Pad, PadRight: g.Pad,
	}
	if format == "pdf" {
		for _, row := range g.Plots {
			for _, p := range row {
				defer pdfSafeTitle(p)()
			}
		}
	}
	canvases := plot.Align(g.Plots, tiles, draw.New(c))
	for r, row := range g.Plots {
		for col, p := range row {
			p.Draw(canvases[r][col])
		}
	}

	return c.WriteTo(w)
}

// Save writes the grid to path; the extension selects the format.
func (g *Grid) Save(path string) error {
	if g == nil {
		return ErrNilPlot
	}

	return saveTo(path, g.Encode)
}

// FormatOf returns the output format implied by path's extension.
func FormatOf(path string) (string, error) {
	return checkFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

func checkFormat(format string) (string, error) {
	f := strings.ToLower(format)
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return f, nil
}

// saveTo encodes into memory first so a failed encode leaves no file behind.
func saveTo(path string, write func(io.Writer, string) (int64, error)) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err = write(&buf, format); err != nil {
		return fmt.Errorf("figure: save %s: %w", path, err)
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("figure: save: %w", err)
	}

	return nil
}
