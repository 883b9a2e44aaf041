package trend

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default chart size in pixels.
const (
	DefaultWidth  = 960
	DefaultHeight = 540
)

var (
	green = drawing.Color{G: 0x80, A: 0xff}
	blue  = drawing.Color{B: 0xff, A: 0xff}
	red   = drawing.Color{R: 0xff, A: 0xff}
	gray  = drawing.Color{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    3,
	}
}

// Chart builds the go-chart definition of a curve: one line per group plus
// a dashed zero line.
func Chart(points []Point, title string) (chart.Chart, error) {
	if len(points) < 2 {
		return chart.Chart{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	xs := make([]float64, len(points))
	best := make([]float64, len(points))
	avg := make([]float64, len(points))
	worst := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.Size)
		best[i], avg[i], worst[i] = p.Best, p.Average, p.Worst
	}
	zero := chart.Style{StrokeColor: gray, StrokeWidth: 1, StrokeDashArray: []float64{5, 3}}

	ch := chart.Chart{
		Title:      title,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Group Size"},
		YAxis:      chart.YAxis{Name: "Mean Regression"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Best Performers", XValues: xs, YValues: best, Style: lineStyle(green)},
			chart.ContinuousSeries{Name: "Average Performers", XValues: xs, YValues: avg, Style: lineStyle(blue)},
			chart.ContinuousSeries{Name: "Worst Performers", XValues: xs, YValues: worst, Style: lineStyle(red)},
			chart.ContinuousSeries{
				Name:    "No Change",
				XValues: []float64{xs[0], xs[len(xs)-1]},
				YValues: []float64{0, 0},
				Style:   zero,
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch, nil
}

// Render writes the chart of points to w as "png" or "svg".
func Render(w io.Writer, points []Point, title, format string) error {
	var rp chart.RendererProvider
	switch strings.ToLower(format) {
	case "png":
		rp = chart.PNG
	case "svg":
		rp = chart.SVG
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	ch, err := Chart(points, title)
	if err != nil {
		return err
	}
	if err := ch.Render(rp, w); err != nil {
		return fmt.Errorf("trend: render: %w", err)
	}

	return nil
}

// Save renders the chart to path; the extension selects png or svg.
// Nothing is written when rendering fails.
func Save(path string, points []Point, title string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	switch strings.ToLower(format) {
	case "png", "svg":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	var buf bytes.Buffer
	if err := Render(&buf, points, title, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("trend: save: %w", err)
	}

	return nil
}
