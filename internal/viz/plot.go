package viz

import (
	"errors"
	"fmt"

	"github.com/guptarohit/asciigraph"
)

const (
	PlotHeight = 12
	PlotWidth  = 70
)

var ErrTooFewPoints = errors.New("viz: plot needs at least two points")

// Plot draws ys against evenly spaced xs. The x range goes in the caption
// since asciigraph only labels the y axis.
func Plot(xs, ys []float64, caption string) (string, error) {
	if len(xs) != len(ys) {
		return "", fmt.Errorf("viz: %d x values but %d y values", len(xs), len(ys))
	}
	if len(ys) < 2 {
		return "", ErrTooFewPoints
	}

	full := fmt.Sprintf("%s  [x: %g → %g]", caption, xs[0], xs[len(xs)-1])
	return asciigraph.Plot(ys,
		asciigraph.Height(PlotHeight),
		asciigraph.Width(PlotWidth),
		asciigraph.Caption(full),
	), nil
}
