package chart

import (
	"math"
	"slices"

	"github.com/gogpu/gg"
)

// GradientStops computes the vertical gradient used to stroke a line.
//
// positions are data-space y values paired with colors. Both lists are
// reversed, because device y grows downward, and each position is
// projected through m and normalized against the vertical extent of
// bbox grown by half the line width, then clamped to [0,1]. The grown box
// is returned alongside the stops.
func GradientStops(colors []gg.RGBA, positions []float64, bbox gg.Rect, m gg.Matrix, lineWidth float64) ([]gg.ColorStop, gg.Rect, error) {
	if len(positions) == 0 {
		return nil, gg.Rect{}, ErrNoGradientPositions
	}
	if len(positions) != len(colors) {
		return nil, gg.Rect{}, ErrGradientMismatch
	}

	half := lineWidth / 2
	box := gg.Rect{
		Min: gg.Pt(bbox.Min.X-half, bbox.Min.Y-half),
		Max: gg.Pt(bbox.Max.X+half, bbox.Max.Y+half),
	}
	if degenerate(box) {
		return nil, gg.Rect{}, ErrDegenerateBounds
	}

	span := box.Max.Y - box.Min.Y
	stops := make([]gg.ColorStop, len(positions))
	for i, pos := range slices.Backward(positions) {
		y := m.TransformPoint(gg.Pt(box.Min.X, pos)).Y
		loc := min(max((y-box.Min.Y)/span, 0), 1)
		stops[len(positions)-1-i] = gg.ColorStop{Offset: loc, Color: colors[i]}
	}
	return stops, box, nil
}

// GradientLineBrush returns a vertical gradient brush spanning box.
func GradientLineBrush(stops []gg.ColorStop, box gg.Rect) *gg.LinearGradientBrush {
	g := gg.NewLinearGradientBrush(0, box.Min.Y, 0, box.Max.Y)
	for _, s := range stops {
		g.AddColorStop(s.Offset, s.Color)
	}
	return g
}

func degenerate(r gg.Rect) bool {
	for _, v := range []float64{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return r.Width() <= 0 || r.Height() <= 0
}
