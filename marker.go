package chart

import "github.com/gogpu/gg"

// Marker is drawn at the device point of each highlight after the rest of
// the chart.
type Marker interface {
	Draw(c Canvas, pt gg.Point)
}

// MarkerFunc adapts a function to Marker.
type MarkerFunc func(c Canvas, pt gg.Point)

// Draw calls f.
func (f MarkerFunc) Draw(c Canvas, pt gg.Point) { f(c, pt) }

// HighlightMarker draws a dot with a translucent halo.
type HighlightMarker struct {
	Color       gg.RGBA
	Radius      float64
	ShadowWidth float64
}

// NewHighlightMarker returns a marker with a 3px dot and a 3px halo.
func NewHighlightMarker(c gg.RGBA) *HighlightMarker {
	return &HighlightMarker{Color: c, Radius: 3, ShadowWidth: 3}
}

// Size returns the diameter of the halo.
func (m *HighlightMarker) Size() float64 {
	return (m.Radius + m.ShadowWidth) * 2
}

// Draw implements Marker.
func (m *HighlightMarker) Draw(c Canvas, pt gg.Point) {
	c.SetFillRule(gg.FillRuleEvenOdd)

	c.ClearPath()
	c.DrawCircle(pt.X, pt.Y, m.Radius+m.ShadowWidth)
	c.SetFillBrush(gg.Solid(withAlpha(m.Color, 0.4)))
	if err := c.Fill(); err != nil {
		Logger().Debug("chart: marker halo fill failed", "err", err)
	}

	c.ClearPath()
	c.DrawCircle(pt.X, pt.Y, m.Radius)
	c.SetFillBrush(gg.Solid(m.Color))
	if err := c.Fill(); err != nil {
		Logger().Debug("chart: marker fill failed", "err", err)
	}
}
