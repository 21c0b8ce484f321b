package chart

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas is the drawing surface the renderer paints onto.
//
// *gg.Context satisfies Canvas, as does the recording.Recorder used in
// tests. Fill and Stroke consume the current path. Push and Pop save the
// transform and clip only, so every draw sets its own paint and line
// style before filling or stroking.
type Canvas interface {
	Push()
	Pop()
	ClipRect(x, y, w, h float64)
	RotateAbout(angle, x, y float64)

	SetColor(c color.Color)
	SetFillBrush(b gg.Brush)
	SetStrokeBrush(b gg.Brush)
	SetLineWidth(width float64)
	SetLineCap(lineCap gg.LineCap)
	SetDash(lengths ...float64)
	SetDashOffset(offset float64)
	ClearDash()
	SetFillRule(rule gg.FillRule)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	ClearPath()
	DrawCircle(x, y, r float64)
	Fill() error
	Stroke() error

	SetFont(face text.Face)
	DrawStringAnchored(s string, x, y, ax, ay float64)
	MeasureString(s string) (w, h float64)
	DrawImageEx(img *gg.ImageBuf, opts gg.DrawImageOptions)
}

// appendPath replays the elements of p onto the current path of c.
// Quadratic segments are raised to cubics.
func appendPath(c Canvas, p *gg.Path) {
	var cur, start gg.Point
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			c.MoveTo(e.Point.X, e.Point.Y)
			cur, start = e.Point, e.Point
		case gg.LineTo:
			c.LineTo(e.Point.X, e.Point.Y)
			cur = e.Point
		case gg.QuadTo:
			c1 := cur.Lerp(e.Control, 2.0/3.0)
			c2 := e.Point.Lerp(e.Control, 2.0/3.0)
			c.CubicTo(c1.X, c1.Y, c2.X, c2.Y, e.Point.X, e.Point.Y)
			cur = e.Point
		case gg.CubicTo:
			c.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
			cur = e.Point
		case gg.Close:
			c.ClosePath()
			cur = start
		}
	}
}

// strokePath strokes p on c with brush b. Empty paths are skipped.
func strokePath(c Canvas, p *gg.Path, b gg.Brush) {
	if p == nil || len(p.Elements()) == 0 {
		return
	}
	c.ClearPath()
	appendPath(c, p)
	c.SetStrokeBrush(b)
	if err := c.Stroke(); err != nil {
		Logger().Debug("chart: stroke failed", "err", err)
	}
}

// fillPath fills p on c with brush b using rule.
func fillPath(c Canvas, p *gg.Path, b gg.Brush, rule gg.FillRule) {
	if p == nil || len(p.Elements()) == 0 {
		return
	}
	c.ClearPath()
	appendPath(c, p)
	c.SetFillRule(rule)
	c.SetFillBrush(b)
	if err := c.Fill(); err != nil {
		Logger().Debug("chart: fill failed", "err", err)
	}
}
