package chart

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Fill paints the area under a line.
type Fill interface {
	// Brush returns the brush for a fill covering area, with alpha
	// multiplied into every color.
	Brush(area gg.Rect, alpha float64) gg.Brush
}

// SolidFill paints one color.
type SolidFill struct {
	Color gg.RGBA
}

// Brush implements Fill.
func (f SolidFill) Brush(_ gg.Rect, alpha float64) gg.Brush {
	return gg.Solid(withAlpha(f.Color, alpha))
}

// LinearGradientFill paints a multi-stop gradient across the fill area.
// Angle is in degrees in device space: 0 runs left to right, 90 top to
// bottom, 270 bottom to top.
type LinearGradientFill struct {
	Stops []gg.ColorStop
	Angle float64
}

// NewLinearGradientFill spaces colors evenly from offset 0 to 1.
func NewLinearGradientFill(colors []gg.RGBA, angle float64) *LinearGradientFill {
	f := &LinearGradientFill{Angle: angle}
	for i, c := range colors {
		off := 0.0
		if len(colors) > 1 {
			off = float64(i) / float64(len(colors)-1)
		}
		f.Stops = append(f.Stops, gg.ColorStop{Offset: off, Color: c})
	}
	return f
}

// Brush implements Fill. The gradient axis passes through the center of
// area and spans it along Angle.
func (f *LinearGradientFill) Brush(area gg.Rect, alpha float64) gg.Brush {
	center := area.Min.Lerp(area.Max, 0.5)
	rad := f.Angle * math.Pi / 180
	dx := math.Cos(rad) * area.Width() / 2
	dy := math.Sin(rad) * area.Height() / 2

	g := gg.NewLinearGradientBrush(center.X-dx, center.Y-dy, center.X+dx, center.Y+dy)
	for _, s := range f.Stops {
		g.AddColorStop(s.Offset, withAlpha(s.Color, alpha))
	}
	return g
}

// ImageFill paints an image, stretched over the fill area or tiled at its
// native size.
type ImageFill struct {
	Image image.Image
	Tiled bool

	area  gg.Rect
	alpha float64
}

// Brush implements Fill.
func (f *ImageFill) Brush(area gg.Rect, alpha float64) gg.Brush {
	p := &ImageFill{Image: f.Image, Tiled: f.Tiled, area: area, alpha: alpha}
	return gg.CustomBrush{Func: p.ColorAt, Name: "image"}
}

// ColorAt implements gg.Pattern by nearest-neighbor sampling.
func (f *ImageFill) ColorAt(x, y float64) gg.RGBA {
	if f.Image == nil {
		return gg.Transparent
	}
	b := f.Image.Bounds()
	if b.Empty() {
		return gg.Transparent
	}

	var sx, sy int
	if f.Tiled || f.area.Width() <= 0 || f.area.Height() <= 0 {
		sx = b.Min.X + mod(int(math.Floor(x-f.area.Min.X)), b.Dx())
		sy = b.Min.Y + mod(int(math.Floor(y-f.area.Min.Y)), b.Dy())
	} else {
		u := (x - f.area.Min.X) / f.area.Width()
		v := (y - f.area.Min.Y) / f.area.Height()
		sx = b.Min.X + min(max(int(u*float64(b.Dx())), 0), b.Dx()-1)
		sy = b.Min.Y + min(max(int(v*float64(b.Dy())), 0), b.Dy()-1)
	}
	return withAlpha(gg.FromColor(f.Image.At(sx, sy)), f.alpha)
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func withAlpha(c gg.RGBA, alpha float64) gg.RGBA {
	c.A *= alpha
	return c
}

// fillBrush resolves the brush of the data set fill. A gradient Fill takes
// precedence, then a solid color (a SolidFill or FillColor when no Fill is
// set), then a pattern image.
func fillBrush(set *LineDataSet, area gg.Rect) gg.Brush {
	switch f := set.Fill.(type) {
	case *LinearGradientFill:
		if len(f.Stops) > 0 {
			return f.Brush(area, set.FillAlpha)
		}
	case SolidFill:
		return f.Brush(area, set.FillAlpha)
	case nil:
	default:
		if img, ok := f.(*ImageFill); !ok || img.Image != nil {
			return f.Brush(area, set.FillAlpha)
		}
	}
	return SolidFill{Color: set.FillColor}.Brush(area, set.FillAlpha)
}

// CloseFill closes outline against the baseline: a line down to
// (x[min+range], baseline), across to (x[min], baseline) and back up.
// It returns false, leaving outline untouched, when b covers fewer than
// two entries.
func CloseFill(outline *gg.Path, set *LineDataSet, b XBounds, m gg.Matrix, baseline float64) bool {
	if b.Empty() || b.Range <= 0 || len(outline.Elements()) == 0 {
		return false
	}
	last, ok1 := set.EntryForIndex(b.End())
	first, ok2 := set.EntryForIndex(b.Min)
	if !ok1 || !ok2 {
		return false
	}

	p1 := m.TransformPoint(gg.Pt(last.X, baseline))
	p2 := m.TransformPoint(gg.Pt(first.X, baseline))
	outline.LineTo(p1.X, p1.Y)
	outline.LineTo(p2.X, p2.Y)
	outline.Close()
	return true
}

// LinearFillPath builds the fill region of a linear or stepped run: from
// the baseline up to the first entry, along the entries, and back down to
// the baseline.
func LinearFillPath(set *LineDataSet, b XBounds, m gg.Matrix, phaseY, baseline float64) *gg.Path {
	p := gg.NewPath()
	if b.Empty() {
		return p
	}
	first, ok := set.EntryForIndex(b.Min)
	if !ok {
		return p
	}

	at := func(x, y float64) gg.Point { return m.TransformPoint(gg.Pt(x, y)) }

	pt := at(first.X, baseline)
	p.MoveTo(pt.X, pt.Y)
	pt = at(first.X, first.Y*phaseY)
	p.LineTo(pt.X, pt.Y)

	stepped := set.Mode == ModeStepped
	prev, last := first, first
	for j := b.Min + 1; j <= b.End(); j++ {
		e, ok := set.EntryForIndex(j)
		if !ok {
			break
		}
		if stepped {
			pt = at(e.X, prev.Y*phaseY)
			p.LineTo(pt.X, pt.Y)
		}
		pt = at(e.X, e.Y*phaseY)
		p.LineTo(pt.X, pt.Y)
		prev, last = e, e
	}

	pt = at(last.X, baseline)
	p.LineTo(pt.X, pt.Y)
	p.Close()
	return p
}
