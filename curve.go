package chart

import (
	"math"

	"github.com/gogpu/gg"
)

// Curve is the device-space geometry built for one run of entries.
type Curve struct {
	// Line is stroked with the data set style.
	Line *gg.Path
	// Tail holds the final segment when the dashed tail applies; it is
	// stroked with a short dash. It is empty otherwise.
	Tail *gg.Path
	// Outline is Line and Tail joined, the shape a fill is closed over.
	Outline *gg.Path
}

// Empty reports whether no segment was emitted.
func (c Curve) Empty() bool {
	return c.Outline == nil || len(c.Outline.Elements()) == 0
}

func emptyCurve() Curve {
	return Curve{Line: gg.NewPath(), Tail: gg.NewPath(), Outline: gg.NewPath()}
}

// curveSink projects data-space vertices and routes each segment either
// to the solid line or, for the segment ending at tailAt, to the tail.
type curveSink struct {
	m      gg.Matrix
	c      Curve
	tailAt int
	last   gg.Point
}

func newCurveSink(m gg.Matrix, tailAt int) *curveSink {
	return &curveSink{m: m, c: emptyCurve(), tailAt: tailAt}
}

func (s *curveSink) moveTo(p gg.Point) {
	p = s.m.TransformPoint(p)
	s.c.Line.MoveTo(p.X, p.Y)
	s.c.Outline.MoveTo(p.X, p.Y)
	s.last = p
}

func (s *curveSink) target(j int) *gg.Path {
	if j != s.tailAt {
		return s.c.Line
	}
	if len(s.c.Tail.Elements()) == 0 {
		s.c.Tail.MoveTo(s.last.X, s.last.Y)
	}
	return s.c.Tail
}

func (s *curveSink) lineTo(j int, p gg.Point) {
	p = s.m.TransformPoint(p)
	s.target(j).LineTo(p.X, p.Y)
	s.c.Outline.LineTo(p.X, p.Y)
	s.last = p
}

func (s *curveSink) cubicTo(j int, c1, c2, p gg.Point) {
	c1 = s.m.TransformPoint(c1)
	c2 = s.m.TransformPoint(c2)
	p = s.m.TransformPoint(p)
	s.target(j).CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
	s.c.Outline.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
	s.last = p
}

// tailIndex returns the entry index whose incoming segment belongs to the
// dashed tail, or -1. The tail applies only to a run ending at the final
// entry of a data set drawn without its own dash pattern.
func tailIndex(set *LineDataSet, b XBounds) int {
	if !set.DashLastPoint || len(set.LineDash) > 0 {
		return -1
	}
	if b.Max != set.EntryCount()-1 {
		return -1
	}
	return b.Max
}

// BuildLinear joins the entries of b with straight segments. In
// ModeStepped every pair gets an extra vertex at (x[i], y[i-1]). Fewer than
// two revealed entries produce an empty curve.
func BuildLinear(set *LineDataSet, b XBounds, m gg.Matrix, phaseY float64) Curve {
	if b.Empty() || b.Range < 1 {
		return emptyCurve()
	}
	prev, ok := set.EntryForIndex(b.Min)
	if !ok {
		return emptyCurve()
	}

	stepped := set.Mode == ModeStepped
	s := newCurveSink(m, tailIndex(set, b))
	s.moveTo(gg.Pt(prev.X, prev.Y*phaseY))
	for j := b.Min + 1; j <= b.End(); j++ {
		e, ok := set.EntryForIndex(j)
		if !ok {
			break
		}
		if stepped {
			s.lineTo(j, gg.Pt(e.X, prev.Y*phaseY))
		}
		s.lineTo(j, gg.Pt(e.X, e.Y*phaseY))
		prev = e
	}
	return s.c
}

// BuildCubic draws a Catmull-Rom style cubic through the entries of b.
//
// For each segment prev→cur the controls are
//
//	control1 = prev + (cur - prevPrev)·intensity
//	control2 = cur  - (next - prev)·intensity
//
// with neighbors clamped to [b.Min, b.Max]. With stride > 1 only every
// stride-th entry is visited; the last revealed entry always is.
func BuildCubic(set *LineDataSet, b XBounds, m gg.Matrix, phaseY float64, stride int) Curve {
	if b.Empty() || b.Range < 1 {
		return emptyCurve()
	}
	first, ok := set.EntryForIndex(b.Min)
	if !ok {
		return emptyCurve()
	}

	stride = max(stride, 1)
	in := set.Intensity()
	s := newCurveSink(m, tailIndex(set, b))
	s.moveTo(gg.Pt(first.X, first.Y*phaseY))

	prevPrev, prev, cur := first, first, first
	end := b.End()
	for j := b.Min; j < end; {
		j = min(j+stride, end)

		e, ok := set.EntryForIndex(j)
		if !ok {
			break
		}
		prevPrev, prev, cur = prev, cur, e

		next, ok := set.EntryForIndex(min(j+stride, b.Max))
		if !ok {
			next = cur
		}

		c1 := gg.Pt(prev.X+(cur.X-prevPrev.X)*in, (prev.Y+(cur.Y-prevPrev.Y)*in)*phaseY)
		c2 := gg.Pt(cur.X-(next.X-prev.X)*in, (cur.Y-(next.Y-prev.Y)*in)*phaseY)
		s.cubicTo(j, c1, c2, gg.Pt(cur.X, cur.Y*phaseY))
	}
	return s.c
}

// BuildHorizontalBezier draws cubics whose controls both sit at the
// horizontal midpoint of each pair, at the pair's own y values.
func BuildHorizontalBezier(set *LineDataSet, b XBounds, m gg.Matrix, phaseY float64) Curve {
	if b.Empty() || b.Range < 1 {
		return emptyCurve()
	}
	prev, ok := set.EntryForIndex(b.Min)
	if !ok {
		return emptyCurve()
	}

	s := newCurveSink(m, tailIndex(set, b))
	s.moveTo(gg.Pt(prev.X, prev.Y*phaseY))
	for j := b.Min + 1; j <= b.End(); j++ {
		cur, ok := set.EntryForIndex(j)
		if !ok {
			break
		}
		cpx := prev.X + (cur.X-prev.X)/2
		s.cubicTo(j,
			gg.Pt(cpx, prev.Y*phaseY),
			gg.Pt(cpx, cur.Y*phaseY),
			gg.Pt(cur.X, cur.Y*phaseY))
		prev = cur
	}
	return s.c
}

// DecimationStride returns how many entries a cubic run advances per
// emitted segment so that no more segments than device pixels are built.
//
// It is 1 while entries <= maxPixels (or maxPixels <= 0), otherwise
// entries/maxPixels rounded half up. The stride never decreases as entries
// grows.
func DecimationStride(entries, maxPixels int) int {
	if maxPixels <= 0 || entries <= maxPixels {
		return 1
	}
	return max(1, int(math.Floor(float64(entries)/float64(maxPixels)+0.5)))
}

// exceedsPixelResolution reports whether a cubic over b would need more
// segments than the content has device pixels.
func exceedsPixelResolution(b XBounds, phaseX float64, maxPixels int) bool {
	t := int(math.Ceil(float64(b.Max-b.Min) * phaseX))
	return t > maxPixels
}
