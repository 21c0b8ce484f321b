package chart

import (
	"errors"
	"math"

	"github.com/gogpu/gg"
)

// DataProvider is what the renderer reads from the chart each frame.
type DataProvider interface {
	DataSets() []*LineDataSet
	Transformer() *Transformer
	LowestVisibleX() float64
	HighestVisibleX() float64
	ChartXMax() float64
	ChartYMin() float64
	ChartYMax() float64
	DataYMin() float64
	DataYMax() float64
	MaxVisibleCount() int
}

// LineRenderer draws line data sets onto a Canvas.
//
// A renderer holds scratch state reused between frames and must not be
// used by two goroutines at once. Drawing never fails: problems skip the
// affected sub-operation and are logged.
type LineRenderer struct {
	provider DataProvider
	vp       *ViewPort
	anim     *Animator
	opts     rendererOptions

	bounds   XBounds
	segments []gg.Point
}

// NewLineRenderer returns a renderer reading data from p.
func NewLineRenderer(p DataProvider, vp *ViewPort, anim *Animator, opts ...RendererOption) *LineRenderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if anim == nil {
		anim = NewAnimator()
	}
	return &LineRenderer{provider: p, vp: vp, anim: anim, opts: o}
}

// maxPixels is the number of device pixels across the content.
func (r *LineRenderer) maxPixels() int {
	return int(r.vp.ContentWidth() * r.opts.screenScale)
}

func (r *LineRenderer) visibleBounds(set *LineDataSet) XBounds {
	return ComputeXBounds(set, r.provider.LowestVisibleX(), r.provider.HighestVisibleX(), r.anim.PhaseX)
}

// DrawData strokes and fills every visible data set.
func (r *LineRenderer) DrawData(c Canvas) {
	for _, set := range r.provider.DataSets() {
		if set == nil || !set.Visible || set.EntryCount() == 0 {
			continue
		}
		r.drawDataSet(c, set)
	}
}

func (r *LineRenderer) drawDataSet(c Canvas, set *LineDataSet) {
	r.bounds = r.visibleBounds(set)
	if r.bounds.Empty() {
		return
	}
	m := r.provider.Transformer().ValueToPixelMatrix()

	c.Push()
	defer c.Pop()

	content := r.vp.ContentRect()
	c.ClipRect(content.Min.X, content.Min.Y, content.Width()*r.anim.PhaseX, content.Height())

	mode := set.Mode
	if mode == ModeCubicBezier && exceedsPixelResolution(r.bounds, r.anim.PhaseX, r.maxPixels()) {
		Logger().Debug("chart: cubic exceeds pixel resolution, drawing linear",
			"label", set.Label, "entries", r.bounds.Max-r.bounds.Min, "pixels", r.maxPixels())
		mode = ModeLinear
	}

	runs := []XBounds{r.bounds}
	if set.CheckGaps {
		runs = SplitOnGaps(set, r.bounds)
	}
	for _, run := range runs {
		r.drawRun(c, set, run, mode, m)
	}
}

func (r *LineRenderer) drawRun(c Canvas, set *LineDataSet, run XBounds, mode Mode, m gg.Matrix) {
	phaseY := r.anim.PhaseY

	switch mode {
	case ModeCubicBezier:
		// Stays 1 here while the linear fallback above catches oversized
		// windows; it bounds segments when BuildCubic is driven directly.
		stride := DecimationStride(run.Range, r.maxPixels())
		r.drawCurve(c, set, run, BuildCubic(set, run, m, phaseY, stride), m)
	case ModeHorizontalBezier:
		r.drawCurve(c, set, run, BuildHorizontalBezier(set, run, m, phaseY), m)
	default:
		if set.DrawFilled {
			r.fillArea(c, set, LinearFillPath(set, run, m, phaseY, r.baseline(set)))
		}
		if len(set.Colors) > 1 && !set.DrawLineWithGradient {
			r.drawSegments(c, set, run, m)
			return
		}
		r.strokeCurve(c, set, BuildLinear(set, run, m, phaseY), m)
	}
}

// drawCurve fills under a curve, closing its outline at the baseline, and
// then strokes it.
func (r *LineRenderer) drawCurve(c Canvas, set *LineDataSet, run XBounds, curve Curve, m gg.Matrix) {
	if curve.Empty() {
		return
	}
	if set.DrawFilled {
		outline := curve.Outline.Clone()
		if CloseFill(outline, set, run, m, r.baseline(set)) {
			r.fillArea(c, set, outline)
		}
	}
	r.strokeCurve(c, set, curve, m)
}

func (r *LineRenderer) strokeCurve(c Canvas, set *LineDataSet, curve Curve, m gg.Matrix) {
	if curve.Empty() {
		return
	}
	r.applyLineStyle(c, set)

	var brush gg.Brush = gg.Solid(set.Color(0))
	if set.DrawLineWithGradient {
		g, ok := r.gradientBrush(set, curve, m)
		if !ok {
			return
		}
		brush = g
	}

	strokePath(c, curve.Line, brush)
	if len(curve.Tail.Elements()) > 0 {
		c.SetDash(r.opts.tailDash...)
		c.SetDashOffset(0)
		strokePath(c, curve.Tail, brush)
		r.applyLineStyle(c, set)
	}
}

func (r *LineRenderer) gradientBrush(set *LineDataSet, curve Curve, m gg.Matrix) (gg.Brush, bool) {
	stops, box, err := GradientStops(set.Colors, set.GradientPositions, curve.Outline.BoundingBox(), m, set.LineWidth)
	switch {
	case errors.Is(err, ErrDegenerateBounds):
		Logger().Debug("chart: gradient line skipped", "label", set.Label, "err", err)
		return nil, false
	case err != nil:
		Logger().Warn("chart: gradient line skipped", "label", set.Label, "err", err)
		return nil, false
	}
	return GradientLineBrush(stops, box), true
}

func (r *LineRenderer) applyLineStyle(c Canvas, set *LineDataSet) {
	c.SetLineWidth(set.LineWidth)
	c.SetLineCap(set.LineCap)
	if len(set.LineDash) > 0 {
		c.SetDash(set.LineDash...)
		c.SetDashOffset(set.LineDashPhase)
	} else {
		c.ClearDash()
	}
}

// drawSegments strokes each entry pair on its own with the color of its
// first entry, reusing the renderer scratch buffer.
func (r *LineRenderer) drawSegments(c Canvas, set *LineDataSet, run XBounds, m gg.Matrix) {
	stepped := set.Mode == ModeStepped
	n := 2
	if stepped {
		n = 4
	}
	if cap(r.segments) < n {
		r.segments = make([]gg.Point, n)
	}
	seg := r.segments[:n]
	phaseY := r.anim.PhaseY
	tail := tailIndex(set, run)

	r.applyLineStyle(c, set)
	for j := run.Min; j < run.End(); j++ {
		e, ok := set.EntryForIndex(j)
		if !ok {
			continue
		}
		next, ok := set.EntryForIndex(j + 1)
		if !ok {
			break
		}

		seg[0] = gg.Pt(e.X, e.Y*phaseY)
		if stepped {
			seg[1] = gg.Pt(next.X, seg[0].Y)
			seg[2] = seg[1]
			seg[3] = gg.Pt(next.X, next.Y*phaseY)
		} else {
			seg[1] = gg.Pt(next.X, next.Y*phaseY)
		}
		for k := range seg {
			seg[k] = m.TransformPoint(seg[k])
		}

		if !r.vp.IsInBoundsRight(seg[0].X) {
			break
		}
		first, last := seg[0], seg[n-1]
		if first == last {
			continue
		}
		if !r.vp.IsInBoundsLeft(last.X) ||
			!r.vp.IsInBoundsTop(max(first.Y, last.Y)) ||
			!r.vp.IsInBoundsBottom(min(first.Y, last.Y)) {
			continue
		}

		if j+1 == tail {
			c.SetDash(r.opts.tailDash...)
		}
		c.ClearPath()
		for k := 0; k < n; k += 2 {
			c.MoveTo(seg[k].X, seg[k].Y)
			c.LineTo(seg[k+1].X, seg[k+1].Y)
		}
		c.SetStrokeBrush(gg.Solid(set.Color(j)))
		if err := c.Stroke(); err != nil {
			Logger().Debug("chart: segment stroke failed", "index", j, "err", err)
		}
	}
	r.applyLineStyle(c, set)
}

func (r *LineRenderer) baseline(set *LineDataSet) float64 {
	if set.FillFormatter == nil {
		return 0
	}
	return set.FillFormatter.FillLinePosition(set, r.provider)
}

func (r *LineRenderer) fillArea(c Canvas, set *LineDataSet, p *gg.Path) {
	if len(p.Elements()) == 0 {
		return
	}
	fillPath(c, p, fillBrush(set, p.BoundingBox()), gg.FillRuleNonZero)
}

// DrawExtras draws the entry circles.
func (r *LineRenderer) DrawExtras(c Canvas) {
	r.drawCircles(c)
}

func (r *LineRenderer) drawCircles(c Canvas) {
	m := r.provider.Transformer().ValueToPixelMatrix()
	phaseY := r.anim.PhaseY

	for _, set := range r.provider.DataSets() {
		if set == nil || !set.Visible || !set.DrawCircles || set.EntryCount() == 0 {
			continue
		}
		r.bounds = r.visibleBounds(set)

		radius := set.CircleRadius
		hole := set.CircleHoleRadius
		drawHole := set.DrawCircleHole && hole < radius && hole > 0
		clearHole := drawHole && (set.CircleHoleColor == nil || set.CircleHoleColor.A == 0)

		for j := range r.bounds.All() {
			e, ok := set.EntryForIndex(j)
			if !ok {
				break
			}
			if set.CheckGaps && !set.IsValid(e) {
				continue
			}
			pt := m.TransformPoint(gg.Pt(e.X, e.Y*phaseY))
			if !r.vp.IsInBoundsRight(pt.X) {
				break
			}
			if !r.vp.IsInBoundsLeft(pt.X) || !r.vp.IsInBoundsY(pt.Y) {
				continue
			}

			color := gg.Solid(set.CircleColor(j))
			c.ClearPath()
			if clearHole {
				c.DrawCircle(pt.X, pt.Y, radius)
				c.DrawCircle(pt.X, pt.Y, hole)
				r.fillCurrent(c, color, gg.FillRuleEvenOdd)
				continue
			}

			c.DrawCircle(pt.X, pt.Y, radius)
			r.fillCurrent(c, color, gg.FillRuleNonZero)
			if drawHole {
				c.DrawCircle(pt.X, pt.Y, hole)
				r.fillCurrent(c, gg.Solid(*set.CircleHoleColor), gg.FillRuleNonZero)
			}
		}
	}
}

func (r *LineRenderer) fillCurrent(c Canvas, b gg.Brush, rule gg.FillRule) {
	c.SetFillRule(rule)
	c.SetFillBrush(b)
	if err := c.Fill(); err != nil {
		Logger().Debug("chart: fill failed", "err", err)
	}
}

// valuesAllowed reports whether few enough entries are visible for value
// labels to stay readable.
func (r *LineRenderer) valuesAllowed() bool {
	total := 0
	for _, set := range r.provider.DataSets() {
		if set != nil {
			total += set.EntryCount()
		}
	}
	return float64(total) < float64(r.provider.MaxVisibleCount())*r.vp.ScaleX()
}

// DrawValues draws value labels and entry icons.
func (r *LineRenderer) DrawValues(c Canvas) {
	if !r.valuesAllowed() {
		return
	}
	m := r.provider.Transformer().ValueToPixelMatrix()
	phaseY := r.anim.PhaseY
	if r.opts.valueFont != nil {
		c.SetFont(r.opts.valueFont)
	}

	for i, set := range r.provider.DataSets() {
		if set == nil || !set.Visible || set.EntryCount() == 0 || !(set.DrawValues || set.DrawIcons) {
			continue
		}
		formatter := set.ValueFormatter
		if formatter == nil {
			formatter = DefaultValueFormatter{Decimals: decimalsFor(max(math.Abs(set.YMin()), math.Abs(set.YMax())))}
		}
		offset := float64(int(set.CircleRadius * 1.75))
		if !set.DrawCircles {
			offset = float64(int(offset) / 2)
		}
		angle := set.ValueLabelAngle * math.Pi / 180

		r.bounds = r.visibleBounds(set)
		for j := range r.bounds.All() {
			e, ok := set.EntryForIndex(j)
			if !ok {
				break
			}
			if set.CheckGaps && !set.IsValid(e) {
				continue
			}
			pt := m.TransformPoint(gg.Pt(e.X, e.Y*phaseY))
			if !r.vp.IsInBoundsRight(pt.X) {
				break
			}
			if !r.vp.IsInBoundsLeft(pt.X) || !r.vp.IsInBoundsY(pt.Y) {
				continue
			}

			if set.DrawValues {
				label := formatter.FormatValue(e.Y, e, i, r.vp)
				_, h := c.MeasureString(label)
				y := pt.Y - offset - h
				c.SetColor(set.ValueTextColor(j).Color())
				if angle != 0 {
					c.Push()
					c.RotateAbout(angle, pt.X, y)
					c.DrawStringAnchored(label, pt.X, y, 0.5, 1)
					c.Pop()
				} else {
					c.DrawStringAnchored(label, pt.X, y, 0.5, 1)
				}
			}

			if set.DrawIcons && e.Icon != nil {
				w, h := e.Icon.Bounds()
				cx, cy := pt.X+set.IconsOffset.X, pt.Y+set.IconsOffset.Y
				c.DrawImageEx(e.Icon, gg.DrawImageOptions{
					X:         cx - float64(w)/2,
					Y:         cy - float64(h)/2,
					DstWidth:  float64(w),
					DstHeight: float64(h),
					Opacity:   1,
				})
			}
		}
	}
}

// decimalsFor returns how many decimals make values around ref readable.
func decimalsFor(ref float64) int {
	if ref == 0 || math.IsNaN(ref) || math.IsInf(ref, 0) {
		return 0
	}
	return max(int(math.Ceil(-math.Log10(ref)))+2, 0)
}

// DrawHighlighted draws the indicator lines of each highlight and records
// where it was drawn. Highlights that name an unknown data set, no longer
// match an entry, or are not yet revealed are skipped.
func (r *LineRenderer) DrawHighlighted(c Canvas, highlights []*Highlight) {
	sets := r.provider.DataSets()
	m := r.provider.Transformer().ValueToPixelMatrix()
	phaseX, phaseY := r.anim.PhaseX, r.anim.PhaseY

	for _, h := range highlights {
		if h == nil {
			continue
		}
		h.hasDraw = false
		if h.DataSetIndex < 0 || h.DataSetIndex >= len(sets) || sets[h.DataSetIndex] == nil {
			Logger().Debug("chart: highlight skipped", "index", h.DataSetIndex, "err", ErrInvalidDataSetIndex)
			continue
		}
		set := sets[h.DataSetIndex]
		if !set.HighlightEnabled {
			continue
		}

		idx := set.EntryIndex(h.X, h.Y, RoundClosest)
		e, ok := set.EntryForIndex(idx)
		if !ok || float64(idx) >= float64(set.EntryCount())*phaseX {
			continue
		}
		if e.X > r.provider.ChartXMax()*phaseX {
			continue
		}

		pt := m.TransformPoint(gg.Pt(e.X, e.Y*phaseY))
		if !r.vp.IsInBoundsX(pt.X) {
			continue
		}
		h.SetDraw(pt)
		r.drawHighlightLines(c, pt, set)
	}
}

func (r *LineRenderer) drawHighlightLines(c Canvas, pt gg.Point, set *LineDataSet) {
	c.SetLineWidth(set.HighlightLineWidth)
	if len(set.HighlightDash) > 0 {
		c.SetDash(set.HighlightDash...)
		c.SetDashOffset(set.HighlightDashPhase)
	} else {
		c.ClearDash()
	}

	brush := gg.Solid(set.HighlightColor)
	content := r.vp.ContentRect()
	if set.DrawVerticalHighlight {
		c.ClearPath()
		c.MoveTo(pt.X, content.Min.Y)
		c.LineTo(pt.X, content.Max.Y)
		c.SetStrokeBrush(brush)
		if err := c.Stroke(); err != nil {
			Logger().Debug("chart: highlight stroke failed", "err", err)
		}
	}
	if set.DrawHorizontalHighlight {
		c.ClearPath()
		c.MoveTo(content.Min.X, pt.Y)
		c.LineTo(content.Max.X, pt.Y)
		c.SetStrokeBrush(brush)
		if err := c.Stroke(); err != nil {
			Logger().Debug("chart: highlight stroke failed", "err", err)
		}
	}
}

// DrawMinMaxFlags draws a callout at the highest and lowest visible entry
// of each data set. Flags are enabled with WithMinMaxFlags and appear only
// once the x animation has completed.
func (r *LineRenderer) DrawMinMaxFlags(c Canvas) {
	if !r.opts.flags || r.anim.PhaseX < 1 {
		return
	}
	m := r.provider.Transformer().ValueToPixelMatrix()
	if r.opts.flagFont != nil {
		c.SetFont(r.opts.flagFont)
	}

	for i, set := range r.provider.DataSets() {
		if set == nil || !set.Visible || set.EntryCount() == 0 {
			continue
		}
		r.bounds = r.visibleBounds(set)
		x := ScanExtremes(set, r.bounds, m, r.vp)
		if x.MaxIndex >= 0 {
			r.drawFlag(c, set, i, x.Max, FlagMax, m)
		}
		if x.MinIndex >= 0 {
			r.drawFlag(c, set, i, x.Min, FlagMin, m)
		}
	}
}

func (r *LineRenderer) drawFlag(c Canvas, set *LineDataSet, dataSetIndex int, e Entry, kind FlagKind, m gg.Matrix) {
	label := formatPlain(e.Y)
	if set.MaxMinFormatter != nil {
		label = set.MaxMinFormatter.FormatValue(e.Y, e, dataSetIndex, r.vp)
	}
	w, h := c.MeasureString(label)
	fp := PlaceFlag(r.vp, m.TransformPoint(e.Point()), kind, w, h, r.opts.flagLineLength)

	c.ClearDash()
	c.SetLineWidth(1)
	c.ClearPath()
	c.MoveTo(fp.Start.X, fp.Start.Y)
	c.LineTo(fp.End.X, fp.End.Y)
	c.SetStrokeBrush(gg.Solid(r.opts.flagLineColor))
	if err := c.Stroke(); err != nil {
		Logger().Debug("chart: flag stroke failed", "err", err)
	}

	c.SetColor(r.opts.flagTextColor.Color())
	c.DrawStringAnchored(label, fp.Label.Min.X, fp.Label.Min.Y, 0, 1)
}
