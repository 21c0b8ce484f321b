package chart

import (
	"math"

	"github.com/gogpu/gg"
)

// LineChart owns the data sets of one chart and everything needed to draw
// a frame of them: the viewport, the value transformer, the reveal
// animator, and the renderer.
//
// A LineChart is not safe for concurrent use.
type LineChart struct {
	sets []*LineDataSet

	vp          *ViewPort
	transformer *Transformer
	animator    *Animator
	renderer    *LineRenderer

	highlights []*Highlight

	// Marker is drawn at each drawn highlight. Nil draws nothing.
	Marker Marker
	// NoDataText is centered in the chart when there is nothing to draw.
	NoDataText      string
	NoDataTextColor gg.RGBA

	// SpaceTop and SpaceBottom pad the y range by a fraction of itself.
	SpaceTop    float64
	SpaceBottom float64

	maxVisibleCount int

	fixedY     bool
	fixedYMin  float64
	fixedYMax  float64
	xMin, xMax float64
	yMin, yMax float64
	dataYMin   float64
	dataYMax   float64
	hasData    bool
}

// NewLineChart returns an empty chart of the given device size.
func NewLineChart(width, height float64, opts ...RendererOption) *LineChart {
	c := &LineChart{
		vp:              NewViewPort(width, height),
		animator:        NewAnimator(),
		NoDataText:      "No chart data available.",
		NoDataTextColor: gg.Black,
		SpaceTop:        0.1,
		SpaceBottom:     0.1,
		maxVisibleCount: 100,
	}
	c.transformer = NewTransformer(c.vp)
	c.renderer = NewLineRenderer(c, c.vp, c.animator, opts...)
	return c
}

// SetDataSets replaces the chart data and recomputes its ranges.
func (c *LineChart) SetDataSets(sets ...*LineDataSet) {
	c.sets = sets
	c.highlights = nil
	c.NotifyDataChanged()
}

// AddDataSet appends a data set.
func (c *LineChart) AddDataSet(set *LineDataSet) {
	c.sets = append(c.sets, set)
	c.NotifyDataChanged()
}

// DataSet returns the data set at index i.
func (c *LineChart) DataSet(i int) (*LineDataSet, error) {
	if i < 0 || i >= len(c.sets) {
		return nil, ErrInvalidDataSetIndex
	}
	return c.sets[i], nil
}

// NotifyDataChanged recomputes the x and y ranges after entries changed.
func (c *LineChart) NotifyDataChanged() {
	c.hasData = false
	c.xMin, c.xMax = math.MaxFloat64, -math.MaxFloat64
	c.dataYMin, c.dataYMax = math.MaxFloat64, -math.MaxFloat64
	hasY := false

	for _, set := range c.sets {
		if set == nil || set.EntryCount() == 0 {
			continue
		}
		set.CalcMinMax()
		c.hasData = true
		c.xMin = min(c.xMin, set.XMin())
		c.xMax = max(c.xMax, set.XMax())
		// A set whose entries are all gaps has no y range.
		if set.YMin() <= set.YMax() {
			hasY = true
			c.dataYMin = min(c.dataYMin, set.YMin())
			c.dataYMax = max(c.dataYMax, set.YMax())
		}
	}
	if !c.hasData {
		c.xMin, c.xMax = 0, 0
	}
	if !hasY {
		c.dataYMin, c.dataYMax = 0, 0
	}

	c.yMin, c.yMax = c.dataYMin, c.dataYMax
	if c.fixedY {
		c.yMin, c.yMax = c.fixedYMin, c.fixedYMax
	} else {
		span := c.yMax - c.yMin
		if span == 0 {
			c.yMin--
			c.yMax++
		} else {
			c.yMin -= span * c.SpaceBottom
			c.yMax += span * c.SpaceTop
		}
	}
	c.prepare()
	Logger().Debug("chart: data changed",
		"sets", len(c.sets), "x", [2]float64{c.xMin, c.xMax}, "y", [2]float64{c.yMin, c.yMax})
}

// SetYRange pins the y axis to [lo, hi] instead of the padded data range.
func (c *LineChart) SetYRange(lo, hi float64) {
	c.fixedY = true
	c.fixedYMin, c.fixedYMax = lo, hi
	c.NotifyDataChanged()
}

// ClearYRange returns the y axis to the padded data range.
func (c *LineChart) ClearYRange() {
	c.fixedY = false
	c.NotifyDataChanged()
}

// Resize changes the device size of the chart.
func (c *LineChart) Resize(width, height float64) {
	c.vp.SetChartDimens(width, height)
	c.prepare()
}

// SetMaxVisibleCount sets the entry count above which value labels are
// hidden at zoom 1.
func (c *LineChart) SetMaxVisibleCount(n int) { c.maxVisibleCount = n }

func (c *LineChart) prepare() {
	c.transformer.PrepareMatrixOffset(false)
	c.transformer.PrepareMatrixValuePx(c.xMin, c.xMax-c.xMin, c.yMax-c.yMin, c.yMin)
}

// VisibleXRange returns the width of the x range a full-width content
// rectangle shows at the current zoom.
func (c *LineChart) VisibleXRange() float64 {
	return math.Abs(c.HighestVisibleX() - c.LowestVisibleX())
}

// SetVisibleXRangeMaximum limits zooming out so that at most rangeX is
// visible at once.
func (c *LineChart) SetVisibleXRangeMaximum(rangeX float64) {
	if rangeX <= 0 {
		return
	}
	c.vp.SetMinimumScaleX((c.xMax - c.xMin) / rangeX)
}

// SetVisibleXRangeMinimum limits zooming in so that at least rangeX is
// visible at once.
func (c *LineChart) SetVisibleXRangeMinimum(rangeX float64) {
	if rangeX <= 0 {
		return
	}
	c.vp.SetMaximumScaleX((c.xMax - c.xMin) / rangeX)
}

// ShowLatest zooms x so that rangeX is visible and pans to the newest
// entries.
func (c *LineChart) ShowLatest(rangeX float64) {
	delta := c.xMax - c.xMin
	if rangeX <= 0 || delta <= 0 {
		c.vp.ResetZoom()
		return
	}
	scale := max(delta/rangeX, 1)
	w := c.vp.ContentWidth()
	m := gg.Translate(-w*(scale-1), 0).Multiply(gg.Scale(scale, 1))
	c.vp.Refresh(m)
}

// HighlightValue replaces the highlights with the entry of data set i
// closest to x. An invalid index clears them.
func (c *LineChart) HighlightValue(x float64, dataSetIndex int) {
	set, err := c.DataSet(dataSetIndex)
	if err != nil || set == nil {
		c.highlights = nil
		return
	}
	e, ok := set.EntryForXValue(x, math.NaN())
	if !ok {
		c.highlights = nil
		return
	}
	c.highlights = []*Highlight{NewHighlight(e.X, e.Y, dataSetIndex)}
}

// HighlightLast highlights the final entry of data set i.
func (c *LineChart) HighlightLast(dataSetIndex int) {
	set, err := c.DataSet(dataSetIndex)
	if err != nil || set == nil {
		c.highlights = nil
		return
	}
	if h := HighlightLast(set, dataSetIndex); h != nil {
		c.highlights = []*Highlight{h}
		return
	}
	c.highlights = nil
}

// SetHighlights replaces the highlights.
func (c *LineChart) SetHighlights(hs ...*Highlight) { c.highlights = hs }

// Highlights returns the current highlights.
func (c *LineChart) Highlights() []*Highlight { return c.highlights }

// ViewPort returns the chart viewport.
func (c *LineChart) ViewPort() *ViewPort { return c.vp }

// Animator returns the reveal animator.
func (c *LineChart) Animator() *Animator { return c.animator }

// Renderer returns the line renderer.
func (c *LineChart) Renderer() *LineRenderer { return c.renderer }

// DataSets returns the data sets in draw order.
func (c *LineChart) DataSets() []*LineDataSet { return c.sets }

// Transformer returns the value to pixel transformer.
func (c *LineChart) Transformer() *Transformer { return c.transformer }

// MaxVisibleCount returns the entry count above which values are hidden.
func (c *LineChart) MaxVisibleCount() int { return c.maxVisibleCount }

// ChartXMin returns the smallest x over all data sets.
func (c *LineChart) ChartXMin() float64 { return c.xMin }

// ChartXMax returns the largest x over all data sets.
func (c *LineChart) ChartXMax() float64 { return c.xMax }

// ChartYMin returns the bottom of the y axis, padding included.
func (c *LineChart) ChartYMin() float64 { return c.yMin }

// ChartYMax returns the top of the y axis, padding included.
func (c *LineChart) ChartYMax() float64 { return c.yMax }

// DataYMin returns the smallest valid y over all data sets.
func (c *LineChart) DataYMin() float64 { return c.dataYMin }

// DataYMax returns the largest valid y over all data sets.
func (c *LineChart) DataYMax() float64 { return c.dataYMax }

// LowestVisibleX returns the x value at the content left edge.
func (c *LineChart) LowestVisibleX() float64 {
	p := c.transformer.ValuesForPixel(c.vp.ContentLeft(), c.vp.ContentBottom())
	return max(c.xMin, p.X)
}

// HighestVisibleX returns the x value at the content right edge.
func (c *LineChart) HighestVisibleX() float64 {
	p := c.transformer.ValuesForPixel(c.vp.ContentRight(), c.vp.ContentBottom())
	return min(c.xMax, p.X)
}

// Render draws one frame: lines and fills, highlight indicators, circles,
// values, min/max flags, and finally markers at the drawn highlights.
func (c *LineChart) Render(cv Canvas) {
	if !c.hasData {
		c.drawNoData(cv)
		return
	}
	c.prepare()

	r := c.renderer
	r.DrawData(cv)
	r.DrawHighlighted(cv, c.highlights)
	r.DrawExtras(cv)
	r.DrawValues(cv)
	r.DrawMinMaxFlags(cv)

	if c.Marker == nil {
		return
	}
	for _, h := range c.highlights {
		if h == nil {
			continue
		}
		if pt, ok := h.DrawPoint(); ok {
			c.Marker.Draw(cv, pt)
		}
	}
}

func (c *LineChart) drawNoData(cv Canvas) {
	if c.NoDataText == "" {
		return
	}
	center := gg.Pt(c.vp.ChartWidth()/2, c.vp.ChartHeight()/2)
	cv.SetColor(c.NoDataTextColor.Color())
	cv.DrawStringAnchored(c.NoDataText, center.X, center.Y, 0.5, 0.5)
}
