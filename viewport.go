package chart

import (
	"math"

	"github.com/gogpu/gg"
)

// ViewPort tracks the chart area, the content rectangle inside it, and the
// zoom/pan state held in the touch matrix.
//
// The touch matrix works in content coordinates: x grows right from the
// content left edge and y grows down from the content bottom edge, so
// plotted values have negative y before the offset matrix is applied.
type ViewPort struct {
	chartWidth  float64
	chartHeight float64
	content     gg.Rect

	touch gg.Matrix

	minScaleX, maxScaleX float64
	minScaleY, maxScaleY float64

	scaleX, scaleY float64
	transX, transY float64

	dragOffsetX, dragOffsetY float64
}

// NewViewPort returns a viewport for a chart of the given size whose
// content fills the whole area.
func NewViewPort(width, height float64) *ViewPort {
	vp := &ViewPort{
		touch:     gg.Identity(),
		minScaleX: 1,
		maxScaleX: math.MaxFloat64,
		minScaleY: 1,
		maxScaleY: math.MaxFloat64,
		scaleX:    1,
		scaleY:    1,
	}
	vp.SetChartDimens(width, height)
	return vp
}

// SetChartDimens resizes the chart, keeping the current content offsets.
func (vp *ViewPort) SetChartDimens(width, height float64) {
	left, top := vp.OffsetLeft(), vp.OffsetTop()
	right, bottom := vp.OffsetRight(), vp.OffsetBottom()

	vp.chartWidth = width
	vp.chartHeight = height
	vp.RestrainViewPort(left, top, right, bottom)
}

// RestrainViewPort sets the content rectangle by its distance to each
// chart edge.
func (vp *ViewPort) RestrainViewPort(left, top, right, bottom float64) {
	vp.content = gg.Rect{
		Min: gg.Pt(left, top),
		Max: gg.Pt(vp.chartWidth-right, vp.chartHeight-bottom),
	}
}

// OffsetLeft returns the gap between the chart and content left edges.
func (vp *ViewPort) OffsetLeft() float64 { return vp.content.Min.X }

// OffsetTop returns the gap between the chart and content top edges.
func (vp *ViewPort) OffsetTop() float64 { return vp.content.Min.Y }

// OffsetRight returns the gap between the content and chart right edges.
func (vp *ViewPort) OffsetRight() float64 { return vp.chartWidth - vp.content.Max.X }

// OffsetBottom returns the gap between the content and chart bottom edges.
func (vp *ViewPort) OffsetBottom() float64 { return vp.chartHeight - vp.content.Max.Y }

// ChartWidth returns the full chart width.
func (vp *ViewPort) ChartWidth() float64 { return vp.chartWidth }

// ChartHeight returns the full chart height.
func (vp *ViewPort) ChartHeight() float64 { return vp.chartHeight }

// ContentRect returns the area data is drawn into.
func (vp *ViewPort) ContentRect() gg.Rect { return vp.content }

// ContentLeft returns the left edge of the content area.
func (vp *ViewPort) ContentLeft() float64 { return vp.content.Min.X }

// ContentRight returns the right edge of the content area.
func (vp *ViewPort) ContentRight() float64 { return vp.content.Max.X }

// ContentTop returns the top edge of the content area.
func (vp *ViewPort) ContentTop() float64 { return vp.content.Min.Y }

// ContentBottom returns the bottom edge of the content area.
func (vp *ViewPort) ContentBottom() float64 { return vp.content.Max.Y }

// ContentWidth returns the width of the content area.
func (vp *ViewPort) ContentWidth() float64 { return vp.content.Width() }

// ContentHeight returns the height of the content area.
func (vp *ViewPort) ContentHeight() float64 { return vp.content.Height() }

// ContentCenter returns the center of the content rectangle.
func (vp *ViewPort) ContentCenter() gg.Point {
	return vp.content.Min.Lerp(vp.content.Max, 0.5)
}

// IsInBoundsX reports whether x lies within the content columns.
func (vp *ViewPort) IsInBoundsX(x float64) bool {
	return vp.IsInBoundsLeft(x) && vp.IsInBoundsRight(x)
}

// IsInBoundsY reports whether y lies within the content rows.
func (vp *ViewPort) IsInBoundsY(y float64) bool {
	return vp.IsInBoundsTop(y) && vp.IsInBoundsBottom(y)
}

// IsInBounds reports whether (x, y) lies inside the content rectangle,
// with one pixel of horizontal slack.
func (vp *ViewPort) IsInBounds(x, y float64) bool {
	return vp.IsInBoundsX(x) && vp.IsInBoundsY(y)
}

// IsInBoundsLeft reports whether x is not left of the content.
func (vp *ViewPort) IsInBoundsLeft(x float64) bool {
	return vp.content.Min.X <= x+1
}

// IsInBoundsRight reports whether x is not right of the content.
func (vp *ViewPort) IsInBoundsRight(x float64) bool {
	return vp.content.Max.X >= truncate2(x)-1
}

// IsInBoundsTop reports whether y is not above the content.
func (vp *ViewPort) IsInBoundsTop(y float64) bool {
	return vp.content.Min.Y <= y
}

// IsInBoundsBottom reports whether y is not below the content.
func (vp *ViewPort) IsInBoundsBottom(y float64) bool {
	return vp.content.Max.Y >= truncate2(y)
}

// truncate2 drops everything past the second decimal so that values a
// rounding error outside the edge still count as inside.
func truncate2(v float64) float64 {
	return math.Trunc(v*100) / 100
}

// TouchMatrix returns the current zoom/pan matrix.
func (vp *ViewPort) TouchMatrix() gg.Matrix { return vp.touch }

// ScaleX returns the current x zoom factor.
func (vp *ViewPort) ScaleX() float64 { return vp.scaleX }

// ScaleY returns the current y zoom factor.
func (vp *ViewPort) ScaleY() float64 { return vp.scaleY }

// TransX returns the current x pan in pixels.
func (vp *ViewPort) TransX() float64 { return vp.transX }

// TransY returns the current y pan in pixels.
func (vp *ViewPort) TransY() float64 { return vp.transY }

// Refresh installs m as the touch matrix after clamping its scale and
// translation to the configured limits, and returns the stored matrix.
func (vp *ViewPort) Refresh(m gg.Matrix) gg.Matrix {
	vp.touch = m
	vp.limitTransAndScale()
	return vp.touch
}

func (vp *ViewPort) limitTransAndScale() {
	vp.scaleX = min(max(vp.minScaleX, vp.touch.A), vp.maxScaleX)
	vp.scaleY = min(max(vp.minScaleY, vp.touch.E), vp.maxScaleY)

	width := vp.ContentWidth()
	height := vp.ContentHeight()

	maxTransX := -width * (vp.scaleX - 1)
	vp.transX = min(max(vp.touch.C, maxTransX-vp.dragOffsetX), vp.dragOffsetX)

	maxTransY := height * (vp.scaleY - 1)
	vp.transY = max(min(vp.touch.F, maxTransY+vp.dragOffsetY), -vp.dragOffsetY)

	vp.touch.A = vp.scaleX
	vp.touch.E = vp.scaleY
	vp.touch.C = vp.transX
	vp.touch.F = vp.transY
}

// Zoom scales the content by (scaleX, scaleY) around the device point
// (x, y) and returns the resulting touch matrix.
func (vp *ViewPort) Zoom(scaleX, scaleY, x, y float64) gg.Matrix {
	cx := x - vp.ContentLeft()
	cy := y - vp.ContentBottom()
	m := gg.Translate(cx, cy).
		Multiply(gg.Scale(scaleX, scaleY)).
		Multiply(gg.Translate(-cx, -cy)).
		Multiply(vp.touch)
	return vp.Refresh(m)
}

// Translate pans the content by (dx, dy) device pixels.
func (vp *ViewPort) Translate(dx, dy float64) gg.Matrix {
	return vp.Refresh(gg.Translate(dx, dy).Multiply(vp.touch))
}

// ResetZoom restores the identity touch matrix.
func (vp *ViewPort) ResetZoom() gg.Matrix {
	return vp.Refresh(gg.Identity())
}

// SetMinimumScaleX sets the smallest allowed x zoom; values below 1 are
// raised to 1.
func (vp *ViewPort) SetMinimumScaleX(v float64) {
	vp.minScaleX = max(v, 1)
	vp.limitTransAndScale()
}

// SetMaximumScaleX sets the largest allowed x zoom; 0 removes the limit.
func (vp *ViewPort) SetMaximumScaleX(v float64) {
	if v == 0 {
		v = math.MaxFloat64
	}
	vp.maxScaleX = v
	vp.limitTransAndScale()
}

// SetMinimumScaleY sets the smallest allowed y zoom; values below 1 are
// raised to 1.
func (vp *ViewPort) SetMinimumScaleY(v float64) {
	vp.minScaleY = max(v, 1)
	vp.limitTransAndScale()
}

// SetMaximumScaleY sets the largest allowed y zoom; 0 removes the limit.
func (vp *ViewPort) SetMaximumScaleY(v float64) {
	if v == 0 {
		v = math.MaxFloat64
	}
	vp.maxScaleY = v
	vp.limitTransAndScale()
}

// SetDragOffsets allows panning past the content edges by the given
// number of pixels.
func (vp *ViewPort) SetDragOffsets(x, y float64) {
	vp.dragOffsetX = x
	vp.dragOffsetY = y
}

// CanZoomOutMoreX reports whether x is above its minimum zoom.
func (vp *ViewPort) CanZoomOutMoreX() bool { return vp.scaleX > vp.minScaleX }

// CanZoomInMoreX reports whether x is below its maximum zoom.
func (vp *ViewPort) CanZoomInMoreX() bool { return vp.scaleX < vp.maxScaleX }

// CanZoomOutMoreY reports whether y is above its minimum zoom.
func (vp *ViewPort) CanZoomOutMoreY() bool { return vp.scaleY > vp.minScaleY }

// CanZoomInMoreY reports whether y is below its maximum zoom.
func (vp *ViewPort) CanZoomInMoreY() bool { return vp.scaleY < vp.maxScaleY }

// IsFullyZoomedOut reports whether both axes are at their minimum zoom.
func (vp *ViewPort) IsFullyZoomedOut() bool {
	return !vp.CanZoomOutMoreX() && !vp.CanZoomOutMoreY()
}

// IsAtRightEdge reports whether the content is panned fully right.
func (vp *ViewPort) IsAtRightEdge() bool {
	return vp.transX <= -vp.ContentWidth()*(vp.scaleX-1)-vp.dragOffsetX
}
