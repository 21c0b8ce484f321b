package chart

import (
	"math"

	"github.com/gogpu/gg"
)

// Transformer maps data-space values to device pixels.
//
// The full mapping is offset · touch · value: the value matrix scales the
// data range onto the content size with y flipped, the viewport touch
// matrix applies zoom and pan, and the offset matrix moves the result into
// the content rectangle.
type Transformer struct {
	vp     *ViewPort
	value  gg.Matrix
	offset gg.Matrix
}

// NewTransformer returns a transformer bound to vp with identity matrices.
func NewTransformer(vp *ViewPort) *Transformer {
	return &Transformer{
		vp:     vp,
		value:  gg.Identity(),
		offset: gg.Identity(),
	}
}

// PrepareMatrixValuePx maps the data range [xMin, xMin+deltaX] ×
// [yMin, yMin+deltaY] onto the content size. A zero or non-finite delta
// collapses that axis.
func (t *Transformer) PrepareMatrixValuePx(xMin, deltaX, deltaY, yMin float64) {
	scaleX := t.vp.ContentWidth() / deltaX
	scaleY := t.vp.ContentHeight() / deltaY
	if math.IsInf(scaleX, 0) || math.IsNaN(scaleX) {
		scaleX = 0
	}
	if math.IsInf(scaleY, 0) || math.IsNaN(scaleY) {
		scaleY = 0
	}
	t.value = gg.Scale(scaleX, -scaleY).Multiply(gg.Translate(-xMin, -yMin))
}

// PrepareMatrixOffset positions the content rectangle. With inverted set
// the y axis grows downward from the content top.
func (t *Transformer) PrepareMatrixOffset(inverted bool) {
	if !inverted {
		t.offset = gg.Translate(t.vp.OffsetLeft(), t.vp.ChartHeight()-t.vp.OffsetBottom())
		return
	}
	t.offset = gg.Translate(t.vp.OffsetLeft(), t.vp.OffsetTop()).Multiply(gg.Scale(1, -1))
}

// ValueToPixelMatrix returns the combined data-to-device matrix.
func (t *Transformer) ValueToPixelMatrix() gg.Matrix {
	return t.offset.Multiply(t.vp.TouchMatrix()).Multiply(t.value)
}

// PixelToValueMatrix returns the inverse of ValueToPixelMatrix.
func (t *Transformer) PixelToValueMatrix() gg.Matrix {
	return invert(t.ValueToPixelMatrix())
}

// invert is gg.Matrix.Invert without its 1e-10 determinant cut-off:
// data spans such as Unix timestamps give legitimately tiny determinants.
// A singular matrix yields the identity.
func invert(m gg.Matrix) gg.Matrix {
	det := m.A*m.E - m.B*m.D
	if det == 0 || math.IsNaN(det) {
		return gg.Identity()
	}
	inv := 1 / det
	return gg.Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}
}

// PixelForValues projects a data-space point to device space.
func (t *Transformer) PixelForValues(x, y float64) gg.Point {
	return t.ValueToPixelMatrix().TransformPoint(gg.Pt(x, y))
}

// ValuesForPixel maps a device point back to data space.
func (t *Transformer) ValuesForPixel(x, y float64) gg.Point {
	return t.PixelToValueMatrix().TransformPoint(gg.Pt(x, y))
}

// PointValuesToPixel projects pts in place.
func (t *Transformer) PointValuesToPixel(pts []gg.Point) {
	m := t.ValueToPixelMatrix()
	for i, p := range pts {
		pts[i] = m.TransformPoint(p)
	}
}
