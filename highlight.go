package chart

import (
	"math"

	"github.com/gogpu/gg"
)

// Highlight selects an entry of one data set for emphasis.
//
// The renderer records the device point it drew the highlight at, so
// input handling can hit-test against the last frame.
type Highlight struct {
	X, Y         float64
	DataSetIndex int

	draw    gg.Point
	hasDraw bool
}

// NewHighlight returns a highlight of the entry at (x, y) in data set i.
func NewHighlight(x, y float64, dataSetIndex int) *Highlight {
	return &Highlight{X: x, Y: y, DataSetIndex: dataSetIndex}
}

// SetDraw records the device point the highlight was drawn at.
func (h *Highlight) SetDraw(p gg.Point) {
	h.draw = p
	h.hasDraw = true
}

// DrawPoint returns the device point of the last draw. The second result
// is false before the highlight has been drawn.
func (h *Highlight) DrawPoint() (gg.Point, bool) {
	return h.draw, h.hasDraw
}

// Equal reports whether h and o select the same value.
func (h *Highlight) Equal(o *Highlight) bool {
	if h == nil || o == nil {
		return h == o
	}
	return h.DataSetIndex == o.DataSetIndex && h.X == o.X && sameY(h.Y, o.Y)
}

func sameY(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// HighlightLast returns a highlight of the final entry of set, or nil when
// set is empty.
func HighlightLast(set *LineDataSet, dataSetIndex int) *Highlight {
	e, ok := set.EntryForIndex(set.EntryCount() - 1)
	if !ok {
		return nil
	}
	return NewHighlight(e.X, e.Y, dataSetIndex)
}
