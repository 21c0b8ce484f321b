package chart

import "github.com/gogpu/gg"

// Entry is a single sample of a data set.
type Entry struct {
	X, Y float64

	// Icon is drawn at the entry position when the data set enables icons.
	Icon *gg.ImageBuf
}

// Point returns the entry as a data-space point.
func (e Entry) Point() gg.Point {
	return gg.Pt(e.X, e.Y)
}
