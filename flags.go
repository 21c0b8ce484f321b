package chart

import (
	"math"

	"github.com/gogpu/gg"
)

// FlagKind tells a maximum flag from a minimum flag.
type FlagKind uint8

const (
	// FlagMax marks the highest visible entry.
	FlagMax FlagKind = iota
	// FlagMin marks the lowest visible entry.
	FlagMin
)

// offsets returns the vertical offset of the flag line start from the
// entry and of the line end from its start. Maximum flags point up.
func (k FlagKind) offsets() (start, end float64) {
	if k == FlagMin {
		return 1.5, 5
	}
	return -1.5, -5
}

// Extremes holds the highest and lowest entries of a window. An index of
// -1 means no entry qualified.
type Extremes struct {
	Max, Min           Entry
	MaxIndex, MinIndex int
}

// ScanExtremes finds the highest and lowest entries of b that are valid,
// project inside the content rectangle, and are not the dashed final
// entry. Later entries win ties for the maximum and earlier entries win
// ties for the minimum.
func ScanExtremes(set *LineDataSet, b XBounds, m gg.Matrix, vp *ViewPort) Extremes {
	x := Extremes{MaxIndex: -1, MinIndex: -1}
	maxY, minY := -math.MaxFloat64, math.MaxFloat64
	last := set.EntryCount() - 1

	for i := range b.All() {
		e, ok := set.EntryForIndex(i)
		if !ok {
			break
		}
		if !set.IsValid(e) {
			continue
		}
		if set.DashLastPoint && i == last {
			continue
		}
		pt := m.TransformPoint(e.Point())
		if !vp.IsInBounds(pt.X, pt.Y) {
			continue
		}
		if e.Y >= maxY {
			maxY = e.Y
			x.Max, x.MaxIndex = e, i
		}
		if e.Y < minY {
			minY = e.Y
			x.Min, x.MinIndex = e, i
		}
	}
	return x
}

// FlagPlacement is the geometry of one min/max callout.
type FlagPlacement struct {
	Start, End gg.Point
	// Rightward is false when the label would leave the content on the
	// right, so the line extends left instead.
	Rightward bool
	// Flipped is true when the default vertical direction (up for a
	// maximum, down for a minimum) would leave the content.
	Flipped bool
	// Label is the rectangle the text occupies next to End.
	Label gg.Rect
}

// PlaceFlag lays out a callout for the entry projected at anchor. The
// line is length pixels long horizontally and the label measures
// textW × textH.
func PlaceFlag(vp *ViewPort, anchor gg.Point, kind FlagKind, textW, textH, length float64) FlagPlacement {
	startOff, endOff := kind.offsets()
	start := gg.Pt(anchor.X, anchor.Y+startOff)

	right := vp.IsInBounds(start.X+length+textW, start.Y-startOff)
	keep := vp.IsInBounds(start.X, start.Y+endOff)

	dx, dy := length, endOff
	if !right {
		dx = -length
	}
	if !keep {
		dy = -endOff
	}
	end := gg.Pt(start.X+dx, start.Y+dy)

	lx := end.X
	if !right {
		lx -= textW
	}
	ly := end.Y - textH/2

	return FlagPlacement{
		Start:     start,
		End:       end,
		Rightward: right,
		Flipped:   !keep,
		Label:     gg.Rect{Min: gg.Pt(lx, ly), Max: gg.Pt(lx+textW, ly+textH)},
	}
}
