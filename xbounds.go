package chart

import (
	"iter"
	"math"
	"sort"
)

// XBounds is the window of entry indices drawn in one pass.
//
// Min and Max are inclusive. Range is the number of steps past Min that
// the current x animation has revealed, so entries Min..Min+Range are
// drawn. An empty data set yields Max < Min.
type XBounds struct {
	Min, Max, Range int
}

// ComputeXBounds selects the entries of set visible between lowX and
// highX, padded by one entry on each side, with Range scaled by phaseX.
func ComputeXBounds(set *LineDataSet, lowX, highX, phaseX float64) XBounds {
	n := set.EntryCount()
	if n == 0 {
		return XBounds{Min: 0, Max: -1, Range: -1}
	}
	entries := set.Entries()

	first := sort.Search(n, func(i int) bool { return entries[i].X >= lowX })
	last := sort.Search(n, func(i int) bool { return entries[i].X > highX }) - 1

	lo := max(first-1, 0)
	hi := min(last+1, n-1)
	if hi < lo {
		hi = lo
	}

	phaseX = min(max(phaseX, 0), 1)
	return XBounds{
		Min:   lo,
		Max:   hi,
		Range: int(math.Ceil(float64(hi-lo) * phaseX)),
	}
}

// Empty reports whether the bounds select no entries.
func (b XBounds) Empty() bool {
	return b.Max < b.Min || b.Range < 0
}

// End returns the last revealed index, Min+Range.
func (b XBounds) End() int {
	return b.Min + b.Range
}

// All yields the revealed indices Min..Min+Range.
func (b XBounds) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		if b.Empty() {
			return
		}
		for i := b.Min; i <= b.End(); i++ {
			if !yield(i) {
				return
			}
		}
	}
}
