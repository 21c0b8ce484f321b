package chart

// SplitOnGaps partitions b into runs of valid entries.
//
// A run opens at a valid entry and closes before the next invalid one, or
// at b.Max. Invalid stretches between runs belong to no run. Each run's
// Range stops at the revealed end b.Min+b.Range; runs that start past it
// are omitted. The result is ordered and the runs are disjoint and
// non-empty.
func SplitOnGaps(set *LineDataSet, b XBounds) []XBounds {
	if b.Empty() {
		return nil
	}

	var runs []XBounds
	end := b.End()
	for j := b.Min; j <= b.Max; j++ {
		e, ok := set.EntryForIndex(j)
		if !ok {
			break
		}
		if !set.IsValid(e) {
			continue
		}

		start := j
		for j+1 <= b.Max {
			next, ok := set.EntryForIndex(j + 1)
			if !ok || !set.IsValid(next) {
				break
			}
			j++
		}

		if start > end {
			break
		}
		runs = append(runs, XBounds{
			Min:   start,
			Max:   j,
			Range: min(j, end) - start,
		})
	}
	return runs
}
