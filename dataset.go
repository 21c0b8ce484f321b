package chart

import (
	"math"
	"slices"
	"sort"

	"github.com/gogpu/gg"
)

// Rounding selects which neighbor EntryIndex returns when no entry has
// exactly the requested x.
type Rounding uint8

const (
	// RoundClosest returns the entry nearest in x.
	RoundClosest Rounding = iota
	// RoundUp returns the first entry at or after x.
	RoundUp
	// RoundDown returns the last entry at or before x.
	RoundDown
)

// Default style values for new data sets.
var (
	DefaultLineColor      = gg.RGBA{R: 140.0 / 255, G: 234.0 / 255, B: 1, A: 1}
	DefaultHighlightColor = gg.RGBA{R: 1, G: 187.0 / 255, B: 115.0 / 255, A: 1}
)

// LineDataSet is an ordered series of entries plus the style used to draw
// it. Entries must be sorted by X; the data set does not enforce it.
//
// A LineDataSet is owned by one chart and is not safe for concurrent
// mutation while a frame is drawn.
type LineDataSet struct {
	Label   string
	Visible bool
	Mode    Mode

	LineWidth     float64
	LineDash      []float64
	LineDashPhase float64
	LineCap       gg.LineCap

	// Colors cycle per segment when more than one is set. With a gradient
	// line they are the gradient colors, bottom to top.
	Colors []gg.RGBA

	DrawCircles      bool
	CircleRadius     float64
	CircleHoleRadius float64
	DrawCircleHole   bool
	CircleColors     []gg.RGBA
	// CircleHoleColor nil punches a transparent hole.
	CircleHoleColor *gg.RGBA

	// DashLastPoint draws the segment ending at the final entry dashed,
	// marking it as provisional.
	DashLastPoint bool

	// CheckGaps splits the line on entries whose Y is at or below
	// MinValidValue so that no segment bridges missing data.
	CheckGaps     bool
	MinValidValue float64

	// CubicIntensity is the tension of cubic curves, in [0.05, 1].
	CubicIntensity float64

	DrawFilled    bool
	Fill          Fill
	FillColor     gg.RGBA
	FillAlpha     float64
	FillFormatter FillFormatter

	DrawLineWithGradient bool
	// GradientPositions are data-space y values, one per color.
	GradientPositions []float64

	DrawValues      bool
	ValueFormatter  ValueFormatter
	ValueTextColors []gg.RGBA
	ValueLabelAngle float64
	DrawIcons       bool
	IconsOffset     gg.Point

	MaxMinFormatter ValueFormatter

	HighlightEnabled        bool
	HighlightColor          gg.RGBA
	HighlightLineWidth      float64
	HighlightDash           []float64
	HighlightDashPhase      float64
	DrawVerticalHighlight   bool
	DrawHorizontalHighlight bool

	entries []Entry
	xMin    float64
	xMax    float64
	yMin    float64
	yMax    float64
}

// NewLineDataSet returns a data set holding entries with default style.
func NewLineDataSet(entries []Entry, label string) *LineDataSet {
	s := &LineDataSet{
		Label:                   label,
		Visible:                 true,
		Mode:                    ModeLinear,
		LineWidth:               1,
		LineCap:                 gg.LineCapButt,
		Colors:                  []gg.RGBA{DefaultLineColor},
		DrawCircles:             true,
		CircleRadius:            8,
		CircleHoleRadius:        4,
		DrawCircleHole:          true,
		CircleColors:            []gg.RGBA{DefaultLineColor},
		CircleHoleColor:         &gg.RGBA{R: 1, G: 1, B: 1, A: 1},
		MinValidValue:           -math.MaxFloat64,
		CubicIntensity:          0.2,
		FillColor:               DefaultLineColor,
		FillAlpha:               0.33,
		DrawValues:              true,
		ValueTextColors:         []gg.RGBA{gg.Black},
		HighlightEnabled:        true,
		HighlightColor:          DefaultHighlightColor,
		HighlightLineWidth:      0.5,
		DrawVerticalHighlight:   true,
		DrawHorizontalHighlight: true,
	}
	s.SetEntries(entries)
	return s
}

// SetEntries replaces all entries and recomputes the value range.
func (s *LineDataSet) SetEntries(entries []Entry) {
	s.entries = entries
	s.CalcMinMax()
}

// Entries returns the entries. The slice must not be modified.
func (s *LineDataSet) Entries() []Entry {
	return s.entries
}

// AddEntry inserts e keeping entries ordered by X.
func (s *LineDataSet) AddEntry(e Entry) {
	i := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].X > e.X })
	s.entries = slices.Insert(s.entries, i, e)
	s.calcMinMaxEntry(e)
}

// EntryCount returns the number of entries.
func (s *LineDataSet) EntryCount() int {
	return len(s.entries)
}

// EntryForIndex returns the entry at index i. The second result is false
// when i is out of range.
func (s *LineDataSet) EntryForIndex(i int) (Entry, bool) {
	if i < 0 || i >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[i], true
}

// IsValid reports whether e is a real sample rather than a gap marker.
func (s *LineDataSet) IsValid(e Entry) bool {
	return e.Y > s.MinValidValue
}

// Color returns the line color for segment i, cycling through Colors.
func (s *LineDataSet) Color(i int) gg.RGBA {
	return cycle(s.Colors, i, DefaultLineColor)
}

// CircleColor returns the circle color for entry i.
func (s *LineDataSet) CircleColor(i int) gg.RGBA {
	return cycle(s.CircleColors, i, DefaultLineColor)
}

// ValueTextColor returns the value label color for entry i.
func (s *LineDataSet) ValueTextColor(i int) gg.RGBA {
	return cycle(s.ValueTextColors, i, gg.Black)
}

// Intensity returns CubicIntensity clamped to [0.05, 1].
func (s *LineDataSet) Intensity() float64 {
	return min(max(s.CubicIntensity, 0.05), 1)
}

func cycle(colors []gg.RGBA, i int, fallback gg.RGBA) gg.RGBA {
	if len(colors) == 0 {
		return fallback
	}
	if i < 0 {
		i = -i
	}
	return colors[i%len(colors)]
}

// XMin returns the smallest x of the data set.
func (s *LineDataSet) XMin() float64 { return s.xMin }

// XMax returns the largest x of the data set.
func (s *LineDataSet) XMax() float64 { return s.xMax }

// YMin returns the smallest y. With CheckGaps set, gap markers are ignored.
func (s *LineDataSet) YMin() float64 { return s.yMin }

// YMax returns the largest y. With CheckGaps set, gap markers are ignored.
func (s *LineDataSet) YMax() float64 { return s.yMax }

// CalcMinMax recomputes the x and y range of the entries.
func (s *LineDataSet) CalcMinMax() {
	s.xMin, s.xMax = math.MaxFloat64, -math.MaxFloat64
	s.yMin, s.yMax = math.MaxFloat64, -math.MaxFloat64
	for _, e := range s.entries {
		s.calcMinMaxEntry(e)
	}
}

func (s *LineDataSet) calcMinMaxEntry(e Entry) {
	s.xMin = min(s.xMin, e.X)
	s.xMax = max(s.xMax, e.X)
	if s.CheckGaps && !s.IsValid(e) {
		return
	}
	s.yMin = min(s.yMin, e.Y)
	s.yMax = max(s.yMax, e.Y)
}

// EntryIndex returns the index of the entry closest to x, or -1 when the
// data set is empty. When several entries share that x and closestToY is
// not NaN, the one whose y is nearest closestToY wins; on equal distance
// the earliest is kept.
func (s *LineDataSet) EntryIndex(x, closestToY float64, rounding Rounding) int {
	n := len(s.entries)
	if n == 0 {
		return -1
	}

	low, high := 0, n-1
	closest := high
	for low < high {
		m := (low + high) / 2
		d1 := s.entries[m].X - x
		d2 := s.entries[m+1].X - x
		ad1, ad2 := math.Abs(d1), math.Abs(d2)

		switch {
		case ad2 < ad1:
			low = m + 1
		case ad1 < ad2:
			high = m
		case d1 >= 0:
			// Equal distance with both at or after x: keep searching left.
			high = m
		case d2 < 0:
			low = m + 1
		default:
			// x lies exactly between m and m+1.
			high = m
		}
		closest = high
	}

	closestX := s.entries[closest].X
	switch rounding {
	case RoundUp:
		if closestX < x && closest < n-1 {
			closest++
		}
	case RoundDown:
		if closestX > x && closest > 0 {
			closest--
		}
	}

	if math.IsNaN(closestToY) {
		return closest
	}

	closestX = s.entries[closest].X
	for closest > 0 && s.entries[closest-1].X == closestX {
		closest--
	}
	best := closest
	bestDist := math.Abs(s.entries[closest].Y - closestToY)
	for i := closest + 1; i < n && s.entries[i].X == closestX; i++ {
		if d := math.Abs(s.entries[i].Y - closestToY); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// EntryForXValue returns the entry nearest to x, breaking ties between
// entries of equal x by closeness to closestToY.
func (s *LineDataSet) EntryForXValue(x, closestToY float64) (Entry, bool) {
	return s.EntryForIndex(s.EntryIndex(x, closestToY, RoundClosest))
}
