package chart

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestPlaceFlag(t *testing.T) {
	vp := NewViewPort(100, 100)

	tests := []struct {
		name      string
		anchor    gg.Point
		kind      FlagKind
		wantEnd   gg.Point
		wantLabel gg.Rect
		rightward bool
		flipped   bool
	}{
		{
			name:      "max in the open",
			anchor:    gg.Pt(50, 50),
			kind:      FlagMax,
			wantEnd:   gg.Pt(75, 43.5),
			wantLabel: gg.Rect{Min: gg.Pt(75, 38.5), Max: gg.Pt(95, 48.5)},
			rightward: true,
		},
		{
			name:      "min in the open",
			anchor:    gg.Pt(50, 50),
			kind:      FlagMin,
			wantEnd:   gg.Pt(75, 56.5),
			wantLabel: gg.Rect{Min: gg.Pt(75, 51.5), Max: gg.Pt(95, 61.5)},
			rightward: true,
		},
		{
			name:      "near right edge extends left",
			anchor:    gg.Pt(90, 50),
			kind:      FlagMax,
			wantEnd:   gg.Pt(65, 43.5),
			wantLabel: gg.Rect{Min: gg.Pt(45, 38.5), Max: gg.Pt(65, 48.5)},
		},
		{
			name:      "max near top flips down",
			anchor:    gg.Pt(50, 3),
			kind:      FlagMax,
			wantEnd:   gg.Pt(75, 6.5),
			wantLabel: gg.Rect{Min: gg.Pt(75, 1.5), Max: gg.Pt(95, 11.5)},
			rightward: true,
			flipped:   true,
		},
		{
			name:      "min near bottom flips up",
			anchor:    gg.Pt(50, 98),
			kind:      FlagMin,
			wantEnd:   gg.Pt(75, 94.5),
			wantLabel: gg.Rect{Min: gg.Pt(75, 89.5), Max: gg.Pt(95, 99.5)},
			rightward: true,
			flipped:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaceFlag(vp, tt.anchor, tt.kind, 20, 10, 25)
			if !nearPt(got.End, tt.wantEnd) {
				t.Errorf("End = %v, want %v", got.End, tt.wantEnd)
			}
			if !nearPt(got.Label.Min, tt.wantLabel.Min) || !nearPt(got.Label.Max, tt.wantLabel.Max) {
				t.Errorf("Label = %v, want %v", got.Label, tt.wantLabel)
			}
			if got.Rightward != tt.rightward {
				t.Errorf("Rightward = %v, want %v", got.Rightward, tt.rightward)
			}
			if got.Flipped != tt.flipped {
				t.Errorf("Flipped = %v, want %v", got.Flipped, tt.flipped)
			}
			if got.Start.X != tt.anchor.X {
				t.Errorf("Start.X = %v, want %v", got.Start.X, tt.anchor.X)
			}
		})
	}
}

func TestScanExtremes(t *testing.T) {
	vp := NewViewPort(100, 100)
	m := gg.Identity()

	tests := []struct {
		name     string
		ys       []float64
		dashLast bool
		wantMax  int
		wantMin  int
	}{
		{"plain", []float64{1, 5, 14, 8, 7, 2}, false, 2, 0},
		{"ties", []float64{3, 3, 1, 1}, false, 1, 2},
		{"dashed last skipped", []float64{4, 5, 3, 9}, true, 1, 2},
		{"out of content skipped", []float64{4, 500, 3}, false, 0, 2},
		{"gap skipped", []float64{4, -1, 3}, false, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewLineDataSet(entriesOf(tt.ys...), "t")
			set.MinValidValue = 0
			set.DashLastPoint = tt.dashLast
			got := ScanExtremes(set, fullBounds(set), m, vp)
			if got.MaxIndex != tt.wantMax {
				t.Errorf("MaxIndex = %d, want %d", got.MaxIndex, tt.wantMax)
			}
			if got.MinIndex != tt.wantMin {
				t.Errorf("MinIndex = %d, want %d", got.MinIndex, tt.wantMin)
			}
		})
	}
}

func TestScanExtremesNone(t *testing.T) {
	set := NewLineDataSet(entriesOf(-1, -2), "t")
	set.MinValidValue = 0
	got := ScanExtremes(set, fullBounds(set), gg.Identity(), NewViewPort(10, 10))
	if got.MaxIndex != -1 || got.MinIndex != -1 {
		t.Errorf("ScanExtremes() = %+v, want no indices", got)
	}
}
