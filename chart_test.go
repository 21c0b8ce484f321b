package chart

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestLineChartRanges(t *testing.T) {
	c := newTestChart(plainSet(2, 5, 14, 8, 7, 1))

	if c.ChartXMin() != 0 || c.ChartXMax() != 5 {
		t.Errorf("x range = [%v, %v], want [0, 5]", c.ChartXMin(), c.ChartXMax())
	}
	if c.DataYMin() != 1 || c.DataYMax() != 14 {
		t.Errorf("data y range = [%v, %v], want [1, 14]", c.DataYMin(), c.DataYMax())
	}
	// Padded by 10% of the 13 unit span on both ends.
	if !near(c.ChartYMin(), -0.3) || !near(c.ChartYMax(), 15.3) {
		t.Errorf("chart y range = [%v, %v], want [-0.3, 15.3]", c.ChartYMin(), c.ChartYMax())
	}
}

func TestLineChartFlatRange(t *testing.T) {
	c := newTestChart(plainSet(4, 4, 4))
	if c.ChartYMin() != 3 || c.ChartYMax() != 5 {
		t.Errorf("chart y range = [%v, %v], want [3, 5]", c.ChartYMin(), c.ChartYMax())
	}
}

func TestLineChartFixedYRange(t *testing.T) {
	c := newTestChart(plainSet(2, 5, 14))
	c.SetYRange(0, 20)
	if c.ChartYMin() != 0 || c.ChartYMax() != 20 {
		t.Errorf("chart y range = [%v, %v], want [0, 20]", c.ChartYMin(), c.ChartYMax())
	}
	c.ClearYRange()
	if c.ChartYMax() == 20 {
		t.Error("ClearYRange() kept the fixed range")
	}
}

func TestLineChartGapsExcludedFromRange(t *testing.T) {
	set := plainSet(2, -100, 14)
	set.CheckGaps = true
	set.MinValidValue = 0
	c := newTestChart(set)
	if c.DataYMin() != 2 {
		t.Errorf("DataYMin() = %v, want 2", c.DataYMin())
	}
}

func TestLineChartAllGapsRange(t *testing.T) {
	set := plainSet(-1, -2, -3)
	set.CheckGaps = true
	set.MinValidValue = 0
	c := newTestChart(set)

	if c.DataYMin() != 0 || c.DataYMax() != 0 {
		t.Errorf("DataYMin(), DataYMax() = %v, %v, want 0, 0", c.DataYMin(), c.DataYMax())
	}
	if c.ChartYMin() != -1 || c.ChartYMax() != 1 {
		t.Errorf("ChartYMin(), ChartYMax() = %v, %v, want -1, 1", c.ChartYMin(), c.ChartYMax())
	}
	if c.ChartXMin() != 0 || c.ChartXMax() != 2 {
		t.Errorf("ChartXMin(), ChartXMax() = %v, %v, want 0, 2", c.ChartXMin(), c.ChartXMax())
	}
	m := c.Transformer().ValueToPixelMatrix()
	for _, v := range []float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("ValueToPixelMatrix() = %+v, want finite", m)
		}
	}
	if got := len(render(c).Strokes()); got != 0 {
		t.Errorf("len(Strokes()) = %d, want 0", got)
	}
}

func TestLineChartDataSet(t *testing.T) {
	set := plainSet(1, 2)
	c := newTestChart(set)

	got, err := c.DataSet(0)
	if err != nil || got != set {
		t.Errorf("DataSet(0) = %p, %v, want %p, nil", got, err, set)
	}
	for _, i := range []int{-1, 1} {
		if _, err := c.DataSet(i); !errors.Is(err, ErrInvalidDataSetIndex) {
			t.Errorf("DataSet(%d) error = %v, want ErrInvalidDataSetIndex", i, err)
		}
	}

	c.AddDataSet(plainSet(30, 40, 50, 60))
	if c.ChartXMax() != 3 || c.DataYMax() != 60 {
		t.Errorf("after AddDataSet x max = %v, y max = %v, want 3, 60", c.ChartXMax(), c.DataYMax())
	}
}

func TestLineChartSetDataSetsClearsHighlights(t *testing.T) {
	c := newTestChart(plainSet(1, 2))
	c.HighlightLast(0)
	c.SetDataSets(plainSet(3, 4))
	if len(c.Highlights()) != 0 {
		t.Errorf("Highlights() = %v, want none", c.Highlights())
	}
}

func TestLineChartVisibleRange(t *testing.T) {
	c := newTestChart(plainSet(2, 5, 14, 8, 7, 1))

	if !near(c.LowestVisibleX(), 0) || !nearRel(c.HighestVisibleX(), 5) {
		t.Errorf("visible x = [%v, %v], want [0, 5]", c.LowestVisibleX(), c.HighestVisibleX())
	}
	if !nearRel(c.VisibleXRange(), 5) {
		t.Errorf("VisibleXRange() = %v, want 5", c.VisibleXRange())
	}
}

func TestLineChartShowLatest(t *testing.T) {
	c := newTestChart(plainSet(2, 5, 14, 8, 7, 1))
	c.ShowLatest(2)

	if !nearRel(c.LowestVisibleX(), 3) || !nearRel(c.HighestVisibleX(), 5) {
		t.Errorf("visible x = [%v, %v], want [3, 5]", c.LowestVisibleX(), c.HighestVisibleX())
	}
	if !c.ViewPort().IsAtRightEdge() {
		t.Error("IsAtRightEdge() = false after ShowLatest")
	}

	// A range wider than the data shows everything.
	c.ShowLatest(50)
	if !near(c.LowestVisibleX(), 0) {
		t.Errorf("LowestVisibleX() = %v, want 0", c.LowestVisibleX())
	}
}

func TestLineChartShowLatestDrawsWindow(t *testing.T) {
	c := newTestChart(plainSet(2, 5, 14, 8, 7, 1))
	c.ShowLatest(2.5)
	r := render(c)

	strokes := r.Strokes()
	if len(strokes) != 1 {
		t.Fatalf("len(Strokes()) = %d, want 1", len(strokes))
	}
	// Entries 2..5: the window 2.5..5 padded by one entry on the left.
	got := countElements(r.Path(strokes[0].Path))
	if want := (elemCount{moves: 1, lines: 3}); got != want {
		t.Errorf("path elements = %+v, want %+v", got, want)
	}
}

func TestLineChartVisibleRangeLimits(t *testing.T) {
	c := newTestChart(plainSet(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10))

	c.SetVisibleXRangeMaximum(5)
	if got := c.ViewPort().ScaleX(); !near(got, 2) {
		t.Errorf("ScaleX() = %v, want 2 after SetVisibleXRangeMaximum(5)", got)
	}

	c.SetVisibleXRangeMinimum(2)
	c.ViewPort().Zoom(100, 1, 0, 0)
	if got := c.ViewPort().ScaleX(); !near(got, 5) {
		t.Errorf("ScaleX() = %v, want 5 after SetVisibleXRangeMinimum(2)", got)
	}
}

func TestLineChartResize(t *testing.T) {
	c := newTestChart(plainSet(1, 2, 3))
	c.Resize(400, 300)

	pt := c.Transformer().PixelForValues(2, c.ChartYMin())
	if !near(pt.X, 400) || !near(pt.Y, 300) {
		t.Errorf("PixelForValues(xMax, yMin) = %v, want (400, 300)", pt)
	}
}

func TestLineChartHighlightValue(t *testing.T) {
	c := newTestChart(plainSet(2, 5, 14, 8))

	c.HighlightValue(1.6, 0)
	hs := c.Highlights()
	if len(hs) != 1 || hs[0].X != 2 || hs[0].Y != 14 {
		t.Fatalf("Highlights() = %+v, want the entry at x 2", hs)
	}

	c.HighlightValue(1, 7)
	if len(c.Highlights()) != 0 {
		t.Errorf("Highlights() = %+v after invalid index, want none", c.Highlights())
	}
}

func TestLineChartRenderMarker(t *testing.T) {
	c := newTestChart(plainSet(2, 5, 14, 8))
	c.HighlightLast(0)

	var marked []gg.Point
	c.Marker = MarkerFunc(func(_ Canvas, pt gg.Point) { marked = append(marked, pt) })
	render(c)

	want := c.Transformer().PixelForValues(3, 8)
	if len(marked) != 1 || !nearPt(marked[0], want) {
		t.Errorf("marker drawn at %v, want [%v]", marked, want)
	}
}

func TestLineChartHighlightMarker(t *testing.T) {
	c := newTestChart(plainSet(2, 5, 14, 8))
	c.HighlightLast(0)
	c.Marker = NewHighlightMarker(gg.Red)

	fills := render(c).Fills()
	if len(fills) != 2 {
		t.Fatalf("len(Fills()) = %d, want halo and dot", len(fills))
	}
	if got := NewHighlightMarker(gg.Red).Size(); got != 12 {
		t.Errorf("Size() = %v, want 12", got)
	}
}

func TestLineChartNoData(t *testing.T) {
	tests := []struct {
		name string
		sets []*LineDataSet
	}{
		{"no sets", nil},
		{"empty set", []*LineDataSet{NewLineDataSet(nil, "empty")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLineChart(200, 100)
			c.SetDataSets(tt.sets...)
			r := render(c)

			texts := r.Texts()
			if len(texts) != 1 {
				t.Fatalf("len(Texts()) = %d, want 1", len(texts))
			}
			txt := texts[0]
			if txt.Text != "No chart data available." || txt.X != 100 || txt.Y != 50 || txt.AX != 0.5 || txt.AY != 0.5 {
				t.Errorf("text = %+v, want centered no-data text", txt)
			}
			if n := len(r.Strokes()) + len(r.Fills()); n != 0 {
				t.Errorf("recorded %d fills and strokes, want 0", n)
			}
		})
	}
}

func TestLineChartNoDataTextDisabled(t *testing.T) {
	c := NewLineChart(200, 100)
	c.NoDataText = ""
	if n := len(render(c).Commands()); n != 0 {
		t.Errorf("len(Commands()) = %d, want 0", n)
	}
}

func TestLineChartHiddenSet(t *testing.T) {
	set := plainSet(1, 2, 3)
	set.Visible = false
	if n := len(render(newTestChart(set)).Strokes()); n != 0 {
		t.Errorf("len(Strokes()) = %d for a hidden set, want 0", n)
	}
}

// nearRel compares with a tolerance relative to the magnitude of the
// values, for x values such as Unix timestamps.
func nearRel(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6*max(1, math.Abs(b))
}
