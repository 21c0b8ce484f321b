package chart

import (
	"reflect"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/recording"
)

// plainSet returns a linear data set without circles or value labels so
// that a frame records only the line itself.
func plainSet(ys ...float64) *LineDataSet {
	set := NewLineDataSet(entriesOf(ys...), "t")
	set.DrawCircles = false
	set.DrawValues = false
	set.HighlightEnabled = true
	return set
}

func render(c *LineChart) *recording.Recording {
	rec := recording.NewRecorder(int(c.ViewPort().ChartWidth()), int(c.ViewPort().ChartHeight()))
	c.Render(rec)
	return rec.FinishRecording()
}

func newTestChart(sets ...*LineDataSet) *LineChart {
	c := NewLineChart(200, 100)
	c.SetDataSets(sets...)
	return c
}

func TestRenderIsIdempotent(t *testing.T) {
	set := plainSet(1, 5, 14, -1, 7, 2)
	set.Mode = ModeCubicBezier
	set.CheckGaps = true
	set.MinValidValue = 0
	set.DashLastPoint = true
	set.DrawFilled = true
	set.DrawCircles = true
	c := NewLineChart(200, 100, WithMinMaxFlags(gg.Black, gg.Black))
	c.SetDataSets(set)
	c.HighlightLast(0)

	first := render(c)
	second := render(c)
	if !reflect.DeepEqual(first, second) {
		t.Error("two renders of the same state recorded different commands")
	}
}

func TestDrawDataClipsToContent(t *testing.T) {
	c := newTestChart(plainSet(1, 2, 3))
	c.ViewPort().RestrainViewPort(10, 5, 20, 15)
	c.Animator().Animate(time.Second, 0, EaseLinear)
	c.Animator().Advance(500 * time.Millisecond)

	cmds := render(c).Commands()
	if len(cmds) < 2 {
		t.Fatalf("len(Commands()) = %d, want at least 2", len(cmds))
	}
	if _, ok := cmds[0].(recording.PushCommand); !ok {
		t.Errorf("Commands()[0] = %T, want PushCommand", cmds[0])
	}
	clip, ok := cmds[1].(recording.ClipRectCommand)
	if !ok {
		t.Fatalf("Commands()[1] = %T, want ClipRectCommand", cmds[1])
	}
	want := gg.Rect{Min: gg.Pt(10, 5), Max: gg.Pt(10+170*0.5, 85)}
	if !nearPt(clip.Rect.Min, want.Min) || !nearPt(clip.Rect.Max, want.Max) {
		t.Errorf("clip = %v, want %v", clip.Rect, want)
	}
}

func TestDrawDataSplitsOnGaps(t *testing.T) {
	tests := []struct {
		name      string
		ys        []float64
		checkGaps bool
		want      int
	}{
		{"no gaps", []float64{1, 5, 14, 8}, true, 1},
		{"one gap", []float64{1, 5, 14, -1, 7, 2, 3}, true, 2},
		{"two gaps", []float64{1, 5, -1, 8, 9, -1, 2, 3}, true, 3},
		{"isolated entry draws nothing", []float64{1, 5, -1, 8, -1, 2, 3}, true, 2},
		{"gap checking off", []float64{1, 5, 14, -1, 7, 2, 3}, false, 1},
	}

	for _, mode := range []Mode{ModeLinear, ModeStepped, ModeCubicBezier, ModeHorizontalBezier} {
		for _, tt := range tests {
			t.Run(mode.String()+"/"+tt.name, func(t *testing.T) {
				set := plainSet(tt.ys...)
				set.Mode = mode
				set.CheckGaps = tt.checkGaps
				set.MinValidValue = 0
				r := render(newTestChart(set))
				if got := len(r.Strokes()); got != tt.want {
					t.Errorf("len(Strokes()) = %d, want %d", got, tt.want)
				}
			})
		}
	}
}

func TestDrawDataDashedTailOnFinalRunOnly(t *testing.T) {
	for _, mode := range []Mode{ModeLinear, ModeCubicBezier, ModeHorizontalBezier} {
		t.Run(mode.String(), func(t *testing.T) {
			set := plainSet(1, 5, 14, -1, 7, 2, 3)
			set.Mode = mode
			set.CheckGaps = true
			set.MinValidValue = 0
			set.DashLastPoint = true
			r := render(newTestChart(set))

			strokes := r.Strokes()
			if len(strokes) != 3 {
				t.Fatalf("len(Strokes()) = %d, want 3", len(strokes))
			}
			for i, s := range strokes {
				dashed := i == len(strokes)-1
				if s.Stroke.Dashed() != dashed {
					t.Errorf("stroke %d Dashed() = %v, want %v", i, s.Stroke.Dashed(), dashed)
				}
			}
			if got := strokes[2].Stroke.Dash; !slices.Equal(got, []float64{2, 2}) {
				t.Errorf("tail dash = %v, want [2 2]", got)
			}
		})
	}
}

func TestDrawDataDashedLineHasNoTail(t *testing.T) {
	set := plainSet(1, 5, 14, 8)
	set.DashLastPoint = true
	set.LineDash = []float64{6, 3}
	r := render(newTestChart(set))

	strokes := r.Strokes()
	if len(strokes) != 1 {
		t.Fatalf("len(Strokes()) = %d, want 1", len(strokes))
	}
	if got := strokes[0].Stroke.Dash; !slices.Equal(got, []float64{6, 3}) {
		t.Errorf("Dash = %v, want [6 3]", got)
	}
}

func TestDrawDataCubicFallsBackToLinear(t *testing.T) {
	logs := captureLogs(t)

	ys := make([]float64, 400)
	for i := range ys {
		ys[i] = float64(i%7 + 1)
	}
	set := plainSet(ys...)
	set.Mode = ModeCubicBezier
	r := render(newTestChart(set))

	strokes := r.Strokes()
	if len(strokes) != 1 {
		t.Fatalf("len(Strokes()) = %d, want 1", len(strokes))
	}
	if n := countElements(r.Path(strokes[0].Path)).cubics; n != 0 {
		t.Errorf("fallback stroke has %d cubics, want 0", n)
	}
	if !strings.Contains(logs.String(), "cubic exceeds pixel resolution") {
		t.Errorf("log = %q, want fallback message", logs.String())
	}
}

func TestDrawDataCubic(t *testing.T) {
	set := plainSet(1, 5, 14, 8, 7, 2)
	set.Mode = ModeCubicBezier
	r := render(newTestChart(set))

	strokes := r.Strokes()
	if len(strokes) != 1 {
		t.Fatalf("len(Strokes()) = %d, want 1", len(strokes))
	}
	if n := countElements(r.Path(strokes[0].Path)).cubics; n != 5 {
		t.Errorf("cubics = %d, want 5", n)
	}
}

func TestDrawDataFill(t *testing.T) {
	for _, mode := range []Mode{ModeLinear, ModeStepped, ModeCubicBezier, ModeHorizontalBezier} {
		t.Run(mode.String(), func(t *testing.T) {
			set := plainSet(1, 5, 14, 8)
			set.Mode = mode
			set.DrawFilled = true
			r := render(newTestChart(set))

			fills := r.Fills()
			if len(fills) != 1 {
				t.Fatalf("len(Fills()) = %d, want 1", len(fills))
			}
			els := r.Path(fills[0].Path).Elements()
			if _, ok := els[len(els)-1].(gg.Close); !ok {
				t.Errorf("fill path ends with %T, want Close", els[len(els)-1])
			}
			if len(r.Strokes()) != 1 {
				t.Errorf("len(Strokes()) = %d, want 1", len(r.Strokes()))
			}
		})
	}
}

func TestDrawDataGradientLine(t *testing.T) {
	set := plainSet(1, 5, 14, 8)
	set.DrawLineWithGradient = true
	set.Colors = []gg.RGBA{gg.Red, gg.Blue}
	set.GradientPositions = []float64{0, 14}
	r := render(newTestChart(set))

	strokes := r.Strokes()
	if len(strokes) != 1 {
		t.Fatalf("len(Strokes()) = %d, want 1", len(strokes))
	}
	if _, ok := r.Brush(strokes[0].Brush).(*gg.LinearGradientBrush); !ok {
		t.Errorf("stroke brush = %T, want *gg.LinearGradientBrush", r.Brush(strokes[0].Brush))
	}
}

func TestDrawDataGradientLineWithoutPositions(t *testing.T) {
	logs := captureLogs(t)

	set := plainSet(1, 5, 14, 8)
	set.DrawLineWithGradient = true
	set.Colors = []gg.RGBA{gg.Red, gg.Blue}
	r := render(newTestChart(set))

	if n := len(r.Strokes()); n != 0 {
		t.Errorf("len(Strokes()) = %d, want 0", n)
	}
	out := logs.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, ErrNoGradientPositions.Error()) {
		t.Errorf("log = %q, want a warning naming the missing positions", out)
	}
}

func TestDrawDataMultiColorSegments(t *testing.T) {
	colors := []gg.RGBA{gg.Red, gg.Green, gg.Blue}
	set := plainSet(1, 5, 14, 8, 3)
	set.Colors = colors
	r := render(newTestChart(set))

	strokes := r.Strokes()
	if len(strokes) != 4 {
		t.Fatalf("len(Strokes()) = %d, want 4", len(strokes))
	}
	for i, s := range strokes {
		b, ok := r.Brush(s.Brush).(gg.SolidBrush)
		if !ok {
			t.Fatalf("stroke %d brush = %T, want SolidBrush", i, r.Brush(s.Brush))
		}
		if want := colors[i%len(colors)]; b.Color != want {
			t.Errorf("stroke %d color = %v, want %v", i, b.Color, want)
		}
	}
}

func TestDrawDataMultiColorSteppedTail(t *testing.T) {
	set := plainSet(1, 5, 14)
	set.Mode = ModeStepped
	set.Colors = []gg.RGBA{gg.Red, gg.Blue}
	set.DashLastPoint = true
	r := render(newTestChart(set))

	strokes := r.Strokes()
	if len(strokes) != 2 {
		t.Fatalf("len(Strokes()) = %d, want 2", len(strokes))
	}
	if strokes[0].Stroke.Dashed() || !strokes[1].Stroke.Dashed() {
		t.Errorf("Dashed() = %v, %v, want false, true", strokes[0].Stroke.Dashed(), strokes[1].Stroke.Dashed())
	}
	// A stepped segment is two lines: across, then up.
	if n := countElements(r.Path(strokes[0].Path)).lines; n != 2 {
		t.Errorf("stepped segment lines = %d, want 2", n)
	}
}

func TestDrawExtrasCircles(t *testing.T) {
	tests := []struct {
		name      string
		holeColor *gg.RGBA
		drawHole  bool
		wantFills int
		wantRule  gg.FillRule
	}{
		{"filled hole", &gg.RGBA{R: 1, G: 1, B: 1, A: 1}, true, 6, gg.FillRuleNonZero},
		{"transparent hole", nil, true, 3, gg.FillRuleEvenOdd},
		{"no hole", nil, false, 3, gg.FillRuleNonZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := plainSet(1, 5, 3)
			set.DrawCircles = true
			set.CircleHoleColor = tt.holeColor
			set.DrawCircleHole = tt.drawHole
			r := render(newTestChart(set))

			fills := r.Fills()
			if len(fills) != tt.wantFills {
				t.Fatalf("len(Fills()) = %d, want %d", len(fills), tt.wantFills)
			}
			if fills[0].Rule != tt.wantRule {
				t.Errorf("Rule = %v, want %v", fills[0].Rule, tt.wantRule)
			}
		})
	}
}

func TestDrawValues(t *testing.T) {
	set := plainSet(1, 2, 3)
	set.DrawValues = true
	c := newTestChart(set)
	r := render(c)

	texts := r.Texts()
	want := []string{"1.00", "2.00", "3.00"}
	if len(texts) != len(want) {
		t.Fatalf("len(Texts()) = %d, want %d", len(texts), len(want))
	}
	for i, txt := range texts {
		if txt.Text != want[i] {
			t.Errorf("Texts()[%d] = %q, want %q", i, txt.Text, want[i])
		}
		pt := c.Transformer().PixelForValues(float64(i), float64(i+1))
		// Offset int(8*1.75)/2 above the entry, then one line of text.
		wantY := pt.Y - 7 - 12*1.2
		if !near(txt.Y, wantY) || !near(txt.X, pt.X) {
			t.Errorf("Texts()[%d] at (%v, %v), want (%v, %v)", i, txt.X, txt.Y, pt.X, wantY)
		}
	}
}

func TestDrawValuesHiddenWhenCrowded(t *testing.T) {
	set := plainSet(1, 2, 3)
	set.DrawValues = true
	c := newTestChart(set)
	c.SetMaxVisibleCount(3)

	if n := len(render(c).Texts()); n != 0 {
		t.Errorf("len(Texts()) = %d, want 0", n)
	}
}

func TestDrawValuesFormatter(t *testing.T) {
	set := plainSet(1, 2)
	set.DrawValues = true
	set.ValueFormatter = ValueFormatterFunc(func(v float64, _ Entry, i int, _ *ViewPort) string {
		return "v" + formatPlain(v)
	})
	texts := render(newTestChart(set)).Texts()
	if len(texts) != 2 || texts[0].Text != "v1" || texts[1].Text != "v2" {
		t.Errorf("Texts() = %+v, want v1, v2", texts)
	}
}

func TestDecimalsFor(t *testing.T) {
	tests := []struct {
		ref  float64
		want int
	}{
		{0, 0},
		{3, 2},
		{14000, 0},
		{0.05, 4},
	}
	for _, tt := range tests {
		if got := decimalsFor(tt.ref); got != tt.want {
			t.Errorf("decimalsFor(%v) = %d, want %d", tt.ref, got, tt.want)
		}
	}
}

func TestDrawHighlighted(t *testing.T) {
	set := plainSet(1, 5, 14, 8, 7, 2)
	set.HighlightDash = []float64{3, 3}
	c := newTestChart(set)
	c.HighlightLast(0)
	r := render(c)

	h := c.Highlights()[0]
	pt, ok := h.DrawPoint()
	if !ok {
		t.Fatal("DrawPoint() ok = false, want true")
	}
	want := c.Transformer().PixelForValues(5, 2)
	if !nearPt(pt, want) {
		t.Errorf("DrawPoint() = %v, want %v", pt, want)
	}

	// Line plus vertical and horizontal indicators.
	strokes := r.Strokes()
	if len(strokes) != 3 {
		t.Fatalf("len(Strokes()) = %d, want 3", len(strokes))
	}
	for _, s := range strokes[1:] {
		if !slices.Equal(s.Stroke.Dash, []float64{3, 3}) || s.Stroke.Width != 0.5 {
			t.Errorf("indicator stroke = %+v, want width 0.5 dashed 3,3", s.Stroke)
		}
	}
}

func TestDrawHighlightedSkips(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *LineChart, set *LineDataSet)
	}{
		{"unknown data set", func(c *LineChart, _ *LineDataSet) {
			c.SetHighlights(NewHighlight(5, 2, 3))
		}},
		{"disabled", func(c *LineChart, set *LineDataSet) {
			set.HighlightEnabled = false
			c.HighlightLast(0)
		}},
		{"not yet revealed", func(c *LineChart, _ *LineDataSet) {
			c.HighlightLast(0)
			c.Animator().Animate(time.Second, 0, EaseLinear)
			c.Animator().Advance(500 * time.Millisecond)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := plainSet(1, 5, 14, 8, 7, 2)
			c := newTestChart(set)
			tt.setup(c, set)

			var marked []gg.Point
			c.Marker = MarkerFunc(func(_ Canvas, pt gg.Point) { marked = append(marked, pt) })
			render(c)

			if _, ok := c.Highlights()[0].DrawPoint(); ok {
				t.Error("DrawPoint() ok = true, want false")
			}
			if len(marked) != 0 {
				t.Errorf("marker drawn at %v, want nothing", marked)
			}
		})
	}
}

func TestDrawHighlightedResetsDrawPoint(t *testing.T) {
	set := plainSet(1, 5, 14, 8, 7, 2)
	c := newTestChart(set)
	c.HighlightLast(0)
	render(c)
	if _, ok := c.Highlights()[0].DrawPoint(); !ok {
		t.Fatal("DrawPoint() ok = false after first render")
	}

	set.HighlightEnabled = false
	render(c)
	if _, ok := c.Highlights()[0].DrawPoint(); ok {
		t.Error("DrawPoint() kept a stale point after the highlight was skipped")
	}
}

func TestDrawMinMaxFlags(t *testing.T) {
	set := plainSet(3, 5, 14, 8, 1, 2)
	c := NewLineChart(300, 200, WithMinMaxFlags(gg.Red, gg.Blue))
	c.ViewPort().RestrainViewPort(10, 30, 10, 30)
	c.SetDataSets(set)
	r := render(c)

	texts := r.Texts()
	if len(texts) != 2 {
		t.Fatalf("len(Texts()) = %d, want 2", len(texts))
	}
	if texts[0].Text != "14" || texts[1].Text != "1" {
		t.Errorf("labels = %q, %q, want 14, 1", texts[0].Text, texts[1].Text)
	}
	if b, ok := r.Brush(texts[0].Brush).(gg.SolidBrush); !ok || b.Color != gg.Blue {
		t.Errorf("label brush = %v, want blue", r.Brush(texts[0].Brush))
	}

	strokes := r.Strokes()
	if len(strokes) != 3 {
		t.Fatalf("len(Strokes()) = %d, want line plus 2 flags", len(strokes))
	}
	if b, ok := r.Brush(strokes[1].Brush).(gg.SolidBrush); !ok || b.Color != gg.Red {
		t.Errorf("flag line brush = %v, want red", r.Brush(strokes[1].Brush))
	}
}

func TestDrawMinMaxFlagsWaitForReveal(t *testing.T) {
	set := plainSet(3, 5, 14, 8, 1, 2)
	c := NewLineChart(300, 200, WithMinMaxFlags(gg.Red, gg.Blue))
	c.SetDataSets(set)
	c.Animator().Animate(time.Second, 0, EaseLinear)
	c.Animator().Advance(900 * time.Millisecond)

	if n := len(render(c).Texts()); n != 0 {
		t.Errorf("len(Texts()) = %d during reveal, want 0", n)
	}
}

func TestDrawMinMaxFlagsFormatter(t *testing.T) {
	set := plainSet(3000, 14000, 1000)
	set.MaxMinFormatter = ValueFormatterFunc(func(v float64, _ Entry, _ int, _ *ViewPort) string {
		return formatPlain(v / 1000)
	})
	c := NewLineChart(300, 200, WithMinMaxFlags(gg.Black, gg.Black))
	c.ViewPort().RestrainViewPort(10, 30, 10, 30)
	c.SetDataSets(set)

	texts := render(c).Texts()
	if len(texts) != 2 || texts[0].Text != "14" || texts[1].Text != "1" {
		t.Errorf("Texts() = %+v, want 14 and 1", texts)
	}
}

func near(a, b float64) bool {
	return nearPtTol(gg.Pt(a, 0), gg.Pt(b, 0), 1e-9)
}
