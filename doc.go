// Package chart renders line charts onto a 2D vector canvas.
//
// The package turns an ordered series of (x, y) samples into device-space
// paths and draws them through a small [Canvas] interface that
// [gg.Context] satisfies directly. It covers the complete per-frame line
// pipeline: visible range selection, gap splitting, curve construction,
// fills, gradient strokes, highlights and min/max annotations.
//
// # Quick Start
//
//	set := chart.NewLineDataSet([]chart.Entry{{X: 0, Y: 1}, {X: 1, Y: 5}, {X: 2, Y: 3}}, "Series")
//	set.Mode = chart.ModeCubicBezier
//
//	lc := chart.NewLineChart(800, 400)
//	lc.SetDataSets(set)
//
//	dc := gg.NewContext(800, 400)
//	lc.Render(dc)
//	dc.SavePNG("chart.png")
//
// # Pipeline
//
// Each call to [LineChart.Render] runs the stages in a fixed order:
//
//  1. The [Transformer] maps data space to device space through the
//     [ViewPort] touch matrix.
//  2. [ComputeXBounds] selects the index window of visible entries, padded
//     by one entry on each side.
//  3. [SplitOnGaps] partitions the window into runs of valid entries when
//     [LineDataSet.CheckGaps] is set.
//  4. A curve builder ([BuildLinear], [BuildCubic], [BuildHorizontalBezier])
//     emits the stroke path for each run.
//  5. The fill is closed against the baseline and painted, then the line is
//     stroked, optionally with a vertical gradient.
//  6. Highlights, circles, value labels, min/max flags and markers are
//     drawn on top using the same transform.
//
// Drawing never fails a frame. Degenerate input skips only the affected
// sub-operation and is reported through [Logger] at debug or warn level.
//
// # Recording
//
// The recording sub-package provides a Canvas that records commands
// instead of rasterizing, which is how the geometry is tested:
//
//	rec := recording.NewRecorder(800, 400)
//	lc.Render(rec)
//	r := rec.FinishRecording()
//	r.Playback(dc)
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to route diagnostics
// to a [log/slog] handler.
package chart
