// Package recording captures chart drawing as typed commands.
//
// A Recorder implements the drawing surface the chart renderer paints
// onto, but instead of rasterizing it stores each push, clip, fill,
// stroke, text and image draw as a command. Paths, brushes, images and
// font faces live in a ResourcePool and commands refer to them by index.
//
// # Architecture
//
//   - Recorder: Captures drawing operations as commands
//   - Recording: Stores commands and resources for inspection and playback
//   - Target: Any surface a Recording can be replayed onto
//
// Every fill and stroke command carries the full paint and line style in
// effect when it was recorded, so a Recording can be compared, filtered
// or replayed without tracking state.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	c.Render(rec)
//	r := rec.FinishRecording()
//
//	for _, s := range r.Strokes() {
//	    fmt.Println(s.Stroke.Width, s.Stroke.Dashed())
//	}
//
// # Playback
//
// A Recording replays onto a *gg.Context to produce pixels:
//
//	dc := gg.NewContext(800, 600)
//	if err := r.Playback(dc); err != nil {
//	    return err
//	}
//	dc.SavePNG("chart.png")
package recording
