package recording

import (
	"image/color"
	"unicode/utf8"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Fallback text metrics used when no font face is set, so that layout
// code measuring labels still sees a non-zero size.
const (
	fallbackFontSize    = 12.0
	fallbackAdvance     = 0.6
	fallbackLineSpacing = 1.2
)

// Recorder captures drawing operations as commands.
// It mirrors the gg.Context drawing API used by the chart renderer but
// generates commands instead of rasterizing pixels. Use FinishRecording to
// obtain a Recording that can be inspected or replayed onto a gg.Context.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	rec.SetColor(color.Black)
//	rec.DrawCircle(100, 100, 50)
//	rec.Fill()
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	// Current path being built
	currentPath *gg.Path

	// Current paint and style. Like gg.Context, fill and stroke share one
	// brush.
	brush    gg.Brush
	stroke   Stroke
	fillRule gg.FillRule
	font     text.Face

	transform gg.Matrix
	clip      *gg.Rect

	// State stack
	stateStack []recorderState
}

// recorderState stores what Push saves: the transform and the clip.
type recorderState struct {
	transform gg.Matrix
	clip      *gg.Rect
}

// NewRecorder creates a new Recorder for the given dimensions.
// The Recorder starts with a black brush, a 1px solid stroke with butt
// caps, the non-zero fill rule, and the identity transform.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:       width,
		height:      height,
		commands:    make([]Command, 0, 256),
		resources:   NewResourcePool(),
		currentPath: gg.NewPath(),
		brush:       gg.Solid(gg.Black),
		stroke:      DefaultStroke(),
		fillRule:    gg.FillRuleNonZero,
		transform:   gg.Identity(),
		stateStack:  make([]recorderState, 0, 8),
	}
}

// FinishRecording returns a Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// --------------------------------------------------------------------------
// State Management
// --------------------------------------------------------------------------

// Push saves the transform and clip.
func (r *Recorder) Push() {
	r.stateStack = append(r.stateStack, recorderState{transform: r.transform, clip: r.clip})
	r.commands = append(r.commands, PushCommand{})
}

// Pop restores the transform and clip. If the stack is empty, this is a
// no-op.
func (r *Recorder) Pop() {
	if len(r.stateStack) == 0 {
		return
	}
	state := r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]
	r.transform = state.transform
	r.clip = state.clip
	r.commands = append(r.commands, PopCommand{})
}

// Depth returns the number of unmatched Push calls.
func (r *Recorder) Depth() int {
	return len(r.stateStack)
}

// ClipRect intersects the clip with a rectangle.
func (r *Recorder) ClipRect(x, y, w, h float64) {
	rect := gg.Rect{Min: gg.Pt(x, y), Max: gg.Pt(x+w, y+h)}
	if r.clip != nil {
		rect = intersect(*r.clip, rect)
	}
	r.clip = &rect
	r.commands = append(r.commands, ClipRectCommand{Rect: gg.Rect{Min: gg.Pt(x, y), Max: gg.Pt(x+w, y+h)}})
}

func intersect(a, b gg.Rect) gg.Rect {
	out := gg.Rect{
		Min: gg.Pt(max(a.Min.X, b.Min.X), max(a.Min.Y, b.Min.Y)),
		Max: gg.Pt(min(a.Max.X, b.Max.X), min(a.Max.Y, b.Max.Y)),
	}
	if out.Max.X < out.Min.X {
		out.Max.X = out.Min.X
	}
	if out.Max.Y < out.Min.Y {
		out.Max.Y = out.Min.Y
	}
	return out
}

// Clip returns the current clip rectangle. The second result is false
// when nothing is clipped.
func (r *Recorder) Clip() (gg.Rect, bool) {
	if r.clip == nil {
		return gg.Rect{}, false
	}
	return *r.clip, true
}

// RotateAbout rotates the transform by angle radians about (x, y).
func (r *Recorder) RotateAbout(angle, x, y float64) {
	r.transform = r.transform.
		Multiply(gg.Translate(x, y)).
		Multiply(gg.Rotate(angle)).
		Multiply(gg.Translate(-x, -y))
	r.commands = append(r.commands, RotateCommand{Angle: angle, Center: gg.Pt(x, y)})
}

// Transform returns the current transformation matrix.
func (r *Recorder) Transform() gg.Matrix {
	return r.transform
}

// --------------------------------------------------------------------------
// Paint and Style
// --------------------------------------------------------------------------

// SetColor sets the paint to a solid color.
func (r *Recorder) SetColor(c color.Color) {
	r.brush = gg.Solid(gg.FromColor(c))
}

// SetFillBrush sets the paint brush.
func (r *Recorder) SetFillBrush(b gg.Brush) {
	r.brush = b
}

// SetStrokeBrush sets the paint brush.
func (r *Recorder) SetStrokeBrush(b gg.Brush) {
	r.brush = b
}

// SetLineWidth sets the line width for stroking.
func (r *Recorder) SetLineWidth(width float64) {
	r.stroke.Width = width
}

// SetLineCap sets the line cap style.
func (r *Recorder) SetLineCap(lc gg.LineCap) {
	r.stroke.Cap = lc
}

// SetDash sets the dash pattern for stroking.
// Passing no arguments clears the dash pattern.
func (r *Recorder) SetDash(lengths ...float64) {
	if len(lengths) == 0 {
		r.ClearDash()
		return
	}
	r.stroke.Dash = append([]float64(nil), lengths...)
}

// SetDashOffset sets the starting offset into the dash pattern.
func (r *Recorder) SetDashOffset(offset float64) {
	r.stroke.DashOffset = offset
}

// ClearDash removes the dash pattern, returning to solid lines.
func (r *Recorder) ClearDash() {
	r.stroke.Dash = nil
	r.stroke.DashOffset = 0
}

// SetFillRule sets the fill rule.
func (r *Recorder) SetFillRule(rule gg.FillRule) {
	r.fillRule = rule
}

// --------------------------------------------------------------------------
// Path Building
// --------------------------------------------------------------------------

// MoveTo starts a new subpath at the given point.
func (r *Recorder) MoveTo(x, y float64) {
	r.currentPath.MoveTo(x, y)
}

// LineTo adds a line to the current path.
func (r *Recorder) LineTo(x, y float64) {
	r.currentPath.LineTo(x, y)
}

// CubicTo adds a cubic Bezier curve to the current path.
func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.currentPath.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (r *Recorder) ClosePath() {
	r.currentPath.Close()
}

// ClearPath clears the current path.
func (r *Recorder) ClearPath() {
	r.currentPath.Clear()
}

// DrawCircle adds a circle to the current path.
func (r *Recorder) DrawCircle(x, y, radius float64) {
	r.currentPath.Circle(x, y, radius)
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// Fill records a fill of the current path and clears it.
func (r *Recorder) Fill() error {
	if len(r.currentPath.Elements()) > 0 {
		r.commands = append(r.commands, FillPathCommand{
			Path:  r.resources.AddPath(r.currentPath),
			Brush: r.resources.AddBrush(r.brush),
			Rule:  r.fillRule,
		})
	}
	r.currentPath.Clear()
	return nil
}

// Stroke records a stroke of the current path and clears it.
func (r *Recorder) Stroke() error {
	if len(r.currentPath.Elements()) > 0 {
		r.commands = append(r.commands, StrokePathCommand{
			Path:   r.resources.AddPath(r.currentPath),
			Brush:  r.resources.AddBrush(r.brush),
			Stroke: r.stroke.Clone(),
		})
	}
	r.currentPath.Clear()
	return nil
}

// --------------------------------------------------------------------------
// Text and Images
// --------------------------------------------------------------------------

// SetFont sets the face used by text commands.
func (r *Recorder) SetFont(face text.Face) {
	r.font = face
}

// DrawStringAnchored records text anchored at (x, y).
func (r *Recorder) DrawStringAnchored(s string, x, y, ax, ay float64) {
	if s == "" {
		return
	}
	r.commands = append(r.commands, DrawTextCommand{
		Text:  s,
		X:     x,
		Y:     y,
		AX:    ax,
		AY:    ay,
		Font:  r.resources.AddFont(r.font),
		Brush: r.resources.AddBrush(r.brush),
	})
}

// MeasureString returns the size of s in the current face. Without a face
// it estimates the size of a 12pt monospace font.
func (r *Recorder) MeasureString(s string) (w, h float64) {
	if s == "" {
		return 0, 0
	}
	if r.font != nil {
		return text.Measure(s, r.font)
	}
	n := float64(utf8.RuneCountInString(s))
	return n * fallbackFontSize * fallbackAdvance, fallbackFontSize * fallbackLineSpacing
}

// DrawImageEx records an image draw. A nil image is ignored.
func (r *Recorder) DrawImageEx(img *gg.ImageBuf, opts gg.DrawImageOptions) {
	if img == nil {
		return
	}
	r.commands = append(r.commands, DrawImageCommand{
		Image:   r.resources.AddImage(img),
		Options: opts,
	})
}
