package recording

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Target is a surface a Recording can be replayed onto. *gg.Context and
// *Recorder both satisfy it.
type Target interface {
	Push()
	Pop()
	ClipRect(x, y, w, h float64)
	RotateAbout(angle, x, y float64)

	SetColor(c color.Color)
	SetFillBrush(b gg.Brush)
	SetStrokeBrush(b gg.Brush)
	SetLineWidth(width float64)
	SetLineCap(lineCap gg.LineCap)
	SetDash(lengths ...float64)
	SetDashOffset(offset float64)
	ClearDash()
	SetFillRule(rule gg.FillRule)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	ClearPath()
	Fill() error
	Stroke() error

	SetFont(face text.Face)
	DrawStringAnchored(s string, x, y, ax, ay float64)
	DrawImageEx(img *gg.ImageBuf, opts gg.DrawImageOptions)
}

// Recording is an immutable container for recorded drawing commands.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Strokes returns the stroke commands in recording order.
func (r *Recording) Strokes() []StrokePathCommand {
	return commandsOf[StrokePathCommand](r.commands)
}

// Fills returns the fill commands in recording order.
func (r *Recording) Fills() []FillPathCommand {
	return commandsOf[FillPathCommand](r.commands)
}

// Texts returns the text commands in recording order.
func (r *Recording) Texts() []DrawTextCommand {
	return commandsOf[DrawTextCommand](r.commands)
}

func commandsOf[T Command](cmds []Command) []T {
	var out []T
	for _, cmd := range cmds {
		if c, ok := cmd.(T); ok {
			out = append(out, c)
		}
	}
	return out
}

// Path returns the path a command refers to.
func (r *Recording) Path(ref PathRef) *gg.Path {
	return r.resources.GetPath(ref)
}

// Brush returns the brush a command refers to.
func (r *Recording) Brush(ref BrushRef) gg.Brush {
	return r.resources.GetBrush(ref)
}

// Playback replays the recording onto target. It stops at the first fill
// or stroke the target rejects.
func (r *Recording) Playback(target Target) error {
	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case PushCommand:
			target.Push()
		case PopCommand:
			target.Pop()
		case ClipRectCommand:
			target.ClipRect(c.Rect.Min.X, c.Rect.Min.Y, c.Rect.Width(), c.Rect.Height())
		case RotateCommand:
			target.RotateAbout(c.Angle, c.Center.X, c.Center.Y)
		case FillPathCommand:
			r.replayPath(target, c.Path)
			target.SetFillRule(c.Rule)
			target.SetFillBrush(r.resources.GetBrush(c.Brush))
			if err := target.Fill(); err != nil {
				return fmt.Errorf("recording: command %d (%s): %w", i, cmd.Type(), err)
			}
		case StrokePathCommand:
			r.replayPath(target, c.Path)
			target.SetLineWidth(c.Stroke.Width)
			target.SetLineCap(c.Stroke.Cap)
			if c.Stroke.Dashed() {
				target.SetDash(c.Stroke.Dash...)
				target.SetDashOffset(c.Stroke.DashOffset)
			} else {
				target.ClearDash()
			}
			target.SetStrokeBrush(r.resources.GetBrush(c.Brush))
			if err := target.Stroke(); err != nil {
				return fmt.Errorf("recording: command %d (%s): %w", i, cmd.Type(), err)
			}
		case DrawTextCommand:
			if face := r.resources.GetFont(c.Font); face != nil {
				target.SetFont(face)
			}
			target.SetFillBrush(r.resources.GetBrush(c.Brush))
			target.DrawStringAnchored(c.Text, c.X, c.Y, c.AX, c.AY)
		case DrawImageCommand:
			if img := r.resources.GetImage(c.Image); img != nil {
				target.DrawImageEx(img, c.Options)
			}
		}
	}
	return nil
}

func (r *Recording) replayPath(target Target, ref PathRef) {
	target.ClearPath()
	p := r.resources.GetPath(ref)
	if p == nil {
		return
	}
	var cur gg.Point
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			target.MoveTo(e.Point.X, e.Point.Y)
			cur = e.Point
		case gg.LineTo:
			target.LineTo(e.Point.X, e.Point.Y)
			cur = e.Point
		case gg.QuadTo:
			c1 := cur.Lerp(e.Control, 2.0/3.0)
			c2 := e.Point.Lerp(e.Control, 2.0/3.0)
			target.CubicTo(c1.X, c1.Y, c2.X, c2.Y, e.Point.X, e.Point.Y)
			cur = e.Point
		case gg.CubicTo:
			target.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
			cur = e.Point
		case gg.Close:
			target.ClosePath()
		}
	}
}
