package recording

import "github.com/gogpu/gg"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdPush     CommandType = iota // Save transform and clip
	CmdPop                         // Restore transform and clip
	CmdClipRect                    // Intersect the clip with a rectangle
	CmdRotate                      // Rotate about a point

	// Drawing commands
	CmdFillPath   // Fill a path
	CmdStrokePath // Stroke a path
	CmdDrawText   // Draw anchored text
	CmdDrawImage  // Draw an image
)

var commandTypeNames = [...]string{
	CmdPush:       "Push",
	CmdPop:        "Pop",
	CmdClipRect:   "ClipRect",
	CmdRotate:     "Rotate",
	CmdFillPath:   "FillPath",
	CmdStrokePath: "StrokePath",
	CmdDrawText:   "DrawText",
	CmdDrawImage:  "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// BrushRef is a reference to a brush in the resource pool.
type BrushRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// FontRef is a reference to a font face in the resource pool.
type FontRef uint32

// InvalidRef marks a reference to nothing, such as the font of text drawn
// before any face was set.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference is not InvalidRef.
func (r FontRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// PushCommand saves the transform and clip.
type PushCommand struct{}

// Type implements Command.
func (PushCommand) Type() CommandType { return CmdPush }

// PopCommand restores the transform and clip saved by the matching push.
type PopCommand struct{}

// Type implements Command.
func (PopCommand) Type() CommandType { return CmdPop }

// ClipRectCommand intersects the clip with a rectangle given in the
// coordinates current when it was recorded.
type ClipRectCommand struct {
	Rect gg.Rect
}

// Type implements Command.
func (ClipRectCommand) Type() CommandType { return CmdClipRect }

// RotateCommand rotates the transform by Angle radians about Center.
type RotateCommand struct {
	Angle  float64
	Center gg.Point
}

// Type implements Command.
func (RotateCommand) Type() CommandType { return CmdRotate }

// FillPathCommand fills a pooled path.
type FillPathCommand struct {
	Path  PathRef
	Brush BrushRef
	Rule  gg.FillRule
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes a pooled path.
type StrokePathCommand struct {
	Path   PathRef
	Brush  BrushRef
	Stroke Stroke
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// DrawTextCommand draws text anchored at (X, Y). AX and AY are fractions of
// the text size, as in gg.Context.DrawStringAnchored.
type DrawTextCommand struct {
	Text   string
	X, Y   float64
	AX, AY float64
	Font   FontRef
	Brush  BrushRef
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// DrawImageCommand draws a pooled image.
type DrawImageCommand struct {
	Image   ImageRef
	Options gg.DrawImageOptions
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// Stroke is the line style captured with each stroke.
type Stroke struct {
	Width      float64
	Cap        gg.LineCap
	Dash       []float64
	DashOffset float64
}

// DefaultStroke returns a 1px solid stroke with butt caps.
func DefaultStroke() Stroke {
	return Stroke{Width: 1, Cap: gg.LineCapButt}
}

// Dashed reports whether the stroke has a dash pattern.
func (s Stroke) Dashed() bool {
	return len(s.Dash) > 0
}

// Clone returns a copy of s with its own dash slice.
func (s Stroke) Clone() Stroke {
	if s.Dash != nil {
		s.Dash = append([]float64(nil), s.Dash...)
	}
	return s
}
