package chart

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// RendererOption configures a LineRenderer during creation.
//
// Example:
//
//	r := chart.NewLineRenderer(provider, vp, anim,
//	    chart.WithScreenScale(2),
//	    chart.WithMinMaxFlags(gg.Black, gg.Hex("#666666")))
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	screenScale    float64
	tailDash       []float64
	flags          bool
	flagLineLength float64
	flagLineColor  gg.RGBA
	flagTextColor  gg.RGBA
	flagFont       text.Face
	valueFont      text.Face
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		screenScale:    1,
		tailDash:       []float64{2, 2},
		flagLineLength: 25,
		flagLineColor:  gg.Black,
		flagTextColor:  gg.Black,
	}
}

// WithScreenScale sets the device pixels per content pixel. Cubic curves
// fall back to straight lines, and long runs are decimated, once they
// would need more segments than contentWidth × scale.
func WithScreenScale(scale float64) RendererOption {
	return func(o *rendererOptions) {
		if scale > 0 {
			o.screenScale = scale
		}
	}
}

// WithTailDash sets the dash pattern of the final segment when a data set
// enables DashLastPoint. The default is 2 on, 2 off.
func WithTailDash(lengths ...float64) RendererOption {
	return func(o *rendererOptions) {
		if len(lengths) > 0 {
			o.tailDash = lengths
		}
	}
}

// WithMinMaxFlags enables the min/max callouts with the given line and
// label colors.
func WithMinMaxFlags(line, label gg.RGBA) RendererOption {
	return func(o *rendererOptions) {
		o.flags = true
		o.flagLineColor = line
		o.flagTextColor = label
	}
}

// WithFlagLineLength sets the horizontal length of callout lines.
func WithFlagLineLength(length float64) RendererOption {
	return func(o *rendererOptions) {
		if length > 0 {
			o.flagLineLength = length
		}
	}
}

// WithFlagFont sets the face used for min/max labels.
func WithFlagFont(face text.Face) RendererOption {
	return func(o *rendererOptions) {
		o.flagFont = face
	}
}

// WithValueFont sets the face used for value labels.
func WithValueFont(face text.Face) RendererOption {
	return func(o *rendererOptions) {
		o.valueFont = face
	}
}
