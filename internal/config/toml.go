// Package config provides TOML configuration for the linechart command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"

	"github.com/gogpu/chart"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Chart     ChartConfig     `toml:"chart"`
	Line      LineConfig      `toml:"line"`
	Fill      FillConfig      `toml:"fill"`
	Flags     FlagsConfig     `toml:"flags"`
	Highlight HighlightConfig `toml:"highlight"`
}

// ChartConfig maps chart-wide settings.
type ChartConfig struct {
	Width        *int     `toml:"width"`
	Height       *int     `toml:"height"`
	VisibleRange *float64 `toml:"visible-range"`
	ScreenScale  *float64 `toml:"screen-scale"`
	Background   *string  `toml:"background"`
}

// LineConfig maps the line style of the data set.
type LineConfig struct {
	Mode           *string   `toml:"mode"`
	Width          *float64  `toml:"width"`
	Colors         []string  `toml:"colors"`
	Dash           []float64 `toml:"dash"`
	DashLastPoint  *bool     `toml:"dash-last-point"`
	CheckGaps      *bool     `toml:"check-gaps"`
	CubicIntensity *float64  `toml:"cubic-intensity"`
	DrawCircles    *bool     `toml:"draw-circles"`
	DrawValues     *bool     `toml:"draw-values"`
}

// FillConfig maps the area fill under the line.
type FillConfig struct {
	Enabled *bool    `toml:"enabled"`
	Colors  []string `toml:"colors"`
	Angle   *float64 `toml:"angle"`
	Alpha   *float64 `toml:"alpha"`
}

// FlagsConfig maps the min/max callouts.
type FlagsConfig struct {
	Enabled    *bool    `toml:"enabled"`
	LineColor  *string  `toml:"line-color"`
	TextColor  *string  `toml:"text-color"`
	LineLength *float64 `toml:"line-length"`
}

// HighlightConfig maps the highlight indicator and marker.
type HighlightConfig struct {
	Color      *string  `toml:"color"`
	Width      *float64 `toml:"width"`
	Vertical   *bool    `toml:"vertical"`
	Horizontal *bool    `toml:"horizontal"`
	Last       *bool    `toml:"last"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// ErrInvalidColor is returned for color strings that are not #RGB, #RGBA,
// #RRGGBB or #RRGGBBAA.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor parses a hex color with an optional leading '#'.
func ParseColor(s string) (gg.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return gg.Hex(h), nil
}

func parseColors(ss []string) ([]gg.RGBA, error) {
	out := make([]gg.RGBA, 0, len(ss))
	for _, s := range ss {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ApplyDataSet overrides the style of set with every value present in the
// config.
func (c FileConfig) ApplyDataSet(set *chart.LineDataSet) error {
	l := c.Line
	if l.Mode != nil {
		m, ok := chart.ParseMode(*l.Mode)
		if !ok {
			return fmt.Errorf("failed to apply line.mode: unknown mode %q", *l.Mode)
		}
		set.Mode = m
	}
	setFloat(&set.LineWidth, l.Width)
	if len(l.Colors) > 0 {
		colors, err := parseColors(l.Colors)
		if err != nil {
			return fmt.Errorf("failed to apply line.colors: %w", err)
		}
		set.Colors = colors
		set.CircleColors = colors
	}
	if l.Dash != nil {
		set.LineDash = l.Dash
	}
	setBool(&set.DashLastPoint, l.DashLastPoint)
	setBool(&set.CheckGaps, l.CheckGaps)
	setFloat(&set.CubicIntensity, l.CubicIntensity)
	setBool(&set.DrawCircles, l.DrawCircles)
	setBool(&set.DrawValues, l.DrawValues)

	f := c.Fill
	setBool(&set.DrawFilled, f.Enabled)
	setFloat(&set.FillAlpha, f.Alpha)
	if len(f.Colors) > 0 {
		colors, err := parseColors(f.Colors)
		if err != nil {
			return fmt.Errorf("failed to apply fill.colors: %w", err)
		}
		angle := 0.0
		setFloat(&angle, f.Angle)
		if len(colors) == 1 {
			set.Fill = chart.SolidFill{Color: colors[0]}
		} else {
			set.Fill = chart.NewLinearGradientFill(colors, angle)
		}
	}

	h := c.Highlight
	if h.Color != nil {
		col, err := ParseColor(*h.Color)
		if err != nil {
			return fmt.Errorf("failed to apply highlight.color: %w", err)
		}
		set.HighlightColor = col
	}
	setFloat(&set.HighlightLineWidth, h.Width)
	setBool(&set.DrawVerticalHighlight, h.Vertical)
	setBool(&set.DrawHorizontalHighlight, h.Horizontal)
	return nil
}

// RendererOptions returns the renderer options the config sets.
func (c FileConfig) RendererOptions() ([]chart.RendererOption, error) {
	var opts []chart.RendererOption
	if c.Chart.ScreenScale != nil {
		opts = append(opts, chart.WithScreenScale(*c.Chart.ScreenScale))
	}

	fl := c.Flags
	if fl.Enabled != nil && *fl.Enabled {
		line, text := gg.Black, gg.Black
		if fl.LineColor != nil {
			col, err := ParseColor(*fl.LineColor)
			if err != nil {
				return nil, fmt.Errorf("failed to apply flags.line-color: %w", err)
			}
			line = col
		}
		if fl.TextColor != nil {
			col, err := ParseColor(*fl.TextColor)
			if err != nil {
				return nil, fmt.Errorf("failed to apply flags.text-color: %w", err)
			}
			text = col
		}
		opts = append(opts, chart.WithMinMaxFlags(line, text))
	}
	if fl.LineLength != nil {
		opts = append(opts, chart.WithFlagLineLength(*fl.LineLength))
	}
	return opts, nil
}

func setFloat(target *float64, value *float64) {
	if value != nil {
		*target = *value
	}
}

func setBool(target *bool, value *bool) {
	if value != nil {
		*target = *value
	}
}
