// Command linechart renders a line chart of demo data to a PNG file.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/internal/config"
	"github.com/gogpu/chart/recording"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

const (
	defaultWidth    = 800
	defaultHeight   = 400
	defaultMode     = "cubic"
	defaultCount    = 6
	defaultScale    = 1.0
	defaultFontSize = 12.0
)

var (
	outPath      string
	configPath   string
	width        int
	height       int
	mode         string
	count        int
	visibleRange float64
	screenScale  float64
	progress     float64
	dump         bool
	logLevel     string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "linechart",
		Short:         "Render a line chart to PNG",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRender,
	}

	rootCmd.Flags().StringVarP(&outPath, "out", "o", "chart.png", "output PNG file")
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultConfigPath(), "TOML config file")
	rootCmd.Flags().IntVar(&width, "width", defaultWidth, "image width in pixels")
	rootCmd.Flags().IntVar(&height, "height", defaultHeight, "image height in pixels")
	rootCmd.Flags().StringVar(&mode, "mode", defaultMode, "line mode: linear, stepped, cubic, horizontal")
	rootCmd.Flags().IntVar(&count, "count", defaultCount, "number of demo entries")
	rootCmd.Flags().Float64Var(&visibleRange, "visible-range", 0, "x range to show, ending at the newest entry (0 shows all)")
	rootCmd.Flags().Float64Var(&screenScale, "scale", defaultScale, "device pixels per content pixel")
	rootCmd.Flags().Float64Var(&progress, "progress", 1, "reveal animation progress to render (0-1)")
	rootCmd.Flags().BoolVar(&dump, "dump", false, "print the recorded draw commands")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	return rootCmd
}

func runRender(cmd *cobra.Command, _ []string) error {
	if err := setupLogger(cmd.ErrOrStderr(), logLevel); err != nil {
		return err
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "width", &width, fileCfg.Chart.Width)
	applyIntConfig(cmd, "height", &height, fileCfg.Chart.Height)
	applyFloatConfig(cmd, "visible-range", &visibleRange, fileCfg.Chart.VisibleRange)
	applyFloatConfig(cmd, "scale", &screenScale, fileCfg.Chart.ScreenScale)
	applyStringConfig(cmd, "mode", &mode, fileCfg.Line.Mode)

	if err := validateFlags(); err != nil {
		return err
	}

	face, err := loadFace(defaultFontSize)
	if err != nil {
		return err
	}

	opts := []chart.RendererOption{
		chart.WithMinMaxFlags(gg.Black, gg.Hex("#666666")),
		chart.WithFlagFont(face),
		chart.WithValueFont(face),
	}
	cfgOpts, err := fileCfg.RendererOptions()
	if err != nil {
		return err
	}
	opts = append(opts, cfgOpts...)
	opts = append(opts, chart.WithScreenScale(screenScale))

	set := demoDataSet(count)
	if err := fileCfg.ApplyDataSet(set); err != nil {
		return err
	}
	m, _ := chart.ParseMode(mode)
	set.Mode = m

	c := newDemoChart(width, height, set, opts...)
	if fileCfg.Highlight.Last == nil || *fileCfg.Highlight.Last {
		c.HighlightLast(0)
	}
	if visibleRange > 0 {
		c.SetVisibleXRangeMaximum(visibleRange)
		c.ShowLatest(visibleRange)
	}
	if progress < 1 {
		const reveal = time.Second
		c.Animator().Animate(reveal, reveal, chart.EaseInOutQuad)
		c.Animator().Advance(time.Duration(progress * float64(reveal)))
	}

	rec := recording.NewRecorder(width, height)
	rec.SetFont(face)
	c.Render(rec)
	r := rec.FinishRecording()

	if dump {
		printSummary(cmd.OutOrStdout(), r)
	}

	background := gg.White
	if fileCfg.Chart.Background != nil {
		bg, err := config.ParseColor(*fileCfg.Chart.Background)
		if err != nil {
			return fmt.Errorf("failed to apply chart.background: %w", err)
		}
		background = bg
	}

	dc := gg.NewContext(width, height)
	defer func() {
		if cerr := dc.Close(); cerr != nil {
			chart.Logger().Debug("failed to close context", "err", cerr)
		}
	}()
	dc.ClearWithColor(background)
	dc.SetFont(face)
	if err := r.Playback(dc); err != nil {
		return fmt.Errorf("failed to draw chart: %w", err)
	}
	if err := dc.SavePNG(outPath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outPath, err)
	}
	chart.Logger().Info("chart saved", "path", outPath, "width", width, "height", height, "mode", set.Mode)
	return nil
}

func validateFlags() error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("size must be positive, got %dx%d", width, height)
	}
	if count < 0 {
		return fmt.Errorf("count must not be negative, got %d", count)
	}
	if _, ok := chart.ParseMode(mode); !ok {
		return fmt.Errorf("unknown mode %q", mode)
	}
	if progress < 0 || progress > 1 {
		return fmt.Errorf("progress must be between 0 and 1, got %v", progress)
	}
	return nil
}

func setupLogger(w io.Writer, level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	chart.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})))
	return nil
}

func loadFace(size float64) (text.Face, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return src.Face(size), nil
}

func printSummary(w io.Writer, r *recording.Recording) {
	types := []recording.CommandType{
		recording.CmdPush, recording.CmdPop, recording.CmdClipRect, recording.CmdRotate,
		recording.CmdFillPath, recording.CmdStrokePath, recording.CmdDrawText, recording.CmdDrawImage,
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d commands\n", len(r.Commands()))
	for _, t := range types {
		if n := r.Count(t); n > 0 {
			fmt.Fprintf(&b, "  %-12s %d\n", t, n)
		}
	}
	for _, s := range r.Texts() {
		fmt.Fprintf(&b, "  text %q at (%.1f, %.1f)\n", s.Text, s.X, s.Y)
	}
	_, _ = io.WriteString(w, b.String())
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
