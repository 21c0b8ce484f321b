package main

import (
	"math"

	"golang.org/x/text/language"

	"github.com/gogpu/chart"
	"github.com/gogpu/gg"
)

const (
	demoStart = 1612915200 // 2021-02-10 00:00 UTC
	demoStep  = 86400
)

var demoValues = []float64{2, 5, 14, 8, 7, 1}

var lineColor = gg.Hex("#8CEAFF")

// demoEntries returns n daily entries. The first six follow a fixed
// shape; longer series continue it with a damped wave.
func demoEntries(n int) []chart.Entry {
	entries := make([]chart.Entry, 0, n)
	for i := range n {
		var v float64
		if i < len(demoValues) {
			v = demoValues[i]
		} else {
			t := float64(i)
			v = 7 + 6*math.Sin(t/3)*math.Exp(-t/float64(4*n))
		}
		entries = append(entries, chart.Entry{
			X: float64(demoStart + i*demoStep),
			Y: v * 1000,
		})
	}
	return entries
}

func demoDataSet(n int) *chart.LineDataSet {
	set := chart.NewLineDataSet(demoEntries(n), "balance")
	set.Mode = chart.ModeCubicBezier
	set.LineWidth = 1.5
	set.Colors = []gg.RGBA{lineColor}
	set.DrawCircles = false
	set.DrawValues = false
	set.DashLastPoint = true
	set.CheckGaps = true
	set.MinValidValue = 0
	set.HighlightColor = lineColor
	set.DrawHorizontalHighlight = false
	set.HighlightDash = []float64{3, 3}
	set.MaxMinFormatter = chart.NewGroupedValueFormatter(language.English)

	set.DrawFilled = true
	set.FillAlpha = 0.06
	set.Fill = chart.NewLinearGradientFill([]gg.RGBA{
		lineColor,
		withAlpha(lineColor, 0.8),
		withAlpha(lineColor, 0.6),
		withAlpha(lineColor, 0.4),
		withAlpha(lineColor, 0.2),
		withAlpha(lineColor, 0),
	}, 90)
	return set
}

func withAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A = a
	return c
}

func newDemoChart(w, h int, set *chart.LineDataSet, opts ...chart.RendererOption) *chart.LineChart {
	c := chart.NewLineChart(float64(w), float64(h), opts...)
	c.ViewPort().RestrainViewPort(16, 24, 16, 16)
	c.Marker = chart.NewHighlightMarker(lineColor)
	c.SetDataSets(set)
	return c
}
