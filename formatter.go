package chart

import (
	"math"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ValueFormatter turns an entry value into label text.
type ValueFormatter interface {
	FormatValue(value float64, e Entry, dataSetIndex int, vp *ViewPort) string
}

// ValueFormatterFunc adapts a function to ValueFormatter.
type ValueFormatterFunc func(value float64, e Entry, dataSetIndex int, vp *ViewPort) string

// FormatValue calls f.
func (f ValueFormatterFunc) FormatValue(value float64, e Entry, dataSetIndex int, vp *ViewPort) string {
	return f(value, e, dataSetIndex, vp)
}

// DefaultValueFormatter prints values with a fixed number of decimals.
type DefaultValueFormatter struct {
	Decimals int
}

// FormatValue implements ValueFormatter.
func (f DefaultValueFormatter) FormatValue(value float64, _ Entry, _ int, _ *ViewPort) string {
	return strconv.FormatFloat(value, 'f', f.Decimals, 64)
}

// GroupedValueFormatter rounds values to integers and prints them with
// the digit grouping of a locale, e.g. 14,000.
type GroupedValueFormatter struct {
	p *message.Printer
}

// NewGroupedValueFormatter returns a formatter grouping digits per tag.
func NewGroupedValueFormatter(tag language.Tag) *GroupedValueFormatter {
	return &GroupedValueFormatter{p: message.NewPrinter(tag)}
}

// FormatValue implements ValueFormatter.
func (f *GroupedValueFormatter) FormatValue(value float64, _ Entry, _ int, _ *ViewPort) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "-"
	}
	return f.p.Sprintf("%d", int64(math.Round(value)))
}

// formatPlain is the label used when a data set has no formatter.
func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AxisValueFormatter turns an axis value into label text.
type AxisValueFormatter interface {
	FormatAxisValue(value float64) string
}

// AxisValueFormatterFunc adapts a function to AxisValueFormatter.
type AxisValueFormatterFunc func(value float64) string

// FormatAxisValue calls f.
func (f AxisValueFormatterFunc) FormatAxisValue(value float64) string {
	return f(value)
}

// DateAxisFormatter formats x values holding Unix seconds as dates.
// Dates in the current year print as M/D, others as Y/M/D.
type DateAxisFormatter struct {
	// Location defaults to time.Local.
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

// FormatAxisValue implements AxisValueFormatter.
func (f DateAxisFormatter) FormatAxisValue(value float64) string {
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}

	t := time.Unix(int64(value), 0).In(loc)
	if t.Year() == now().In(loc).Year() {
		return t.Format("1/2")
	}
	return t.Format("2006/1/2")
}

// FillFormatter supplies the data-space y of the fill baseline.
type FillFormatter interface {
	FillLinePosition(set *LineDataSet, provider DataProvider) float64
}

// FillFormatterFunc adapts a function to FillFormatter.
type FillFormatterFunc func(set *LineDataSet, provider DataProvider) float64

// FillLinePosition calls f.
func (f FillFormatterFunc) FillLinePosition(set *LineDataSet, provider DataProvider) float64 {
	return f(set, provider)
}

// DefaultFillFormatter fills to zero when the data crosses it and to the
// nearest chart edge otherwise.
type DefaultFillFormatter struct{}

// FillLinePosition implements FillFormatter.
func (DefaultFillFormatter) FillLinePosition(set *LineDataSet, provider DataProvider) float64 {
	if set.YMax() > 0 && set.YMin() < 0 {
		return 0
	}
	if set.YMin() >= 0 {
		if provider.DataYMin() < 0 {
			return 0
		}
		return provider.ChartYMin()
	}
	if provider.DataYMax() > 0 {
		return 0
	}
	return provider.ChartYMax()
}
