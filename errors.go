package chart

import "errors"

var (
	// ErrInvalidDataSetIndex is returned when a highlight or lookup names a
	// data set the chart does not have.
	ErrInvalidDataSetIndex = errors.New("chart: invalid data set index")

	// ErrNoGradientPositions is returned when a gradient line is requested
	// without stop positions.
	ErrNoGradientPositions = errors.New("chart: gradient line enabled without gradient positions")

	// ErrGradientMismatch is returned when the number of gradient positions
	// differs from the number of colors.
	ErrGradientMismatch = errors.New("chart: gradient positions and colors differ in length")

	// ErrDegenerateBounds is returned when a path bounding box is empty,
	// infinite or NaN.
	ErrDegenerateBounds = errors.New("chart: degenerate bounding box")
)
