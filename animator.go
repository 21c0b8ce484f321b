package chart

import (
	"math"
	"time"
)

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// EaseLinear returns t unchanged.
func EaseLinear(t float64) float64 { return t }

// EaseInOutQuad accelerates then decelerates.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EaseOutCubic decelerates toward the end.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Animator holds the reveal phases read by the renderer. PhaseX controls
// how much of the x range is drawn and PhaseY scales y values.
//
// Phases are advanced explicitly with Advance so that a frame is a pure
// function of its inputs.
type Animator struct {
	PhaseX float64
	PhaseY float64

	durationX time.Duration
	durationY time.Duration
	easing    Easing
	elapsed   time.Duration
}

// NewAnimator returns an animator with both phases complete.
func NewAnimator() *Animator {
	return &Animator{PhaseX: 1, PhaseY: 1}
}

// Animate restarts the reveal. A zero duration leaves that axis complete.
func (a *Animator) Animate(xDuration, yDuration time.Duration, easing Easing) {
	if easing == nil {
		easing = EaseLinear
	}
	a.durationX = xDuration
	a.durationY = yDuration
	a.easing = easing
	a.elapsed = 0
	a.update()
}

// Advance moves the animation forward by d and reports whether it is
// still running.
func (a *Animator) Advance(d time.Duration) bool {
	a.elapsed += d
	a.update()
	return a.Running()
}

// Running reports whether either phase is below 1.
func (a *Animator) Running() bool {
	return a.PhaseX < 1 || a.PhaseY < 1
}

func (a *Animator) update() {
	a.PhaseX = a.phase(a.durationX)
	a.PhaseY = a.phase(a.durationY)
}

func (a *Animator) phase(total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	t := min(float64(a.elapsed)/float64(total), 1)
	return min(max(a.easing(t), 0), 1)
}
