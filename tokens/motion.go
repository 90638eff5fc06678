// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tokens

import (
	"time"

	"github.com/chewxy/math32"
)

// Duration is a motion duration token, in seconds.
type Duration float32

const (
	Short1 Duration = 0.05
	Short2 Duration = 0.10
	Short3 Duration = 0.15
	Short4 Duration = 0.20

	Medium1 Duration = 0.25
	Medium2 Duration = 0.30
	Medium3 Duration = 0.35
	Medium4 Duration = 0.40

	Long1 Duration = 0.45
	Long2 Duration = 0.50
	Long3 Duration = 0.55
	Long4 Duration = 0.60

	ExtraLong1 Duration = 0.70
	ExtraLong2 Duration = 0.80
	ExtraLong3 Duration = 0.90
	ExtraLong4 Duration = 1.00
)

// Durations lists all duration tokens from shortest to longest.
var Durations = []Duration{
	Short1, Short2, Short3, Short4,
	Medium1, Medium2, Medium3, Medium4,
	Long1, Long2, Long3, Long4,
	ExtraLong1, ExtraLong2, ExtraLong3, ExtraLong4,
}

// Seconds returns the duration in seconds.
func (d Duration) Seconds() float32 { return float32(d) }

// Std returns the duration as a [time.Duration].
func (d Duration) Std() time.Duration {
	return time.Duration(math32.Round(float32(d) * 1000)) * time.Millisecond
}

// Easing is a cubic Bézier easing curve from (0, 0) to (1, 1)
// with control points (X1, Y1) and (X2, Y2), as in CSS cubic-bezier().
type Easing struct {
	X1, Y1, X2, Y2 float32
}

// Standard easing curves.
var (
	Linear = Easing{0, 0, 1, 1}

	Standard           = Easing{0.2, 0, 0, 1}
	StandardAccelerate = Easing{0.3, 0, 1, 1}
	StandardDecelerate = Easing{0, 0, 0, 1}

	Emphasized           = Easing{0.2, 0, 0, 1}
	EmphasizedAccelerate = Easing{0.3, 0, 0.8, 0.15}
	EmphasizedDecelerate = Easing{0.05, 0.7, 0.1, 1}
)

// Ease returns the eased progress for linear progress p in [0, 1].
// Values outside that range are clamped.
func (e Easing) Ease(p float32) float32 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	case e.X1 == e.Y1 && e.X2 == e.Y2:
		return p
	}
	return bezier(e.solveT(p), e.Y1, e.Y2)
}

// solveT finds the curve parameter t whose x coordinate is x,
// with Newton iterations and a bisection fallback.
func (e Easing) solveT(x float32) float32 {
	t := x
	for i := 0; i < 8; i++ {
		dx := bezier(t, e.X1, e.X2) - x
		if math32.Abs(dx) < 1e-6 {
			return t
		}
		d := bezierSlope(t, e.X1, e.X2)
		if math32.Abs(d) < 1e-6 {
			break
		}
		t -= dx / d
	}
	lo, hi := float32(0), float32(1)
	t = x
	for i := 0; i < 32; i++ {
		v := bezier(t, e.X1, e.X2)
		if math32.Abs(v-x) < 1e-6 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

// bezier evaluates one coordinate of the curve with end points 0 and 1.
func bezier(t, p1, p2 float32) float32 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float32) float32 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// Ripple is the press ripple animation of a component.
type Ripple struct {

	// Duration is the time for the ripple to expand.
	Duration Duration

	// FadeDuration is the time for the ripple to fade out after release.
	FadeDuration Duration

	// Opacity is the peak alpha of the ripple.
	Opacity float32
}

// DefaultRipple is the standard ripple of pressable components.
var DefaultRipple = Ripple{Duration: Medium2, FadeDuration: Short4, Opacity: PressOpacity}

// Transition is an eased interpolation of progress from 0 to 1 over a
// duration, advanced once per frame.
type Transition struct {
	Duration Duration
	Easing   Easing

	elapsed float32
	forward bool
}

// NewTransition returns a transition at progress 0.
func NewTransition(d Duration, e Easing) *Transition {
	return &Transition{Duration: d, Easing: e}
}

// Start runs the transition toward 1 (forward) or back toward 0.
// It continues from the current progress.
func (t *Transition) Start(forward bool) { t.forward = forward }

// Tick advances the transition by dt seconds and returns the eased progress.
func (t *Transition) Tick(dt float32) float32 {
	d := float32(t.Duration)
	if d <= 0 {
		return t.Progress()
	}
	if t.forward {
		t.elapsed = math32.Min(d, t.elapsed+dt)
	} else {
		t.elapsed = math32.Max(0, t.elapsed-dt)
	}
	return t.Progress()
}

// Progress returns the current eased progress.
func (t *Transition) Progress() float32 {
	d := float32(t.Duration)
	if d <= 0 {
		if t.forward {
			return 1
		}
		return 0
	}
	return t.Easing.Ease(t.elapsed / d)
}

// Done returns whether the transition has reached its target.
func (t *Transition) Done() bool {
	if t.forward {
		return t.elapsed >= float32(t.Duration)
	}
	return t.elapsed <= 0
}
