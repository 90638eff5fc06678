// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/material/colors"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/tokens"
	"github.com/chewxy/math32"
)

// ProgressTypes are the shapes of progress indicators.
type ProgressTypes int32

const (
	ProgressLinear ProgressTypes = iota
	ProgressCircular
)

// Progress shows the completion of a task. The track is the container
// and the filled part the indicator.
type Progress struct {
	Base

	Type ProgressTypes

	// Value is the completion in [0, 1]; ignored when Indeterminate.
	Value float32

	// Indeterminate animates continuously instead of showing a value.
	Indeterminate bool

	// FourColor cycles the indicator through four role colors, one per
	// indeterminate cycle.
	FourColor bool

	// Phase is the indeterminate animation angle, in radians in [0, 2π).
	Phase float32

	colorIndex int
}

// NewProgress adds a new determinate progress indicator at 0 to the host.
func (h *Host) NewProgress(typ ProgressTypes) *Progress {
	return add(h, h.Progress, &Progress{Type: typ})
}

// SetValue sets the completion, clamped to [0, 1].
func (pr *Progress) SetValue(v float32) {
	v = math32.Max(0, math32.Min(1, v))
	if v != pr.Value {
		pr.Value = v
		pr.MarkDirty()
	}
}

// ColorIndex returns the current four-color step, in [0, 4).
func (pr *Progress) ColorIndex() int { return pr.colorIndex }

func (pr *Progress) animate(dt float32) {
	if !pr.Indeterminate {
		return
	}
	pr.Phase += dt * 2 * math32.Pi / tokens.ExtraLong4.Seconds()
	for pr.Phase >= 2*math32.Pi {
		pr.Phase -= 2 * math32.Pi
		pr.colorIndex = (pr.colorIndex + 1) % 4
		if pr.FourColor {
			pr.MarkDirty()
		}
	}
}

func (pr *Progress) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	if pr.Type == ProgressCircular {
		return colors.Transparent
	}
	return s.SurfaceContainerHighest
}

func (pr *Progress) IndicatorColor(s *matcolor.Scheme) colors.ARGB {
	if !pr.FourColor {
		return s.Primary.Base
	}
	return [4]colors.ARGB{s.Primary.Base, s.Primary.Container, s.Tertiary.Base, s.Tertiary.Container}[pr.colorIndex]
}

func (pr *Progress) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.Primary.Base }

func (pr *Progress) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.Primary.Base }

func (pr *Progress) StateLayerOpacity() float64 { return 0 }
