// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"

	"cogentcore.org/material/states"
)

// Blend composes a state layer: it returns base·(1-alpha) + overlay·alpha
// for each channel, alpha included. If base is fully transparent, the
// result is overlay at the given opacity. alpha is clamped to 0-1, and
// an alpha of 0 returns base unchanged.
func Blend(base, overlay ARGB, alpha float64) ARGB {
	alpha = min(1, max(0, alpha))
	switch {
	case alpha == 0:
		return base
	case base.IsTransparent():
		return overlay.WithAlpha(alpha)
	}
	mix := func(b, o uint8) uint8 {
		v := math.Round(float64(b)*(1-alpha) + float64(o)*alpha)
		return uint8(min(255, max(0, v)))
	}
	return FromRGBA(
		mix(base.R(), overlay.R()),
		mix(base.G(), overlay.G()),
		mix(base.B(), overlay.B()),
		mix(base.A(), overlay.A()),
	)
}

// State layer opacities for each interaction level.
const (
	HoverOpacity = 0.08
	FocusOpacity = 0.12
	PressOpacity = 0.12
	DragOpacity  = 0.16
)

// StateLayerOpacity returns the state layer opacity for the given
// interaction level: 0 at rest and when disabled.
func StateLayerOpacity(in states.Interaction) float64 {
	switch in {
	case states.Hover:
		return HoverOpacity
	case states.Focus:
		return FocusOpacity
	case states.Press:
		return PressOpacity
	case states.Drag:
		return DragOpacity
	}
	return 0
}
