// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/material/colors"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/states"
	"cogentcore.org/material/tokens"
)

// TooltipTypes are the styles of tooltips.
type TooltipTypes int32

const (
	// TooltipPlain is a short single-line label on an inverse surface.
	TooltipPlain TooltipTypes = iota

	// TooltipRich has a title, supporting text and optional actions.
	TooltipRich
)

// TooltipDelay is the hover time before a tooltip shows, in seconds.
const TooltipDelay float32 = 0.5

// Tooltip is a label shown while its anchor widget is hovered. The
// label is the supporting text; a rich tooltip also has a Title.
type Tooltip struct {
	Base

	Type TooltipTypes

	// Title is the subhead of a rich tooltip.
	Title string

	// Anchor is the widget whose hover shows the tooltip; nil for
	// manual [Tooltip.Show] and [Tooltip.Hide] only.
	Anchor Themed

	// Visible is whether the tooltip is shown.
	Visible bool

	// TitleColor is resolved with the visuals.
	TitleColor colors.ARGB

	hover float32
}

// NewTooltip adds a new hidden tooltip for the anchor to the host.
func (h *Host) NewTooltip(typ TooltipTypes, text string, anchor Themed) *Tooltip {
	tt := &Tooltip{Type: typ, Anchor: anchor}
	tt.Label.Text = text
	return add(h, h.Tooltips, tt)
}

// Show shows the tooltip.
func (tt *Tooltip) Show() {
	if !tt.Visible {
		tt.Visible = true
		tt.MarkDirty()
	}
}

// Hide hides the tooltip.
func (tt *Tooltip) Hide() {
	if tt.Visible {
		tt.Visible = false
		tt.MarkDirty()
	}
}

// animate shows the tooltip once the anchor has been hovered for
// [TooltipDelay] and hides it when the hover ends.
func (tt *Tooltip) animate(dt float32) {
	if tt.Anchor == nil {
		return
	}
	if !tt.Anchor.AsBase().Is(states.Hovered) {
		tt.hover = 0
		tt.Hide()
		return
	}
	tt.hover += dt
	if tt.hover >= TooltipDelay {
		tt.Show()
	}
}

func (tt *Tooltip) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	if tt.Type == TooltipRich {
		return s.SurfaceContainer
	}
	return s.InverseSurface
}

func (tt *Tooltip) ContentColor(s *matcolor.Scheme) colors.ARGB {
	if tt.Type == TooltipRich {
		return s.OnSurfaceVariant
	}
	return s.InverseOnSurface
}

// IndicatorColor is the action color of a rich tooltip.
func (tt *Tooltip) IndicatorColor(s *matcolor.Scheme) colors.ARGB {
	if tt.Type == TooltipRich {
		return s.Primary.Base
	}
	return colors.Transparent
}

func (tt *Tooltip) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (tt *Tooltip) StateLayerOpacity() float64 { return 0 }

func (tt *Tooltip) Elevation() tokens.ElevationLevel {
	if tt.Type == TooltipRich {
		return tokens.Level2
	}
	return tokens.Level0
}

func (tt *Tooltip) resolveParts(s *matcolor.Scheme) {
	tt.TitleColor = tt.Visuals.Content
	if tt.Type == TooltipRich && !tt.IsDisabled() {
		tt.TitleColor = s.OnSurfaceVariant
	}
}
