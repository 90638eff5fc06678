// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/material/colors"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/tokens"
)

// dividerInset is the leading margin of an inset divider in dp, which
// lines it up with the text of list items that have a leading icon.
const dividerInset = float32(tokens.SpacingL) + 56

// Divider is a thin line separating list items or content sections.
// The line is the outline.
type Divider struct {
	Base

	// Inset starts the line after the leading icon of list items.
	Inset bool
}

// NewDivider adds a new full width divider to the host.
func (h *Host) NewDivider() *Divider {
	return add(h, h.Dividers, &Divider{})
}

// Thickness returns the line thickness in dp.
func (dv *Divider) Thickness() float32 { return 1 }

// LeadingMargin returns the space before the line in dp.
func (dv *Divider) LeadingMargin() float32 {
	if dv.Inset {
		return dividerInset
	}
	return 0
}

func (dv *Divider) ContainerColor(s *matcolor.Scheme) colors.ARGB { return colors.Transparent }

func (dv *Divider) OutlineColor(s *matcolor.Scheme) colors.ARGB { return s.OutlineVariant }

func (dv *Divider) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OutlineVariant }

func (dv *Divider) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (dv *Divider) StateLayerOpacity() float64 { return 0 }
