// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tokens contains the static Material Design 3 design tokens:
// spacing, corner radii, motion durations and easing curves, elevation
// shadows, state opacities and component sizes. All lengths are in dp.
package tokens

import "cogentcore.org/material/colors"

// Spacing is a standard gap between elements, in dp.
type Spacing float32

const (
	SpacingXS  Spacing = 4
	SpacingS   Spacing = 8
	SpacingM   Spacing = 16
	SpacingL   Spacing = 24
	SpacingXL  Spacing = 32
	SpacingXXL Spacing = 48
)

// Px returns the spacing in pixels at the given device scale
// (pixels per dp).
func (s Spacing) Px(scale float32) float32 { return float32(s) * scale }

// Corner is a corner radius, in dp.
type Corner float32

const (
	CornerNone Corner = 0
	CornerXS   Corner = 4
	CornerS    Corner = 8
	CornerM    Corner = 12
	CornerL    Corner = 16
	CornerXL   Corner = 28

	// CornerFull is a radius no element will ever exceed, which
	// creates a circular or pill-shaped object.
	CornerFull Corner = 9999
)

// Px returns the radius in pixels at the given device scale.
func (c Corner) Px(scale float32) float32 { return float32(c) * scale }

// State layer and disabled opacities.
const (
	HoverOpacity = colors.HoverOpacity
	FocusOpacity = colors.FocusOpacity
	PressOpacity = colors.PressOpacity
	DragOpacity  = colors.DragOpacity

	// DisabledContentOpacity is the alpha of on_surface used for the
	// content of disabled components.
	DisabledContentOpacity = 0.38

	// DisabledContainerOpacity is the alpha of on_surface used for the
	// container of disabled components.
	DisabledContainerOpacity = 0.12

	// DisabledFieldOpacity is the container alpha of a disabled
	// filled text field.
	DisabledFieldOpacity = 0.04

	// ScrimOpacity is the alpha of the scrim behind modal surfaces.
	ScrimOpacity = 0.32
)

// Component sizes, in dp.
const (
	SliderTrackHeight = 4
	SliderHandleSize  = 20

	FABSmall   = 40
	FABRegular = 56
	FABLarge   = 96

	TextFieldHeight = 56

	LoadingIndicatorSize          = 48
	LoadingIndicatorContainedSize = 38

	ButtonHeight     = 40
	IconButtonSize   = 40
	CheckboxSize     = 18
	RadioSize        = 20
	SwitchTrackWidth = 52
	SwitchHeight     = 32
	ChipHeight       = 32
	ProgressHeight   = 4
)
