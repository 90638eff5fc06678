// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"cogentcore.org/material/cam/cam16"
	"cogentcore.org/material/colors"
	"cogentcore.org/material/hct"
)

// Chroma targets of the core palettes.
const (
	PrimaryChroma        = 48
	SecondaryChroma      = 16
	TertiaryChroma       = 24
	NeutralChroma        = 4
	NeutralVariantChroma = 8

	// TertiaryHueShift is added to the seed hue for the tertiary palette.
	TertiaryHueShift = 60

	ErrorHue    = 25
	ErrorChroma = 84
)

// Palette contains the tonal palettes from which all scheme colors are read.
type Palette struct {

	// Seed is the color the palette was generated from.
	Seed colors.ARGB

	// Primary is the main accent palette, at the seed hue.
	Primary *Tones

	// Secondary is a less colorful palette at the seed hue.
	Secondary *Tones

	// Tertiary is an accent palette with a hue rotated from the seed.
	Tertiary *Tones

	// Error is a fixed red palette, independent of the seed.
	Error *Tones

	// Neutral is a near-grey palette used for surfaces and text.
	Neutral *Tones

	// NeutralVariant is a slightly more colorful neutral palette,
	// used for outlines and secondary text.
	NeutralVariant *Tones
}

// NewPalette returns the core palettes for the given seed color.
// Only the hue of the seed matters; chroma targets are fixed.
func NewPalette(seed colors.ARGB) *Palette {
	h := hct.FromARGB(seed).Hue
	return &Palette{
		Seed:           seed,
		Primary:        NewTones(h, PrimaryChroma),
		Secondary:      NewTones(h, SecondaryChroma),
		Tertiary:       NewTones(cam16.SanitizeDegrees(h+TertiaryHueShift), TertiaryChroma),
		Error:          NewTones(ErrorHue, ErrorChroma),
		Neutral:        NewTones(h, NeutralChroma),
		NeutralVariant: NewTones(h, NeutralVariantChroma),
	}
}
