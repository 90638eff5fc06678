// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hct implements the HCT (hue, chroma, tone) color space. Hue and
// chroma come from the CAM16 appearance model and tone is the L* lightness
// of CIE LAB, so equal tone differences are equal perceived lightness
// differences. It also provides the gamut-mapping solver that finds the
// sRGB color for any HCT request.
package hct

import (
	"fmt"
	"image/color"

	"cogentcore.org/material/cam/cam16"
	"cogentcore.org/material/colors"
)

// HCT is a color as hue, chroma and tone.
//
// The fields describe the color actually rendered: constructing an HCT
// from a request that is out of gamut yields the measured coordinates of
// the gamut-mapped result, which has the same hue and tone but less chroma.
type HCT struct {

	// Hue is the CAM16 hue angle in degrees, in [0, 360).
	Hue float64 `min:"0" max:"360"`

	// Chroma is the CAM16 chroma, 0 for greys. How much a hue and tone
	// can reach in sRGB varies; nothing exceeds 150.
	Chroma float64 `min:"0" max:"150"`

	// Tone is CIE L*, from 0 (black) to 100 (white).
	Tone float64 `min:"0" max:"100"`

	// argb is the sRGB color these coordinates were measured from.
	argb colors.ARGB
}

// New returns the sRGB color closest to the requested coordinates,
// measured back into HCT. Out of gamut requests lose chroma first.
func New(hue, chroma, tone float64) HCT {
	return FromARGB(Solve(hue, chroma, tone))
}

// FromARGB returns the HCT coordinates of the given color, under standard
// viewing conditions. The alpha channel is kept in the cached color.
func FromARGB(c colors.ARGB) HCT {
	cam := cam16.FromARGB(uint32(c))
	return HCT{Hue: cam.Hue, Chroma: cam.Chroma, Tone: c.Lstar(), argb: c}
}

// FromColor converts any [color.Color], returning an HCT as is.
func FromColor(c color.Color) HCT {
	if h, ok := c.(HCT); ok {
		return h
	}
	return FromARGB(colors.FromColor(c))
}

// Model converts colors to [HCT].
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	return FromColor(c)
}

// ARGB returns the sRGB color of h.
func (h HCT) ARGB() colors.ARGB {
	if h.argb == 0 {
		// literal HCT{...} values have no cached color
		return Solve(h.Hue, h.Chroma, h.Tone)
	}
	return h.argb
}

func (h HCT) RGBA() (r, g, b, a uint32) {
	return h.ARGB().RGBA()
}

func (h HCT) AsRGBA() color.RGBA {
	return h.ARGB().AsRGBA()
}

// SetHue replaces the hue, wrapping it into [0, 360). The chroma may
// drop if the new hue cannot reach it at this tone.
func (h *HCT) SetHue(hue float64) {
	*h = h.WithHue(hue)
}

// WithHue returns a copy of h with the hue replaced, as [HCT.SetHue].
func (h HCT) WithHue(hue float64) HCT {
	return New(hue, h.Chroma, h.Tone)
}

// SetChroma replaces the chroma, capped at the most the hue and tone
// reach in sRGB.
func (h *HCT) SetChroma(chroma float64) {
	*h = h.WithChroma(chroma)
}

// WithChroma returns a copy of h with the chroma replaced.
func (h HCT) WithChroma(chroma float64) HCT {
	return New(h.Hue, chroma, h.Tone)
}

// SetTone replaces the tone, clamped to [0, 100]. The chroma may drop
// to stay in gamut.
func (h *HCT) SetTone(tone float64) {
	*h = h.WithTone(tone)
}

// WithTone returns a copy of h with the tone replaced.
func (h HCT) WithTone(tone float64) HCT {
	return New(h.Hue, h.Chroma, tone)
}

func (h HCT) String() string {
	return fmt.Sprintf("hct(%g, %g, %g)", h.Hue, h.Chroma, h.Tone)
}
