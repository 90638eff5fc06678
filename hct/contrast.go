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
package hct

import (
	"image/color"
	"math"

	"cogentcore.org/material/cam/cie"
	"cogentcore.org/material/colors"
)

// ContrastRatio returns the WCAG contrast ratio (1-21) of the two colors.
func ContrastRatio(a, b color.Color) float64 {
	return ToneContrastRatio(colors.FromColor(a).Lstar(), colors.FromColor(b).Lstar())
}

// ToneContrastRatio returns the contrast ratio of two tones.
// Tones are clamped to the 0-100 range.
func ToneContrastRatio(a, b float64) float64 {
	a = min(100, max(0, a))
	b = min(100, max(0, b))
	return ContrastRatioOfYs(cie.LToY(a), cie.LToY(b))
}

// ContrastRatioOfYs returns the contrast ratio of two relative
// luminances in the 0-100 range.
func ContrastRatioOfYs(a, b float64) float64 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 5) / (darker + 5)
}

// ContrastColor returns the color with the hue and chroma of c whose tone
// has at least the given contrast ratio with it, preferring darker
// results for light colors and lighter results for dark colors.
func ContrastColor(c color.Color, ratio float64) (colors.ARGB, bool) {
	h := FromColor(c)
	ct, ok := ContrastTone(h.Tone, ratio)
	if !ok {
		return 0, false
	}
	return h.WithTone(ct).ARGB(), true
}

// ContrastColorUnsafe is like [ContrastColor] but falls back on the
// tone extreme with the most contrast when the ratio is unreachable.
func ContrastColorUnsafe(c color.Color, ratio float64) colors.ARGB {
	h := FromColor(c)
	return h.WithTone(ContrastToneUnsafe(h.Tone, ratio)).ARGB()
}

// ContrastTone returns a tone that has at least the given contrast
// ratio with the given tone, or false if there is none.
func ContrastTone(tone, ratio float64) (float64, bool) {
	first, second := ContrastToneLighter, ContrastToneDarker
	if tone > 50 {
		first, second = second, first
	}
	if t, ok := first(tone, ratio); ok {
		return t, true
	}
	if t, ok := second(tone, ratio); ok {
		return t, true
	}
	return -1, false
}

// ContrastToneUnsafe is like [ContrastTone], returning 0 or 100,
// whichever contrasts more, when the ratio cannot be reached.
func ContrastToneUnsafe(tone, ratio float64) float64 {
	if ct, ok := ContrastTone(tone, ratio); ok {
		return ct
	}
	if ToneContrastRatio(tone, 0) > ToneContrastRatio(tone, 100) {
		return 0
	}
	return 100
}

// ContrastToneLighter returns a tone greater than or equal to tone
// that has the given contrast ratio with it, or false if none exists.
func ContrastToneLighter(tone, ratio float64) (float64, bool) {
	if tone < 0 || tone > 100 {
		return -1, false
	}
	darkY := cie.LToY(tone)
	lightY := ratio*(darkY+5) - 5
	realContrast := ContrastRatioOfYs(lightY, darkY)
	if realContrast < ratio && math.Abs(realContrast-ratio) > 0.04 {
		return -1, false
	}
	// Gamut mapping requires a range on tone; the offset keeps the
	// requested ratio after rounding.
	ret := cie.YToL(lightY) + 0.4
	if ret < 0 || ret > 100 {
		return -1, false
	}
	return ret, true
}

// ContrastToneDarker returns a tone less than or equal to tone
// that has the given contrast ratio with it, or false if none exists.
func ContrastToneDarker(tone, ratio float64) (float64, bool) {
	if tone < 0 || tone > 100 {
		return -1, false
	}
	lightY := cie.LToY(tone)
	darkY := (lightY+5)/ratio - 5
	realContrast := ContrastRatioOfYs(lightY, darkY)
	if realContrast < ratio && math.Abs(realContrast-ratio) > 0.04 {
		return -1, false
	}
	ret := cie.YToL(darkY) - 0.4
	if ret < 0 || ret > 100 {
		return -1, false
	}
	return ret, true
}

// ContrastToneLighterUnsafe is like [ContrastToneLighter] but returns 100
// when the ratio is unreachable.
func ContrastToneLighterUnsafe(tone, ratio float64) float64 {
	if safe, ok := ContrastToneLighter(tone, ratio); ok {
		return safe
	}
	return 100
}

// ContrastToneDarkerUnsafe is like [ContrastToneDarker] but returns 0
// when the ratio is unreachable.
func ContrastToneDarkerUnsafe(tone, ratio float64) float64 {
	if safe, ok := ContrastToneDarker(tone, ratio); ok {
		return safe
	}
	return 0
}
