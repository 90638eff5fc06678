// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// SRGBToLinearComp converts an sRGB gamma-corrected component in the
// 0-1 range into a linear component, also in the 0-1 range.
func SRGBToLinearComp(srgb float64) float64 {
	if srgb <= 0.040449936 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear component in the 0-1 range into
// an sRGB gamma-corrected component, also in the 0-1 range.
func SRGBFromLinearComp(lin float64) float64 {
	if lin <= 0.0031308 {
		return lin * 12.92
	}
	return 1.055*math.Pow(lin, 1/2.4) - 0.055
}

// SRGBToLinear converts sRGB components in the 0-1 range to linear
// components in the 0-1 range.
func SRGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	return SRGBToLinearComp(r), SRGBToLinearComp(g), SRGBToLinearComp(b)
}

// SRGBFromLinear converts linear components in the 0-1 range to sRGB
// components in the 0-1 range.
func SRGBFromLinear(rl, gl, bl float64) (r, g, b float64) {
	return SRGBFromLinearComp(rl), SRGBFromLinearComp(gl), SRGBFromLinearComp(bl)
}

// Linearize converts an 8-bit sRGB channel into a linear channel
// on the 0-100 scale used by the XYZ and CAM16 math.
func Linearize(c uint8) float64 {
	return 100 * SRGBToLinearComp(float64(c)/255)
}

// Delinearize converts a linear channel on the 0-100 scale back into
// an 8-bit sRGB channel, rounding half away from zero and clamping.
func Delinearize(lin float64) uint8 {
	return To8Bit(SRGBFromLinearComp(lin / 100))
}

// To8Bit converts a value in the 0-1 range to a byte, rounding half away
// from zero. Values outside the range are clamped.
func To8Bit(v float64) uint8 {
	r := math.Round(v * 255)
	switch {
	case r < 0 || math.IsNaN(r):
		return 0
	case r > 255:
		return 255
	}
	return uint8(r)
}
