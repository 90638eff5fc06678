// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

const (
	// LABEpsilon is the CIE ε constant, 216/24389.
	LABEpsilon = 216.0 / 24389.0

	// LABKappa is the CIE κ constant, 24389/27.
	LABKappa = 24389.0 / 27.0
)

// LABCompress is the forward L*a*b* compression function.
func LABCompress(t float64) float64 {
	if t > LABEpsilon {
		return math.Cbrt(t)
	}
	return (LABKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > LABEpsilon {
		return ft3
	}
	return (116*ft - 16) / LABKappa
}

// XYZToLAB converts 0-1 XYZ into L*a*b* relative to the D65 white point.
// L is in the 0-100 range.
func XYZToLAB(x, y, z float64) (l, a, b float64) {
	fx := LABCompress(x / (WhiteD65[0] / 100))
	fy := LABCompress(y / (WhiteD65[1] / 100))
	fz := LABCompress(z / (WhiteD65[2] / 100))
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts L*a*b* relative to D65 into 0-1 XYZ.
func LABToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteD65[0] / 100
	y = LABUncompress(fy) * WhiteD65[1] / 100
	z = LABUncompress(fz) * WhiteD65[2] / 100
	return
}

// LToY converts L* lightness (0-100) into relative luminance Y (0-100).
func LToY(l float64) float64 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL converts relative luminance Y (0-100) into L* lightness (0-100).
func YToL(y float64) float64 {
	return 116*LABCompress(y/100) - 16
}
