// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import "math"

// SanitizeDegrees ensures that degrees is in the [0, 360) range.
func SanitizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SanitizeRadians ensures that rad is in the [0, 2π) range.
func SanitizeRadians(rad float64) float64 {
	return math.Mod(rad+8*math.Pi, 2*math.Pi)
}

// InCyclicOrder returns whether a, b and c are in cyclic order,
// where a and c are angles in radians.
func InCyclicOrder(a, b, c float64) bool {
	deltaAB := SanitizeRadians(b - a)
	deltaAC := SanitizeRadians(c - a)
	return deltaAB < deltaAC
}
