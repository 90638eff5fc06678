// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the primitive color math used by the rest of the
// color system: sRGB companding, the linear RGB to CIE XYZ transform,
// CIE L*a*b* and L* lightness, and packing of 32-bit ARGB values.
//
// All functions are pure and total. Values use float64 throughout so that
// results are the same on every platform.
package cie

// WhiteD65 is the standard D65 white point in 100-based XYZ coordinates.
var WhiteD65 = [3]float64{95.047, 100.0, 108.883}
