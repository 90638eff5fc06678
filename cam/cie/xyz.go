// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// SRGBToXYZMatrix is the linear sRGB to CIE XYZ (D65) matrix.
var SRGBToXYZMatrix = [3][3]float64{
	{0.41233895, 0.35762064, 0.18051042},
	{0.2126, 0.7152, 0.0722},
	{0.01932141, 0.11916382, 0.95034478},
}

// XYZToSRGBMatrix is the inverse of [SRGBToXYZMatrix].
var XYZToSRGBMatrix = [3][3]float64{
	{3.2413774792388685, -1.5376652402851851, -0.49885366846268053},
	{-0.9691452513005321, 1.8758853451067872, 0.04156585616912061},
	{0.05562093689691305, -0.20395524564742123, 1.0571799111220335},
}

// MatMul multiplies the column vector v by the matrix m.
func MatMul(v [3]float64, m [3][3]float64) [3]float64 {
	return [3]float64{
		v[0]*m[0][0] + v[1]*m[0][1] + v[2]*m[0][2],
		v[0]*m[1][0] + v[1]*m[1][1] + v[2]*m[1][2],
		v[0]*m[2][0] + v[1]*m[2][1] + v[2]*m[2][2],
	}
}

// SRGBLinToXYZ converts linear sRGB into XYZ. The scale of the result
// matches the scale of the input (0-1 in gives 0-1 out, 0-100 in
// gives 0-100 out).
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	v := MatMul([3]float64{rl, gl, bl}, SRGBToXYZMatrix)
	return v[0], v[1], v[2]
}

// XYZToSRGBLin converts XYZ into linear sRGB, preserving the scale.
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	v := MatMul([3]float64{x, y, z}, XYZToSRGBMatrix)
	return v[0], v[1], v[2]
}

// SRGBToXYZ converts gamma-corrected sRGB in the 0-1 range into 0-1 XYZ.
func SRGBToXYZ(r, g, b float64) (x, y, z float64) {
	return SRGBLinToXYZ(SRGBToLinear(r, g, b))
}

// XYZToSRGB converts 0-1 XYZ into gamma-corrected sRGB in the 0-1 range.
// The results are not clamped.
func XYZToSRGB(x, y, z float64) (r, g, b float64) {
	return SRGBFromLinear(XYZToSRGBLin(x, y, z))
}
