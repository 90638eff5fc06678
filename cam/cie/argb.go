// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// ARGBFromRGB packs opaque 8-bit channels as 0xAARRGGBB.
func ARGBFromRGB(r, g, b uint8) uint32 {
	return 0xff000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// ARGBFromRGBA packs 8-bit channels including alpha as 0xAARRGGBB.
func ARGBFromRGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Alpha returns the alpha channel of a packed ARGB value.
func Alpha(argb uint32) uint8 { return uint8(argb >> 24) }

// Red returns the red channel of a packed ARGB value.
func Red(argb uint32) uint8 { return uint8(argb >> 16) }

// Green returns the green channel of a packed ARGB value.
func Green(argb uint32) uint8 { return uint8(argb >> 8) }

// Blue returns the blue channel of a packed ARGB value.
func Blue(argb uint32) uint8 { return uint8(argb) }

// LinRGBFromARGB returns the linear RGB channels of argb on a 0-100 scale.
func LinRGBFromARGB(argb uint32) (r, g, b float64) {
	return Linearize(Red(argb)), Linearize(Green(argb)), Linearize(Blue(argb))
}

// ARGBFromLinRGB packs linear RGB channels on a 0-100 scale into an
// opaque ARGB value.
func ARGBFromLinRGB(r, g, b float64) uint32 {
	return ARGBFromRGB(Delinearize(r), Delinearize(g), Delinearize(b))
}

// XYZFromARGB returns the 0-100 XYZ coordinates of argb.
func XYZFromARGB(argb uint32) (x, y, z float64) {
	return SRGBLinToXYZ(LinRGBFromARGB(argb))
}

// ARGBFromXYZ converts 0-100 XYZ coordinates to an opaque ARGB value.
func ARGBFromXYZ(x, y, z float64) uint32 {
	return ARGBFromLinRGB(XYZToSRGBLin(x, y, z))
}

// YFromARGB returns the relative luminance Y (0-100) of argb.
func YFromARGB(argb uint32) float64 {
	r, g, b := LinRGBFromARGB(argb)
	return SRGBToXYZMatrix[1][0]*r + SRGBToXYZMatrix[1][1]*g + SRGBToXYZMatrix[1][2]*b
}

// LstarFromARGB returns the L* lightness (0-100) of argb.
func LstarFromARGB(argb uint32) float64 {
	return YToL(YFromARGB(argb))
}

// ARGBFromLstar returns the achromatic ARGB value with the given L*.
func ARGBFromLstar(lstar float64) uint32 {
	c := Delinearize(LToY(lstar))
	return ARGBFromRGB(c, c, c)
}
