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

// Package cam16 implements the CAM16 color appearance model and its
// viewing conditions. Hue and chroma of the HCT color space come from
// this model.
package cam16

import (
	"math"

	"cogentcore.org/material/cam/cie"
)

// CAM represents a point in the cam16 color model along 6 dimensions
// representing the perceived hue, colorfulness, and brightness,
// similar to HSL but much more well-calibrated to actual human subjective judgments.
type CAM struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	Hue float64

	// chroma (C) is the colorfulness or saturation of the color -- greyscale colors have no chroma, and fully saturated ones have high chroma
	Chroma float64

	// colorfulness (M) is the absolute chromatic intensity
	Colorfulness float64

	// saturation (s) is the colorfulness relative to brightness
	Saturation float64

	// brightness (Q) is the apparent amount of light from the color, which is not a simple function of actual light energy emitted
	Brightness float64

	// lightness (J) is the brightness relative to a reference white, which varies as a function of chroma and hue
	Lightness float64
}

// FromARGB returns CAM values for the given packed ARGB color
// under standard viewing conditions.
func FromARGB(argb uint32) *CAM {
	return FromXYZ(cie.XYZFromARGB(argb))
}

// FromSRGB returns CAM values from given SRGB color coordinates,
// under standard viewing conditions. The RGB value range is 0-1,
// and RGB values have gamma correction.
func FromSRGB(r, g, b float64) *CAM {
	x, y, z := cie.SRGBToXYZ(r, g, b)
	return FromXYZ(100*x, 100*y, 100*z)
}

// FromXYZ returns CAM values from given 100-based XYZ coordinates,
// under standard viewing conditions
func FromXYZ(x, y, z float64) *CAM {
	return FromXYZView(x, y, z, NewStdView())
}

// FromXYZView returns CAM values from given XYZ color coordinate,
// under given viewing conditions. Requires 100-base XYZ coordinates.
func FromXYZView(x, y, z float64, vw *View) *CAM {
	l, m, s := XYZToLMS(x, y, z)
	redVgreen, yellowVblue, grey, greyNorm := LMSToOps(l, m, s, vw)

	hue := SanitizeDegrees(math.Atan2(yellowVblue, redVgreen) * 180 / math.Pi)
	// achromatic response to color
	ac := grey * vw.NBB

	J := 100 * math.Pow(ac/vw.AW, vw.C*vw.Z)
	Q := (4 / vw.C) * math.Sqrt(J/100) * (vw.AW + 4) * vw.FLRoot

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math.Cos(huePrime*math.Pi/180+2) + 3.8)
	p1 := 50000 / 13.0 * eHue * vw.NC * vw.NCB
	t := p1 * math.Hypot(redVgreen, yellowVblue) / (greyNorm + 0.305)
	alpha := math.Pow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, vw.BgYToWhiteY), 0.73)

	C := alpha * math.Sqrt(J/100)
	M := C * vw.FLRoot
	sat := 50 * math.Sqrt((alpha*vw.C)/(vw.AW+4))
	return &CAM{Hue: hue, Chroma: C, Colorfulness: M, Saturation: sat, Brightness: Q, Lightness: J}
}

// FromJCH returns CAM values from the given lightness (j), chroma (c),
// and hue (h) values under standard viewing condition
func FromJCH(j, c, h float64) *CAM {
	return FromJCHView(j, c, h, NewStdView())
}

// FromJCHView returns CAM values from the given lightness (j), chroma (c),
// and hue (h) values under the given viewing conditions
func FromJCHView(j, c, h float64, vw *View) *CAM {
	cam := &CAM{Lightness: j, Chroma: c, Hue: h}
	cam.Brightness = (4 / vw.C) * math.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot
	cam.Colorfulness = c * vw.FLRoot
	alpha := c / math.Sqrt(j/100)
	cam.Saturation = 50 * math.Sqrt((alpha*vw.C)/(vw.AW+4))
	return cam
}

// UCS returns the CAM16-UCS components based on the the CAM values
func (cam *CAM) UCS() (j, m, a, b float64) {
	j = (1 + 100*0.007) * cam.Lightness / (1 + 0.007*cam.Lightness)
	m = math.Log(1+0.0228*cam.Colorfulness) / 0.0228
	hr := cam.Hue * math.Pi / 180
	a = m * math.Cos(hr)
	b = m * math.Sin(hr)
	return
}

// FromUCS returns CAM values from the given CAM16-UCS coordinates
// (jstar, astar, and bstar), under standard viewing conditions
func FromUCS(j, a, b float64) *CAM {
	vw := NewStdView()
	m := math.Hypot(a, b)
	M := (math.Exp(m*0.0228) - 1) / 0.0228
	c := M / vw.FLRoot
	h := SanitizeDegrees(math.Atan2(b, a) * 180 / math.Pi)
	j /= 1 - (j-100)*0.007
	return FromJCHView(j, c, h, vw)
}

// Distance returns the CAM16-UCS color difference between two colors,
// a perceptual delta E.
func (cam *CAM) Distance(other *CAM) float64 {
	j1, _, a1, b1 := cam.UCS()
	j2, _, a2, b2 := other.UCS()
	dj, da, db := j1-j2, a1-a2, b1-b2
	return 1.41 * math.Pow(math.Sqrt(dj*dj+da*da+db*db), 0.63)
}

// XYZ returns the CAM color as 100-based XYZ coordinates
// under standard viewing conditions.
func (cam *CAM) XYZ() (x, y, z float64) {
	return cam.XYZView(NewStdView())
}

// XYZView returns the CAM color as 100-based XYZ coordinates
// under the given viewing conditions.
func (cam *CAM) XYZView(vw *View) (x, y, z float64) {
	alpha := 0.0
	if cam.Chroma != 0 && cam.Lightness != 0 {
		alpha = cam.Chroma / math.Sqrt(cam.Lightness/100)
	}
	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, vw.BgYToWhiteY), 0.73), 1/0.9)
	hRad := cam.Hue * math.Pi / 180

	eHue := 0.25 * (math.Cos(hRad+2) + 3.8)
	ac := vw.AW * math.Pow(cam.Lightness/100, 1/vw.C/vw.Z)
	p1 := eHue * (50000 / 13.0) * vw.NC * vw.NCB
	p2 := ac / vw.NBB

	hSin := math.Sin(hRad)
	hCos := math.Cos(hRad)

	gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
	a := gamma * hCos
	b := gamma * hSin
	rA := (460*p2 + 451*a + 288*b) / 1403
	gA := (460*p2 - 891*a - 261*b) / 1403
	bA := (460*p2 - 220*a - 6300*b) / 1403

	rF := InverseChromaticAdapt(rA) * (100 / vw.FL) / vw.RGBD[0]
	gF := InverseChromaticAdapt(gA) * (100 / vw.FL) / vw.RGBD[1]
	bF := InverseChromaticAdapt(bA) * (100 / vw.FL) / vw.RGBD[2]
	return LMSToXYZ(rF, gF, bF)
}

// ARGB returns the CAM color as an opaque packed ARGB value under
// standard viewing conditions. Out of gamut results are clamped.
func (cam *CAM) ARGB() uint32 {
	return cie.ARGBFromXYZ(cam.XYZ())
}
