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
	"math"

	"cogentcore.org/material/cam/cam16"
	"cogentcore.org/material/cam/cie"
	"cogentcore.org/material/colors"
)

// Solve returns the sRGB color with the given hue, chroma and tone.
// If the requested chroma is not reachable at that hue and tone, the
// chroma is reduced until the color fits in the sRGB gamut; hue and
// tone are preserved. It is deterministic, pure and always returns
// an opaque color.
func Solve(hue, chroma, tone float64) colors.ARGB {
	if chroma < 0.0001 || tone < 0.0001 || tone > 99.9999 {
		return colors.ARGB(cie.ARGBFromLstar(tone))
	}
	hue = cam16.SanitizeDegrees(hue)
	hueRadians := hue / 180 * math.Pi
	y := cie.LToY(tone)
	if exact, ok := findResultByJ(hueRadians, chroma, y); ok {
		return exact
	}
	lin := bisectToLimit(y, hueRadians)
	return colors.ARGB(cie.ARGBFromLinRGB(lin[0], lin[1], lin[2]))
}

// findResultByJ searches for a color with the given hue, chroma and
// luminance using Newton's method on the CAM16 lightness J. It fails
// when the search leaves the sRGB gamut.
func findResultByJ(hueRadians, chroma, y float64) (colors.ARGB, bool) {
	// Initial estimate of J.
	j := math.Sqrt(y) * 11
	vw := cam16.NewStdView()
	tInnerCoeff := 1 / math.Pow(1.64-math.Pow(0.29, vw.BgYToWhiteY), 0.73)
	eHue := 0.25 * (math.Cos(hueRadians+2) + 3.8)
	p1 := eHue * (50000 / 13.0) * vw.NC * vw.NCB
	hSin := math.Sin(hueRadians)
	hCos := math.Cos(hueRadians)
	for round := 0; round < 5; round++ {
		jNorm := j / 100
		alpha := 0.0
		if chroma != 0 && j != 0 {
			alpha = chroma / math.Sqrt(jNorm)
		}
		t := math.Pow(alpha*tInnerCoeff, 1/0.9)
		ac := vw.AW * math.Pow(jNorm, 1/vw.C/vw.Z)
		p2 := ac / vw.NBB
		gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
		a := gamma * hCos
		b := gamma * hSin
		rA := (460*p2 + 451*a + 288*b) / 1403
		gA := (460*p2 - 891*a - 261*b) / 1403
		bA := (460*p2 - 220*a - 6300*b) / 1403
		scaled := [3]float64{
			cam16.InverseChromaticAdapt(rA),
			cam16.InverseChromaticAdapt(gA),
			cam16.InverseChromaticAdapt(bA),
		}
		lin := cie.MatMul(scaled, linrgbFromScaledDiscount)
		if lin[0] < 0 || lin[1] < 0 || lin[2] < 0 {
			return 0, false
		}
		fnj := yFromLinrgb[0]*lin[0] + yFromLinrgb[1]*lin[1] + yFromLinrgb[2]*lin[2]
		if fnj <= 0 {
			return 0, false
		}
		if round == 4 || math.Abs(fnj-y) < 0.002 {
			if lin[0] > 100.01 || lin[1] > 100.01 || lin[2] > 100.01 {
				return 0, false
			}
			return colors.ARGB(cie.ARGBFromLinRGB(lin[0], lin[1], lin[2])), true
		}
		// Iterates with Newton method, using 2 * fn(j) / j as the
		// approximation of fn'(j).
		j -= (fnj - y) * j / (2 * fnj)
	}
	return 0, false
}

// hueOf returns the CAM16 hue in radians of a linear RGB color.
func hueOf(lin [3]float64) float64 {
	sd := cie.MatMul(lin, scaledDiscountFromLinrgb)
	rA := cam16.ChromaticAdapt(sd[0])
	gA := cam16.ChromaticAdapt(sd[1])
	bA := cam16.ChromaticAdapt(sd[2])
	// redness-greenness
	a := (11*rA - 12*gA + bA) / 11
	// yellowness-blueness
	b := (rA + gA - 2*bA) / 9
	return math.Atan2(b, a)
}

// intercept solves the lerp equation: it returns t such that
// lerp(source, target, t) = mid.
func intercept(source, mid, target float64) float64 {
	return (mid - source) / (target - source)
}

// setCoordinate intersects the segment from source to target with the
// plane where the given axis (0: R, 1: G, 2: B) equals coord.
func setCoordinate(source [3]float64, coord float64, target [3]float64, axis int) [3]float64 {
	t := intercept(source[axis], coord, target[axis])
	return [3]float64{
		source[0] + (target[0]-source[0])*t,
		source[1] + (target[1]-source[1])*t,
		source[2] + (target[2]-source[2])*t,
	}
}

func isBounded(x float64) bool {
	return 0 <= x && x <= 100
}

var noVertex = [3]float64{-1, -1, -1}

// nthVertex returns the nth (0-11) possible vertex of the polygon where
// the plane of constant luminance y cuts the RGB cube, in linear RGB.
// If that vertex lies outside the cube, all components are -1.
func nthVertex(y float64, n int) [3]float64 {
	kR, kG, kB := yFromLinrgb[0], yFromLinrgb[1], yFromLinrgb[2]
	coordA := 0.0
	if n%4 > 1 {
		coordA = 100
	}
	coordB := 0.0
	if n%2 != 0 {
		coordB = 100
	}
	switch {
	case n < 4:
		g, b := coordA, coordB
		r := (y - g*kG - b*kB) / kR
		if isBounded(r) {
			return [3]float64{r, g, b}
		}
	case n < 8:
		b, r := coordA, coordB
		g := (y - r*kR - b*kB) / kG
		if isBounded(g) {
			return [3]float64{r, g, b}
		}
	default:
		r, g := coordA, coordB
		b := (y - r*kR - g*kG) / kB
		if isBounded(b) {
			return [3]float64{r, g, b}
		}
	}
	return noVertex
}

// bisectToSegment finds the edge of the constant luminance polygon whose
// end points bracket the target hue, using cyclic order of the vertex hues.
func bisectToSegment(y, targetHue float64) (left, right [3]float64) {
	left, right = noVertex, noVertex
	leftHue, rightHue := 0.0, 0.0
	initialized := false
	uncut := true
	for n := 0; n < 12; n++ {
		mid := nthVertex(y, n)
		if mid[0] < 0 {
			continue
		}
		midHue := hueOf(mid)
		if !initialized {
			left, right = mid, mid
			leftHue, rightHue = midHue, midHue
			initialized = true
			continue
		}
		if uncut || cam16.InCyclicOrder(leftHue, midHue, rightHue) {
			uncut = false
			if cam16.InCyclicOrder(leftHue, targetHue, midHue) {
				right = mid
				rightHue = midHue
			} else {
				left = mid
				leftHue = midHue
			}
		}
	}
	return
}

func midpoint(a, b [3]float64) [3]float64 {
	return [3]float64{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2, (a[2] + b[2]) / 2}
}

func criticalPlaneBelow(x float64) int { return int(math.Floor(x - 0.5)) }

func criticalPlaneAbove(x float64) int { return int(math.Ceil(x - 0.5)) }

// trueDelinearized delinearizes a 0-100 linear component into the
// unrounded 0-255 sRGB range.
func trueDelinearized(comp float64) float64 {
	return cie.SRGBFromLinearComp(comp/100) * 255
}

// bisectToLimit finds the color on the gamut boundary with luminance y
// and the target hue, bisecting along each axis over the critical planes.
func bisectToLimit(y, targetHue float64) [3]float64 {
	left, right := bisectToSegment(y, targetHue)
	leftHue := hueOf(left)
	for axis := 0; axis < 3; axis++ {
		if left[axis] == right[axis] {
			continue
		}
		var lPlane, rPlane int
		if left[axis] < right[axis] {
			lPlane = criticalPlaneBelow(trueDelinearized(left[axis]))
			rPlane = criticalPlaneAbove(trueDelinearized(right[axis]))
		} else {
			lPlane = criticalPlaneAbove(trueDelinearized(left[axis]))
			rPlane = criticalPlaneBelow(trueDelinearized(right[axis]))
		}
		for i := 0; i < 8; i++ {
			if abs(rPlane-lPlane) <= 1 {
				break
			}
			mPlane := min(254, max(0, (lPlane+rPlane)/2))
			mid := setCoordinate(left, criticalPlanes[mPlane], right, axis)
			midHue := hueOf(mid)
			if cam16.InCyclicOrder(leftHue, targetHue, midHue) {
				right = mid
				rPlane = mPlane
			} else {
				left = mid
				leftHue = midHue
				lPlane = mPlane
			}
		}
	}
	return midpoint(left, right)
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
