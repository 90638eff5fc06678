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

package cam16

import (
	"math"
	"sync"

	"cogentcore.org/material/cam/cie"
)

// View represents viewing conditions under which a color is being perceived,
// which greatly affects the subjective perception. Defaults represent the
// standard defined such conditions, under which the CAM16 computations operate.
type View struct {

	// WhitePoint is the white point illumination, typically [cie.WhiteD65].
	WhitePoint [3]float64

	// Luminance is the ambient light strength in lux.
	Luminance float64 `default:"200"`

	// BgLuminance is the average L* of the 10 degrees around the color in question.
	BgLuminance float64 `default:"50"`

	// Surround is the brightness of the entire environment, in the 0-2 range.
	Surround float64 `default:"2"`

	// Adapted is whether the eyes have fully adapted to the lighting.
	Adapted bool `default:"false"`

	// AdaptingLuminance is computed from Luminance.
	AdaptingLuminance float64

	// BgYToWhiteY is the ratio of background Y to white point Y (n).
	BgYToWhiteY float64

	// AW is the achromatic response to the white point.
	AW float64

	// NBB is the brightness induction factor.
	NBB float64

	// NCB is the chromatic induction factor of the background.
	NCB float64

	// C is the exponential nonlinearity of the surround.
	C float64

	// NC is the chromatic induction factor of the surround.
	NC float64

	// FL is the luminance-level adaptation factor.
	FL float64

	// FLRoot is FL to the 1/4 power.
	FLRoot float64

	// Z is the base exponential nonlinearity.
	Z float64

	// RGBD are the cone responses to the white point, adjusted for discounting.
	RGBD [3]float64
}

// NewView returns a new view with all parameters initialized based on given major params
func NewView(whitePoint [3]float64, lum, bgLum, surround float64, adapt bool) *View {
	vw := &View{WhitePoint: whitePoint, Luminance: lum, BgLuminance: bgLum, Surround: surround, Adapted: adapt}
	vw.Update()
	return vw
}

var (
	stdView     *View
	stdViewOnce sync.Once
)

// NewStdView returns the standard viewing conditions: D65 white,
// 200 lux, a 50 L* background and an average surround.
// It is computed once and shared; callers must not modify it.
func NewStdView() *View {
	stdViewOnce.Do(func() {
		stdView = NewView(cie.WhiteD65, 200, 50, 2, false)
	})
	return stdView
}

// Update updates all the computed values based on main parameters
func (vw *View) Update() {
	vw.AdaptingLuminance = (vw.Luminance / math.Pi) * (cie.LToY(50) / 100)
	// A background of pure black is non-physical and leads to infinities that
	// represent the idea that any color viewed in pure black can't be seen.
	vw.BgLuminance = max(0.1, vw.BgLuminance)

	// Transform test illuminant white in XYZ to 'cone'/'rgb' responses
	rW, gW, bW := XYZToLMS(vw.WhitePoint[0], vw.WhitePoint[1], vw.WhitePoint[2])

	// Scale input surround, domain (0, 2), to CAM16 surround, domain (0.8, 1.0)
	vw.Surround = clamp(vw.Surround, 0, 2)
	f := 0.8 + (vw.Surround / 10)
	if f >= 0.9 {
		vw.C = lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		vw.C = lerp(0.525, 0.59, (f-0.8)*10)
	}
	d := 1.0
	if !vw.Adapted {
		d = f * (1 - ((1 / 3.6) * math.Exp((-vw.AdaptingLuminance-42)/92)))
	}
	// Per Li et al, if D is greater than 1 or less than 0, set it to 1 or 0.
	d = clamp(d, 0, 1)

	vw.NC = f

	// 100 rather than the white point luminance, per Fairchild.
	vw.RGBD[0] = d*(100/rW) + 1 - d
	vw.RGBD[1] = d*(100/gW) + 1 - d
	vw.RGBD[2] = d*(100/bW) + 1 - d

	k := 1 / (5*vw.AdaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4
	vw.FL = (k4 * vw.AdaptingLuminance) +
		(0.1 * k4F * k4F * math.Cbrt(5*vw.AdaptingLuminance))
	vw.FLRoot = math.Pow(vw.FL, 0.25)

	n := cie.LToY(vw.BgLuminance) / vw.WhitePoint[1]
	vw.BgYToWhiteY = n

	// note Schlomer 2018 has a typo and uses 1.58, the correct factor is 1.48
	vw.Z = 1.48 + math.Sqrt(n)

	vw.NBB = 0.725 / math.Pow(n, 0.2)
	vw.NCB = vw.NBB

	rA, gA, bA := LuminanceAdapt(rW, gW, bW, vw)
	vw.AW = ((40*rA + 20*gA + bA) / 20) * vw.NBB
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	return min(hi, max(lo, v))
}
