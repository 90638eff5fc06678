// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"math"
	"testing"

	"cogentcore.org/material/cam/cie"
	"github.com/stretchr/testify/assert"
)

func expect(t *testing.T, ref, val float64) {
	t.Helper()
	if math.Abs(ref-val) > 0.001 {
		t.Errorf("expected value: %g != %g\n", ref, val)
	}
}

func TestView(t *testing.T) {
	vw := NewStdView()
	expect(t, 11.725676537, vw.AdaptingLuminance)
	expect(t, 50.000000000, vw.BgLuminance)
	expect(t, 2.000000000, vw.Surround)
	expect(t, 0.184186503, vw.BgYToWhiteY)
	expect(t, 29.981000900, vw.AW)
	expect(t, 1.016919255, vw.NBB)
	expect(t, 1.016919255, vw.NCB)
	expect(t, 0.69, vw.C)
	expect(t, 1.000000000, vw.NC)
	expect(t, 0.388481468, vw.FL)
	expect(t, 0.789482653, vw.FLRoot)
	expect(t, 1.909169555, vw.Z)

	expect(t, 1.021177769, vw.RGBD[0])
	expect(t, 0.986307740, vw.RGBD[1])
	expect(t, 0.933960497, vw.RGBD[2])

	assert.Same(t, vw, NewStdView())

	nvw := *vw
	nvw.Surround = 0.5
	nvw.Update()
	expect(t, 0.55749995, nvw.C)
}

func TestCAM(t *testing.T) {
	camw := FromSRGB(1, 1, 1)
	expect(t, 209.492, camw.Hue)
	expect(t, 2.869, camw.Chroma)
	expect(t, 100, camw.Lightness)
	expect(t, 2.265, camw.Colorfulness)
	expect(t, 12.068, camw.Saturation)
	expect(t, 155.521, camw.Brightness)

	camr := FromSRGB(1, 0, 0)
	expect(t, 27.408, camr.Hue)
	expect(t, 113.358, camr.Chroma)
	expect(t, 46.445, camr.Lightness)
	expect(t, 89.494, camr.Colorfulness)
	expect(t, 91.889, camr.Saturation)
	expect(t, 105.988, camr.Brightness)

	camg := FromARGB(0xff00ff00)
	expect(t, 142.139, camg.Hue)
	expect(t, 108.410, camg.Chroma)
	expect(t, 79.331, camg.Lightness)

	camb := FromARGB(0xff0000ff)
	expect(t, 282.788, camb.Hue)
	expect(t, 87.231, camb.Chroma)
	expect(t, 25.465, camb.Lightness)

	assert.Equal(t, FromJCHView(60, 50, 40, NewStdView()), FromJCH(60, 50, 40))
}

func TestXYZ(t *testing.T) {
	tests := [][3]float64{{0.5, 0.1, 0.6}, {0.3, 0.5, 0.1}, {0.4, 0.2, 0.8}, {0.777, 0.424, 0.521}}
	for _, test := range tests {
		x, y, z := cie.SRGBToXYZ(test[0], test[1], test[2])
		x, y, z = 100*x, 100*y, 100*z
		cam := FromXYZ(x, y, z)
		xc, yc, zc := cam.XYZ()
		expect(t, x, xc)
		expect(t, y, yc)
		expect(t, z, zc)
	}
	for _, argb := range []uint32{0xff6750a4, 0xff123456, 0xfffedcba, 0xff808080} {
		assert.Equal(t, argb, FromARGB(argb).ARGB())
	}
}

func TestUCS(t *testing.T) {
	tests := [][3]float64{{1, 1, 0}, {0, 0, 1}, {0.4, 0.2, 0.8}}
	for _, test := range tests {
		cam := FromSRGB(test[0], test[1], test[2])
		j, _, a, b := cam.UCS()
		ccam := FromUCS(j, a, b)
		expect(t, cam.Chroma, ccam.Chroma)
		expect(t, cam.Lightness, ccam.Lightness)
		expect(t, cam.Colorfulness, ccam.Colorfulness)
		expect(t, cam.Saturation, ccam.Saturation)
		expect(t, cam.Brightness, ccam.Brightness)
	}
}

func TestDistance(t *testing.T) {
	a := FromARGB(0xff6750a4)
	b := FromARGB(0xff625b71)
	assert.Equal(t, 0.0, a.Distance(a))
	assert.InDelta(t, a.Distance(b), b.Distance(a), 1e-9)
	assert.Greater(t, a.Distance(FromARGB(0xffffffff)), a.Distance(b))
}

func TestLMS(t *testing.T) {
	x, y, z := LMSToXYZ(0.25, 0.68, 0.47)
	assert.InDelta(t, -0.1520184, x, 1e-6)
	assert.InDelta(t, 0.5152482, y, 1e-6)
	assert.InDelta(t, 0.4663193, z, 1e-6)

	assert.InDelta(t, 28.158047, InverseChromaticAdapt(52.1), 1e-4)
	assert.InDelta(t, 52.1, ChromaticAdapt(InverseChromaticAdapt(52.1)), 1e-9)
	assert.Equal(t, 0.0, ChromaticAdapt(0))
}

func TestSanitize(t *testing.T) {
	assert.InDelta(t, 80, SanitizeDegrees(800), 1e-9)
	assert.InDelta(t, 350, SanitizeDegrees(-10), 1e-9)
	assert.InDelta(t, math.Pi, SanitizeRadians(5*math.Pi), 1e-9)
}

func TestInCyclicOrder(t *testing.T) {
	assert.True(t, InCyclicOrder(0, 1, 2))
	assert.False(t, InCyclicOrder(0, 2, 1))
	assert.True(t, InCyclicOrder(6, 0.1, 0.5))
}
