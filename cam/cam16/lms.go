// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import "math"

// XYZToLMS converts XYZ into the CAM16 (M16) cone response space.
func XYZToLMS(x, y, z float64) (l, m, s float64) {
	l = 0.401288*x + 0.650173*y - 0.051461*z
	m = -0.250268*x + 1.204414*y + 0.045854*z
	s = -0.002079*x + 0.048952*y + 0.953127*z
	return
}

// LMSToXYZ is the inverse of [XYZToLMS].
func LMSToXYZ(l, m, s float64) (x, y, z float64) {
	x = 1.86206786*l - 1.01125463*m + 0.14918677*s
	y = 0.38752654*l + 0.62144744*m - 0.00897398*s
	z = -0.01584150*l - 0.03412294*m + 1.04996444*s
	return
}

// ChromaticAdapt is the post-adaptation compression applied to a
// discounted, luminance-scaled cone response.
func ChromaticAdapt(c float64) float64 {
	af := math.Pow(math.Abs(c), 0.42)
	return signum(c) * 400 * af / (af + 27.13)
}

// InverseChromaticAdapt is the inverse of [ChromaticAdapt], without
// the luminance scaling.
func InverseChromaticAdapt(adapted float64) float64 {
	abs := math.Abs(adapted)
	base := max(0, 27.13*abs/(400-abs))
	return signum(adapted) * math.Pow(base, 1/0.42)
}

// LuminanceAdaptComp applies discounting and luminance adaptation
// to a single cone response.
func LuminanceAdaptComp(v, dvec, fl float64) float64 {
	return ChromaticAdapt(fl * dvec * v / 100)
}

// LuminanceAdapt applies [LuminanceAdaptComp] to all three cone
// responses using the given view.
func LuminanceAdapt(l, m, s float64, vw *View) (lA, mA, sA float64) {
	lA = LuminanceAdaptComp(l, vw.RGBD[0], vw.FL)
	mA = LuminanceAdaptComp(m, vw.RGBD[1], vw.FL)
	sA = LuminanceAdaptComp(s, vw.RGBD[2], vw.FL)
	return
}

// LMSToOps converts cone responses into the opponent dimensions:
// redness-greenness, yellowness-blueness, the achromatic (grey)
// response, and the normalizing grey response.
func LMSToOps(l, m, s float64, vw *View) (redVgreen, yellowVblue, grey, greyNorm float64) {
	lA, mA, sA := LuminanceAdapt(l, m, s, vw)
	redVgreen = (11*lA - 12*mA + sA) / 11
	yellowVblue = (lA + mA - 2*sA) / 9
	grey = (40*lA + 20*mA + sA) / 20
	greyNorm = (20*lA + 20*mA + 21*sA) / 20
	return
}

// signum returns 0 for 0, unlike math.Copysign.
func signum(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
