// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"image/color"

	"cogentcore.org/material/colors"
)

// adjust applies fn to the HCT of c, keeping the alpha of c.
func adjust(c color.Color, fn func(h HCT) HCT) colors.ARGB {
	a := colors.FromColor(c)
	return fn(FromARGB(a)).ARGB().WithAlpha(a.Alpha())
}

// Lighten raises the tone of c by amount. The result is clamped to
// tone 100.
func Lighten(c color.Color, amount float64) colors.ARGB {
	return adjust(c, func(h HCT) HCT { return h.WithTone(h.Tone + amount) })
}

// Darken lowers the tone of c by amount, down to tone 0.
func Darken(c color.Color, amount float64) colors.ARGB {
	return adjust(c, func(h HCT) HCT { return h.WithTone(h.Tone - amount) })
}

// Highlight moves the tone of c by amount toward the middle of the
// tone range, so that the result stands out against c.
func Highlight(c color.Color, amount float64) colors.ARGB {
	return adjust(c, func(h HCT) HCT {
		if h.Tone >= 50 {
			return h.WithTone(h.Tone - amount)
		}
		return h.WithTone(h.Tone + amount)
	})
}

// Samelight moves the tone of c by amount away from the middle: the
// opposite of [Highlight].
func Samelight(c color.Color, amount float64) colors.ARGB {
	return adjust(c, func(h HCT) HCT {
		if h.Tone >= 50 {
			return h.WithTone(h.Tone + amount)
		}
		return h.WithTone(h.Tone - amount)
	})
}

// Saturate adds amount to the chroma of c. Chroma beyond what the
// hue and tone can reach in sRGB is cut back by the solver.
func Saturate(c color.Color, amount float64) colors.ARGB {
	return adjust(c, func(h HCT) HCT { return h.WithChroma(h.Chroma + amount) })
}

// Desaturate removes amount from the chroma of c, down to grey.
func Desaturate(c color.Color, amount float64) colors.ARGB {
	return adjust(c, func(h HCT) HCT { return h.WithChroma(max(0, h.Chroma-amount)) })
}

// Spin rotates the hue of c by amount degrees.
func Spin(c color.Color, amount float64) colors.ARGB {
	return adjust(c, func(h HCT) HCT { return h.WithHue(h.Hue + amount) })
}

// MinHueDistance returns the signed shortest rotation from hue a to
// hue b, in degrees.
func MinHueDistance(a, b float64) float64 {
	d1 := b - a
	d2 := (b + 360) - a
	d3 := b - (a + 360)
	d1a, d2a, d3a := abs64(d1), abs64(d2), abs64(d3)
	if d1a < d2a && d1a < d3a {
		return d1
	}
	if d2a < d1a && d2a < d3a {
		return d2
	}
	return d3
}

// Blend mixes pct percent of x with the rest of y in HCT, turning the
// hue the short way round. A hue is weighted by its chroma, so a grey
// barely moves the hue of the other color.
func Blend(pct float64, x, y color.Color) colors.ARGB {
	ax, ay := colors.FromColor(x), colors.FromColor(y)
	hx, hy := FromARGB(ax), FromARGB(ay)
	pct = min(100, max(0, pct))
	px := pct / 100
	py := 1 - px

	hue := hx.Hue
	if tot := px*hx.Chroma + py*hy.Chroma; tot > 0 {
		hue += py * hy.Chroma / tot * MinHueDistance(hx.Hue, hy.Hue)
	}
	chroma := px*hx.Chroma + py*hy.Chroma
	tone := px*hx.Tone + py*hy.Tone
	alpha := px*ax.Alpha() + py*ay.Alpha()
	return New(hue, chroma, tone).ARGB().WithAlpha(alpha)
}

// IsLight reports whether c has a tone of 50 or more.
func IsLight(c color.Color) bool {
	return colors.FromColor(c).Lstar() >= 50
}

// IsDark reports whether c has a tone below 50.
func IsDark(c color.Color) bool {
	return !IsLight(c)
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
