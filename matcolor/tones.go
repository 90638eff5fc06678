// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matcolor provides Material Design 3 tonal palettes and color
// schemes synthesized from a single seed color.
package matcolor

import (
	"math"
	"sync"

	"cogentcore.org/material/colors"
	"cogentcore.org/material/hct"
)

// StandardTones are the tones listed for a tonal palette by tools
// such as the palette viewer. Every tone used by [Scheme] is included.
var StandardTones = []int{0, 4, 6, 10, 12, 17, 20, 22, 24, 30, 40, 50, 60, 70, 80, 87, 90, 92, 94, 95, 96, 98, 99, 100}

// Tones is a tonal palette: all colors with a given hue and chroma,
// indexed by tone. Integer tones are cached.
type Tones struct {

	// Hue is the HCT hue of every color in the palette.
	Hue float64

	// Chroma is the requested HCT chroma. Colors whose tone cannot hold
	// this chroma have less.
	Chroma float64

	mu    sync.Mutex
	cache map[int]colors.ARGB
}

// NewTones returns a new tonal palette for the given hue and chroma.
func NewTones(hue, chroma float64) *Tones {
	return &Tones{Hue: hue, Chroma: chroma, cache: map[int]colors.ARGB{}}
}

// TonesFromARGB returns the tonal palette with the hue and chroma of
// the given key color.
func TonesFromARGB(key colors.ARGB) *Tones {
	h := hct.FromARGB(key)
	return NewTones(h.Hue, h.Chroma)
}

// Tone returns the color at the given tone (0-100). Fractional tones
// are computed directly without caching.
func (t *Tones) Tone(tone float64) colors.ARGB {
	if tone == math.Trunc(tone) {
		return t.AbsTone(int(tone))
	}
	return hct.Solve(t.Hue, t.Chroma, tone)
}

// AbsTone returns the color at the given integer tone, from the cache
// when it has been computed before.
func (t *Tones) AbsTone(tone int) colors.ARGB {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok := t.cache[tone]; ok {
		return c
	}
	if t.cache == nil {
		t.cache = map[int]colors.ARGB{}
	}
	c := hct.Solve(t.Hue, t.Chroma, float64(tone))
	t.cache[tone] = c
	return c
}

// Swatches returns the colors at the given tones, in order.
func (t *Tones) Swatches(tones []int) []colors.ARGB {
	sw := make([]colors.ARGB, len(tones))
	for i, tone := range tones {
		sw[i] = t.AbsTone(tone)
	}
	return sw
}
