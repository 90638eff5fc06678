// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"testing"

	"cogentcore.org/material/colors"
	"github.com/stretchr/testify/assert"
)

func TestToneContrastRatio(t *testing.T) {
	type data struct {
		a    float64
		b    float64
		want float64
	}
	tests := []data{
		{0, 100, 21},
		{100, 0, 21},
		{50, 50, 1},
		{-10, 120, 21},
	}
	for i, test := range tests {
		assert.InDelta(t, test.want, ToneContrastRatio(test.a, test.b), 1e-6, "%d", i)
	}
}

func TestContrastTone(t *testing.T) {
	l, ok := ContrastToneLighter(40, 4.5)
	assert.True(t, ok)
	assert.Greater(t, l, 40.0)
	assert.GreaterOrEqual(t, ToneContrastRatio(40, l), 4.5)

	d, ok := ContrastToneDarker(90, 4.5)
	assert.True(t, ok)
	assert.Less(t, d, 90.0)
	assert.GreaterOrEqual(t, ToneContrastRatio(90, d), 4.5)

	_, ok = ContrastToneLighter(90, 4.5)
	assert.False(t, ok)
	_, ok = ContrastToneDarker(10, 4.5)
	assert.False(t, ok)
	assert.Equal(t, 100.0, ContrastToneLighterUnsafe(90, 4.5))
	assert.Equal(t, 0.0, ContrastToneDarkerUnsafe(10, 4.5))

	ct, ok := ContrastTone(80, 3)
	assert.True(t, ok)
	assert.Less(t, ct, 80.0)
	ct, ok = ContrastTone(20, 3)
	assert.True(t, ok)
	assert.Greater(t, ct, 20.0)

	_, ok = ContrastTone(50, 21)
	assert.False(t, ok)
	assert.Equal(t, 100.0, ContrastToneUnsafe(10, 21))
	assert.Equal(t, 0.0, ContrastToneUnsafe(90, 21))
}

func TestContrastColor(t *testing.T) {
	c, ok := ContrastColor(colors.ARGB(0xFF6750A4), 3)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, ContrastRatio(colors.ARGB(0xFF6750A4), c), 2.9)
	_, ok = ContrastColor(colors.ARGB(0xFF6750A4), 7)
	assert.False(t, ok)
	assert.InDelta(t, 21, ContrastRatio(colors.White, colors.Black), 1e-6)
	assert.Equal(t, colors.Black, ContrastColorUnsafe(colors.ARGB(0xFF777777), 21))
}
