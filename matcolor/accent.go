// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import "cogentcore.org/material/colors"

// Accent is one of the four accent role groups of a [Scheme]:
// primary, secondary, tertiary or error.
type Accent struct {

	// Base is the accent color itself, as used for filled buttons.
	Base colors.ARGB

	// On is for text and icons drawn on [Accent.Base].
	On colors.ARGB

	// Container is a lower-emphasis fill, such as a tonal button.
	Container colors.ARGB

	// OnContainer is for text and icons drawn on [Accent.Container].
	OnContainer colors.ARGB
}

// Accent tones of each mode, in the order base, on, container,
// on container.
var (
	lightAccentTones = [4]int{40, 100, 90, 10}
	darkAccentTones  = [4]int{80, 20, 30, 90}
)

func newAccent(tones *Tones, at [4]int) Accent {
	return Accent{
		Base:        tones.AbsTone(at[0]),
		On:          tones.AbsTone(at[1]),
		Container:   tones.AbsTone(at[2]),
		OnContainer: tones.AbsTone(at[3]),
	}
}

// NewAccentLight returns the light scheme accent read from tones.
func NewAccentLight(tones *Tones) Accent { return newAccent(tones, lightAccentTones) }

// NewAccentDark returns the dark scheme accent read from tones.
func NewAccentDark(tones *Tones) Accent { return newAccent(tones, darkAccentTones) }
