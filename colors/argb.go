// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the packed ARGB color type used throughout the
// theming engine, along with hex and named color parsing, the state layer
// blender, and conversions to other color libraries.
package colors

import (
	"fmt"
	"image/color"

	"cogentcore.org/material/cam/cie"
)

// ARGB is a 32-bit packed color in 0xAARRGGBB order. Components are not
// premultiplied by alpha. All palette and scheme output is fully opaque.
type ARGB uint32

const (
	// Transparent is fully transparent black.
	Transparent ARGB = 0

	// Black is opaque black.
	Black ARGB = 0xff000000

	// White is opaque white.
	White ARGB = 0xffffffff
)

// FromRGB returns the opaque color with the given channels.
func FromRGB(r, g, b uint8) ARGB {
	return ARGB(cie.ARGBFromRGB(r, g, b))
}

// FromRGBA returns the color with the given non-premultiplied channels.
func FromRGBA(r, g, b, a uint8) ARGB {
	return ARGB(cie.ARGBFromRGBA(r, g, b, a))
}

// FromColor converts any [color.Color] into an ARGB value.
func FromColor(c color.Color) ARGB {
	if a, ok := c.(ARGB); ok {
		return a
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGBA(n.R, n.G, n.B, n.A)
}

// R returns the red channel.
func (c ARGB) R() uint8 { return cie.Red(uint32(c)) }

// G returns the green channel.
func (c ARGB) G() uint8 { return cie.Green(uint32(c)) }

// B returns the blue channel.
func (c ARGB) B() uint8 { return cie.Blue(uint32(c)) }

// A returns the alpha channel.
func (c ARGB) A() uint8 { return cie.Alpha(uint32(c)) }

// Alpha returns the alpha channel in the 0-1 range.
func (c ARGB) Alpha() float64 { return float64(c.A()) / 255 }

// IsTransparent returns whether the color has zero alpha.
func (c ARGB) IsTransparent() bool { return c.A() == 0 }

// WithAlpha returns the color with its alpha replaced by the given
// opacity in the 0-1 range.
func (c ARGB) WithAlpha(alpha float64) ARGB {
	return c&0x00ffffff | ARGB(cie.To8Bit(alpha))<<24
}

// Opaque returns the color with full alpha.
func (c ARGB) Opaque() ARGB { return c | 0xff000000 }

// Lstar returns the L* lightness of the color, ignoring alpha.
func (c ARGB) Lstar() float64 { return cie.LstarFromARGB(uint32(c)) }

// NRGBA returns the color as a [color.NRGBA].
func (c ARGB) NRGBA() color.NRGBA {
	return color.NRGBA{c.R(), c.G(), c.B(), c.A()}
}

// AsRGBA returns the color as a premultiplied [color.RGBA].
func (c ARGB) AsRGBA() color.RGBA {
	return color.RGBAModel.Convert(c.NRGBA()).(color.RGBA)
}

// RGBA implements the [color.Color] interface.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Hex returns the color as "#RRGGBB", or "#RRGGBBAA" when it is not opaque.
func (c ARGB) Hex() string {
	if c.A() == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R(), c.G(), c.B(), c.A())
}

// String returns the packed value as "0xAARRGGBB".
func (c ARGB) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}
