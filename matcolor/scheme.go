// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import "cogentcore.org/material/colors"

// Scheme contains the colors for one Material Design 3 color scheme
// (ie: light or dark), resolved from a [Palette].
type Scheme struct {

	// Mode is whether this is a light or dark scheme.
	Mode Mode

	// Primary is the key accent, used by filled buttons, FABs and
	// active indicators.
	Primary Accent

	// Secondary is a quieter accent, used by tonal buttons and
	// selected chips.
	Secondary Accent

	// Tertiary balances the primary and secondary accents.
	Tertiary Accent

	Error Accent

	// Surface is the background of the window.
	Surface colors.ARGB

	OnSurface colors.ARGB

	// OnSurfaceVariant is for secondary text and icons on Surface.
	OnSurfaceVariant colors.ARGB

	// The five surface containers step in tone away from Surface, from
	// the lowest to the highest emphasis.
	SurfaceContainerLowest  colors.ARGB
	SurfaceContainerLow     colors.ARGB
	SurfaceContainer        colors.ARGB
	SurfaceContainerHigh    colors.ARGB
	SurfaceContainerHighest colors.ARGB

	// Outline is for borders that must meet contrast, such as text
	// field outlines.
	Outline colors.ARGB

	// OutlineVariant is for decorative lines such as dividers.
	OutlineVariant colors.ARGB

	// InverseSurface and InverseOnSurface are the reversed pair used by
	// snackbars and plain tooltips.
	InverseSurface   colors.ARGB
	InverseOnSurface colors.ARGB

	// InversePrimary is the action color on InverseSurface.
	// It is not one of the [Role] values.
	InversePrimary colors.ARGB

	// Scrim darkens content behind modal surfaces.
	Scrim colors.ARGB

	Shadow colors.ARGB
}

// NewScheme returns the scheme for the given seed color and mode.
func NewScheme(seed colors.ARGB, mode Mode) Scheme {
	p := NewPalette(seed)
	if mode == Dark {
		return NewDarkScheme(p)
	}
	return NewLightScheme(p)
}

// NewLightScheme returns a new light-themed [Scheme]
// based on the given [Palette].
func NewLightScheme(p *Palette) Scheme {
	return Scheme{
		Mode:      Light,
		Primary:   NewAccentLight(p.Primary),
		Secondary: NewAccentLight(p.Secondary),
		Tertiary:  NewAccentLight(p.Tertiary),
		Error:     NewAccentLight(p.Error),

		Surface:          p.Neutral.AbsTone(98),
		OnSurface:        p.Neutral.AbsTone(10),
		OnSurfaceVariant: p.NeutralVariant.AbsTone(30),

		SurfaceContainerLowest:  p.Neutral.AbsTone(100),
		SurfaceContainerLow:     p.Neutral.AbsTone(96),
		SurfaceContainer:        p.Neutral.AbsTone(94),
		SurfaceContainerHigh:    p.Neutral.AbsTone(92),
		SurfaceContainerHighest: p.Neutral.AbsTone(90),

		Outline:        p.NeutralVariant.AbsTone(50),
		OutlineVariant: p.NeutralVariant.AbsTone(80),

		InverseSurface:   p.Neutral.AbsTone(20),
		InverseOnSurface: p.Neutral.AbsTone(95),
		InversePrimary:   p.Primary.AbsTone(80),

		Scrim:  p.Neutral.AbsTone(0),
		Shadow: p.Neutral.AbsTone(0),
	}
}

// NewDarkScheme returns a new dark-themed [Scheme]
// based on the given [Palette].
func NewDarkScheme(p *Palette) Scheme {
	return Scheme{
		Mode:      Dark,
		Primary:   NewAccentDark(p.Primary),
		Secondary: NewAccentDark(p.Secondary),
		Tertiary:  NewAccentDark(p.Tertiary),
		Error:     NewAccentDark(p.Error),

		Surface:          p.Neutral.AbsTone(6),
		OnSurface:        p.Neutral.AbsTone(90),
		OnSurfaceVariant: p.NeutralVariant.AbsTone(80),

		SurfaceContainerLowest:  p.Neutral.AbsTone(4),
		SurfaceContainerLow:     p.Neutral.AbsTone(10),
		SurfaceContainer:        p.Neutral.AbsTone(12),
		SurfaceContainerHigh:    p.Neutral.AbsTone(17),
		SurfaceContainerHighest: p.Neutral.AbsTone(22),

		Outline:        p.NeutralVariant.AbsTone(60),
		OutlineVariant: p.NeutralVariant.AbsTone(30),

		InverseSurface:   p.Neutral.AbsTone(90),
		InverseOnSurface: p.Neutral.AbsTone(20),
		InversePrimary:   p.Primary.AbsTone(40),

		Scrim:  p.Neutral.AbsTone(0),
		Shadow: p.Neutral.AbsTone(0),
	}
}

// Get returns the color of the given role.
func (s *Scheme) Get(r Role) colors.ARGB {
	switch r {
	case Primary:
		return s.Primary.Base
	case OnPrimary:
		return s.Primary.On
	case PrimaryContainer:
		return s.Primary.Container
	case OnPrimaryContainer:
		return s.Primary.OnContainer
	case Secondary:
		return s.Secondary.Base
	case OnSecondary:
		return s.Secondary.On
	case SecondaryContainer:
		return s.Secondary.Container
	case OnSecondaryContainer:
		return s.Secondary.OnContainer
	case Tertiary:
		return s.Tertiary.Base
	case OnTertiary:
		return s.Tertiary.On
	case TertiaryContainer:
		return s.Tertiary.Container
	case OnTertiaryContainer:
		return s.Tertiary.OnContainer
	case Error:
		return s.Error.Base
	case OnError:
		return s.Error.On
	case ErrorContainer:
		return s.Error.Container
	case OnErrorContainer:
		return s.Error.OnContainer
	case Surface:
		return s.Surface
	case OnSurface:
		return s.OnSurface
	case OnSurfaceVariant:
		return s.OnSurfaceVariant
	case SurfaceContainerLowest:
		return s.SurfaceContainerLowest
	case SurfaceContainerLow:
		return s.SurfaceContainerLow
	case SurfaceContainer:
		return s.SurfaceContainer
	case SurfaceContainerHigh:
		return s.SurfaceContainerHigh
	case SurfaceContainerHighest:
		return s.SurfaceContainerHighest
	case Outline:
		return s.Outline
	case OutlineVariant:
		return s.OutlineVariant
	case InverseSurface:
		return s.InverseSurface
	case InverseOnSurface:
		return s.InverseOnSurface
	case Scrim:
		return s.Scrim
	case Shadow:
		return s.Shadow
	}
	return colors.Transparent
}

// Roles returns the colors of all roles, indexed by [Role].
func (s *Scheme) Roles() [RolesN]colors.ARGB {
	var rs [RolesN]colors.ARGB
	for i := range rs {
		rs[i] = s.Get(Role(i))
	}
	return rs
}
