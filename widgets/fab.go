// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/material/colors"
	"cogentcore.org/material/events"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/states"
	"cogentcore.org/material/tokens"
)

// FAB is a floating action button. With a label it is an extended FAB.
type FAB struct {
	Base

	Color FABColors
	Size  FABSizes

	// Icon is the name of the icon.
	Icon string

	// Lowered reduces the resting elevation, for FABs placed on
	// surfaces that are already elevated.
	Lowered bool
}

// FABColors are the container color families of a [FAB].
type FABColors int32

const (
	FABPrimary FABColors = iota
	FABSurface
	FABSecondary
	FABTertiary

	FABColorsN
)

var fabColorsNames = [FABColorsN]string{"Primary", "Surface", "Secondary", "Tertiary"}

func (c FABColors) String() string { return enumName(fabColorsNames[:], int(c)) }

// FABSizes are the sizes of a [FAB].
type FABSizes int32

const (
	FABSmall FABSizes = iota
	FABRegular
	FABLarge
)

// Dp returns the container size of a non-extended FAB.
func (sz FABSizes) Dp() float32 {
	switch sz {
	case FABSmall:
		return tokens.FABSmall
	case FABLarge:
		return tokens.FABLarge
	}
	return tokens.FABRegular
}

// NewFAB adds a new regular FAB to the host.
func (h *Host) NewFAB(color FABColors, icon string) *FAB {
	fb := &FAB{Color: color, Size: FABRegular, Icon: icon}
	fb.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable)
	return add(h, h.FABs, fb)
}

// IsExtended returns whether the FAB has a label.
func (fb *FAB) IsExtended() bool { return fb.Text() != "" }

func (fb *FAB) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	switch fb.Color {
	case FABSurface:
		return s.SurfaceContainerHigh
	case FABSecondary:
		return s.Secondary.Container
	case FABTertiary:
		return s.Tertiary.Container
	}
	return s.Primary.Container
}

func (fb *FAB) ContentColor(s *matcolor.Scheme) colors.ARGB {
	switch fb.Color {
	case FABSurface:
		return s.Primary.Base
	case FABSecondary:
		return s.Secondary.OnContainer
	case FABTertiary:
		return s.Tertiary.OnContainer
	}
	return s.Primary.OnContainer
}

func (fb *FAB) StateLayerColor(s *matcolor.Scheme) colors.ARGB {
	return fb.ContentColor(s)
}

// Elevation is level 3 at rest and 4 on hover, or 1 and 2 lowered.
func (fb *FAB) Elevation() tokens.ElevationLevel {
	base := tokens.Level3
	if fb.Lowered {
		base = tokens.Level1
	}
	if fb.Is(states.Hovered) && !fb.Is(states.Pressed) {
		return base + 1
	}
	return base
}

func (fb *FAB) click() { fb.sendBase(events.ButtonClick) }
