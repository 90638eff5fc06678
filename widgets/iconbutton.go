// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/material/colors"
	"cogentcore.org/material/events"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/states"
)

// IconButton is a button showing only an icon.
type IconButton struct {
	Base

	Type IconButtonTypes

	// Icon is the name of the icon.
	Icon string

	// Toggle makes the button checkable: each click flips Selected.
	Toggle bool
}

// IconButtonTypes are the styling types of icon buttons.
type IconButtonTypes int32

const (
	IconButtonStandard IconButtonTypes = iota
	IconButtonFilled
	IconButtonTonal
	IconButtonOutlined

	IconButtonTypesN
)

var iconButtonTypesNames = [IconButtonTypesN]string{"Standard", "Filled", "Tonal", "Outlined"}

func (t IconButtonTypes) String() string { return enumName(iconButtonTypesNames[:], int(t)) }

// NewIconButton adds a new icon button to the host.
func (h *Host) NewIconButton(typ IconButtonTypes, icon string) *IconButton {
	ib := &IconButton{Type: typ, Icon: icon}
	ib.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable)
	return add(h, h.IconButtons, ib)
}

// SetToggle makes the button checkable.
func (ib *IconButton) SetToggle(on bool) *IconButton {
	ib.Toggle = on
	ib.Abilities.SetFlag(on, states.Checkable)
	ib.MarkDirty()
	return ib
}

func (ib *IconButton) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	sel := ib.Is(states.Selected)
	switch ib.Type {
	case IconButtonFilled:
		if ib.Toggle && !sel {
			return s.SurfaceContainerHighest
		}
		return s.Primary.Base
	case IconButtonTonal:
		if ib.Toggle && !sel {
			return s.SurfaceContainerHighest
		}
		return s.Secondary.Container
	case IconButtonOutlined:
		if sel {
			return s.InverseSurface
		}
	}
	return colors.Transparent
}

func (ib *IconButton) ContentColor(s *matcolor.Scheme) colors.ARGB {
	sel := ib.Is(states.Selected)
	switch ib.Type {
	case IconButtonFilled:
		if ib.Toggle && !sel {
			return s.Primary.Base
		}
		return s.Primary.On
	case IconButtonTonal:
		if ib.Toggle && !sel {
			return s.OnSurfaceVariant
		}
		return s.Secondary.OnContainer
	case IconButtonOutlined:
		if sel {
			return s.InverseOnSurface
		}
	case IconButtonStandard:
		if sel {
			return s.Primary.Base
		}
	}
	return s.OnSurfaceVariant
}

func (ib *IconButton) OutlineColor(s *matcolor.Scheme) colors.ARGB {
	if ib.Type == IconButtonOutlined && !ib.Is(states.Selected) {
		return s.Outline
	}
	return colors.Transparent
}

func (ib *IconButton) StateLayerColor(s *matcolor.Scheme) colors.ARGB {
	return ib.ContentColor(s)
}

func (ib *IconButton) click() {
	if ib.Toggle {
		ib.SetState(!ib.Is(states.Selected), states.Selected)
	}
	ib.sendBase(events.ButtonClick)
}
