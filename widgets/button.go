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

// Button is a pressable button with a label and an optional icon.
// A toggle button keeps its on state in [states.Selected].
type Button struct {
	Base

	// Type is the styling type of the button.
	Type ButtonTypes

	// Icon is the name of an optional leading icon.
	Icon string

	// Toggle makes the button checkable: each click flips Selected.
	Toggle bool

	// Group is the button group this button is a segment of, which
	// decides what a click does to Selected.
	Group *ButtonGroup

	// Index is the position in Group.Buttons.
	Index int
}

// ButtonTypes is an enum containing the different
// possible types of buttons.
type ButtonTypes int32

const (
	// ButtonFilled is a filled button with a primary container
	// color. It should be used for prominent actions.
	ButtonFilled ButtonTypes = iota

	// ButtonTonal is a filled button with a secondary container
	// color. It is between filled and outlined in emphasis.
	ButtonTonal

	// ButtonElevated is an elevated button with a low surface
	// container color and a shadow.
	ButtonElevated

	// ButtonOutlined is an outlined button that is used for
	// secondary actions that are still important.
	ButtonOutlined

	// ButtonText is a low-importance button with no border,
	// background color, or shadow when not being interacted with.
	ButtonText

	ButtonTypesN
)

var buttonTypesNames = [ButtonTypesN]string{"Filled", "Tonal", "Elevated", "Outlined", "Text"}

func (t ButtonTypes) String() string { return enumName(buttonTypesNames[:], int(t)) }

// NewButton adds a new button to the host.
func (h *Host) NewButton(typ ButtonTypes, label string) *Button {
	bt := &Button{Type: typ}
	bt.Label.Text = label
	bt.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable)
	return add(h, h.Buttons, bt)
}

// SetToggle makes the button checkable.
func (bt *Button) SetToggle(on bool) *Button {
	bt.Toggle = on
	bt.Abilities.SetFlag(on, states.Checkable)
	bt.MarkDirty()
	return bt
}

// unselectedToggle is a toggle button in its off state, which some
// types draw with neutral colors.
func (bt *Button) unselectedToggle() bool {
	return bt.Toggle && !bt.Is(states.Selected)
}

func (bt *Button) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	sel := bt.Is(states.Selected)
	switch bt.Type {
	case ButtonFilled:
		if bt.unselectedToggle() {
			return s.SurfaceContainer
		}
		return s.Primary.Base
	case ButtonTonal:
		if sel {
			return s.Secondary.Base
		}
		return s.Secondary.Container
	case ButtonElevated:
		if sel {
			return s.Primary.Base
		}
		return s.SurfaceContainerLow
	case ButtonOutlined:
		if sel {
			return s.InverseSurface
		}
	}
	return colors.Transparent
}

func (bt *Button) ContentColor(s *matcolor.Scheme) colors.ARGB {
	sel := bt.Is(states.Selected)
	switch bt.Type {
	case ButtonFilled:
		if bt.unselectedToggle() {
			return s.OnSurfaceVariant
		}
		return s.Primary.On
	case ButtonTonal:
		if sel {
			return s.Secondary.On
		}
		return s.Secondary.OnContainer
	case ButtonElevated:
		if sel {
			return s.Primary.On
		}
	case ButtonOutlined:
		if sel {
			return s.InverseOnSurface
		}
	}
	return s.Primary.Base
}

func (bt *Button) OutlineColor(s *matcolor.Scheme) colors.ARGB {
	if bt.Type == ButtonOutlined && !bt.Is(states.Selected) {
		return s.Outline
	}
	return colors.Transparent
}

// StateLayerColor is the content color, so the overlay always
// contrasts with the container.
func (bt *Button) StateLayerColor(s *matcolor.Scheme) colors.ARGB {
	return bt.ContentColor(s)
}

func (bt *Button) Elevation() tokens.ElevationLevel {
	hover := bt.Is(states.Hovered) && !bt.Is(states.Pressed)
	switch bt.Type {
	case ButtonElevated:
		if hover {
			return tokens.Level2
		}
		return tokens.Level1
	case ButtonFilled, ButtonTonal:
		if hover {
			return tokens.Level1
		}
	}
	return tokens.Level0
}

func (bt *Button) click() {
	if bt.Group != nil {
		bt.Group.toggle(bt)
	} else if bt.Toggle {
		bt.SetState(!bt.Is(states.Selected), states.Selected)
	}
	bt.sendBase(events.ButtonClick)
}

// enumName returns names[i], or "Unknown" when i is out of range.
func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "Unknown"
	}
	return names[i]
}
