// Copyright (c) 2024, Cogent Core. All rights reserved.
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

// Chip is a compact element for an input, attribute or action.
// Filter chips toggle [states.Selected] when clicked.
type Chip struct {
	Base

	Type ChipTypes

	// Elevated draws the chip on a low surface container with a
	// shadow instead of an outline.
	Elevated bool

	// Icon is the name of an optional leading icon.
	Icon string
}

// ChipTypes are the kinds of chips.
type ChipTypes int32

const (
	ChipAssist ChipTypes = iota
	ChipFilter
	ChipInput
	ChipSuggestion

	ChipTypesN
)

var chipTypesNames = [ChipTypesN]string{"Assist", "Filter", "Input", "Suggestion"}

func (t ChipTypes) String() string { return enumName(chipTypesNames[:], int(t)) }

// NewChip adds a new chip to the host.
func (h *Host) NewChip(typ ChipTypes, label string) *Chip {
	ch := &Chip{Type: typ}
	ch.Label.Text = label
	ch.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable)
	if typ == ChipFilter {
		ch.Abilities.SetFlag(true, states.Checkable)
	}
	return add(h, h.Chips, ch)
}

func (ch *Chip) selectedFilter() bool {
	return ch.Type == ChipFilter && ch.Is(states.Selected)
}

func (ch *Chip) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	switch {
	case ch.selectedFilter():
		return s.Secondary.Container
	case ch.Elevated:
		return s.SurfaceContainerLow
	}
	return colors.Transparent
}

func (ch *Chip) OutlineColor(s *matcolor.Scheme) colors.ARGB {
	if ch.selectedFilter() || ch.Elevated {
		return colors.Transparent
	}
	return s.Outline
}

func (ch *Chip) ContentColor(s *matcolor.Scheme) colors.ARGB {
	if ch.selectedFilter() {
		return s.Secondary.OnContainer
	}
	return s.OnSurfaceVariant
}

func (ch *Chip) IconColor(s *matcolor.Scheme) colors.ARGB {
	if ch.selectedFilter() {
		return s.Secondary.OnContainer
	}
	return s.Primary.Base
}

func (ch *Chip) StateLayerColor(s *matcolor.Scheme) colors.ARGB {
	return ch.ContentColor(s)
}

func (ch *Chip) Elevation() tokens.ElevationLevel {
	if !ch.Elevated {
		return tokens.Level0
	}
	if ch.Is(states.Hovered) && !ch.Is(states.Pressed) {
		return tokens.Level2
	}
	return tokens.Level1
}

func (ch *Chip) click() {
	if ch.Type == ChipFilter {
		ch.SetState(!ch.Is(states.Selected), states.Selected)
	}
	ch.sendBase(events.ButtonClick)
}
