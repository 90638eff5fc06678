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

// Card is a container for content about a single subject.
// Only clickable cards show a state layer and send clicks.
type Card struct {
	Base

	Type CardTypes

	Clickable bool
}

// CardTypes are the styles of cards.
type CardTypes int32

const (
	CardElevated CardTypes = iota
	CardFilled
	CardOutlined

	CardTypesN
)

var cardTypesNames = [CardTypesN]string{"Elevated", "Filled", "Outlined"}

func (t CardTypes) String() string { return enumName(cardTypesNames[:], int(t)) }

// NewCard adds a new card to the host.
func (h *Host) NewCard(typ CardTypes, clickable bool) *Card {
	cd := &Card{Type: typ, Clickable: clickable}
	if clickable {
		cd.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable)
	}
	return add(h, h.Cards, cd)
}

func (cd *Card) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	switch cd.Type {
	case CardFilled:
		return s.SurfaceContainerHighest
	case CardOutlined:
		return s.Surface
	}
	return s.SurfaceContainerLow
}

func (cd *Card) OutlineColor(s *matcolor.Scheme) colors.ARGB {
	if cd.Type == CardOutlined {
		return s.OutlineVariant
	}
	return colors.Transparent
}

func (cd *Card) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (cd *Card) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (cd *Card) StateLayerOpacity() float64 {
	if !cd.Clickable {
		return 0
	}
	return cd.Base.StateLayerOpacity()
}

func (cd *Card) Elevation() tokens.ElevationLevel {
	active := cd.Clickable && (cd.Is(states.Hovered) || cd.Is(states.Pressed))
	switch cd.Type {
	case CardElevated:
		if active {
			return tokens.Level2
		}
		return tokens.Level1
	default:
		if active && cd.Is(states.Hovered) && !cd.Is(states.Pressed) {
			return tokens.Level1
		}
	}
	return tokens.Level0
}

func (cd *Card) click() {
	if cd.Clickable {
		cd.sendBase(events.ButtonClick)
	}
}
