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

// Radio is one option of a group keyed by Group. At most one radio in
// a group is selected after each frame's reconciliation. The ring is
// the outline and the inner dot the indicator.
type Radio struct {
	Base

	// Group is the group key. Radios with an empty group are independent.
	Group string

	// Value identifies the option within its group.
	Value string
}

// NewRadio adds a new unselected radio in the given group to the host.
func (h *Host) NewRadio(group, value, label string) *Radio {
	rd := &Radio{Group: group, Value: value}
	rd.Label.Text = label
	rd.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable, states.Checkable)
	return add(h, h.Radios, rd)
}

func (rd *Radio) ContainerColor(s *matcolor.Scheme) colors.ARGB { return colors.Transparent }

func (rd *Radio) OutlineColor(s *matcolor.Scheme) colors.ARGB {
	return selectedOr(&rd.Base, s, s.OnSurfaceVariant)
}

func (rd *Radio) IndicatorColor(s *matcolor.Scheme) colors.ARGB {
	return selectedOr(&rd.Base, s, colors.Transparent)
}

func (rd *Radio) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (rd *Radio) StateLayerColor(s *matcolor.Scheme) colors.ARGB {
	return selectedOr(&rd.Base, s, s.OnSurface)
}

func (rd *Radio) styleDisabled(s *matcolor.Scheme, v *Visuals) {
	v.Outline = s.OnSurface.WithAlpha(tokens.DisabledContentOpacity)
}

// Select selects the radio, as a click does. The rest of its group is
// cleared by the next frame's reconciliation.
func (rd *Radio) Select() { rd.click() }

func (rd *Radio) click() {
	if rd.Is(states.Selected) {
		return
	}
	rd.SetState(true, states.Selected)
	if rd.Group == "" || rd.host == nil {
		rd.send(&events.Radio{Base: events.Base{Typ: events.RadioChange, Src: rd.ID}, Selected: true})
		return
	}
	rd.host.radioClicks[rd.Group] = rd
}
