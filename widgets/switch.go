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

// Handle sizes of a [Switch], in dp.
const (
	SwitchHandleOff     float32 = 16
	SwitchHandleOn      float32 = 24
	SwitchHandlePressed float32 = 28
)

// Switch is an on/off switch. The track is the container, the handle
// the indicator and the optional handle icon the icon.
// The on state is [states.Selected].
type Switch struct {
	Base

	// ShowIcons shows a check in the handle when on, which also makes
	// the off handle full size.
	ShowIcons bool

	// Travel animates the handle between the two ends of the track.
	Travel *tokens.Transition
}

// NewSwitch adds a new off switch to the host.
func (h *Host) NewSwitch(label string) *Switch {
	sw := &Switch{Travel: tokens.NewTransition(tokens.Medium2, tokens.Standard)}
	sw.Label.Text = label
	sw.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable, states.Checkable)
	return add(h, h.Switches, sw)
}

// IsOn returns whether the switch is on.
func (sw *Switch) IsOn() bool { return sw.Is(states.Selected) }

// SetOn sets the switch without sending an event.
func (sw *Switch) SetOn(on bool) {
	sw.SetState(on, states.Selected)
	sw.Travel.Start(on)
}

// HandleSize returns the handle diameter in dp.
func (sw *Switch) HandleSize() float32 {
	switch {
	case sw.Is(states.Pressed):
		return SwitchHandlePressed
	case sw.IsOn() || sw.ShowIcons:
		return SwitchHandleOn
	}
	return SwitchHandleOff
}

// HandlePosition returns the eased handle position from 0 (off end)
// to 1 (on end).
func (sw *Switch) HandlePosition() float32 { return sw.Travel.Progress() }

func (sw *Switch) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	if sw.IsOn() {
		return s.Primary.Base
	}
	return s.SurfaceContainerHighest
}

func (sw *Switch) OutlineColor(s *matcolor.Scheme) colors.ARGB {
	if sw.IsOn() {
		return colors.Transparent
	}
	return s.Outline
}

func (sw *Switch) IndicatorColor(s *matcolor.Scheme) colors.ARGB {
	switch {
	case sw.IsOn():
		return s.Primary.On
	case sw.Is(states.Pressed) || sw.Is(states.Hovered):
		return s.OnSurfaceVariant
	}
	return s.Outline
}

func (sw *Switch) IconColor(s *matcolor.Scheme) colors.ARGB {
	if sw.IsOn() {
		return s.Primary.OnContainer
	}
	return s.SurfaceContainerHighest
}

func (sw *Switch) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (sw *Switch) StateLayerColor(s *matcolor.Scheme) colors.ARGB {
	return selectedOr(&sw.Base, s, s.OnSurface)
}

func (sw *Switch) styleDisabled(s *matcolor.Scheme, v *Visuals) {
	faint := tokens.DisabledContainerOpacity
	dim := tokens.DisabledContentOpacity
	if sw.IsOn() {
		v.Container = s.OnSurface.WithAlpha(faint)
		v.Indicator = s.Surface
		v.Icon = s.OnSurface.WithAlpha(dim)
		return
	}
	v.Container = s.SurfaceContainerHighest.WithAlpha(faint)
	v.Outline = s.OnSurface.WithAlpha(faint)
	v.Indicator = s.OnSurface.WithAlpha(dim)
	v.Icon = s.SurfaceContainerHighest.WithAlpha(dim)
}

func (sw *Switch) click() {
	sw.SetOn(!sw.IsOn())
	sw.send(&events.Toggle{Base: events.Base{Typ: events.SwitchChange, Src: sw.ID}, Checked: sw.IsOn()})
}

func (sw *Switch) animate(dt float32) { sw.Travel.Tick(dt) }
