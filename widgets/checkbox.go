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

// CheckStates are the three states of a [Checkbox].
type CheckStates int32

const (
	Unchecked CheckStates = iota
	Checked
	Indeterminate
)

var checkStatesNames = [...]string{"Unchecked", "Checked", "Indeterminate"}

func (c CheckStates) String() string { return enumName(checkStatesNames[:], int(c)) }

// Toggled returns the state after a click: unchecked and indeterminate
// become checked, and checked becomes unchecked.
func (c CheckStates) Toggled() CheckStates {
	if c == Checked {
		return Unchecked
	}
	return Checked
}

// Glyphs are the marks drawn in a checkbox.
type Glyphs int32

const (
	GlyphNone Glyphs = iota
	GlyphCheck
	GlyphMinus
)

// Glyph returns the mark for the state.
func (c CheckStates) Glyph() Glyphs {
	switch c {
	case Checked:
		return GlyphCheck
	case Indeterminate:
		return GlyphMinus
	}
	return GlyphNone
}

// Checkbox is a tri-state checkbox with an optional label. The box is
// the container, its border the outline and the mark the icon.
// Checked and indeterminate boxes have [states.Selected] set.
type Checkbox struct {
	Base

	State CheckStates

	// Mark animates the box fill and mark in and out.
	Mark *tokens.Transition
}

// NewCheckbox adds a new unchecked checkbox to the host.
func (h *Host) NewCheckbox(label string) *Checkbox {
	cb := &Checkbox{Mark: tokens.NewTransition(tokens.Short4, tokens.EmphasizedDecelerate)}
	cb.Label.Text = label
	cb.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable, states.Checkable)
	return add(h, h.Checkboxes, cb)
}

// SetChecked sets the state without sending an event.
func (cb *Checkbox) SetChecked(c CheckStates) {
	cb.State = c
	cb.SetState(c != Unchecked, states.Selected)
	cb.Mark.Start(c != Unchecked)
	cb.MarkDirty()
}

func (cb *Checkbox) on() bool { return cb.State != Unchecked }

func (cb *Checkbox) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	switch {
	case !cb.on():
		return colors.Transparent
	case cb.Is(states.Error):
		return s.Error.Base
	}
	return s.Primary.Base
}

func (cb *Checkbox) OutlineColor(s *matcolor.Scheme) colors.ARGB {
	switch {
	case cb.Is(states.Error):
		return s.Error.Base
	case cb.on():
		return s.Primary.Base
	}
	return s.OnSurfaceVariant
}

func (cb *Checkbox) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (cb *Checkbox) IconColor(s *matcolor.Scheme) colors.ARGB {
	if cb.Is(states.Error) {
		return s.Error.On
	}
	return s.Primary.On
}

func (cb *Checkbox) StateLayerColor(s *matcolor.Scheme) colors.ARGB {
	switch {
	case cb.Is(states.Error):
		return s.Error.Base
	case cb.on():
		return s.Primary.Base
	}
	return s.OnSurface
}

// styleDisabled fills a disabled checked box with on_surface at the
// content opacity, with the mark in the surface color.
func (cb *Checkbox) styleDisabled(s *matcolor.Scheme, v *Visuals) {
	dim := s.OnSurface.WithAlpha(tokens.DisabledContentOpacity)
	v.Outline = dim
	if cb.on() {
		v.Container = dim
		v.Icon = s.Surface
	}
}

func (cb *Checkbox) click() {
	cb.SetChecked(cb.State.Toggled())
	cb.send(&events.Toggle{
		Base:    events.Base{Typ: events.CheckboxChange, Src: cb.ID},
		Checked: cb.State == Checked,
	})
}

func (cb *Checkbox) animate(dt float32) { cb.Mark.Tick(dt) }
