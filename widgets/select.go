// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/material/colors"
	"cogentcore.org/material/events"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/states"
)

// Select is a field that opens a list of options to choose one from.
// It is styled like a [TextField] of the same type, with the selected
// option as its value.
type Select struct {
	Base

	Type TextFieldTypes

	// Options are the choices, each holding a reference back to the select.
	Options []*SelectOption

	// Selected is the index of the chosen option, or -1.
	Selected int

	// Open is whether the option list is shown.
	Open bool

	LabelColor colors.ARGB
}

// SelectOption is one choice of a [Select]. Options are drawn on a
// menu surface while the select is open.
type SelectOption struct {
	Base

	// Owner is the select this option belongs to.
	Owner *Select

	// Index is the position in Owner.Options.
	Index int
}

// NewSelect adds a new select with the given options to the host.
func (h *Host) NewSelect(typ TextFieldTypes, label string, options ...string) *Select {
	sel := &Select{Type: typ, Selected: -1}
	sel.Label.Text = label
	sel.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable)
	add(h, h.Selects, sel)
	for _, o := range options {
		sel.AddOption(o)
	}
	return sel
}

// AddOption adds an option with the given label.
func (sel *Select) AddOption(label string) *SelectOption {
	op := &SelectOption{Owner: sel, Index: len(sel.Options)}
	op.Label.Text = label
	op.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable)
	if sel.host != nil {
		add(sel.host, sel.host.SelectOptions, op)
	}
	sel.Options = append(sel.Options, op)
	return op
}

// Value returns the label of the selected option, or "".
func (sel *Select) Value() string {
	if sel.Selected < 0 || sel.Selected >= len(sel.Options) {
		return ""
	}
	return sel.Options[sel.Selected].Text()
}

// SetOpen shows or hides the option list.
func (sel *Select) SetOpen(open bool) {
	if sel.Open == open {
		return
	}
	sel.Open = open
	sel.MarkDirty()
}

// Choose selects the option at index i, closes the list, and sends a
// [events.SelectChange] if the selection changed.
func (sel *Select) Choose(i int) {
	if i < 0 || i >= len(sel.Options) {
		return
	}
	sel.SetOpen(false)
	if i == sel.Selected {
		return
	}
	if sel.Selected >= 0 && sel.Selected < len(sel.Options) {
		sel.Options[sel.Selected].SetState(false, states.Selected)
	}
	sel.Selected = i
	sel.Options[i].SetState(true, states.Selected)
	sel.MarkDirty()
	sel.send(&events.Choice{Base: events.Base{Typ: events.SelectChange, Src: sel.ID}, Index: i, Value: sel.Value()})
}

func (sel *Select) click() { sel.SetOpen(!sel.Open) }

func (sel *Select) active() bool { return sel.Is(states.Focused) || sel.Open }

func (sel *Select) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	if sel.Type == TextFieldFilled {
		return s.SurfaceContainerHighest
	}
	return colors.Transparent
}

func (sel *Select) OutlineColor(s *matcolor.Scheme) colors.ARGB {
	return fieldAccent(&sel.Base, s, sel.active())
}

func (sel *Select) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

// IconColor is the trailing arrow color.
func (sel *Select) IconColor(s *matcolor.Scheme) colors.ARGB {
	if sel.Is(states.Error) {
		return s.Error.Base
	}
	return s.OnSurfaceVariant
}

func (sel *Select) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (sel *Select) StateLayerOpacity() float64 { return fieldStateLayer(&sel.Base, sel.Type) }

func (sel *Select) styleDisabled(s *matcolor.Scheme, v *Visuals) {
	styleFieldDisabled(s, v, sel.Type)
}

func (sel *Select) resolveParts(s *matcolor.Scheme) {
	sel.LabelColor = sel.Visuals.Outline
	if sel.IsDisabled() {
		sel.LabelColor = sel.Visuals.Content
	}
}

func (op *SelectOption) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	if op.Is(states.Selected) {
		return s.Secondary.Container
	}
	return colors.Transparent
}

func (op *SelectOption) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (op *SelectOption) IconColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurfaceVariant }

func (op *SelectOption) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (op *SelectOption) click() {
	if op.Owner != nil {
		op.Owner.Choose(op.Index)
	}
}
