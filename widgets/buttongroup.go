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

// Orientations are the directions a [ButtonGroup] lays out in.
type Orientations int32

const (
	Horizontal Orientations = iota
	Vertical

	OrientationsN
)

var orientationsNames = [OrientationsN]string{"Horizontal", "Vertical"}

func (o Orientations) String() string { return enumName(orientationsNames[:], int(o)) }

// ButtonGroup is a connected row or column of toggle buttons, such as
// a segmented button. The group owns the checked rules of its buttons;
// the buttons keep their own colors.
type ButtonGroup struct {
	Base

	Orientation Orientations

	// SingleSelection checks at most one button at a time.
	SingleSelection bool

	// SelectionRequired keeps at least one button checked once one is.
	SelectionRequired bool

	// Spacing is the gap between buttons in dp. Segmented buttons
	// touch, so it is 0 by default.
	Spacing tokens.Spacing

	// Radius is the outer corner radius of the group.
	Radius tokens.Corner

	Buttons []*Button
}

// Corners are the four corner radii of a rectangle.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft tokens.Corner
}

// NewButtonGroup adds a new horizontal group of outlined toggle
// buttons with the given labels to the host.
func (h *Host) NewButtonGroup(labels ...string) *ButtonGroup {
	g := &ButtonGroup{Radius: tokens.CornerFull}
	add(h, h.ButtonGroups, g)
	for _, l := range labels {
		g.AddButton(l)
	}
	return g
}

// AddButton appends an outlined toggle button to the group.
func (g *ButtonGroup) AddButton(label string) *Button {
	bt := &Button{Type: ButtonOutlined, Toggle: true, Group: g, Index: len(g.Buttons)}
	bt.Label.Text = label
	bt.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable, states.Checkable)
	if g.host != nil {
		add(g.host, g.host.Buttons, bt)
	}
	g.Buttons = append(g.Buttons, bt)
	return bt
}

// Checked returns the indexes of the checked buttons.
func (g *ButtonGroup) Checked() []int {
	var idx []int
	for i, bt := range g.Buttons {
		if bt.Toggle && bt.Is(states.Selected) {
			idx = append(idx, i)
		}
	}
	return idx
}

// toggle applies a click on bt, returning whether anything changed.
// Disabled and non-checkable buttons are left alone.
func (g *ButtonGroup) toggle(bt *Button) bool {
	if !bt.Toggle || bt.IsDisabled() {
		return false
	}
	if bt.Is(states.Selected) {
		if g.SelectionRequired && (g.SingleSelection || len(g.Checked()) <= 1) {
			return false
		}
		bt.SetState(false, states.Selected)
	} else {
		if g.SingleSelection {
			for _, o := range g.Buttons {
				if o != bt {
					o.SetState(false, states.Selected)
				}
			}
		}
		bt.SetState(true, states.Selected)
	}
	g.send(&events.Choice{Base: events.Base{Typ: events.ButtonGroupChange, Src: g.ID}, Index: bt.Index, Value: bt.Text()})
	return true
}

// SegmentCorners returns the corner radii of the button at index i:
// the ends of the group get the outer radius and the inner edges are
// square.
func (g *ButtonGroup) SegmentCorners(i int) Corners {
	r := g.Radius
	n := len(g.Buttons)
	switch {
	case n <= 1:
		return Corners{r, r, r, r}
	case i == 0 && g.Orientation == Vertical:
		return Corners{TopLeft: r, TopRight: r}
	case i == 0:
		return Corners{TopLeft: r, BottomLeft: r}
	case i == n-1 && g.Orientation == Vertical:
		return Corners{BottomRight: r, BottomLeft: r}
	case i == n-1:
		return Corners{TopRight: r, BottomRight: r}
	}
	return Corners{}
}

func (g *ButtonGroup) ContainerColor(s *matcolor.Scheme) colors.ARGB { return colors.Transparent }

func (g *ButtonGroup) OutlineColor(s *matcolor.Scheme) colors.ARGB { return s.Outline }

func (g *ButtonGroup) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (g *ButtonGroup) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (g *ButtonGroup) StateLayerOpacity() float64 { return 0 }
