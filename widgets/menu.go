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

// Menu is a temporary surface holding a list of [MenuItem]s.
type Menu struct {
	Base

	Items []*MenuItem

	// Open is whether the menu is shown. Change it with [Menu.SetOpen].
	Open bool
}

// MenuItem is one entry of a [Menu].
type MenuItem struct {
	Base

	// Owner is the menu this item belongs to.
	Owner *Menu

	// Index is the position in Owner.Items.
	Index int

	// Icon is the name of an optional leading icon.
	Icon string

	// Shortcut is optional trailing text, such as a key chord.
	Shortcut string
}

// NewMenu adds a new closed menu with the given item labels to the host.
func (h *Host) NewMenu(items ...string) *Menu {
	m := add(h, h.Menus, &Menu{})
	for _, it := range items {
		m.AddItem(it)
	}
	return m
}

// AddItem appends an item with the given label.
func (m *Menu) AddItem(label string) *MenuItem {
	mi := &MenuItem{Owner: m, Index: len(m.Items)}
	mi.Label.Text = label
	mi.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable)
	if m.host != nil {
		add(m.host, m.host.MenuItems, mi)
	}
	m.Items = append(m.Items, mi)
	return mi
}

// SetOpen opens or closes the menu, sending [events.MenuOpen] or
// [events.MenuClose] when that changes anything.
func (m *Menu) SetOpen(open bool) {
	if m.Open == open {
		return
	}
	m.Open = open
	m.MarkDirty()
	if open {
		m.sendBase(events.MenuOpen)
	} else {
		m.sendBase(events.MenuClose)
	}
}

// Choose sends a [events.MenuItemSelect] for the item at index i and
// closes the menu.
func (m *Menu) Choose(i int) {
	if i < 0 || i >= len(m.Items) {
		return
	}
	m.send(&events.Choice{Base: events.Base{Typ: events.MenuItemSelect, Src: m.ID}, Index: i, Value: m.Items[i].Text()})
	m.SetOpen(false)
}

func (m *Menu) ContainerColor(s *matcolor.Scheme) colors.ARGB { return s.SurfaceContainer }

func (m *Menu) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (m *Menu) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (m *Menu) StateLayerOpacity() float64 { return 0 }

func (m *Menu) Elevation() tokens.ElevationLevel { return tokens.Level2 }

func (mi *MenuItem) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	if mi.Is(states.Selected) {
		return s.Secondary.Container
	}
	return colors.Transparent
}

func (mi *MenuItem) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (mi *MenuItem) IconColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurfaceVariant }

func (mi *MenuItem) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (mi *MenuItem) click() {
	if mi.Owner != nil {
		mi.Owner.Choose(mi.Index)
	}
}
