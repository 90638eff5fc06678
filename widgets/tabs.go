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

// TabTypes are the styles of tab bars.
type TabTypes int32

const (
	// TabPrimary tabs sit below a top app bar; the selected tab is
	// primary colored.
	TabPrimary TabTypes = iota

	// TabSecondary tabs are used within a content area.
	TabSecondary
)

// Tabs is a tab bar holding exactly one selected [Tab]. Its divider is
// the outline.
type Tabs struct {
	Base

	Type TabTypes

	Items []*Tab

	// Selected is the index of the selected tab, or -1 when empty.
	Selected int
}

// Tab is one tab of a [Tabs] bar. The active indicator line is the
// indicator.
type Tab struct {
	Base

	// Owner is the tab bar this tab belongs to.
	Owner *Tabs

	// Index is the position in Owner.Items.
	Index int

	// Icon is the name of an optional icon.
	Icon string
}

// NewTabs adds a new tab bar with the given tab labels to the host.
// The first tab is selected.
func (h *Host) NewTabs(typ TabTypes, labels ...string) *Tabs {
	ts := &Tabs{Type: typ, Selected: -1}
	add(h, h.TabBars, ts)
	for _, l := range labels {
		ts.AddTab(l)
	}
	return ts
}

// AddTab appends a tab, selecting it if it is the first.
func (ts *Tabs) AddTab(label string) *Tab {
	tb := &Tab{Owner: ts, Index: len(ts.Items)}
	tb.Label.Text = label
	tb.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable)
	if ts.host != nil {
		add(ts.host, ts.host.Tabs, tb)
	}
	ts.Items = append(ts.Items, tb)
	if ts.Selected < 0 {
		ts.Selected = 0
		tb.SetState(true, states.Selected)
	}
	return tb
}

// SelectIndex selects the tab at index i, sending a [events.TabChange]
// if the selection changed.
func (ts *Tabs) SelectIndex(i int) {
	if i < 0 || i >= len(ts.Items) || i == ts.Selected {
		return
	}
	if ts.Selected >= 0 {
		ts.Items[ts.Selected].SetState(false, states.Selected)
	}
	ts.Selected = i
	ts.Items[i].SetState(true, states.Selected)
	ts.send(&events.Choice{Base: events.Base{Typ: events.TabChange, Src: ts.ID}, Index: i, Value: ts.Items[i].Text()})
}

func (ts *Tabs) ContainerColor(s *matcolor.Scheme) colors.ARGB { return s.Surface }

func (ts *Tabs) OutlineColor(s *matcolor.Scheme) colors.ARGB { return s.OutlineVariant }

func (ts *Tabs) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (ts *Tabs) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (ts *Tabs) StateLayerOpacity() float64 { return 0 }

func (tb *Tab) ContainerColor(s *matcolor.Scheme) colors.ARGB { return colors.Transparent }

func (tb *Tab) primary() bool { return tb.Owner == nil || tb.Owner.Type == TabPrimary }

func (tb *Tab) ContentColor(s *matcolor.Scheme) colors.ARGB {
	switch {
	case !tb.Is(states.Selected):
		return s.OnSurfaceVariant
	case tb.primary():
		return s.Primary.Base
	}
	return s.OnSurface
}

func (tb *Tab) IndicatorColor(s *matcolor.Scheme) colors.ARGB {
	return selectedOr(&tb.Base, s, colors.Transparent)
}

func (tb *Tab) StateLayerColor(s *matcolor.Scheme) colors.ARGB {
	if tb.Is(states.Selected) && tb.primary() {
		return s.Primary.Base
	}
	return s.OnSurface
}

func (tb *Tab) click() {
	if tb.Owner != nil {
		tb.Owner.SelectIndex(tb.Index)
	}
}
