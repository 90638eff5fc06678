// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"testing"

	"cogentcore.org/material/events"
	"cogentcore.org/material/events/key"
	"cogentcore.org/material/states"
	"cogentcore.org/material/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonGroupSingle(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	g := h.NewButtonGroup("Day", "Week", "Month")
	g.SingleSelection = true
	g.SelectionRequired = true
	changes := record(h, events.ButtonGroupChange)
	clicks := record(h, events.ButtonClick)

	h.Frame(0)
	assert.Equal(t, s.Outline, g.Buttons[0].Visuals.Outline)
	assert.Equal(t, s.Outline, g.Visuals.Outline)

	h.Click(g.Buttons[0].ID)
	h.Frame(0)
	assert.Equal(t, []int{0}, g.Checked())
	assert.Equal(t, s.InverseSurface, g.Buttons[0].Visuals.Container)

	h.Click(g.Buttons[1].ID)
	h.Frame(0)
	assert.Equal(t, []int{1}, g.Checked())
	assert.True(t, g.Buttons[0].Visuals.Container.IsTransparent())

	// the only checked button stays checked
	h.Click(g.Buttons[1].ID)
	h.Frame(0)
	assert.Equal(t, []int{1}, g.Checked())

	require.Len(t, *changes, 2)
	assert.Len(t, *clicks, 3)
	ch := (*changes)[1].(*events.Choice)
	assert.Equal(t, g.ID, ch.Source())
	assert.Equal(t, 1, ch.Index)
	assert.Equal(t, "Week", ch.Value)

	g.SelectionRequired = false
	h.Click(g.Buttons[1].ID)
	h.Frame(0)
	assert.Empty(t, g.Checked())
}

func TestButtonGroupMulti(t *testing.T) {
	h := NewHost(nil)
	g := h.NewButtonGroup("Bold", "Italic", "Underline")
	g.SelectionRequired = true
	h.Click(g.Buttons[0].ID)
	h.Click(g.Buttons[1].ID)
	h.Frame(0)
	assert.Equal(t, []int{0, 1}, g.Checked())

	h.Click(g.Buttons[0].ID)
	h.Frame(0)
	assert.Equal(t, []int{1}, g.Checked())

	h.Click(g.Buttons[1].ID)
	h.Frame(0)
	assert.Equal(t, []int{1}, g.Checked())

	g.Buttons[2].SetEnabled(false)
	h.Click(g.Buttons[2].ID)
	h.Frame(0)
	assert.Equal(t, []int{1}, g.Checked())

	// buttons that are not checkable never change
	g.Buttons[0].SetToggle(false)
	assert.False(t, g.toggle(g.Buttons[0]))
}

func TestButtonGroupCorners(t *testing.T) {
	h := NewHost(nil)
	r := tokens.CornerFull
	g := h.NewButtonGroup("A", "B", "C")
	assert.Equal(t, Corners{TopLeft: r, BottomLeft: r}, g.SegmentCorners(0))
	assert.Equal(t, Corners{}, g.SegmentCorners(1))
	assert.Equal(t, Corners{TopRight: r, BottomRight: r}, g.SegmentCorners(2))

	g.Orientation = Vertical
	assert.Equal(t, Corners{TopLeft: r, TopRight: r}, g.SegmentCorners(0))
	assert.Equal(t, Corners{BottomRight: r, BottomLeft: r}, g.SegmentCorners(2))
	assert.Equal(t, "Vertical", g.Orientation.String())

	one := h.NewButtonGroup("Only")
	one.Radius = tokens.CornerS
	assert.Equal(t, Corners{tokens.CornerS, tokens.CornerS, tokens.CornerS, tokens.CornerS}, one.SegmentCorners(0))
}

func TestAppBar(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	ab := h.NewAppBar(AppBarLarge, "Photos")
	nav := ab.SetNavigation("menu")
	act := ab.AddAction("search")
	h.Frame(0)
	assert.Equal(t, s.Surface, ab.Visuals.Container)
	assert.Equal(t, s.OnSurface, ab.Visuals.Content)
	assert.Equal(t, s.OnSurface, nav.Visuals.Content)
	assert.Equal(t, s.OnSurfaceVariant, act.Visuals.Content)
	assert.Equal(t, float32(152), ab.Height())

	ab.SetScroll(50)
	h.Frame(0)
	assert.Equal(t, s.SurfaceContainer, ab.Visuals.Container)
	assert.InDelta(t, 0.5, ab.Collapsed(), 1e-6)
	assert.InDelta(t, 108, ab.Height(), 1e-4)

	ab.SetScroll(500)
	assert.Equal(t, float32(64), ab.Height())
	ab.SetScroll(-5)
	h.Frame(0)
	assert.False(t, ab.Elevated)
	assert.Equal(t, float32(152), ab.Height())

	small := h.NewAppBar(AppBarSmall, "Mail")
	small.SetScroll(80)
	assert.Equal(t, float32(64), small.Height())

	bottom := h.NewAppBar(AppBarBottom, "")
	h.Frame(0)
	assert.Equal(t, s.SurfaceContainerLow, bottom.Visuals.Container)
	assert.Equal(t, float32(80), bottom.Height())

	h.PointerEnter(act.ID)
	h.Frame(0)
	assert.Equal(t, s.SurfaceContainerHighest, act.Visuals.Container)
}

func TestBarActions(t *testing.T) {
	h := NewHost(nil)
	ab := h.NewAppBar(AppBarSmall, "Mail")
	nav := ab.SetNavigation("arrow_back")
	ab.AddAction("attach")
	act := ab.AddAction("more")
	tb := h.NewToolbar("Format")
	bold := tb.AddAction("bold")
	got := record(h, events.NavigationClick, events.ActionClick)

	h.Click(nav.ID)
	h.Click(act.ID)
	h.Click(bold.ID)
	h.Frame(0)
	require.Len(t, *got, 3)
	assert.Equal(t, events.NavigationClick, (*got)[0].Type())
	assert.Equal(t, ab.ID, (*got)[0].Source())
	ch := (*got)[1].(*events.Choice)
	assert.Equal(t, ab.ID, ch.Source())
	assert.Equal(t, 1, ch.Index)
	assert.Equal(t, "more", ch.Value)
	assert.Equal(t, tb.ID, (*got)[2].Source())
}

func TestToolbar(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	tb := h.NewToolbar("Format")
	nav := tb.SetNavigation("close")
	act := tb.AddAction("undo")
	h.Frame(0)
	assert.Equal(t, s.Surface, tb.Visuals.Container)
	assert.Equal(t, s.OnSurface, tb.Visuals.Content)
	assert.Equal(t, s.OnSurface, nav.Visuals.Icon)
	assert.Equal(t, s.OnSurfaceVariant, act.Visuals.Icon)
	assert.Equal(t, float32(64), tb.Height())
	assert.True(t, nav.IsNavigation())
	assert.False(t, act.IsNavigation())
}

func TestSearch(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	sr := h.NewSearch("Search mail")
	h.Frame(0)
	assert.Equal(t, s.SurfaceContainerHigh, sr.Visuals.Container)
	assert.Equal(t, s.OnSurfaceVariant, sr.Visuals.Content)
	assert.Equal(t, s.OnSurface, sr.Visuals.Icon)
	assert.Equal(t, s.OnSurface, sr.Navigation.Visuals.Content)
	assert.Equal(t, float32(56), sr.Height())
	assert.Equal(t, tokens.CornerFull, sr.Corner())

	got := record(h, events.SearchQuery, events.SearchClick)
	h.TypeText(sr.ID, "cat")
	h.Key(sr.ID, key.CodeBackspace, "")
	h.Key(sr.ID, key.CodeReturnEnter, "")
	h.Frame(0)
	assert.Equal(t, "ca", sr.Query)
	assert.Equal(t, s.OnSurface, sr.Visuals.Content)
	require.Len(t, *got, 5)
	assert.Equal(t, "cat", (*got)[2].(*events.Text).Value)
	assert.Equal(t, "ca", (*got)[3].(*events.Text).Value)
	assert.Equal(t, events.SearchClick, (*got)[4].Type())

	sr.SetQuery("ca")
	h.Frame(0)
	assert.Len(t, *got, 5)

	mic := sr.SetAction("mic")
	h.Frame(0)
	assert.Equal(t, s.OnSurfaceVariant, mic.Visuals.Content)
}

func TestDivider(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	dv := h.NewDivider()
	h.Frame(0)
	assert.Equal(t, s.OutlineVariant, dv.Visuals.Outline)
	assert.True(t, dv.Visuals.Container.IsTransparent())
	assert.Equal(t, float32(1), dv.Thickness())
	assert.Zero(t, dv.LeadingMargin())

	dv.Inset = true
	assert.Equal(t, float32(80), dv.LeadingMargin())
}

func TestDayCell(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	plain := h.NewDayCell(3, "3")
	today := h.NewDayCell(4, "4")
	today.SetFlags(true, false, false)
	ranged := h.NewDayCell(5, "5")
	ranged.SetFlags(false, true, false)
	picked := h.NewDayCell(6, "6")
	picked.SetFlags(true, false, false)
	picked.SetSelected(true)
	invalid := h.NewDayCell(7, "7")
	invalid.SetFlags(false, false, true)
	h.Frame(0)

	assert.True(t, plain.Visuals.Container.IsTransparent())
	assert.Equal(t, s.OnSurface, plain.Visuals.Content)
	assert.Equal(t, s.Primary.Container, today.Visuals.Container)
	assert.Equal(t, s.Primary.OnContainer, today.Visuals.Content)
	assert.Equal(t, s.Primary.Container.WithAlpha(0.3), ranged.Visuals.Container)
	assert.Equal(t, s.OnSurface, ranged.Visuals.Content)
	assert.Equal(t, s.Primary.Base, picked.Visuals.Container)
	assert.Equal(t, s.Primary.On, picked.Visuals.Content)
	assert.True(t, invalid.Visuals.Container.IsTransparent())
	assert.Equal(t, s.OnSurface.WithAlpha(tokens.DisabledContentOpacity), invalid.Visuals.Content)

	got := record(h, events.PickerSelect)
	h.Click(invalid.ID)
	h.Click(plain.ID)
	h.Frame(0)
	require.Len(t, *got, 1)
	assert.Equal(t, 3, (*got)[0].(*events.Choice).Index)
	assert.Zero(t, invalid.Visuals.StateLayerOpacity)
}

func TestTimeCell(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	mode := h.NewTimeCell(TimeCellMode, 0, "Hour")
	mode.SetSelected(true)
	am := h.NewTimeCell(TimeCellPeriod, 0, "AM")
	am.SetSelected(true)
	pm := h.NewTimeCell(TimeCellPeriod, 1, "PM")
	face := h.NewTimeCell(TimeCellFace, 0, "")
	h.Frame(0)

	assert.Equal(t, s.Primary.Container, mode.Visuals.Container)
	assert.Equal(t, s.Primary.OnContainer, mode.Visuals.Content)
	assert.Equal(t, s.Primary.Base, am.Visuals.Container)
	assert.Equal(t, s.Primary.On, am.Visuals.Content)
	assert.True(t, pm.Visuals.Container.IsTransparent())
	assert.Equal(t, s.OnSurface, pm.Visuals.Content)
	assert.Equal(t, s.SurfaceContainer, face.Visuals.Container)
	assert.Equal(t, "Face", face.Type.String())

	got := record(h, events.PickerSelect)
	h.Click(face.ID)
	h.Click(pm.ID)
	h.Frame(0)
	require.Len(t, *got, 1)
	assert.Equal(t, 1, (*got)[0].(*events.Choice).Index)
	assert.False(t, face.Is(states.Pressed))
}
