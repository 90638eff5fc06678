// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"testing"

	"cogentcore.org/material/colors"
	"cogentcore.org/material/events"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/states"
	"cogentcore.org/material/theme"
	"cogentcore.org/material/tokens"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconButton(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	ib := h.NewIconButton(IconButtonTonal, "star").SetToggle(true)
	h.Frame(0)
	assert.Equal(t, s.SurfaceContainerHighest, ib.Visuals.Container)
	assert.Equal(t, s.OnSurfaceVariant, ib.Visuals.Content)
	h.Click(ib.ID)
	h.Frame(0)
	assert.Equal(t, s.Secondary.Container, ib.Visuals.Container)
	assert.Equal(t, s.Secondary.OnContainer, ib.Visuals.Content)

	out := h.NewIconButton(IconButtonOutlined, "close")
	h.Frame(0)
	assert.Equal(t, s.Outline, out.Visuals.Outline)
	assert.True(t, out.Visuals.Container.IsTransparent())
}

func TestFAB(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	fb := h.NewFAB(FABTertiary, "edit")
	h.PointerEnter(fb.ID)
	h.Frame(0)
	assert.Equal(t, s.Tertiary.Container, fb.Visuals.Container)
	assert.Equal(t, s.Tertiary.OnContainer, fb.Visuals.Content)
	assert.Equal(t, tokens.Level4, fb.Visuals.Elevation)
	assert.False(t, fb.IsExtended())
	assert.Equal(t, float32(56), fb.Size.Dp())

	fb.Lowered = true
	h.PointerLeave(fb.ID)
	h.Frame(0)
	assert.Equal(t, tokens.Level1, fb.Visuals.Elevation)
}

func TestChip(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	ch := h.NewChip(ChipFilter, "Vegan")
	h.Frame(0)
	assert.True(t, ch.Visuals.Container.IsTransparent())
	assert.Equal(t, s.Outline, ch.Visuals.Outline)
	assert.Equal(t, s.Primary.Base, ch.Visuals.Icon)

	h.Click(ch.ID)
	h.Frame(0)
	assert.True(t, ch.Is(states.Selected))
	assert.Equal(t, s.Secondary.Container, ch.Visuals.Container)
	assert.Equal(t, s.Secondary.OnContainer, ch.Visuals.Content)

	el := h.NewChip(ChipAssist, "Call")
	el.Elevated = true
	h.Frame(0)
	assert.Equal(t, s.SurfaceContainerLow, el.Visuals.Container)
	assert.Equal(t, tokens.Level1, el.Visuals.Elevation)
}

func TestCard(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	got := record(h, events.ButtonClick)
	static := h.NewCard(CardOutlined, false)
	click := h.NewCard(CardElevated, true)
	h.PointerEnter(static.ID)
	h.PointerEnter(click.ID)
	h.Click(static.ID)
	h.Click(click.ID)
	h.Frame(0)
	assert.Equal(t, s.OutlineVariant, static.Visuals.Outline)
	assert.Equal(t, 0.0, static.Visuals.StateLayerOpacity)
	assert.Equal(t, tokens.Level2, click.Visuals.Elevation)
	assert.Equal(t, tokens.HoverOpacity, click.Visuals.StateLayerOpacity)
	require.Len(t, *got, 1)
	assert.Equal(t, click.ID, (*got)[0].Source())
}

func TestSelect(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	sel := h.NewSelect(TextFieldFilled, "Size", "Small", "Medium", "Large")
	got := record(h, events.SelectChange)
	require.Len(t, sel.Options, 3)
	assert.Equal(t, 3, h.SelectOptions.Len())
	assert.Equal(t, "", sel.Value())

	h.Click(sel.ID)
	h.Frame(0)
	assert.True(t, sel.Open)
	assert.Equal(t, s.Primary.Base, sel.Visuals.Outline)

	h.Click(sel.Options[1].ID)
	h.Frame(0)
	assert.False(t, sel.Open)
	assert.Equal(t, "Medium", sel.Value())
	require.Len(t, *got, 1)
	ch := (*got)[0].(*events.Choice)
	assert.Equal(t, sel.ID, ch.Source())
	assert.Equal(t, 1, ch.Index)
	assert.Equal(t, "Medium", ch.Value)
	assert.Equal(t, s.Secondary.Container, sel.Options[1].Visuals.Container)
	assert.True(t, sel.Options[0].Visuals.Container.IsTransparent())

	// choosing the same option again closes without an event
	sel.SetOpen(true)
	h.Click(sel.Options[1].ID)
	h.Frame(0)
	assert.Len(t, *got, 1)

	sel.SetEnabled(false)
	h.Frame(0)
	assert.Equal(t, s.OnSurface.WithAlpha(tokens.DisabledFieldOpacity), sel.Visuals.Container)
	assert.Equal(t, s.OnSurface.WithAlpha(tokens.DisabledContentOpacity), sel.Visuals.Outline)
}

func TestTabs(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	ts := h.NewTabs(TabPrimary, "Flights", "Trips", "Explore")
	got := record(h, events.TabChange)
	h.Frame(0)
	assert.Equal(t, 0, ts.Selected)
	assert.Equal(t, s.Primary.Base, ts.Items[0].Visuals.Content)
	assert.Equal(t, s.Primary.Base, ts.Items[0].Visuals.Indicator)
	assert.Equal(t, s.OnSurfaceVariant, ts.Items[1].Visuals.Content)
	assert.Equal(t, s.OutlineVariant, ts.Visuals.Outline)

	h.Click(ts.Items[2].ID)
	h.Click(ts.Items[2].ID)
	h.Frame(0)
	assert.Equal(t, 2, ts.Selected)
	assert.False(t, ts.Items[0].Is(states.Selected))
	require.Len(t, *got, 1)
	assert.Equal(t, "Explore", (*got)[0].(*events.Choice).Value)

	sec := h.NewTabs(TabSecondary, "A", "B")
	h.Frame(0)
	assert.Equal(t, s.OnSurface, sec.Items[0].Visuals.Content)
}

func TestListItem(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	li := h.NewListItem("Inbox").SetSupporting("3 new messages", 2)
	got := record(h, events.ListItemClick)
	h.Click(li.ID)
	li.SetState(true, states.Selected)
	h.Frame(0)
	assert.Len(t, *got, 1)
	assert.Equal(t, float32(72), li.Height())
	assert.Equal(t, s.Secondary.Container, li.Visuals.Container)
	assert.Equal(t, s.OnSurfaceVariant, li.SupportingColor)
	assert.Equal(t, 3, li.SetSupporting("", 9).Lines)
}

func TestMenu(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	m := h.NewMenu("Cut", "Copy", "Paste")
	got := record(h, events.MenuOpen, events.MenuClose, events.MenuItemSelect)
	m.SetOpen(true)
	h.Frame(0)
	assert.Equal(t, s.SurfaceContainer, m.Visuals.Container)
	assert.Equal(t, tokens.Level2, m.Visuals.Elevation)

	h.Click(m.Items[1].ID)
	h.Frame(0)
	assert.False(t, m.Open)
	require.Len(t, *got, 3)
	assert.Equal(t, events.MenuOpen, (*got)[0].Type())
	assert.Equal(t, events.MenuItemSelect, (*got)[1].Type())
	assert.Equal(t, 1, (*got)[1].(*events.Choice).Index)
	assert.Equal(t, events.MenuClose, (*got)[2].Type())
}

func TestDialog(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	d := h.NewDialog("Discard draft?", "")
	got := record(h, events.DialogOpen, events.DialogClose, events.DialogConfirm)
	h.Frame(0)
	assert.True(t, d.Scrim.Visuals.Container.IsTransparent())

	d.SetOpen(true)
	h.Frame(0)
	assert.Equal(t, s.SurfaceContainerHigh, d.Visuals.Container)
	assert.Equal(t, tokens.Level3, d.Visuals.Elevation)
	assert.Equal(t, s.OnSurface, d.HeadlineColor)
	assert.Equal(t, s.OnSurfaceVariant, d.Visuals.Content)
	assert.Equal(t, s.Scrim.WithAlpha(0.32), d.Scrim.Visuals.Container)

	h.Click(d.Scrim.ID)
	h.Frame(0)
	assert.False(t, d.Open)
	assert.True(t, d.Scrim.Visuals.Container.IsTransparent())

	d.SetOpen(true)
	d.Confirm()
	h.Frame(0)
	types := make([]events.Types, len(*got))
	for i, ev := range *got {
		types[i] = ev.Type()
	}
	assert.Equal(t, []events.Types{events.DialogOpen, events.DialogClose, events.DialogOpen, events.DialogConfirm, events.DialogClose}, types)

	d.DismissOnScrim = false
	d.SetOpen(true)
	h.Click(d.Scrim.ID)
	h.Frame(0)
	assert.True(t, d.Open)
}

func TestSnackbar(t *testing.T) {
	h := NewHost(theme.FromSeed(theme.DefaultSeed, matcolor.Dark))
	s := h.Theme.Scheme()
	sb := h.NewSnackbar("Message archived", "Undo")
	got := record(h, events.SnackbarShow, events.SnackbarAction, events.SnackbarDismiss)
	sb.Show()
	h.Frame(0)
	assert.Equal(t, s.InverseSurface, sb.Visuals.Container)
	assert.Equal(t, s.InverseOnSurface, sb.Visuals.Content)
	assert.Equal(t, s.InversePrimary, sb.Visuals.Indicator)
	assert.Equal(t, tokens.Level3, sb.Visuals.Elevation)

	sb.Activate()
	h.Frame(0)
	assert.False(t, sb.Visible)
	require.Len(t, *got, 3)
	assert.Equal(t, "Undo", (*got)[1].(*events.Text).Value)
	assert.Equal(t, events.SnackbarDismiss, (*got)[2].Type())

	sb.Duration = SnackbarShort
	sb.Show()
	h.Frame(1.5)
	assert.True(t, sb.Visible)
	h.Frame(0.6)
	assert.False(t, sb.Visible)
	assert.Len(t, *got, 5)

	sb.Duration = SnackbarIndefinite
	sb.Show()
	h.Frame(100)
	assert.True(t, sb.Visible)
	sb.Dismiss()
	sb.Dismiss()
	h.Frame(0)
	assert.Len(t, *got, 7)
}

func TestTooltip(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	bt := h.NewIconButton(IconButtonStandard, "info")
	plain := h.NewTooltip(TooltipPlain, "Info", bt)
	rich := h.NewTooltip(TooltipRich, "Details", nil)
	rich.Title = "Title"

	h.PointerEnter(bt.ID)
	h.Frame(0.3)
	assert.False(t, plain.Visible)
	h.Frame(0.3)
	assert.True(t, plain.Visible)
	h.PointerLeave(bt.ID)
	h.Frame(0.1)
	assert.False(t, plain.Visible)

	rich.Show()
	h.Frame(0)
	assert.True(t, rich.Visible)
	assert.Equal(t, s.InverseSurface, plain.Visuals.Container)
	assert.Equal(t, s.InverseOnSurface, plain.Visuals.Content)
	assert.Equal(t, s.SurfaceContainer, rich.Visuals.Container)
	assert.Equal(t, s.OnSurfaceVariant, rich.TitleColor)
	assert.Equal(t, tokens.Level2, rich.Visuals.Elevation)
}

func TestProgress(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	lin := h.NewProgress(ProgressLinear)
	lin.SetValue(1.5)
	assert.Equal(t, float32(1), lin.Value)

	circ := h.NewProgress(ProgressCircular)
	circ.Indeterminate = true
	circ.FourColor = true
	h.Frame(0)
	assert.Equal(t, s.SurfaceContainerHighest, lin.Visuals.Container)
	assert.True(t, circ.Visuals.Container.IsTransparent())
	assert.Equal(t, s.Primary.Base, circ.Visuals.Indicator)

	h.Frame(0.25)
	assert.InDelta(t, math32.Pi/2, circ.Phase, 1e-4)
	h.Frame(0.8)
	assert.Equal(t, 1, circ.ColorIndex())
	h.Frame(0)
	assert.Equal(t, s.Primary.Container, circ.Visuals.Indicator)
	assert.Zero(t, lin.Phase, "determinate indicators do not animate")
}

func TestLoadingIndicator(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	li := h.NewLoadingIndicator()
	li.MultiColor = true
	li.Contained = true
	h.Frame(0)
	assert.Equal(t, s.SurfaceContainerHigh, li.Visuals.Container)
	assert.Equal(t, s.Primary.Base, li.Visuals.Indicator)
	assert.Equal(t, float32(38), li.ShapeSize())

	h.Frame(ShapeDuration * 1.5)
	from, to, mt := li.Shapes()
	assert.Equal(t, ShapeCookie9, from)
	assert.Equal(t, ShapePentagon, to)
	assert.InDelta(t, 0.5, mt, 1e-4)
	assert.InDelta(t, 75, li.Rotation, 1e-3)

	// wrap past the seventh shape
	h.Frame(ShapeDuration * 6)
	assert.Equal(t, 1, li.ColorIndex)
	assert.InDelta(t, 0.5, li.Morph, 1e-3)
	assert.InDelta(t, 15, li.Rotation, 1e-2)
	h.Frame(0)
	assert.Equal(t, s.Secondary.Base, li.Visuals.Indicator)

	li.SetSpeed(0)
	assert.Equal(t, MinLoadingSpeed, li.Speed)
	assert.Equal(t, "Oval", ShapeOval.String())
}

func TestLoadingIndicatorColorFade(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	li := h.NewLoadingIndicator()
	li.MultiColor = true
	h.Frame(0)

	// halfway through the last shape of the first cycle
	h.Frame(ShapeDuration * 6.5)
	h.Frame(0)
	require.Equal(t, 0, li.ColorIndex)
	fade := float64(li.Morph - (ShapeCount - 1))
	require.InDelta(t, 0.5, fade, 1e-3)
	want := colors.BlendLab(s.Primary.Base, s.Secondary.Base, fade)
	assert.Equal(t, want, li.Visuals.Indicator)
	assert.NotEqual(t, s.Primary.Base, li.Visuals.Indicator)
	assert.NotEqual(t, s.Secondary.Base, li.Visuals.Indicator)

	// single color indicators never fade
	li.MultiColor = false
	li.MarkDirty()
	h.Frame(0)
	assert.Equal(t, s.Primary.Base, li.Visuals.Indicator)
}

func TestBadge(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	bd := h.NewBadge(0, nil)
	h.Frame(0)
	assert.True(t, bd.IsSmall())
	assert.Equal(t, BadgeSmallSize, bd.Width())
	assert.Equal(t, s.Error.Base, bd.Visuals.Container)
	assert.Equal(t, s.Error.On, bd.Visuals.Content)

	bd.SetCount(7)
	assert.Equal(t, "7", bd.Value())
	assert.Equal(t, BadgeLargeSize, bd.Width())
	bd.SetCount(42)
	assert.Equal(t, float32(22), bd.Width())
	bd.SetCount(12345)
	assert.Equal(t, "999+", bd.Value())
	assert.Equal(t, float32(34), bd.Width())
	bd.SetCount(-1)
	assert.Equal(t, "", bd.Value())
}

func TestDarkScheme(t *testing.T) {
	h := NewHost(theme.FromSeed(theme.DefaultSeed, matcolor.Dark))
	bt := h.NewButton(ButtonFilled, "OK")
	h.Frame(0)
	s := h.Theme.Scheme()
	assert.Equal(t, s.Primary.Base, bt.Visuals.Container)
	assert.InDelta(t, 80, bt.Visuals.Container.Lstar(), 1)
	assert.InDelta(t, 20, bt.Visuals.Content.Lstar(), 1)
	assert.Less(t, s.Surface.Lstar(), 10.0)
}
