// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"testing"

	"cogentcore.org/material/colors"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/states"
	"cogentcore.org/material/theme"
	"cogentcore.org/material/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// everyFamily adds one widget of each family to h.
func everyFamily(h *Host) []Themed {
	bt := h.NewButton(ButtonFilled, "Save")
	sel := h.NewSelect(TextFieldOutlined, "Size", "S", "M", "L")
	tabs := h.NewTabs(TabPrimary, "One", "Two")
	menu := h.NewMenu("Cut", "Copy")
	dlg := h.NewDialog("Delete?", "This cannot be undone.")
	search := h.NewSearch("Search mail")
	ws := []Themed{
		bt,
		h.NewIconButton(IconButtonFilled, "add"),
		h.NewFAB(FABPrimary, "edit"),
		h.NewChip(ChipAssist, "Help"),
		h.NewCard(CardElevated, true),
		h.NewCheckbox("Agree"),
		h.NewRadio("g", "a", "A"),
		h.NewSwitch("Wi-Fi"),
		h.NewSlider(0, 100, 0),
		h.NewTextField(TextFieldFilled, "Name"),
		sel, sel.Options[0],
		tabs, tabs.Items[0],
		h.NewListItem("Inbox"),
		menu, menu.Items[0],
		dlg, dlg.Scrim,
		h.NewSnackbar("Saved", "Undo"),
		h.NewTooltip(TooltipRich, "More", bt),
		h.NewProgress(ProgressLinear),
		h.NewLoadingIndicator(),
		h.NewBadge(3, bt),
		h.NewButtonGroup("Day", "Week"),
		h.NewAppBar(AppBarMedium, "Inbox"),
		h.NewToolbar("Edit"),
		search, search.Navigation,
		h.NewDivider(),
		h.NewDayCell(14, "14"),
		h.NewTimeCell(TimeCellNumber, 7, "7"),
	}
	return ws
}

func TestDisabledOverridesHover(t *testing.T) {
	h := NewHost(nil)
	bt := h.NewButton(ButtonFilled, "OK")
	h.PointerEnter(bt.ID)
	h.Frame(0)
	s := h.Theme.Scheme()
	assert.True(t, bt.Is(states.Hovered))
	assert.Equal(t, s.Primary.Base, bt.Visuals.Container)
	assert.Equal(t, tokens.HoverOpacity, bt.Visuals.StateLayerOpacity)
	assert.Equal(t, tokens.Level1, bt.Visuals.Elevation)

	bt.SetEnabled(false)
	h.PointerEnter(bt.ID)
	h.Frame(0)
	assert.False(t, bt.Is(states.Hovered))
	assert.Equal(t, s.OnSurface.WithAlpha(0.12), bt.Visuals.Container)
	assert.Equal(t, s.OnSurface.WithAlpha(0.38), bt.Visuals.Content)
	assert.Equal(t, 0.0, bt.Visuals.StateLayerOpacity)
	assert.Equal(t, tokens.Level0, bt.Visuals.Elevation)
	assert.Equal(t, bt.Visuals.Container, bt.Visuals.Effective)

	bt.SetEnabled(true)
	h.Frame(0)
	assert.Equal(t, s.Primary.Base, bt.Visuals.Container)
	assert.Equal(t, s.Primary.On, bt.Visuals.Content)
}

func TestDisabledContentAllFamilies(t *testing.T) {
	for _, mode := range []matcolor.Mode{matcolor.Light, matcolor.Dark} {
		h := NewHost(theme.FromSeed(theme.DefaultSeed, mode))
		ws := everyFamily(h)
		require.Len(t, ws, 32)
		for _, w := range ws {
			w.AsBase().SetState(true, states.Hovered, states.Selected)
			w.AsBase().SetEnabled(false)
		}
		h.Frame(0)
		s := h.Theme.Scheme()
		dim := s.OnSurface.WithAlpha(tokens.DisabledContentOpacity)
		for _, w := range ws {
			v := w.AsBase().Visuals
			assert.Equal(t, dim, v.Content, "%T", w)
			assert.Equal(t, 0.0, v.StateLayerOpacity, "%T", w)
			assert.Equal(t, tokens.Level0, v.Elevation, "%T", w)
			assert.Equal(t, v.Container, v.Effective, "%T", w)
		}
	}
}

func TestDisabledTransparentContainer(t *testing.T) {
	h := NewHost(nil)
	bt := h.NewButton(ButtonText, "More")
	out := h.NewButton(ButtonOutlined, "Back")
	bt.SetEnabled(false)
	out.SetEnabled(false)
	h.Frame(0)
	s := h.Theme.Scheme()
	assert.True(t, bt.Visuals.Container.IsTransparent())
	assert.True(t, out.Visuals.Container.IsTransparent())
	assert.Equal(t, s.OnSurface.WithAlpha(0.12), out.Visuals.Outline)
}

func TestButtonTable(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	tests := []struct {
		typ       ButtonTypes
		container colors.ARGB
		content   colors.ARGB
	}{
		{ButtonFilled, s.Primary.Base, s.Primary.On},
		{ButtonTonal, s.Secondary.Container, s.Secondary.OnContainer},
		{ButtonElevated, s.SurfaceContainerLow, s.Primary.Base},
		{ButtonOutlined, colors.Transparent, s.Primary.Base},
		{ButtonText, colors.Transparent, s.Primary.Base},
	}
	for _, test := range tests {
		bt := h.NewButton(test.typ, test.typ.String())
		h.Frame(0)
		assert.Equal(t, test.container, bt.Visuals.Container, test.typ.String())
		assert.Equal(t, test.content, bt.Visuals.Content, test.typ.String())
		assert.Equal(t, test.content, bt.Visuals.StateLayer, test.typ.String())
	}
	assert.Equal(t, "Unknown", ButtonTypes(42).String())
}

func TestToggleButton(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	bt := h.NewButton(ButtonFilled, "Bold").SetToggle(true)
	h.Frame(0)
	assert.Equal(t, s.SurfaceContainer, bt.Visuals.Container)
	h.Click(bt.ID)
	h.Frame(0)
	assert.True(t, bt.Is(states.Selected))
	assert.Equal(t, s.Primary.Base, bt.Visuals.Container)
}

func TestStateLayerComposition(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	bt := h.NewButton(ButtonTonal, "Tonal")
	h.PointerEnter(bt.ID)
	h.PointerDown(bt.ID)
	h.Frame(0)
	assert.Equal(t, tokens.PressOpacity, bt.Visuals.StateLayerOpacity)
	assert.Equal(t, colors.Blend(s.Secondary.Container, s.Secondary.OnContainer, tokens.PressOpacity), bt.Visuals.Effective)
}

// TestThemeStateCommute checks that applying a theme change and a
// state change in either order gives the same visuals.
func TestThemeStateCommute(t *testing.T) {
	build := func() (*Host, []Themed) {
		h := NewHost(nil)
		ws := everyFamily(h)
		h.Frame(0)
		return h, ws
	}
	mutate := func(ws []Themed) {
		for i, w := range ws {
			switch i % 3 {
			case 0:
				w.AsBase().SetState(true, states.Hovered)
			case 1:
				w.AsBase().SetState(true, states.Selected)
			case 2:
				w.AsBase().SetEnabled(false)
			}
		}
	}

	ha, wa := build()
	mutate(wa)
	ha.Frame(0)
	ha.Theme.Toggle()
	ha.Frame(0)

	hb, wb := build()
	hb.Theme.Toggle()
	hb.Frame(0)
	mutate(wb)
	hb.Frame(0)

	hc, wc := build()
	mutate(wc)
	hc.Theme.Toggle()
	hc.Frame(0)

	for i := range wa {
		assert.Equal(t, wa[i].AsBase().Visuals, wb[i].AsBase().Visuals, "%T", wa[i])
		assert.Equal(t, wa[i].AsBase().Visuals, wc[i].AsBase().Visuals, "%T", wa[i])
	}
}

func TestFamilyGating(t *testing.T) {
	h := NewHost(nil)
	everyFamily(h)
	n := len(h.widgets)
	st := h.Frame(0)
	assert.Equal(t, n, st.StateRefreshed)
	assert.Equal(t, n, st.ThemeRefreshed)

	st = h.Frame(0)
	assert.Zero(t, st.StateRefreshed)
	assert.Zero(t, st.ThemeRefreshed)

	h.Theme.Toggle()
	st = h.Frame(0)
	assert.Zero(t, st.StateRefreshed)
	assert.Equal(t, n, st.ThemeRefreshed)

	b := h.Buttons.Widgets()[0]
	b.SetState(true, states.Focused)
	st = h.Frame(0)
	assert.Equal(t, 1, st.StateRefreshed)
	assert.Zero(t, st.ThemeRefreshed)
	assert.False(t, b.NeedsRefresh())

	// setting a state that is already set does not dirty the widget
	b.SetState(true, states.Focused)
	assert.False(t, b.NeedsRefresh())
}

func TestFamilyIdempotent(t *testing.T) {
	h := NewHost(nil)
	cb := h.NewCheckbox("A")
	cb.SetChecked(Checked)
	snap := h.Theme.Get()
	h.Checkboxes.OnStateChange(snap)
	first := cb.Visuals
	cb.MarkDirty()
	h.Checkboxes.OnStateChange(snap)
	assert.Equal(t, first, cb.Visuals)
	assert.Equal(t, Resolve(cb, &snap.Scheme), cb.Visuals)
}

func TestFamilySnapshot(t *testing.T) {
	h := NewHost(nil)
	h.NewButton(ButtonFilled, "A")
	h.NewButton(ButtonText, "B")
	h.Frame(0)
	snap := h.Buttons.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, h.Buttons.Widgets()[1].Visuals, snap[1])
	snap[0].Container = colors.Transparent
	assert.NotEqual(t, colors.Transparent, h.Buttons.Widgets()[0].Visuals.Container)
}

func TestCheckbox(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	cb := h.NewCheckbox("Agree")
	for _, c := range []CheckStates{Unchecked, Checked} {
		assert.Equal(t, c, c.Toggled().Toggled())
	}
	assert.Equal(t, Checked, Indeterminate.Toggled())
	assert.Equal(t, GlyphMinus, Indeterminate.Glyph())

	h.Frame(0)
	assert.True(t, cb.Visuals.Container.IsTransparent())
	assert.Equal(t, s.OnSurfaceVariant, cb.Visuals.Outline)

	cb.SetChecked(Indeterminate)
	h.Click(cb.ID)
	h.Frame(0)
	assert.Equal(t, Checked, cb.State)
	assert.Equal(t, s.Primary.Base, cb.Visuals.Container)
	assert.Equal(t, s.Primary.On, cb.Visuals.Icon)

	cb.SetState(true, states.Error)
	h.Frame(0)
	assert.Equal(t, s.Error.Base, cb.Visuals.Container)
	assert.Equal(t, s.Error.On, cb.Visuals.Icon)

	cb.SetEnabled(false)
	h.Frame(0)
	assert.Equal(t, s.Surface, cb.Visuals.Icon)
}

func TestSwitch(t *testing.T) {
	h := NewHost(nil)
	s := h.Theme.Scheme()
	sw := h.NewSwitch("Wi-Fi")
	h.Frame(0)
	assert.Equal(t, SwitchHandleOff, sw.HandleSize())
	assert.Equal(t, s.SurfaceContainerHighest, sw.Visuals.Container)
	assert.Equal(t, s.Outline, sw.Visuals.Indicator)

	h.Click(sw.ID)
	h.Frame(float32(tokens.Medium2))
	assert.True(t, sw.IsOn())
	assert.Equal(t, SwitchHandleOn, sw.HandleSize())
	assert.Equal(t, s.Primary.Base, sw.Visuals.Container)
	assert.Equal(t, s.Primary.On, sw.Visuals.Indicator)
	assert.InDelta(t, 1, sw.HandlePosition(), 1e-4)
}
