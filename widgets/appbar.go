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

// AppBarTypes are the variants of app bars.
type AppBarTypes int32

const (
	AppBarSmall AppBarTypes = iota
	AppBarCenterAligned

	// AppBarMedium and AppBarLarge collapse to the small height as
	// the content scrolls.
	AppBarMedium
	AppBarLarge

	// AppBarBottom sits at the bottom of the window and holds actions.
	AppBarBottom

	AppBarTypesN
)

var appBarTypesNames = [AppBarTypesN]string{"Small", "CenterAligned", "Medium", "Large", "Bottom"}

func (t AppBarTypes) String() string { return enumName(appBarTypesNames[:], int(t)) }

const (
	// appBarCollapseDistance is the scroll offset in dp at which a
	// medium or large app bar is fully collapsed.
	appBarCollapseDistance = 100

	smallBarHeight = 64
)

var appBarHeights = [AppBarTypesN]float32{smallBarHeight, smallBarHeight, 112, 152, 80}

// AppBar is a top or bottom app bar. The title is the widget label.
type AppBar struct {
	Base

	Type AppBarTypes

	// Elevated is set while content is scrolled under the bar, which
	// then uses a container color.
	Elevated bool

	// ScrollOffset is the scroll position of the content under the
	// bar, in dp.
	ScrollOffset float32

	// Navigation is the leading icon, or nil.
	Navigation *BarAction

	Actions []*BarAction
}

// Toolbar is a fixed height bar of icons with an optional title,
// used inside content rather than at the top of a window.
type Toolbar struct {
	Base

	Navigation *BarAction

	Actions []*BarAction
}

// BarAction is an icon button in an [AppBar], [Toolbar] or [Search].
type BarAction struct {
	Base

	// Icon is the name of the icon.
	Icon string

	// Index is the position in the owner's actions, or -1 for the
	// navigation icon.
	Index int

	owner *Base
}

// NewAppBar adds a new app bar with the given title to the host.
func (h *Host) NewAppBar(typ AppBarTypes, title string) *AppBar {
	ab := &AppBar{Type: typ}
	ab.Label.Text = title
	return add(h, h.AppBars, ab)
}

// NewToolbar adds a new toolbar with the given title to the host.
func (h *Host) NewToolbar(title string) *Toolbar {
	tb := &Toolbar{}
	tb.Label.Text = title
	return add(h, h.Toolbars, tb)
}

func newBarAction(owner *Base, icon string, index int) *BarAction {
	ba := &BarAction{Icon: icon, Index: index, owner: owner}
	ba.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable)
	if owner.host != nil {
		add(owner.host, owner.host.BarActions, ba)
	}
	return ba
}

// SetNavigation sets the leading navigation icon.
func (ab *AppBar) SetNavigation(icon string) *BarAction {
	ab.Navigation = newBarAction(&ab.Base, icon, -1)
	return ab.Navigation
}

// AddAction appends a trailing action icon.
func (ab *AppBar) AddAction(icon string) *BarAction {
	ba := newBarAction(&ab.Base, icon, len(ab.Actions))
	ab.Actions = append(ab.Actions, ba)
	return ba
}

// SetScroll sets the scroll offset and elevation of the content under
// the bar.
func (ab *AppBar) SetScroll(offset float32) {
	ab.ScrollOffset = max(offset, 0)
	ab.Elevated = ab.ScrollOffset > 0
	ab.MarkDirty()
}

// Collapsed returns how far a medium or large bar has collapsed
// toward the small height, from 0 to 1.
func (ab *AppBar) Collapsed() float32 {
	if ab.Type != AppBarMedium && ab.Type != AppBarLarge {
		return 0
	}
	return min(max(ab.ScrollOffset/appBarCollapseDistance, 0), 1)
}

// Height returns the current height of the bar in dp.
func (ab *AppBar) Height() float32 {
	full := appBarHeights[min(max(ab.Type, 0), AppBarTypesN-1)]
	return full - ab.Collapsed()*(full-smallBarHeight)
}

func (ab *AppBar) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	switch {
	case ab.Elevated:
		return s.SurfaceContainer
	case ab.Type == AppBarBottom:
		return s.SurfaceContainerLow
	}
	return s.Surface
}

func (ab *AppBar) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (ab *AppBar) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (ab *AppBar) StateLayerOpacity() float64 { return 0 }

// SetNavigation sets the leading navigation icon.
func (tb *Toolbar) SetNavigation(icon string) *BarAction {
	tb.Navigation = newBarAction(&tb.Base, icon, -1)
	return tb.Navigation
}

// AddAction appends a trailing action icon.
func (tb *Toolbar) AddAction(icon string) *BarAction {
	ba := newBarAction(&tb.Base, icon, len(tb.Actions))
	tb.Actions = append(tb.Actions, ba)
	return ba
}

// Height returns the height of the toolbar in dp.
func (tb *Toolbar) Height() float32 { return smallBarHeight }

func (tb *Toolbar) ContainerColor(s *matcolor.Scheme) colors.ARGB { return s.Surface }

func (tb *Toolbar) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (tb *Toolbar) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (tb *Toolbar) StateLayerOpacity() float64 { return 0 }

// IsNavigation returns whether this is the leading navigation icon.
func (ba *BarAction) IsNavigation() bool { return ba.Index < 0 }

// ContainerColor is the highest surface container while hovered.
func (ba *BarAction) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	if ba.Is(states.Hovered) {
		return s.SurfaceContainerHighest
	}
	return colors.Transparent
}

func (ba *BarAction) ContentColor(s *matcolor.Scheme) colors.ARGB {
	if ba.IsNavigation() {
		return s.OnSurface
	}
	return s.OnSurfaceVariant
}

func (ba *BarAction) StateLayerColor(s *matcolor.Scheme) colors.ARGB {
	return ba.ContentColor(s)
}

// click sends the event from the owning bar, so that listeners on the
// bar see every icon.
func (ba *BarAction) click() {
	if ba.owner == nil {
		return
	}
	if ba.IsNavigation() {
		ba.owner.sendBase(events.NavigationClick)
		return
	}
	ba.owner.send(&events.Choice{Base: events.Base{Typ: events.ActionClick, Src: ba.owner.ID}, Index: ba.Index, Value: ba.Icon})
}
