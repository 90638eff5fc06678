// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widgets implements the theming contract of the Material
// widget families. Each widget holds a [states.States] vector and
// resolves its [Visuals] from the active color scheme through the
// [Themed] interface, in two refresh passes per frame run by a [Host]:
// one for widgets whose state changed, and one for every widget when
// the theme revision changed.
//
// Geometry, text shaping and rendering belong to the host; widgets
// only expose the colors, elevations and values the renderer reads.
package widgets

import (
	"cogentcore.org/material/colors"
	"cogentcore.org/material/events"
	"cogentcore.org/material/i18n"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/states"
	"cogentcore.org/material/tokens"
)

// Visuals are the resolved presentation properties of a widget, as
// read by the renderer after the refresh passes of a frame.
type Visuals struct {

	// Container is the fill behind the widget, before the state layer.
	Container colors.ARGB

	// Outline is the border or indicator line; transparent for none.
	Outline colors.ARGB

	// Content is the label text and primary foreground.
	Content colors.ARGB

	// Icon is the color of glyphs, such as a checkbox check or a
	// leading icon. It equals Content unless the family styles it.
	Icon colors.ARGB

	// Indicator is the color of a secondary moving part, such as a
	// switch handle, a slider active track or a selected tab line.
	Indicator colors.ARGB

	// StateLayer is the overlay color for the current interaction.
	StateLayer colors.ARGB

	// StateLayerOpacity is the opacity of the state layer.
	StateLayerOpacity float64

	// Elevation is the shadow level.
	Elevation tokens.ElevationLevel

	// Effective is Container with the state layer composed over it.
	Effective colors.ARGB
}

// Themed is implemented by every widget family. The color methods
// return the enabled color for the current state: the disabled rules
// are applied by [Resolve] on top of them.
type Themed interface {
	AsBase() *Base
	ContainerColor(s *matcolor.Scheme) colors.ARGB
	OutlineColor(s *matcolor.Scheme) colors.ARGB
	ContentColor(s *matcolor.Scheme) colors.ARGB
	StateLayerColor(s *matcolor.Scheme) colors.ARGB
	StateLayerOpacity() float64
	Elevation() tokens.ElevationLevel
}

// iconColorer is implemented by families whose glyphs differ from
// their content color.
type iconColorer interface {
	IconColor(s *matcolor.Scheme) colors.ARGB
}

// indicatorColorer is implemented by families with an indicator part.
type indicatorColorer interface {
	IndicatorColor(s *matcolor.Scheme) colors.ARGB
}

// partsResolver is implemented by families with colors beyond
// [Visuals], such as a text field label. It runs after [Resolve].
type partsResolver interface {
	resolveParts(s *matcolor.Scheme)
}

// disabledStyler is implemented by families whose disabled appearance
// differs from the generic rules for their container, outline, icon or
// indicator. Content is not theirs to change.
type disabledStyler interface {
	styleDisabled(s *matcolor.Scheme, v *Visuals)
}

// Base is the state shared by all widgets. Widget families embed it,
// which also gives them the default [Themed.StateLayerOpacity],
// [Themed.Elevation] and [Themed.OutlineColor].
type Base struct {

	// ID is assigned when the widget is added to a [Host].
	ID events.ID

	// Label is the widget's text, optionally bound to a translation key.
	Label i18n.Localized

	// States is the state vector. Change it with [Base.SetState] so that
	// the widget is refreshed.
	States states.States

	// Abilities gate which states input may set.
	Abilities states.Abilities

	// Visuals are the resolved properties. They are written only by the
	// refresh passes.
	Visuals Visuals

	// Listeners receive the events this widget emits, before the host
	// listeners do.
	Listeners events.Listeners

	host  *Host
	dirty bool
}

func (b *Base) AsBase() *Base { return b }

// Is returns whether the given state is set.
func (b *Base) Is(st states.States) bool { return b.States.Is(st) }

// SetState sets or clears the given states, marking the widget for
// the next state refresh if anything changed.
func (b *Base) SetState(on bool, sts ...states.States) {
	old := b.States
	b.States.SetFlag(on, sts...)
	if b.States != old {
		b.dirty = true
	}
}

// SetEnabled is the inverse of setting [states.Disabled].
// Disabling also clears transient interaction states, since disabled
// is absorbing.
func (b *Base) SetEnabled(on bool) {
	if !on {
		b.SetState(false, states.Hovered, states.Pressed, states.Dragged, states.Focused)
	}
	b.SetState(!on, states.Disabled)
}

// IsDisabled returns whether the widget is disabled.
func (b *Base) IsDisabled() bool { return b.Is(states.Disabled) }

// SetText sets a literal label, removing any translation key.
func (b *Base) SetText(text string) {
	b.Label = i18n.Localized{Text: text}
	b.dirty = true
}

// SetTextKey binds the label to a translation key. The default is
// shown until the key resolves.
func (b *Base) SetTextKey(key, def string) {
	b.Label = i18n.Localized{Key: key, Text: def}
	b.dirty = true
}

// Text returns the current label text.
func (b *Base) Text() string { return b.Label.Text }

// NeedsRefresh returns whether the widget changed since its last refresh.
func (b *Base) NeedsRefresh() bool { return b.dirty }

// MarkDirty schedules the widget for the next state refresh.
func (b *Base) MarkDirty() { b.dirty = true }

// On adds a listener for events of the given type emitted by this widget.
func (b *Base) On(typ events.Types, fun func(events.Event)) {
	b.Listeners.Add(typ, fun)
}

// OnClick adds a listener for [events.ButtonClick].
func (b *Base) OnClick(fun func(events.Event)) { b.On(events.ButtonClick, fun) }

// send queues ev for publication at the end of the frame.
func (b *Base) send(ev events.Event) {
	if b.host != nil {
		b.host.emit(b, ev)
	}
}

func (b *Base) sendBase(typ events.Types) {
	b.send(events.NewBase(typ, b.ID))
}

// StateLayerOpacity returns the opacity for the current interaction.
func (b *Base) StateLayerOpacity() float64 {
	return colors.StateLayerOpacity(b.States.Interaction())
}

func (b *Base) Elevation() tokens.ElevationLevel { return tokens.Level0 }

func (b *Base) OutlineColor(s *matcolor.Scheme) colors.ARGB { return colors.Transparent }

// Resolve computes the visuals of w from its current state in the given
// scheme, applying the shared rules: a disabled widget gets an
// on_surface container at 0.12 (none if its enabled container is
// transparent), on_surface content at 0.38, no elevation and no state
// layer; the effective container is the state layer blended over the
// container.
func Resolve(w Themed, s *matcolor.Scheme) Visuals {
	v := Visuals{
		Container:         w.ContainerColor(s),
		Outline:           w.OutlineColor(s),
		Content:           w.ContentColor(s),
		StateLayer:        w.StateLayerColor(s),
		StateLayerOpacity: w.StateLayerOpacity(),
		Elevation:         w.Elevation(),
	}
	v.Icon = v.Content
	if ic, ok := w.(iconColorer); ok {
		v.Icon = ic.IconColor(s)
	}
	if ind, ok := w.(indicatorColorer); ok {
		v.Indicator = ind.IndicatorColor(s)
	}
	if w.AsBase().IsDisabled() {
		disable(s, &v)
		if ds, ok := w.(disabledStyler); ok {
			ds.styleDisabled(s, &v)
		}
	}
	v.Effective = colors.Blend(v.Container, v.StateLayer, v.StateLayerOpacity)
	return v
}

func disable(s *matcolor.Scheme, v *Visuals) {
	content := s.OnSurface.WithAlpha(tokens.DisabledContentOpacity)
	if !v.Container.IsTransparent() {
		v.Container = s.OnSurface.WithAlpha(tokens.DisabledContainerOpacity)
	}
	if !v.Outline.IsTransparent() {
		v.Outline = s.OnSurface.WithAlpha(tokens.DisabledContainerOpacity)
	}
	if !v.Indicator.IsTransparent() {
		v.Indicator = content
	}
	v.Content = content
	v.Icon = content
	v.Elevation = tokens.Level0
	v.StateLayerOpacity = 0
}

// selectedOr returns primary for selected widgets and c otherwise.
func selectedOr(b *Base, s *matcolor.Scheme, c colors.ARGB) colors.ARGB {
	if b.Is(states.Selected) {
		return s.Primary.Base
	}
	return c
}
