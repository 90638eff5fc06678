// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"slices"

	"cogentcore.org/material/events"
	"cogentcore.org/material/theme"
)

// Family holds all widgets of one kind and runs their two refresh
// passes. Both passes are idempotent, and running them in either order
// with the same snapshot yields the same visuals.
type Family[W Themed] struct {

	// Name is the family name, used in logs.
	Name string

	widgets []W
	tracker theme.Tracker
}

// NewFamily returns an empty family with the given name.
func NewFamily[W Themed](name string) *Family[W] {
	return &Family[W]{Name: name}
}

// Add adds a widget, scheduling it for the next state refresh.
func (f *Family[W]) Add(w W) W {
	w.AsBase().dirty = true
	f.widgets = append(f.widgets, w)
	return w
}

// Widgets returns the widgets in the order they were added.
func (f *Family[W]) Widgets() []W { return f.widgets }

// Len returns the number of widgets.
func (f *Family[W]) Len() int { return len(f.widgets) }

// OnStateChange resolves the widgets that changed since their last
// refresh and returns how many it resolved.
func (f *Family[W]) OnStateChange(snap *theme.Snapshot) int {
	n := 0
	for _, w := range f.widgets {
		if !w.AsBase().dirty {
			continue
		}
		refresh(w, snap)
		n++
	}
	return n
}

// OnThemeChange resolves every widget if the theme revision differs
// from the one seen on the last call, and returns how many it resolved.
func (f *Family[W]) OnThemeChange(snap *theme.Snapshot) int {
	if f.tracker.Last() == snap.Revision {
		return 0
	}
	f.tracker.Mark(snap.Revision)
	for _, w := range f.widgets {
		refresh(w, snap)
	}
	return len(f.widgets)
}

func refresh(w Themed, snap *theme.Snapshot) {
	b := w.AsBase()
	b.Visuals = Resolve(w, &snap.Scheme)
	if pr, ok := w.(partsResolver); ok {
		pr.resolveParts(&snap.Scheme)
	}
	b.dirty = false
}

// Snapshot returns a copy of the resolved visuals of every widget,
// safe to hand to a renderer on another goroutine.
func (f *Family[W]) Snapshot() []Visuals {
	out := make([]Visuals, len(f.widgets))
	for i, w := range f.widgets {
		out[i] = w.AsBase().Visuals
	}
	return out
}

func (f *Family[W]) name() string { return f.Name }

func (f *Family[W]) each(fun func(w Themed)) {
	for _, w := range f.widgets {
		fun(w)
	}
}

func (f *Family[W]) remove(id events.ID) bool {
	i := slices.IndexFunc(f.widgets, func(w W) bool { return w.AsBase().ID == id })
	if i < 0 {
		return false
	}
	f.widgets = slices.Delete(f.widgets, i, i+1)
	return true
}

// refresher is the part of a [Family] the [Host] drives, independent
// of the widget type.
type refresher interface {
	name() string
	OnStateChange(snap *theme.Snapshot) int
	OnThemeChange(snap *theme.Snapshot) int
	each(fun func(w Themed))
	remove(id events.ID) bool
}
