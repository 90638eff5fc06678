// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package states

// Abilities are the kinds of input a widget responds to. Input routing
// only sets a state on a widget that has the matching ability.
type Abilities int64

const (
	// Hoverable means it can be Hovered.
	Hoverable Abilities = iota

	// Activatable means it can be Pressed, which gives it a visible
	// state layer change. It implies Clickable.
	Activatable

	// Clickable means it receives click events without changing its
	// rendering while pressed.
	Clickable

	// Focusable means it can receive keyboard focus.
	Focusable

	// Checkable means clicking toggles its Selected state.
	Checkable

	// Slideable means it has a handle that can be Dragged to change value.
	Slideable
)

func (ab Abilities) mask() Abilities { return 1 << ab }

// Is returns whether the given ability is set.
func (ab Abilities) Is(flag Abilities) bool {
	return ab&flag.mask() != 0
}

// SetFlag sets or clears the given abilities.
func (ab *Abilities) SetFlag(on bool, flags ...Abilities) {
	for _, f := range flags {
		if on {
			*ab |= f.mask()
		} else {
			*ab &^= f.mask()
		}
	}
}

// AbilitiesOf returns an ability set with the given abilities.
func AbilitiesOf(flags ...Abilities) Abilities {
	var ab Abilities
	ab.SetFlag(true, flags...)
	return ab
}

// IsPressable returns whether any ability implies responding to presses.
func (ab Abilities) IsPressable() bool {
	return ab.Is(Activatable) || ab.Is(Clickable) || ab.Is(Checkable) || ab.Is(Slideable)
}

// CanSet returns whether input may set the given state on a widget with
// these abilities. Disabled, Selected and Error are set by the program
// and are always allowed.
func (ab Abilities) CanSet(st States) bool {
	switch st {
	case Hovered:
		return ab.Is(Hoverable)
	case Pressed:
		return ab.IsPressable()
	case Focused:
		return ab.Is(Focusable)
	case Dragged:
		return ab.Is(Slideable)
	}
	return true
}
