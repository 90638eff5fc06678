// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package states defines the state vector shared by every themable
// widget, the abilities that gate which states input can set, and the
// single interaction level derived from them for state layers.
package states

import "strings"

// States are the interaction and status states of a widget that are
// relevant for resolving its colors. It is a bit flag set indexed by
// the constants below.
type States int64

const (
	// Disabled widgets cannot be interacted with. It overrides all other
	// states when resolving colors.
	Disabled States = iota

	// Hovered indicates that a pointer is over the widget.
	Hovered

	// Pressed indicates that a pointer is held down on the widget.
	Pressed

	// Focused widgets receive keyboard input.
	Focused

	// Selected is the persistent on state of toggleable widgets
	// (checked, selected tab, selected chip, on switch).
	Selected

	// Error indicates that the widget has invalid input, typically
	// set by validation.
	Error

	// Dragged indicates that the widget is being dragged, such as
	// a slider handle.
	Dragged

	statesN
)

var statesNames = [...]string{"Disabled", "Hovered", "Pressed", "Focused", "Selected", "Error", "Dragged"}

// StatesValues returns all individual state flags.
func StatesValues() []States {
	return []States{Disabled, Hovered, Pressed, Focused, Selected, Error, Dragged}
}

func (s States) mask() States { return 1 << s }

// Is returns whether the given flag is set.
func (s States) Is(flag States) bool {
	return s&flag.mask() != 0
}

// HasFlag is the same as [States.Is].
func (s States) HasFlag(flag States) bool { return s.Is(flag) }

// SetFlag sets or clears the given flags.
func (s *States) SetFlag(on bool, flags ...States) {
	for _, f := range flags {
		if on {
			*s |= f.mask()
		} else {
			*s &^= f.mask()
		}
	}
}

// With returns a copy with the given flags set or cleared.
func (s States) With(on bool, flags ...States) States {
	s.SetFlag(on, flags...)
	return s
}

// Of returns a state vector with the given flags set.
func Of(flags ...States) States {
	var s States
	s.SetFlag(true, flags...)
	return s
}

// String returns the names of the set flags joined by "|".
// It is meant for state vectors; a single flag constant
// should be wrapped with [Of] first.
func (s States) String() string {
	var names []string
	for i, nm := range statesNames {
		if s.Is(States(i)) {
			names = append(names, nm)
		}
	}
	return strings.Join(names, "|")
}

// Interaction returns the highest priority interaction level of
// the state vector, which selects the state layer opacity.
// Disabled wins over everything, and pressing wins over focus
// and hover.
func (s States) Interaction() Interaction {
	switch {
	case s.Is(Disabled):
		return InteractionDisabled
	case s.Is(Dragged):
		return Drag
	case s.Is(Pressed):
		return Press
	case s.Is(Focused):
		return Focus
	case s.Is(Hovered):
		return Hover
	}
	return Rest
}
