// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the events exchanged between the host and the
// widgets: input events sent to widgets, and the change events that
// widgets emit. Every event carries the [ID] of its source widget and
// a minimal typed payload.
package events

import (
	"fmt"

	"cogentcore.org/material/events/key"
)

// ID identifies a widget for the lifetime of its host.
// The zero ID is never assigned.
type ID uint64

// Event is the interface for all events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Source returns the widget the event is about.
	Source() ID

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as handled, which stops any
	// further listeners from being called.
	SetHandled()
}

// Base is the base type for events. It is a complete event by itself
// for types without a payload, such as [ButtonClick] and [DialogOpen].
type Base struct {

	// Typ is the type of event.
	Typ Types

	// Src is the widget the event is about.
	Src ID

	handled bool
}

// NewBase returns a payload-free event of the given type.
func NewBase(typ Types, src ID) *Base {
	return &Base{Typ: typ, Src: src}
}

func (ev *Base) Type() Types     { return ev.Typ }
func (ev *Base) Source() ID      { return ev.Src }
func (ev *Base) IsHandled() bool { return ev.handled }
func (ev *Base) SetHandled()     { ev.handled = true }

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Source: %d}", ev.Typ, ev.Src)
}

// Toggle is a [CheckboxChange] or [SwitchChange].
type Toggle struct {
	Base

	// Checked is the new on state.
	Checked bool

	// Indeterminate is set for a checkbox in the mixed state,
	// in which case Checked is false.
	Indeterminate bool
}

func (ev *Toggle) String() string {
	return fmt.Sprintf("%v{Source: %d, Checked: %v, Indeterminate: %v}", ev.Typ, ev.Src, ev.Checked, ev.Indeterminate)
}

// Radio is a [RadioChange].
type Radio struct {
	Base

	// Group is the group key of the radio.
	Group string

	// Selected is the new selection of the source radio.
	Selected bool
}

func (ev *Radio) String() string {
	return fmt.Sprintf("%v{Source: %d, Group: %q, Selected: %v}", ev.Typ, ev.Src, ev.Group, ev.Selected)
}

// Value is a [SliderChange].
type Value struct {
	Base

	// Value is the new value, snapped and clamped.
	Value float32
}

func (ev *Value) String() string {
	return fmt.Sprintf("%v{Source: %d, Value: %g}", ev.Typ, ev.Src, ev.Value)
}

// Choice is a [TabChange], [MenuItemSelect], [SelectChange],
// [ButtonGroupChange], [ActionClick] or [PickerSelect]. The source is
// the owning widget, and for an action the value is its icon.
type Choice struct {
	Base

	// Index is the index of the chosen item.
	Index int

	// Value is the label of the chosen item.
	Value string
}

func (ev *Choice) String() string {
	return fmt.Sprintf("%v{Source: %d, Index: %d, Value: %q}", ev.Typ, ev.Src, ev.Index, ev.Value)
}

// Text is a [TextFieldChange], [TextFieldSubmit] or [SearchQuery].
type Text struct {
	Base

	// Value is the complete text of the field.
	Value string
}

func (ev *Text) String() string {
	return fmt.Sprintf("%v{Source: %d, Value: %q}", ev.Typ, ev.Src, ev.Value)
}

// Pointer is a pointer input event. Positions are in logical pixels.
type Pointer struct {
	Base

	X, Y float32
}

func (ev *Pointer) String() string {
	return fmt.Sprintf("%v{Source: %d, Pos: (%g, %g)}", ev.Typ, ev.Src, ev.X, ev.Y)
}

// ScrollUnits are the units of a [Scroll] delta.
type ScrollUnits int32

const (
	ScrollLines ScrollUnits = iota
	ScrollPixels
)

// ScrollEvent is a [Scroll] input event.
type ScrollEvent struct {
	Base

	DeltaX, DeltaY float32

	Units ScrollUnits
}

// Key is a [KeyChord] input event.
type Key struct {
	Base

	// Code is the logical key.
	Code key.Codes

	// Text is the text typed, if any.
	Text string
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Source: %d, Code: %v, Text: %q}", ev.Typ, ev.Src, ev.Code, ev.Text)
}
