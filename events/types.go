// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"strings"

	"cogentcore.org/material/grr"
)

// Types determines the type of an event, and also the level at which
// one can select which events to listen to. The input types are sent
// by the host to widgets; the widget types are emitted by widgets and
// published to listeners at the end of each frame.
type Types int64

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// PointerEnter is when the pointer enters the box of a widget.
	PointerEnter

	// PointerLeave is when the pointer leaves the box of a widget
	// that previously got PointerEnter.
	PointerLeave

	// PointerDown is when a pointer button is pressed on a widget.
	PointerDown

	// PointerUp is when a pointer button is released.
	PointerUp

	// PointerDrag is a pointer move with a button held down.
	// Positions are in logical pixels.
	PointerDrag

	// Scroll is a wheel or gesture scroll.
	Scroll

	// KeyChord is a key press with its logical code and text payload.
	KeyChord

	// FocusGained is when a widget receives keyboard focus.
	FocusGained

	// FocusLost is when a widget loses keyboard focus.
	FocusLost

	// ButtonClick is a completed click on a button, icon button,
	// FAB, chip or clickable card.
	ButtonClick

	// CheckboxChange is a change of a checkbox state.
	CheckboxChange

	// SwitchChange is a change of a switch.
	SwitchChange

	// RadioChange is sent when a radio becomes the selected
	// member of its group.
	RadioChange

	// SliderChange is a change of a slider value.
	SliderChange

	// TabChange is a change of the selected tab.
	TabChange

	// TextFieldChange is sent on every edit of a text field, with the
	// complete new value.
	TextFieldChange

	// TextFieldSubmit is sent when Enter is pressed in a single line
	// text field.
	TextFieldSubmit

	DialogOpen
	DialogClose
	DialogConfirm

	MenuOpen
	MenuClose
	MenuItemSelect

	// ListItemClick is a click on a list item.
	ListItemClick

	// SelectChange is a new choice in a select.
	SelectChange

	SnackbarShow
	SnackbarAction

	// SnackbarDismiss is sent when a snackbar is dismissed, either
	// by timeout or explicitly.
	SnackbarDismiss

	// ButtonGroupChange is sent by a button group when a click changed
	// which of its buttons are checked.
	ButtonGroupChange

	// NavigationClick is a click on the navigation icon of an app bar,
	// toolbar or search bar.
	NavigationClick

	// ActionClick is a click on a trailing action icon of an app bar,
	// toolbar or search bar.
	ActionClick

	SearchClick
	SearchQuery

	// PickerSelect is a click on a date or time picker cell.
	PickerSelect

	TypesN
)

var typesNames = [TypesN]string{
	"UnknownType", "PointerEnter", "PointerLeave", "PointerDown", "PointerUp",
	"PointerDrag", "Scroll", "KeyChord", "FocusGained", "FocusLost",
	"ButtonClick", "CheckboxChange", "SwitchChange", "RadioChange",
	"SliderChange", "TabChange", "TextFieldChange", "TextFieldSubmit",
	"DialogOpen", "DialogClose", "DialogConfirm",
	"MenuOpen", "MenuClose", "MenuItemSelect",
	"ListItemClick", "SelectChange",
	"SnackbarShow", "SnackbarAction", "SnackbarDismiss",
	"ButtonGroupChange", "NavigationClick", "ActionClick",
	"SearchClick", "SearchQuery", "PickerSelect",
}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "UnknownType"
	}
	return typesNames[tp]
}

// TypesString returns the type with the given name, ignoring case.
func TypesString(s string) (Types, error) {
	for i, nm := range typesNames {
		if strings.EqualFold(nm, s) {
			return Types(i), nil
		}
	}
	return UnknownType, &grr.ParseError{Kind: "event type", Input: s}
}

// TypesValues returns all event types except [UnknownType].
func TypesValues() []Types {
	vals := make([]Types, 0, TypesN-1)
	for tp := PointerEnter; tp < TypesN; tp++ {
		vals = append(vals, tp)
	}
	return vals
}

// IsInput returns whether the type is sent by the host rather than
// emitted by a widget.
func (tp Types) IsInput() bool {
	return tp > UnknownType && tp < ButtonClick
}

func (tp Types) MarshalText() ([]byte, error) { return []byte(tp.String()), nil }

func (tp *Types) UnmarshalText(text []byte) error {
	v, err := TypesString(string(text))
	if err != nil {
		return err
	}
	*tp = v
	return nil
}
