// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"cogentcore.org/material/colors"
	"cogentcore.org/material/events"
	"cogentcore.org/material/events/key"
	"cogentcore.org/material/grr"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/states"
	"cogentcore.org/material/tokens"
)

// TextFieldTypes are the styles of text fields.
type TextFieldTypes int32

const (
	// TextFieldFilled has a filled container and a bottom indicator line.
	TextFieldFilled TextFieldTypes = iota

	// TextFieldOutlined has a transparent container and an outline.
	TextFieldOutlined
)

// InputTypes are the kinds of value a text field accepts. All except
// Text, Password and Multiline are validated on every change.
type InputTypes int32

const (
	InputText InputTypes = iota
	InputPassword
	InputEmail
	InputNumber
	InputPhone
	InputURL
	InputMultiline

	InputTypesN
)

var inputTypesNames = [InputTypesN]string{"Text", "Password", "Email", "Number", "Phone", "URL", "Multiline"}

func (t InputTypes) String() string { return enumName(inputTypesNames[:], int(t)) }

// caretBlink is the time the caret stays in each blink phase, in seconds.
const caretBlink = 0.5

// TextField is an editable text input with a floating label, which is
// the widget [Base.Label]. Invalid input sets [states.Error] and
// ErrorText; the value is kept as typed.
type TextField struct {
	Base

	Type  TextFieldTypes
	Input InputTypes

	// Value is the current text.
	Value string

	// Placeholder is the hint shown in an empty focused field.
	Placeholder string

	// SupportingText is shown below the field when there is no error.
	SupportingText string

	// ErrorText is the validation message, set with [states.Error].
	ErrorText string

	// MaxLength limits the number of runes; 0 for no limit.
	MaxLength int

	// Validator replaces the validation of the input type when set.
	Validator func(value string) error

	// Caret is the rune index of the insertion point.
	Caret int

	// Resolved colors of the parts outside [Visuals].
	LabelColor, PlaceholderColor, SupportingColor colors.ARGB

	blink float32
}

// NewTextField adds a new empty text field to the host.
func (h *Host) NewTextField(typ TextFieldTypes, label string) *TextField {
	tf := &TextField{Type: typ}
	tf.Label.Text = label
	tf.Abilities = states.AbilitiesOf(states.Hoverable, states.Focusable, states.Clickable)
	return add(h, h.TextFields, tf)
}

// IsLabelFloating returns whether the label sits above the input:
// the field is focused or has a value.
func (tf *TextField) IsLabelFloating() bool {
	return tf.Is(states.Focused) || tf.Value != ""
}

// PlaceholderVisible returns whether the placeholder is shown: there is
// a label, it is floating, and the field is empty.
func (tf *TextField) PlaceholderVisible() bool {
	return tf.Text() != "" && tf.Value == "" && tf.IsLabelFloating()
}

// DisplayText returns the value as drawn, masked for passwords.
func (tf *TextField) DisplayText() string {
	if tf.Input == InputPassword {
		return strings.Repeat("•", utf8.RuneCountInString(tf.Value))
	}
	return tf.Value
}

// Counter returns the character counter text, empty without MaxLength.
func (tf *TextField) Counter() string {
	if tf.MaxLength <= 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", utf8.RuneCountInString(tf.Value), tf.MaxLength)
}

// CaretVisible returns the blink phase of the caret of a focused field.
func (tf *TextField) CaretVisible() bool {
	return tf.Is(states.Focused) && tf.blink < caretBlink
}

// SetValue replaces the value without sending an event, moving the
// caret to the end and validating.
func (tf *TextField) SetValue(v string) {
	tf.Value = v
	tf.Caret = utf8.RuneCountInString(v)
	tf.validate()
	tf.MarkDirty()
}

// Validate checks the value against the input type or Validator,
// returning a [grr.ParseError] for invalid input. An empty value is
// always valid.
func (tf *TextField) Validate() error {
	if tf.Value == "" {
		return nil
	}
	if tf.Validator != nil {
		return tf.Validator(tf.Value)
	}
	return validateInput(tf.Input, tf.Value)
}

func validateInput(in InputTypes, v string) error {
	switch in {
	case InputEmail:
		addr, err := mail.ParseAddress(v)
		if err != nil || addr.Address != v {
			return &grr.ParseError{Kind: "email", Input: v, Err: err}
		}
	case InputNumber:
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return &grr.ParseError{Kind: "number", Input: v, Err: errors.Unwrap(err)}
		}
	case InputPhone:
		digits := 0
		for _, r := range v {
			switch {
			case r >= '0' && r <= '9':
				digits++
			case strings.ContainsRune("+-(). ", r):
			default:
				return &grr.ParseError{Kind: "phone number", Input: v}
			}
		}
		if digits < 3 {
			return &grr.ParseError{Kind: "phone number", Input: v}
		}
	case InputURL:
		u, err := url.ParseRequestURI(v)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return &grr.ParseError{Kind: "URL", Input: v, Err: err}
		}
	}
	return nil
}

func (tf *TextField) validate() {
	err := tf.Validate()
	tf.SetState(err != nil, states.Error)
	tf.ErrorText = ""
	if err != nil {
		tf.ErrorText = err.Error()
	}
}

func (tf *TextField) edited() {
	tf.blink = 0
	tf.validate()
	tf.MarkDirty()
	tf.send(&events.Text{Base: events.Base{Typ: events.TextFieldChange, Src: tf.ID}, Value: tf.Value})
}

// insert inserts s at the caret, truncated to MaxLength.
func (tf *TextField) insert(s string) bool {
	rs := []rune(tf.Value)
	ins := []rune(s)
	if tf.MaxLength > 0 {
		room := tf.MaxLength - len(rs)
		if room <= 0 {
			return false
		}
		if len(ins) > room {
			ins = ins[:room]
		}
	}
	tf.Caret = min(max(tf.Caret, 0), len(rs))
	out := make([]rune, 0, len(rs)+len(ins))
	out = append(out, rs[:tf.Caret]...)
	out = append(out, ins...)
	out = append(out, rs[tf.Caret:]...)
	tf.Value = string(out)
	tf.Caret += len(ins)
	return true
}

func (tf *TextField) deleteAt(i int) bool {
	rs := []rune(tf.Value)
	if i < 0 || i >= len(rs) {
		return false
	}
	tf.Value = string(append(rs[:i:i], rs[i+1:]...))
	tf.Caret = i
	return true
}

func (tf *TextField) handleKey(code key.Codes, text string) bool {
	n := utf8.RuneCountInString(tf.Value)
	tf.Caret = min(max(tf.Caret, 0), n)
	switch {
	case code.IsEnter():
		if tf.Input == InputMultiline {
			if tf.insert("\n") {
				tf.edited()
			}
			return true
		}
		tf.send(&events.Text{Base: events.Base{Typ: events.TextFieldSubmit, Src: tf.ID}, Value: tf.Value})
	case code == key.CodeBackspace:
		if tf.deleteAt(tf.Caret - 1) {
			tf.edited()
		}
	case code == key.CodeDelete:
		if tf.deleteAt(tf.Caret) {
			tf.Caret = min(tf.Caret, utf8.RuneCountInString(tf.Value))
			tf.edited()
		}
	case code == key.CodeLeftArrow:
		tf.Caret = max(0, tf.Caret-1)
	case code == key.CodeRightArrow:
		tf.Caret = min(n, tf.Caret+1)
	case code == key.CodeHome:
		tf.Caret = 0
	case code == key.CodeEnd:
		tf.Caret = n
	case text != "" && code != key.CodeTab && code != key.CodeEscape:
		if tf.insert(text) {
			tf.edited()
		}
	default:
		return false
	}
	tf.blink = 0
	return true
}

// click focuses the field.
func (tf *TextField) click() {
	if tf.host != nil {
		tf.host.setFocus(tf.ID)
	}
}

func (tf *TextField) animate(dt float32) {
	if !tf.Is(states.Focused) {
		tf.blink = 0
		return
	}
	tf.blink += dt
	for tf.blink >= 2*caretBlink {
		tf.blink -= 2 * caretBlink
	}
}

func (tf *TextField) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	if tf.Type == TextFieldFilled {
		return s.SurfaceContainerHighest
	}
	return colors.Transparent
}

// OutlineColor is the bottom indicator of a filled field or the border
// of an outlined one.
func (tf *TextField) OutlineColor(s *matcolor.Scheme) colors.ARGB {
	return fieldAccent(&tf.Base, s, tf.Is(states.Focused))
}

func (tf *TextField) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (tf *TextField) IconColor(s *matcolor.Scheme) colors.ARGB {
	if tf.Is(states.Error) {
		return s.Error.Base
	}
	return s.OnSurfaceVariant
}

func (tf *TextField) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

// StateLayerOpacity is the hover layer of a filled field; focus is shown
// by the indicator instead.
func (tf *TextField) StateLayerOpacity() float64 {
	return fieldStateLayer(&tf.Base, tf.Type)
}

func (tf *TextField) styleDisabled(s *matcolor.Scheme, v *Visuals) {
	styleFieldDisabled(s, v, tf.Type)
}

func (tf *TextField) resolveParts(s *matcolor.Scheme) {
	tf.LabelColor = tf.OutlineColor(s)
	tf.PlaceholderColor = s.OnSurfaceVariant
	tf.SupportingColor = s.OnSurfaceVariant
	if tf.Is(states.Error) {
		tf.SupportingColor = s.Error.Base
	}
	if tf.IsDisabled() {
		tf.LabelColor = tf.Visuals.Content
		tf.PlaceholderColor = tf.Visuals.Content
		tf.SupportingColor = tf.Visuals.Content
	}
}

// fieldAccent is the label and indicator color of text fields and
// selects: error, then primary when active, then on_surface_variant.
func fieldAccent(b *Base, s *matcolor.Scheme, active bool) colors.ARGB {
	switch {
	case b.Is(states.Error):
		return s.Error.Base
	case active:
		return s.Primary.Base
	}
	return s.OnSurfaceVariant
}

func fieldStateLayer(b *Base, typ TextFieldTypes) float64 {
	if typ == TextFieldFilled && b.Is(states.Hovered) && !b.IsDisabled() {
		return tokens.HoverOpacity
	}
	return 0
}

func styleFieldDisabled(s *matcolor.Scheme, v *Visuals, typ TextFieldTypes) {
	if typ == TextFieldFilled {
		v.Container = s.OnSurface.WithAlpha(tokens.DisabledFieldOpacity)
	}
	v.Outline = s.OnSurface.WithAlpha(tokens.DisabledContentOpacity)
}
