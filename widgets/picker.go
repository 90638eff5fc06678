// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/material/colors"
	"cogentcore.org/material/events"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/states"
	"cogentcore.org/material/tokens"
)

// rangeOpacity is the alpha of the container of days between the
// start and end of a selected date range.
const rangeOpacity = 0.3

// DayCell is one day of a date picker month grid. The label is the day
// number. Calendar arithmetic is done by the caller, which sets the
// flags below and selects cells in response to [events.PickerSelect].
type DayCell struct {
	Base

	// Day is the day of the month.
	Day int

	// Today marks the current date.
	Today bool

	// InRange marks a day inside a selected range, excluding its ends.
	InRange bool

	// Invalid marks a day outside the allowed dates. It cannot be
	// picked.
	Invalid bool
}

// TimeCellTypes are the parts of a time picker.
type TimeCellTypes int32

const (
	// TimeCellMode is the chip switching between hour and minute input.
	TimeCellMode TimeCellTypes = iota

	// TimeCellPeriod is the AM or PM toggle.
	TimeCellPeriod

	// TimeCellNumber is a number on the clock dial.
	TimeCellNumber

	// TimeCellFace is the clock dial behind the numbers.
	TimeCellFace

	TimeCellTypesN
)

var timeCellTypesNames = [TimeCellTypesN]string{"Mode", "Period", "Number", "Face"}

func (t TimeCellTypes) String() string { return enumName(timeCellTypesNames[:], int(t)) }

// TimeCell is one part of a time picker; selected parts are the active
// mode, period and dial number.
type TimeCell struct {
	Base

	Type TimeCellTypes

	// Value is the number or period index the cell stands for.
	Value int
}

// NewDayCell adds a new day cell to the host.
func (h *Host) NewDayCell(day int, label string) *DayCell {
	dc := &DayCell{Day: day}
	dc.Label.Text = label
	dc.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable)
	return add(h, h.DayCells, dc)
}

// NewTimeCell adds a new time picker cell to the host.
func (h *Host) NewTimeCell(typ TimeCellTypes, value int, label string) *TimeCell {
	tc := &TimeCell{Type: typ, Value: value}
	tc.Label.Text = label
	if typ != TimeCellFace {
		tc.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable)
	}
	return add(h, h.TimeCells, tc)
}

// SetSelected sets whether the day is picked.
func (dc *DayCell) SetSelected(on bool) { dc.SetState(on, states.Selected) }

// SetFlags sets the today, in range and invalid flags.
func (dc *DayCell) SetFlags(today, inRange, invalid bool) {
	dc.Today, dc.InRange, dc.Invalid = today, inRange, invalid
	dc.MarkDirty()
}

// ContainerColor is decided by the first matching flag, from invalid
// to today.
func (dc *DayCell) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	switch {
	case dc.Invalid:
		return colors.Transparent
	case dc.Is(states.Selected):
		return s.Primary.Base
	case dc.InRange:
		return s.Primary.Container.WithAlpha(rangeOpacity)
	case dc.Today:
		return s.Primary.Container
	}
	return colors.Transparent
}

func (dc *DayCell) ContentColor(s *matcolor.Scheme) colors.ARGB {
	switch {
	case dc.Invalid:
		return s.OnSurface.WithAlpha(tokens.DisabledContentOpacity)
	case dc.Is(states.Selected):
		return s.Primary.On
	case dc.InRange:
		return s.OnSurface
	case dc.Today:
		return s.Primary.OnContainer
	}
	return s.OnSurface
}

func (dc *DayCell) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return dc.ContentColor(s) }

func (dc *DayCell) StateLayerOpacity() float64 {
	if dc.Invalid {
		return 0
	}
	return dc.Base.StateLayerOpacity()
}

func (dc *DayCell) click() {
	if dc.Invalid {
		return
	}
	dc.send(&events.Choice{Base: events.Base{Typ: events.PickerSelect, Src: dc.ID}, Index: dc.Day, Value: dc.Text()})
}

// SetSelected sets whether the cell is the active one of its kind.
func (tc *TimeCell) SetSelected(on bool) { tc.SetState(on, states.Selected) }

func (tc *TimeCell) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	switch {
	case tc.Type == TimeCellFace:
		return s.SurfaceContainer
	case !tc.Is(states.Selected):
		return colors.Transparent
	case tc.Type == TimeCellMode:
		return s.Primary.Container
	}
	return s.Primary.Base
}

func (tc *TimeCell) ContentColor(s *matcolor.Scheme) colors.ARGB {
	switch {
	case tc.Type == TimeCellFace || !tc.Is(states.Selected):
		return s.OnSurface
	case tc.Type == TimeCellMode:
		return s.Primary.OnContainer
	}
	return s.Primary.On
}

func (tc *TimeCell) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return tc.ContentColor(s) }

func (tc *TimeCell) click() {
	tc.send(&events.Choice{Base: events.Base{Typ: events.PickerSelect, Src: tc.ID}, Index: tc.Value, Value: tc.Text()})
}
