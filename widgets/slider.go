// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"strconv"

	"cogentcore.org/material/colors"
	"cogentcore.org/material/events"
	"cogentcore.org/material/events/key"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/states"
	"github.com/chewxy/math32"
)

// Point is a position in pixels.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned box in pixels, from its top-left corner.
type Rect struct {
	X, Y, W, H float32
}

// Directions are the ends of a track that values increase from.
// For vertical sliders the start is the top.
type Directions int32

const (
	StartToEnd Directions = iota
	EndToStart
)

// Slider selects a value in [Min, Max] by dragging a handle along a
// track. The inactive track is the container, and the active track
// and handle are the indicator. Ticks use the icon color on the
// active track and InactiveTickColor elsewhere.
type Slider struct {
	Base

	Min, Max float32

	// Value is always within [Min, Max] and, if Step > 0, a whole
	// number of steps above Min.
	Value float32

	// Step is the snapping interval; 0 for continuous values.
	Step float32

	Orientation Orientations
	Direction   Directions

	// ShowTicks draws a tick at every step.
	ShowTicks bool

	// Format formats the value label; the default rounds to an integer.
	Format func(v float32) string

	// InactiveTickColor is resolved with the visuals.
	InactiveTickColor colors.ARGB

	// LabelColor and LabelTextColor are the value label bubble colors.
	LabelColor, LabelTextColor colors.ARGB
}

// NewSlider adds a new horizontal slider at min to the host.
func (h *Host) NewSlider(min, max, step float32) *Slider {
	sl := &Slider{Min: min, Max: max, Value: min, Step: step}
	sl.Abilities = states.AbilitiesOf(states.Hoverable, states.Focusable, states.Slideable)
	return add(h, h.Sliders, sl)
}

// snap rounds v to the nearest step above Min and clamps it.
func (sl *Slider) snap(v float32) float32 {
	if sl.Step > 0 {
		v = sl.Min + math32.Round((v-sl.Min)/sl.Step)*sl.Step
	}
	return math32.Max(sl.Min, math32.Min(sl.Max, v))
}

// SetValue sets the value, snapped and clamped, without sending an
// event. It returns whether the value changed.
func (sl *Slider) SetValue(v float32) bool {
	v = sl.snap(v)
	if v == sl.Value {
		return false
	}
	sl.Value = v
	sl.MarkDirty()
	return true
}

// Fraction returns the value as a fraction of the range, in [0, 1].
func (sl *Slider) Fraction() float32 {
	span := sl.Max - sl.Min
	if span <= 0 {
		return 0
	}
	return math32.Max(0, math32.Min(1, (sl.Value-sl.Min)/span))
}

// position returns the fraction of the track from its top-left end to
// the handle.
func (sl *Slider) position() float32 {
	if sl.Direction == EndToStart {
		return 1 - sl.Fraction()
	}
	return sl.Fraction()
}

// DragTo moves the handle to a cursor given in logical pixels on a
// track given in physical pixels, where scale is the number of physical
// pixels per logical pixel. It sends a [events.SliderChange] and
// returns true if the value changed.
func (sl *Slider) DragTo(track Rect, cursor Point, scale float32) bool {
	if scale <= 0 {
		scale = 1
	}
	var t float32
	switch sl.Orientation {
	case Horizontal:
		if track.W <= 0 {
			return false
		}
		t = (cursor.X*scale - track.X) / track.W
	case Vertical:
		if track.H <= 0 {
			return false
		}
		t = (cursor.Y*scale - track.Y) / track.H
	}
	if math32.IsNaN(t) {
		return false
	}
	t = math32.Max(0, math32.Min(1, t))
	if sl.Direction == EndToStart {
		t = 1 - t
	}
	return sl.change(sl.Min + t*(sl.Max-sl.Min))
}

func (sl *Slider) change(v float32) bool {
	if !sl.SetValue(v) {
		return false
	}
	sl.send(&events.Value{Base: events.Base{Typ: events.SliderChange, Src: sl.ID}, Value: sl.Value})
	return true
}

// ActiveTrack returns the part of the track between the start and the
// handle.
func (sl *Slider) ActiveTrack(track Rect) Rect {
	f := sl.Fraction()
	r := track
	switch sl.Orientation {
	case Horizontal:
		r.W = track.W * f
		if sl.Direction == EndToStart {
			r.X = track.X + track.W - r.W
		}
	case Vertical:
		r.H = track.H * f
		if sl.Direction == EndToStart {
			r.Y = track.Y + track.H - r.H
		}
	}
	return r
}

// ThumbCenter returns the center of the handle on the track.
func (sl *Slider) ThumbCenter(track Rect) Point {
	p := sl.position()
	if sl.Orientation == Vertical {
		return Point{X: track.X + track.W/2, Y: track.Y + track.H*p}
	}
	return Point{X: track.X + track.W*p, Y: track.Y + track.H/2}
}

// Ticks returns the track fractions of the ticks, or nil if ticks are
// hidden or there is no step.
func (sl *Slider) Ticks() []float32 {
	span := sl.Max - sl.Min
	if !sl.ShowTicks || sl.Step <= 0 || span/sl.Step < 1 {
		return nil
	}
	n := int(math32.Floor(span/sl.Step + 1e-4))
	ticks := make([]float32, 0, n+1)
	for i := 0; i <= n; i++ {
		ticks = append(ticks, float32(i)*sl.Step/span)
	}
	return ticks
}

// FormattedValue returns the text of the value label.
func (sl *Slider) FormattedValue() string {
	if sl.Format != nil {
		return sl.Format(sl.Value)
	}
	return strconv.Itoa(int(math32.Round(sl.Value)))
}

// keyStep is the change of one arrow key press.
func (sl *Slider) keyStep() float32 {
	if sl.Step > 0 {
		return sl.Step
	}
	return (sl.Max - sl.Min) / 100
}

func (sl *Slider) handleKey(code key.Codes, text string) bool {
	switch code {
	case key.CodeRightArrow, key.CodeUpArrow:
		sl.change(sl.Value + sl.keyStep())
	case key.CodeLeftArrow, key.CodeDownArrow:
		sl.change(sl.Value - sl.keyStep())
	case key.CodePageUp:
		sl.change(sl.Value + 10*sl.keyStep())
	case key.CodePageDown:
		sl.change(sl.Value - 10*sl.keyStep())
	case key.CodeHome:
		sl.change(sl.Min)
	case key.CodeEnd:
		sl.change(sl.Max)
	default:
		return false
	}
	return true
}

func (sl *Slider) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	return s.SurfaceContainerHighest
}

func (sl *Slider) IndicatorColor(s *matcolor.Scheme) colors.ARGB { return s.Primary.Base }

func (sl *Slider) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (sl *Slider) IconColor(s *matcolor.Scheme) colors.ARGB { return s.Primary.On }

func (sl *Slider) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.Primary.Base }

func (sl *Slider) resolveParts(s *matcolor.Scheme) {
	sl.InactiveTickColor = s.OnSurfaceVariant
	sl.LabelColor = s.Primary.Base
	sl.LabelTextColor = s.Primary.On
	if sl.IsDisabled() {
		sl.InactiveTickColor = sl.Visuals.Content
	}
}
