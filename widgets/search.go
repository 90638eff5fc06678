// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"unicode/utf8"

	"cogentcore.org/material/colors"
	"cogentcore.org/material/events"
	"cogentcore.org/material/events/key"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/states"
	"cogentcore.org/material/tokens"
)

// Search is a search bar. The hint shown while the query is empty is
// the widget label.
type Search struct {
	Base

	// Query is the current search text.
	Query string

	Navigation *BarAction

	// Action is the trailing icon, or nil.
	Action *BarAction
}

// NewSearch adds a new search bar with the given hint to the host.
func (h *Host) NewSearch(hint string) *Search {
	sr := &Search{}
	sr.Label.Text = hint
	sr.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable)
	add(h, h.SearchBars, sr)
	sr.Navigation = newBarAction(&sr.Base, "search", -1)
	return sr
}

// SetAction sets the trailing action icon.
func (sr *Search) SetAction(icon string) *BarAction {
	sr.Action = newBarAction(&sr.Base, icon, 0)
	return sr.Action
}

// SetQuery sets the search text, sending a [events.SearchQuery] if it
// changed.
func (sr *Search) SetQuery(q string) {
	if q == sr.Query {
		return
	}
	sr.Query = q
	sr.MarkDirty()
	sr.send(&events.Text{Base: events.Base{Typ: events.SearchQuery, Src: sr.ID}, Value: q})
}

// Height returns the bar height in dp.
func (sr *Search) Height() float32 { return 56 }

// Corner returns the corner radius of the bar.
func (sr *Search) Corner() tokens.Corner { return tokens.CornerFull }

func (sr *Search) ContainerColor(s *matcolor.Scheme) colors.ARGB { return s.SurfaceContainerHigh }

// ContentColor is the query color, or the hint color while empty.
func (sr *Search) ContentColor(s *matcolor.Scheme) colors.ARGB {
	if sr.Query == "" {
		return s.OnSurfaceVariant
	}
	return s.OnSurface
}

func (sr *Search) IconColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (sr *Search) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (sr *Search) click() { sr.sendBase(events.SearchClick) }

func (sr *Search) handleKey(code key.Codes, text string) bool {
	switch {
	case code == key.CodeBackspace:
		if _, n := utf8.DecodeLastRuneInString(sr.Query); n > 0 {
			sr.SetQuery(sr.Query[:len(sr.Query)-n])
		}
	case code.IsEnter():
		return false
	case text != "" && code != key.CodeTab && code != key.CodeEscape:
		sr.SetQuery(sr.Query + text)
	default:
		return false
	}
	return true
}
