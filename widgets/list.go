// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/material/colors"
	"cogentcore.org/material/events"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/states"
)

// ListItem is a row of a list with a headline, which is the widget
// label, and up to two lines of supporting text.
type ListItem struct {
	Base

	// Supporting is the supporting text; its line count decides
	// whether the item is two or three lines tall.
	Supporting string

	// Lines is 1, 2 or 3.
	Lines int

	// Icon is the name of an optional leading icon.
	Icon string

	SupportingColor colors.ARGB
}

// NewListItem adds a new one-line list item to the host.
func (h *Host) NewListItem(headline string) *ListItem {
	li := &ListItem{Lines: 1}
	li.Label.Text = headline
	li.Abilities = states.AbilitiesOf(states.Hoverable, states.Activatable, states.Focusable)
	return add(h, h.ListItems, li)
}

// SetSupporting sets the supporting text and the line count.
func (li *ListItem) SetSupporting(text string, lines int) *ListItem {
	li.Supporting = text
	li.Lines = min(max(lines, 1), 3)
	li.MarkDirty()
	return li
}

// Height returns the item height in dp.
func (li *ListItem) Height() float32 {
	switch li.Lines {
	case 2:
		return 72
	case 3:
		return 88
	}
	return 56
}

func (li *ListItem) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	if li.Is(states.Selected) {
		return s.Secondary.Container
	}
	return colors.Transparent
}

func (li *ListItem) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (li *ListItem) IconColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurfaceVariant }

func (li *ListItem) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (li *ListItem) resolveParts(s *matcolor.Scheme) {
	li.SupportingColor = s.OnSurfaceVariant
	if li.IsDisabled() {
		li.SupportingColor = li.Visuals.Content
	}
}

func (li *ListItem) click() { li.sendBase(events.ListItemClick) }
