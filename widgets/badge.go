// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"strconv"
	"unicode/utf8"

	"cogentcore.org/material/colors"
	"cogentcore.org/material/matcolor"
)

// BadgeMax is the largest count a badge shows before adding "+".
const BadgeMax = 999

// Badge sizes in dp.
const (
	BadgeSmallSize float32 = 6
	BadgeLargeSize float32 = 16

	// badgeCharWidth is the width added for each character after the first.
	badgeCharWidth float32 = 6
)

// Badge shows a count or status dot on top of another widget.
type Badge struct {
	Base

	// Count is the number shown; 0 shows a small dot.
	Count int

	// Anchor is the widget the badge is attached to.
	Anchor Themed
}

// NewBadge adds a new badge for the anchor to the host.
func (h *Host) NewBadge(count int, anchor Themed) *Badge {
	return add(h, h.Badges, &Badge{Count: max(count, 0), Anchor: anchor})
}

// SetCount sets the count, clamped at 0.
func (bd *Badge) SetCount(n int) {
	n = max(n, 0)
	if n != bd.Count {
		bd.Count = n
		bd.MarkDirty()
	}
}

// IsSmall returns whether the badge is a dot without text.
func (bd *Badge) IsSmall() bool { return bd.Count == 0 }

// Value returns the text shown, such as "7" or "999+"; empty when small.
func (bd *Badge) Value() string {
	switch {
	case bd.Count <= 0:
		return ""
	case bd.Count > BadgeMax:
		return strconv.Itoa(BadgeMax) + "+"
	}
	return strconv.Itoa(bd.Count)
}

// Width returns the width in dp. Large badges grow with their text.
func (bd *Badge) Width() float32 {
	if bd.IsSmall() {
		return BadgeSmallSize
	}
	n := utf8.RuneCountInString(bd.Value())
	return BadgeLargeSize + float32(n-1)*badgeCharWidth
}

// Height returns the height in dp.
func (bd *Badge) Height() float32 {
	if bd.IsSmall() {
		return BadgeSmallSize
	}
	return BadgeLargeSize
}

func (bd *Badge) ContainerColor(s *matcolor.Scheme) colors.ARGB { return s.Error.Base }

func (bd *Badge) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.Error.On }

func (bd *Badge) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.Error.On }

func (bd *Badge) StateLayerOpacity() float64 { return 0 }
