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

// Dialog is a modal surface with a headline, which is the widget label,
// and supporting text. While open, its [Scrim] covers the content
// behind it.
type Dialog struct {
	Base

	// Body is the supporting text.
	Body string

	// Icon is the name of an optional hero icon.
	Icon string

	// Open is whether the dialog is shown. Change it with [Dialog.SetOpen].
	Open bool

	// DismissOnScrim closes the dialog when its scrim is clicked.
	DismissOnScrim bool

	// Scrim is the overlay drawn behind the dialog.
	Scrim *Scrim

	// HeadlineColor is resolved with the visuals; Content is the body color.
	HeadlineColor colors.ARGB
}

// Scrim is the overlay behind a modal surface.
type Scrim struct {
	Base

	// Owner is the dialog this scrim belongs to.
	Owner *Dialog
}

// NewDialog adds a new closed dialog and its scrim to the host.
func (h *Host) NewDialog(headline, body string) *Dialog {
	d := &Dialog{Body: body, DismissOnScrim: true}
	d.Label.Text = headline
	add(h, h.Dialogs, d)
	sc := &Scrim{Owner: d}
	sc.Abilities = states.AbilitiesOf(states.Activatable)
	d.Scrim = add(h, h.Scrims, sc)
	return d
}

// SetOpen opens or closes the dialog, sending [events.DialogOpen] or
// [events.DialogClose] when that changes anything.
func (d *Dialog) SetOpen(open bool) {
	if d.Open == open {
		return
	}
	d.Open = open
	d.MarkDirty()
	if d.Scrim != nil {
		d.Scrim.MarkDirty()
	}
	if open {
		d.sendBase(events.DialogOpen)
	} else {
		d.sendBase(events.DialogClose)
	}
}

// Confirm sends [events.DialogConfirm] and closes the dialog.
func (d *Dialog) Confirm() {
	if !d.Open {
		return
	}
	d.sendBase(events.DialogConfirm)
	d.SetOpen(false)
}

func (d *Dialog) ContainerColor(s *matcolor.Scheme) colors.ARGB { return s.SurfaceContainerHigh }

func (d *Dialog) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurfaceVariant }

func (d *Dialog) IconColor(s *matcolor.Scheme) colors.ARGB { return s.Secondary.Base }

func (d *Dialog) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.OnSurface }

func (d *Dialog) StateLayerOpacity() float64 { return 0 }

func (d *Dialog) Elevation() tokens.ElevationLevel { return tokens.Level3 }

func (d *Dialog) resolveParts(s *matcolor.Scheme) {
	d.HeadlineColor = s.OnSurface
	if d.IsDisabled() {
		d.HeadlineColor = d.Visuals.Content
	}
}

// ContainerColor is the scrim role at the scrim opacity while the owner
// is open, and transparent otherwise.
func (sc *Scrim) ContainerColor(s *matcolor.Scheme) colors.ARGB {
	if sc.Owner == nil || !sc.Owner.Open {
		return colors.Transparent
	}
	return s.Scrim.WithAlpha(tokens.ScrimOpacity)
}

func (sc *Scrim) ContentColor(s *matcolor.Scheme) colors.ARGB { return colors.Transparent }

func (sc *Scrim) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.Scrim }

func (sc *Scrim) StateLayerOpacity() float64 { return 0 }

func (sc *Scrim) click() {
	if sc.Owner != nil && sc.Owner.Open && sc.Owner.DismissOnScrim {
		sc.Owner.SetOpen(false)
	}
}
