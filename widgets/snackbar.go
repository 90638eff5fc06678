// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/material/colors"
	"cogentcore.org/material/events"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/tokens"
)

// Snackbar display durations, in seconds.
const (
	SnackbarShort   float32 = 2
	SnackbarDefault float32 = 4
	SnackbarLong    float32 = 10

	// SnackbarIndefinite keeps the snackbar until it is dismissed.
	SnackbarIndefinite float32 = 0
)

// Snackbar is a brief message, which is the widget label, shown at the
// edge of the window with an optional action. The action text uses
// the indicator color.
type Snackbar struct {
	Base

	// Action is the action button text; empty for none.
	Action string

	// Duration is how long the snackbar stays after [Snackbar.Show].
	Duration float32

	// Dismissible shows a close button.
	Dismissible bool

	// Visible is whether the snackbar is shown.
	Visible bool

	// Remaining is the time left before it dismisses itself.
	Remaining float32

	// Slide animates the snackbar in and out.
	Slide *tokens.Transition
}

// NewSnackbar adds a new hidden snackbar with the default duration.
func (h *Host) NewSnackbar(message, action string) *Snackbar {
	sb := &Snackbar{Action: action, Duration: SnackbarDefault,
		Slide: tokens.NewTransition(tokens.Medium2, tokens.StandardDecelerate)}
	sb.Label.Text = message
	return add(h, h.Snackbars, sb)
}

// Show shows the snackbar and restarts its timer, sending
// [events.SnackbarShow].
func (sb *Snackbar) Show() {
	sb.Remaining = sb.Duration
	sb.Slide.Start(true)
	if sb.Visible {
		return
	}
	sb.Visible = true
	sb.MarkDirty()
	sb.sendBase(events.SnackbarShow)
}

// Dismiss hides the snackbar, sending [events.SnackbarDismiss].
func (sb *Snackbar) Dismiss() {
	if !sb.Visible {
		return
	}
	sb.Visible = false
	sb.Remaining = 0
	sb.Slide.Start(false)
	sb.MarkDirty()
	sb.sendBase(events.SnackbarDismiss)
}

// Activate runs the action: it sends [events.SnackbarAction] with the
// action text and dismisses the snackbar.
func (sb *Snackbar) Activate() {
	if !sb.Visible || sb.Action == "" || sb.IsDisabled() {
		return
	}
	sb.send(&events.Text{Base: events.Base{Typ: events.SnackbarAction, Src: sb.ID}, Value: sb.Action})
	sb.Dismiss()
}

func (sb *Snackbar) animate(dt float32) {
	sb.Slide.Tick(dt)
	if !sb.Visible || sb.Duration == SnackbarIndefinite {
		return
	}
	sb.Remaining -= dt
	if sb.Remaining <= 0 {
		sb.Dismiss()
	}
}

func (sb *Snackbar) ContainerColor(s *matcolor.Scheme) colors.ARGB { return s.InverseSurface }

func (sb *Snackbar) ContentColor(s *matcolor.Scheme) colors.ARGB { return s.InverseOnSurface }

// IndicatorColor is the action text color.
func (sb *Snackbar) IndicatorColor(s *matcolor.Scheme) colors.ARGB {
	if sb.Action == "" {
		return colors.Transparent
	}
	return s.InversePrimary
}

func (sb *Snackbar) StateLayerColor(s *matcolor.Scheme) colors.ARGB { return s.InverseOnSurface }

func (sb *Snackbar) StateLayerOpacity() float64 { return 0 }

func (sb *Snackbar) Elevation() tokens.ElevationLevel { return tokens.Level3 }
