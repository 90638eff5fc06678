// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package states

// Interaction is the single interaction level of a widget,
// derived from its [States] by [States.Interaction].
type Interaction int32

const (
	Rest Interaction = iota
	Hover
	Focus
	Press
	Drag
	InteractionDisabled
)

var interactionNames = [...]string{"Rest", "Hover", "Focus", "Press", "Drag", "Disabled"}

func (i Interaction) String() string {
	if i < 0 || int(i) >= len(interactionNames) {
		return "Interaction(?)"
	}
	return interactionNames[i]
}
