// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners holds the listener functions of a widget or host, by event
// type. The zero value is ready to use.
type Listeners map[Types][]func(ev Event)

// Add registers fun for events of type typ.
func (ls *Listeners) Add(typ Types, fun func(Event)) {
	if *ls == nil {
		*ls = make(Listeners)
	}
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Len returns the number of listeners for typ.
func (ls Listeners) Len(typ Types) int { return len(ls[typ]) }

// Call delivers ev to the listeners of its type, newest first, stopping
// once one of them sets it handled. A later listener thus overrides an
// earlier one by handling the event.
func (ls Listeners) Call(ev Event) {
	fns := ls[ev.Type()]
	for i := len(fns) - 1; i >= 0 && !ev.IsHandled(); i-- {
		fns[i](ev)
	}
}
