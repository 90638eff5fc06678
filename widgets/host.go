// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"log/slog"
	"sync"

	"cogentcore.org/material/events"
	"cogentcore.org/material/events/key"
	"cogentcore.org/material/i18n"
	"cogentcore.org/material/states"
	"cogentcore.org/material/theme"
)

// Host owns the widget families and runs one [Host.Frame] per tick of
// the host frame loop. Input is queued with the methods below from any
// goroutine and applied at the start of the next frame; everything
// else happens on the goroutine calling Frame.
type Host struct {

	// Theme is the shared theme read by every refresh pass.
	Theme *theme.Theme

	// Localizer resolves widget labels bound to translation keys.
	// It may be nil.
	Localizer *i18n.Localizer

	// Language is the language tag labels are resolved in.
	Language string

	// Scale is the number of physical pixels per logical pixel.
	Scale float32

	// Listeners receive every published widget event, after the
	// listeners of the source widget.
	Listeners events.Listeners

	// Events receives every published widget event, for hosts that
	// poll instead of listening.
	Events events.Queue

	Buttons           *Family[*Button]
	IconButtons       *Family[*IconButton]
	FABs              *Family[*FAB]
	Chips             *Family[*Chip]
	Cards             *Family[*Card]
	Checkboxes        *Family[*Checkbox]
	Radios            *Family[*Radio]
	Switches          *Family[*Switch]
	Sliders           *Family[*Slider]
	TextFields        *Family[*TextField]
	Selects           *Family[*Select]
	SelectOptions     *Family[*SelectOption]
	TabBars           *Family[*Tabs]
	Tabs              *Family[*Tab]
	ListItems         *Family[*ListItem]
	Menus             *Family[*Menu]
	MenuItems         *Family[*MenuItem]
	Dialogs           *Family[*Dialog]
	Scrims            *Family[*Scrim]
	Snackbars         *Family[*Snackbar]
	Tooltips          *Family[*Tooltip]
	Progress          *Family[*Progress]
	LoadingIndicators *Family[*LoadingIndicator]
	Badges            *Family[*Badge]
	ButtonGroups      *Family[*ButtonGroup]
	AppBars           *Family[*AppBar]
	Toolbars          *Family[*Toolbar]
	SearchBars        *Family[*Search]
	BarActions        *Family[*BarAction]
	Dividers          *Family[*Divider]
	DayCells          *Family[*DayCell]
	TimeCells         *Family[*TimeCell]

	families  []refresher
	widgets   map[events.ID]Themed
	animators []animator
	nextID    events.ID
	focused   events.ID

	mu    sync.Mutex
	input []func()

	pending     []pendingEvent
	radioClicks map[string]*Radio
}

// animator is implemented by widgets with time-based state, ticked
// once per frame after the refresh passes.
type animator interface {
	Themed
	animate(dt float32)
}

type pendingEvent struct {
	src *Base
	ev  events.Event
}

// FrameStats reports the work done by one [Host.Frame].
type FrameStats struct {
	StateRefreshed int
	ThemeRefreshed int
	Published      int
}

// NewHost returns a host with every widget family registered in a
// stable order. A nil theme uses [theme.Default].
func NewHost(t *theme.Theme) *Host {
	if t == nil {
		t = theme.Default()
	}
	h := &Host{
		Theme:       t,
		Language:    i18n.DefaultLanguage,
		Scale:       1,
		widgets:     make(map[events.ID]Themed),
		radioClicks: make(map[string]*Radio),
	}
	h.Buttons = register(h, NewFamily[*Button]("Button"))
	h.IconButtons = register(h, NewFamily[*IconButton]("IconButton"))
	h.FABs = register(h, NewFamily[*FAB]("FAB"))
	h.Chips = register(h, NewFamily[*Chip]("Chip"))
	h.Cards = register(h, NewFamily[*Card]("Card"))
	h.Checkboxes = register(h, NewFamily[*Checkbox]("Checkbox"))
	h.Radios = register(h, NewFamily[*Radio]("Radio"))
	h.Switches = register(h, NewFamily[*Switch]("Switch"))
	h.Sliders = register(h, NewFamily[*Slider]("Slider"))
	h.TextFields = register(h, NewFamily[*TextField]("TextField"))
	h.Selects = register(h, NewFamily[*Select]("Select"))
	h.SelectOptions = register(h, NewFamily[*SelectOption]("SelectOption"))
	h.TabBars = register(h, NewFamily[*Tabs]("Tabs"))
	h.Tabs = register(h, NewFamily[*Tab]("Tab"))
	h.ListItems = register(h, NewFamily[*ListItem]("ListItem"))
	h.Menus = register(h, NewFamily[*Menu]("Menu"))
	h.MenuItems = register(h, NewFamily[*MenuItem]("MenuItem"))
	h.Dialogs = register(h, NewFamily[*Dialog]("Dialog"))
	h.Scrims = register(h, NewFamily[*Scrim]("Scrim"))
	h.Snackbars = register(h, NewFamily[*Snackbar]("Snackbar"))
	h.Tooltips = register(h, NewFamily[*Tooltip]("Tooltip"))
	h.Progress = register(h, NewFamily[*Progress]("Progress"))
	h.LoadingIndicators = register(h, NewFamily[*LoadingIndicator]("LoadingIndicator"))
	h.Badges = register(h, NewFamily[*Badge]("Badge"))
	h.ButtonGroups = register(h, NewFamily[*ButtonGroup]("ButtonGroup"))
	h.AppBars = register(h, NewFamily[*AppBar]("AppBar"))
	h.Toolbars = register(h, NewFamily[*Toolbar]("Toolbar"))
	h.SearchBars = register(h, NewFamily[*Search]("Search"))
	h.BarActions = register(h, NewFamily[*BarAction]("BarAction"))
	h.Dividers = register(h, NewFamily[*Divider]("Divider"))
	h.DayCells = register(h, NewFamily[*DayCell]("DayCell"))
	h.TimeCells = register(h, NewFamily[*TimeCell]("TimeCell"))
	return h
}

func register[W Themed](h *Host, f *Family[W]) *Family[W] {
	h.families = append(h.families, f)
	return f
}

// add assigns the next ID to w and adds it to the family.
func add[W Themed](h *Host, f *Family[W], w W) W {
	b := w.AsBase()
	h.nextID++
	b.ID = h.nextID
	b.host = h
	f.Add(w)
	h.widgets[b.ID] = w
	if a, ok := any(w).(animator); ok {
		h.animators = append(h.animators, a)
	}
	return w
}

// Widget returns the widget with the given ID.
func (h *Host) Widget(id events.ID) (Themed, bool) {
	w, ok := h.widgets[id]
	return w, ok
}

// Remove removes the widget with the given ID from the host.
// Events it already emitted are still published.
func (h *Host) Remove(id events.ID) bool {
	w, ok := h.widgets[id]
	if !ok {
		return false
	}
	delete(h.widgets, id)
	for _, f := range h.families {
		if f.remove(id) {
			break
		}
	}
	for i, a := range h.animators {
		if a.AsBase().ID == id {
			h.animators = append(h.animators[:i], h.animators[i+1:]...)
			break
		}
	}
	w.AsBase().host = nil
	if h.focused == id {
		h.focused = 0
	}
	return true
}

// Enqueue queues an input mutation to run at the start of the next frame.
// It is safe to call from any goroutine.
func (h *Host) Enqueue(fun func()) {
	h.mu.Lock()
	h.input = append(h.input, fun)
	h.mu.Unlock()
}

// Frame runs one frame: queued input, radio group reconciliation,
// the state refresh pass, the theme refresh pass, animations, and
// finally the publication of the events emitted during the frame.
// Every family observes the same theme snapshot.
func (h *Host) Frame(dt float32) FrameStats {
	var st FrameStats
	h.mu.Lock()
	input := h.input
	h.input = nil
	h.mu.Unlock()
	for _, fun := range input {
		fun()
	}

	h.reconcileRadios()
	h.localize()

	snap := h.Theme.Get()
	for _, f := range h.families {
		st.StateRefreshed += f.OnStateChange(snap)
	}
	for _, f := range h.families {
		if n := f.OnThemeChange(snap); n > 0 {
			st.ThemeRefreshed += n
			slog.Debug("theme refresh", "family", f.name(), "widgets", n, "revision", snap.Revision)
		}
	}

	for _, a := range h.animators {
		a.animate(dt)
	}

	st.Published = h.publish()
	return st
}

func (h *Host) localize() {
	if h.Localizer == nil {
		return
	}
	for _, f := range h.families {
		f.each(func(w Themed) {
			b := w.AsBase()
			if b.Label.Refresh(h.Localizer, h.Language) {
				b.dirty = true
			}
		})
	}
}

func (h *Host) emit(src *Base, ev events.Event) {
	h.pending = append(h.pending, pendingEvent{src: src, ev: ev})
}

// publish delivers pending events, including any emitted by the
// listeners themselves.
func (h *Host) publish() int {
	n := 0
	for len(h.pending) > 0 {
		batch := h.pending
		h.pending = nil
		for _, pe := range batch {
			pe.src.Listeners.Call(pe.ev)
			h.Listeners.Call(pe.ev)
			h.Events.Send(pe.ev)
			n++
		}
	}
	return n
}

// On adds a host listener for widget events of the given type.
func (h *Host) On(typ events.Types, fun func(events.Event)) {
	h.Listeners.Add(typ, fun)
}

// clicker is implemented by widgets that do something when activated.
type clicker interface {
	click()
}

// keyHandler is implemented by widgets that consume keys themselves.
// It returns whether the key was used.
type keyHandler interface {
	handleKey(code key.Codes, text string) bool
}

func (h *Host) input1(id events.ID, fun func(w Themed, b *Base)) {
	h.Enqueue(func() {
		w, ok := h.widgets[id]
		if !ok {
			return
		}
		b := w.AsBase()
		if b.IsDisabled() {
			return
		}
		fun(w, b)
	})
}

// PointerEnter sets the hovered state.
func (h *Host) PointerEnter(id events.ID) {
	h.input1(id, func(w Themed, b *Base) {
		if b.Abilities.CanSet(states.Hovered) {
			b.SetState(true, states.Hovered)
		}
	})
}

// PointerLeave clears the hovered and pressed states.
func (h *Host) PointerLeave(id events.ID) {
	h.input1(id, func(w Themed, b *Base) {
		b.SetState(false, states.Hovered, states.Pressed)
	})
}

// PointerDown sets the pressed state.
func (h *Host) PointerDown(id events.ID) {
	h.input1(id, pointerDown)
}

// PointerUp clears the pressed state, activating the widget if it
// was pressed.
func (h *Host) PointerUp(id events.ID) {
	h.input1(id, pointerUp)
}

// Click presses and releases the widget as one input.
func (h *Host) Click(id events.ID) {
	h.input1(id, func(w Themed, b *Base) {
		pointerDown(w, b)
		pointerUp(w, b)
	})
}

func pointerDown(w Themed, b *Base) {
	if b.Abilities.CanSet(states.Pressed) {
		b.SetState(true, states.Pressed)
	}
}

func pointerUp(w Themed, b *Base) {
	if !b.Is(states.Pressed) {
		return
	}
	b.SetState(false, states.Pressed, states.Dragged)
	if c, ok := w.(clicker); ok {
		c.click()
	}
}

// Focus moves keyboard focus to the widget, or clears focus for 0.
func (h *Host) Focus(id events.ID) {
	h.Enqueue(func() { h.setFocus(id) })
}

func (h *Host) setFocus(id events.ID) {
	if old, ok := h.widgets[h.focused]; ok {
		old.AsBase().SetState(false, states.Focused)
	}
	h.focused = 0
	w, ok := h.widgets[id]
	if !ok {
		return
	}
	b := w.AsBase()
	if b.IsDisabled() || !b.Abilities.CanSet(states.Focused) {
		return
	}
	b.SetState(true, states.Focused)
	h.focused = id
}

// Focused returns the ID of the focused widget, or 0.
func (h *Host) Focused() events.ID { return h.focused }

// Key sends a key to the widget. Widgets that do not handle keys are
// activated by Enter and Space.
func (h *Host) Key(id events.ID, code key.Codes, text string) {
	h.input1(id, func(w Themed, b *Base) {
		if kh, ok := w.(keyHandler); ok && kh.handleKey(code, text) {
			return
		}
		if c, ok := w.(clicker); ok && code.IsActivate() {
			c.click()
		}
	})
}

// TypeText sends one key per rune of s, as if typed.
func (h *Host) TypeText(id events.ID, s string) {
	for _, r := range s {
		h.Key(id, key.CodeUnknown, string(r))
	}
}

// Drag moves a slider handle to the cursor. The track is in physical
// pixels and the cursor in logical pixels, converted with [Host.Scale].
func (h *Host) Drag(id events.ID, track Rect, cursor Point) {
	h.input1(id, func(w Themed, b *Base) {
		if sl, ok := w.(*Slider); ok {
			sl.SetState(true, states.Dragged)
			sl.DragTo(track, cursor, h.Scale)
		}
	})
}

// DragEnd ends a slider drag.
func (h *Host) DragEnd(id events.ID) {
	h.input1(id, func(w Themed, b *Base) {
		b.SetState(false, states.Dragged, states.Pressed)
	})
}

// reconcileRadios keeps at most one radio selected per group: the last
// one clicked this frame, or else the first selected one.
func (h *Host) reconcileRadios() {
	groups := make(map[string][]*Radio)
	var order []string
	for _, r := range h.Radios.widgets {
		if r.Group == "" {
			continue
		}
		if _, ok := groups[r.Group]; !ok {
			order = append(order, r.Group)
		}
		groups[r.Group] = append(groups[r.Group], r)
	}
	for _, g := range order {
		winner := h.radioClicks[g]
		if winner == nil {
			for _, r := range groups[g] {
				if r.Is(states.Selected) {
					winner = r
					break
				}
			}
		}
		for _, r := range groups[g] {
			if r != winner {
				r.SetState(false, states.Selected)
			}
		}
		if h.radioClicks[g] != nil {
			winner.send(&events.Radio{Base: events.Base{Typ: events.RadioChange, Src: winner.ID}, Group: g, Selected: true})
		}
	}
	clear(h.radioClicks)
}
