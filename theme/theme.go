// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme provides the shared theme resource: the active color
// scheme, its mode and seed, and a revision counter that lets widgets
// detect changes. It also loads and watches the user theme settings file.
package theme

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"cogentcore.org/material/colors"
	"cogentcore.org/material/matcolor"
)

// DefaultSeed is the seed color of the baseline Material scheme.
const DefaultSeed colors.ARGB = 0xFF6750A4

// Snapshot is one immutable state of a [Theme]. Readers holding a
// snapshot always see a scheme consistent with its mode and seed.
type Snapshot struct {

	// Scheme is the resolved color scheme.
	Scheme matcolor.Scheme

	// Mode is the brightness mode of the scheme.
	Mode matcolor.Mode

	// Seed is the color the scheme was generated from.
	Seed colors.ARGB

	// Revision increases by one on every replacement of the theme.
	Revision uint64
}

// Theme is the theme resource shared by all widgets. It is safe for
// concurrent use: replacements are published atomically, so a reader
// sees either the complete old scheme or the complete new one.
type Theme struct {
	cur atomic.Pointer[Snapshot]

	// mu serializes writers so revisions are strictly sequential.
	mu sync.Mutex
}

// FromSeed returns a new theme for the given seed color and mode,
// at revision 1.
func FromSeed(seed colors.ARGB, mode matcolor.Mode) *Theme {
	t := &Theme{}
	t.cur.Store(newSnapshot(seed, mode, 1))
	return t
}

// Default returns a new light theme with the [DefaultSeed].
func Default() *Theme {
	return FromSeed(DefaultSeed, matcolor.Light)
}

func newSnapshot(seed colors.ARGB, mode matcolor.Mode, rev uint64) *Snapshot {
	seed = seed.Opaque()
	return &Snapshot{
		Scheme:   matcolor.NewScheme(seed, mode),
		Mode:     mode,
		Seed:     seed,
		Revision: rev,
	}
}

// Get returns the current snapshot. It never returns nil.
func (t *Theme) Get() *Snapshot {
	if s := t.cur.Load(); s != nil {
		return s
	}
	// zero Theme: publish the default scheme once
	t.mu.Lock()
	defer t.mu.Unlock()
	if s := t.cur.Load(); s != nil {
		return s
	}
	s := newSnapshot(DefaultSeed, matcolor.Light, 1)
	t.cur.Store(s)
	return s
}

// Scheme returns the current color scheme.
func (t *Theme) Scheme() *matcolor.Scheme {
	return &t.Get().Scheme
}

// Revision returns the current revision.
func (t *Theme) Revision() uint64 {
	return t.Get().Revision
}

// Replace regenerates the scheme from the given seed and mode and
// publishes it with the next revision, which it returns.
func (t *Theme) Replace(seed colors.ARGB, mode matcolor.Mode) *Snapshot {
	t.Get()
	t.mu.Lock()
	defer t.mu.Unlock()
	s := newSnapshot(seed, mode, t.cur.Load().Revision+1)
	t.cur.Store(s)
	slog.Debug("theme replaced", "seed", seed.Hex(), "mode", mode, "revision", s.Revision)
	return s
}

// SetMode replaces the theme with the same seed in the given mode.
func (t *Theme) SetMode(mode matcolor.Mode) *Snapshot {
	return t.Replace(t.Get().Seed, mode)
}

// SetSeed replaces the theme with a new seed in the same mode.
func (t *Theme) SetSeed(seed colors.ARGB) *Snapshot {
	return t.Replace(seed, t.Get().Mode)
}

// Toggle switches between light and dark mode.
func (t *Theme) Toggle() *Snapshot {
	return t.SetMode(t.Get().Mode.Toggled())
}

// Tracker records the last revision of a [Theme] seen by one reader,
// giving "changed since last read" semantics.
type Tracker struct {
	last uint64
}

// Changed returns whether the theme has been replaced since the last
// call, and records the current revision. The first call returns true.
func (tr *Tracker) Changed(t *Theme) bool {
	rev := t.Revision()
	if rev == tr.last {
		return false
	}
	tr.last = rev
	return true
}

// Mark records rev as seen without checking the theme.
func (tr *Tracker) Mark(rev uint64) { tr.last = rev }

// Last returns the last revision seen.
func (tr *Tracker) Last() uint64 { return tr.last }
