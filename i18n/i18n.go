// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package i18n resolves translation keys to strings for widget labels.
// A [Localizer] holds one string table per language and a revision that
// increases whenever a table changes, so widgets holding [Localized]
// text can cheaply detect when to look their key up again.
package i18n

import (
	"log/slog"
	"strings"
	"sync"

	"cogentcore.org/material/grr"
	"golang.org/x/text/language"
)

// Localizer maps (language, key) pairs to translated strings.
// It is safe for concurrent use.
type Localizer struct {

	// Fallback is the language consulted when a key is missing in the
	// requested language. It is empty by default, meaning no fallback.
	Fallback string

	mu       sync.RWMutex
	tables   map[string]map[string]string
	revision uint64
}

// NewLocalizer returns an empty localizer with no fallback language.
func NewLocalizer() *Localizer {
	return &Localizer{}
}

// Canonical returns the canonical BCP 47 form of a language tag,
// so that "en_us", "EN-US" and "en-US" all name the same table.
// Tags that cannot be parsed are returned trimmed and unchanged.
func Canonical(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i] // POSIX codeset or modifier, as in en_US.UTF-8
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	return t.String()
}

// Add merges the given strings into the table for the language and
// bumps the revision.
func (l *Localizer) Add(lang string, strs map[string]string) {
	lang = Canonical(lang)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.tables == nil {
		l.tables = make(map[string]map[string]string)
	}
	tb := l.tables[lang]
	if tb == nil {
		tb = make(map[string]string, len(strs))
		l.tables[lang] = tb
	}
	for k, v := range strs {
		tb[k] = v
	}
	l.revision++
	slog.Debug("translations added", "language", lang, "strings", len(strs), "revision", l.revision)
}

// Translate returns the string for key in the given language, trying
// the [Localizer.Fallback] language next. It returns false if neither
// has the key.
func (l *Localizer) Translate(lang, key string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if s, ok := l.tables[Canonical(lang)][key]; ok {
		return s, true
	}
	if l.Fallback == "" {
		return "", false
	}
	s, ok := l.tables[Canonical(l.Fallback)][key]
	return s, ok
}

// Lookup is like [Localizer.Translate] but returns a
// [grr.ResourceMissing] error for a missing key.
func (l *Localizer) Lookup(lang, key string) (string, error) {
	s, ok := l.Translate(lang, key)
	if !ok {
		return "", &grr.ResourceMissing{Kind: "translation", Name: Canonical(lang) + ":" + key}
	}
	return s, nil
}

// Revision returns the number of changes made to the tables.
func (l *Localizer) Revision() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.revision
}

// Languages returns the languages that have a table, in no particular order.
func (l *Localizer) Languages() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	langs := make([]string, 0, len(l.tables))
	for lang := range l.tables {
		langs = append(langs, lang)
	}
	return langs
}
