// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i18n

// Localized is a piece of widget text bound to a translation key.
// It remembers the localizer revision and language it last resolved
// against, and keeps its previous text when a key is missing.
type Localized struct {

	// Key is the translation key. Text is never resolved if it is empty.
	Key string

	// Text is the current display text.
	Text string

	lastRevision uint64
	lastLanguage string
}

// Refresh resolves Key again if the localizer revision or the
// language changed since the last call, and returns whether Text
// changed.
func (lt *Localized) Refresh(l *Localizer, lang string) bool {
	if lt.Key == "" || l == nil {
		return false
	}
	rev := l.Revision()
	if rev == lt.lastRevision && lang == lt.lastLanguage {
		return false
	}
	lt.lastRevision = rev
	lt.lastLanguage = lang
	s, ok := l.Translate(lang, lt.Key)
	if !ok || s == lt.Text {
		return false
	}
	lt.Text = s
	return true
}
