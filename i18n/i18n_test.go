// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i18n

import (
	"errors"
	"os"
	"testing"

	"cogentcore.org/material/grr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	assert.Equal(t, "en-US", Canonical("en_us"))
	assert.Equal(t, "en-US", Canonical("EN-US"))
	assert.Equal(t, "de-DE", Canonical("de_DE.UTF-8"))
	assert.Equal(t, "fr", Canonical(" fr "))
}

func TestTranslate(t *testing.T) {
	l := NewLocalizer()
	assert.Equal(t, uint64(0), l.Revision())
	_, ok := l.Translate("en-US", "ok")
	assert.False(t, ok)

	l.Add("en_US", map[string]string{"ok": "OK", "cancel": "Cancel"})
	l.Add("fr-FR", map[string]string{"ok": "D'accord"})
	assert.Equal(t, uint64(2), l.Revision())

	s, ok := l.Translate("en-US", "ok")
	assert.True(t, ok)
	assert.Equal(t, "OK", s)
	s, ok = l.Translate("fr_fr", "ok")
	assert.True(t, ok)
	assert.Equal(t, "D'accord", s)

	_, ok = l.Translate("fr-FR", "cancel")
	assert.False(t, ok, "no fallback by default")
	l.Fallback = "en-US"
	s, ok = l.Translate("fr-FR", "cancel")
	assert.True(t, ok)
	assert.Equal(t, "Cancel", s)

	_, err := l.Lookup("fr-FR", "missing")
	var rm *grr.ResourceMissing
	assert.True(t, errors.As(err, &rm))
	assert.Equal(t, "translation", rm.Kind)
	assert.ElementsMatch(t, []string{"en-US", "fr-FR"}, l.Languages())
}

func TestLoad(t *testing.T) {
	l := NewLocalizer()
	n, err := l.Load(os.DirFS("testdata"), "*.json")
	assert.Equal(t, 1, n)
	var pe *grr.ParseError
	require.True(t, errors.As(err, &pe), "broken.json reports a parse error")

	n, err = l.Load(os.DirFS("testdata"), "*.yaml")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	s, ok := l.Translate("en-US", "email")
	assert.True(t, ok)
	assert.Equal(t, "Email", s)
	s, ok = l.Translate("fr-FR", "cancel")
	assert.True(t, ok)
	assert.Equal(t, "Annuler", s)
	assert.Equal(t, uint64(2), l.Revision())
}

func TestParseFile(t *testing.T) {
	_, err := ParseFile("x.txt", []byte("{}"))
	assert.Error(t, err)
	_, err = ParseFile("x.json", []byte(`{"strings": {}}`))
	assert.Error(t, err, "language is required")
	f, err := ParseFile("x.yml", []byte("language: ja\nstrings:\n  ok: OK\n"))
	assert.NoError(t, err)
	assert.Equal(t, "ja", f.Language)
}

func TestLanguageFromEnv(t *testing.T) {
	env := map[string]string{"LANG": "pt_BR.UTF-8"}
	assert.Equal(t, "pt-BR", languageFromEnv(func(k string) string { return env[k] }))
	env["LC_ALL"] = "C"
	assert.Equal(t, "pt-BR", languageFromEnv(func(k string) string { return env[k] }), "C is skipped")
	env["LC_MESSAGES"] = "es_ES"
	assert.Equal(t, "es-ES", languageFromEnv(func(k string) string { return env[k] }))
	assert.Equal(t, DefaultLanguage, languageFromEnv(func(string) string { return "" }))
	assert.NotEmpty(t, SystemLanguage())
}

func TestLocalized(t *testing.T) {
	l := NewLocalizer()
	lt := Localized{Key: "ok", Text: "ok"}
	assert.False(t, lt.Refresh(l, "en-US"), "missing key keeps text")
	assert.Equal(t, "ok", lt.Text)

	l.Add("en-US", map[string]string{"ok": "OK"})
	l.Add("de-DE", map[string]string{"ok": "Okay"})
	assert.True(t, lt.Refresh(l, "en-US"))
	assert.Equal(t, "OK", lt.Text)
	assert.False(t, lt.Refresh(l, "en-US"), "nothing changed")

	assert.True(t, lt.Refresh(l, "de-DE"))
	assert.Equal(t, "Okay", lt.Text)

	assert.False(t, lt.Refresh(l, "it-IT"))
	assert.Equal(t, "Okay", lt.Text)
	assert.False(t, (&Localized{}).Refresh(l, "en-US"))
}
