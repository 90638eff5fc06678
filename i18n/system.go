// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i18n

import (
	"os"

	"github.com/jeandeaual/go-locale"
)

// DefaultLanguage is used when the system language cannot be determined.
const DefaultLanguage = "en-US"

// SystemLanguage returns the canonical tag of the user's language:
// the platform locale first, then the LC_ALL, LC_MESSAGES and LANG
// environment variables, then [DefaultLanguage].
func SystemLanguage() string {
	if tag, err := locale.GetLocale(); err == nil && usable(tag) {
		return Canonical(tag)
	}
	return languageFromEnv(os.Getenv)
}

func languageFromEnv(getenv func(string) string) string {
	for _, v := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if tag := getenv(v); usable(tag) {
			return Canonical(tag)
		}
	}
	return DefaultLanguage
}

// usable reports whether tag names an actual language; the POSIX
// locales C and POSIX do not.
func usable(tag string) bool {
	switch Canonical(tag) {
	case "", "C", "POSIX", "c", "posix", "und":
		return false
	}
	return true
}
