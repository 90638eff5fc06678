// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grr

import "fmt"

// ParseError reports input that could not be parsed, such as a malformed
// hex color or a non-numeric value typed into a number field.
type ParseError struct {

	// Kind is what was being parsed, for example "hex color" or "email".
	Kind string

	// Input is the offending input text.
	Input string

	// Err is the underlying cause, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Kind, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ResourceMissing reports that a named resource, such as an icon or
// a translation key, could not be resolved.
type ResourceMissing struct {

	// Kind is the kind of resource, for example "translation" or "icon".
	Kind string

	// Name is the name or key that was looked up.
	Name string
}

func (e *ResourceMissing) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.Name)
}
