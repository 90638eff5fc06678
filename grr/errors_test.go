// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grr

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	_, cause := strconv.Atoi("x1")
	var err error = &ParseError{Kind: "number", Input: "x1", Err: cause}
	assert.Equal(t, `invalid number "x1": strconv.Atoi: parsing "x1": invalid syntax`, err.Error())
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	wrapped := fmt.Errorf("field: %w", err)
	var pe *ParseError
	require.True(t, errors.As(wrapped, &pe))
	assert.Equal(t, "x1", pe.Input)

	assert.Equal(t, `invalid hex color "#12"`, (&ParseError{Kind: "hex color", Input: "#12"}).Error())
}

func TestResourceMissing(t *testing.T) {
	err := &ResourceMissing{Kind: "translation", Name: "button.ok"}
	assert.Equal(t, `translation not found: "button.ok"`, err.Error())
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 3, Log1(3, errors.New("logged")))
	assert.NoError(t, Log(nil))
	assert.Equal(t, "v", Must1("v", nil))
	assert.Panics(t, func() { Must1(0, errors.New("boom")) })
}
