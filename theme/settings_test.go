// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/material/colors"
	"cogentcore.org/material/grr"
	"cogentcore.org/material/matcolor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withSystemDark(t *testing.T, dark bool) {
	old := SystemIsDark
	SystemIsDark = func() bool { return dark }
	t.Cleanup(func() { SystemIsDark = old })
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "material", "theme.toml")
	s := &Settings{Mode: ThemeDark, Seed: "teal"}
	require.NoError(t, SaveSettings(path, s))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Dark")

	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestLoadSettingsMissing(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "none.toml"))
	assert.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	assert.Equal(t, "#6750A4", s.Seed)
	assert.Equal(t, ThemeAuto, s.Mode)
}

func TestLoadSettingsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("mode = 'Dusk'\n"), 0o644))
	s, err := LoadSettings(path)
	var pe *grr.ParseError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, DefaultSettings(), s)
}

func TestSettingsApply(t *testing.T) {
	withSystemDark(t, true)
	th := Default()
	s := &Settings{Mode: ThemeAuto, Seed: "#4285F4"}
	require.NoError(t, s.Apply(th))
	assert.Equal(t, matcolor.Dark, th.Get().Mode)
	assert.Equal(t, colors.ARGB(0xFF4285F4), th.Get().Seed)
	rev := th.Revision()

	// no change, no new revision
	require.NoError(t, s.Apply(th))
	assert.Equal(t, rev, th.Revision())

	s.Mode = ThemeLight
	require.NoError(t, s.Apply(th))
	assert.Equal(t, matcolor.Light, th.Get().Mode)

	bad := &Settings{Mode: ThemeDark, Seed: "#12"}
	err := bad.Apply(th)
	var pe *grr.ParseError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, matcolor.Light, th.Get().Mode)
}

func TestResolveMode(t *testing.T) {
	withSystemDark(t, false)
	assert.Equal(t, matcolor.Light, (&Settings{Mode: ThemeAuto}).ResolveMode())
	assert.Equal(t, matcolor.Dark, (&Settings{Mode: ThemeDark}).ResolveMode())
	assert.Equal(t, matcolor.Light, (&Settings{Mode: ThemeLight}).ResolveMode())
}

func TestSettingsClone(t *testing.T) {
	s := &Settings{Mode: ThemeDark, Seed: "red"}
	c := s.Clone()
	assert.Equal(t, s, c)
	c.Seed = "blue"
	assert.Equal(t, "red", s.Seed)
}

func TestSettingsOverride(t *testing.T) {
	s := &Settings{Mode: ThemeLight, Seed: "#4285F4"}

	got, err := s.Override(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, s, got)

	got, err = s.Override(Overrides{Mode: "dark"})
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, got.Mode)
	assert.Equal(t, "#4285F4", got.Seed)

	got, err = s.Override(Overrides{Seed: " teal "})
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, got.Mode)
	assert.Equal(t, "#008080", got.Seed)

	got, err = s.Override(Overrides{Mode: "AUTO", Seed: "#aabbcc"})
	require.NoError(t, err)
	assert.Equal(t, &Settings{Mode: ThemeAuto, Seed: "#AABBCC"}, got)
	assert.Equal(t, &Settings{Mode: ThemeLight, Seed: "#4285F4"}, s)

	_, err = s.Override(Overrides{Mode: "dusk"})
	var pe *grr.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "dusk", pe.Input)

	_, err = s.Override(Overrides{Seed: "notacolor"})
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, ThemeLight, s.Mode)
}

func TestDefaultSettingsPath(t *testing.T) {
	p := DefaultSettingsPath()
	assert.True(t, strings.HasSuffix(p, filepath.Join("material", "theme.toml")))
}

func TestWatch(t *testing.T) {
	withSystemDark(t, false)
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, SaveSettings(path, &Settings{Mode: ThemeLight, Seed: "#6750A4"}))

	th := Default()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, th) }()

	require.NoError(t, SaveSettings(path, &Settings{Mode: ThemeDark, Seed: "#6750A4"}))
	assert.Eventually(t, func() bool {
		return th.Get().Mode == matcolor.Dark
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}
