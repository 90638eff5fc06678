// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/material/colors"
	"cogentcore.org/material/grr"
	"cogentcore.org/material/matcolor"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
)

// Themes are the theme modes a user can choose.
type Themes int32

const (
	// ThemeLight is a light theme
	ThemeLight Themes = iota

	// ThemeDark is a dark theme
	ThemeDark

	// ThemeAuto follows the system setting, through [SystemIsDark]
	ThemeAuto

	ThemesN
)

var themesNames = [ThemesN]string{"Light", "Dark", "Auto"}

func (th Themes) String() string {
	if th < 0 || th >= ThemesN {
		return "Themes(?)"
	}
	return themesNames[th]
}

// ThemesString returns the theme mode with the given name, ignoring case.
func ThemesString(s string) (Themes, error) {
	for i, n := range themesNames {
		if strings.EqualFold(n, s) {
			return Themes(i), nil
		}
	}
	return ThemeAuto, &grr.ParseError{Kind: "theme mode", Input: s}
}

// MarshalText implements [encoding.TextMarshaler].
func (th Themes) MarshalText() ([]byte, error) { return []byte(th.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (th *Themes) UnmarshalText(text []byte) error {
	v, err := ThemesString(string(text))
	if err != nil {
		return err
	}
	*th = v
	return nil
}

// SystemIsDark reports whether the system prefers a dark theme.
// It is used to resolve [ThemeAuto]. The default checks whether the
// terminal has a dark background; GUI hosts replace it with the
// platform setting.
var SystemIsDark = func() bool {
	return termenv.HasDarkBackground()
}

// Settings are the user theme settings, stored in a TOML file.
type Settings struct {

	// Mode is the theme mode
	Mode Themes `toml:"mode"`

	// Seed is the color used to generate the color scheme, as a hex
	// color or a color name
	Seed string `toml:"seed"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() *Settings {
	return &Settings{Mode: ThemeAuto, Seed: DefaultSeed.Hex()}
}

// Clone returns a copy of the settings.
func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}

// Overrides are settings given as text, such as command line flags.
// Empty fields leave the setting unchanged.
type Overrides struct {

	// Mode is a [Themes] name, matched ignoring case.
	Mode string

	// Seed is a hex color or a color name.
	Seed string
}

// overrideConverters parse the text of [Overrides] into settings
// values. Seeds are stored as normalized hex.
var overrideConverters = []copier.TypeConverter{
	{
		SrcType: copier.String,
		DstType: ThemeAuto,
		Fn: func(src any) (any, error) {
			return ThemesString(src.(string))
		},
	},
	{
		SrcType: copier.String,
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			c, err := colors.Parse(src.(string))
			if err != nil {
				return nil, err
			}
			return c.Hex(), nil
		},
	},
}

// Override returns a copy of the settings with the non-empty overrides
// applied. The settings are unchanged, and nil is returned, if an
// override does not parse.
func (s *Settings) Override(o Overrides) (*Settings, error) {
	c := s.Clone()
	err := copier.CopyWithOption(c, &o, copier.Option{IgnoreEmpty: true, Converters: overrideConverters})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SeedColor parses the seed color.
func (s *Settings) SeedColor() (colors.ARGB, error) {
	return colors.Parse(s.Seed)
}

// ResolveMode returns the scheme mode for the settings, resolving
// [ThemeAuto] through [SystemIsDark].
func (s *Settings) ResolveMode() matcolor.Mode {
	switch s.Mode {
	case ThemeDark:
		return matcolor.Dark
	case ThemeAuto:
		if SystemIsDark() {
			return matcolor.Dark
		}
	}
	return matcolor.Light
}

// Apply replaces the theme with the settings' seed and mode. The theme
// is left unchanged, keeping its revision, when they are already in
// effect or when the seed color is invalid.
func (s *Settings) Apply(t *Theme) error {
	seed, err := s.SeedColor()
	if err != nil {
		return err
	}
	mode := s.ResolveMode()
	cur := t.Get()
	if cur.Seed == seed.Opaque() && cur.Mode == mode {
		return nil
	}
	t.Replace(seed, mode)
	return nil
}

// DefaultSettingsPath returns the default location of the settings file,
// ~/.config/material/theme.toml.
func DefaultSettingsPath() string {
	dir := grr.Log1(homedir.Expand("~/.config"))
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, "material", "theme.toml")
}

// LoadSettings returns the default settings overridden by those in the
// given TOML file. A missing file is not an error.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil // it is okay for settings to not be saved
	}
	if err != nil {
		return s, err
	}
	if err := toml.Unmarshal(b, s); err != nil {
		return DefaultSettings(), &grr.ParseError{Kind: "settings file", Input: path, Err: err}
	}
	slog.Debug("loaded theme settings", "path", path, "mode", s.Mode, "seed", s.Seed)
	return s, nil
}

// SaveSettings saves the settings to the given TOML file, creating its
// directory if needed.
func SaveSettings(path string, s *Settings) error {
	b, err := toml.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
