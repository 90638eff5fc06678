// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/material/cam/cie"
	"cogentcore.org/material/colors"
	"cogentcore.org/material/grr"
	"cogentcore.org/material/hct"
	"cogentcore.org/material/matcolor"
	"github.com/muesli/termenv"
)

// printer writes rows of colors with swatches. Swatches are plain text
// when the output is not a color terminal.
type printer struct {
	w      io.Writer
	out    *termenv.Output
	format string
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	if _, err := formatColor(colors.Black, format); err != nil {
		return nil, err
	}
	return &printer{w: w, out: termenv.NewOutput(w), format: format}, nil
}

// swatch returns text on a block of c, in black or white, whichever
// contrasts more.
func (p *printer) swatch(c colors.ARGB, text string) string {
	fg := colors.Black
	if hct.IsDark(c) {
		fg = colors.White
	}
	return p.out.String(" " + text + " ").
		Background(p.out.Color(c.Opaque().Hex())).
		Foreground(p.out.Color(fg.Hex())).
		String()
}

// row prints one labeled color.
func (p *printer) row(label string, c colors.ARGB) {
	s := grr.Must1(formatColor(c, p.format))
	fmt.Fprintf(p.w, "%s %-28s %s\n", p.swatch(c, "    "), label, s)
}

// tones prints a tonal palette at the standard tones.
func (p *printer) tones(name string, t *matcolor.Tones) {
	fmt.Fprintf(p.w, "%s (hue %.1f, chroma %.1f)\n", name, t.Hue, t.Chroma)
	for _, tone := range matcolor.StandardTones {
		c := t.AbsTone(tone)
		s := grr.Must1(formatColor(c, p.format))
		fmt.Fprintf(p.w, "%s %s\n", p.swatch(c, fmt.Sprintf("%3d", tone)), s)
	}
}

// scheme prints every role of a scheme.
func (p *printer) scheme(s *matcolor.Scheme) {
	fmt.Fprintf(p.w, "%s scheme\n", s.Mode)
	for _, r := range matcolor.RoleValues() {
		p.row(r.String(), s.Get(r))
	}
}

// formatColor formats c as hex, rgb, hsl, lab or hct.
func formatColor(c colors.ARGB, format string) (string, error) {
	switch strings.ToLower(format) {
	case "hex":
		return c.Hex(), nil
	case "rgb":
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R(), c.G(), c.B()), nil
	case "hsl":
		h, s, l := c.Colorful().Hsl()
		return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100), nil
	case "lab":
		x, y, z := cie.XYZFromARGB(uint32(c))
		l, a, b := cie.XYZToLAB(x/100, y/100, z/100)
		return fmt.Sprintf("lab(%.1f %.1f %.1f)", l, a, b), nil
	case "hct":
		h := hct.FromARGB(c)
		return fmt.Sprintf("hct(%.1f, %.1f, %.1f)", h.Hue, h.Chroma, h.Tone), nil
	}
	return "", &grr.ParseError{Kind: "color format", Input: format}
}
