// seehuhn.de/go/minipdf - a small library for writing PDF object graphs
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package font

import (
	"io"
	"maps"
	"slices"

	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/postscript/afm"
	"seehuhn.de/go/postscript/type1/names"
)

// Metrics holds the glyph widths of a simple font, in PDF glyph space
// units (1/1000 of the font size), indexed by character code.
type Metrics struct {
	FontName string

	Widths [256]float64

	// Default is used for character codes which have no width.
	Default float64
}

// ReadAFM reads the glyph widths from an AFM file.  Glyphs are assigned to
// WinAnsiEncoding character codes using their glyph names, so that the
// encoding given in the file does not matter.
func ReadAFM(r io.Reader) (*Metrics, error) {
	info, err := afm.Read(r)
	if err != nil {
		return nil, err
	}

	m := &Metrics{
		FontName: info.FontName,
	}

	n := 0
	total := 0.0
	for _, name := range slices.Sorted(maps.Keys(info.Glyphs)) {
		glyph := info.Glyphs[name]
		rr := []rune(names.ToUnicode(name, info.FontName))
		if len(rr) != 1 {
			continue
		}
		code, ok := winAnsiCode(rr[0])
		if !ok {
			continue
		}
		w := float64(glyph.WidthX)
		m.Widths[code] = w
		if w > 0 {
			n++
			total += w
		}
	}
	if n > 0 {
		m.Default = total / float64(n)
	}
	return m, nil
}

// EstimateMetrics returns approximate glyph widths for one of the standard
// fonts.  The widths are exact for the fixed pitch fonts.  For the other
// fonts, the values are averages over classes of characters.
func EstimateMetrics(f Standard) *Metrics {
	m := &Metrics{FontName: string(f)}

	if f.IsFixedPitch() {
		for i := range m.Widths {
			m.Widths[i] = 600
		}
		m.Default = 600
		return m
	}

	var space, upper, lower, digit, other float64
	switch {
	case f == Helvetica || f == HelveticaOblique ||
		f == HelveticaBold || f == HelveticaBoldOblique:
		space, upper, lower, digit, other = 278, 667, 520, 556, 333
	default:
		space, upper, lower, digit, other = 250, 667, 450, 500, 333
	}
	scale := 1.0
	if f.IsBold() {
		scale = 1.06
	}
	for i := range m.Widths {
		c := byte(i)
		var w float64
		switch {
		case c == ' ':
			w = space
		case c >= 'A' && c <= 'Z':
			w = upper
		case c >= 'a' && c <= 'z':
			w = lower
		case c >= '0' && c <= '9':
			w = digit
		default:
			w = other
		}
		m.Widths[i] = w * scale
	}
	m.Default = lower * scale
	return m
}

// Width returns the width of s, set at the given font size, in PDF user
// space units.  Characters are mapped to codes using WinAnsiEncoding.
func (m *Metrics) Width(s string, size float64) float64 {
	total := 0.0
	for _, r := range s {
		w := m.Default
		if code, ok := winAnsiCode(r); ok && m.Widths[code] > 0 {
			w = m.Widths[code]
		}
		total += w
	}
	return total * size / 1000
}

func winAnsiCode(r rune) (byte, bool) {
	return charmap.Windows1252.EncodeRune(r)
}
