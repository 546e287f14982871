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

import "strings"

// Standard identifies one of the 14 standard PDF fonts.
type Standard string

// Constants for the 14 standard PDF fonts.
const (
	Courier              Standard = "Courier"
	CourierBold          Standard = "Courier-Bold"
	CourierBoldOblique   Standard = "Courier-BoldOblique"
	CourierOblique       Standard = "Courier-Oblique"
	Helvetica            Standard = "Helvetica"
	HelveticaBold        Standard = "Helvetica-Bold"
	HelveticaBoldOblique Standard = "Helvetica-BoldOblique"
	HelveticaOblique     Standard = "Helvetica-Oblique"
	TimesRoman           Standard = "Times-Roman"
	TimesBold            Standard = "Times-Bold"
	TimesBoldItalic      Standard = "Times-BoldItalic"
	TimesItalic          Standard = "Times-Italic"
	Symbol               Standard = "Symbol"
	ZapfDingbats         Standard = "ZapfDingbats"
)

// All contains the 14 standard PDF fonts.
var All = []Standard{
	Courier,
	CourierBold,
	CourierBoldOblique,
	CourierOblique,
	Helvetica,
	HelveticaBold,
	HelveticaBoldOblique,
	HelveticaOblique,
	TimesRoman,
	TimesBold,
	TimesBoldItalic,
	TimesItalic,
	Symbol,
	ZapfDingbats,
}

// IsStandard reports whether name is the name of one of the standard fonts.
func IsStandard(name string) bool {
	for _, f := range All {
		if string(f) == name {
			return true
		}
	}
	return false
}

// IsSymbolic reports whether the font uses a special glyph set instead of
// the Latin text glyphs.
func (f Standard) IsSymbolic() bool {
	return f == Symbol || f == ZapfDingbats
}

// IsFixedPitch reports whether all glyphs of the font have the same width.
func (f Standard) IsFixedPitch() bool {
	return strings.HasPrefix(string(f), "Courier")
}

// IsBold reports whether the font is one of the bold variants.
func (f Standard) IsBold() bool {
	return strings.Contains(string(f), "Bold")
}
