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
	"errors"

	"seehuhn.de/go/minipdf"
)

// Font is a font resource.  The only implementation is [*Type1].
type Font interface {
	minipdf.Node

	// BaseFont returns the PostScript name of the font.
	BaseFont() minipdf.Name

	isFont()
}

// Type1 is a simple Type 1 font which is not embedded in the file.
type Type1 struct {
	// Encoding (optional) is the name of a predefined encoding, for example
	// "WinAnsiEncoding".  If this is empty, the font's built-in encoding is
	// used.
	Encoding minipdf.Name

	baseFont minipdf.Name
	ref      minipdf.Ref
}

// ErrEmptyName is returned by [NewType1] if the font name is empty.
var ErrEmptyName = errors.New("font: empty base font name")

// NewType1 returns a font resource for the Type 1 font with the given
// PostScript name.
func NewType1(name string) (*Type1, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Type1{baseFont: minipdf.Name(name)}, nil
}

// New returns a font resource for one of the standard fonts.
// Text fonts use WinAnsiEncoding, the symbol fonts use their built-in
// encoding.
func New(f Standard) *Type1 {
	res := &Type1{baseFont: minipdf.Name(f)}
	if !f.IsSymbolic() {
		res.Encoding = "WinAnsiEncoding"
	}
	return res
}

// BaseFont returns the PostScript name of the font.
func (f *Type1) BaseFont() minipdf.Name {
	return f.baseFont
}

func (f *Type1) isFont() {}

// Ref returns the reference of the font dictionary.
func (f *Type1) Ref() minipdf.Ref {
	return f.ref
}

// Identify assigns an object number to the font dictionary.
func (f *Type1) Identify(reg *minipdf.Registry) {
	f.ref = reg.Next()
}

// Children returns nil.  Fonts which are not embedded do not refer to
// other objects.
func (f *Type1) Children() []minipdf.Node {
	return nil
}

// Render returns the font dictionary.
func (f *Type1) Render(depth int) []byte {
	dict := &minipdf.Dict{}
	dict.Set("Type", "/Font")
	dict.Set("Subtype", "/Type1")
	dict.Set("BaseFont", f.baseFont.String())
	if f.Encoding != "" {
		dict.Set("Encoding", f.Encoding.String())
	}
	return minipdf.Object(f.ref, dict.String(), depth)
}
