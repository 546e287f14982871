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

package document

import (
	"maps"
	"slices"

	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/color"
	"seehuhn.de/go/minipdf/font"
)

// Resources is the resource dictionary of a page.
//
// Resources are identified by name, separately for each category.  Adding
// a resource under an existing name replaces the previous entry.  Entries
// are written in order of their names.
type Resources struct {
	fonts       map[minipdf.Name]font.Font
	colorSpaces map[minipdf.Name]color.Space

	ref minipdf.Ref
}

// AddFont adds a font under the given name.
func (r *Resources) AddFont(name minipdf.Name, f font.Font) {
	if r.fonts == nil {
		r.fonts = make(map[minipdf.Name]font.Font)
	}
	r.fonts[name] = f
}

// Font returns the font with the given name.
func (r *Resources) Font(name minipdf.Name) (font.Font, bool) {
	f, ok := r.fonts[name]
	return f, ok
}

// AddColorSpace adds a color space under the given name.
func (r *Resources) AddColorSpace(name minipdf.Name, cs color.Space) {
	if r.colorSpaces == nil {
		r.colorSpaces = make(map[minipdf.Name]color.Space)
	}
	r.colorSpaces[name] = cs
}

// ColorSpace returns the color space with the given name.
func (r *Resources) ColorSpace(name minipdf.Name) (color.Space, bool) {
	cs, ok := r.colorSpaces[name]
	return cs, ok
}

// Ref returns the reference of the resource dictionary.
func (r *Resources) Ref() minipdf.Ref {
	return r.ref
}

// Identify assigns an object number to the resource dictionary.
func (r *Resources) Identify(reg *minipdf.Registry) {
	r.ref = reg.Next()
}

// Children returns the fonts, followed by the indirect objects used by the
// color spaces.  Both are ordered by resource name.
func (r *Resources) Children() []minipdf.Node {
	var res []minipdf.Node
	for _, name := range slices.Sorted(maps.Keys(r.fonts)) {
		res = append(res, r.fonts[name])
	}
	for _, name := range slices.Sorted(maps.Keys(r.colorSpaces)) {
		res = append(res, color.Nodes(r.colorSpaces[name])...)
	}
	return res
}

// Render returns the resource dictionary.
func (r *Resources) Render(depth int) []byte {
	dict := &minipdf.Dict{}
	if len(r.fonts) > 0 {
		fonts := &minipdf.Dict{}
		for _, name := range slices.Sorted(maps.Keys(r.fonts)) {
			fonts.Set(name, r.fonts[name].Ref().String())
		}
		dict.Set("Font", fonts.String())
	}
	if len(r.colorSpaces) > 0 {
		spaces := &minipdf.Dict{}
		for _, name := range slices.Sorted(maps.Keys(r.colorSpaces)) {
			spaces.Set(name, color.Value(r.colorSpaces[name]))
		}
		dict.Set("ColorSpace", spaces.String())
	}
	return minipdf.Object(r.ref, dict.String(), depth)
}
