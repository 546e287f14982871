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
	"strconv"
	"strings"

	"seehuhn.de/go/minipdf"
)

// PageTree is the root of the page tree.  It holds the pages of a document
// in display order, and is always written as object 1.
type PageTree struct {
	pages []*Page
	ref   minipdf.Ref
}

// Append adds a page at the end of the tree.
func (t *PageTree) Append(p *Page) {
	t.pages = append(t.pages, p)
}

// Len returns the number of pages.
func (t *PageTree) Len() int {
	return len(t.pages)
}

// Ref returns the reference of the page tree root.
func (t *PageTree) Ref() minipdf.Ref {
	return t.ref
}

// Identify sets the reference of the page tree to the root reference
// reserved in reg.
func (t *PageTree) Identify(reg *minipdf.Registry) {
	t.ref = reg.Root()
}

// Children returns the pages, in display order.
func (t *PageTree) Children() []minipdf.Node {
	res := make([]minipdf.Node, len(t.pages))
	for i, p := range t.pages {
		res[i] = p
	}
	return res
}

// Render returns the /Pages dictionary.
func (t *PageTree) Render(depth int) []byte {
	kids := make([]string, len(t.pages))
	for i, p := range t.pages {
		kids[i] = p.ref.String()
	}

	dict := &minipdf.Dict{}
	dict.Set("Type", "/Pages")
	dict.Set("Kids", "["+strings.Join(kids, " ")+"]")
	dict.Set("Count", strconv.Itoa(len(t.pages)))
	return minipdf.Object(t.ref, dict.String(), depth)
}
