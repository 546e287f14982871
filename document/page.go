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
	"fmt"
	"strconv"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/content"
	"seehuhn.de/go/minipdf/internal/float"
)

// Page is a page of a document.  Each page owns a resource dictionary
// and a content stream.
type Page struct {
	// MediaBox gives the size of the page.
	MediaBox rect.Rect

	rotate    int
	resources *Resources
	content   *content.Stream

	ref    minipdf.Ref
	parent minipdf.Ref
}

// NewPage returns a new, empty page with the given size.
func NewPage(mediaBox rect.Rect) *Page {
	return &Page{
		MediaBox:  mediaBox,
		resources: &Resources{},
		content:   content.New(),
	}
}

// Resources returns the resource dictionary of the page.
func (p *Page) Resources() *Resources {
	return p.resources
}

// Content returns the content stream of the page.
func (p *Page) Content() *content.Stream {
	return p.content
}

// Parent returns the reference of the page tree, as assigned by the most
// recent build.
func (p *Page) Parent() minipdf.Ref {
	return p.parent
}

// Rotate returns the number of degrees by which the page is rotated
// clockwise when displayed.
func (p *Page) Rotate() int {
	return p.rotate
}

// SetRotate sets the number of degrees by which the page is rotated
// clockwise when displayed.  The angle must be a multiple of 90.
func (p *Page) SetRotate(degrees int) error {
	if degrees%90 != 0 {
		return fmt.Errorf("invalid page rotation %d", degrees)
	}
	p.rotate = (degrees%360 + 360) % 360
	return nil
}

// Ref returns the reference of the page object.
func (p *Page) Ref() minipdf.Ref {
	return p.ref
}

// Identify assigns an object number to the page and records the reference
// of the page tree as its parent.
func (p *Page) Identify(reg *minipdf.Registry) {
	p.ref = reg.Next()
	p.parent = reg.Root()
}

// Children returns the resource dictionary and the content stream.
func (p *Page) Children() []minipdf.Node {
	return []minipdf.Node{p.resources, p.content}
}

// Render returns the /Page dictionary.
func (p *Page) Render(depth int) []byte {
	dict := &minipdf.Dict{}
	dict.Set("Type", "/Page")
	dict.Set("Parent", p.parent.String())
	dict.Set("MediaBox", formatRect(p.MediaBox))
	dict.Set("Resources", p.resources.ref.String())
	dict.Set("Contents", p.content.Ref().String())
	if p.rotate != 0 {
		dict.Set("Rotate", strconv.Itoa(p.rotate))
	}
	return minipdf.Object(p.ref, dict.String(), depth)
}

func formatRect(r rect.Rect) string {
	return "[" + float.Format(r.LLx, 3) + " " + float.Format(r.LLy, 3) + " " +
		float.Format(r.URx, 3) + " " + float.Format(r.URy, 3) + "]"
}
