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

// Package layout typesets Markdown text onto the pages of a document.
//
// The [Engine] walks the syntax tree produced by goldmark and writes
// headings, paragraphs, lists, block quotes and code blocks as lines of
// text.  Lines are broken using the glyph widths of the fonts, and a new
// page is started whenever the next line would extend into the bottom
// margin.  All pages created by an Engine share the same font objects.
package layout

import (
	"strconv"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/document"
	"seehuhn.de/go/minipdf/font"
)

// Style selects one of the fonts used by the engine.
type Style int

// These are the text styles used by the engine.
const (
	Regular Style = iota
	Bold
	Code
	numStyles
)

// resource names of the fonts, indexed by Style
var fontNames = [numStyles]minipdf.Name{"F1", "F2", "F3"}

// Margins gives the distance between the text area and the page edges.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Engine lays out text on the pages of a document.
type Engine struct {
	// Paper is the size of the pages created by the engine.
	Paper rect.Rect

	Margins Margins

	// FontSize is the size of body text.  Headings are set in larger sizes.
	FontSize float64

	// LineHeight is the distance between baselines, as a multiple of the
	// font size.
	LineHeight float64

	// PageNumbers controls whether page numbers are printed at the bottom
	// of each page.
	PageNumbers bool

	doc     *document.Document
	fonts   [numStyles]font.Font
	metrics [numStyles]*font.Metrics

	page   *document.Page
	pageNo int
	y      float64
}

// New returns an engine which appends pages to doc.
// Text is set in Helvetica, headings in Helvetica-Bold and code in Courier.
func New(doc *document.Document) *Engine {
	e := &Engine{
		Paper: document.A4,
		Margins: Margins{
			Top:    36,
			Right:  50,
			Bottom: 36,
			Left:   50,
		},
		FontSize:   11,
		LineHeight: 1.2,
		doc:        doc,
	}
	for style, f := range [numStyles]font.Standard{font.Helvetica, font.HelveticaBold, font.Courier} {
		e.fonts[style] = font.New(f)
		e.metrics[style] = font.EstimateMetrics(f)
	}
	return e
}

// SetFont replaces the font used for the given style.  The metrics are
// used for line breaking and must describe f.
func (e *Engine) SetFont(style Style, f font.Font, m *font.Metrics) {
	e.fonts[style] = f
	e.metrics[style] = m
}

// Font returns the font used for the given style.
func (e *Engine) Font(style Style) font.Font {
	return e.fonts[style]
}

// Pages returns the number of pages created by the engine so far.
func (e *Engine) Pages() int {
	return e.pageNo
}

// textWidth returns the width of the text area, to the right of x.
func (e *Engine) textWidth(x float64) float64 {
	return e.Paper.URx - e.Margins.Right - x
}

// newPage appends a new page to the document and moves the cursor to the
// top of the text area.
func (e *Engine) newPage() {
	p := document.NewPage(e.Paper)
	res := p.Resources()
	for style, f := range e.fonts {
		res.AddFont(fontNames[style], f)
	}
	e.page = e.doc.Push(p)
	e.pageNo++
	e.y = e.Paper.URy - e.Margins.Top

	if e.PageNumbers {
		label := "- " + strconv.Itoa(e.pageNo) + " -"
		size := e.FontSize * 0.9
		w := e.metrics[Regular].Width(label, size)
		x := e.Paper.LLx + (e.Paper.URx-e.Paper.LLx-w)/2
		y := e.Paper.LLy + e.Margins.Bottom/2
		p.Content().FillText(fontNames[Regular], size, x, y, label)
	}
}

// reserve makes sure that a line of the given height fits on the current
// page, starting a new page if needed.  The baseline of the line is
// returned, and the cursor is advanced.
func (e *Engine) reserve(height, size float64) float64 {
	if e.page == nil || e.y-height < e.Paper.LLy+e.Margins.Bottom {
		e.newPage()
	}
	baseline := e.y - size
	e.y -= height
	return baseline
}

// skip moves the cursor down by the given amount.  No skip is performed at
// the top of a page.
func (e *Engine) skip(amount float64) {
	if e.page == nil || e.y >= e.Paper.URy-e.Margins.Top {
		return
	}
	e.y -= amount
}
