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

package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/content"
	"seehuhn.de/go/minipdf/document"
	"seehuhn.de/go/minipdf/font"
	"seehuhn.de/go/minipdf/layout"
)

// Document constructs the document described by c.
// The description must have been checked using [Config.Validate].
// The logger may be nil.
func (c *Config) Document(logger *slog.Logger) (*document.Document, error) {
	ver, err := minipdf.ParseVersion(c.Version)
	if err != nil {
		return nil, err
	}
	paper, _ := document.PaperSize(c.Paper)

	doc := document.New(ver)
	doc.Binary = c.Binary
	doc.Logger = logger
	if c.Lang != "" {
		doc.Lang, err = language.Parse(c.Lang)
		if err != nil {
			return nil, err
		}
	}
	if c.Info != (Info{}) {
		info := &document.Info{
			Title:    c.Info.Title,
			Author:   c.Info.Author,
			Subject:  c.Info.Subject,
			Keywords: c.Info.Keywords,
			Creator:  c.Info.Creator,
			Producer: c.Info.Producer,
		}
		if c.Info.Created != "" {
			info.CreationDate, err = parseDate(c.Info.Created)
			if err != nil {
				return nil, err
			}
		}
		doc.Info = info
	}

	// font objects are shared between all pages
	fonts := make(map[font.Standard]*font.Type1)
	for _, pc := range c.Pages {
		size := paper
		if pc.Paper != "" {
			size, _ = document.PaperSize(pc.Paper)
		}
		p := document.NewPage(size)
		if err := p.SetRotate(pc.Rotate); err != nil {
			return nil, err
		}

		out := p.Content()
		for _, r := range pc.Rects {
			col, err := parseColor(r.Color)
			if err != nil {
				return nil, err
			}
			setFill(out, col)
			out.FillRectangle(r.X, r.Y, r.Width, r.Height)
		}

		names := make(map[font.Standard]minipdf.Name)
		for _, t := range pc.Text {
			std := font.Standard(t.Font)
			name, ok := names[std]
			if !ok {
				f, ok := fonts[std]
				if !ok {
					f = font.New(std)
					fonts[std] = f
				}
				name = minipdf.Name(fmt.Sprintf("F%d", len(names)))
				names[std] = name
				p.Resources().AddFont(name, f)
			}

			col, err := parseColor(t.Color)
			if err != nil {
				return nil, err
			}
			setFill(out, col)
			out.FillText(name, t.Size, t.X, t.Y, t.Text)
		}
		if err := out.Close(); err != nil {
			return nil, err
		}

		doc.Push(p)
	}

	if c.Markdown != "" {
		err := c.typeset(doc, paper)
		if err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func (c *Config) typeset(doc *document.Document, paper rect.Rect) error {
	src, err := os.ReadFile(c.path(c.Markdown))
	if err != nil {
		return err
	}

	e := layout.New(doc)
	e.Paper = paper
	e.PageNumbers = c.PageNumbers
	if c.AFM != "" {
		fd, err := os.Open(c.path(c.AFM))
		if err != nil {
			return err
		}
		metrics, err := font.ReadAFM(fd)
		fd.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", c.AFM, err)
		}
		f, err := font.NewType1(metrics.FontName)
		if err != nil {
			return fmt.Errorf("%s: %w", c.AFM, err)
		}
		e.SetFont(layout.Regular, f, metrics)
	}
	e.RenderMarkdown(src)
	return nil
}

// setFill sets the fill color for the following operators.  Gray values
// use the "g" operator.
func setFill(out *content.Stream, col color.RGBA) {
	if col.R == col.G && col.G == col.B {
		out.SetFillGray(float64(col.R) / 255)
		return
	}
	out.SetFillRGB(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255)
}
