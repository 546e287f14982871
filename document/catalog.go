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
	"bytes"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/xmp"

	"seehuhn.de/go/minipdf"
)

// Info holds the document information which is written to the document
// information dictionary and to the XMP metadata stream.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string

	CreationDate time.Time
	ModDate      time.Time
}

// catalog is the document catalog.  It is written after all objects of the
// page tree.
type catalog struct {
	pages    minipdf.Ref
	metadata minipdf.Ref
	lang     language.Tag

	ref minipdf.Ref
}

func (c *catalog) Ref() minipdf.Ref {
	return c.ref
}

func (c *catalog) Identify(reg *minipdf.Registry) {
	c.ref = reg.Next()
}

func (c *catalog) Children() []minipdf.Node {
	return nil
}

func (c *catalog) Render(depth int) []byte {
	dict := &minipdf.Dict{}
	dict.Set("Type", "/Catalog")
	dict.Set("Pages", c.pages.String())
	if c.lang != language.Und {
		dict.Set("Lang", minipdf.TextString(c.lang.String()))
	}
	if !c.metadata.IsZero() {
		dict.Set("Metadata", c.metadata.String())
	}
	return minipdf.Object(c.ref, dict.String(), depth)
}

// infoDict is the document information dictionary.
type infoDict struct {
	info *Info
	ref  minipdf.Ref
}

func (d *infoDict) Ref() minipdf.Ref {
	return d.ref
}

func (d *infoDict) Identify(reg *minipdf.Registry) {
	d.ref = reg.Next()
}

func (d *infoDict) Children() []minipdf.Node {
	return nil
}

func (d *infoDict) Render(depth int) []byte {
	info := d.info
	dict := &minipdf.Dict{}
	for _, e := range []struct {
		key minipdf.Name
		val string
	}{
		{"Title", info.Title},
		{"Author", info.Author},
		{"Subject", info.Subject},
		{"Keywords", info.Keywords},
		{"Creator", info.Creator},
		{"Producer", info.Producer},
	} {
		if e.val != "" {
			dict.Set(e.key, minipdf.TextString(e.val))
		}
	}
	if !info.CreationDate.IsZero() {
		dict.Set("CreationDate", minipdf.Date(info.CreationDate))
	}
	if !info.ModDate.IsZero() {
		dict.Set("ModDate", minipdf.Date(info.ModDate))
	}
	return minipdf.Object(d.ref, dict.String(), depth)
}

// metadataStream is an XMP metadata stream.
type metadataStream struct {
	data []byte
	ref  minipdf.Ref
}

func (m *metadataStream) Ref() minipdf.Ref {
	return m.ref
}

func (m *metadataStream) Identify(reg *minipdf.Registry) {
	m.ref = reg.Next()
}

func (m *metadataStream) Children() []minipdf.Node {
	return nil
}

func (m *metadataStream) Render(depth int) []byte {
	dict := &minipdf.Dict{}
	dict.Set("Type", "/Metadata")
	dict.Set("Subtype", "/XML")
	return minipdf.StreamObject(m.ref, dict, m.data, depth)
}

// pdfNamespace holds the properties of the Adobe PDF schema.
type pdfNamespace struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

// encodeXMP returns an XMP packet with the same information as info.
func encodeXMP(info *Info, lang language.Tag) ([]byte, error) {
	xDefault := language.MustParse("x-default")

	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(xDefault, info.Title)
		if lang != language.Und {
			dc.Title.Set(lang, info.Title)
		}
	}
	if info.Subject != "" {
		dc.Description.Set(xDefault, info.Subject)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}

	basic := &xmp.Basic{}
	if !info.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(info.CreationDate)
	}
	if !info.ModDate.IsZero() {
		basic.ModifyDate = xmp.NewDate(info.ModDate)
	}

	pdfInfo := &pdfNamespace{}
	if info.Keywords != "" {
		pdfInfo.Keywords = xmp.NewText(info.Keywords)
	}
	if info.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(info.Producer)
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic, pdfInfo)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	err = packet.Write(buf, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
