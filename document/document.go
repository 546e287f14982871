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

// Package document assembles the objects of a PDF file.
//
// A [Document] owns a page tree.  Pages are added using [Document.Push], and
// the complete file is produced by [Document.Build], [Document.WriteTo] or
// [Document.WriteFile].  A document can be modified and built again any
// number of times; object numbers are assigned afresh for every build.
//
// The objects of the file are written in the following order: the page tree
// (object 1), then for each page the page object, its resource dictionary,
// the fonts and color space objects used by the page, and its content
// stream.  The document catalog follows, and finally the optional document
// information dictionary and XMP metadata stream.
//
// A Document must not be used concurrently from more than one goroutine.
package document

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/text/language"

	"seehuhn.de/go/minipdf"
)

// Document is a PDF document under construction.
type Document struct {
	// Version is the PDF version written in the file header.
	Version minipdf.Version

	// Binary controls whether a comment line with non-ASCII bytes is
	// written after the file header.
	Binary bool

	// Lang (optional) is the natural language of the document text.
	Lang language.Tag

	// Info (optional) is written as the document information dictionary
	// and as an XMP metadata stream.
	Info *Info

	// Logger (optional) receives a debug message for every build.
	Logger *slog.Logger

	tree PageTree
}

// New returns an empty document.
func New(ver minipdf.Version) *Document {
	return &Document{
		Version: ver,
		Binary:  true,
	}
}

// Push appends a page at the end of the document.  The returned page is
// the same as p, and can be used to modify the page after it has been
// added.
//
// A page can be added to a document only once.  Push panics if p is
// already part of the document.
func (d *Document) Push(p *Page) *Page {
	if slices.Contains(d.tree.pages, p) {
		panic("document: page added twice")
	}
	d.tree.Append(p)
	return p
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return d.tree.Len()
}

// Page returns the i-th page of the document, starting from 0.
func (d *Document) Page(i int) *Page {
	return d.tree.pages[i]
}

// Root returns the page tree of the document.
func (d *Document) Root() *PageTree {
	return &d.tree
}

// Build returns the complete PDF file.
// Build panics if d.Version is not a valid PDF version.
func (d *Document) Build() []byte {
	buf := &bytes.Buffer{}
	_, err := d.WriteTo(buf)
	if err != nil {
		// only an invalid version can cause an error here
		panic(err)
	}
	return buf.Bytes()
}

// WriteTo writes the complete PDF file to w.
// This implements the [io.WriterTo] interface.
//
// If d.Version is not a valid PDF version, an error is returned and
// nothing is written.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if _, err := d.Version.ToString(); err != nil {
		return 0, &minipdf.WriteError{Err: err}
	}

	reg := minipdf.NewRegistry()
	reg.ReserveRoot()
	minipdf.AssignRefs(&d.tree, reg)

	out := minipdf.NewWriter(w, d.Version, d.Binary)
	for _, obj := range minipdf.Flatten(&d.tree) {
		out.WriteObject(obj)
	}

	cat := &catalog{
		pages: d.tree.Ref(),
		lang:  d.Lang,
	}
	cat.Identify(reg)

	var trailing []minipdf.Node
	var infoRef minipdf.Ref
	if d.Info != nil {
		info := &infoDict{info: d.Info}
		info.Identify(reg)
		infoRef = info.Ref()
		trailing = append(trailing, info)

		data, err := encodeXMP(d.Info, d.Lang)
		if err != nil {
			d.log("XMP metadata omitted", "error", err)
		} else {
			meta := &metadataStream{data: data}
			meta.Identify(reg)
			cat.metadata = meta.Ref()
			trailing = append(trailing, meta)
		}
	}

	out.WriteObject(cat)
	for _, obj := range trailing {
		out.WriteObject(obj)
	}

	if out.Size() != reg.Size() {
		panic(fmt.Sprintf("document: %d objects numbered, %d written",
			reg.Size()-1, out.Size()-1))
	}

	n, err := out.Close(cat.Ref(), infoRef)
	if err != nil {
		return n, err
	}
	d.log("document written",
		"version", d.Version,
		"pages", d.tree.Len(),
		"objects", out.Size()-1,
		"bytes", n)
	return n, nil
}

// WriteFile writes the complete PDF file to the named file.
func (d *Document) WriteFile(name string) error {
	if _, err := d.Version.ToString(); err != nil {
		return &minipdf.WriteError{Path: name, Err: err}
	}
	err := os.WriteFile(name, d.Build(), 0o644)
	if err != nil {
		return &minipdf.WriteError{Path: name, Err: err}
	}
	return nil
}

func (d *Document) log(msg string, args ...any) {
	if d.Logger == nil {
		return
	}
	d.Logger.Debug(msg, args...)
}
