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

package minipdf

import (
	"fmt"
	"io"
)

// Writer writes the indirect objects of a PDF file, followed by the
// cross-reference table and the trailer.
//
// Write errors are sticky: after the first failed write, all further
// output is discarded and the error is reported by Close.
type Writer struct {
	w    *posWriter
	xref XRef
}

// NewWriter starts a new PDF file on w and writes the file header.
//
// If binary is set, the header is followed by a comment line containing
// bytes outside the ASCII range.  This tells file transfer programs to
// treat the file as binary data.
func NewWriter(w io.Writer, ver Version, binary bool) *Writer {
	pdf := &Writer{
		w: &posWriter{w: w},
	}

	versionString, err := ver.ToString()
	if err != nil {
		pdf.w.err = err
		return pdf
	}
	fmt.Fprintf(pdf.w, "%%PDF-%s\n", versionString)
	if binary {
		pdf.w.Write([]byte("%\x80\x80\x80\x80\n"))
	}
	return pdf
}

// WriteObject writes n as the next indirect object of the file.
// A newline is written after the object.
//
// WriteObject panics if the object number of n does not immediately
// follow the object number of the previously written object.
func (pdf *Writer) WriteObject(n Node) {
	pdf.xref.Record(n.Ref(), pdf.w.pos)
	pdf.w.Write(n.Render(0))
	pdf.w.Write([]byte{'\n'})
}

// Pos returns the number of bytes written so far.
func (pdf *Writer) Pos() int64 {
	return pdf.w.pos
}

// Size returns one more than the highest object number written so far.
func (pdf *Writer) Size() int {
	return pdf.xref.Size()
}

// Offset returns the byte offset at which object number n was written.
func (pdf *Writer) Offset(n uint32) (int64, bool) {
	return pdf.xref.Offset(n)
}

// Close writes the cross-reference table, the trailer and the end-of-file
// marker.  The catalog is given by root.  If info is not the zero Ref, it
// is included as the document information dictionary.
//
// Close returns the total number of bytes written.  The underlying
// io.Writer is not closed.
func (pdf *Writer) Close(root Ref, info Ref) (int64, error) {
	xRefPos := pdf.w.pos
	pdf.xref.WriteTo(pdf.w)

	trailer := &Dict{}
	trailer.Set("Size", fmt.Sprint(pdf.xref.Size()))
	trailer.Set("Root", root.String())
	if !info.IsZero() {
		trailer.Set("Info", info.String())
	}
	fmt.Fprintf(pdf.w, "trailer\n%s\nstartxref\n%d\n%%%%EOF\n", trailer, xRefPos)

	if pdf.w.err != nil {
		return pdf.w.pos, &WriteError{Err: pdf.w.err}
	}
	return pdf.w.pos, nil
}

type posWriter struct {
	w   io.Writer
	pos int64
	err error
}

func (w *posWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.pos += int64(n)
	w.err = err
	return n, err
}
