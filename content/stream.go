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

// Package content implements PDF content streams.
//
// A [Stream] collects the operators which draw a page.  Operators are
// stored as text, one operator (or a short group of operators) per line,
// and are written to the file unchanged.
package content

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/internal/float"
)

// Stream is a content stream.  Streams are written as indirect objects.
type Stream struct {
	ops     []string
	nesting int
	ref     minipdf.Ref

	// Err records the first misuse of the stream, for example a call to
	// PopGraphicsState without a matching PushGraphicsState.  Once Err is
	// set, further operators are ignored.
	Err error
}

// New returns an empty content stream.
func New() *Stream {
	return &Stream{}
}

// Op appends a raw operator payload, for example "0 0 m".
func (s *Stream) Op(payload string) {
	if s.Err != nil {
		return
	}
	s.ops = append(s.ops, payload)
}

func (s *Stream) addOp(name string, args ...float64) {
	if s.Err != nil {
		return
	}
	parts := make([]string, 0, len(args)+1)
	for _, x := range args {
		parts = append(parts, num(x))
	}
	parts = append(parts, name)
	s.ops = append(s.ops, strings.Join(parts, " "))
}

// Len returns the number of operator payloads in the stream.
func (s *Stream) Len() int {
	return len(s.ops)
}

// Payload returns the stream data: all operator payloads, separated by
// newlines.
func (s *Stream) Payload() []byte {
	return []byte(strings.Join(s.ops, "\n"))
}

// Close checks that the stream is well-formed.  It returns Err, or an error
// if a saved graphics state has not been restored.
func (s *Stream) Close() error {
	if s.Err != nil {
		return s.Err
	}
	if s.nesting > 0 {
		return fmt.Errorf("content: %d unrestored graphics states", s.nesting)
	}
	return nil
}

// Ref returns the reference of the stream object.
func (s *Stream) Ref() minipdf.Ref {
	return s.ref
}

// Identify assigns an object number to the stream.
func (s *Stream) Identify(reg *minipdf.Registry) {
	s.ref = reg.Next()
}

// Children returns nil.  Resources used by the stream are owned by the
// page's resource dictionary.
func (s *Stream) Children() []minipdf.Node {
	return nil
}

// Render returns the stream object.  The /Length entry is the exact length
// of the payload.
func (s *Stream) Render(depth int) []byte {
	return minipdf.StreamObject(s.ref, nil, s.Payload(), depth)
}

// == graphics state =========================================================

// PushGraphicsState saves the current graphics state.
// This implements the PDF graphics operator "q".
func (s *Stream) PushGraphicsState() {
	if s.Err != nil {
		return
	}
	s.nesting++
	s.ops = append(s.ops, "q")
}

// PopGraphicsState restores the most recently saved graphics state.
// This implements the PDF graphics operator "Q".
func (s *Stream) PopGraphicsState() {
	if s.Err != nil {
		return
	}
	if s.nesting == 0 {
		s.Err = errors.New("PopGraphicsState: no saved state")
		return
	}
	s.nesting--
	s.ops = append(s.ops, "Q")
}

// Transform applies a transformation to the current transformation matrix.
// This implements the PDF graphics operator "cm".
func (s *Stream) Transform(m matrix.Matrix) {
	s.addOp("cm", m[0], m[1], m[2], m[3], m[4], m[5])
}

// SetLineWidth sets the line width.
// This implements the PDF graphics operator "w".
func (s *Stream) SetLineWidth(width float64) {
	s.addOp("w", width)
}

// == color ==================================================================

// SetFillColorSpace selects a color space from the page resources for
// filling.  This implements the PDF graphics operator "cs".
func (s *Stream) SetFillColorSpace(name minipdf.Name) {
	s.Op(name.String() + " cs")
}

// SetStrokeColorSpace selects a color space from the page resources for
// stroking.  This implements the PDF graphics operator "CS".
func (s *Stream) SetStrokeColorSpace(name minipdf.Name) {
	s.Op(name.String() + " CS")
}

// SetFillColor sets the fill color in the current color space.
// This implements the PDF graphics operator "scn".
func (s *Stream) SetFillColor(values ...float64) {
	s.addOp("scn", values...)
}

// SetStrokeColor sets the stroke color in the current color space.
// This implements the PDF graphics operator "SCN".
func (s *Stream) SetStrokeColor(values ...float64) {
	s.addOp("SCN", values...)
}

// SetFillGray sets a DeviceGray fill color.
// This implements the PDF graphics operator "g".
func (s *Stream) SetFillGray(gray float64) {
	s.addOp("g", gray)
}

// SetStrokeGray sets a DeviceGray stroke color.
// This implements the PDF graphics operator "G".
func (s *Stream) SetStrokeGray(gray float64) {
	s.addOp("G", gray)
}

// SetFillRGB sets a DeviceRGB fill color.
// This implements the PDF graphics operator "rg".
func (s *Stream) SetFillRGB(r, g, b float64) {
	s.addOp("rg", r, g, b)
}

// SetStrokeRGB sets a DeviceRGB stroke color.
// This implements the PDF graphics operator "RG".
func (s *Stream) SetStrokeRGB(r, g, b float64) {
	s.addOp("RG", r, g, b)
}

// SetFillCMYK sets a DeviceCMYK fill color.
// This implements the PDF graphics operator "k".
func (s *Stream) SetFillCMYK(c, m, y, k float64) {
	s.addOp("k", c, m, y, k)
}

// SetStrokeCMYK sets a DeviceCMYK stroke color.
// This implements the PDF graphics operator "K".
func (s *Stream) SetStrokeCMYK(c, m, y, k float64) {
	s.addOp("K", c, m, y, k)
}

// == paths ==================================================================

// MoveTo starts a new subpath.
// This implements the PDF graphics operator "m".
func (s *Stream) MoveTo(x, y float64) {
	s.addOp("m", x, y)
}

// LineTo appends a straight line segment to the current subpath.
// This implements the PDF graphics operator "l".
func (s *Stream) LineTo(x, y float64) {
	s.addOp("l", x, y)
}

// ClosePath closes the current subpath.
// This implements the PDF graphics operator "h".
func (s *Stream) ClosePath() {
	s.Op("h")
}

// Rectangle appends a rectangle to the current path.
// This implements the PDF graphics operator "re".
func (s *Stream) Rectangle(x, y, width, height float64) {
	s.addOp("re", x, y, width, height)
}

// Fill fills the current path using the nonzero winding rule.
// This implements the PDF graphics operator "f".
func (s *Stream) Fill() {
	s.Op("f")
}

// Stroke strokes the current path.
// This implements the PDF graphics operator "S".
func (s *Stream) Stroke() {
	s.Op("S")
}

// FillRectangle fills a rectangle with the current fill color,
// using a single "re f" line.
func (s *Stream) FillRectangle(x, y, width, height float64) {
	s.Op(fmt.Sprintf("%s %s %s %s re f", num(x), num(y), num(width), num(height)))
}

// == text ===================================================================

// FillText shows a line of text in a BT/ET block, with its baseline
// starting at (x, y).  The font is given by its name in the page resources.
//
// The text is encoded using WinAnsiEncoding.  Characters which cannot be
// represented are replaced by a question mark.
func (s *Stream) FillText(fontName minipdf.Name, size, x, y float64, text string) {
	buf := &strings.Builder{}
	buf.WriteString("BT\n")
	fmt.Fprintf(buf, "  %s %s Tf\n", fontName, num(size))
	fmt.Fprintf(buf, "  %s %s Td\n", num(x), num(y))
	buf.WriteString("  0 Tr\n")
	fmt.Fprintf(buf, "  %s Tj\n", minipdf.LiteralString(EncodeWinAnsi(text)))
	buf.WriteString("ET")
	s.Op(buf.String())
}

// EncodeWinAnsi converts text to WinAnsiEncoding.
// Characters which cannot be represented are replaced by a question mark.
func EncodeWinAnsi(text string) []byte {
	res := make([]byte, 0, len(text))
	for _, r := range text {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		res = append(res, b)
	}
	return res
}

func num(x float64) string {
	return float.Format(x, 4)
}
