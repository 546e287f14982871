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

package function

import (
	"fmt"

	"seehuhn.de/go/minipdf"
)

// Func is a PDF function.  The implementations are [*Type0] and [*Type2].
type Func interface {
	// FunctionType returns the PDF function type, 0 or 2.
	FunctionType() int

	// Shape returns the number of input and output values of the function.
	Shape() (int, int)

	// Validate checks that the function is well-formed.
	Validate() error

	isFunc()
}

// Value returns the text used to refer to f from within another object.
// For a Type 0 function this is the reference to its stream object, for a
// Type 2 function it is the complete function dictionary.
func Value(f Func) string {
	switch f := f.(type) {
	case *Type0:
		return f.ref.String()
	case *Type2:
		return f.dict().String()
	default:
		panic(fmt.Sprintf("function: unexpected type %T", f))
	}
}

// Nodes returns the indirect objects needed to write f.
func Nodes(f Func) []minipdf.Node {
	switch f := f.(type) {
	case *Type0:
		return []minipdf.Node{f}
	case *Type2:
		return nil
	default:
		panic(fmt.Sprintf("function: unexpected type %T", f))
	}
}
