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
	"math"

	"seehuhn.de/go/minipdf"
)

// Type2 represents a power interpolation functions, of the form y = C0 + x^N ×
// (C1 - C0).  These functions have a single input x and can have one or more
// outputs. The PDF specification refers to this type of function as
// "exponential interpolation".
//
// Type 2 functions are written inline, as part of the object which uses them.
type Type2 struct {
	// XMin is the minimum value of the input range.  Input values x smaller
	// than XMin are clipped to XMin.  This must be less than or equal to XMax.
	XMin float64

	// XMax is the maximum value of the input range.  Input values x larger
	// than XMax are clipped to XMax.  This must be greater than or equal
	// to XMin.
	XMax float64

	// Range (optional) defines clipping ranges for the outputs, in the form
	// [min0, max0, min1, max1, ...]. It this is missing, no clipping is
	// applied.  If present, this must have twice the length of C0 and C1.
	Range []float64

	// C0 defines function result when x = 0.0.
	// This must contain at least one value and must have the same length as C1.
	C0 []float64

	// C1 defines function result when x = 1.0.
	// This must contain at least one value and must have the same length as C0.
	C1 []float64

	// N is the interpolation exponent.
	N float64
}

// NewType2 returns a new exponential interpolation function with
// domain [0, 1].
func NewType2(c0, c1 []float64, n float64) (*Type2, error) {
	f := &Type2{
		XMin: 0,
		XMax: 1,
		C0:   c0,
		C1:   c1,
		N:    n,
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// FunctionType returns 2 for Type 2 functions.
func (f *Type2) FunctionType() int {
	return 2
}

// Shape returns the number of input and output values of the function.
func (f *Type2) Shape() (int, int) {
	return 1, len(f.C0)
}

func (f *Type2) isFunc() {}

// Validate checks if the Type2 function is properly configured.
func (f *Type2) Validate() error {
	if !isRange(f.XMin, f.XMax) {
		return newInvalidFunctionError(2, "Xmin/XMax", "invalid domain [%g,%g]",
			f.XMin, f.XMax)
	}

	if len(f.C0) < 1 || len(f.C0) != len(f.C1) {
		return newInvalidFunctionError(2, "C0/C1", "invalid length %d,%d",
			len(f.C0), len(f.C1))
	}

	for i := range f.C0 {
		if !isFinite(f.C0[i]) || !isFinite(f.C1[i]) {
			return newInvalidFunctionError(2, "C0/C1",
				"non-finite value for output %d", i)
		}
	}

	if !isFinite(f.N) {
		return newInvalidFunctionError(2, "N", "must be a finite number, got %g", f.N)
	}
	if f.N != math.Trunc(f.N) && f.XMin < 0 {
		return newInvalidFunctionError(2, "Domain",
			"minimum must be >= 0 when N is non-integer, got %f", f.XMin)
	}
	if f.N < 0 && f.XMin <= 0 && f.XMax >= 0 {
		return newInvalidFunctionError(2, "Domain", "must not include 0 when N is negative")
	}

	_, n := f.Shape()
	if f.Range != nil {
		if len(f.Range) != 2*n {
			return newInvalidFunctionError(2, "Range", "invalid length %d",
				len(f.Range))
		}
		for i := 0; i < n; i++ {
			if !isRange(f.Range[2*i], f.Range[2*i+1]) {
				return newInvalidFunctionError(2, "Range",
					"invalid range for output %d: [%g, %g]",
					i, f.Range[2*i], f.Range[2*i+1])
			}
		}
	}

	return nil
}

func (f *Type2) dict() *minipdf.Dict {
	dict := &minipdf.Dict{}
	dict.Set("FunctionType", "2")
	dict.Set("Domain", minipdf.Numbers([]float64{f.XMin, f.XMax}))
	if f.Range != nil {
		dict.Set("Range", minipdf.Numbers(f.Range))
	}
	dict.Set("C0", minipdf.Numbers(f.C0))
	dict.Set("C1", minipdf.Numbers(f.C1))
	dict.Set("N", minipdf.Number(f.N))
	return dict
}
