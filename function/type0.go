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
	"strconv"

	"seehuhn.de/go/minipdf"
)

// Type0 represents a Type 0 sampled function that uses a table of sample
// values with interpolation to approximate functions with bounded domains
// and ranges.
//
// Type 0 functions are written as stream objects, and are indirect objects
// of the file.
type Type0 struct {
	// Domain defines the valid input ranges as [min0, max0, min1, max1, ...]
	Domain []float64

	// Range defines the valid output ranges as [min0, max0, min1, max1, ...]
	Range []float64

	// Size specifies the number of samples in each input dimension
	Size []int

	// BitsPerSample is the number of bits per sample value (1, 2, 4, 8, 12, 16, 24, 32)
	BitsPerSample int

	// Order is the interpolation order (1 for linear, 3 for cubic spline).
	// The value 0 is treated as 1.
	Order int

	// Encode maps inputs to sample table indices as [min0, max0, min1, max1, ...]
	// Default: [0, Size[0]-1, 0, Size[1]-1, ...]
	Encode []float64

	// Decode maps samples to output range as [min0, max0, min1, max1, ...]
	// Default: same as Range
	Decode []float64

	// Samples contains the raw sample data
	Samples []byte

	ref minipdf.Ref
}

// NewType0 returns a new sampled function with linear interpolation.
func NewType0(domain, rng []float64, size []int, bitsPerSample int, samples []byte) (*Type0, error) {
	f := &Type0{
		Domain:        domain,
		Range:         rng,
		Size:          size,
		BitsPerSample: bitsPerSample,
		Samples:       samples,
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// FunctionType returns 0 for Type 0 functions.
func (f *Type0) FunctionType() int {
	return 0
}

// Shape returns the number of input and output values of the function.
func (f *Type0) Shape() (int, int) {
	m := len(f.Domain) / 2
	n := len(f.Range) / 2
	return m, n
}

func (f *Type0) isFunc() {}

// Validate checks that the function is well-formed.
func (f *Type0) Validate() error {
	m, n := f.Shape()

	if m == 0 || len(f.Domain) != 2*m {
		return newInvalidFunctionError(0, "Domain", "invalid length %d", len(f.Domain))
	}
	for i := 0; i < m; i++ {
		if !isRange(f.Domain[2*i], f.Domain[2*i+1]) {
			return newInvalidFunctionError(0, "Domain",
				"invalid range for input %d: [%g, %g]", i, f.Domain[2*i], f.Domain[2*i+1])
		}
	}
	if n == 0 || len(f.Range) != 2*n {
		return newInvalidFunctionError(0, "Range", "invalid length %d", len(f.Range))
	}
	for i := 0; i < n; i++ {
		if !isRange(f.Range[2*i], f.Range[2*i+1]) {
			return newInvalidFunctionError(0, "Range",
				"invalid range for output %d: [%g, %g]", i, f.Range[2*i], f.Range[2*i+1])
		}
	}
	if len(f.Size) != m {
		return newInvalidFunctionError(0, "Size", "expected %d entries, got %d", m, len(f.Size))
	}

	numSamples := n
	for i, s := range f.Size {
		if s <= 0 {
			return newInvalidFunctionError(0, "Size", "size[%d] must be positive, got %d", i, s)
		}
		numSamples *= s
	}

	switch f.BitsPerSample {
	case 1, 2, 4, 8, 12, 16, 24, 32:
		// pass
	default:
		return newInvalidFunctionError(0, "BitsPerSample", "invalid value %d", f.BitsPerSample)
	}

	if f.Order != 0 && f.Order != 1 && f.Order != 3 {
		return newInvalidFunctionError(0, "Order", "must be 1 or 3, got %d", f.Order)
	}
	if f.Encode != nil && len(f.Encode) != 2*m {
		return newInvalidFunctionError(0, "Encode", "invalid length %d", len(f.Encode))
	}
	if f.Decode != nil && len(f.Decode) != 2*n {
		return newInvalidFunctionError(0, "Decode", "invalid length %d", len(f.Decode))
	}

	needed := (numSamples*f.BitsPerSample + 7) / 8
	if len(f.Samples) < needed {
		return newInvalidFunctionError(0, "Samples",
			"need %d bytes of sample data, got %d", needed, len(f.Samples))
	}

	return nil
}

// Ref returns the reference of the function's stream object.
func (f *Type0) Ref() minipdf.Ref {
	return f.ref
}

// Identify assigns an object number to the function.
func (f *Type0) Identify(reg *minipdf.Registry) {
	f.ref = reg.Next()
}

// Children returns nil, a sampled function does not refer to other objects.
func (f *Type0) Children() []minipdf.Node {
	return nil
}

// Render returns the stream object of the function.
// The sample data is written unchanged.
func (f *Type0) Render(depth int) []byte {
	dict := &minipdf.Dict{}
	dict.Set("FunctionType", "0")
	dict.Set("Domain", minipdf.Numbers(f.Domain))
	dict.Set("Range", minipdf.Numbers(f.Range))
	dict.Set("Size", minipdf.Integers(f.Size))
	dict.Set("BitsPerSample", strconv.Itoa(f.BitsPerSample))
	if f.Order == 3 {
		dict.Set("Order", "3")
	}
	if f.Encode != nil {
		dict.Set("Encode", minipdf.Numbers(f.Encode))
	}
	if f.Decode != nil {
		dict.Set("Decode", minipdf.Numbers(f.Decode))
	}
	return minipdf.StreamObject(f.ref, dict, f.Samples, depth)
}
