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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/minipdf"
)

func sevenInputs() []float64 {
	return []float64{0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1}
}

func TestType0Render(t *testing.T) {
	f, err := NewType0(sevenInputs(), []float64{0, 1, 0, 1, 0, 1, 0, 1},
		[]int{1, 1, 1, 1, 1, 1, 1}, 8, []byte{128, 128, 128, 128})
	if err != nil {
		t.Fatal(err)
	}

	reg := minipdf.NewRegistry()
	reg.ReserveRoot()
	f.Identify(reg)

	want := "2 0 obj\n" +
		"<<\n" +
		"  /FunctionType 0\n" +
		"  /Domain [0.0 1.0 0.0 1.0 0.0 1.0 0.0 1.0 0.0 1.0 0.0 1.0 0.0 1.0]\n" +
		"  /Range [0.0 1.0 0.0 1.0 0.0 1.0 0.0 1.0]\n" +
		"  /Size [1 1 1 1 1 1 1]\n" +
		"  /BitsPerSample 8\n" +
		"  /Length 4\n" +
		">>\n" +
		"stream\n" +
		"\x80\x80\x80\x80\n" +
		"endstream\n" +
		"endobj"
	if d := cmp.Diff(want, string(f.Render(0))); d != "" {
		t.Errorf("Render (-want +got):\n%s", d)
	}

	if got := Value(f); got != "2 0 R" {
		t.Errorf("Value() = %q", got)
	}
	if nodes := Nodes(f); len(nodes) != 1 || nodes[0] != minipdf.Node(f) {
		t.Errorf("Nodes() = %v", nodes)
	}
	m, n := f.Shape()
	if m != 7 || n != 4 {
		t.Errorf("Shape() = %d, %d", m, n)
	}
}

func TestType0Invalid(t *testing.T) {
	cases := []struct {
		name string
		f    *Type0
	}{
		{"no inputs", &Type0{Range: []float64{0, 1}, BitsPerSample: 8}},
		{"bad domain", &Type0{Domain: []float64{1, 0}, Range: []float64{0, 1},
			Size: []int{2}, BitsPerSample: 8, Samples: []byte{0, 0}}},
		{"size mismatch", &Type0{Domain: []float64{0, 1}, Range: []float64{0, 1},
			Size: []int{2, 2}, BitsPerSample: 8, Samples: []byte{0, 0}}},
		{"bits", &Type0{Domain: []float64{0, 1}, Range: []float64{0, 1},
			Size: []int{2}, BitsPerSample: 7, Samples: []byte{0, 0}}},
		{"order", &Type0{Domain: []float64{0, 1}, Range: []float64{0, 1},
			Size: []int{2}, BitsPerSample: 8, Order: 2, Samples: []byte{0, 0}}},
		{"short samples", &Type0{Domain: []float64{0, 1}, Range: []float64{0, 1, 0, 1},
			Size: []int{2}, BitsPerSample: 8, Samples: []byte{0, 0, 0}}},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			err := test.f.Validate()
			if !errors.Is(err, &InvalidFunctionError{}) {
				t.Errorf("expected InvalidFunctionError, got %v", err)
			}
		})
	}
}

func TestType2Value(t *testing.T) {
	f, err := NewType2([]float64{100, 0, 0}, []float64{65, 58, 88}, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := "<<\n" +
		"  /FunctionType 2\n" +
		"  /Domain [0.0 1.0]\n" +
		"  /C0 [100.0 0.0 0.0]\n" +
		"  /C1 [65.0 58.0 88.0]\n" +
		"  /N 1.0\n" +
		">>"
	if d := cmp.Diff(want, Value(f)); d != "" {
		t.Errorf("Value (-want +got):\n%s", d)
	}
	if nodes := Nodes(f); nodes != nil {
		t.Errorf("inline function has nodes %v", nodes)
	}
}

func TestType2Invalid(t *testing.T) {
	cases := []struct {
		name   string
		c0, c1 []float64
		n      float64
	}{
		{"empty", nil, nil, 1},
		{"length mismatch", []float64{0}, []float64{0, 1}, 1},
		{"negative exponent", []float64{0}, []float64{1}, -1},
		{"NaN in C0", []float64{math.NaN()}, []float64{1}, 1},
		{"infinite C1", []float64{0, 0}, []float64{1, math.Inf(1)}, 1},
		{"NaN exponent", []float64{0}, []float64{1}, math.NaN()},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewType2(test.c0, test.c1, test.n)
			if !errors.Is(err, &InvalidFunctionError{}) {
				t.Errorf("expected InvalidFunctionError, got %v", err)
			}
		})
	}
}

func TestType2InvalidRange(t *testing.T) {
	for _, rng := range [][]float64{
		{0, math.NaN()},
		{math.NaN(), 1},
		{math.Inf(-1), 1},
		{1, 0},
	} {
		f := &Type2{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1, Range: rng}
		if err := f.Validate(); !errors.Is(err, &InvalidFunctionError{}) {
			t.Errorf("Range %v: expected InvalidFunctionError, got %v", rng, err)
		}
	}
}
