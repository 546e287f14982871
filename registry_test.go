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
	"testing"
)

func TestRegistrySequence(t *testing.T) {
	reg := NewRegistry()
	root := reg.ReserveRoot()
	if root != (Ref{Number: 1}) {
		t.Fatalf("root = %v, want 1 0 R", root)
	}
	for want := uint32(2); want < 10; want++ {
		ref := reg.Next()
		if ref.Number != want || ref.Generation != 0 {
			t.Fatalf("Next() = %v, want %d 0 R", ref, want)
		}
	}
	if reg.Root() != root {
		t.Errorf("Root() changed to %v", reg.Root())
	}
	if reg.Size() != 10 {
		t.Errorf("Size() = %d, want 10", reg.Size())
	}

	reg.Reset()
	if reg.ReserveRoot() != root {
		t.Error("root changed after Reset")
	}
	if ref := reg.Next(); ref.Number != 2 {
		t.Errorf("first number after Reset = %d, want 2", ref.Number)
	}
}

func TestRegistryZeroValue(t *testing.T) {
	var reg Registry
	if root := reg.ReserveRoot(); root.Number != 1 {
		t.Errorf("root = %v", root)
	}
	if reg.Size() != 2 {
		t.Errorf("Size() = %d, want 2", reg.Size())
	}
}

func TestRegistryMisuse(t *testing.T) {
	cases := []struct {
		name string
		fn   func(reg *Registry)
	}{
		{"next before root", func(reg *Registry) { reg.Next() }},
		{"root before root", func(reg *Registry) { reg.Root() }},
		{"root twice", func(reg *Registry) {
			reg.ReserveRoot()
			reg.ReserveRoot()
		}},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			test.fn(NewRegistry())
		})
	}
}

func TestRef(t *testing.T) {
	ref := Ref{Number: 12}
	if s := ref.String(); s != "12 0 R" {
		t.Errorf("String() = %q", s)
	}
	if s := ref.Header(); s != "12 0 obj" {
		t.Errorf("Header() = %q", s)
	}
	if ref.IsZero() || !(Ref{}).IsZero() {
		t.Error("IsZero is wrong")
	}
}
