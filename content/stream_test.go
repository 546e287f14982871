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

package content

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/minipdf"
)

func TestOperators(t *testing.T) {
	cases := []struct {
		name string
		draw func(s *Stream)
		want string
	}{
		{"fill color space", func(s *Stream) { s.SetFillColorSpace("CS0") }, "/CS0 cs"},
		{"stroke color space", func(s *Stream) { s.SetStrokeColorSpace("CS1") }, "/CS1 CS"},
		{"scn", func(s *Stream) { s.SetFillColor(1, 0, 0, 0, 0, 0, 0) }, "1 0 0 0 0 0 0 scn"},
		{"SCN", func(s *Stream) { s.SetStrokeColor(0.5) }, "0.5 SCN"},
		{"rg", func(s *Stream) { s.SetFillRGB(1, 0.5, 0) }, "1 0.5 0 rg"},
		{"RG", func(s *Stream) { s.SetStrokeRGB(0, 0, 1) }, "0 0 1 RG"},
		{"k", func(s *Stream) { s.SetFillCMYK(0, 1, 1, 0) }, "0 1 1 0 k"},
		{"K", func(s *Stream) { s.SetStrokeCMYK(0, 0, 0, 1) }, "0 0 0 1 K"},
		{"g", func(s *Stream) { s.SetFillGray(0.25) }, "0.25 g"},
		{"G", func(s *Stream) { s.SetStrokeGray(1) }, "1 G"},
		{"re f", func(s *Stream) { s.FillRectangle(10, 20, 100, 50.5) }, "10 20 100 50.5 re f"},
		{"path", func(s *Stream) {
			s.SetLineWidth(2)
			s.MoveTo(0, 0)
			s.LineTo(100, 0)
			s.ClosePath()
			s.Stroke()
		}, "2 w\n0 0 m\n100 0 l\nh\nS"},
		{"cm", func(s *Stream) { s.Transform(matrix.Translate(10, 20)) }, "1 0 0 1 10 20 cm"},
		{"raw", func(s *Stream) { s.Op("0 0 612 792 re W n") }, "0 0 612 792 re W n"},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			s := New()
			test.draw(s)
			if d := cmp.Diff(test.want, string(s.Payload())); d != "" {
				t.Errorf("payload (-want +got):\n%s", d)
			}
		})
	}
}

func TestFillText(t *testing.T) {
	s := New()
	s.FillText("F0", 32, 0, 760, "Hello")
	want := "BT\n  /F0 32 Tf\n  0 760 Td\n  0 Tr\n  (Hello) Tj\nET"
	if d := cmp.Diff(want, string(s.Payload())); d != "" {
		t.Errorf("payload (-want +got):\n%s", d)
	}
}

func TestEncodeWinAnsi(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{"abc", []byte("abc")},
		{"café", []byte{'c', 'a', 'f', 0xE9}},
		{"€", []byte{0x80}},
		{"•", []byte{0x95}},
		{"日本", []byte("??")},
	}
	for _, test := range cases {
		if d := cmp.Diff(test.want, EncodeWinAnsi(test.in)); d != "" {
			t.Errorf("%q (-want +got):\n%s", test.in, d)
		}
	}
}

func TestLength(t *testing.T) {
	s := New()
	s.FillText("F0", 32, 0, 760, "Hello (world)")
	s.FillRectangle(0, 0, 10, 10)

	reg := minipdf.NewRegistry()
	reg.ReserveRoot()
	s.Identify(reg)

	payload := s.Payload()
	out := string(s.Render(1))
	want := "/Length " + strconv.Itoa(len(payload)) + "\n"
	if !strings.Contains(out, want) {
		t.Errorf("missing %q in\n%s", want, out)
	}
	if !strings.Contains(out, "stream\n"+string(payload)+"\n  endstream") {
		t.Errorf("payload was altered:\n%s", out)
	}
}

func TestNesting(t *testing.T) {
	s := New()
	s.PushGraphicsState()
	s.SetFillGray(0)
	s.PopGraphicsState()
	if err := s.Close(); err != nil {
		t.Errorf("balanced stream: %v", err)
	}

	s.PopGraphicsState()
	if s.Err == nil {
		t.Fatal("unbalanced Q not detected")
	}
	n := s.Len()
	s.SetFillGray(1)
	if s.Len() != n {
		t.Error("operator added after error")
	}

	s = New()
	s.PushGraphicsState()
	if err := s.Close(); err == nil {
		t.Error("unrestored q not detected")
	}
}
