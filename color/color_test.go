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

package color

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/function"
)

func must[T any](x T, err error) T {
	if err != nil {
		panic(err)
	}
	return x
}

func d50() *SpaceLab {
	return must(LabWithWhite(0.964203, 1.0, 0.824905))
}

func orange() *SpaceSeparation {
	trfm := must(function.NewType2([]float64{100, 0, 0}, []float64{65, 58, 88}, 1))
	return must(Separation("Orange", d50(), trfm))
}

func TestDeviceValue(t *testing.T) {
	cases := []struct {
		space Space
		want  string
		n     int
	}{
		{DeviceGray, "/DeviceGray", 1},
		{DeviceRGB, "/DeviceRGB", 3},
		{DeviceCMYK, "/DeviceCMYK", 4},
	}
	for _, test := range cases {
		if got := Value(test.space); got != test.want {
			t.Errorf("Value() = %q, want %q", got, test.want)
		}
		if got := test.space.Channels(); got != test.n {
			t.Errorf("%s: %d channels, want %d", test.want, got, test.n)
		}
		if Nodes(test.space) != nil {
			t.Errorf("%s owns indirect objects", test.want)
		}
	}
}

func TestLabValue(t *testing.T) {
	want := "[\n" +
		"  /Lab\n" +
		"  <<\n" +
		"    /WhitePoint [0.964203 1.0 0.824905]\n" +
		"    /Range [-128.0 127.0 -128.0 127.0]\n" +
		"  >>\n" +
		"]"
	if d := cmp.Diff(want, Value(d50())); d != "" {
		t.Errorf("Value (-want +got):\n%s", d)
	}

	lab := must(Lab([]float64{0.9505, 1, 1.089}, nil, nil))
	want = "[\n  /Lab\n  <<\n    /WhitePoint [0.9505 1.0 1.089]\n  >>\n]"
	if d := cmp.Diff(want, Value(lab)); d != "" {
		t.Errorf("Value with defaults (-want +got):\n%s", d)
	}
}

func TestLabInvalid(t *testing.T) {
	cases := []struct {
		name                  string
		white, black, ranges []float64
	}{
		{"short white point", []float64{1, 1}, nil, nil},
		{"white point Y", []float64{1, 0.5, 1}, nil, nil},
		{"negative black point", []float64{1, 1, 1}, []float64{-1, 0, 0}, nil},
		{"empty range", []float64{1, 1, 1}, nil, []float64{0, 0, -1, 1}},
		{"NaN range", []float64{1, 1, 1}, nil, []float64{-1, math.NaN(), -1, 1}},
		{"NaN range start", []float64{1, 1, 1}, nil, []float64{-1, 1, math.NaN(), 1}},
		{"infinite range", []float64{1, 1, 1}, nil, []float64{math.Inf(-1), 1, -1, 1}},
		{"infinite white point", []float64{math.Inf(1), 1, 1}, nil, nil},
		{"infinite black point", []float64{1, 1, 1}, []float64{0, math.Inf(1), 0}, nil},
	}
	for _, test := range cases {
		if _, err := Lab(test.white, test.black, test.ranges); err == nil {
			t.Errorf("%s: no error", test.name)
		}
	}
}

func TestSeparationValue(t *testing.T) {
	want := "[\n" +
		"  /Separation\n" +
		"  /Orange\n" +
		"  [\n" +
		"    /Lab\n" +
		"    <<\n" +
		"      /WhitePoint [0.964203 1.0 0.824905]\n" +
		"      /Range [-128.0 127.0 -128.0 127.0]\n" +
		"    >>\n" +
		"  ]\n" +
		"  <<\n" +
		"    /FunctionType 2\n" +
		"    /Domain [0.0 1.0]\n" +
		"    /C0 [100.0 0.0 0.0]\n" +
		"    /C1 [65.0 58.0 88.0]\n" +
		"    /N 1.0\n" +
		"  >>\n" +
		"]"
	if d := cmp.Diff(want, Value(orange())); d != "" {
		t.Errorf("Value (-want +got):\n%s", d)
	}
	if nodes := Nodes(orange()); len(nodes) != 0 {
		t.Errorf("inline separation owns %d objects", len(nodes))
	}
}

func TestSeparationInvalid(t *testing.T) {
	trfm := must(function.NewType2([]float64{0}, []float64{1}, 1))
	if _, err := Separation("Spot", DeviceCMYK, trfm); err == nil {
		t.Error("shape mismatch not detected")
	}
	if _, err := Separation("Spot", orange(), trfm); err == nil {
		t.Error("special alternate space not detected")
	}
	if _, err := Separation("", DeviceGray, trfm); err == nil {
		t.Error("empty name not detected")
	}
}

func cmykogv(t *testing.T) *SpaceDeviceN {
	t.Helper()
	names := []minipdf.Name{"Cyan", "Magenta", "Yellow", "Black", "Orange", "Green", "Violet"}
	domain := make([]float64, 0, 14)
	for range names {
		domain = append(domain, 0, 1)
	}
	trfm, err := function.NewType0(domain, []float64{0, 1, 0, 1, 0, 1, 0, 1},
		[]int{1, 1, 1, 1, 1, 1, 1}, 8, []byte{64, 64, 255, 0})
	if err != nil {
		t.Fatal(err)
	}
	attr := &NChannel{
		Colorants: map[minipdf.Name]*SpaceSeparation{
			"Orange": orange(),
		},
		Process:           DeviceCMYK,
		ProcessComponents: []minipdf.Name{"Cyan", "Magenta", "Yellow", "Black"},
	}
	s, err := DeviceN(names, DeviceCMYK, trfm, attr)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDeviceNCopiesArguments(t *testing.T) {
	names := []minipdf.Name{"Spot1", "Spot2"}
	trfm, err := function.NewType0([]float64{0, 1, 0, 1}, []float64{0, 1},
		[]int{2, 2}, 8, []byte{0, 1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	spot1 := must(Separation("Spot1", DeviceGray,
		must(function.NewType2([]float64{1}, []float64{0}, 1))))
	attr := &NChannel{
		Colorants: map[minipdf.Name]*SpaceSeparation{"Spot1": spot1},
	}
	s, err := DeviceN(names, DeviceGray, trfm, attr)
	if err != nil {
		t.Fatal(err)
	}

	names[0] = "All"
	attr.Colorants["Spot2"] = nil
	attr.Process = DeviceRGB
	s.Colorants()[1] = "All"

	if d := cmp.Diff([]minipdf.Name{"Spot1", "Spot2"}, s.Colorants()); d != "" {
		t.Errorf("Colorants (-want +got):\n%s", d)
	}
	reg := minipdf.NewRegistry()
	reg.ReserveRoot()
	minipdf.AssignRefs(s, reg)
	out := string(s.Render(0))
	if strings.Contains(out, "/All") || strings.Contains(out, "/Spot2 [") ||
		strings.Contains(out, "/Process") {
		t.Errorf("changes after construction are visible:\n%s", out)
	}
}

func TestDeviceNRender(t *testing.T) {
	s := cmykogv(t)

	reg := minipdf.NewRegistry()
	reg.ReserveRoot()
	nodes := Nodes(s)
	if len(nodes) != 1 || nodes[0] != minipdf.Node(s) {
		t.Fatalf("Nodes() = %v", nodes)
	}
	minipdf.AssignRefs(s, reg)

	if s.Ref().Number != 2 || s.Transform().(*function.Type0).Ref().Number != 3 {
		t.Errorf("unexpected numbering: %v, %v", s.Ref(), s.Transform().(*function.Type0).Ref())
	}
	if got := Value(s); got != "2 0 R" {
		t.Errorf("Value() = %q", got)
	}

	out := string(s.Render(0))
	for _, want := range []string{
		"2 0 obj\n[\n  /DeviceN\n",
		"  [/Cyan /Magenta /Yellow /Black /Orange /Green /Violet]\n  /DeviceCMYK\n  3 0 R\n",
		"    /Subtype /NChannel\n    /Colorants <<\n      /Orange [\n",
		"    /Process <<\n      /ColorSpace /DeviceCMYK\n      /Components [/Cyan /Magenta /Yellow /Black]\n    >>\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "]\nendobj") {
		t.Errorf("wrong ending:\n%s", out)
	}
}

func TestDeviceNInvalid(t *testing.T) {
	trfm := must(function.NewType2([]float64{0, 0, 0, 0}, []float64{1, 1, 1, 1}, 1))
	cases := []struct {
		name  string
		names []minipdf.Name
		alt   Space
		attr  *NChannel
	}{
		{"no colorants", nil, DeviceCMYK, nil},
		{"All", []minipdf.Name{"All"}, DeviceCMYK, nil},
		{"duplicate", []minipdf.Name{"Spot", "Spot"}, DeviceCMYK, nil},
		{"shape", []minipdf.Name{"Spot"}, DeviceRGB, nil},
		{"process components", []minipdf.Name{"Spot"}, DeviceCMYK,
			&NChannel{Process: DeviceRGB, ProcessComponents: []minipdf.Name{"Red"}}},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			if _, err := DeviceN(test.names, test.alt, trfm, test.attr); err == nil {
				t.Error("no error")
			}
		})
	}
}

// grayProfile returns a minimal ICC v4 display profile for a gray color
// space: a 128 byte header followed by an empty tag table.
func grayProfile() []byte {
	data := make([]byte, 132)
	binary.BigEndian.PutUint32(data[0:], uint32(len(data)))
	binary.BigEndian.PutUint32(data[8:], 0x04300000)
	copy(data[12:], "mntr")
	copy(data[16:], "GRAY")
	copy(data[20:], "XYZ ")
	binary.BigEndian.PutUint16(data[24:], 2025)
	binary.BigEndian.PutUint16(data[26:], 1)
	binary.BigEndian.PutUint16(data[28:], 1)
	copy(data[36:], "acsp")
	// D50 illuminant
	binary.BigEndian.PutUint32(data[68:], 0x0000f6d6)
	binary.BigEndian.PutUint32(data[72:], 0x00010000)
	binary.BigEndian.PutUint32(data[76:], 0x0000d32d)
	return data
}

func TestICCBased(t *testing.T) {
	profile := grayProfile()
	s, err := ICCBased(profile)
	if err != nil {
		t.Fatal(err)
	}
	if s.Channels() != 1 {
		t.Errorf("gray profile has %d channels", s.Channels())
	}

	// the color space keeps its own copies
	profile[16] = 'R'
	r := s.Ranges()
	r[1] = 5
	if d := cmp.Diff([]float64{0, 1}, s.Ranges()); d != "" {
		t.Errorf("Ranges (-want +got):\n%s", d)
	}

	reg := minipdf.NewRegistry()
	reg.ReserveRoot()
	nodes := Nodes(s)
	if len(nodes) != 1 {
		t.Fatalf("ICCBased owns %d objects", len(nodes))
	}
	nodes[0].Identify(reg)
	if got := Value(s); got != "[/ICCBased 2 0 R]" {
		t.Errorf("Value() = %q", got)
	}
	out := string(nodes[0].Render(0))
	if !strings.HasPrefix(out, "2 0 obj\n<<\n  /N 1\n  /Length 132\n>>\nstream\n") {
		t.Errorf("unexpected profile stream start %q", out[:30])
	}
	if !strings.Contains(out, "mntrGRAYXYZ ") {
		t.Error("profile data changed after construction")
	}

	if _, err := ICCBased(nil); err == nil {
		t.Error("missing profile not detected")
	}
	if _, err := ICCBased([]byte("not a profile")); err == nil {
		t.Error("invalid profile not detected")
	}
}
