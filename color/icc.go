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
	"errors"
	"fmt"
	"slices"
	"strconv"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/minipdf"
)

// SpaceICCBased represents an ICC-based color space.
// The ICC profile is written to the file as a stream object.
type SpaceICCBased struct {
	profile *iccProfile
}

// ICCBased returns a new ICC-based color space.
// The profile must describe a gray, RGB, CMYK or Lab color space.
func ICCBased(profile []byte) (*SpaceICCBased, error) {
	if len(profile) == 0 {
		return nil, errors.New("ICCBased: missing profile")
	}

	p, err := icc.Decode(profile)
	if err != nil {
		return nil, err
	}

	n := p.ColorSpace.NumComponents()
	if n != 1 && n != 3 && n != 4 {
		return nil, fmt.Errorf("ICCBased: invalid number of components %d", n)
	}

	var ranges []float64
	switch p.ColorSpace {
	case icc.GraySpace:
		ranges = []float64{0, 1}
	case icc.RGBSpace:
		ranges = []float64{0, 1, 0, 1, 0, 1}
	case icc.CMYKSpace:
		ranges = []float64{0, 1, 0, 1, 0, 1, 0, 1}
	case icc.CIELabSpace:
		ranges = []float64{0, 100, -128, 127, -128, 127}
	default:
		return nil, fmt.Errorf("ICCBased: unsupported color space %v", p.ColorSpace)
	}

	res := &SpaceICCBased{
		profile: &iccProfile{
			n:      n,
			ranges: ranges,
			data:   slices.Clone(profile),
		},
	}
	return res, nil
}

// Family returns /ICCBased.
func (s *SpaceICCBased) Family() minipdf.Name {
	return FamilyICCBased
}

// Channels returns the number of color components.
func (s *SpaceICCBased) Channels() int {
	return s.profile.n
}

// Ranges returns the minimum and maximum value of each color component.
func (s *SpaceICCBased) Ranges() []float64 {
	return slices.Clone(s.profile.ranges)
}

func (s *SpaceICCBased) isSpace() {}

// iccProfile is the stream object holding the ICC profile data.
type iccProfile struct {
	n      int
	ranges []float64
	data   []byte
	ref    minipdf.Ref
}

func (p *iccProfile) Ref() minipdf.Ref {
	return p.ref
}

func (p *iccProfile) Identify(reg *minipdf.Registry) {
	p.ref = reg.Next()
}

func (p *iccProfile) Children() []minipdf.Node {
	return nil
}

func (p *iccProfile) Render(depth int) []byte {
	dict := &minipdf.Dict{}
	dict.Set("N", strconv.Itoa(p.n))
	if !isConst01(p.ranges) {
		dict.Set("Range", minipdf.Numbers(p.ranges))
	}
	return minipdf.StreamObject(p.ref, dict, p.data, depth)
}

func isConst01(x []float64) bool {
	for i := 0; i+1 < len(x); i += 2 {
		if x[i] != 0 || x[i+1] != 1 {
			return false
		}
	}
	return true
}
