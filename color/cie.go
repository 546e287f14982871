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
	"math"
	"slices"

	"seehuhn.de/go/minipdf"
)

// SpaceLab represents a CIE 1976 L*a*b* color space.
type SpaceLab struct {
	whitePoint []float64
	blackPoint []float64
	ranges     []float64
}

// Lab returns a new CIE 1976 L*a*b* color space.
//
// The white point must have Y = 1.  If blackPoint is nil, the default
// [0 0 0] is used.  If ranges is nil, the default [-100 100 -100 100] is
// used for the a* and b* components.
func Lab(whitePoint, blackPoint, ranges []float64) (*SpaceLab, error) {
	if !isValidWhitePoint(whitePoint) {
		return nil, errors.New("Lab: invalid white point")
	}
	if blackPoint == nil {
		blackPoint = []float64{0, 0, 0}
	} else if !isValidBlackPoint(blackPoint) {
		return nil, errors.New("Lab: invalid black point")
	}
	if ranges == nil {
		ranges = []float64{-100, 100, -100, 100}
	} else if len(ranges) != 4 || !isFinite(ranges) ||
		ranges[0] >= ranges[1] || ranges[2] >= ranges[3] {
		return nil, errors.New("Lab: invalid ranges")
	}

	return &SpaceLab{
		whitePoint: slices.Clone(whitePoint),
		blackPoint: slices.Clone(blackPoint),
		ranges:     slices.Clone(ranges),
	}, nil
}

// LabWithWhite returns a Lab color space with the given white point, the
// default black point, and a* and b* ranges of [-128, 127].
func LabWithWhite(x, y, z float64) (*SpaceLab, error) {
	return Lab([]float64{x, y, z}, nil, []float64{-128, 127, -128, 127})
}

// Family returns /Lab.
func (s *SpaceLab) Family() minipdf.Name {
	return FamilyLab
}

// Channels returns 3.
func (s *SpaceLab) Channels() int {
	return 3
}

func (s *SpaceLab) isSpace() {}

// WhitePoint returns the white point of the color space.
func (s *SpaceLab) WhitePoint() []float64 {
	return slices.Clone(s.whitePoint)
}

func (s *SpaceLab) dict() *minipdf.Dict {
	dict := &minipdf.Dict{}
	dict.Set("WhitePoint", minipdf.Numbers(s.whitePoint))
	if !isZero(s.blackPoint) {
		dict.Set("BlackPoint", minipdf.Numbers(s.blackPoint))
	}
	if !isValues(s.ranges, -100, 100, -100, 100) {
		dict.Set("Range", minipdf.Numbers(s.ranges))
	}
	return dict
}

func isZero(x []float64) bool {
	for _, xi := range x {
		if math.Abs(xi) >= ε {
			return false
		}
	}
	return true
}

func isValues(x []float64, y ...float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if math.Abs(x[i]-y[i]) >= ε {
			return false
		}
	}
	return true
}

func isFinite(x []float64) bool {
	for _, xi := range x {
		if math.IsNaN(xi) || math.IsInf(xi, 0) {
			return false
		}
	}
	return true
}

func isValidWhitePoint(x []float64) bool {
	return len(x) == 3 && isFinite(x) &&
		x[0] > 0 &&
		math.Abs(x[1]-1) <= ε &&
		x[2] > 0
}

func isValidBlackPoint(x []float64) bool {
	return len(x) == 3 && isFinite(x) && x[0] >= 0 && x[1] >= 0 && x[2] >= 0
}

const ε = 1e-6
