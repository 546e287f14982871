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
	"fmt"

	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/function"
)

// Space represents a PDF color space.
type Space interface {
	// Family returns the family of the color space.
	Family() minipdf.Name

	// Channels returns the dimensionality of the color space.
	Channels() int

	isSpace()
}

// Color space families supported by this package.
const (
	FamilyDeviceGray minipdf.Name = "DeviceGray"
	FamilyDeviceRGB  minipdf.Name = "DeviceRGB"
	FamilyDeviceCMYK minipdf.Name = "DeviceCMYK"
	FamilyLab        minipdf.Name = "Lab"
	FamilyICCBased   minipdf.Name = "ICCBased"
	FamilySeparation minipdf.Name = "Separation"
	FamilyDeviceN    minipdf.Name = "DeviceN"
)

// Singleton objects for the color spaces which do not require any parameters.
var (
	DeviceGray = spaceDeviceGray{}
	DeviceRGB  = spaceDeviceRGB{}
	DeviceCMYK = spaceDeviceCMYK{}
)

// IsSpecial reports whether the color space is a special color space.
// Special color spaces cannot be used as the alternate space of a
// Separation or DeviceN color space.
func IsSpecial(s Space) bool {
	switch s.Family() {
	case FamilySeparation, FamilyDeviceN:
		return true
	default:
		return false
	}
}

// Value returns the text used for s in the /ColorSpace subdictionary of a
// resource dictionary.  Space families without parameters are written as a
// name, the others as an array or as a reference to an indirect object.
func Value(s Space) string {
	switch s := s.(type) {
	case spaceDeviceGray, spaceDeviceRGB, spaceDeviceCMYK:
		return s.Family().String()
	case *SpaceLab:
		return minipdf.ArrayLines(FamilyLab.String(), s.dict().String())
	case *SpaceICCBased:
		return "[" + FamilyICCBased.String() + " " + s.profile.ref.String() + "]"
	case *SpaceSeparation:
		return minipdf.ArrayLines(
			FamilySeparation.String(),
			s.colorant.String(),
			Value(s.alternate),
			function.Value(s.transform),
		)
	case *SpaceDeviceN:
		return s.ref.String()
	default:
		panic(fmt.Sprintf("color: unexpected color space %T", s))
	}
}

// Nodes returns the indirect objects which must be written for s to be
// used in a resource dictionary.
func Nodes(s Space) []minipdf.Node {
	switch s := s.(type) {
	case spaceDeviceGray, spaceDeviceRGB, spaceDeviceCMYK, *SpaceLab:
		return nil
	case *SpaceICCBased:
		return []minipdf.Node{s.profile}
	case *SpaceSeparation:
		var res []minipdf.Node
		res = append(res, Nodes(s.alternate)...)
		res = append(res, function.Nodes(s.transform)...)
		return res
	case *SpaceDeviceN:
		return []minipdf.Node{s}
	default:
		panic(fmt.Sprintf("color: unexpected color space %T", s))
	}
}

type spaceDeviceGray struct{}

// Family returns /DeviceGray.
func (s spaceDeviceGray) Family() minipdf.Name {
	return FamilyDeviceGray
}

// Channels returns 1.
func (s spaceDeviceGray) Channels() int {
	return 1
}

func (s spaceDeviceGray) isSpace() {}

type spaceDeviceRGB struct{}

// Family returns /DeviceRGB.
func (s spaceDeviceRGB) Family() minipdf.Name {
	return FamilyDeviceRGB
}

// Channels returns 3.
func (s spaceDeviceRGB) Channels() int {
	return 3
}

func (s spaceDeviceRGB) isSpace() {}

type spaceDeviceCMYK struct{}

// Family returns /DeviceCMYK.
func (s spaceDeviceCMYK) Family() minipdf.Name {
	return FamilyDeviceCMYK
}

// Channels returns 4.
func (s spaceDeviceCMYK) Channels() int {
	return 4
}

func (s spaceDeviceCMYK) isSpace() {}
