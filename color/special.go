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
	"maps"
	"slices"

	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/function"
)

// == Separation =============================================================

// SpaceSeparation represents a separation color space, which describes a
// single colorant.
type SpaceSeparation struct {
	colorant  minipdf.Name
	alternate Space
	transform function.Func
}

// Separation returns a new separation color space.
//
// The alternate space must not be a special color space.  The tint transform
// must map one input to the channels of the alternate space.
func Separation(colorant minipdf.Name, alternate Space, trfm function.Func) (*SpaceSeparation, error) {
	if colorant == "" {
		return nil, errors.New("Separation: empty colorant name")
	}
	if alternate == nil || IsSpecial(alternate) {
		return nil, errors.New("Separation: invalid alternate color space")
	}
	if trfm == nil {
		return nil, errors.New("Separation: missing tint transform")
	}
	if err := trfm.Validate(); err != nil {
		return nil, fmt.Errorf("Separation: %w", err)
	}

	nIn, nOut := trfm.Shape()
	if nIn != 1 || nOut != alternate.Channels() {
		return nil, errors.New("Separation: invalid transformation function")
	}

	return &SpaceSeparation{
		colorant:  colorant,
		alternate: alternate,
		transform: trfm,
	}, nil
}

// Colorant returns the name of the colorant.
func (s *SpaceSeparation) Colorant() minipdf.Name {
	return s.colorant
}

// Alternate returns the alternate color space.
func (s *SpaceSeparation) Alternate() Space {
	return s.alternate
}

// Transform returns the tint transform.
func (s *SpaceSeparation) Transform() function.Func {
	return s.transform
}

// Family returns /Separation.
func (s *SpaceSeparation) Family() minipdf.Name {
	return FamilySeparation
}

// Channels returns 1.
func (s *SpaceSeparation) Channels() int {
	return 1
}

func (s *SpaceSeparation) isSpace() {}

// == DeviceN ================================================================

// SpaceDeviceN represents a DeviceN color space.
//
// DeviceN color spaces are written as indirect objects.  The tint transform
// and the objects needed by the alternate space and the attributes are
// written after the color space itself.
type SpaceDeviceN struct {
	colorants []minipdf.Name
	alternate Space
	transform function.Func
	attr      *NChannel

	ref minipdf.Ref
}

// NChannel holds the attributes of an NChannel color space, a DeviceN color
// space with additional information about its colorants.
type NChannel struct {
	// Colorants describes the spot colorants of the color space.
	Colorants map[minipdf.Name]*SpaceSeparation

	// Process (optional) is the color space used for the process colorants.
	Process Space

	// ProcessComponents names the components of the process color space.
	// This must be given if, and only if, Process is set.
	ProcessComponents []minipdf.Name
}

// DeviceN returns a new DeviceN color space.
//
// The colorant names must be unique, and must not include "All".
// The tint transform must map len(names) inputs to the channels of
// the alternate space.  If attr is not nil, the color space is an NChannel
// color space.
func DeviceN(names []minipdf.Name, alternate Space, trfm function.Func, attr *NChannel) (*SpaceDeviceN, error) {
	if len(names) == 0 {
		return nil, errors.New("DeviceN: no colorants")
	}
	seen := make(map[minipdf.Name]bool)
	for _, name := range names {
		if name == "None" {
			continue
		}
		if name == "All" || name == "" {
			return nil, errors.New("DeviceN: invalid colorant name")
		}
		if seen[name] {
			return nil, errors.New("DeviceN: duplicate colorant name")
		}
		seen[name] = true
	}

	if alternate == nil || IsSpecial(alternate) {
		return nil, errors.New("DeviceN: invalid alternate color space")
	}

	if trfm == nil {
		return nil, errors.New("DeviceN: missing tint transform")
	}
	if err := trfm.Validate(); err != nil {
		return nil, fmt.Errorf("DeviceN: %w", err)
	}
	nIn, nOut := trfm.Shape()
	if nIn != len(names) || nOut != alternate.Channels() {
		return nil, errors.New("DeviceN: invalid transformation function")
	}

	if attr != nil {
		for name, sep := range attr.Colorants {
			if sep == nil {
				return nil, fmt.Errorf("DeviceN: missing color space for colorant %s", name)
			}
		}
		if (attr.Process == nil) != (attr.ProcessComponents == nil) {
			return nil, errors.New("DeviceN: incomplete process color space")
		}
		if attr.Process != nil {
			if IsSpecial(attr.Process) {
				return nil, errors.New("DeviceN: invalid process color space")
			}
			if len(attr.ProcessComponents) != attr.Process.Channels() {
				return nil, errors.New("DeviceN: wrong number of process components")
			}
		}
	}

	if attr != nil {
		attr = &NChannel{
			Colorants:         maps.Clone(attr.Colorants),
			Process:           attr.Process,
			ProcessComponents: slices.Clone(attr.ProcessComponents),
		}
	}

	return &SpaceDeviceN{
		colorants: slices.Clone(names),
		alternate: alternate,
		transform: trfm,
		attr:      attr,
	}, nil
}

// Colorants returns the names of the colorants.
func (s *SpaceDeviceN) Colorants() []minipdf.Name {
	return slices.Clone(s.colorants)
}

// Alternate returns the alternate color space.
func (s *SpaceDeviceN) Alternate() Space {
	return s.alternate
}

// Transform returns the tint transform.
func (s *SpaceDeviceN) Transform() function.Func {
	return s.transform
}

// Family returns /DeviceN.
func (s *SpaceDeviceN) Family() minipdf.Name {
	return FamilyDeviceN
}

// Channels returns the dimensionality of the color space.
func (s *SpaceDeviceN) Channels() int {
	return len(s.colorants)
}

func (s *SpaceDeviceN) isSpace() {}

// Ref returns the reference of the color space array.
func (s *SpaceDeviceN) Ref() minipdf.Ref {
	return s.ref
}

// Identify assigns an object number to the color space array.
func (s *SpaceDeviceN) Identify(reg *minipdf.Registry) {
	s.ref = reg.Next()
}

// Children returns the indirect objects used by the color space: the tint
// transform, then the objects of the alternate space, of the colorants in
// name order, and of the process space.
func (s *SpaceDeviceN) Children() []minipdf.Node {
	var res []minipdf.Node
	res = append(res, function.Nodes(s.transform)...)
	res = append(res, Nodes(s.alternate)...)
	if attr := s.attr; attr != nil {
		for _, name := range slices.Sorted(maps.Keys(attr.Colorants)) {
			res = append(res, Nodes(attr.Colorants[name])...)
		}
		if attr.Process != nil {
			res = append(res, Nodes(attr.Process)...)
		}
	}
	return res
}

// Render returns the color space array as an indirect object.
func (s *SpaceDeviceN) Render(depth int) []byte {
	elems := []string{
		FamilyDeviceN.String(),
		minipdf.Names(s.colorants),
		Value(s.alternate),
		function.Value(s.transform),
	}
	if attr := s.attr; attr != nil {
		elems = append(elems, attr.dict().String())
	}
	return minipdf.Object(s.ref, minipdf.ArrayLines(elems...), depth)
}

func (attr *NChannel) dict() *minipdf.Dict {
	dict := &minipdf.Dict{}
	dict.Set("Subtype", "/NChannel")
	if len(attr.Colorants) > 0 {
		colorants := &minipdf.Dict{}
		for _, name := range slices.Sorted(maps.Keys(attr.Colorants)) {
			colorants.Set(name, Value(attr.Colorants[name]))
		}
		dict.Set("Colorants", colorants.String())
	}
	if attr.Process != nil {
		process := &minipdf.Dict{}
		process.Set("ColorSpace", Value(attr.Process))
		process.Set("Components", minipdf.Names(attr.ProcessComponents))
		dict.Set("Process", process.String())
	}
	return dict
}
