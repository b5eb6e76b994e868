// seehuhn.de/go/csscolor - convert colours between CSS colour spaces
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package csscolor

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// ToXYZ converts components in the given colour space to CIE XYZ.
// The result is relative to the white point of the colour space,
// which is returned as the second value.
//
// ToXYZ panics if space is not a valid colour space.
func ToXYZ(space ColorSpace, c Components) (Components, WhitePoint) {
	conv := lookup(space)
	return conv.toXYZ(conv.toLinear(c)), conv.white
}

// FromXYZ converts CIE XYZ, relative to the white point wp, to components
// in the given colour space.  If wp differs from the white point of the
// colour space, a Bradford chromatic adaptation is applied first.
//
// FromXYZ panics if space is not a valid colour space.
func FromXYZ(xyz Components, wp WhitePoint, space ColorSpace) Components {
	conv := lookup(space)
	if m := adaptation(wp, conv.white); m != nil {
		xyz = mulMat3(m, xyz)
	}
	return conv.toGamma(conv.fromXYZ(xyz))
}

// adaptation returns the matrix which maps XYZ relative to src to XYZ
// relative to dst, or nil if no adaptation is needed.
func adaptation(src, dst WhitePoint) *f64.Mat3 {
	switch {
	case src == dst:
		return nil
	case src == D50:
		return &d50ToD65
	default:
		return &d65ToD50
	}
}

func lookup(space ColorSpace) *conversion {
	if !space.IsValid() {
		panic(errInvalidSpace(space))
	}
	return &conversions[space]
}

func errInvalidSpace(space ColorSpace) error {
	return fmt.Errorf("csscolor: invalid colour space %d", uint8(space))
}
