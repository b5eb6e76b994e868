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

import "golang.org/x/image/math/f64"

// Convert converts components from one colour space to another.
//
// If from and to are the same, c is returned unchanged.  Otherwise the
// components are converted to CIE XYZ, adapted to the destination white
// point if necessary, and converted to the destination space.
//
// Convert panics if from or to is not a valid colour space.
func Convert(from ColorSpace, c Components, to ColorSpace) Components {
	if from == to {
		if !from.IsValid() {
			panic(errInvalidSpace(from))
		}
		return c
	}
	xyz, wp := ToXYZ(from, c)
	return FromXYZ(xyz, wp, to)
}

// Converter converts colours between a fixed pair of colour spaces.
//
// Create a Converter using [NewConverter], then use [Converter.Apply] to
// convert colours.  The result is the same as for [Convert], but the
// per-space steps and the chromatic adaptation are looked up only once.
//
// A Converter is immutable and can be used concurrently from multiple
// goroutines.
type Converter struct {
	from, to ColorSpace

	src, dst *conversion
	adapt    *f64.Mat3 // nil if both spaces share a white point
}

// NewConverter creates a converter from colour space from to colour
// space to.
func NewConverter(from, to ColorSpace) (*Converter, error) {
	if !from.IsValid() {
		return nil, errInvalidSpace(from)
	}
	if !to.IsValid() {
		return nil, errInvalidSpace(to)
	}

	src := &conversions[from]
	dst := &conversions[to]
	return &Converter{
		from:  from,
		to:    to,
		src:   src,
		dst:   dst,
		adapt: adaptation(src.white, dst.white),
	}, nil
}

// From returns the source colour space.
func (cv *Converter) From() ColorSpace {
	return cv.from
}

// To returns the destination colour space.
func (cv *Converter) To() ColorSpace {
	return cv.to
}

// Apply converts components from the source space to the destination space.
func (cv *Converter) Apply(c Components) Components {
	if cv.from == cv.to {
		return c
	}

	xyz := cv.src.toXYZ(cv.src.toLinear(c))
	if cv.adapt != nil {
		xyz = mulMat3(cv.adapt, xyz)
	}
	return cv.dst.toGamma(cv.dst.fromXYZ(xyz))
}
