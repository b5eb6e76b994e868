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

import "math"

// transferCurve describes the transfer function of an RGB colour space,
// mapping encoded values x to linear-light values y.
//
// The curve uses the same parametrisation as the ICC parametricCurveType.
// Only two of the ICC function types are needed:
//   - type 0: y = x^g
//   - type 3: y = (ax+b)^g for x >= d, else y = cx
//
// The curve is extended to negative inputs by odd symmetry, y(-x) = -y(x).
// Unlike ICC curves, neither inputs nor outputs are clamped.
type transferCurve struct {
	funcType int
	g        float64
	a, b     float64
	c, d     float64
}

// curveSRGB is the transfer function of sRGB and Display P3.
var curveSRGB = transferCurve{
	funcType: 3,
	g:        2.4,
	a:        1 / 1.055,
	b:        0.055 / 1.055,
	c:        1 / 12.92,
	d:        0.04045,
}

var curveA98 = transferCurve{
	funcType: 0,
	g:        563.0 / 256,
}

var curveProPhoto = transferCurve{
	funcType: 3,
	g:        1.8,
	a:        1,
	b:        0,
	c:        1.0 / 16,
	d:        16.0 / 512,
}

// Constants from ITU-R BT.2020-2, table 4.
const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

var curveRec2020 = transferCurve{
	funcType: 3,
	g:        1 / 0.45,
	a:        1 / rec2020Alpha,
	b:        (rec2020Alpha - 1) / rec2020Alpha,
	c:        1 / 4.5,
	d:        4.5 * rec2020Beta,
}

// decode maps an encoded value to linear light.
func (tc *transferCurve) decode(x float64) float64 {
	abs := math.Abs(x)

	var y float64
	switch tc.funcType {
	case 0:
		y = math.Pow(abs, tc.g)
	case 3:
		if abs < tc.d {
			return tc.c * x
		}
		y = math.Pow(tc.a*abs+tc.b, tc.g)
	default:
		return x
	}
	return math.Copysign(y, x)
}

// encode maps a linear-light value to its encoded form.
// This is the inverse of decode.
func (tc *transferCurve) encode(y float64) float64 {
	abs := math.Abs(y)

	var x float64
	switch tc.funcType {
	case 0:
		x = math.Pow(abs, 1/tc.g)
	case 3:
		// the linear segment ends at output c*d
		if abs < tc.c*tc.d {
			return y / tc.c
		}
		x = (math.Pow(abs, 1/tc.g) - tc.b) / tc.a
	default:
		return y
	}
	return math.Copysign(x, y)
}

// decodeAll applies decode to all three components.
func (tc *transferCurve) decodeAll(c Components) Components {
	return Components{tc.decode(c[0]), tc.decode(c[1]), tc.decode(c[2])}
}

// encodeAll applies encode to all three components.
func (tc *transferCurve) encodeAll(c Components) Components {
	return Components{tc.encode(c[0]), tc.encode(c[1]), tc.encode(c[2])}
}
