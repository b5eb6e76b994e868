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

import "fmt"

// WhitePoint is a CIE standard illuminant used as reference white.
type WhitePoint uint8

// The reference white points used by the CSS colour spaces.
const (
	D50 WhitePoint = iota // horizon light, used by Lab, ProPhoto and ICC
	D65                   // noon daylight, used by sRGB and most others
)

// Chromaticity coordinates (x, y) of the white points, as used by CSS.
var (
	d50Chromaticity = [2]float64{0.3457, 0.3585}
	d65Chromaticity = [2]float64{0.3127, 0.3290}
)

// XYZ returns the tristimulus values of the white point, normalised to Y=1.
func (w WhitePoint) XYZ() Components {
	var xy [2]float64
	switch w {
	case D50:
		xy = d50Chromaticity
	default:
		xy = d65Chromaticity
	}
	return Components{xy[0] / xy[1], 1, (1 - xy[0] - xy[1]) / xy[1]}
}

func (w WhitePoint) String() string {
	switch w {
	case D50:
		return "D50"
	case D65:
		return "D65"
	default:
		return fmt.Sprintf("WhitePoint(%d)", uint8(w))
	}
}
