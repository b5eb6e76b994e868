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

// conversion holds the four steps which connect a colour space to CIE XYZ.
//
// For RGB spaces, toLinear and toGamma remove and apply the transfer
// function.  For the polar spaces they convert between the polar form
// and the rectangular form of the underlying Lab-like space.
//
// toXYZ returns XYZ relative to white, and fromXYZ expects XYZ which
// has already been adapted to white.
type conversion struct {
	white WhitePoint

	toLinear func(Components) Components
	toXYZ    func(Components) Components
	fromXYZ  func(Components) Components
	toGamma  func(Components) Components
}

// conversions is indexed by ColorSpace.
var conversions = [numSpaces]conversion{
	Lab: {
		white:    D50,
		toLinear: identity,
		toXYZ:    labToXYZ,
		fromXYZ:  xyzToLab,
		toGamma:  identity,
	},
	Lch: {
		white:    D50,
		toLinear: polarToRect,
		toXYZ:    labToXYZ,
		fromXYZ:  xyzToLab,
		toGamma:  rectToPolar,
	},
	Oklab: {
		white:    D65,
		toLinear: identity,
		toXYZ:    oklabToXYZ,
		fromXYZ:  xyzToOklab,
		toGamma:  identity,
	},
	Oklch: {
		white:    D65,
		toLinear: polarToRect,
		toXYZ:    oklabToXYZ,
		fromXYZ:  xyzToOklab,
		toGamma:  rectToPolar,
	},
	SRGB:        rgbConversion(D65, &curveSRGB, &srgbToXYZ, &xyzToSRGB),
	SRGBLinear:  rgbConversion(D65, nil, &srgbToXYZ, &xyzToSRGB),
	DisplayP3:   rgbConversion(D65, &curveSRGB, &displayP3ToXYZ, &xyzToDisplayP3),
	A98RGB:      rgbConversion(D65, &curveA98, &a98ToXYZ, &xyzToA98),
	ProPhotoRGB: rgbConversion(D50, &curveProPhoto, &proPhotoToXYZ, &xyzToProPhoto),
	Rec2020:     rgbConversion(D65, &curveRec2020, &rec2020ToXYZ, &xyzToRec2020),
	XYZD50: {
		white:    D50,
		toLinear: identity,
		toXYZ:    identity,
		fromXYZ:  identity,
		toGamma:  identity,
	},
	XYZD65: {
		white:    D65,
		toLinear: identity,
		toXYZ:    identity,
		fromXYZ:  identity,
		toGamma:  identity,
	},
}

// rgbConversion returns the conversion for a matrix/TRC colour space.
// If curve is nil, the space is linear-light.
func rgbConversion(white WhitePoint, curve *transferCurve, toXYZ, fromXYZ *f64.Mat3) conversion {
	conv := conversion{
		white:    white,
		toLinear: identity,
		toXYZ:    func(c Components) Components { return mulMat3(toXYZ, c) },
		fromXYZ:  func(c Components) Components { return mulMat3(fromXYZ, c) },
		toGamma:  identity,
	}
	if curve != nil {
		conv.toLinear = curve.decodeAll
		conv.toGamma = curve.encodeAll
	}
	return conv
}

func identity(c Components) Components {
	return c
}
