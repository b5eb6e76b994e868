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

// ColorSpace identifies one of the colour spaces a [Color] can be
// expressed in.
type ColorSpace uint8

// The colour spaces supported by this package.
const (
	// Lab is the CIE L*a*b* colour space, relative to D50.
	// https://www.w3.org/TR/css-color-4/#lab-colors
	Lab ColorSpace = iota

	// Lch is the polar form of [Lab].
	// Components are lightness, chroma and hue in degrees.
	Lch

	// Oklab is the Oklab colour space, relative to D65.
	Oklab

	// Oklch is the polar form of [Oklab].
	Oklch

	// SRGB is the sRGB colour space of IEC 61966-2-1.
	SRGB

	// SRGBLinear is sRGB with a linear-light transfer function.
	SRGBLinear

	// DisplayP3 is the "display-p3" colour space: DCI-P3 primaries, D65
	// white point and the sRGB transfer function.
	DisplayP3

	// A98RGB is the "a98-rgb" colour space, compatible with Adobe RGB (1998).
	A98RGB

	// ProPhotoRGB is the "prophoto-rgb" colour space (ROMM RGB).
	// This is the only RGB space in the package with a D50 white point.
	ProPhotoRGB

	// Rec2020 is the ITU-R BT.2020 colour space.
	Rec2020

	// XYZD50 is CIE XYZ relative to the D50 white point.
	XYZD50

	// XYZD65 is CIE XYZ relative to the D65 white point.
	XYZD65

	numSpaces
)

// AllSpaces returns all supported colour spaces, in declaration order.
func AllSpaces() []ColorSpace {
	res := make([]ColorSpace, numSpaces)
	for i := range res {
		res[i] = ColorSpace(i)
	}
	return res
}

// IsValid reports whether s is one of the supported colour spaces.
func (s ColorSpace) IsValid() bool {
	return s < numSpaces
}

// IsPolar returns true if the components of s are lightness, chroma and hue.
func (s ColorSpace) IsPolar() bool {
	return s == Lch || s == Oklch
}

// IsRectangular returns true if the components of s are orthogonal
// coordinates.
func (s ColorSpace) IsRectangular() bool {
	return !s.IsPolar()
}

// WhitePoint returns the reference white the colour space is defined
// relative to.  Lab, LCh, ProPhoto RGB and XYZ-D50 use D50, all other
// spaces use D65.
func (s ColorSpace) WhitePoint() WhitePoint {
	if !s.IsValid() {
		return D65
	}
	return conversions[s].white
}

// String returns the CSS identifier of the colour space.
func (s ColorSpace) String() string {
	switch s {
	case Lab:
		return "lab"
	case Lch:
		return "lch"
	case Oklab:
		return "oklab"
	case Oklch:
		return "oklch"
	case SRGB:
		return "srgb"
	case SRGBLinear:
		return "srgb-linear"
	case DisplayP3:
		return "display-p3"
	case A98RGB:
		return "a98-rgb"
	case ProPhotoRGB:
		return "prophoto-rgb"
	case Rec2020:
		return "rec2020"
	case XYZD50:
		return "xyz-d50"
	case XYZD65:
		return "xyz-d65"
	default:
		return fmt.Sprintf("ColorSpace(%d)", uint8(s))
	}
}
