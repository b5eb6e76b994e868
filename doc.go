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

// Package csscolor converts colours between the colour spaces defined by
// the CSS Color Module Level 4.
//
// Supported spaces are sRGB, linear-light sRGB, Display P3, A98 RGB,
// ProPhoto RGB, Rec. 2020, CIE XYZ relative to the D50 and D65 white points,
// CIE Lab and LCh, and Oklab and OkLCh.  All conversions go through CIE XYZ:
// the source components are linearised, mapped to XYZ, adapted to the
// destination white point using the Bradford transform if required, mapped to
// the linear-light destination space, and finally re-encoded.
//
// # Converting Colours
//
// Use [Convert] to convert a single set of components:
//
//	rgb := csscolor.Components{1, 0.5, 0}
//	lab := csscolor.Convert(csscolor.SRGB, rgb, csscolor.Lab)
//
// The [Color] type bundles the components with an alpha value and the colour
// space they are expressed in:
//
//	c := csscolor.New(csscolor.DisplayP3, 1, 0, 0).WithAlpha(0.5)
//	d := c.Convert(csscolor.SRGB)  // alpha is still 0.5
//
// For many conversions between the same pair of spaces, create a
// [Converter] with [NewConverter] and call [Converter.Apply].
//
// # Out-of-Gamut Values
//
// No component values are clamped.  Values outside the nominal range of a
// space, including negative values, are converted using odd-symmetric
// extensions of the transfer functions and survive round trips.
//
// # HSL and HWB
//
// The cylindrical forms of sRGB are not part of the XYZ pipeline.  They are
// converted directly to and from gamma-encoded sRGB using [HSL], [HWB],
// [HSLFromSRGB] and [HWBFromSRGB].
package csscolor
