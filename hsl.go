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

// HSL is a colour in the hue, saturation, lightness form of sRGB.
// Hue is in degrees, saturation and lightness are in the range [0, 1].
type HSL struct {
	Hue        float64
	Saturation float64
	Lightness  float64
}

// SRGB returns the gamma-encoded sRGB components of the colour.
func (c HSL) SRGB() Components {
	var m2 float64
	if c.Lightness <= 0.5 {
		m2 = c.Lightness * (c.Saturation + 1)
	} else {
		m2 = c.Lightness + c.Saturation - c.Lightness*c.Saturation
	}
	m1 := 2*c.Lightness - m2

	// hue in units of 120 degrees, in the range [0, 3)
	h3 := normalizeHue(c.Hue) / 120
	return Components{
		hueToChannel(m1, m2, h3+1),
		hueToChannel(m1, m2, h3),
		hueToChannel(m1, m2, h3-1),
	}
}

// hueToChannel evaluates one channel of the HSL to RGB conversion.
// The hue h3 is given in units of 120 degrees.
func hueToChannel(m1, m2, h3 float64) float64 {
	if h3 < 0 {
		h3 += 3
	}
	if h3 > 3 {
		h3 -= 3
	}

	switch {
	case h3*2 < 1:
		return m1 + (m2-m1)*h3*2
	case h3*2 < 3:
		return m2
	case h3 < 2:
		return m1 + (m2-m1)*(2-h3)*2
	default:
		return m1
	}
}

// HSLFromSRGB converts gamma-encoded sRGB components to HSL.
// For achromatic colours the hue is 0.
func HSLFromSRGB(rgb Components) HSL {
	r, g, b := rgb[0], rgb[1], rgb[2]
	hi := max(r, g, b)
	lo := min(r, g, b)

	res := HSL{Lightness: (lo + hi) / 2}

	d := hi - lo
	if d != 0 {
		if res.Lightness != 0 && res.Lightness != 1 {
			res.Saturation = (hi - res.Lightness) / min(res.Lightness, 1-res.Lightness)
		}
		res.Hue = rgbHue(r, g, b, hi, d)
	}

	// out-of-gamut colours can produce a negative saturation
	if res.Saturation < 0 {
		res.Hue += 180
		res.Saturation = -res.Saturation
	}
	res.Hue = normalizeHue(res.Hue)

	return res
}

// rgbHue returns the hue angle of an sRGB colour in degrees.
// hi must be the largest component and d must be the (non-zero)
// difference between the largest and smallest component.
func rgbHue(r, g, b, hi, d float64) float64 {
	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h * 60
}

// HWB is a colour in the hue, whiteness, blackness form of sRGB.
// Hue is in degrees, whiteness and blackness are in the range [0, 1].
type HWB struct {
	Hue       float64
	Whiteness float64
	Blackness float64
}

// SRGB returns the gamma-encoded sRGB components of the colour.
//
// If whiteness and blackness add up to 1 or more, the result is the
// achromatic grey whiteness/(whiteness+blackness).
func (c HWB) SRGB() Components {
	w, b := c.Whiteness, c.Blackness
	if w+b >= 1 {
		grey := w / (w + b)
		return Components{grey, grey, grey}
	}

	rgb := HSL{Hue: c.Hue, Saturation: 1, Lightness: 0.5}.SRGB()
	scale := 1 - w - b
	for i, v := range rgb {
		rgb[i] = v*scale + w
	}
	return rgb
}

// HWBFromSRGB converts gamma-encoded sRGB components to HWB.
// For achromatic colours the hue is 0.
func HWBFromSRGB(rgb Components) HWB {
	r, g, b := rgb[0], rgb[1], rgb[2]
	hi := max(r, g, b)
	lo := min(r, g, b)

	res := HWB{
		Whiteness: lo,
		Blackness: 1 - hi,
	}
	if d := hi - lo; d != 0 {
		res.Hue = normalizeHue(rgbHue(r, g, b, hi, d))
	}
	return res
}
