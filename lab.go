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

const (
	labKappa   = 24389.0 / 27  // (29/3)^3
	labEpsilon = 216.0 / 24389 // (6/29)^3
)

// labToXYZ converts CIE Lab to XYZ relative to D50.
// Lab values: L in [0, 100], a and b roughly in [-125, 125].
func labToXYZ(lab Components) Components {
	L, a, b := lab[0], lab[1], lab[2]

	// compute f, starting with the luminance-related term
	f1 := (L + 16) / 116
	f0 := a/500 + f1
	f2 := f1 - b/200

	var xr, yr, zr float64
	if f0cubed := f0 * f0 * f0; f0cubed > labEpsilon {
		xr = f0cubed
	} else {
		xr = (116*f0 - 16) / labKappa
	}
	if L > labKappa*labEpsilon {
		yr = f1 * f1 * f1
	} else {
		yr = L / labKappa
	}
	if f2cubed := f2 * f2 * f2; f2cubed > labEpsilon {
		zr = f2cubed
	} else {
		zr = (116*f2 - 16) / labKappa
	}

	white := D50.XYZ()
	return Components{xr * white[0], yr * white[1], zr * white[2]}
}

// xyzToLab converts XYZ relative to D50 to CIE Lab.
func xyzToLab(xyz Components) Components {
	white := D50.XYZ()

	f := func(t float64) float64 {
		if t > labEpsilon {
			return math.Cbrt(t)
		}
		return (labKappa*t + 16) / 116
	}
	fx := f(xyz[0] / white[0])
	fy := f(xyz[1] / white[1])
	fz := f(xyz[2] / white[2])

	return Components{
		116*fy - 16,
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

// oklabToXYZ converts Oklab to XYZ relative to D65.
func oklabToXYZ(lab Components) Components {
	lms := mulMat3(&oklabToLMS, lab)
	for i, v := range lms {
		lms[i] = v * v * v
	}
	return mulMat3(&lmsToXYZ, lms)
}

// xyzToOklab converts XYZ relative to D65 to Oklab.
func xyzToOklab(xyz Components) Components {
	lms := mulMat3(&xyzToLMS, xyz)
	for i, v := range lms {
		lms[i] = math.Cbrt(v)
	}
	return mulMat3(&lmsToOklab, lms)
}

// polarToRect converts lightness, chroma and hue (in degrees) to
// lightness and two rectangular coordinates.
func polarToRect(lch Components) Components {
	L, C, h := lch[0], lch[1], lch[2]
	sin, cos := math.Sincos(h * math.Pi / 180)
	return Components{L, C * cos, C * sin}
}

// rectToPolar is the inverse of polarToRect.
// The hue of the result is in the range [0, 360).
func rectToPolar(lab Components) Components {
	L, a, b := lab[0], lab[1], lab[2]
	return Components{L, math.Hypot(a, b), normalizeHue(math.Atan2(b, a) * 180 / math.Pi)}
}

// normalizeHue maps a hue angle in degrees to the range [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 { // h was a tiny negative number
		h = 0
	}
	return h
}
