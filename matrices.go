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

// The matrices below are the reference values from the sample code in CSS
// Color 4, section 18.  All matrices are stored in row-major order and act on
// column vectors.  Linear-light RGB to XYZ matrices map to XYZ relative to the
// white point of the RGB space.

var srgbToXYZ = f64.Mat3{
	506752.0 / 1228815, 87881.0 / 245763, 12673.0 / 70218,
	87098.0 / 409605, 175762.0 / 245763, 12673.0 / 175545,
	7918.0 / 409605, 87881.0 / 737289, 1001167.0 / 1053270,
}

var xyzToSRGB = f64.Mat3{
	12831.0 / 3959, -329.0 / 214, -1974.0 / 3959,
	-851781.0 / 878810, 1648619.0 / 878810, 36519.0 / 878810,
	705.0 / 12673, -2585.0 / 12673, 705.0 / 667,
}

var displayP3ToXYZ = f64.Mat3{
	608311.0 / 1250200, 189793.0 / 714400, 198249.0 / 1000160,
	35783.0 / 156275, 247089.0 / 357200, 198249.0 / 2500400,
	0, 32229.0 / 714400, 5220557.0 / 5000800,
}

var xyzToDisplayP3 = f64.Mat3{
	446124.0 / 178915, -333277.0 / 357830, -72051.0 / 178915,
	-14852.0 / 17905, 63121.0 / 35810, 423.0 / 17905,
	11844.0 / 330415, -50337.0 / 660830, 316169.0 / 330415,
}

var a98ToXYZ = f64.Mat3{
	573536.0 / 994567, 263643.0 / 1420810, 187206.0 / 994567,
	591459.0 / 1989134, 6239551.0 / 9945670, 374412.0 / 4972835,
	53769.0 / 1989134, 351524.0 / 4972835, 4929758.0 / 4972835,
}

var xyzToA98 = f64.Mat3{
	1829569.0 / 896150, -506331.0 / 896150, -308931.0 / 896150,
	-851781.0 / 878810, 1648619.0 / 878810, 36519.0 / 878810,
	16779.0 / 1248040, -147721.0 / 1248040, 1266979.0 / 1248040,
}

// ProPhoto RGB is defined relative to D50.
var proPhotoToXYZ = f64.Mat3{
	0.7977604896723027, 0.13518583717574031, 0.0313493495815248,
	0.2880711282292934, 0.7118432178101014, 0.00008565396060525902,
	0, 0, 0.8251046025104601,
}

var xyzToProPhoto = f64.Mat3{
	1.3457989731028281, -0.25558010007997534, -0.05110628506753401,
	-0.5446224939028347, 1.5082327413132781, 0.02053603239147973,
	0, 0, 1.2119675456389454,
}

var rec2020ToXYZ = f64.Mat3{
	63426534.0 / 99577255, 20160776.0 / 139408157, 47086771.0 / 278816314,
	26158966.0 / 99577255, 472592308.0 / 697040785, 8267143.0 / 139408157,
	0, 19567812.0 / 697040785, 295819943.0 / 278816314,
}

var xyzToRec2020 = f64.Mat3{
	30757411.0 / 17917100, -6372589.0 / 17917100, -4539589.0 / 17917100,
	-19765991.0 / 29648200, 47925759.0 / 29648200, 467509.0 / 29648200,
	792561.0 / 44930125, -1921689.0 / 44930125, 42328811.0 / 44930125,
}

// Oklab, see https://bottosson.github.io/posts/oklab/ .
// The XYZ to LMS matrix incorporates the D65 white point.

var xyzToLMS = f64.Mat3{
	0.8190224432164319, 0.3619062562801221, -0.12887378261216414,
	0.0329836671980271, 0.9292868468965546, 0.03614466816999844,
	0.048177199566046255, 0.26423952494422764, 0.6335478258136937,
}

var lmsToOklab = f64.Mat3{
	0.2104542553, 0.7936177850, -0.0040720468,
	1.9779984951, -2.4285922050, 0.4505937099,
	0.0259040371, 0.7827717662, -0.8086757660,
}

var lmsToXYZ = f64.Mat3{
	1.2268798733741557, -0.5578149965554813, 0.28139105017721583,
	-0.04057576262431372, 1.1122868293970594, -0.07171106666151701,
	-0.07637294974672142, -0.4214933239627914, 1.5869240244272418,
}

var oklabToLMS = f64.Mat3{
	0.99999999845051981432, 0.39633779217376785678, 0.21580375806075880339,
	1.0000000088817607767, -0.1055613423236563494, -0.063854174771705903402,
	1.0000000546724109177, -0.089484182094965759684, -1.2914855378640917399,
}

// d50ToD65 is the Bradford chromatic adaptation from D50 to D65.
var d50ToD65 = f64.Mat3{
	0.9554734527042182, -0.023098536874261423, 0.0632593086610217,
	-0.028369706963208136, 1.0099954580058226, 0.021041398966943008,
	0.012314001688319899, -0.020507696433477912, 1.3303659366080753,
}

// d65ToD50 is the inverse of d50ToD65.
var d65ToD50 = mustInvert(&d50ToD65)

// mulMat3 returns the product m·v.
func mulMat3(m *f64.Mat3, v Components) Components {
	return Components{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// invertMat3 returns the inverse of a 3x3 matrix.
// The second return value is false if the matrix is singular.
func invertMat3(m *f64.Mat3) (f64.Mat3, bool) {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if det == 0 {
		return f64.Mat3{}, false
	}

	invDet := 1.0 / det

	return f64.Mat3{
		(e*i - f*h) * invDet, (c*h - b*i) * invDet, (b*f - c*e) * invDet,
		(f*g - d*i) * invDet, (a*i - c*g) * invDet, (c*d - a*f) * invDet,
		(d*h - e*g) * invDet, (b*g - a*h) * invDet, (a*e - b*d) * invDet,
	}, true
}

func mustInvert(m *f64.Mat3) f64.Mat3 {
	inv, ok := invertMat3(m)
	if !ok {
		panic("csscolor: singular matrix")
	}
	return inv
}
