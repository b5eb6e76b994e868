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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/math/f64"
)

// samples contains in-gamut and out-of-gamut components for every space.
var samples = map[ColorSpace][]Components{
	Lab:         {{50, 20, -30}, {5, 3, -2}, {110, -150, 200}, {0, 0, 0}},
	Lch:         {{50, 30, 120}, {70, 150, 350}, {2, 4, 45}},
	Oklab:       {{0.6, 0.1, -0.1}, {0.05, 0.01, 0.02}, {1.2, -0.5, 0.4}},
	Oklch:       {{0.7, 0.15, 200}, {0.3, 0.4, 10}},
	SRGB:        {{0.2, 0.4, 0.8}, {1, 1, 1}, {1.2, -0.3, 0.5}, {0.01, 0.02, 0.03}},
	SRGBLinear:  {{0.2, 0.4, 0.8}, {1.2, -0.3, 0.5}},
	DisplayP3:   {{0.2, 0.4, 0.8}, {1.2, -0.3, 0.5}, {0.01, 0.02, 0.03}},
	A98RGB:      {{0.2, 0.4, 0.8}, {1.2, -0.3, 0.5}, {0.01, 0.02, 0.03}},
	ProPhotoRGB: {{0.2, 0.4, 0.8}, {1.2, -0.3, 0.5}, {0.01, 0.02, 0.03}},
	Rec2020:     {{0.2, 0.4, 0.8}, {1.2, -0.3, 0.5}, {0.01, 0.02, 0.03}},
	XYZD50:      {{0.3, 0.4, 0.5}, {-0.1, 1.5, 0.2}},
	XYZD65:      {{0.3, 0.4, 0.5}, {-0.1, 1.5, 0.2}},
}

var approx = cmpopts.EquateApprox(0, 1e-4)

func TestPivotRoundTrip(t *testing.T) {
	for _, space := range AllSpaces() {
		t.Run(space.String(), func(t *testing.T) {
			if len(samples[space]) == 0 {
				t.Fatal("no samples")
			}
			for _, c := range samples[space] {
				xyz, wp := ToXYZ(space, c)
				if wp != space.WhitePoint() {
					t.Errorf("white point = %s, want %s", wp, space.WhitePoint())
				}
				back := FromXYZ(xyz, wp, space)
				if d := cmp.Diff(c, back, approx); d != "" {
					t.Errorf("round-trip %v (-want +got):\n%s", c, d)
				}
			}
		})
	}
}

// TestPivotAdaptedRoundTrip converts each sample to XYZ relative to the
// other white point and back.
func TestPivotAdaptedRoundTrip(t *testing.T) {
	for _, space := range AllSpaces() {
		other := XYZD65
		if space.WhitePoint() == D65 {
			other = XYZD50
		}
		t.Run(space.String(), func(t *testing.T) {
			for _, c := range samples[space] {
				xyz, wp := ToXYZ(space, c)
				adapted := FromXYZ(xyz, wp, other)
				back := FromXYZ(adapted, other.WhitePoint(), space)
				if d := cmp.Diff(c, back, approx); d != "" {
					t.Errorf("round-trip via %s %v (-want +got):\n%s", other, c, d)
				}
			}
		})
	}
}

func TestFromXYZAdaptation(t *testing.T) {
	xyz := Components{0.3, 0.4, 0.5}

	got := FromXYZ(xyz, D65, XYZD65)
	if got != xyz {
		t.Errorf("same white point: got %v, want %v", got, xyz)
	}

	got = FromXYZ(xyz, D50, XYZD65)
	want := mulMat3(&d50ToD65, xyz)
	if got != want {
		t.Errorf("D50 to D65: got %v, want %v", got, want)
	}

	got = FromXYZ(xyz, D65, XYZD50)
	want = mulMat3(&d65ToD50, xyz)
	if got != want {
		t.Errorf("D65 to D50: got %v, want %v", got, want)
	}
}

func TestBradfordInverse(t *testing.T) {
	var prod f64.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				prod[3*i+j] += d50ToD65[3*i+k] * d65ToD50[3*k+j]
			}
		}
	}
	identity := f64.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
	if d := cmp.Diff(identity, prod, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("d50ToD65 * d65ToD50 != I (-want +got):\n%s", d)
	}
}

func TestBradfordWhite(t *testing.T) {
	got := mulMat3(&d50ToD65, D50.XYZ())
	if d := cmp.Diff(D65.XYZ(), got, approx); d != "" {
		t.Errorf("D50 white adapted to D65 (-want +got):\n%s", d)
	}
}

// TestMatrixPairs checks that each pair of RGB matrices are inverses of
// each other.
func TestMatrixPairs(t *testing.T) {
	pairs := []struct {
		name           string
		toXYZ, fromXYZ *f64.Mat3
	}{
		{"sRGB", &srgbToXYZ, &xyzToSRGB},
		{"Display P3", &displayP3ToXYZ, &xyzToDisplayP3},
		{"A98", &a98ToXYZ, &xyzToA98},
		{"ProPhoto", &proPhotoToXYZ, &xyzToProPhoto},
		{"Rec2020", &rec2020ToXYZ, &xyzToRec2020},
		{"LMS", &lmsToXYZ, &xyzToLMS},
		{"Oklab", &oklabToLMS, &lmsToOklab},
	}
	for _, p := range pairs {
		inv, ok := invertMat3(p.toXYZ)
		if !ok {
			t.Errorf("%s: singular matrix", p.name)
			continue
		}
		if d := cmp.Diff(*p.fromXYZ, inv, cmpopts.EquateApprox(0, 1e-6)); d != "" {
			t.Errorf("%s: matrices are not inverse (-want +got):\n%s", p.name, d)
		}
	}
}

func TestInvertSingular(t *testing.T) {
	m := f64.Mat3{1, 2, 3, 2, 4, 6, 0, 0, 1}
	if _, ok := invertMat3(&m); ok {
		t.Error("singular matrix was inverted")
	}
}

// TestRGBWhite checks that RGB white maps to the reference white of each
// space.
func TestRGBWhite(t *testing.T) {
	for _, space := range []ColorSpace{SRGB, SRGBLinear, DisplayP3, A98RGB, ProPhotoRGB, Rec2020} {
		xyz, wp := ToXYZ(space, Components{1, 1, 1})
		if d := cmp.Diff(wp.XYZ(), xyz, approx); d != "" {
			t.Errorf("%s: white (-want +got):\n%s", space, d)
		}
	}
}

func TestLabWhite(t *testing.T) {
	white := Components{0.3457 / 0.3585, 1, (1 - 0.3457 - 0.3585) / 0.3585}
	got := xyzToLab(white)
	want := Components{100, 0, 0}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("D50 white in Lab (-want +got):\n%s", d)
	}

	back := labToXYZ(want)
	if d := cmp.Diff(white, back, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("Lab white in XYZ (-want +got):\n%s", d)
	}
}

// TestLabDark exercises the linear branches of the Lab companding.
func TestLabDark(t *testing.T) {
	tests := []Components{
		{4, 0, 0},
		{4, 10, -10},
		{1, -20, 30},
		{-3, 0, 0},
	}
	for _, lab := range tests {
		xyz := labToXYZ(lab)
		back := xyzToLab(xyz)
		if d := cmp.Diff(lab, back, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("round-trip %v (-want +got):\n%s", lab, d)
		}
	}

	// for L <= 8 the luminance is L/kappa
	xyz := labToXYZ(Components{4, 0, 0})
	if want := 4 / labKappa; math.Abs(xyz[1]-want) > 1e-12 {
		t.Errorf("Y = %g, want %g", xyz[1], want)
	}
}

func TestOklabWhite(t *testing.T) {
	got := xyzToOklab(D65.XYZ())
	want := Components{1, 0, 0}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("D65 white in Oklab (-want +got):\n%s", d)
	}
}

func TestPolar(t *testing.T) {
	tests := []struct {
		rect, polar Components
	}{
		{Components{50, 10, -10}, Components{50, math.Sqrt(200), 315}},
		{Components{50, 10, 10}, Components{50, math.Sqrt(200), 45}},
		{Components{50, -10, 0}, Components{50, 10, 180}},
		{Components{0.5, 0, 0.2}, Components{0.5, 0.2, 90}},
		{Components{50, 0, 0}, Components{50, 0, 0}},
	}
	for _, tt := range tests {
		got := rectToPolar(tt.rect)
		if d := cmp.Diff(tt.polar, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("rectToPolar(%v) (-want +got):\n%s", tt.rect, d)
		}
		back := polarToRect(tt.polar)
		if d := cmp.Diff(tt.rect, back, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("polarToRect(%v) (-want +got):\n%s", tt.polar, d)
		}
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{-90, 270},
		{725, 5},
		{-720, 0},
		{-1e-20, 0},
	}
	for _, tt := range tests {
		got := normalizeHue(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeHue(%g) = %g, want %g", tt.in, got, tt.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("normalizeHue(%g) = %g, out of range", tt.in, got)
		}
	}
}
