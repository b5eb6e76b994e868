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

// Components are the three colour components of a colour.
//
// The meaning of the components depends on the colour space:
// red, green and blue for the RGB spaces, X, Y and Z for the XYZ spaces,
// lightness, a and b for Lab and Oklab, and lightness, chroma and hue
// (in degrees) for LCh and OkLCh.  No range restrictions apply.
type Components [3]float64

// Color is a colour with an alpha value, expressed in a specific colour
// space.
type Color struct {
	components Components
	alpha      float64
	space      ColorSpace
}

// New returns a fully opaque colour with the given components.
func New(space ColorSpace, c1, c2, c3 float64) Color {
	return Color{
		components: Components{c1, c2, c3},
		alpha:      1,
		space:      space,
	}
}

// WithAlpha returns a copy of c with the alpha value replaced.
func (c Color) WithAlpha(alpha float64) Color {
	c.alpha = alpha
	return c
}

// Components returns the colour components.
func (c Color) Components() Components {
	return c.components
}

// Alpha returns the alpha value, where 1 means fully opaque.
func (c Color) Alpha() float64 {
	return c.alpha
}

// Space returns the colour space the components are expressed in.
func (c Color) Space() ColorSpace {
	return c.space
}

// Values returns the three components followed by alpha.
func (c Color) Values() [4]float64 {
	return [4]float64{c.components[0], c.components[1], c.components[2], c.alpha}
}

// Convert returns the same colour expressed in the colour space target.
// The alpha value is not changed.
func (c Color) Convert(target ColorSpace) Color {
	return Color{
		components: Convert(c.space, c.components, target),
		alpha:      c.alpha,
		space:      target,
	}
}
