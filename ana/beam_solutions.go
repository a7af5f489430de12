// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// SimplySupportedBeam holds closed-form solutions of a single-span beam
// with a pin at one end and a roller at the other
type SimplySupportedBeam struct {
	L float64 // span
	E float64 // Young's modulus
	I float64 // second moment of area
}

// DeflectionCentrePointLoad returns the midspan deflection due to a
// downward point load P applied at the centre: P*L3/(48*E*I)
func (o *SimplySupportedBeam) DeflectionCentrePointLoad(P float64) float64 {
	return P * o.L * o.L * o.L / (48.0 * o.E * o.I)
}

// MomentCentrePointLoad returns the maximum bending moment due to a point
// load P at the centre: P*L/4
func (o *SimplySupportedBeam) MomentCentrePointLoad(P float64) float64 {
	return P * o.L / 4.0
}

// DeflectionUniformLoad returns the midspan deflection due to a uniform
// load w per unit length: 5*w*L4/(384*E*I)
func (o *SimplySupportedBeam) DeflectionUniformLoad(w float64) float64 {
	return 5.0 * w * o.L * o.L * o.L * o.L / (384.0 * o.E * o.I)
}

// MomentUniformLoad returns the maximum bending moment due to a uniform
// load w per unit length: w*L2/8
func (o *SimplySupportedBeam) MomentUniformLoad(w float64) float64 {
	return w * o.L * o.L / 8.0
}

// ReactionsUniformLoad returns the two support reactions due to a uniform
// load w per unit length
func (o *SimplySupportedBeam) ReactionsUniformLoad(w float64) (ra, rb float64) {
	ra = w * o.L / 2.0
	return ra, ra
}
