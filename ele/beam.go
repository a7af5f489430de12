// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ele implements the 2-node planar Euler-Bernoulli beam element
// used by the bridge deck model. Each node carries 3 degrees of freedom:
// horizontal translation (ux), vertical translation (uy) and rotation (rz).
package ele

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Beam holds the element data and operators of one frame member
type Beam struct {

	// geometry
	Xa, Ya float64 // coordinates of first node
	Xb, Yb float64 // coordinates of second node
	L      float64 // length of beam

	// properties
	E float64 // Young's modulus
	A float64 // cross-sectional area
	I float64 // second moment of area about the bending axis

	// computed variables
	T  [][]float64 // global-to-local transformation matrix (6 x 6)
	Kl [][]float64 // local stiffness matrix (6 x 6)
	K  [][]float64 // global stiffness matrix (6 x 6)

	// scratchpad. computed @ each recovery
	ua []float64 // local displacements
	fl []float64 // local forces
}

// NewBeam returns a new beam element or an error if the geometry or the
// section properties are invalid
func NewBeam(xa, ya, xb, yb, E, A, I float64) (o *Beam, err error) {

	// check properties
	if E <= 0 || A <= 0 || I <= 0 {
		err = GeometryError{io.Sf("beam properties must be positive: E=%g A=%g I=%g", E, A, I)}
		return
	}

	// check length
	dx := xb - xa
	dy := yb - ya
	l := math.Sqrt(dx*dx + dy*dy)
	if l < 1e-12 {
		err = GeometryError{io.Sf("beam has zero length: a=(%g,%g) b=(%g,%g)", xa, ya, xb, yb)}
		return
	}

	// allocate
	o = &Beam{Xa: xa, Ya: ya, Xb: xb, Yb: yb, L: l, E: E, A: A, I: I}
	o.T = la.MatAlloc(6, 6)
	o.Kl = la.MatAlloc(6, 6)
	o.K = la.MatAlloc(6, 6)
	o.ua = make([]float64, 6)
	o.fl = make([]float64, 6)
	o.Recompute()
	return
}

// Recompute rebuilds the transformation and stiffness matrices
func (o *Beam) Recompute() {

	// direction cosines
	dx := o.Xb - o.Xa
	dy := o.Yb - o.Ya
	l := math.Sqrt(dx*dx + dy*dy)
	c := dx / l
	s := dy / l
	o.L = l

	// local stiffness matrix
	m := o.E * o.A / l
	n := o.E * o.I / (l * l * l)
	o.Kl[0][0] = m
	o.Kl[0][3] = -m
	o.Kl[1][1] = 12 * n
	o.Kl[1][2] = 6 * l * n
	o.Kl[1][4] = -12 * n
	o.Kl[1][5] = 6 * l * n
	o.Kl[2][1] = 6 * l * n
	o.Kl[2][2] = 4 * l * l * n
	o.Kl[2][4] = -6 * l * n
	o.Kl[2][5] = 2 * l * l * n
	o.Kl[3][0] = -m
	o.Kl[3][3] = m
	o.Kl[4][1] = -12 * n
	o.Kl[4][2] = -6 * l * n
	o.Kl[4][4] = 12 * n
	o.Kl[4][5] = -6 * l * n
	o.Kl[5][1] = 6 * l * n
	o.Kl[5][2] = 2 * l * l * n
	o.Kl[5][4] = -6 * l * n
	o.Kl[5][5] = 4 * l * l * n

	// transformation matrix
	o.T[0][0] = c
	o.T[0][1] = s
	o.T[1][0] = -s
	o.T[1][1] = c
	o.T[2][2] = 1
	o.T[3][3] = c
	o.T[3][4] = s
	o.T[4][3] = -s
	o.T[4][4] = c
	o.T[5][5] = 1

	// global stiffness matrix
	la.MatTrMul3(o.K, 1, o.T, o.Kl, o.T) // K := 1 * trans(T) * Kl * T
}

// EquivNodalLoads returns the global consistent nodal load vector that is
// equivalent to a uniform transverse load wy acting along the local y axis
// of the whole element (negative wy means load towards -y)
func (o *Beam) EquivNodalLoads(wy float64) (fg []float64) {
	l := o.L
	fxl := []float64{0, wy * l / 2.0, wy * l * l / 12.0, 0, wy * l / 2.0, -wy * l * l / 12.0}
	fg = make([]float64, 6)
	la.MatTrVecMulAdd(fg, 1, o.T, fxl) // fg += 1 * trans(T) * fxl
	return
}

// LocalForces recovers the local end forces fl = Kl * T * ue given the
// element global displacement vector ue (6 components). The returned slice
// is reused between calls.
func (o *Beam) LocalForces(ue []float64) []float64 {
	la.MatVecMul(o.ua, 1, o.T, ue)     // ua := 1 * T * ue
	la.MatVecMul(o.fl, 1, o.Kl, o.ua)  // fl := 1 * Kl * ua
	return o.fl
}

// EndForces recovers the axial force, the shear force at the start node and
// the bending moments at both ends of the element
func (o *Beam) EndForces(ue []float64) (axial, shear, ma, mb float64) {
	fl := o.LocalForces(ue)
	return fl[0], fl[1], fl[2], fl[5]
}
