// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana provides analytical solutions and reference data for
// verifying the bridge finite element computations.
package ana

import "github.com/cpmech/gosl/chk"

// CrossSection computes the properties of beam cross-sections. All
// dimensions are in metres and the resulting properties in SI units.
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam" or "circle"
	B    float64 // width (rectangle), flange width (I-beam) or diameter (circle)
	H    float64 // height (rectangle, I-beam)
	Tf   float64 // flange thickness (I-beam)
	Tw   float64 // web thickness (I-beam)

	// derived
	A   float64 // cross-sectional area
	I22 float64 // second moment of area about the strong axis
	I11 float64 // second moment of area about the weak axis
}

// Init computes the derived properties
func (o *CrossSection) Init() {
	switch o.Type {
	case "rectangle":
		o.A = o.B * o.H
		o.I22 = o.B * o.H * o.H * o.H / 12.0
		o.I11 = o.H * o.B * o.B * o.B / 12.0
	case "I-beam":
		hw := o.H - 2.0*o.Tf // web height
		o.A = 2.0*o.B*o.Tf + hw*o.Tw
		o.I22 = o.B*o.H*o.H*o.H/12.0 - (o.B-o.Tw)*hw*hw*hw/12.0
		o.I11 = 2.0*o.Tf*o.B*o.B*o.B/12.0 + hw*o.Tw*o.Tw*o.Tw/12.0
	case "circle":
		r := o.B / 2.0
		o.A = 3.141592653589793 * r * r
		o.I22 = 3.141592653589793 * r * r * r * r / 4.0
		o.I11 = o.I22
	default:
		chk.Panic("cross-section type %q is not available", o.Type)
	}
}

// Material holds the mechanical properties of a deck material
type Material struct {
	Name    string  // preset name
	E       float64 // Young's modulus [Pa]
	Density float64 // mass density [kg/m3]
}

// materials available to the bridge model
var materials = map[string]Material{
	"C30":         {"C30", 30e9, 2400},
	"C40":         {"C40", 32.5e9, 2400},
	"C50":         {"C50", 34.5e9, 2500},
	"steel":       {"steel", 200e9, 7850},
	"prestressed": {"prestressed", 35e9, 2500},
}

// GetMaterial returns a material preset. It panics on unknown names since
// the set of presets is closed.
func GetMaterial(name string) Material {
	m, ok := materials[name]
	if !ok {
		chk.Panic("material %q is not available", name)
	}
	return m
}

// MaterialNames returns the names of all material presets
func MaterialNames() (names []string) {
	for name := range materials {
		names = append(names, name)
	}
	return
}
