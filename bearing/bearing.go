// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bearing computes bearing stiffnesses and distributes pier
// reactions onto the individual bearings of each pier.
package bearing

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Kind selects the mechanical idealisation of a bearing
type Kind string

// available kinds
const (
	Elastomeric Kind = "elastomeric"
	Spherical   Kind = "spherical"
	Sliding     Kind = "sliding"
)

// Size selects the plan dimensions of a bearing
type Size string

// available sizes
const (
	SizeStandard Size = "standard"
	SizeLarge    Size = "large"
	SizeMedium   Size = "medium"
	SizeSmall    Size = "small"
)

// Material selects the elastomer or plate material
type Material string

// available materials
const (
	MatDefault Material = "default"
	MatRubber  Material = "rubber"
	MatSteel   Material = "steel"
)

// Key identifies one bearing by its pier and its position on the pier,
// both 1-based
type Key struct {
	Pier    int
	Bearing int
}

// String returns the "pier-bearing" form of the key
func (k Key) String() string { return io.Sf("%d-%d", k.Pier, k.Bearing) }

// ParseKey converts a "pier-bearing" string into a Key
func ParseKey(s string) (k Key, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		err = chk.Err("bearing key %q is not of the form \"pier-bearing\"", s)
		return
	}
	k.Pier, err = strconv.Atoi(parts[0])
	if err != nil {
		return
	}
	k.Bearing, err = strconv.Atoi(parts[1])
	if err == nil && (k.Pier < 1 || k.Bearing < 1) {
		err = chk.Err("bearing key %q has non-positive indices", s)
	}
	return
}

// Bearing holds the geometry and parameters of one bearing
type Bearing struct {
	Key          Key
	PierX        float64 // longitudinal position along the deck
	PierY        float64 // transverse offset from the deck centreline
	Height       float64 // total height including offset
	HeightOffset float64 // mm-scale installation offset over the pier height
	Kind         Kind
	Size         Size
	Material     Material
}

// Stiffness holds the derived stiffness parameters of one bearing
type Stiffness struct {
	Kv        float64 // vertical stiffness
	Kh        float64 // horizontal stiffness
	Area      float64 // plan area
	Thickness float64 // pad thickness
	E         float64 // material modulus
}

type sizeProps struct {
	area      float64
	thickness float64
}

// plan dimensions per size class; unknown sizes fall back to standard
var sizeTable = map[Size]sizeProps{
	SizeLarge:    {0.25, 0.10},
	SizeMedium:   {0.16, 0.08},
	SizeStandard: {0.09, 0.06},
	SizeSmall:    {0.09, 0.06},
}

// elastic modulus per material; unknown materials fall back to default
var materialTable = map[Material]float64{
	MatRubber: 1e6,
	MatSteel:  200e9,
}

const defaultModulus = 5e6

// Stiffness computes the vertical and horizontal stiffnesses from the
// size, material and kind of the bearing
func (o *Bearing) Stiffness() (s Stiffness) {
	props, ok := sizeTable[o.Size]
	if !ok {
		props = sizeTable[SizeStandard]
	}
	s.Area = props.area
	s.Thickness = props.thickness
	s.E, ok = materialTable[o.Material]
	if !ok {
		s.E = defaultModulus
	}
	switch o.Kind {
	case Spherical:
		s.Kv = 1e12
		s.Kh = 1e6
	case Sliding:
		s.Kv = s.E * s.Area / s.Thickness
		s.Kh = 1e3
	default: // elastomeric
		s.Kv = s.E * s.Area / s.Thickness
		s.Kh = 0.1 * s.Kv
	}
	return
}
