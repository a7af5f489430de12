// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/darcywudc/simplebridgetwincopilot/ana"
	"github.com/darcywudc/simplebridgetwincopilot/bearing"
	"github.com/darcywudc/simplebridgetwincopilot/fem"
)

// Gravity is the gravitational acceleration used for self-weight
const Gravity = 9.81

type pointLoad struct {
	ratio      float64
	fx, fy, mz float64
}

type distLoad struct {
	start, end float64
	wy         float64
}

// Model holds the validated bridge and its registered loads. The numeric
// finite element model is rebuilt from scratch on every analysis so that
// no state leaks between runs.
type Model struct {
	Cfg Config

	// resolved properties
	E       float64
	Density float64
	Sec     ana.CrossSection

	// topology
	PierRatios  []float64
	PierNodes   []int     // snapped deck node ids, one per pier
	PierX       []float64 // snapped pier coordinates
	Supports    []SupportType
	PierHeights []float64
	Bearings    []*bearing.Bearing

	// validation output
	Warnings []string

	// registered loads
	ploads []pointLoad
	dloads []distLoad
}

// NewModel validates the configuration and builds the bridge topology
func NewModel(cfg Config) (o *Model, err error) {

	warnings, err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	o = &Model{Cfg: cfg, Warnings: warnings}
	E, density, _ := cfg.resolveMaterial()
	o.E, o.Density = E, density
	o.Sec = ana.CrossSection{Type: "rectangle", B: cfg.SectionWidth, H: cfg.SectionHeight}
	o.Sec.Init()

	// pier positions snapped to the nearest deck node
	o.PierRatios, err = cfg.PierRatios()
	if err != nil {
		return nil, err
	}
	spacing := cfg.Length / float64(cfg.NumElements)
	for _, r := range o.PierRatios {
		idx := int(math.Round(r * cfg.Length / spacing))
		if idx < 0 {
			idx = 0
		}
		if idx > cfg.NumElements {
			idx = cfg.NumElements
		}
		o.PierNodes = append(o.PierNodes, idx+1)
		o.PierX = append(o.PierX, float64(idx)*spacing)
	}

	// supports and pier heights
	o.Supports = cfg.Supports
	if len(o.Supports) == 0 {
		o.Supports = defaultSupports(cfg.NumPiers())
	}
	o.PierHeights = cfg.PierHeights
	if len(o.PierHeights) == 0 {
		o.PierHeights = make([]float64, cfg.NumPiers())
		for i := range o.PierHeights {
			o.PierHeights[i] = DefaultPierHeight
		}
	}

	// bearings, laid out symmetrically about the deck centreline
	n := cfg.BearingsPerPier
	for p := 1; p <= cfg.NumPiers(); p++ {
		for j := 1; j <= n; j++ {
			key := bearing.Key{Pier: p, Bearing: j}
			b := &bearing.Bearing{
				Key:      key,
				PierX:    o.PierX[p-1],
				PierY:    (float64(j-1) - float64(n-1)/2.0) * BearingSpacing,
				Kind:     bearing.Elastomeric,
				Size:     bearing.SizeStandard,
				Material: bearing.MatDefault,
			}
			b.HeightOffset = cfg.BearingHeightOffsets[key]
			b.Height = o.PierHeights[p-1] + b.HeightOffset
			if params, ok := cfg.BearingParams[key]; ok {
				b.Kind = params.Kind
				b.Size = params.Size
				b.Material = params.Material
			}
			o.Bearings = append(o.Bearings, b)
		}
	}
	return
}

// AddPointLoad registers a concentrated load at a position given as a
// ratio of the deck length. Negative fy points downwards.
func (o *Model) AddPointLoad(ratio, fx, fy, mz float64) error {
	if ratio < 0 || ratio > 1 {
		return ConfigurationError{[]string{io.Sf("point load position ratio %g is outside [0,1]", ratio)}}
	}
	o.ploads = append(o.ploads, pointLoad{ratio, fx, fy, mz})
	return nil
}

// AddDistributedLoad registers a uniform load wy per unit length over the
// deck segment [start,end] given as ratios
func (o *Model) AddDistributedLoad(start, end, wy float64) error {
	if start < 0 || end > 1 || start >= end {
		return ConfigurationError{[]string{io.Sf("distributed load range [%g,%g] is invalid", start, end)}}
	}
	o.dloads = append(o.dloads, distLoad{start, end, wy})
	return nil
}

// AddVehicleLoad registers a convoy of axle loads. lead is the position
// ratio of the first axle; the following axles are placed behind it at
// the given spacing. Axles falling off the deck are skipped. The number
// of axles applied is returned.
func (o *Model) AddVehicleLoad(axles []float64, spacing, lead float64) (applied int, err error) {
	for i, fy := range axles {
		x := lead*o.Cfg.Length - float64(i)*spacing
		r := x / o.Cfg.Length
		if r < 0 || r > 1 {
			continue
		}
		if err = o.AddPointLoad(r, 0, fy, 0); err != nil {
			return
		}
		applied++
	}
	return
}

// ClearLoads removes all registered loads. Self-weight is not a
// registered load and is always applied.
func (o *Model) ClearLoads() {
	o.ploads = nil
	o.dloads = nil
}

// snapNode returns the deck node id closest to a position ratio
func (o *Model) snapNode(ratio float64) int {
	idx := int(math.Round(ratio * float64(o.Cfg.NumElements)))
	if idx < 0 {
		idx = 0
	}
	if idx > o.Cfg.NumElements {
		idx = o.Cfg.NumElements
	}
	return idx + 1
}

// buildNumericModel creates a fresh finite element model from the bridge
// topology, the support conditions and all loads. It has no side effects
// on the bridge model.
func (o *Model) buildNumericModel() (m *fem.Model, totalFy float64, err error) {
	cfg := &o.Cfg
	m = fem.NewModel()

	// mesh
	xx := utl.LinSpace(0, cfg.Length, cfg.NumElements+1)
	for _, x := range xx {
		m.AddNode(x, 0)
	}
	for i := 0; i < cfg.NumElements; i++ {
		if _, err = m.AddElement(i+1, i+2, o.E, o.Sec.A, o.Sec.I22); err != nil {
			return nil, 0, err
		}
	}

	// supports
	for p, node := range o.PierNodes {
		dx, dy, rz := o.Supports[p].Mask()
		if err = m.AddSupport(node, dx, dy, rz); err != nil {
			return nil, 0, err
		}
	}

	// self-weight goes on first
	selfWeight := -o.Density * Gravity * o.Sec.A
	for i := 1; i <= cfg.NumElements; i++ {
		if err = m.AddDistributedLoad(i, selfWeight); err != nil {
			return nil, 0, err
		}
	}
	totalFy = selfWeight * cfg.Length

	// registered loads
	elen := cfg.Length / float64(cfg.NumElements)
	for _, dl := range o.dloads {
		for i := 0; i < cfg.NumElements; i++ {
			centre := (float64(i) + 0.5) / float64(cfg.NumElements)
			if centre >= dl.start && centre <= dl.end {
				if err = m.AddDistributedLoad(i+1, dl.wy); err != nil {
					return nil, 0, err
				}
				totalFy += dl.wy * elen
			}
		}
	}
	for _, pl := range o.ploads {
		if err = m.AddPointLoad(o.snapNode(pl.ratio), pl.fx, pl.fy, pl.mz); err != nil {
			return nil, 0, err
		}
		totalFy += pl.fy
	}

	// bearing height differentials impose support displacements: a pier
	// whose bearings sit higher than the lowest one lifts the deck
	if len(o.Bearings) > 0 {
		minH := math.Inf(1)
		for _, b := range o.Bearings {
			minH = math.Min(minH, b.Height)
		}
		for p, node := range o.PierNodes {
			sum, n := 0.0, 0
			for _, b := range o.Bearings {
				if b.Key.Pier == p+1 {
					sum += b.Height
					n++
				}
			}
			if n == 0 {
				continue
			}
			delta := sum/float64(n) - minH
			_, dy, _ := o.Supports[p].Mask()
			if dy && delta > 1e-12 {
				if err = m.SetPrescribed(node, 1, delta); err != nil {
					return nil, 0, err
				}
			}
		}
	}
	return
}
