// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"math"

	"github.com/darcywudc/simplebridgetwincopilot/bearing"
	"github.com/darcywudc/simplebridgetwincopilot/fem"
)

// PierReaction holds the support reaction at one pier. Fy is reported as
// a magnitude; Fx and Mz keep their signs.
type PierReaction struct {
	Pier       int // 1-based pier index
	Node       int // deck node id
	X          float64
	Fx, Fy, Mz float64
	Support    SupportType
}

// Results holds the outcome of one analysis run. When Ok is false the
// arrays are empty and the scalars zero; Err carries the cause.
type Results struct {
	Ok  bool
	Err error

	// per node
	NodeX         []float64
	Displacements []float64 // vertical displacements
	Rotations     []float64

	// per element
	Axials   []float64
	Shears   []float64
	MomentsI []float64 // moment at start node
	MomentsJ []float64 // moment at end node
	Moments  []float64 // average of the end moments

	Reactions []PierReaction

	// scalars
	MaxDisplacement float64 // largest magnitude
	MaxMoment       float64 // largest magnitude over both ends
	MaxShear        float64 // largest magnitude
	TotalAppliedFy  float64 // signed sum of all vertical loads

	// solver diagnostics
	Degenerate bool
	Cond       float64
}

// RunAnalysis builds a fresh numeric model, solves it and extracts the
// results. Failures never panic: they are reported inside the returned
// results.
func (o *Model) RunAnalysis() *Results {
	res := &Results{}

	m, totalFy, err := o.buildNumericModel()
	if err != nil {
		res.Err = AnalysisRuntimeError{err}
		return res
	}
	sol, err := m.Solve()
	if err != nil {
		res.Err = AnalysisRuntimeError{err}
		return res
	}

	res.Ok = true
	res.TotalAppliedFy = totalFy
	res.Degenerate = sol.Degenerate
	res.Cond = sol.Cond

	// nodal results
	for _, n := range m.Nodes {
		_, uy, rz := m.NodeDisp(sol, n.ID)
		res.NodeX = append(res.NodeX, n.X)
		res.Displacements = append(res.Displacements, uy)
		res.Rotations = append(res.Rotations, rz)
		res.MaxDisplacement = math.Max(res.MaxDisplacement, math.Abs(uy))
	}

	// element forces
	for _, f := range m.ElementForces(sol) {
		res.Axials = append(res.Axials, f.Axial)
		res.Shears = append(res.Shears, f.Shear)
		res.MomentsI = append(res.MomentsI, f.MomentA)
		res.MomentsJ = append(res.MomentsJ, f.MomentB)
		res.Moments = append(res.Moments, f.MomentAvg)
		res.MaxMoment = math.Max(res.MaxMoment, math.Max(math.Abs(f.MomentA), math.Abs(f.MomentB)))
		res.MaxShear = math.Max(res.MaxShear, math.Abs(f.Shear))
	}

	// pier reactions, vertical components normalised to magnitudes
	byNode := make(map[int]fem.Reaction)
	for _, r := range m.Reactions(sol) {
		byNode[r.Node] = r
	}
	for p, node := range o.PierNodes {
		r := byNode[node]
		res.Reactions = append(res.Reactions, PierReaction{
			Pier:    p + 1,
			Node:    node,
			X:       o.PierX[p],
			Fx:      r.Fx,
			Fy:      math.Abs(r.Fy),
			Mz:      r.Mz,
			Support: o.Supports[p],
		})
	}
	return res
}

// DistributeBearingLoads allocates the pier reactions of one analysis
// onto the individual bearings
func (o *Model) DistributeBearingLoads(res *Results) ([]bearing.Record, bearing.Summary) {
	loads := make(map[int]bearing.PierLoad)
	for _, r := range res.Reactions {
		loads[r.Pier] = bearing.PierLoad{Fx: r.Fx, Fy: r.Fy, Mz: r.Mz}
	}
	return bearing.Distribute(o.Bearings, loads, o.E*o.Sec.I22, o.Cfg.DeckWidth)
}

// NodeCoords returns the undeformed deck node coordinates
func (o *Model) NodeCoords() (xx []float64) {
	spacing := o.Cfg.Length / float64(o.Cfg.NumElements)
	for i := 0; i <= o.Cfg.NumElements; i++ {
		xx = append(xx, float64(i)*spacing)
	}
	return
}

// DeformedCoords returns the deck shape with displacements magnified by
// the given scale factor
func (o *Model) DeformedCoords(res *Results, scale float64) (xx, yy []float64) {
	for i, x := range res.NodeX {
		xx = append(xx, x)
		yy = append(yy, scale*res.Displacements[i])
	}
	return
}

// ElementCenters returns the midpoints of the deck elements
func (o *Model) ElementCenters() (xx []float64) {
	spacing := o.Cfg.Length / float64(o.Cfg.NumElements)
	for i := 0; i < o.Cfg.NumElements; i++ {
		xx = append(xx, (float64(i)+0.5)*spacing)
	}
	return
}

// BearingsOfPier returns the bearings of one pier (1-based)
func (o *Model) BearingsOfPier(pier int) (bb []*bearing.Bearing) {
	for _, b := range o.Bearings {
		if b.Key.Pier == pier {
			bb = append(bb, b)
		}
	}
	return
}
