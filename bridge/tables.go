// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// NodeRow is one line of the geometry table
type NodeRow struct {
	ID int
	X  float64
}

// PierRow describes one pier line
type PierRow struct {
	Pier       int
	Ratio      float64
	X          float64
	Node       int
	Height     float64
	Support    string
	Constraint string
}

// LoadRow describes one registered load
type LoadRow struct {
	Type      string // "self-weight", "point" or "distributed"
	Position  float64
	Magnitude float64
	Detail    string
}

// DispRow is one line of the displacement table
type DispRow struct {
	Node   int
	X      float64
	Uy, Rz float64
}

// ForceRow is one line of the element force table
type ForceRow struct {
	Elem             int
	X                float64 // element centre
	Axial, Shear     float64
	MomentI, MomentJ float64
}

// CheckRow is one line of the verification table
type CheckRow struct {
	Name   string
	Status string // "pass", "fail" or "warn"
	Detail string
}

// ReactionSummary aggregates the pier reactions of one run
type ReactionSummary struct {
	TotalFy float64
	TotalFx float64
	MaxFy   float64
	Count   int
}

// GeometryTable returns the node and pier tables
func (o *Model) GeometryTable() (nodes []NodeRow, piers []PierRow) {
	for i, x := range o.NodeCoords() {
		nodes = append(nodes, NodeRow{i + 1, x})
	}
	for p := range o.PierNodes {
		piers = append(piers, PierRow{
			Pier:       p + 1,
			Ratio:      o.PierRatios[p],
			X:          o.PierX[p],
			Node:       o.PierNodes[p],
			Height:     o.PierHeights[p],
			Support:    o.Supports[p].Name(),
			Constraint: o.Supports[p].Description(),
		})
	}
	return
}

// LoadTable returns all loads acting on the deck, self-weight included
func (o *Model) LoadTable() (rows []LoadRow) {
	w := -o.Density * Gravity * o.Sec.A
	rows = append(rows, LoadRow{
		Type:      "self-weight",
		Magnitude: w,
		Detail:    io.Sf("%.1f kg/m3 over the whole deck", o.Density),
	})
	for _, dl := range o.dloads {
		rows = append(rows, LoadRow{
			Type:      "distributed",
			Position:  dl.start,
			Magnitude: dl.wy,
			Detail:    io.Sf("from ratio %.3f to %.3f", dl.start, dl.end),
		})
	}
	for _, pl := range o.ploads {
		rows = append(rows, LoadRow{
			Type:      "point",
			Position:  pl.ratio,
			Magnitude: pl.fy,
			Detail:    io.Sf("fx=%.1f mz=%.1f", pl.fx, pl.mz),
		})
	}
	return
}

// ResultTables returns the displacement and force tables of one run
func (o *Model) ResultTables(res *Results) (disps []DispRow, forces []ForceRow) {
	if !res.Ok {
		return
	}
	for i, x := range res.NodeX {
		disps = append(disps, DispRow{i + 1, x, res.Displacements[i], res.Rotations[i]})
	}
	centres := o.ElementCenters()
	for i := range res.Moments {
		forces = append(forces, ForceRow{
			Elem:    i + 1,
			X:       centres[i],
			Axial:   res.Axials[i],
			Shear:   res.Shears[i],
			MomentI: res.MomentsI[i],
			MomentJ: res.MomentsJ[i],
		})
	}
	return
}

// VerificationTable runs the sanity checks on one set of results
func (o *Model) VerificationTable(res *Results) (checks []CheckRow) {

	if !res.Ok {
		checks = append(checks, CheckRow{"analysis", "fail", io.Sf("%v", res.Err)})
		return
	}
	checks = append(checks, CheckRow{"analysis", "pass", "linear solve completed"})

	if res.Degenerate {
		checks = append(checks, CheckRow{"conditioning", "warn", io.Sf("degenerate system: cond=%.3e", res.Cond)})
	} else {
		checks = append(checks, CheckRow{"conditioning", "pass", io.Sf("cond=%.3e", res.Cond)})
	}

	// vertical equilibrium: reactions versus applied loads
	sumFy := 0.0
	for _, r := range res.Reactions {
		sumFy += r.Fy
	}
	applied := math.Abs(res.TotalAppliedFy)
	diff := math.Abs(sumFy - applied)
	status := "pass"
	if diff > 1e-6*math.Max(applied, 1.0) {
		status = "fail"
	}
	checks = append(checks, CheckRow{"equilibrium", status,
		io.Sf("sum(Fy)=%.3f applied=%.3f diff=%.3e", sumFy, applied, diff)})

	// deflection limit span/250
	span := 0.0
	for p := 1; p < len(o.PierX); p++ {
		span = math.Max(span, o.PierX[p]-o.PierX[p-1])
	}
	limit := span / 250.0
	status = "pass"
	if res.MaxDisplacement > limit {
		status = "fail"
	}
	checks = append(checks, CheckRow{"deflection", status,
		io.Sf("max=%.6f limit=%.6f (span %.1f m / 250)", res.MaxDisplacement, limit, span)})
	return
}

// GetReactionSummary aggregates the pier reactions
func (o *Model) GetReactionSummary(res *Results) (sum ReactionSummary) {
	for _, r := range res.Reactions {
		sum.TotalFy += r.Fy
		sum.TotalFx += r.Fx
		sum.MaxFy = math.Max(sum.MaxFy, r.Fy)
		sum.Count++
	}
	return
}
