// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"
)

// CondTol is the condition number above which the reduced system is
// reported as degenerate even when the factorisation succeeds
var CondTol = 1e12

// Solution holds the results of one linear solve
type Solution struct {
	U []float64 // global displacement vector (3 per node)
	R []float64 // residual K*U - F; reactions at restrained dofs

	// degeneracy diagnostics of the reduced system
	Degenerate bool    // the system was rank deficient or ill conditioned
	Nfree      int     // number of free equations
	Rank       int     // numerical rank of the reduced matrix
	Cond       float64 // 2-norm condition number (+Inf when singular)
}

// ElemForce holds the recovered internal forces of one element
type ElemForce struct {
	Elem      int     // element id
	Axial     float64 // axial force at start node
	Shear     float64 // shear force at start node
	MomentA   float64 // bending moment at start node
	MomentB   float64 // bending moment at end node
	MomentAvg float64 // average of the end moments
}

// Reaction holds the support reaction of one restrained node
type Reaction struct {
	Node       int
	Fx, Fy, Mz float64
}

// Solve assembles the global system, applies the boundary conditions and
// solves for the nodal displacements. Rank-deficient reduced systems are
// solved with a pseudo-inverse and flagged in the solution instead of
// aborting the analysis.
func (o *Model) Solve() (sol *Solution, err error) {

	// assemble global stiffness and load vector
	ndof := 3 * len(o.Nodes)
	kg := la.MatAlloc(ndof, ndof)
	fg := make([]float64, ndof)
	dofs := make([]int, 6)
	for _, e := range o.Elems {
		o.elemDofs(e, dofs)
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				kg[dofs[i]][dofs[j]] += e.Beam.K[i][j]
			}
		}
	}
	for _, dl := range o.dloads {
		e := o.Elems[dl.Elem-1]
		fe := e.Beam.EquivNodalLoads(dl.Wy)
		o.elemDofs(e, dofs)
		for i := 0; i < 6; i++ {
			fg[dofs[i]] += fe[i]
		}
	}
	for _, pl := range o.ploads {
		eq := 3 * (pl.Node - 1)
		fg[eq] += pl.Fx
		fg[eq+1] += pl.Fy
		fg[eq+2] += pl.Mz
	}

	// split free and prescribed equations
	up := make([]float64, ndof) // prescribed values (zero at free dofs)
	restrained := make([]bool, ndof)
	for node, m := range o.fixed {
		v := o.prescribed[node]
		for d := 0; d < 3; d++ {
			if m[d] {
				eq := 3*(node-1) + d
				restrained[eq] = true
				up[eq] = v[d]
			}
		}
	}
	var free []int
	for eq := 0; eq < ndof; eq++ {
		if !restrained[eq] {
			free = append(free, eq)
		}
	}
	nf := len(free)

	// reduced system: Kr * uf = Fr - K_fp * up
	kr := make([]float64, nf*nf)
	br := make([]float64, nf)
	for i, I := range free {
		br[i] = fg[I]
		for j, J := range free {
			kr[i*nf+j] = kg[I][J]
		}
		for eq := 0; eq < ndof; eq++ {
			if restrained[eq] && up[eq] != 0 {
				br[i] -= kg[I][eq] * up[eq]
			}
		}
	}

	// solve
	sol = &Solution{U: make([]float64, ndof), Nfree: nf}
	copy(sol.U, up)
	if nf > 0 {
		uf := make([]float64, nf)
		err = o.solveReduced(sol, nf, kr, br, uf)
		if err != nil {
			return nil, err
		}
		for i, I := range free {
			sol.U[I] = uf[i]
		}
	}

	// residual: reactions at restrained dofs
	sol.R = make([]float64, ndof)
	la.MatVecMul(sol.R, 1, kg, sol.U) // R := 1 * Kg * U
	for eq := 0; eq < ndof; eq++ {
		sol.R[eq] -= fg[eq]
	}
	return
}

// solveReduced solves the reduced system with an SVD so that singular and
// near-singular matrices fall back to the minimum-norm solution while the
// rank and condition number are recorded
func (o *Model) solveReduced(sol *Solution, nf int, kr, br, uf []float64) error {
	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(nf, nf, kr), mat.SVDThin); !ok {
		return SolveError{"SVD factorisation of the reduced system failed"}
	}
	vals := svd.Values(nil)
	tol := float64(nf) * vals[0] * 2.220446049250313e-16
	rank := 0
	for _, s := range vals {
		if s > tol {
			rank++
		}
	}
	sol.Rank = rank
	if smin := vals[nf-1]; smin > 0 {
		sol.Cond = vals[0] / smin
	} else {
		sol.Cond = math.Inf(1)
	}
	sol.Degenerate = rank < nf || sol.Cond > CondTol

	// uf = V * diag(1/s) * trans(U) * br, truncated at the rank
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	y := make([]float64, nf)
	for j := 0; j < rank; j++ {
		sum := 0.0
		for i := 0; i < nf; i++ {
			sum += u.At(i, j) * br[i]
		}
		y[j] = sum / vals[j]
	}
	for i := 0; i < nf; i++ {
		sum := 0.0
		for j := 0; j < rank; j++ {
			sum += v.At(i, j) * y[j]
		}
		uf[i] = sum
	}
	return nil
}

// ElementForces recovers the internal forces of all elements from the
// displacements in sol
func (o *Model) ElementForces(sol *Solution) (forces []ElemForce) {
	ue := make([]float64, 6)
	dofs := make([]int, 6)
	forces = make([]ElemForce, len(o.Elems))
	for k, e := range o.Elems {
		o.elemDofs(e, dofs)
		for i := 0; i < 6; i++ {
			ue[i] = sol.U[dofs[i]]
		}
		axial, shear, ma, mb := e.Beam.EndForces(ue)
		forces[k] = ElemForce{
			Elem:      e.ID,
			Axial:     axial,
			Shear:     shear,
			MomentA:   ma,
			MomentB:   mb,
			MomentAvg: (ma + mb) / 2.0,
		}
	}
	return
}

// Reactions extracts the support reactions at all restrained nodes,
// ordered by node id
func (o *Model) Reactions(sol *Solution) (reactions []Reaction) {
	var nodes []int
	for node := range o.fixed {
		nodes = append(nodes, node)
	}
	sort.Ints(nodes)
	for _, node := range nodes {
		eq := 3 * (node - 1)
		reactions = append(reactions, Reaction{
			Node: node,
			Fx:   sol.R[eq],
			Fy:   sol.R[eq+1],
			Mz:   sol.R[eq+2],
		})
	}
	return
}

// NodeDisp returns the (ux, uy, rz) displacements of one node
func (o *Model) NodeDisp(sol *Solution, node int) (ux, uy, rz float64) {
	eq := 3 * (node - 1)
	return sol.U[eq], sol.U[eq+1], sol.U[eq+2]
}

func (o *Model) elemDofs(e *Element, dofs []int) {
	a := 3 * (e.Na - 1)
	b := 3 * (e.Nb - 1)
	dofs[0], dofs[1], dofs[2] = a, a+1, a+2
	dofs[3], dofs[4], dofs[5] = b, b+1, b+2
}
