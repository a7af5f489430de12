// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem implements a small linear finite element engine for planar
// frames made of Euler-Bernoulli beam elements. Node and element ids are
// 1-based and contiguous. Each node carries 3 degrees of freedom: ux, uy
// and rz, mapped to global equations 3*(id-1)+{0,1,2}.
package fem

import (
	"github.com/cpmech/gosl/io"

	"github.com/darcywudc/simplebridgetwincopilot/ele"
)

// Node holds node data
type Node struct {
	ID   int     // 1-based id
	X, Y float64 // coordinates
}

// Element holds element connectivity and the underlying beam
type Element struct {
	ID     int // 1-based id
	Na, Nb int // ids of connected nodes
	Beam   *ele.Beam
}

// PointLoad holds a concentrated nodal load
type PointLoad struct {
	Node       int
	Fx, Fy, Mz float64
}

// DistLoad holds a uniform transverse load over one element
type DistLoad struct {
	Elem int
	Wy   float64
}

// Model holds the mesh, boundary conditions and loads of one linear
// analysis. A Model is built once and solved; it keeps no results.
type Model struct {
	Nodes []*Node
	Elems []*Element

	ploads []PointLoad
	dloads []DistLoad

	fixed      map[int][3]bool    // node id => restrained dofs
	prescribed map[int][3]float64 // node id => prescribed displacement values
}

// NewModel returns an empty model
func NewModel() *Model {
	return &Model{
		fixed:      make(map[int][3]bool),
		prescribed: make(map[int][3]float64),
	}
}

// AddNode appends a node and returns its id
func (o *Model) AddNode(x, y float64) (id int) {
	id = len(o.Nodes) + 1
	o.Nodes = append(o.Nodes, &Node{ID: id, X: x, Y: y})
	return
}

// AddElement connects two existing nodes with a beam of the given
// properties and returns the element id
func (o *Model) AddElement(na, nb int, E, A, I float64) (id int, err error) {
	if !o.hasNode(na) || !o.hasNode(nb) {
		err = ReferenceError{io.Sf("element references unknown node: na=%d nb=%d nnodes=%d", na, nb, len(o.Nodes))}
		return
	}
	a, b := o.Nodes[na-1], o.Nodes[nb-1]
	beam, err := ele.NewBeam(a.X, a.Y, b.X, b.Y, E, A, I)
	if err != nil {
		return
	}
	id = len(o.Elems) + 1
	o.Elems = append(o.Elems, &Element{ID: id, Na: na, Nb: nb, Beam: beam})
	return
}

// AddSupport restrains the selected dofs of one node. Calling it again for
// the same node merges the restraints.
func (o *Model) AddSupport(node int, dx, dy, rz bool) error {
	if !o.hasNode(node) {
		return ReferenceError{io.Sf("support references unknown node %d", node)}
	}
	m := o.fixed[node]
	m[0] = m[0] || dx
	m[1] = m[1] || dy
	m[2] = m[2] || rz
	o.fixed[node] = m
	return nil
}

// SetPrescribed restrains one dof of a node and imposes a displacement
// value on it. dof is 0 (ux), 1 (uy) or 2 (rz).
func (o *Model) SetPrescribed(node, dof int, value float64) error {
	if !o.hasNode(node) {
		return ReferenceError{io.Sf("prescribed displacement references unknown node %d", node)}
	}
	if dof < 0 || dof > 2 {
		return ReferenceError{io.Sf("prescribed displacement references unknown dof %d", dof)}
	}
	m := o.fixed[node]
	m[dof] = true
	o.fixed[node] = m
	v := o.prescribed[node]
	v[dof] = value
	o.prescribed[node] = v
	return nil
}

// AddPointLoad registers a concentrated load at a node
func (o *Model) AddPointLoad(node int, fx, fy, mz float64) error {
	if !o.hasNode(node) {
		return ReferenceError{io.Sf("point load references unknown node %d", node)}
	}
	o.ploads = append(o.ploads, PointLoad{node, fx, fy, mz})
	return nil
}

// AddDistributedLoad registers a uniform transverse load on an element
func (o *Model) AddDistributedLoad(elem int, wy float64) error {
	if elem < 1 || elem > len(o.Elems) {
		return ReferenceError{io.Sf("distributed load references unknown element %d", elem)}
	}
	o.dloads = append(o.dloads, DistLoad{elem, wy})
	return nil
}

// Restrained reports whether a dof of a node is restrained
func (o *Model) Restrained(node, dof int) bool {
	return o.fixed[node][dof]
}

func (o *Model) hasNode(id int) bool {
	return id >= 1 && id <= len(o.Nodes)
}
