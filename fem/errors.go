// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// ReferenceError indicates that a load or boundary condition points at a
// node, element or dof that does not exist in the model
type ReferenceError struct {
	Msg string
}

func (e ReferenceError) Error() string { return e.Msg }

// SolveError indicates that the global system could not be factorised
type SolveError struct {
	Msg string
}

func (e SolveError) Error() string { return e.Msg }
