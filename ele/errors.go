// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// GeometryError indicates invalid element geometry or section properties
type GeometryError struct {
	Msg string
}

func (e GeometryError) Error() string { return e.Msg }
