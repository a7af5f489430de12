// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/darcywudc/simplebridgetwincopilot/bearing"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. read simulation file")

	sim, err := ReadSim("data/bridge.json")
	if err != nil {
		tst.Errorf("ReadSim failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "length", 1e-17, sim.Length, 60)
	chk.IntAssert(sim.Nelems, 30)
	chk.IntAssert(sim.Nspans, 3)
	chk.String(tst, sim.Material, "C30")
	chk.IntAssert(len(sim.Supports), 4)
	chk.IntAssert(len(sim.Loads), 3)

	cfg, err := sim.Config()
	if err != nil {
		tst.Errorf("Config failed: %v\n", err)
		return
	}
	chk.IntAssert(len(cfg.Supports), 4)
	chk.Scalar(tst, "offset 2-1", 1e-17, cfg.BearingHeightOffsets[bearing.Key{Pier: 2, Bearing: 1}], 0.003)
	params := cfg.BearingParams[bearing.Key{Pier: 1, Bearing: 1}]
	chk.String(tst, string(params.Size), "large")
	chk.String(tst, string(params.Material), "rubber")
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. build and run model from file")

	sim, err := ReadSim("data/bridge.json")
	if err != nil {
		tst.Errorf("ReadSim failed: %v\n", err)
		return
	}
	m, err := sim.NewModel()
	if err != nil {
		tst.Errorf("NewModel failed: %v\n", err)
		return
	}
	chk.IntAssert(len(m.Bearings), 8)

	res := m.RunAnalysis()
	if !res.Ok {
		tst.Errorf("analysis failed: %v\n", res.Err)
		return
	}
	chk.IntAssert(len(res.Reactions), 4)
	io.Pforan("max |uy| = %v\n", res.MaxDisplacement)
	if res.MaxDisplacement <= 0 {
		tst.Errorf("deck must deflect\n")
	}
}

func Test_read03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read03. invalid input files")

	if _, err := ReadSim("data/nonexistent.json"); err == nil {
		tst.Errorf("missing file must fail\n")
	}

	sim := &Simulation{
		Length: 60, Nelems: 30, Nspans: 3, Material: "C30",
		SecHeight: 1.5, SecWidth: 1, DeckWidth: 12,
		Supports: []string{"fixed_pin", "roller", "roller", "hovering"},
	}
	if _, err := sim.Config(); err == nil {
		tst.Errorf("unknown support name must fail\n")
	}

	sim.Supports = nil
	sim.BearingOffsets = map[string]float64{"first-left": 0.001}
	if _, err := sim.Config(); err == nil {
		tst.Errorf("malformed bearing key must fail\n")
	}
}
