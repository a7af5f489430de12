// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/darcywudc/simplebridgetwincopilot/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "inp/data/bridge", ".json", true)
	verbose := io.ArgToBool(1, true)
	withBearings := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nSimplebridge -- Continuous Beam Bridge Analysis\n")
		io.Pf("Copyright 2026 The Simplebridge Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"distribute bearing loads", "withBearings", withBearings,
		))
	}

	// read simulation file and build the bridge
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation file:\n%v", err)
	}
	model, err := sim.NewModel()
	if err != nil {
		chk.Panic("cannot build bridge model:\n%v", err)
	}
	for _, w := range model.Warnings {
		io.Pforan("warning: %v\n", w)
	}

	// run analysis
	io.Pf("\n> running analysis\n")
	res := model.RunAnalysis()
	if !res.Ok {
		chk.Panic("analysis failed:\n%v", res.Err)
	}
	if res.Degenerate {
		io.Pforan("warning: degenerate system: cond = %g\n", res.Cond)
	}

	// geometry
	_, piers := model.GeometryTable()
	io.Pf("\n> piers\n")
	for _, p := range piers {
		io.Pf("  pier %d at x=%6.2f m (node %2d, h=%.2f m)  %s\n", p.Pier, p.X, p.Node, p.Height, p.Constraint)
	}

	// reactions
	io.Pf("\n> pier reactions\n")
	for _, r := range res.Reactions {
		io.Pf("  pier %d (x=%6.2f):  Fx=%12.1f  Fy=%12.1f  Mz=%12.1f\n", r.Pier, r.X, r.Fx, r.Fy, r.Mz)
	}
	sum := model.GetReactionSummary(res)
	io.Pf("  total Fy = %.1f N over %d supports\n", sum.TotalFy, sum.Count)

	// maxima
	io.Pf("\n> results\n")
	io.Pf("  max |uy|     = %g m\n", res.MaxDisplacement)
	io.Pf("  max |moment| = %g Nm\n", res.MaxMoment)
	io.Pf("  max |shear|  = %g N\n", res.MaxShear)

	// verification
	io.Pf("\n> verification\n")
	for _, c := range model.VerificationTable(res) {
		io.Pf("  %-14s %-4s %s\n", c.Name, c.Status, c.Detail)
	}

	// bearing load distribution
	if withBearings && len(model.Bearings) > 0 {
		io.Pf("\n> bearing loads\n")
		records, bsum := model.DistributeBearingLoads(res)
		for _, r := range records {
			io.Pf("  bearing %-5s  Fy=%12.1f (base=%12.1f add=%10.1f)  kv=%g\n",
				r.Key, r.Fy, r.Base, r.Additional, r.Stiff.Kv)
		}
		io.Pf("  total Fy = %.1f N, height effects on %d of %d bearings\n",
			bsum.TotalFy, bsum.Affected, bsum.Count)
	}
}
