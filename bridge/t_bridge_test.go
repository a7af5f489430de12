// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/darcywudc/simplebridgetwincopilot/bearing"
)

func Test_bridge01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bridge01. pier generation and node snapping")

	// three spans: standard layout snapped onto 30 elements of 2 m
	m, err := NewModel(NewConfig())
	if err != nil {
		tst.Errorf("NewModel failed: %v\n", err)
		return
	}
	chk.Vector(tst, "ratios", 1e-15, m.PierRatios, []float64{0, 0.33, 0.67, 1})
	chk.Ints(tst, "nodes", m.PierNodes, []int{1, 11, 21, 31})
	chk.Vector(tst, "x", 1e-15, m.PierX, []float64{0, 20, 40, 60})

	// two spans
	cfg := NewConfig()
	cfg.NumSpans = 2
	m, err = NewModel(cfg)
	if err != nil {
		tst.Errorf("NewModel failed: %v\n", err)
		return
	}
	chk.Vector(tst, "ratios", 1e-15, m.PierRatios, []float64{0, 0.5, 1})
	chk.Ints(tst, "nodes", m.PierNodes, []int{1, 16, 31})

	// custom start: remaining deck divided into equal spans
	cfg = NewConfig()
	cfg.NumSpans = 2
	cfg.PierStart = 0.25
	m, err = NewModel(cfg)
	if err != nil {
		tst.Errorf("NewModel failed: %v\n", err)
		return
	}
	chk.Vector(tst, "ratios", 1e-15, m.PierRatios, []float64{0.25, 0.625, 1})

	// unsupported span counts are rejected
	cfg = NewConfig()
	cfg.NumSpans = 4
	if _, err = NewModel(cfg); err == nil {
		tst.Errorf("span count 4 must fail\n")
	}
}

func Test_bridge02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bridge02. configuration validation")

	// support count mismatch
	cfg := NewConfig()
	cfg.Supports = []SupportType{{Kind: FixedPin}, {Kind: Roller}}
	if _, err := NewModel(cfg); err == nil {
		tst.Errorf("support count mismatch must fail\n")
	}

	// missing horizontal restraint
	cfg = NewConfig()
	cfg.Supports = []SupportType{{Kind: Roller}, {Kind: Roller}, {Kind: Roller}, {Kind: Roller}}
	_, err := NewModel(cfg)
	if err == nil {
		tst.Errorf("missing dx restraint must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
	cerr, ok := err.(ConfigurationError)
	if !ok {
		tst.Errorf("error must be a ConfigurationError, got %T\n", err)
		return
	}
	chk.IntAssert(len(cerr.Problems), 1)

	// insufficient vertical restraint collects a second problem
	cfg.Supports = []SupportType{
		{Kind: Custom, Dx: true}, {Kind: Custom}, {Kind: Custom}, {Kind: Custom},
	}
	_, err = NewModel(cfg)
	if err == nil {
		tst.Errorf("missing dy restraints must fail\n")
		return
	}
	cerr = err.(ConfigurationError)
	chk.IntAssert(len(cerr.Problems), 1)

	// the default continuous layout is indeterminate: warn, not fail
	cfg = NewConfig()
	cfg.Supports = defaultSupports(4)
	m, err := NewModel(cfg)
	if err != nil {
		tst.Errorf("NewModel failed: %v\n", err)
		return
	}
	if len(m.Warnings) == 0 {
		tst.Errorf("over-constrained layout must produce a warning\n")
	}
	io.Pforan("warnings = %v\n", m.Warnings)
}

func Test_bridge03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bridge03. three-span analysis and equilibrium")

	m, err := NewModel(NewConfig())
	if err != nil {
		tst.Errorf("NewModel failed: %v\n", err)
		return
	}
	m.AddPointLoad(0.3, 0, -150e3, 0)
	m.AddPointLoad(0.7, 0, -100e3, 0)

	res := m.RunAnalysis()
	if !res.Ok {
		tst.Errorf("analysis failed: %v\n", res.Err)
		return
	}
	chk.IntAssert(len(res.Reactions), 4)
	chk.IntAssert(len(res.Displacements), 31)
	chk.IntAssert(len(res.Moments), 30)

	// vertical equilibrium: point loads plus self-weight
	selfWeight := 2400.0 * Gravity * 1.5 * 60.0
	total := 250e3 + selfWeight
	sumFy := 0.0
	for _, r := range res.Reactions {
		sumFy += r.Fy
	}
	io.Pforan("sum(Fy) = %v, applied = %v\n", sumFy, total)
	chk.Scalar(tst, "sum(Fy)", 0.5, sumFy, total)
	chk.Scalar(tst, "totalFy", 1e-6, res.TotalAppliedFy, -total)

	// the lone pinned support carries no net horizontal load
	chk.Scalar(tst, "Fx(pin)", 1e-4, res.Reactions[0].Fx, 0)

	if res.MaxDisplacement <= 0 || res.MaxMoment <= 0 {
		tst.Errorf("deck must deflect and bend under load\n")
	}

	// rerunning the same model gives identical results
	res2 := m.RunAnalysis()
	chk.Vector(tst, "repeat U", 1e-15, res2.Displacements, res.Displacements)
	chk.Vector(tst, "repeat M", 1e-9, res2.Moments, res.Moments)

	// verification table agrees
	checks := m.VerificationTable(res)
	for _, c := range checks {
		io.Pforan("%-14s %-4s %s\n", c.Name, c.Status, c.Detail)
		if c.Name == "analysis" || c.Name == "equilibrium" {
			chk.String(tst, c.Status, "pass")
		}
	}
}

func Test_bridge04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bridge04. symmetric load gives symmetric response")

	m, err := NewModel(NewConfig())
	if err != nil {
		tst.Errorf("NewModel failed: %v\n", err)
		return
	}
	m.AddPointLoad(0.5, 0, -200e3, 0)

	res := m.RunAnalysis()
	if !res.Ok {
		tst.Errorf("analysis failed: %v\n", res.Err)
		return
	}
	chk.Scalar(tst, "R1=R4", 1e-2, res.Reactions[0].Fy, res.Reactions[3].Fy)
	chk.Scalar(tst, "R2=R3", 1e-2, res.Reactions[1].Fy, res.Reactions[2].Fy)

	n := len(res.Displacements)
	for i := 0; i < n/2; i++ {
		chk.Scalar(tst, io.Sf("u[%d]=u[%d]", i, n-1-i), 1e-9, res.Displacements[i], res.Displacements[n-1-i])
	}
}

func Test_bridge05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bridge05. vehicle load")

	m, err := NewModel(NewConfig())
	if err != nil {
		tst.Errorf("NewModel failed: %v\n", err)
		return
	}

	// three axles, the last one placed before the deck start is skipped
	applied, err := m.AddVehicleLoad([]float64{-100e3, -100e3, -50e3}, 8, 0.2)
	if err != nil {
		tst.Errorf("AddVehicleLoad failed: %v\n", err)
		return
	}
	chk.IntAssert(applied, 2) // axle 3 sits at x = 12-16 = -4 m

	res := m.RunAnalysis()
	if !res.Ok {
		tst.Errorf("analysis failed: %v\n", res.Err)
		return
	}
	selfWeight := 2400.0 * Gravity * 1.5 * 60.0
	sumFy := 0.0
	for _, r := range res.Reactions {
		sumFy += r.Fy
	}
	chk.Scalar(tst, "sum(Fy)", 0.5, sumFy, 200e3+selfWeight)

	// clearing the loads leaves self-weight only
	m.ClearLoads()
	res = m.RunAnalysis()
	sumFy = 0
	for _, r := range res.Reactions {
		sumFy += r.Fy
	}
	chk.Scalar(tst, "sum(Fy) cleared", 0.5, sumFy, selfWeight)
}

func Test_bridge06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bridge06. bearing layout and height differentials")

	cfg := NewConfig()
	cfg.BearingsPerPier = 2
	m, err := NewModel(cfg)
	if err != nil {
		tst.Errorf("NewModel failed: %v\n", err)
		return
	}
	chk.IntAssert(len(m.Bearings), 8)
	bb := m.BearingsOfPier(2)
	chk.IntAssert(len(bb), 2)
	chk.Scalar(tst, "y1", 1e-15, bb[0].PierY, -1.0)
	chk.Scalar(tst, "y2", 1e-15, bb[1].PierY, 1.0)
	chk.Scalar(tst, "h", 1e-15, bb[0].Height, DefaultPierHeight)

	// level bearings: no prescribed displacements, reference run
	resLevel := m.RunAnalysis()
	if !resLevel.Ok {
		tst.Errorf("analysis failed: %v\n", resLevel.Err)
		return
	}

	// raising both bearings of pier 2 lifts the deck there and attracts load
	cfg.BearingHeightOffsets = map[bearing.Key]float64{
		{Pier: 2, Bearing: 1}: 0.005,
		{Pier: 2, Bearing: 2}: 0.005,
	}
	m2, err := NewModel(cfg)
	if err != nil {
		tst.Errorf("NewModel failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "h raised", 1e-15, m2.BearingsOfPier(2)[0].Height, DefaultPierHeight+0.005)
	resRaised := m2.RunAnalysis()
	if !resRaised.Ok {
		tst.Errorf("analysis failed: %v\n", resRaised.Err)
		return
	}
	io.Pforan("R2 level=%v raised=%v\n", resLevel.Reactions[1].Fy, resRaised.Reactions[1].Fy)
	if resRaised.Reactions[1].Fy <= resLevel.Reactions[1].Fy {
		tst.Errorf("raised pier must attract load\n")
	}
}

func Test_bridge07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bridge07. bearing load distribution from pier reactions")

	cfg := NewConfig()
	cfg.BearingsPerPier = 4
	cfg.BearingParams = map[bearing.Key]BearingParams{
		{Pier: 1, Bearing: 1}: {Kind: bearing.Elastomeric, Size: bearing.SizeLarge, Material: bearing.MatRubber},
	}
	m, err := NewModel(cfg)
	if err != nil {
		tst.Errorf("NewModel failed: %v\n", err)
		return
	}
	m.AddPointLoad(0.5, 0, -300e3, 0)

	res := m.RunAnalysis()
	if !res.Ok {
		tst.Errorf("analysis failed: %v\n", res.Err)
		return
	}
	records, sum := m.DistributeBearingLoads(res)
	chk.IntAssert(len(records), 16)
	chk.IntAssert(sum.Count, 16)

	// level bearings: no height corrections, totals are conserved
	sumReact := 0.0
	for _, r := range res.Reactions {
		sumReact += r.Fy
	}
	chk.Scalar(tst, "total conserved", 1e-6*sumReact, sum.TotalFy, sumReact)

	// the softer rubber bearing on pier 1 takes less than its neighbours
	var rubber, std bearing.Record
	for _, r := range records {
		if r.Key == (bearing.Key{Pier: 1, Bearing: 1}) {
			rubber = r
		}
		if r.Key == (bearing.Key{Pier: 1, Bearing: 2}) {
			std = r
		}
	}
	io.Pforan("rubber Fy=%v standard Fy=%v\n", rubber.Fy, std.Fy)
	if rubber.Fy >= std.Fy {
		tst.Errorf("softer bearing must carry less load\n")
	}
}

func Test_bridge08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bridge08. tables and reaction summary")

	m, err := NewModel(NewConfig())
	if err != nil {
		tst.Errorf("NewModel failed: %v\n", err)
		return
	}
	m.AddPointLoad(0.5, 0, -100e3, 0)
	m.AddDistributedLoad(0.2, 0.8, -5e3)

	nodes, piers := m.GeometryTable()
	chk.IntAssert(len(nodes), 31)
	chk.IntAssert(len(piers), 4)
	chk.String(tst, piers[0].Support, "fixed_pin")
	chk.String(tst, piers[1].Support, "roller")

	loads := m.LoadTable()
	chk.IntAssert(len(loads), 3)
	chk.String(tst, loads[0].Type, "self-weight")

	res := m.RunAnalysis()
	if !res.Ok {
		tst.Errorf("analysis failed: %v\n", res.Err)
		return
	}
	disps, forces := m.ResultTables(res)
	chk.IntAssert(len(disps), 31)
	chk.IntAssert(len(forces), 30)

	sum := m.GetReactionSummary(res)
	chk.IntAssert(sum.Count, 4)
	if sum.MaxFy <= 0 || sum.TotalFy <= 0 {
		tst.Errorf("reaction summary must report positive magnitudes\n")
	}
}
