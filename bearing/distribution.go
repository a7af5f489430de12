// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bearing

import (
	"math"
	"sort"
)

// PierLoad holds the reaction of one pier to be distributed onto its
// bearings
type PierLoad struct {
	Fx, Fy, Mz float64
}

// Record holds the load allocated to one bearing
type Record struct {
	Key        Key
	Fx         float64 // horizontal share
	Fy         float64 // vertical share: base + additional
	Base       float64 // stiffness-proportional allocation
	Additional float64 // height-differential correction
	HeightDiff float64 // bearing height minus pier average
	Ratio      float64 // vertical stiffness ratio within the pier
	Stiff      Stiffness
}

// Summary aggregates the distribution over all bearings
type Summary struct {
	TotalFy         float64
	TotalFx         float64
	MaxFy           float64
	MinFy           float64
	MaxHeightEffect float64 // largest |additional| over all bearings
	Affected        int     // bearings with |additional| > 1e-3
	Count           int
}

// heightEps is the height differential below which bearings on a pier are
// treated as level
const heightEps = 1e-6

// Distribute allocates the pier reactions onto the individual bearings.
// The vertical share of each bearing is proportional to its vertical
// stiffness, then corrected for its height relative to the pier average:
// a stiffer-path correction 12*EI*dh/L^3 bounded by half of the base
// allocation. Piers without bearings are skipped. deckEI is E*I of the
// deck and width the transverse bearing span (ignored on single-bearing
// piers).
func Distribute(bearings []*Bearing, loads map[int]PierLoad, deckEI, width float64) (records []Record, sum Summary) {

	// group by pier, preserving input order
	groups := make(map[int][]*Bearing)
	for _, b := range bearings {
		groups[b.Key.Pier] = append(groups[b.Key.Pier], b)
	}
	var piers []int
	for pier := range groups {
		if _, ok := loads[pier]; ok {
			piers = append(piers, pier)
		}
	}
	sort.Ints(piers)

	first := true
	for _, pier := range piers {
		group := groups[pier]
		load := loads[pier]
		n := len(group)

		// pier totals
		sumKv, sumKh, avgH := 0.0, 0.0, 0.0
		stiffs := make([]Stiffness, n)
		for i, b := range group {
			stiffs[i] = b.Stiffness()
			sumKv += stiffs[i].Kv
			sumKh += stiffs[i].Kh
			avgH += b.Height
		}
		avgH /= float64(n)
		span := width
		if n == 1 {
			span = 1.0
		}

		for i, b := range group {
			ratio := 1.0 / float64(n)
			if sumKv > 0 {
				ratio = stiffs[i].Kv / sumKv
			}
			hratio := 1.0 / float64(n)
			if sumKh > 0 {
				hratio = stiffs[i].Kh / sumKh
			}
			base := load.Fy * ratio
			dh := b.Height - avgH
			add := 0.0
			if math.Abs(dh) > heightEps {
				add = 12.0 * deckEI * dh / (span * span * span)
				if bound := 0.5 * math.Abs(base); math.Abs(add) > bound {
					add = math.Copysign(bound, dh)
				}
			}
			r := Record{
				Key:        b.Key,
				Fx:         load.Fx * hratio,
				Fy:         base + add,
				Base:       base,
				Additional: add,
				HeightDiff: dh,
				Ratio:      ratio,
				Stiff:      stiffs[i],
			}
			records = append(records, r)

			sum.TotalFy += r.Fy
			sum.TotalFx += r.Fx
			sum.Count++
			if first || r.Fy > sum.MaxFy {
				sum.MaxFy = r.Fy
			}
			if first || r.Fy < sum.MinFy {
				sum.MinFy = r.Fy
			}
			first = false
			if a := math.Abs(r.Additional); a > sum.MaxHeightEffect {
				sum.MaxHeightEffect = a
			}
			if math.Abs(r.Additional) > 1e-3 {
				sum.Affected++
			}
		}
	}
	return
}
