// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bridge implements the structural model of a continuous-girder
// bridge: deck topology generation, pier supports, bearings, load
// registration and the orchestration of the finite element analysis.
package bridge

import (
	"github.com/cpmech/gosl/io"

	"github.com/darcywudc/simplebridgetwincopilot/ana"
	"github.com/darcywudc/simplebridgetwincopilot/bearing"
)

// DefaultPierHeight is used when the configuration gives no pier heights
const DefaultPierHeight = 8.0

// BearingSpacing is the transverse centre-to-centre distance between
// bearings on one pier
const BearingSpacing = 2.0

// BearingParams overrides the mechanical parameters of one bearing
type BearingParams struct {
	Kind     bearing.Kind
	Size     bearing.Size
	Material bearing.Material
}

// Config holds the input of one bridge model
type Config struct {
	Length      float64 // total deck length [m]
	NumElements int     // number of deck elements
	NumSpans    int     // 2 or 3
	PierStart   float64 // ratio in [0,1) of the first pier position

	Material      string  // deck material preset; empty selects E/Density below
	E             float64 // Young's modulus, used when Material is empty
	Density       float64 // mass density, used when Material is empty
	SectionHeight float64 // deck section height [m]
	SectionWidth  float64 // deck section width [m]

	DeckWidth       float64       // transverse deck width carrying the bearings [m]
	BearingsPerPier int           // 0 disables bearings
	Supports        []SupportType // one per pier; empty selects defaults
	PierHeights     []float64     // one per pier; empty selects DefaultPierHeight

	// per-bearing overrides
	BearingHeightOffsets map[bearing.Key]float64 // installation offsets [m]
	BearingParams        map[bearing.Key]BearingParams
}

// NewConfig returns a configuration with the default three-span layout
func NewConfig() Config {
	return Config{
		Length:          60,
		NumElements:     30,
		NumSpans:        3,
		PierStart:       0,
		Material:        "C30",
		SectionHeight:   1.5,
		SectionWidth:    1.0,
		DeckWidth:       12,
		BearingsPerPier: 2,
	}
}

// NumPiers returns the number of pier lines implied by the span count
func (o *Config) NumPiers() int { return o.NumSpans + 1 }

// PierRatios generates the pier positions as ratios of the deck length.
// With PierStart zero the standard layouts are used; otherwise the
// remaining deck [PierStart,1] is divided into NumSpans equal spans.
func (o *Config) PierRatios() ([]float64, error) {
	if o.NumSpans != 2 && o.NumSpans != 3 {
		return nil, ConfigurationError{[]string{io.Sf("span count must be 2 or 3, got %d", o.NumSpans)}}
	}
	if o.PierStart == 0 {
		if o.NumSpans == 2 {
			return []float64{0, 0.5, 1}, nil
		}
		return []float64{0, 0.33, 0.67, 1}, nil
	}
	avail := 1.0 - o.PierStart
	ratios := make([]float64, o.NumPiers())
	for i := 0; i < o.NumSpans; i++ {
		ratios[i] = o.PierStart + float64(i)*avail/float64(o.NumSpans)
	}
	ratios[o.NumSpans] = 1.0
	return ratios, nil
}

// resolveMaterial returns the modulus and density, either from the named
// preset or from the explicit values
func (o *Config) resolveMaterial() (E, density float64, problems []string) {
	if o.Material != "" {
		found := false
		for _, name := range ana.MaterialNames() {
			if name == o.Material {
				found = true
			}
		}
		if !found {
			problems = append(problems, io.Sf("material %q is not available", o.Material))
			return
		}
		m := ana.GetMaterial(o.Material)
		return m.E, m.Density, nil
	}
	E, density = o.E, o.Density
	if E <= 0 {
		problems = append(problems, io.Sf("Young's modulus must be positive, got %g", E))
	}
	if density <= 0 {
		problems = append(problems, io.Sf("density must be positive, got %g", density))
	}
	return
}

// Validate checks the configuration and returns all problems found as one
// ConfigurationError, together with non-fatal warnings
func (o *Config) Validate() (warnings []string, err error) {
	var problems []string

	if o.Length <= 0 {
		problems = append(problems, io.Sf("deck length must be positive, got %g", o.Length))
	}
	if o.NumElements < 2 {
		problems = append(problems, io.Sf("at least 2 deck elements are required, got %d", o.NumElements))
	}
	if o.NumSpans != 2 && o.NumSpans != 3 {
		problems = append(problems, io.Sf("span count must be 2 or 3, got %d", o.NumSpans))
	}
	if o.PierStart < 0 || o.PierStart >= 1 {
		problems = append(problems, io.Sf("pier start ratio must be in [0,1), got %g", o.PierStart))
	}
	if o.SectionHeight <= 0 || o.SectionWidth <= 0 {
		problems = append(problems, io.Sf("section dimensions must be positive, got b=%g h=%g", o.SectionWidth, o.SectionHeight))
	}
	if o.BearingsPerPier < 0 {
		problems = append(problems, io.Sf("bearings per pier must be non-negative, got %d", o.BearingsPerPier))
	}
	if o.BearingsPerPier > 1 && o.DeckWidth <= 0 {
		problems = append(problems, io.Sf("deck width must be positive with multiple bearings, got %g", o.DeckWidth))
	}
	_, _, mp := o.resolveMaterial()
	problems = append(problems, mp...)

	npiers := o.NumPiers()
	if len(o.Supports) > 0 && len(o.Supports) != npiers {
		problems = append(problems, io.Sf("support count %d does not match pier count %d", len(o.Supports), npiers))
	}
	if len(o.PierHeights) > 0 && len(o.PierHeights) != npiers {
		problems = append(problems, io.Sf("pier height count %d does not match pier count %d", len(o.PierHeights), npiers))
	}
	for k := range o.BearingHeightOffsets {
		if k.Pier < 1 || k.Pier > npiers || k.Bearing < 1 || k.Bearing > o.BearingsPerPier {
			problems = append(problems, io.Sf("bearing height offset key %v is out of range", k))
		}
	}
	for k := range o.BearingParams {
		if k.Pier < 1 || k.Pier > npiers || k.Bearing < 1 || k.Bearing > o.BearingsPerPier {
			problems = append(problems, io.Sf("bearing parameter key %v is out of range", k))
		}
	}

	// restraint sufficiency
	if len(o.Supports) == npiers {
		ndx, ndy, ntot := 0, 0, 0
		for _, s := range o.Supports {
			dx, dy, rz := s.Mask()
			if dx {
				ndx++
				ntot++
			}
			if dy {
				ndy++
				ntot++
			}
			if rz {
				ntot++
			}
		}
		if ndx < 1 {
			problems = append(problems, "at least one support must restrain the horizontal translation")
		}
		if ndy < 2 {
			problems = append(problems, "at least two supports must restrain the vertical translation")
		}
		if ntot > 3 {
			warnings = append(warnings, io.Sf("structure is statically indeterminate: %d constraints", ntot))
		}
	}

	if len(problems) > 0 {
		err = ConfigurationError{problems}
	}
	return
}

// defaultSupports returns the classic layout: one pinned support at the
// first pier and rollers elsewhere
func defaultSupports(npiers int) []SupportType {
	ss := make([]SupportType, npiers)
	ss[0] = SupportType{Kind: FixedPin}
	for i := 1; i < npiers; i++ {
		ss[i] = SupportType{Kind: Roller}
	}
	return ss
}
