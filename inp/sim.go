// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the reading of bridge simulation input files
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/darcywudc/simplebridgetwincopilot/bearing"
	"github.com/darcywudc/simplebridgetwincopilot/bridge"
)

// BearingData holds the mechanical parameters of one bearing as given in
// the input file
type BearingData struct {
	Kind     string `json:"kind"`     // "elastomeric", "spherical" or "sliding"
	Size     string `json:"size"`     // "standard", "large", "medium" or "small"
	Material string `json:"material"` // "default", "rubber" or "steel"
}

// LoadData holds one load of the input file
type LoadData struct {
	Type     string  `json:"type"`     // "point", "distributed" or "vehicle"
	Position float64 `json:"position"` // position ratio (point, vehicle lead)
	Fx       float64 `json:"fx"`       // horizontal component (point)
	Fy       float64 `json:"fy"`       // vertical component (point)
	Mz       float64 `json:"mz"`       // moment component (point)
	Start    float64 `json:"start"`    // start ratio (distributed)
	End      float64 `json:"end"`      // end ratio (distributed)
	Wy       float64 `json:"wy"`       // load per unit length (distributed)

	// vehicle data
	Axles   []float64 `json:"axles"`   // axle loads, first axle leads
	Spacing float64   `json:"spacing"` // axle spacing [m]
}

// Simulation holds the complete contents of one input file
type Simulation struct {

	// essential
	Length    float64 `json:"length"`    // deck length [m]
	Nelems    int     `json:"nelems"`    // number of deck elements
	Nspans    int     `json:"nspans"`    // number of spans: 2 or 3
	PierStart float64 `json:"pierstart"` // first pier position ratio

	// deck properties
	Material  string  `json:"material"`  // material preset; empty uses E and Density
	E         float64 `json:"E"`         // Young's modulus [Pa]
	Density   float64 `json:"density"`   // mass density [kg/m3]
	SecHeight float64 `json:"secheight"` // section height [m]
	SecWidth  float64 `json:"secwidth"`  // section width [m]

	// supports and bearings
	Supports        []string                `json:"supports"`        // support names, one per pier
	PierHeights     []float64               `json:"pierheights"`     // pier heights [m], optional
	DeckWidth       float64                 `json:"deckwidth"`       // transverse width [m]
	BearingsPerPier int                     `json:"bearingsperpier"` // bearings on each pier
	BearingOffsets  map[string]float64      `json:"bearingoffsets"`  // "pier-bearing" => height offset [m]
	BearingParams   map[string]BearingData  `json:"bearingparams"`   // "pier-bearing" => parameters

	// loading
	Loads []LoadData `json:"loads"`

	// derived
	Path string `json:"-"` // directory where the file was read from
}

// ReadSim reads and parses one simulation input file
func ReadSim(filename string) (o *Simulation, err error) {
	b, err := io.ReadFile(filename)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q: %v", filename, err)
	}
	o = new(Simulation)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse simulation file %q: %v", filename, err)
	}
	o.Path = filepath.Dir(filename)
	return
}

// Config converts the file contents into a bridge configuration, parsing
// the composite bearing keys
func (o *Simulation) Config() (cfg bridge.Config, err error) {
	cfg = bridge.Config{
		Length:          o.Length,
		NumElements:     o.Nelems,
		NumSpans:        o.Nspans,
		PierStart:       o.PierStart,
		Material:        o.Material,
		E:               o.E,
		Density:         o.Density,
		SectionHeight:   o.SecHeight,
		SectionWidth:    o.SecWidth,
		DeckWidth:       o.DeckWidth,
		BearingsPerPier: o.BearingsPerPier,
		PierHeights:     o.PierHeights,
	}
	for _, name := range o.Supports {
		s, e := bridge.SupportByName(name)
		if e != nil {
			return cfg, e
		}
		cfg.Supports = append(cfg.Supports, s)
	}
	if len(o.BearingOffsets) > 0 {
		cfg.BearingHeightOffsets = make(map[bearing.Key]float64)
		for ks, v := range o.BearingOffsets {
			k, e := bearing.ParseKey(ks)
			if e != nil {
				return cfg, e
			}
			cfg.BearingHeightOffsets[k] = v
		}
	}
	if len(o.BearingParams) > 0 {
		cfg.BearingParams = make(map[bearing.Key]bridge.BearingParams)
		for ks, v := range o.BearingParams {
			k, e := bearing.ParseKey(ks)
			if e != nil {
				return cfg, e
			}
			cfg.BearingParams[k] = bridge.BearingParams{
				Kind:     bearing.Kind(v.Kind),
				Size:     bearing.Size(v.Size),
				Material: bearing.Material(v.Material),
			}
		}
	}
	return
}

// NewModel builds the bridge model and registers all loads of the file
func (o *Simulation) NewModel() (m *bridge.Model, err error) {
	cfg, err := o.Config()
	if err != nil {
		return
	}
	m, err = bridge.NewModel(cfg)
	if err != nil {
		return
	}
	for _, l := range o.Loads {
		switch l.Type {
		case "point":
			err = m.AddPointLoad(l.Position, l.Fx, l.Fy, l.Mz)
		case "distributed":
			err = m.AddDistributedLoad(l.Start, l.End, l.Wy)
		case "vehicle":
			_, err = m.AddVehicleLoad(l.Axles, l.Spacing, l.Position)
		default:
			err = chk.Err("load type %q is not available", l.Type)
		}
		if err != nil {
			return nil, err
		}
	}
	return
}
