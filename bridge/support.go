// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import "github.com/cpmech/gosl/chk"

// SupportKind enumerates the support idealisations available at pier
// locations
type SupportKind int

// available support kinds
const (
	FixedPin SupportKind = iota // dx and dy restrained
	Roller                      // dy restrained
	Fixed                       // dx, dy and rz restrained
	SpringVertical              // vertical spring idealised as rigid: dy restrained
	Custom                      // restraints given explicitly
)

// SupportType selects the restraints applied at one pier. For Custom the
// three flags are used; for the named kinds they are ignored.
type SupportType struct {
	Kind       SupportKind
	Dx, Dy, Rz bool
}

// Mask returns the restrained dofs of the support
func (o SupportType) Mask() (dx, dy, rz bool) {
	switch o.Kind {
	case FixedPin:
		return true, true, false
	case Roller:
		return false, true, false
	case Fixed:
		return true, true, true
	case SpringVertical:
		return false, true, false
	case Custom:
		return o.Dx, o.Dy, o.Rz
	}
	chk.Panic("unknown support kind %d", o.Kind)
	return
}

// Name returns the configuration name of the support
func (o SupportType) Name() string {
	switch o.Kind {
	case FixedPin:
		return "fixed_pin"
	case Roller:
		return "roller"
	case Fixed:
		return "fixed"
	case SpringVertical:
		return "spring_vertical"
	}
	return "custom"
}

// Description returns a human readable account of the restraints
func (o SupportType) Description() string {
	switch o.Kind {
	case FixedPin:
		return "pinned: horizontal and vertical translations restrained"
	case Roller:
		return "roller: vertical translation restrained"
	case Fixed:
		return "fully fixed: translations and rotation restrained"
	case SpringVertical:
		return "vertical spring (idealised as rigid vertical restraint)"
	}
	s := "custom:"
	if o.Dx {
		s += " dx"
	}
	if o.Dy {
		s += " dy"
	}
	if o.Rz {
		s += " rz"
	}
	if s == "custom:" {
		s += " free"
	}
	return s
}

// SupportByName converts a configuration name into a SupportType
func SupportByName(name string) (s SupportType, err error) {
	switch name {
	case "fixed_pin":
		s.Kind = FixedPin
	case "roller":
		s.Kind = Roller
	case "fixed":
		s.Kind = Fixed
	case "spring_vertical":
		s.Kind = SpringVertical
	default:
		err = chk.Err("support type %q is not available", name)
	}
	return
}
