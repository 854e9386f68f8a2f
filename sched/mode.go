// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sched implements the time-step scheduler of spec.md C5: the
// half-step leapfrog sequence and its nine reduced-mode variants,
// mirroring how fem/fem.go's Run drives a fixed solve sequence over a
// set of active elements.
package sched

import "github.com/cpmech/gofdtd/field"

// Mode names the set of active field components and grid axes for one
// scheduler variant (spec.md §4.5). A 3D mode keeps all six components
// and all three axes; the TE/TM_a modes drop the three components that
// vanish by symmetry around axis a and that axis itself (the problem is
// invariant along it); the TEM_a modes keep only the one E/H pair whose
// shared curl term runs along a, a 1D propagation problem.
type Mode struct {
	Name       string
	Components []field.Component
	ActiveAxes []field.Axis
}

var (
	Mode3D = Mode{Name: "3D", Components: field.All[:], ActiveAxes: []field.Axis{field.X, field.Y, field.Z}}

	TEx = Mode{Name: "TEx", Components: []field.Component{field.Hx, field.Ey, field.Ez}, ActiveAxes: []field.Axis{field.Y, field.Z}}
	TEy = Mode{Name: "TEy", Components: []field.Component{field.Hy, field.Ez, field.Ex}, ActiveAxes: []field.Axis{field.Z, field.X}}
	TEz = Mode{Name: "TEz", Components: []field.Component{field.Hz, field.Ex, field.Ey}, ActiveAxes: []field.Axis{field.X, field.Y}}

	TMx = Mode{Name: "TMx", Components: []field.Component{field.Ex, field.Hy, field.Hz}, ActiveAxes: []field.Axis{field.Y, field.Z}}
	TMy = Mode{Name: "TMy", Components: []field.Component{field.Ey, field.Hz, field.Hx}, ActiveAxes: []field.Axis{field.Z, field.X}}
	TMz = Mode{Name: "TMz", Components: []field.Component{field.Ez, field.Hx, field.Hy}, ActiveAxes: []field.Axis{field.X, field.Y}}

	TEMx = Mode{Name: "TEMx", Components: []field.Component{field.Ey, field.Hz}, ActiveAxes: []field.Axis{field.X}}
	TEMy = Mode{Name: "TEMy", Components: []field.Component{field.Ez, field.Hx}, ActiveAxes: []field.Axis{field.Y}}
	TEMz = Mode{Name: "TEMz", Components: []field.Component{field.Ex, field.Hy}, ActiveAxes: []field.Axis{field.Z}}
)

// Has reports whether component c is active in this mode.
func (o Mode) Has(c field.Component) bool {
	for _, x := range o.Components {
		if x == c {
			return true
		}
	}
	return false
}

// Electric returns the mode's active electric components.
func (o Mode) Electric() []field.Component {
	var out []field.Component
	for _, c := range o.Components {
		if c.IsElectric() {
			out = append(out, c)
		}
	}
	return out
}

// Magnetic returns the mode's active magnetic components.
func (o Mode) Magnetic() []field.Component {
	var out []field.Component
	for _, c := range o.Components {
		if c.IsMagnetic() {
			out = append(out, c)
		}
	}
	return out
}
