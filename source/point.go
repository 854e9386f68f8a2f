// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"github.com/cpmech/gofdtd/ele"
	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gosl/chk"
)

// Source is one pointwise-source descriptor (spec.md C3): it drives a
// single field component, over some set of local cells, with a time
// envelope, either adding to (soft) or overriding (hard) the delegated
// material update.
type Source struct {
	comp   field.Component
	env    Envelope
	hard   bool
	member func(idx [3]int) bool
}

// NewDipole returns a point source driving component comp at the single
// local cell idx -- the canonical "dipole" point emitter of spec.md §1.
func NewDipole(comp field.Component, idx [3]int, env Envelope, hard bool) *Source {
	return &Source{comp: comp, env: env, hard: hard, member: func(i [3]int) bool { return i == idx }}
}

// NewPlaneWave returns a source driving comp over every local cell whose
// index along axis equals coord -- a whole-face injection plane.
func NewPlaneWave(comp field.Component, axis field.Axis, coord int, env Envelope, hard bool) *Source {
	return &Source{comp: comp, env: env, hard: hard, member: func(i [3]int) bool { return i[axis] == coord }}
}

// Component returns the field component this source drives.
func (o *Source) Component() field.Component { return o.comp }

// Step ticks any auxiliary envelope state. Continuous and Gaussian are
// pure functions of t and need no per-step state; Step exists so the
// scheduler can treat every source uniformly (spec.md §4.5 step 5).
func (o *Source) Step() {}

// Apply installs this source into table tbl, whose component must match
// o.Component(). Every member cell's existing updater is wrapped in an
// ele.SourceUpdater that evaluates the envelope at physical time
// nHalf*dt.
func (o *Source) Apply(tbl *ele.Table, dt float64) {
	for i := 0; i < tbl.Nx; i++ {
		for j := 0; j < tbl.Ny; j++ {
			for k := 0; k < tbl.Nz; k++ {
				idx := [3]int{i, j, k}
				if !o.member(idx) {
					continue
				}
				delegate := tbl.At(i, j, k)
				if delegate == nil {
					chk.Panic("source: table cell %v has no updater installed", idx)
				}
				env := o.env
				tbl.Set(i, j, k, &ele.SourceUpdater{
					Delegate:  delegate,
					Hard:      o.hard,
					Amplitude: func(nHalf float64) complex128 { return env.Amplitude(nHalf * dt) },
				})
			}
		}
	}
}
