// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"github.com/cpmech/gofdtd/ele"
	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/halo"
	"github.com/cpmech/gofdtd/topo"
)

// Ticker is any per-step auxiliary state that needs advancing once per
// full step (spec.md §4.5 step 5); source.Source implements it.
type Ticker interface {
	Step()
}

// Scheduler drives the half-step leapfrog of spec.md §4.5 over one
// Mode's active fields and material tables.
type Scheduler struct {
	Mode    Mode
	Fields  map[field.Component]*field.Array3
	Tables  map[field.Component]*ele.Table
	Grid    *grid.Grid
	Cart    *topo.Cart
	Halo    *halo.Exchanger
	Dt      float64
	N       float64 // half-integer step count
	Tickers []Ticker
}

// New builds a scheduler for mode over the given grid. A field buffer is
// allocated for all six components, not just the mode's active ones: a
// component dropped by symmetry (e.g. Hz in TMz) is physically zero
// everywhere, and leaving its buffer permanently zeroed lets active
// components read it as an ordinary (if inert) curl partner instead of
// special-casing the missing term (spec.md §4.5 "drop the components
// that vanish by symmetry").
func New(mode Mode, g *grid.Grid, cart *topo.Cart, ex *halo.Exchanger, tables map[field.Component]*ele.Table, dt float64) *Scheduler {
	fields := make(map[field.Component]*field.Array3, len(field.All))
	for _, c := range field.All {
		fields[c] = g.AllocField(c)
	}
	return &Scheduler{Mode: mode, Fields: fields, Tables: tables, Grid: g, Cart: cart, Halo: ex, Dt: dt}
}

// exchangeAxisOrder walks a component list's tangential-axis exchanges in
// the fixed x-before-y-before-z order of spec.md §4.4, regardless of how
// many of the mode's components touch each axis.
func (o *Scheduler) exchangeAxisOrder(comps []field.Component) {
	for _, axis := range [3]field.Axis{field.X, field.Y, field.Z} {
		for _, c := range comps {
			ta, tb := c.Tangential()
			if ta == axis || tb == axis {
				o.Halo.Face(o.Fields[c], c, axis, o.Cart, o.Grid)
			}
		}
	}
}

// Step advances the scheduler by one full step: half-step H-halo/E-update,
// half-step source-tick/E-halo/H-update (spec.md §4.5).
func (o *Scheduler) Step() {
	o.N += 0.5
	o.exchangeAxisOrder(o.Mode.Magnetic())
	for _, c := range o.Mode.Electric() {
		o.applyOne(c)
	}

	o.N += 0.5
	for _, t := range o.Tickers {
		t.Step()
	}
	o.exchangeAxisOrder(o.Mode.Electric())
	for _, c := range o.Mode.Magnetic() {
		o.applyOne(c)
	}
}

// StepUntil advances until the clock reaches t (spec.md §2 "step/
// step_until"), returning the number of full steps taken.
func (o *Scheduler) StepUntil(t float64) int {
	n := 0
	for o.N*o.Dt < t {
		o.Step()
		n++
	}
	return n
}

func (o *Scheduler) applyOne(c field.Component) {
	p := c.Partners()
	da := o.Grid.Spacing(p.DA)
	db := o.Grid.Spacing(p.DB)
	o.Tables[c].Apply(o.Fields[c], o.Fields[p.Plus], o.Fields[p.Minus], da, db, o.Dt, o.N)
}
