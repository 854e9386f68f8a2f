// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"github.com/cpmech/gofdtd/ele"
	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/halo"
	"github.com/cpmech/gofdtd/sched"
	"github.com/cpmech/gofdtd/source"
	"github.com/cpmech/gofdtd/topo"
	"github.com/cpmech/gosl/chk"
)

// Engine is the top-level facade of spec.md C6: it owns the grid, the
// per-component material tables, the installed sources, and the
// scheduler that advances them, mirroring how fem.FEM owns a Domain and
// drives its Run loop.
type Engine struct {
	Config  *Config
	Grid    *grid.Grid
	Cart    *topo.Cart
	Halo    *halo.Exchanger
	Tables  map[field.Component]*ele.Table
	Sched   *sched.Scheduler
	Sources []*source.Source
}

// NewEngine builds an engine for cfg over geometry tree. tree is queried
// once per storage cell of every mode-active component to build that
// component's material table (spec.md §4.3).
func NewEngine(cfg *Config, tree ele.GeomTree) (*Engine, error) {
	g, cart, ex := cfg.Build()
	tables := make(map[field.Component]*ele.Table, len(cfg.Mode.Components))
	for _, c := range cfg.Mode.Components {
		if err := SetMaterial(tables, g, c, tree, cfg.Bloch); err != nil {
			return nil, err
		}
	}
	s := sched.New(cfg.Mode, g, cart, ex, tables, cfg.Dt)
	return &Engine{Config: cfg, Grid: g, Cart: cart, Halo: ex, Tables: tables, Sched: s}, nil
}

// AddSource installs src into the engine's material tables and keeps it
// registered as a scheduler ticker (spec.md §4.5 step 5).
func (o *Engine) AddSource(src *source.Source) {
	tbl, ok := o.Tables[src.Component()]
	if !ok {
		chk.Panic("engine: source drives component %v, which mode %s does not activate", src.Component(), o.Config.Mode.Name)
	}
	src.Apply(tbl, o.Config.Dt)
	o.Sources = append(o.Sources, src)
	o.Sched.Tickers = append(o.Sched.Tickers, src)
}

// SetProbe wraps the updater at component c's cell nearest world with a
// probe that writes every sample to w (spec.md §4.2 "Probe").
func (o *Engine) SetProbe(c field.Component, world [3]float64, w ele.ProbeWriter) {
	tbl, ok := o.Tables[c]
	if !ok {
		chk.Panic("engine: cannot probe component %v, which mode %s does not activate", c, o.Config.Mode.Name)
	}
	i, j, k := o.Grid.WorldToIndex(c, world[0], world[1], world[2])
	if !o.Grid.InRange(c, i, j, k) {
		return // probe location falls on a different rank's subdomain
	}
	delegate := tbl.At(i, j, k)
	tbl.Set(i, j, k, &ele.ProbeUpdater{Delegate: delegate, Writer: w, Dt: o.Config.Dt})
}

// Step advances the simulation by one full step.
func (o *Engine) Step() { o.Sched.Step() }

// StepUntilT advances the simulation until its clock reaches t, returning
// the number of steps taken (spec.md §2 "step_until").
func (o *Engine) StepUntilT(t float64) int { return o.Sched.StepUntil(t) }

// Field returns the live field buffer for component c.
func (o *Engine) Field(c field.Component) *field.Array3 { return o.Sched.Fields[c] }

// T returns the current simulation time.
func (o *Engine) T() float64 { return o.Sched.N * o.Config.Dt }
