// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fdtd is the engine facade of spec.md C6: it builds the grid,
// material tables, source tables, halo exchanger and scheduler from user
// inputs and owns the field buffers, mirroring how fem/fem.go builds and
// owns a Domain from inp.Simulation data.
package fdtd

import (
	"github.com/cpmech/gofdtd/ele"
	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/halo"
	"github.com/cpmech/gofdtd/sched"
	"github.com/cpmech/gofdtd/topo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Config holds everything the engine needs to build a run: domain size,
// resolution, time step selection, decomposition, and the optional Bloch
// wavevector (spec.md §4.1, §4.4).
type Config struct {
	Lx, Ly, Lz float64
	Resolution float64
	Mode       sched.Mode

	// CourantRatio selects Dt = CourantRatio*grid.CourantBound(...) when
	// Dt is zero; otherwise Dt is used directly and still checked against
	// the bound (spec.md §3 invariant 2).
	CourantRatio float64
	Dt           float64

	Dims [3]int // Cartesian process topology, product must equal process count

	Bloch bool
	K     [3]float64

	Verbose bool
}

// Build validates cfg and constructs the grid, Cartesian topology, and
// halo exchanger. It panics (via chk.Panic, the teacher's convention) on
// a Courant-bound violation or an invalid wavevector, both construction-
// time invariants per spec.md §3.
func (cfg *Config) Build() (*grid.Grid, *topo.Cart, *halo.Exchanger) {
	dims := cfg.Dims
	if dims == [3]int{} {
		dims = [3]int{1, 1, 1}
	}
	cart := topo.NewCart(dims)
	g := grid.New(cfg.Lx, cfg.Ly, cfg.Lz, cfg.Resolution, cart)

	bound := g.CourantBound(cfg.Mode.ActiveAxes...)
	dt := cfg.Dt
	if dt == 0 {
		ratio := cfg.CourantRatio
		if ratio == 0 {
			ratio = 0.99
		}
		dt = ratio * bound
	}
	if dt > bound {
		chk.Panic("fdtd: dt=%v exceeds Courant bound %v for mode %s", dt, bound, cfg.Mode.Name)
	}
	cfg.Dt = dt

	if cfg.Bloch {
		for a := 0; a < 3; a++ {
			active := false
			for _, x := range cfg.Mode.ActiveAxes {
				if int(x) == a {
					active = true
				}
			}
			if !active && cfg.K[a] != 0 {
				chk.Panic("fdtd: wavevector component %d set on an axis inactive in mode %s", a, cfg.Mode.Name)
			}
		}
	}

	if cfg.Verbose && cart.Rank() == 0 {
		io.Pf("gofdtd: mode=%s dims=%v dt=%v courant_bound=%v bloch=%v\n", cfg.Mode.Name, dims, dt, bound, cfg.Bloch)
	}

	return g, cart, &halo.Exchanger{Complex: cfg.Bloch, K: cfg.K}
}

// SetMaterial builds component c's material table from tree via ele.Build
// and installs it into tables.
func SetMaterial(tables map[field.Component]*ele.Table, g *grid.Grid, c field.Component, tree ele.GeomTree, cmplx bool) error {
	t, err := ele.Build(g, c, tree, cmplx)
	if err != nil {
		return chk.Err("fdtd: building material table for %v: %v", c, err)
	}
	tables[c] = t
	return nil
}
