// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gofdtd runs a dielectric-waveguide FDTD scenario (spec.md §8
// scenario 1), the TMz translation of gmes's
// original_source/examples/waveguide.py: a 16x8 domain at resolution 10,
// a dielectric slab of epsilon=12 down its middle, a CPML boundary shell,
// and a continuous-wave point source driving Ez.
package main

import (
	"flag"
	"math"

	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gofdtd/geom"
	"github.com/cpmech/gofdtd/mat"
	"github.com/cpmech/gofdtd/probe"
	"github.com/cpmech/gofdtd/sched"
	"github.com/cpmech/gofdtd/source"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\ngofdtd -- a Yee-grid FDTD field solver\n\n")
	}

	stopAt := flag.Float64("t", 200, "simulation time to run until")
	probePath := flag.String("probe", "", "optional probe output file")
	flag.Parse()

	lx, ly, lz := 16.0, 8.0, 0.0
	cfg := &fdtd.Config{
		Lx: lx, Ly: ly, Lz: lz,
		Resolution:   10,
		Mode:         sched.TMz,
		CourantRatio: 0.99,
		Verbose:      true,
	}

	tree := geom.NewTree(mat.Vacuum())
	tree.Add(geom.NewBlock(mat.NewDielectric(12, 1), [3]float64{0, 0, 0}, [3]float64{math.Inf(1), 1, math.Inf(1)}))
	tree.AddBoundary(1, 1, [3]float64{lx, ly, lz}, 1)

	eng, err := fdtd.NewEngine(cfg, tree)
	if err != nil {
		chk.Panic("%v", err)
	}

	src := source.NewDipole(field.Ez, centerIndex(eng, -7, 0, 0), source.NewContinuous(1, 0.15, 0), false)
	eng.AddSource(src)

	var stream *probe.TextStream
	if *probePath != "" {
		stream = probe.NewTextStream(*probePath, field.Ez, [3]float64{0, 0, 0}, cfg.Dt)
		eng.SetProbe(field.Ez, [3]float64{0, 0, 0}, stream)
	}

	eng.StepUntilT(*stopAt)

	if stream != nil {
		if err := stream.Close(); err != nil {
			chk.Panic("%v", err)
		}
	}

	if mpi.Rank() == 0 {
		io.Pf("done: t=%g\n", eng.T())
	}
}

func centerIndex(eng *fdtd.Engine, x, y, z float64) [3]int {
	i, j, k := eng.Grid.WorldToIndex(field.Ez, x, y, z)
	return [3]int{i, j, k}
}
