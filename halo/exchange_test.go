// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halo

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/topo"
	"github.com/cpmech/gosl/chk"
)

func Test_exchange01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exchange01: non-Bloch single-process boundary is zeroed (multiply-by-0 truncation)")

	cart := topo.NewCart([3]int{1, 1, 1})
	g := grid.New(4, 4, 4, 10, cart)
	f := g.AllocField(field.Ex)
	nx, ny, nz := f.Shape()
	for j := 0; j < ny; j++ {
		for k := 0; k < nz; k++ {
			f.Set(0, j, k, 5)
			f.Set(nx-1, j, k, 5)
		}
	}
	ex := &Exchanger{}
	ex.Face(f, field.Ex, field.X, cart, g)
	for j := 0; j < ny; j++ {
		for k := 0; k < nz; k++ {
			if v := f.Get(nx-1, j, k); v != 0 {
				tst.Errorf("electric halo row at the truncated boundary should be zeroed, got %v at (%d,%d)", v, j, k)
			}
		}
	}
}

func Test_exchange01b(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exchange01b: non-Bloch exchange is zeroed even when a real neighbor exists")

	// rank 1 of a 2-process topology along x has an actual src neighbor
	// (rank 0) for a magnetic component's Shift, unlike the single-process
	// case in Test_exchange01 where src is always -1.
	cart := topo.NewCartAt([3]int{2, 1, 1}, 1)
	if src, _ := cart.Shift(int(field.X), 1); src < 0 {
		tst.Fatalf("test setup error: expected a real src neighbor, got %d", src)
	}
	g := grid.New(4, 4, 4, 10, cart)
	f := g.AllocField(field.Hx)
	nx, ny, nz := f.Shape()
	for j := 0; j < ny; j++ {
		for k := 0; k < nz; k++ {
			f.Set(0, j, k, 9)
			f.Set(nx-1, j, k, 9)
		}
	}
	ex := &Exchanger{}
	ex.Face(f, field.Hx, field.X, cart, g)
	for j := 0; j < ny; j++ {
		for k := 0; k < nz; k++ {
			if v := f.Get(0, j, k); v != 0 {
				tst.Errorf("non-Bloch exchange must zero the halo row even with a real neighbor present, got %v at (%d,%d)", v, j, k)
			}
		}
	}
}

func Test_exchange03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exchange03: a nonzero wavevector applies exp(i*k*dx) across a single-process periodic wrap")

	cart := topo.NewCart([3]int{1, 1, 1})
	g := grid.New(4, 4, 4, 10, cart)
	f := g.AllocField(field.Ex)
	nx, ny, nz := f.Shape()
	var amp complex128 = 2
	for j := 0; j < ny; j++ {
		for k := 0; k < nz; k++ {
			f.Set(0, j, k, amp)
		}
	}
	k0 := 3.1
	ex := &Exchanger{Complex: true, K: [3]float64{k0, 0, 0}}
	ex.Face(f, field.Ex, field.X, cart, g)

	// a single-process wrap along x carries the sender's own low-index
	// face (world coordinate AxisWorld(0)) into the high-index halo row
	// (AxisWorld(nx-1)); the Bloch phase is exp(i*k*dx) where dx is that
	// displacement. Along Ex's own axis x, which has no extra halo row,
	// dx is Lx minus one cell (spec.md §4.4, extending exchange02's k=0
	// case).
	dx := g.AxisWorld(field.Ex, field.X, nx-1) - g.AxisWorld(field.Ex, field.X, 0)
	want := amp * cmplx.Exp(complex(0, k0*dx))
	for j := 0; j < ny; j++ {
		for k := 0; k < nz; k++ {
			got := f.Get(nx-1, j, k)
			if cmplx.Abs(got-want) > 1e-9 {
				tst.Errorf("nonzero-k Bloch wrap: got %v, want %v", got, want)
			}
		}
	}
}

func Test_exchange02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exchange02: single-process Bloch wrap applies the phase and leaves a zero-k run unchanged")

	cart := topo.NewCart([3]int{1, 1, 1})
	g := grid.New(4, 4, 4, 10, cart)
	f := g.AllocField(field.Ex)
	nx, ny, nz := f.Shape()
	for j := 0; j < ny; j++ {
		for k := 0; k < nz; k++ {
			f.Set(0, j, k, 3)
		}
	}
	ex := &Exchanger{Complex: true, K: [3]float64{0, 0, 0}}
	ex.Face(f, field.Ex, field.X, cart, g)
	for j := 0; j < ny; j++ {
		for k := 0; k < nz; k++ {
			if v := f.Get(nx-1, j, k); v != 3 {
				tst.Errorf("k=0 Bloch wrap should carry the sender's value unchanged, got %v", v)
			}
		}
	}
}
