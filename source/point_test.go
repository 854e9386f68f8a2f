// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"testing"

	"github.com/cpmech/gofdtd/ele"
	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gosl/chk"
)

type constUpdater struct{ v complex128 }

func (o constUpdater) Update(f, h1, h2 *field.Array3, i, j, k int, da, db, dt, nHalf float64) {
	f.Set(i, j, k, o.v)
}

func fillTable(nx, ny, nz int) *ele.Table {
	t := ele.NewTable(nx, ny, nz)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				t.Set(i, j, k, constUpdater{v: 0})
			}
		}
	}
	return t
}

func Test_point01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point01: a dipole source wraps only its single target cell")

	tbl := fillTable(3, 3, 1)
	src := NewDipole(field.Ez, [3]int{1, 1, 0}, NewContinuous(1, 0.15, 0), true)
	src.Apply(tbl, 0.1)
	if _, ok := tbl.At(1, 1, 0).(*ele.SourceUpdater); !ok {
		tst.Errorf("the target cell should be wrapped in a SourceUpdater, got %T", tbl.At(1, 1, 0))
	}
	if _, ok := tbl.At(0, 0, 0).(*ele.SourceUpdater); ok {
		tst.Errorf("a non-target cell should be left untouched")
	}
}

func Test_point02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point02: a plane wave wraps every cell on its injection plane")

	tbl := fillTable(3, 3, 1)
	src := NewPlaneWave(field.Ez, field.X, 1, NewContinuous(1, 0.15, 0), false)
	src.Apply(tbl, 0.1)
	for j := 0; j < 3; j++ {
		if _, ok := tbl.At(1, j, 0).(*ele.SourceUpdater); !ok {
			tst.Errorf("cell (1,%d,0) on the injection plane should be wrapped", j)
		}
	}
	if _, ok := tbl.At(0, 0, 0).(*ele.SourceUpdater); ok {
		tst.Errorf("a cell off the injection plane should be left untouched")
	}
}

func Test_point03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point03: a hard dipole overrides the field, a soft one adds to it")

	tblHard := fillTable(1, 1, 1)
	tblHard.Set(0, 0, 0, constUpdater{v: 5})
	hard := NewDipole(field.Ez, [3]int{0, 0, 0}, NewContinuous(3, 0, 0), true)
	hard.Apply(tblHard, 1.0)
	f := field.NewArray3(1, 1, 1)
	tblHard.At(0, 0, 0).Update(f, nil, nil, 0, 0, 0, 1, 1, 1.0, 0)
	if f.Get(0, 0, 0) != 3 {
		tst.Errorf("a hard source should override the field to its amplitude, got %v", f.Get(0, 0, 0))
	}

	tblSoft := fillTable(1, 1, 1)
	tblSoft.Set(0, 0, 0, constUpdater{v: 5})
	soft := NewDipole(field.Ez, [3]int{0, 0, 0}, NewContinuous(3, 0, 0), false)
	soft.Apply(tblSoft, 1.0)
	f2 := field.NewArray3(1, 1, 1)
	tblSoft.At(0, 0, 0).Update(f2, nil, nil, 0, 0, 0, 1, 1, 1.0, 0)
	if f2.Get(0, 0, 0) != 8 {
		tst.Errorf("a soft source should add its amplitude to the delegate's 5, got %v", f2.Get(0, 0, 0))
	}
}

func Test_point04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point04: Apply panics when a member cell has no existing updater")

	tbl := ele.NewTable(1, 1, 1)
	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("Apply should panic when a target cell's updater is nil")
		}
	}()
	src := NewDipole(field.Ez, [3]int{0, 0, 0}, NewContinuous(1, 0, 0), true)
	src.Apply(tbl, 0.1)
}
