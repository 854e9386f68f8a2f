// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gosl/chk"
)

// GeomTree is the external geometry collaborator of spec.md §6: a point
// query returning the material at that world location and the material
// "below" it, used for sub-cell averaging at interfaces (spec.md §4.2).
// Package geom supplies a concrete implementation; the engine only needs
// this interface.
type GeomTree interface {
	MaterialOfPoint(world [3]float64) (mat, below Material, err error)
}

// Table is the per-component material table of spec.md C2: one Updater
// per storage cell, built once at construction and immutable afterward
// except for the probe- and source-wrapping decoration steps.
type Table struct {
	Nx, Ny, Nz int
	cells      []Updater
}

// NewTable allocates a table of the given shape with every cell nil.
func NewTable(nx, ny, nz int) *Table {
	return &Table{Nx: nx, Ny: ny, Nz: nz, cells: make([]Updater, nx*ny*nz)}
}

func (o *Table) index(i, j, k int) int { return (i*o.Ny+j)*o.Nz + k }

// At returns the updater stored at (i,j,k).
func (o *Table) At(i, j, k int) Updater { return o.cells[o.index(i, j, k)] }

// Set stores the updater at (i,j,k).
func (o *Table) Set(i, j, k int, u Updater) { o.cells[o.index(i, j, k)] = u }

// Apply runs every cell's updater over field f, reading its two curl-
// partner fields (spec.md §4.5 step 3/7: "a single pass over its material
// table, applying the operator at every cell").
func (o *Table) Apply(f, hPlus, hMinus *field.Array3, da, db, dt, nHalf float64) {
	for i := 0; i < o.Nx; i++ {
		for j := 0; j < o.Ny; j++ {
			for k := 0; k < o.Nz; k++ {
				o.At(i, j, k).Update(f, hPlus, hMinus, i, j, k, da, db, dt, nHalf)
			}
		}
	}
}

// isDummyRow reports whether local index idx lies on component c's
// trailing (electric) or leading (magnetic) boundary row of its two
// tangential axes -- spec.md §4.3 step 3.
func isDummyRow(c field.Component, idx [3]int, shape [3]int) bool {
	ta, tb := c.Tangential()
	ia, ib := int(ta), int(tb)
	if c.IsElectric() {
		return idx[ia] == shape[ia]-1 || idx[ib] == shape[ib]-1
	}
	return idx[ia] == 0 || idx[ib] == 0
}

// Build constructs the material table for component c by querying tree at
// every cell's world coordinate and substituting a Dummy at the trailing/
// leading tangential boundary rows (spec.md §4.3).
func Build(g *grid.Grid, c field.Component, tree GeomTree, cmplx bool) (*Table, error) {
	nx, ny, nz := g.Shape(c)
	shape := [3]int{nx, ny, nz}
	t := NewTable(nx, ny, nz)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				x, y, z := g.IndexToWorld(c, i, j, k)
				world := [3]float64{x, y, z}
				mat, below, err := tree.MaterialOfPoint(world)
				if err != nil {
					return nil, chk.Err("material table build failed for %v at %v: %v", c, world, err)
				}
				idx := [3]int{i, j, k}
				if isDummyRow(c, idx, shape) {
					mat = NewDummy(mat.Epsilon(), mat.Mu())
				}
				t.Set(i, j, k, mat.PwMaterial(c, idx, world, below, cmplx))
			}
		}
	}
	return t, nil
}
