// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements the geometry collaborator of spec.md §6
// (ele.GeomTree): an ordered list of shapes layered over a background
// medium, mirroring gmes's geom_list convention (original_source/
// examples/waveguide.py: "[DefaultMedium(...), Block(...),
// Boundary(...)]") where later entries paint over earlier ones at
// overlapping points.
package geom

import (
	"math"

	"github.com/cpmech/gofdtd/ele"
	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gofdtd/mat"
)

// Shape is one region of a Tree: a material and a containment test.
type Shape interface {
	Material() ele.Material
	Contains(world [3]float64) bool
}

// Tree is an ordered stack of shapes painted over a background medium.
// MaterialOfPoint resolves a point by walking the stack from the most
// recently added shape to the least, the way gmes's geom_list resolves
// overlaps (later list entries win).
type Tree struct {
	background ele.Material
	shapes     []Shape
}

// NewTree returns a Tree whose background fills every point not covered
// by a later-added shape (spec.md §6, gmes's DefaultMedium).
func NewTree(background ele.Material) *Tree {
	return &Tree{background: background}
}

// Add paints shape over everything added before it.
func (o *Tree) Add(s Shape) { o.shapes = append(o.shapes, s) }

// MaterialOfPoint implements ele.GeomTree: mat is the material of the
// highest-priority shape containing world (or the background), and below
// is the material that would apply if that one shape were absent --
// exactly the material the Yee update's sub-cell averaging blends against
// at an interface (spec.md §4.2).
func (o *Tree) MaterialOfPoint(world [3]float64) (m, below ele.Material, err error) {
	for i := len(o.shapes) - 1; i >= 0; i-- {
		if o.shapes[i].Contains(world) {
			return o.shapes[i].Material(), o.resolveFrom(i-1, world), nil
		}
	}
	return o.background, o.background, nil
}

func (o *Tree) resolveFrom(start int, world [3]float64) ele.Material {
	for i := start; i >= 0; i-- {
		if o.shapes[i].Contains(world) {
			return o.shapes[i].Material()
		}
	}
	return o.background
}

// Block is an axis-aligned box shape centered at Center with the given
// full Size along each axis. A Size component of math.Inf(1) makes the
// block unbounded along that axis, matching gmes's Block(size=(inf, 1,
// inf)) convention for a slab that spans the whole domain in two
// directions.
type Block struct {
	mat    ele.Material
	center [3]float64
	size   [3]float64
}

// NewBlock returns a block of the given material, center, and full size.
func NewBlock(mat ele.Material, center, size [3]float64) *Block {
	return &Block{mat: mat, center: center, size: size}
}

// Material returns the block's material.
func (o *Block) Material() ele.Material { return o.mat }

// Contains reports whether world lies within the block.
func (o *Block) Contains(world [3]float64) bool {
	for a := 0; a < 3; a++ {
		if math.IsInf(o.size[a], 1) {
			continue
		}
		half := o.size[a] / 2
		if world[a] < o.center[a]-half || world[a] > o.center[a]+half {
			return false
		}
	}
	return true
}

// boundaryFace is one face of an absorbing boundary shell: the slab within
// thickness world-units of one end of one axis, carrying a CPML material
// graded along that axis (spec.md §4.2, gmes's Boundary(material=Cpml(),
// thickness=1), which in gmes seats one Cpml instance per face internally).
type boundaryFace struct {
	mat   *mat.CPML
	axis  field.Axis
	lo    bool // true: the low-coordinate face; false: the high-coordinate face
	bound float64
	thick float64
}

// Material returns the face's CPML material.
func (o *boundaryFace) Material() ele.Material { return o.mat }

// Contains reports whether world lies within thickness of this face.
func (o *boundaryFace) Contains(world [3]float64) bool {
	x := world[o.axis]
	if o.lo {
		return x <= o.bound+o.thick
	}
	return x >= o.bound-o.thick
}

// AddBoundary paints an absorbing CPML shell of the given thickness over
// every finite-size axis of the domain [size], background coefficients
// eps/mu, the way gmes's Boundary(material=Cpml(), thickness=t) wraps the
// whole space. Each of up to six faces (two per finite axis) is added as
// its own shape so mat.CPML's per-axis stretching applies independently
// at each end.
func (o *Tree) AddBoundary(eps, mu float64, size [3]float64, thickness float64) {
	for a := 0; a < 3; a++ {
		if size[a] <= 0 {
			continue
		}
		axis := field.Axis(a)
		half := size[a] / 2
		loMat := mat.NewCPML(eps, mu, axis, -half, half, thickness, 0, 0, 0, 0)
		hiMat := mat.NewCPML(eps, mu, axis, -half, half, thickness, 0, 0, 0, 0)
		o.Add(&boundaryFace{mat: loMat, axis: axis, lo: true, bound: -half, thick: thickness})
		o.Add(&boundaryFace{mat: hiMat, axis: axis, lo: false, bound: half, thick: thickness})
	}
}
