// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the Yee grid and the Cartesian-decomposed
// computational space (spec.md C1, §4.1): the index <-> world coordinate
// maps, the per-component storage shapes, the Courant stability bound, and
// the process-topology accessors the halo-exchange component rides on.
package grid

import (
	"math"

	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gofdtd/topo"
	"github.com/cpmech/gosl/chk"
)

// Grid describes one rank's view of a rectangular computational volume of
// physical size (Lx,Ly,Lz) discretized at Resolution cells per unit
// length. A zero size along any axis means "infinite/periodic in that
// axis with one-cell thickness" (spec.md §4.1 edge case).
type Grid struct {
	Lx, Ly, Lz float64
	Resolution float64
	Dx, Dy, Dz float64

	globalN [3]int // global cell count along x,y,z
	localN  [3]int // this rank's local cell count along x,y,z
	origin  [3]int // this rank's starting global cell index along each axis

	Cart *topo.Cart
}

// New builds the grid for the local subdomain owned by cart's rank.
func New(lx, ly, lz, resolution float64, cart *topo.Cart) *Grid {
	if resolution <= 0 {
		chk.Panic("resolution must be positive, got %v", resolution)
	}
	o := &Grid{Lx: lx, Ly: ly, Lz: lz, Resolution: resolution, Cart: cart}
	o.Dx = 1 / resolution
	o.Dy = 1 / resolution
	o.Dz = 1 / resolution
	sizes := [3]float64{lx, ly, lz}
	dims := cart.Dims()
	coords := cart.Coords()
	for a := 0; a < 3; a++ {
		n := 1
		if sizes[a] > 0 {
			n = int(math.Round(sizes[a] * resolution))
			if n < 1 {
				n = 1
			}
		}
		o.globalN[a] = n
		local, start := partition(n, dims[a], coords[a])
		o.localN[a] = local
		o.origin[a] = start
	}
	return o
}

// partition divides n cells as evenly as possible among nproc ranks,
// giving the first (n mod nproc) ranks one extra cell each, and returns
// this rank's (count, startGlobalIndex).
func partition(n, nproc, rank int) (count, start int) {
	base := n / nproc
	extra := n % nproc
	if rank < extra {
		count = base + 1
		start = rank * count
	} else {
		count = base
		start = extra*(base+1) + (rank-extra)*base
	}
	return
}

// Spacing returns the cell size along axis a.
func (o *Grid) Spacing(a field.Axis) float64 { return o.d(a) }

func (o *Grid) d(a field.Axis) float64 {
	switch a {
	case field.X:
		return o.Dx
	case field.Y:
		return o.Dy
	default:
		return o.Dz
	}
}

func (o *Grid) size(a field.Axis) float64 {
	switch a {
	case field.X:
		return o.Lx
	case field.Y:
		return o.Ly
	default:
		return o.Lz
	}
}

// Shape returns the local storage shape (nx,ny,nz) of component c: its own
// axis holds exactly the local cell count, and each tangential axis holds
// one more than the local cell count to carry a halo/boundary row
// (spec.md §3).
func (o *Grid) Shape(c field.Component) (nx, ny, nz int) {
	n := [3]int{o.localN[0], o.localN[1], o.localN[2]}
	own := c.Axis()
	ta, tb := c.Tangential()
	n[ta]++
	n[tb]++
	_ = own
	return n[0], n[1], n[2]
}

// AllocField allocates a zeroed storage buffer for component c.
func (o *Grid) AllocField(c field.Component) *field.Array3 {
	nx, ny, nz := o.Shape(c)
	return field.NewArray3(nx, ny, nz)
}

// IndexToWorld returns the physical location of component c's staggered
// sample at local index (i,j,k).
func (o *Grid) IndexToWorld(c field.Component, i, j, k int) (x, y, z float64) {
	idx := [3]int{i, j, k}
	offX, offY, offZ := c.OffsetAxes()
	off := [3]bool{offX, offY, offZ}
	var w [3]float64
	for a := 0; a < 3; a++ {
		global := float64(o.origin[a] + idx[a])
		if off[a] {
			global += 0.5
		}
		w[a] = global*o.d(axisOf(a)) - o.size(axisOf(a))/2
	}
	return w[0], w[1], w[2]
}

func axisOf(a int) field.Axis { return field.Axis(a) }

// AxisWorld returns the world coordinate of component c's staggered
// sample along a single axis at local index idx, ignoring the other two
// axes (IndexToWorld's per-axis term is independent of the transverse
// indices, so this is exactly the axis-a term of IndexToWorld). Used by
// the halo exchange to compute the Bloch phase displacement without
// needing a full (i,j,k) triple from the sending rank (spec.md §4.4).
func (o *Grid) AxisWorld(c field.Component, a field.Axis, idx int) float64 {
	off := [3]bool{}
	off[field.X], off[field.Y], off[field.Z] = c.OffsetAxes()
	global := float64(o.origin[a] + idx)
	if off[a] {
		global += 0.5
	}
	return global*o.d(a) - o.size(a)/2
}

// WorldToIndex returns the local index of the storage sample nearest to
// the given world coordinate for component c (the round-trip inverse of
// IndexToWorld).
func (o *Grid) WorldToIndex(c field.Component, x, y, z float64) (i, j, k int) {
	w := [3]float64{x, y, z}
	offX, offY, offZ := c.OffsetAxes()
	off := [3]bool{offX, offY, offZ}
	var idx [3]int
	for a := 0; a < 3; a++ {
		global := (w[a] + o.size(axisOf(a))/2) / o.d(axisOf(a))
		if off[a] {
			global -= 0.5
		}
		idx[a] = int(math.Round(global)) - o.origin[a]
	}
	return idx[0], idx[1], idx[2]
}

// InRange reports whether local index (i,j,k) falls within component c's
// locally-owned storage shape.
func (o *Grid) InRange(c field.Component, i, j, k int) bool {
	nx, ny, nz := o.Shape(c)
	return i >= 0 && i < nx && j >= 0 && j < ny && k >= 0 && k < nz
}

// CourantBound computes the largest stable dt for a 3D leapfrog update,
// spec.md §3 invariant 2. axesActive selects which axes contribute their
// spacing term; reduced-mode engines pass only their active axes.
func (o *Grid) CourantBound(axesActive ...field.Axis) float64 {
	var sum float64
	for _, a := range axesActive {
		sum += 1 / (o.d(a) * o.d(a))
	}
	if sum == 0 {
		chk.Panic("courant bound requires at least one active axis")
	}
	return 1 / math.Sqrt(sum)
}
