// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package halo implements the neighbor face exchange of spec.md C4: one
// field's tangential-axis halo row is filled from the adjoining rank
// (or phase-corrected around a periodic wrap, or zeroed at a truncated
// boundary), grounded on topo.Cart's shift/sendrecv primitives the way
// gofem's fem package drives assembly across mpi.Rank()/mpi.Size().
package halo

import (
	"math/cmplx"

	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/topo"
)

// Exchanger performs one component's face exchanges. K holds the
// wavevector used when Complex is true; both are fixed for the life of
// an engine (spec.md §3 invariant 3: the complex flag never changes).
type Exchanger struct {
	Complex bool
	K       [3]float64
}

// Face exchanges component c's halo row along axis using cart/g for the
// rank topology and coordinate lookups. Electric components send their
// low-index face to the low neighbor and receive into the high halo row;
// magnetic components do the opposite (spec.md §4.4 "direction
// asymmetry").
func (o *Exchanger) Face(f *field.Array3, c field.Component, axis field.Axis, cart *topo.Cart, g *grid.Grid) {
	n := axisLen(f, axis)
	electric := c.IsElectric()
	delta := 1
	sendIdx, recvIdx := n-1, 0
	if electric {
		delta = -1
		sendIdx, recvIdx = 0, n-1
	}
	tag := topo.Tag(c.Tag(), int(axis))
	sendSlab := extractFace(f, axis, sendIdx)

	if o.Complex {
		src, dst, wrapSrc, wrapDst := cart.ShiftWrap(int(axis), delta)
		_ = wrapDst
		payload := append(sendSlab, complex(g.AxisWorld(c, axis, sendIdx), 0))
		recv := cart.SendRecvComplex(payload, dst, tag, src, tag)
		recvSlab := recv[:len(recv)-1]
		if src < 0 {
			zero(recvSlab)
		} else if wrapSrc {
			senderWorld := real(recv[len(recv)-1])
			dx := g.AxisWorld(c, axis, recvIdx) - senderWorld
			phase := cmplx.Exp(complex(0, o.K[axis]*dx))
			for i := range recvSlab {
				recvSlab[i] *= phase
			}
		}
		setFace(f, axis, recvIdx, recvSlab)
		return
	}

	// Non-Bloch runs never couple across a rank boundary, regardless of
	// whether a neighbor exists there: the received slab is always
	// multiplied by 0 (spec.md §4.4/§7, gmes's talk_with_ex_neighbors
	// which always sets phase_shift=0 when self.cmplx is False).
	recvSlab := make([]complex128, len(sendSlab))
	zero(recvSlab)
	setFace(f, axis, recvIdx, recvSlab)
}

func axisLen(f *field.Array3, axis field.Axis) int {
	nx, ny, nz := f.Shape()
	switch axis {
	case field.X:
		return nx
	case field.Y:
		return ny
	default:
		return nz
	}
}

func extractFace(f *field.Array3, axis field.Axis, idx int) []complex128 {
	switch axis {
	case field.X:
		return f.FaceAlongX(idx)
	case field.Y:
		return f.FaceAlongY(idx)
	default:
		return f.FaceAlongZ(idx)
	}
}

func setFace(f *field.Array3, axis field.Axis, idx int, slab []complex128) {
	switch axis {
	case field.X:
		f.SetFaceAlongX(idx, slab)
	case field.Y:
		f.SetFaceAlongY(idx, slab)
	default:
		f.SetFaceAlongZ(idx, slab)
	}
}

func zero(s []complex128) {
	for i := range s {
		s[i] = 0
	}
}
