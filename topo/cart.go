// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package topo implements the Cartesian process-topology collaborator used
// by the halo-exchange component (spec.md §4.1, §4.4): axis-wise rank
// shifts and a symmetric send/receive over one pair of neighbors. It is
// built on the same github.com/cpmech/gosl/mpi entry points the teacher
// uses for its own distributed assembly (mpi.IsOn, mpi.Rank, mpi.Start,
// mpi.Stop); gosl/mpi exposes point-to-point Send/Recv on flat float64
// slices but no ready-made Cartesian communicator, so the shift/coords
// bookkeeping below is new code layered over those primitives.
package topo

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/mpi"
)

// Cart is a Cartesian process topology over up to three axes. Rank0 owns
// coords (0,0,0). A zero-size Dims entry is not valid; a non-decomposed
// (single-process) run uses Dims = [1,1,1].
type Cart struct {
	dims   [3]int // process count along each axis
	coords [3]int // this rank's coordinates in the topology
	rank   int
	size   int
}

// NewCart builds a Cartesian topology of the given per-axis process counts.
// dims[0]*dims[1]*dims[2] must equal mpi.Size() (or 1 when MPI is off).
func NewCart(dims [3]int) *Cart {
	size := 1
	rank := 0
	if mpi.IsOn() {
		size = mpi.Size()
		rank = mpi.Rank()
	}
	n := dims[0] * dims[1] * dims[2]
	if n != size {
		chk.Panic("cartesian topology dims %v do not match process count %d", dims, size)
	}
	return newCart(dims, size, rank)
}

// NewCartAt builds a Cartesian topology of the given dims with this call
// pinned to rank, bypassing the mpi.Size()/mpi.Rank() queries NewCart
// uses. It exists to exercise multi-rank Shift/ShiftWrap logic (and
// anything built on it, like halo.Exchanger) from a single test process
// without a live MPI run; production code builds its topology through
// NewCart.
func NewCartAt(dims [3]int, rank int) *Cart {
	return newCart(dims, dims[0]*dims[1]*dims[2], rank)
}

func newCart(dims [3]int, size, rank int) *Cart {
	o := new(Cart)
	o.dims = dims
	o.size = size
	o.rank = rank
	// row-major decomposition of rank into (x,y,z) coordinates
	o.coords[0] = o.rank / (dims[1] * dims[2])
	rem := o.rank % (dims[1] * dims[2])
	o.coords[1] = rem / dims[2]
	o.coords[2] = rem % dims[2]
	return o
}

// Dims returns the per-axis process counts.
func (o *Cart) Dims() [3]int { return o.dims }

// Coords returns this rank's coordinates in the topology.
func (o *Cart) Coords() [3]int { return o.coords }

// Rank returns this process's rank (my_id in spec.md terms).
func (o *Cart) Rank() int { return o.rank }

// NumProcs returns the total number of processes.
func (o *Cart) NumProcs() int { return o.size }

// rankOf converts topology coordinates to a rank, or -1 if any coordinate
// is out of range (ShiftWrap wraps coordinates before calling it).
func (o *Cart) rankOf(c [3]int) int {
	for a := 0; a < 3; a++ {
		if c[a] < 0 || c[a] >= o.dims[a] {
			return -1
		}
	}
	return (c[0]*o.dims[1]+c[1])*o.dims[2] + c[2]
}

// Shift returns the (src, dst) ranks reached by moving delta steps along
// axis, mirroring MPI_Cart_shift / mpi4py's Cartcomm.Shift. A face with no
// neighbor (edge of the global domain, non-periodic) yields -1.
func (o *Cart) Shift(axis int, delta int) (src, dst int) {
	dstCoords := o.coords
	dstCoords[axis] += delta
	srcCoords := o.coords
	srcCoords[axis] -= delta
	return o.rankOf(srcCoords), o.rankOf(dstCoords)
}

// ShiftWrap is Shift's periodic counterpart, used only for Bloch-periodic
// exchanges (spec.md §4.4): a coordinate that runs off either end of the
// topology wraps around to the opposite end instead of yielding no
// neighbor, and wrapSrc/wrapDst report whether that rank was reached by
// wrapping (the caller needs this to know whether to apply the Bloch
// phase or treat the exchange as an ordinary interior one).
func (o *Cart) ShiftWrap(axis int, delta int) (src, dst int, wrapSrc, wrapDst bool) {
	dstCoords := o.coords
	dstCoords[axis], wrapDst = wrapCoord(dstCoords[axis]+delta, o.dims[axis])
	srcCoords := o.coords
	srcCoords[axis], wrapSrc = wrapCoord(srcCoords[axis]-delta, o.dims[axis])
	return o.rankOf(srcCoords), o.rankOf(dstCoords), wrapSrc, wrapDst
}

func wrapCoord(c, n int) (int, bool) {
	if c < 0 {
		return c + n, true
	}
	if c >= n {
		return c - n, true
	}
	return c, false
}

// message tag space: one tag per (component, purpose) pair is enough since
// exchanges within a step are strictly ordered (spec.md §4.4).
const tagBase = 100

// SendRecvComplex exchanges a flat complex128 slab with dst/src ranks,
// mirroring cart.sendrecv(buf, dst, tag, src, tag) -> buf from spec.md
// §4.1: sendbuf goes to dst and the returned slab comes from src. When a
// neighbor is absent (src or dst == -1) no message crosses the wire on
// that side, and a missing src yields a zero slab. A single-process
// topology, or a run with MPI off, returns sendbuf itself. Callers are
// responsible for the "multiply by 0" truncation spec.md §4.4 describes
// for non-periodic non-Bloch boundaries.
func (o *Cart) SendRecvComplex(sendbuf []complex128, dst int, sendtag int, src int, recvtag int) []complex128 {
	if o.size == 1 || (dst == o.rank && src == o.rank) {
		return sendbuf
	}
	re := make([]float64, len(sendbuf))
	im := make([]float64, len(sendbuf))
	for i, v := range sendbuf {
		re[i], im[i] = real(v), imag(v)
	}
	rre, rim := o.sendRecvFloat(re, dst, src, sendtag), o.sendRecvFloat(im, dst, src, sendtag+1)
	_ = recvtag // recv tag mirrors sendtag by construction of the scheduler's fixed ordering
	out := make([]complex128, len(sendbuf))
	for i := range out {
		out[i] = complex(rre[i], rim[i])
	}
	return out
}

// sendRecvFloat performs one symmetric exchange of a real slab on
// gosl/mpi's point-to-point primitives: buf is sent to dst and the
// returned slab is received from src. Absent neighbors are treated as
// no-ops on that side; with no src the returned slab is zero. With MPI
// off, a copy of buf is returned.
func (o *Cart) sendRecvFloat(buf []float64, dst, src, tag int) []float64 {
	out := make([]float64, len(buf))
	if !mpi.IsOn() {
		copy(out, buf)
		return out
	}
	if dst >= 0 {
		mpi.SendOne(dst, buf)
	}
	if src >= 0 {
		out = mpi.RecvOne(src, buf)
	}
	return out
}

// SendRecvFloat is the real-valued counterpart of SendRecvComplex. The
// halo exchange does not call it: its non-Bloch path performs no exchange.
func (o *Cart) SendRecvFloat(sendbuf []float64, dst int, sendtag int, src int, recvtag int) []float64 {
	if o.size == 1 || (dst == o.rank && src == o.rank) {
		return sendbuf
	}
	_ = recvtag
	return o.sendRecvFloat(sendbuf, dst, src, sendtag)
}

// Tag derives a unique MPI tag for a (component, face) pair.
func Tag(componentTag int, face int) int { return tagBase + componentTag*2 + face }
