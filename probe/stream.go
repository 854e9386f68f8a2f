// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package probe implements the probe output of spec.md §6: a plain-text
// per-location sample stream and a binary multi-step field snapshot,
// written the way tools/GenVtu.go accumulates a bytes.Buffer with io.Ff
// and flushes it once with io.WriteFile/io.WriteFileV.
package probe

import (
	"bytes"
	"math"

	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// TextStream implements ele.ProbeWriter: one header, one sample line per
// call, flushed to disk on Close (spec.md §6 "# location=..., # dt=...").
type TextStream struct {
	path string
	buf  bytes.Buffer
}

// NewTextStream opens a text probe stream at world location loc for
// component c sampled at time step dt, writing the header spec.md §6
// requires.
func NewTextStream(path string, c field.Component, loc [3]float64, dt float64) *TextStream {
	o := &TextStream{path: path}
	io.Ff(&o.buf, "# component=%s\n", c)
	io.Ff(&o.buf, "# location=%g,%g,%g\n", loc[0], loc[1], loc[2])
	io.Ff(&o.buf, "# dt=%g\n", dt)
	io.Ff(&o.buf, "# n t re im\n")
	return o
}

// WriteSample appends one sample line (spec.md §6: half-integer step
// count, time, real and imaginary parts).
func (o *TextStream) WriteSample(n, t float64, value complex128) error {
	io.Ff(&o.buf, "%g %23.15e %23.15e %23.15e\n", n, t, real(value), imag(value))
	return nil
}

// Close flushes the accumulated buffer to disk.
func (o *TextStream) Close() error {
	return io.WriteFileV(o.path, &o.buf)
}

// Snapshot is a binary field snapshot taken at a single half-step, keyed
// by component and step (spec.md §6 "binary snapshot"). It holds the
// whole local array of one component; it carries no slab index. It is
// encoded with gosl/utl's gob-based codec the way
// ele/solid/rjoint.go encodes/decodes internal state with utl.Encoder/
// utl.Decoder.
type Snapshot struct {
	Component field.Component
	N         float64
	Nx, Ny, Nz int
	Values    []complex128
}

// NewSnapshot copies f's contents into a Snapshot at half-step n.
func NewSnapshot(c field.Component, n float64, f *field.Array3) *Snapshot {
	nx, ny, nz := f.Shape()
	vals := make([]complex128, 0, nx*ny*nz)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				vals = append(vals, f.Get(i, j, k))
			}
		}
	}
	return &Snapshot{Component: c, N: n, Nx: nx, Ny: ny, Nz: nz, Values: vals}
}

// Real reports whether every value carries a zero imaginary part, the
// invariant a non-Bloch run must preserve (spec.md §3 invariant 5).
func (o *Snapshot) Real() bool {
	for _, v := range o.Values {
		if math.Abs(imag(v)) > 1e-12 {
			return false
		}
	}
	return true
}

// Encode writes the snapshot with enc, mirroring
// ele/solid/rjoint.go's Encode(enc utl.Encoder) error { return
// enc.Encode(o.States) }.
func (o *Snapshot) Encode(enc utl.Encoder) error {
	return enc.Encode(o)
}

// Decode reads a snapshot back with dec.
func (o *Snapshot) Decode(dec utl.Decoder) error {
	return dec.Decode(o)
}
