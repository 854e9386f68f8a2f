// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat supplies concrete ele.Material kinds: constant-coefficient
// dielectric/vacuum, Drude dispersive, and CPML absorbing layers
// (spec.md §4.2). Each kind registers itself into an ele.Registry via
// Register so driver code builds materials by name, the way
// mdl/generic.go registers "generic" into mdl's allocator map.
package mat

import "github.com/cpmech/gofdtd/field"

// electricUpdater applies the standard Yee E-update for one cell of
// component c with constant coefficient dt/epsilon.
type electricUpdater struct {
	c       field.Component
	epsilon float64
}

func (o electricUpdater) Update(f, h1, h2 *field.Array3, i, j, k int, da, db, dt, nHalf float64) {
	idx := [3]int{i, j, k}
	h1lo, h1hi, h2lo, h2hi := field.CurlSamples(o.c, idx, h1, h2)
	coeff := complex(dt/o.epsilon, 0)
	f.Add(i, j, k, coeff*((h1hi-h1lo)/complex(da, 0)-(h2hi-h2lo)/complex(db, 0)))
}

// magneticUpdater applies the standard Yee H-update for one cell of
// component c with constant coefficient -dt/mu (Faraday's law).
type magneticUpdater struct {
	c  field.Component
	mu float64
}

func (o magneticUpdater) Update(f, h1, h2 *field.Array3, i, j, k int, da, db, dt, nHalf float64) {
	idx := [3]int{i, j, k}
	h1lo, h1hi, h2lo, h2hi := field.CurlSamples(o.c, idx, h1, h2)
	coeff := complex(-dt/o.mu, 0)
	f.Add(i, j, k, coeff*((h1hi-h1lo)/complex(da, 0)-(h2hi-h2lo)/complex(db, 0)))
}

// blend returns the sub-cell-averaged coefficient of two materials, per
// spec.md §4.2's "fraction of the staggered cell they occupy" averaging
// scheme. frac is the fraction of the cell occupied by mat (as opposed to
// below); harmonic averaging is used for permittivity/permeability since
// the staggered sample sits exactly on the material interface in the
// direction normal to it, the standard FDTD sub-cell rule.
func blend(mat, below, frac float64) float64 {
	if frac <= 0 {
		return below
	}
	if frac >= 1 {
		return mat
	}
	return 1 / (frac/mat + (1-frac)/below)
}
