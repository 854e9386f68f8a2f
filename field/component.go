// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field defines the closed set of Yee-grid field components and
// spatial axes shared by every other package in gofdtd.
package field

// Axis is one of the three Cartesian directions.
type Axis int

// axis sentinels
const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return "?"
}

// Component is one of the six Yee-staggered field components: the three
// electric components Ex,Ey,Ez and the three magnetic components
// Hx,Hy,Hz. It is a closed tagged enumeration (Design Notes: "global
// singletons for field-component identity") rather than a set of empty
// marker types, so it carries a small integer usable for MPI tag
// derivation and axis lookup.
type Component int

// component sentinels, in the order the scheduler visits them
const (
	Ex Component = iota
	Ey
	Ez
	Hx
	Hy
	Hz
)

func (c Component) String() string {
	switch c {
	case Ex:
		return "Ex"
	case Ey:
		return "Ey"
	case Ez:
		return "Ez"
	case Hx:
		return "Hx"
	case Hy:
		return "Hy"
	case Hz:
		return "Hz"
	}
	return "?"
}

// Tag returns the small integer identity used to derive MPI message tags
// for halo exchanges of this component (Design Notes).
func (c Component) Tag() int { return int(c) }

// IsElectric reports whether c is one of Ex,Ey,Ez.
func (c Component) IsElectric() bool { return c == Ex || c == Ey || c == Ez }

// IsMagnetic reports whether c is one of Hx,Hy,Hz.
func (c Component) IsMagnetic() bool { return !c.IsElectric() }

// Axis returns the component's own direction: Ex/Hx->X, Ey/Hy->Y, Ez/Hz->Z.
func (c Component) Axis() Axis {
	switch c {
	case Ex, Hx:
		return X
	case Ey, Hy:
		return Y
	default:
		return Z
	}
}

// Tangential returns the two axes transverse to c's own axis, in a fixed
// cyclic order (own+1, own+2 mod 3).
func (c Component) Tangential() (a, b Axis) {
	switch c.Axis() {
	case X:
		return Y, Z
	case Y:
		return Z, X
	default:
		return X, Y
	}
}

// OffsetAxes returns, for each of the three axes, whether the component's
// staggered sample sits at the half-cell offset on that axis. Electric
// components are offset on their own axis only; magnetic components are
// offset on both tangential axes. This single rule reproduces the table
// in spec.md §3 for all six components.
func (c Component) OffsetAxes() (offX, offY, offZ bool) {
	own := c.Axis()
	if c.IsElectric() {
		return own == X, own == Y, own == Z
	}
	return own != X, own != Y, own != Z
}

// Curl partners: the update of component F reads two opposite-type field
// components ("curl plus" and "curl minus") and two spacings, per the
// standard Yee update (spec.md §4.2). CurlPartners returns them in the
// (H1, H2, dA, dB) order the original engine used; the scheduler reads
// each update's partner fields and spacings from it. The halo exchange
// list comes from Tangential instead.
type CurlPartners struct {
	Plus, Minus Component
	DA, DB      Axis
}

// Partners returns the curl-partner description for component c.
func (c Component) Partners() CurlPartners {
	switch c {
	case Ex:
		return CurlPartners{Hz, Hy, Y, Z}
	case Ey:
		return CurlPartners{Hx, Hz, Z, X}
	case Ez:
		return CurlPartners{Hy, Hx, X, Y}
	case Hx:
		return CurlPartners{Ez, Ey, Y, Z}
	case Hy:
		return CurlPartners{Ex, Ez, Z, X}
	default: // Hz
		return CurlPartners{Ey, Ex, X, Y}
	}
}

// All lists the six components in canonical order; useful for table-driven
// loops over the whole field set.
var All = [6]Component{Ex, Ey, Ez, Hx, Hy, Hz}
