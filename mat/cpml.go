// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"

	"github.com/cpmech/gofdtd/ele"
	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gosl/chk"
)

// CPML is the convolutional perfectly matched layer of spec.md §4.2: an
// absorbing material applied within Thickness world-units of either end
// of Axis, grading the stretching/loss profile polynomially from the
// layer's inner edge (no absorption) to its outer edge (SigmaMax,
// KappaMax). Interior cells (outside the layer) behave as a plain
// Dielectric. Each electric or magnetic updater carries one ADE
// convolution state (psi) per curl term differenced along Axis (Roden &
// Gedney's CPML recursion).
type CPML struct {
	epsilon, mu float64
	axis        field.Axis
	loBound     float64
	hiBound     float64
	thickness   float64
	m           float64
	sigmaMax    float64
	kappaMax    float64
	alphaMax    float64
}

// NewCPML returns a CPML layer along axis, absorbing within thickness
// world-units of the domain boundaries [loBound,hiBound] on that axis.
// Grading order m and the profile maxima follow the standard defaults
// (m=3, kappaMax=15, alphaMax=0.05) when zero is passed.
func NewCPML(eps, mu float64, axis field.Axis, loBound, hiBound, thickness float64, m, sigmaMax, kappaMax, alphaMax float64) *CPML {
	if eps <= 0 || mu <= 0 {
		chk.Panic("cpml epsilon and mu must be positive, got eps=%v mu=%v", eps, mu)
	}
	if thickness <= 0 {
		chk.Panic("cpml thickness must be positive, got %v", thickness)
	}
	if m == 0 {
		m = 3
	}
	if kappaMax == 0 {
		kappaMax = 15
	}
	if alphaMax == 0 {
		alphaMax = 0.05
	}
	if sigmaMax == 0 {
		sigmaMax = (m + 1) / (150 * math.Pi * thickness)
	}
	return &CPML{epsilon: eps, mu: mu, axis: axis, loBound: loBound, hiBound: hiBound,
		thickness: thickness, m: m, sigmaMax: sigmaMax, kappaMax: kappaMax, alphaMax: alphaMax}
}

// Epsilon returns the background relative permittivity.
func (o *CPML) Epsilon() float64 { return o.epsilon }

// Mu returns the background relative permeability.
func (o *CPML) Mu() float64 { return o.mu }

// depthFraction returns how far x has penetrated into the absorbing
// layer at either boundary, 0 at the layer's inner edge, 1 at the
// domain's outer edge, and 0 (no absorption) in the interior.
func (o *CPML) depthFraction(x float64) float64 {
	lo := (o.loBound + o.thickness - x) / o.thickness
	hi := (x - (o.hiBound - o.thickness)) / o.thickness
	d := lo
	if hi > d {
		d = hi
	}
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}

// profile returns the loss conductivity, coordinate-stretching factor,
// and complex-frequency-shift factor at the given layer depth fraction.
func (o *CPML) profile(depth float64) (sigma, kappa, alpha float64) {
	if depth <= 0 {
		return 0, 1, 0
	}
	sigma = o.sigmaMax * math.Pow(depth, o.m)
	kappa = 1 + (o.kappaMax-1)*math.Pow(depth, o.m)
	alpha = o.alphaMax * math.Pow(1-depth, o.m)
	return
}

// PwMaterial returns the CPML updater for component c, precomputing the
// convolution coefficients for whichever of c's two differenced axes
// coincide with the layer's absorbing axis.
func (o *CPML) PwMaterial(c field.Component, idx [3]int, world [3]float64, below ele.Material, cmplx bool) ele.Updater {
	da, db := c.Tangential()
	depth := o.depthFraction(world[o.axis])
	sigma, kappa, alpha := o.profile(depth)
	u := &cpmlUpdater{c: c, epsilon: o.epsilon, mu: o.mu, onDA: da == o.axis, onDB: db == o.axis,
		sigma: sigma, kappa: kappa, alpha: alpha}
	return u
}

// cpmlUpdater is the per-cell CPML state for one field component. onDA/
// onDB mark which differenced axis, if either, is the layer's axis; both
// are false when the PML axis is the component's own axis. Outside the
// layer sigma=0 and kappa=1, so stretch passes the curl term through and
// the updater behaves like a plain Dielectric.
type cpmlUpdater struct {
	c                    field.Component
	epsilon, mu          float64
	onDA, onDB           bool
	sigma, kappa, alpha  float64
	psiDA, psiDB         complex128
}

func (o *cpmlUpdater) stretch(raw complex128, psi *complex128, dt float64) complex128 {
	if o.sigma == 0 && o.kappa == 1 {
		return raw
	}
	b := math.Exp(-(o.sigma/o.kappa + o.alpha) * dt)
	var a float64
	denom := o.kappa * (o.sigma + o.kappa*o.alpha)
	if denom != 0 {
		a = o.sigma * (b - 1) / denom
	}
	*psi = complex(b, 0)**psi + complex(a, 0)*raw
	return raw/complex(o.kappa, 0) + *psi
}

func (o *cpmlUpdater) Update(f, h1, h2 *field.Array3, i, j, k int, da, db, dt, nHalf float64) {
	idx := [3]int{i, j, k}
	h1lo, h1hi, h2lo, h2hi := field.CurlSamples(o.c, idx, h1, h2)
	termA := (h1hi - h1lo) / complex(da, 0)
	termB := (h2hi - h2lo) / complex(db, 0)
	if o.onDA {
		termA = o.stretch(termA, &o.psiDA, dt)
	}
	if o.onDB {
		termB = o.stretch(termB, &o.psiDB, dt)
	}
	if o.c.IsElectric() {
		f.Add(i, j, k, complex(dt/o.epsilon, 0)*(termA-termB))
		return
	}
	f.Add(i, j, k, complex(-dt/o.mu, 0)*(termA-termB))
}

func registerCPML(reg *ele.Registry) {
	reg.Register("cpml", func(prms map[string]float64) (ele.Material, error) {
		eps := prms["epsilon"]
		if eps == 0 {
			eps = 1
		}
		mu := prms["mu"]
		if mu == 0 {
			mu = 1
		}
		axis := field.Axis(int(prms["axis"]))
		return NewCPML(eps, mu, axis, prms["lo_bound"], prms["hi_bound"], prms["thickness"],
			prms["m"], prms["sigma_max"], prms["kappa_max"], prms["alpha_max"]), nil
	})
}
