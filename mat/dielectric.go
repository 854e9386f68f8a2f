// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"github.com/cpmech/gofdtd/ele"
	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gosl/chk"
)

// Dielectric is the constant-coefficient material of spec.md §4.2: a
// non-dispersive, non-conducting medium of permittivity Epsilon and
// permeability Mu. Vacuum is Dielectric{Epsilon: 1, Mu: 1} in the
// normalized units used throughout (eps0 = mu0 = c = 1, matching the
// reference engine's constants.py convention).
type Dielectric struct {
	epsilon float64
	mu      float64
}

// NewDielectric returns a dielectric of the given relative permittivity
// and permeability.
func NewDielectric(epsilon, mu float64) *Dielectric {
	if epsilon <= 0 || mu <= 0 {
		chk.Panic("dielectric epsilon and mu must be positive, got eps=%v mu=%v", epsilon, mu)
	}
	return &Dielectric{epsilon: epsilon, mu: mu}
}

// Vacuum returns the free-space dielectric (epsilon=mu=1).
func Vacuum() *Dielectric { return &Dielectric{epsilon: 1, mu: 1} }

// Epsilon returns the bulk relative permittivity.
func (o *Dielectric) Epsilon() float64 { return o.epsilon }

// Mu returns the bulk relative permeability.
func (o *Dielectric) Mu() float64 { return o.mu }

// PwMaterial returns the constant-coefficient Yee update for component c,
// sub-cell-averaging against below at a flat 50% split when below differs
// from this material's own coefficients (spec.md §4.2 interface averaging;
// the geometry collaborator does not currently report an occupied
// fraction, so the midpoint split is the grounded default -- see
// DESIGN.md).
func (o *Dielectric) PwMaterial(c field.Component, idx [3]int, world [3]float64, below ele.Material, cmplx bool) ele.Updater {
	eps, mu := o.epsilon, o.mu
	if below != nil {
		eps = blend(o.epsilon, below.Epsilon(), 0.5)
		mu = blend(o.mu, below.Mu(), 0.5)
	}
	if c.IsElectric() {
		return electricUpdater{c: c, epsilon: eps}
	}
	return magneticUpdater{c: c, mu: mu}
}

// Register installs the "dielectric" and "vacuum" kinds into reg.
func Register(reg *ele.Registry) {
	reg.Register("vacuum", func(prms map[string]float64) (ele.Material, error) {
		return Vacuum(), nil
	})
	reg.Register("dielectric", func(prms map[string]float64) (ele.Material, error) {
		eps, ok := prms["epsilon"]
		if !ok {
			eps = 1
		}
		mu, ok := prms["mu"]
		if !ok {
			mu = 1
		}
		return NewDielectric(eps, mu), nil
	})
	registerDrude(reg)
	registerCPML(reg)
}
