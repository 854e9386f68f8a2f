// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"github.com/cpmech/gofdtd/ele"
	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gosl/chk"
)

// Drude is the dispersive material of spec.md §4.2: a free-electron gas
// of plasma frequency OmegaP and collision rate Gamma superposed on a
// background dielectric. Its electric updater carries one auxiliary
// polarization-current scalar per cell, advanced by an explicit one-pole
// auxiliary-differential-equation (ADE) recurrence alongside the usual
// Yee update; its magnetic updater is the ordinary constant-mu update
// since the dispersion only couples to E (spec.md §4.2 "carries auxiliary
// polarization state updated per step").
type Drude struct {
	epsilon float64
	mu      float64
	omegaP  float64
	gamma   float64
}

// NewDrude returns a Drude material with background permittivity/
// permeability eps,mu, plasma frequency omegaP, and collision rate gamma
// (all in the solver's normalized units, eps0=mu0=c=1).
func NewDrude(eps, mu, omegaP, gamma float64) *Drude {
	if eps <= 0 || mu <= 0 {
		chk.Panic("drude epsilon and mu must be positive, got eps=%v mu=%v", eps, mu)
	}
	if omegaP < 0 || gamma < 0 {
		chk.Panic("drude omegaP and gamma must be non-negative, got omegaP=%v gamma=%v", omegaP, gamma)
	}
	return &Drude{epsilon: eps, mu: mu, omegaP: omegaP, gamma: gamma}
}

// Epsilon returns the background relative permittivity.
func (o *Drude) Epsilon() float64 { return o.epsilon }

// Mu returns the background relative permeability.
func (o *Drude) Mu() float64 { return o.mu }

// PwMaterial returns the dispersive electric updater, or the ordinary
// constant-mu magnetic updater, for component c.
func (o *Drude) PwMaterial(c field.Component, idx [3]int, world [3]float64, below ele.Material, cmplx bool) ele.Updater {
	if c.IsMagnetic() {
		return magneticUpdater{c: c, mu: o.mu}
	}
	return &drudeUpdater{c: c, epsilon: o.epsilon, omegaP: o.omegaP, gamma: o.gamma}
}

// drudeUpdater is the per-cell ADE state for one electric component.
type drudeUpdater struct {
	c             field.Component
	epsilon       float64
	omegaP, gamma float64
	j             complex128 // auxiliary polarization current
}

func (o *drudeUpdater) Update(f, h1, h2 *field.Array3, i, j, k int, da, db, dt, nHalf float64) {
	idx := [3]int{i, j, k}
	h1lo, h1hi, h2lo, h2hi := field.CurlSamples(o.c, idx, h1, h2)
	curl := (h1hi-h1lo)/complex(da, 0) - (h2hi-h2lo)/complex(db, 0)
	dtC := complex(dt, 0)
	f.Add(i, j, k, dtC/complex(o.epsilon, 0)*(curl-o.j))
	e := f.Get(i, j, k)
	o.j += dtC * (complex(o.omegaP*o.omegaP, 0)*e - complex(o.gamma, 0)*o.j)
}

func registerDrude(reg *ele.Registry) {
	reg.Register("drude", func(prms map[string]float64) (ele.Material, error) {
		eps := prms["epsilon"]
		if eps == 0 {
			eps = 1
		}
		mu := prms["mu"]
		if mu == 0 {
			mu = 1
		}
		return NewDrude(eps, mu, prms["omega_p"], prms["gamma"]), nil
	})
}
