// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package source supplies the pointwise source descriptors of spec.md C3:
// Continuous (CW), Gaussian (pulsed), Dipole (single-cell point source),
// and PlaneWave (whole-face injection). Each composes into a material
// table by wrapping its target cells' ele.Updater in an
// ele.SourceUpdater, mirroring how ele/naturalbcs.go attaches a
// time-function to a boundary condition via dbf.T/fun.TimeSpace.
package source

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
)

// Envelope gives the complex amplitude of a source at physical time t.
type Envelope interface {
	Amplitude(t float64) complex128
}

// Continuous is a continuous (CW) envelope: amplitude*cos(2*pi*freq*t +
// phase). The oscillatory part is built with gosl's fun.New("cos", ...)
// time-function factory, the same one inp/func.go uses to resolve a
// FuncData entry's Type into a fun.TimeSpace.
type Continuous struct {
	amplitude float64
	cos       fun.TimeSpace
}

// NewContinuous returns a continuous-wave envelope at the given
// frequency (cycles per unit time) and phase (radians).
func NewContinuous(amplitude, freq, phase float64) *Continuous {
	cos, err := fun.New("cos", dbf.Params{
		&dbf.P{N: "a", V: 1},
		&dbf.P{N: "b", V: 2 * math.Pi * freq},
		&dbf.P{N: "c", V: phase},
	})
	if err != nil {
		chk.Panic("source: cannot build continuous-wave function: %v", err)
	}
	return &Continuous{amplitude: amplitude, cos: cos}
}

// Amplitude returns amplitude*cos(2*pi*freq*t+phase).
func (o *Continuous) Amplitude(t float64) complex128 {
	return complex(o.amplitude*o.cos.F(t, nil), 0)
}

// Gaussian is a pulsed envelope: a Gaussian-in-time bump optionally
// modulated by a carrier frequency, amplitude*exp(-((t-t0)/width)^2/2)
// times cos(2*pi*freq*t) when freq>0. No "gaussian" time-function kind
// was found among gosl/fun's registered types in the retrieved sources
// (only cte/lin/rmp/cos and similar were observed), so this envelope is
// evaluated directly rather than through fun.New -- see DESIGN.md.
type Gaussian struct {
	amplitude, t0, width, freq float64
}

// NewGaussian returns a Gaussian pulse centered at t0 with the given
// standard deviation (width) and optional carrier frequency (0 = baseband).
func NewGaussian(amplitude, t0, width, freq float64) *Gaussian {
	if width <= 0 {
		chk.Panic("gaussian envelope width must be positive, got %v", width)
	}
	return &Gaussian{amplitude: amplitude, t0: t0, width: width, freq: freq}
}

// Amplitude returns the Gaussian envelope value at time t.
func (o *Gaussian) Amplitude(t float64) complex128 {
	z := (t - o.t0) / o.width
	env := o.amplitude * math.Exp(-0.5*z*z)
	if o.freq == 0 {
		return complex(env, 0)
	}
	return complex(env*math.Cos(2*math.Pi*o.freq*t), 0)
}
