// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gofdtd/field"

// Dummy is the no-op material substituted at the tangential boundary rows
// of every component's material table (spec.md §3, §4.3): the trailing
// rows for electric components, the leading rows for magnetic ones
// (isDummyRow). It carries the
// neighboring cell's epsilon/mu so that plotting/reporting code can still
// read a sensible coefficient there, but its updater never touches the
// field, which removes the need to special-case boundary rows in the
// inner update loops.
type Dummy struct {
	epsilon, mu float64
}

// NewDummy returns a Dummy material carrying the given coefficients.
func NewDummy(epsilon, mu float64) *Dummy { return &Dummy{epsilon: epsilon, mu: mu} }

// Epsilon returns the carried permittivity.
func (o *Dummy) Epsilon() float64 { return o.epsilon }

// Mu returns the carried permeability.
func (o *Dummy) Mu() float64 { return o.mu }

// PwMaterial returns the no-op updater for every component.
func (o *Dummy) PwMaterial(c field.Component, idx [3]int, world [3]float64, below Material, cmplx bool) Updater {
	return dummyUpdater{}
}

type dummyUpdater struct{}

func (dummyUpdater) Update(f, hPlus, hMinus *field.Array3, i, j, k int, da, db, dt, nHalf float64) {
}

// ProbeWriter receives one sample per call; probe.TextStream implements it
// for the plain-text probe format of spec.md §6.
type ProbeWriter interface {
	WriteSample(n, t float64, value complex128) error
}

// ProbeUpdater decorates an existing Updater, performing the wrapped
// update and then writing the resulting field value to a stream
// (spec.md §4.2/§4.3 "Probe"). Write errors are swallowed at the call
// site that installs the probe (probe placement is a soft failure per
// spec.md §7 error kind 3); ProbeUpdater itself reports them to Err so a
// caller who cares can inspect it.
type ProbeUpdater struct {
	Delegate Updater
	Writer   ProbeWriter
	Dt       float64
	Err      error
}

// Update performs the delegate update and then records the field value.
func (o *ProbeUpdater) Update(f, hPlus, hMinus *field.Array3, i, j, k int, da, db, dt, nHalf float64) {
	o.Delegate.Update(f, hPlus, hMinus, i, j, k, da, db, dt, nHalf)
	o.Err = o.Writer.WriteSample(nHalf, nHalf*dt, f.Get(i, j, k))
}

// SourceUpdater decorates an existing Updater with a source's
// contribution (spec.md §3, C3): a soft source runs the delegate and then
// adds its amplitude; a hard source overrides the field outright and
// skips the delegate, matching spec.md §3's "overrides the field there"
// wording.
type SourceUpdater struct {
	Delegate  Updater
	Amplitude func(nHalf float64) complex128
	Hard      bool
}

// Update applies the decorated source contribution.
func (o *SourceUpdater) Update(f, hPlus, hMinus *field.Array3, i, j, k int, da, db, dt, nHalf float64) {
	if !o.Hard {
		o.Delegate.Update(f, hPlus, hMinus, i, j, k, da, db, dt, nHalf)
	}
	v := o.Amplitude(nHalf)
	if o.Hard {
		f.Set(i, j, k, v)
	} else {
		f.Add(i, j, k, v)
	}
}
