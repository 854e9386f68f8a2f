// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele defines the per-cell material/source contract (spec.md C2,
// C3, §4.2-§4.3): the Material and Updater interfaces, and the table
// builder that walks a grid component and asks the geometry collaborator
// for a material at every cell. Concrete material kinds live in package
// mat; ele only fixes the contract and the Dummy, ProbeUpdater and
// SourceUpdater decorators that compose over it, mirroring how ele/element.go fixes the
// Element contract while msolid/mdl supply concrete models in gofem.
package ele

import "github.com/cpmech/gofdtd/field"

// Material is the per-instance collaborator described in spec.md §6: it
// exposes immutable bulk coefficients and, for each of the six Yee
// components, a factory for that component's pointwise update operator.
type Material interface {
	Epsilon() float64
	Mu() float64
	PwMaterial(c field.Component, idx [3]int, world [3]float64, below Material, cmplx bool) Updater
}

// Updater is the pointwise update operator contract of spec.md §4.2: given
// the field being advanced and its two curl-partner fields, it mutates
// exactly one cell of F following the standard Yee stencil. da,db are the
// two transverse grid spacings matching the component's CurlPartners, dt
// is the time step, and nHalf is the current half-integer step count
// (needed by time-varying sources and dispersive auxiliary state).
type Updater interface {
	Update(f, hPlus, hMinus *field.Array3, i, j, k int, da, db, dt, nHalf float64)
}

// Registry is a name-keyed factory for Material kinds, mirroring the
// allocator-map idiom in ele/factory.go and mdl/generic/generic.go. It
// lets driver code and tests build materials by name without importing
// package mat's concrete types directly.
type Registry struct {
	allocators map[string]func(prms map[string]float64) (Material, error)
}

// NewRegistry returns an empty material-kind registry.
func NewRegistry() *Registry {
	return &Registry{allocators: make(map[string]func(map[string]float64) (Material, error))}
}

// Register adds a named material-kind allocator.
func (o *Registry) Register(name string, fcn func(prms map[string]float64) (Material, error)) {
	o.allocators[name] = fcn
}

// New allocates a material of the given kind name with the given
// parameters.
func (o *Registry) New(name string, prms map[string]float64) (Material, error) {
	fcn, ok := o.allocators[name]
	if !ok {
		return nil, errUnknownKind(name)
	}
	return fcn(prms)
}

type unknownKindError string

func (e unknownKindError) Error() string { return "ele: unknown material kind " + string(e) }

func errUnknownKind(name string) error { return unknownKindError(name) }
