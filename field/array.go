// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// Array3 is a dense row-major 3D array backing one field or material-table
// component. It always stores complex128: spec.md's real/complex duality
// (§3 invariant 3) is enforced by keeping the imaginary part at zero for
// non-Bloch runs rather than by keeping two storage types, the same way
// the original numpy-backed engine let a single dtype-parametric array
// carry both cases. MaxAbsImag checks the zero-imaginary invariant
// directly on real-mode runs (fdtd's Test_engine02).
type Array3 struct {
	Nx, Ny, Nz int
	data       []complex128
}

// NewArray3 allocates a zeroed array of the given shape.
func NewArray3(nx, ny, nz int) *Array3 {
	return &Array3{Nx: nx, Ny: ny, Nz: nz, data: make([]complex128, nx*ny*nz)}
}

func (a *Array3) index(i, j, k int) int {
	return (i*a.Ny+j)*a.Nz + k
}

// Shape returns the array's dimensions.
func (a *Array3) Shape() (int, int, int) { return a.Nx, a.Ny, a.Nz }

// Get returns the value at (i,j,k).
func (a *Array3) Get(i, j, k int) complex128 { return a.data[a.index(i, j, k)] }

// Set stores v at (i,j,k).
func (a *Array3) Set(i, j, k int, v complex128) { a.data[a.index(i, j, k)] = v }

// Add accumulates v into the cell at (i,j,k).
func (a *Array3) Add(i, j, k int, v complex128) { a.data[a.index(i, j, k)] += v }

// GetReal returns the real part at (i,j,k).
func (a *Array3) GetReal(i, j, k int) float64 { return real(a.Get(i, j, k)) }

// MaxAbsImag returns the largest |Im| over the whole array; a real-mode
// run must keep this at (or extremely near) zero (spec.md §8 invariant).
func (a *Array3) MaxAbsImag() float64 {
	var m float64
	for _, v := range a.data {
		if x := imagAbs(v); x > m {
			m = x
		}
	}
	return m
}

func imagAbs(v complex128) float64 {
	x := imag(v)
	if x < 0 {
		return -x
	}
	return x
}

// Fill sets every cell to v.
func (a *Array3) Fill(v complex128) {
	for i := range a.data {
		a.data[i] = v
	}
}

// The Face* methods below read and write a 2D face of a 3D array held
// fixed at one index along a given axis, used by the halo-exchange code.

// FaceAlongX extracts the (ny,nz) slab at x-index i.
func (a *Array3) FaceAlongX(i int) []complex128 {
	out := make([]complex128, a.Ny*a.Nz)
	for j := 0; j < a.Ny; j++ {
		for k := 0; k < a.Nz; k++ {
			out[j*a.Nz+k] = a.Get(i, j, k)
		}
	}
	return out
}

// SetFaceAlongX stores a (ny,nz) slab at x-index i.
func (a *Array3) SetFaceAlongX(i int, slab []complex128) {
	for j := 0; j < a.Ny; j++ {
		for k := 0; k < a.Nz; k++ {
			a.Set(i, j, k, slab[j*a.Nz+k])
		}
	}
}

// FaceAlongY extracts the (nx,nz) slab at y-index j.
func (a *Array3) FaceAlongY(j int) []complex128 {
	out := make([]complex128, a.Nx*a.Nz)
	for i := 0; i < a.Nx; i++ {
		for k := 0; k < a.Nz; k++ {
			out[i*a.Nz+k] = a.Get(i, j, k)
		}
	}
	return out
}

// SetFaceAlongY stores a (nx,nz) slab at y-index j.
func (a *Array3) SetFaceAlongY(j int, slab []complex128) {
	for i := 0; i < a.Nx; i++ {
		for k := 0; k < a.Nz; k++ {
			a.Set(i, j, k, slab[i*a.Nz+k])
		}
	}
}

// FaceAlongZ extracts the (nx,ny) slab at z-index k.
func (a *Array3) FaceAlongZ(k int) []complex128 {
	out := make([]complex128, a.Nx*a.Ny)
	for i := 0; i < a.Nx; i++ {
		for j := 0; j < a.Ny; j++ {
			out[i*a.Ny+j] = a.Get(i, j, k)
		}
	}
	return out
}

// SetFaceAlongZ stores a (nx,ny) slab at z-index k.
func (a *Array3) SetFaceAlongZ(k int, slab []complex128) {
	for i := 0; i < a.Nx; i++ {
		for j := 0; j < a.Ny; j++ {
			a.Set(i, j, k, slab[i*a.Ny+j])
		}
	}
}
