// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// CurlSamples returns the four partner-field samples needed to form the
// standard Yee curl update of component c at local cell idx (spec.md
// §4.2): h1Lo/h1Hi bracket the CurlPartners.Plus field along the DA axis,
// h2Lo/h2Hi bracket CurlPartners.Minus along DB. A caller combines them as
//
//	f[idx] += coeff*((h1Hi-h1Lo)/dDA - (h2Hi-h2Lo)/dDB)
//
// The index arithmetic accounts for the storage convention derived from
// the reference engine's halo layout: an electric component's tangential
// axes carry their halo row at the trailing (high) index while a magnetic
// component's carry it at the leading (low) index, so a fixed per-axis
// shift (not a naive "same index" read) is required to line up two
// opposite-type components' staggered samples on every shared axis:
//
//   - along c's own axis: electric components read the partner one cell
//     higher; magnetic components read the partner at the same index.
//   - along the partner's own axis (the transverse, non-differenced one):
//     electric components read the partner at the same index; magnetic
//     components read the partner one cell lower.
//   - along the differenced axis itself: electric components bracket
//     [idx, idx+1]; magnetic components bracket [idx-1, idx].
func CurlSamples(c Component, idx [3]int, h1arr, h2arr *Array3) (h1Lo, h1Hi, h2Lo, h2Hi complex128) {
	own := c.Axis()
	da, db := c.Tangential()

	var shiftOwn, shiftOther, bracketLo int
	if c.IsElectric() {
		shiftOwn, shiftOther, bracketLo = 1, 0, 0
	} else {
		shiftOwn, shiftOther, bracketLo = 0, -1, -1
	}

	h1Base := idx
	h1Base[own] += shiftOwn
	h1Base[db] += shiftOther
	h1LoIdx, h1HiIdx := h1Base, h1Base
	h1LoIdx[da] += bracketLo
	h1HiIdx[da] += bracketLo + 1
	h1Lo = h1arr.Get(h1LoIdx[0], h1LoIdx[1], h1LoIdx[2])
	h1Hi = h1arr.Get(h1HiIdx[0], h1HiIdx[1], h1HiIdx[2])

	h2Base := idx
	h2Base[own] += shiftOwn
	h2Base[da] += shiftOther
	h2LoIdx, h2HiIdx := h2Base, h2Base
	h2LoIdx[db] += bracketLo
	h2HiIdx[db] += bracketLo + 1
	h2Lo = h2arr.Get(h2LoIdx[0], h2LoIdx[1], h2LoIdx[2])
	h2Hi = h2arr.Get(h2HiIdx[0], h2HiIdx[1], h2HiIdx[2])
	return
}
