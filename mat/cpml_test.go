// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"testing"

	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gosl/chk"
)

func Test_cpml01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cpml01: depth fraction is zero in the interior and one at the outer edge")

	c := NewCPML(1, 1, field.X, -5, 5, 1, 0, 0, 0, 0)
	if d := c.depthFraction(0); d != 0 {
		tst.Errorf("interior depth fraction should be 0, got %v", d)
	}
	if d := c.depthFraction(5); d != 1 {
		tst.Errorf("outer-edge depth fraction should be 1, got %v", d)
	}
	if d := c.depthFraction(-5); d != 1 {
		tst.Errorf("opposite outer edge should also reach 1, got %v", d)
	}
}

func Test_cpml02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cpml02: profile has zero loss/unit kappa/zero alpha outside the layer")

	c := NewCPML(1, 1, field.X, -5, 5, 1, 0, 0, 0, 0)
	sigma, kappa, alpha := c.profile(0)
	if sigma != 0 || kappa != 1 || alpha != 0 {
		tst.Errorf("depth=0 profile should be (0,1,0), got (%v,%v,%v)", sigma, kappa, alpha)
	}
	sigma, kappa, _ = c.profile(1)
	if sigma != c.sigmaMax || kappa != c.kappaMax {
		tst.Errorf("depth=1 profile should reach the maxima, got sigma=%v kappa=%v", sigma, kappa)
	}
}

func Test_cpml03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cpml03: only the differenced axis matching the layer axis gets a convolution term")

	c := NewCPML(1, 1, field.X, -5, 5, 1, 0, 0, 0, 0)
	u := c.PwMaterial(field.Ey, [3]int{0, 0, 0}, [3]float64{4.5, 0, 0}, nil, false).(*cpmlUpdater)
	// Ey's tangential axes are Z,X; only the X one should be active here.
	if !u.onDB || u.onDA {
		tst.Errorf("expected only the X-axis term (DB for Ey) active, got onDA=%v onDB=%v", u.onDA, u.onDB)
	}
	if u.sigma == 0 {
		tst.Errorf("a point well inside the layer should have nonzero sigma")
	}
}
