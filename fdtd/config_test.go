// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"testing"

	"github.com/cpmech/gofdtd/sched"
	"github.com/cpmech/gosl/chk"
)

func Test_config01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config01: dt above the Courant bound is rejected at construction")

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("Build should panic when Dt exceeds the Courant bound")
		}
	}()
	cfg := &Config{Lx: 4, Ly: 4, Lz: 4, Resolution: 10, Mode: sched.Mode3D, Dt: 1.0}
	cfg.Build()
}

func Test_config02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config02: an unset Dt is filled in from CourantRatio*bound")

	cfg := &Config{Lx: 4, Ly: 4, Lz: 4, Resolution: 10, Mode: sched.Mode3D, CourantRatio: 0.5}
	cfg.Build()
	if cfg.Dt <= 0 {
		tst.Errorf("Build should have filled in a positive Dt, got %v", cfg.Dt)
	}
}

func Test_config03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config03: a wavevector component on an inactive axis is rejected")

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("Build should panic when K sets a component outside the mode's active axes")
		}
	}()
	cfg := &Config{Lx: 4, Ly: 4, Lz: 0, Resolution: 10, Mode: sched.TMz, Bloch: true, K: [3]float64{0, 0, 0.3}}
	cfg.Build()
}
