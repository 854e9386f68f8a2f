// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"testing"

	"github.com/cpmech/gofdtd/ele"
	"github.com/cpmech/gofdtd/field"
	"github.com/cpmech/gosl/chk"
)

func Test_dielectric01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dielectric01: vacuum carries unit coefficients")

	v := Vacuum()
	if v.Epsilon() != 1 || v.Mu() != 1 {
		tst.Errorf("vacuum should have eps=mu=1, got eps=%v mu=%v", v.Epsilon(), v.Mu())
	}
}

func Test_dielectric02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dielectric02: sub-cell blend sits strictly between the two coefficients")

	d := NewDielectric(12, 1)
	below := Vacuum()
	u := d.PwMaterial(field.Ex, [3]int{0, 0, 0}, [3]float64{}, below, false)
	eu, ok := u.(electricUpdater)
	if !ok {
		tst.Fatal("expected electricUpdater")
	}
	if eu.epsilon <= 1 || eu.epsilon >= 12 {
		tst.Errorf("blended epsilon should sit strictly between 1 and 12, got %v", eu.epsilon)
	}
}

func Test_dielectric03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dielectric03: no blend when below is nil")

	d := NewDielectric(12, 1)
	u := d.PwMaterial(field.Ez, [3]int{0, 0, 0}, [3]float64{}, nil, false)
	eu, ok := u.(electricUpdater)
	if !ok {
		tst.Fatal("expected electricUpdater")
	}
	if eu.epsilon != 12 {
		tst.Errorf("no-below epsilon should be the bulk value 12, got %v", eu.epsilon)
	}
}

func Test_dielectric04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dielectric04: registry builds vacuum and dielectric by name")

	reg := ele.NewRegistry()
	Register(reg)
	m, err := reg.New("dielectric", map[string]float64{"epsilon": 4})
	if err != nil {
		tst.Fatalf("registry build failed: %v", err)
	}
	if m.Epsilon() != 4 {
		tst.Errorf("registry-built dielectric should carry epsilon=4, got %v", m.Epsilon())
	}
	if _, err := reg.New("vacuum", nil); err != nil {
		tst.Errorf("registry build of vacuum failed: %v", err)
	}
	if _, err := reg.New("no-such-kind", nil); err == nil {
		tst.Errorf("registry should reject an unknown kind")
	}
}

func Test_blend01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("blend01: harmonic blend reduces to endpoints at frac 0 and 1")

	if v := blend(12, 1, 0); v != 1 {
		tst.Errorf("frac=0 should return below, got %v", v)
	}
	if v := blend(12, 1, 1); v != 12 {
		tst.Errorf("frac=1 should return mat, got %v", v)
	}
}
