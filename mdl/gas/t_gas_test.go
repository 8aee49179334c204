// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_gas01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gas01")

	air := Air()
	chk.Float64(tst, "T1", 1e-15, air.T1, 298)
	chk.Float64(tst, "P1", 1e-15, air.P1, 1.013e5)
	chk.Float64(tst, "R", 1e-15, air.R, 287)
	chk.Float64(tst, "Cp", 1e-15, air.Cp, 1010)
	chk.Float64(tst, "γ", 1e-15, air.Gamma, 1.4)
	chk.Float64(tst, "(γ-1)/γ", 1e-15, air.Exponent(), 0.4/1.4)

	T := air.IsentropicTemp(1.5e5)
	chk.Float64(tst, "T2", 1e-9, T, 298*math.Pow(1.5e5/1.013e5, 0.4/1.4))
	chk.Float64(tst, "ρ", 1e-15, air.Density(1.5e5, T), 1.5e5/(287*T))

	// current parameters round-trip
	var other IdealGas
	err := other.Init(air.GetPrms(false))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	if other != *air {
		tst.Errorf("parameters were not recovered: %+v != %+v\n", other, *air)
	}
}

func Test_gas02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gas02. invalid parameters")

	var g IdealGas
	prms := g.GetPrms(true)
	prms.Find("R").V = 0
	if err := g.Init(prms); err == nil {
		tst.Errorf("R=0 should fail\n")
		return
	}

	prms = g.GetPrms(true)
	prms.Find("gamma").V = 1.0
	if err := g.Init(prms); err == nil {
		tst.Errorf("gamma=1 should fail\n")
		return
	}

	if err := g.Init(dbf.Params{&dbf.P{N: "Tinlet", V: 300}}); err == nil {
		tst.Errorf("unknown parameter should fail\n")
	}

	// gamma defaults to 1.4 when omitted
	err := g.Init(dbf.Params{
		&dbf.P{N: "T1", V: 288.15},
		&dbf.P{N: "P1", V: 101325},
		&dbf.P{N: "R", V: 287.05},
		&dbf.P{N: "Cp", V: 1005},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "γ", 1e-15, g.Gamma, 1.4)
}
