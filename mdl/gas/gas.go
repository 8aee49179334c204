// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas implements the ideal-gas constants shared by compressor models
package gas

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// IdealGas holds the inlet state and properties of a calorically perfect gas.
// The values are set once by Init and only read afterwards.
//   T2/T1 = (P2/P1)^((γ-1)/γ)   and   ρ = p/(R・T)
type IdealGas struct {
	T1    float64 // inlet (stagnation) temperature [K]
	P1    float64 // inlet pressure [Pa]
	R     float64 // specific gas constant [J/(kg・K)]
	Cp    float64 // specific heat at constant pressure [J/(kg・K)]
	Gamma float64 // ratio of specific heats [-]
}

// Init initialises this structure
func (o *IdealGas) Init(prms dbf.Params) (err error) {
	o.Gamma = 1.4
	for _, p := range prms {
		switch p.N {
		case "T1":
			o.T1 = p.V
		case "P1":
			o.P1 = p.V
		case "R":
			o.R = p.V
		case "Cp":
			o.Cp = p.V
		case "gamma":
			o.Gamma = p.V
		default:
			return chk.Err("gas: parameter named %q is invalid", p.N)
		}
	}
	if o.T1 <= 0 || o.P1 <= 0 || o.R <= 0 || o.Cp <= 0 {
		return chk.Err("gas: T1, P1, R and Cp must be positive. T1=%g, P1=%g, R=%g, Cp=%g", o.T1, o.P1, o.R, o.Cp)
	}
	if o.Gamma <= 1 {
		return chk.Err("gas: gamma must be greater than 1. gamma=%g", o.Gamma)
	}
	return
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns example of parameters (dry air at standard conditions);
//              othewise returns current parameters
func (o IdealGas) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "T1", V: 298},     // [K]
			&dbf.P{N: "P1", V: 1.013e5}, // [Pa]
			&dbf.P{N: "R", V: 287},      // [J/(kg・K)]
			&dbf.P{N: "Cp", V: 1010},    // [J/(kg・K)]
			&dbf.P{N: "gamma", V: 1.4},  // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "T1", V: o.T1},
		&dbf.P{N: "P1", V: o.P1},
		&dbf.P{N: "R", V: o.R},
		&dbf.P{N: "Cp", V: o.Cp},
		&dbf.P{N: "gamma", V: o.Gamma},
	}
}

// Air returns dry air at standard inlet conditions
func Air() *IdealGas {
	o := new(IdealGas)
	err := o.Init(o.GetPrms(true))
	if err != nil {
		chk.Panic("%v", err)
	}
	return o
}

// Exponent returns (γ-1)/γ
func (o IdealGas) Exponent() float64 {
	return (o.Gamma - 1.0) / o.Gamma
}

// IsentropicTemp computes the temperature reached by isentropic compression from (T1,P1) to p
func (o IdealGas) IsentropicTemp(p float64) float64 {
	return o.T1 * math.Pow(p/o.P1, o.Exponent())
}

// Density computes ρ = p/(R・T)
func (o IdealGas) Density(p, T float64) float64 {
	return p / (o.R * T)
}
