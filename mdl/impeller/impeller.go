// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package impeller implements first-order sizing of centrifugal compressor impellers
//  Assumptions:
//   (1) isentropic compression of an ideal gas from the inlet state
//   (2) radial outflow through an annulus of height h and circumference π・D2
//   (3) outlet radial velocity equal to half the tip speed
package impeller

import (
	"math"

	"github.com/ChrisCheang/Bladeless-Drone-DMT/mdl/gas"
	"github.com/cpmech/gosl/chk"
)

// SgAir is the specific gravity of air relative to water used by the pump-head analogy
const SgAir = 0.00121

// Design holds the design parameters of one impeller
type Design struct {
	P2   float64 // outlet pressure [Pa]
	Mdot float64 // mass flow rate [kg/s]
	D1   float64 // inlet diameter [m]
	D2   float64 // outlet diameter [m]
	H    float64 // outlet blade height [m]
}

// Validate checks that all fields are positive and finite
func (o Design) Validate() error {
	vals := []float64{o.P2, o.Mdot, o.D1, o.D2, o.H}
	keys := []string{"P2", "mdot", "D1", "D2", "h"}
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return chk.Err("impeller design: %s must be positive and finite. %s=%g", keys[i], keys[i], v)
		}
	}
	return nil
}

// Derived holds all quantities derived from a design
type Derived struct {
	T2       float64 // outlet temperature [K]
	Rho      float64 // outlet density [kg/m³]
	Head     float64 // pump-analogy head [m]
	Omega    float64 // angular velocity [rad/s]
	OmegaRPM float64 // angular velocity [rpm]
	C1       float64 // inlet absolute velocity [m/s]
	C2       float64 // outlet radial velocity estimate [m/s]
	Power    float64 // shaft power [W]
	Thrust   float64 // axial thrust [N]
}

// Finite returns an error if any derived quantity is NaN or infinite
func (o Derived) Finite() error {
	vals := []float64{o.T2, o.Rho, o.Head, o.Omega, o.OmegaRPM, o.C1, o.C2, o.Power, o.Thrust}
	keys := []string{"T2", "rho", "head", "omega", "omegaRPM", "C1", "C2", "power", "thrust"}
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return chk.Err("impeller: %s is not finite (%g)", keys[i], v)
		}
	}
	return nil
}

// Model evaluates the sizing relations for a given gas
type Model struct {
	Gas *gas.IdealGas
}

// New returns a new model using gas g; dry air is used if g is nil
func New(g *gas.IdealGas) *Model {
	if g == nil {
		g = gas.Air()
	}
	return &Model{Gas: g}
}

// OutletTemperature computes T2 = T1・(P2/P1)^((γ-1)/γ)
func (o Model) OutletTemperature(d Design) float64 {
	return o.Gas.IsentropicTemp(d.P2)
}

// OutletDensity computes ρ = P2/(R・T2)
func (o Model) OutletDensity(d Design) float64 {
	return o.Gas.Density(d.P2, o.OutletTemperature(d))
}

// Head computes the pressure rise as an equivalent pump head
//  see https://www.engineeringtoolbox.com/pump-head-pressure-d_663.html
func (o Model) Head(d Design) float64 {
	return ((d.P2 - o.Gas.P1) / 1e5) / (0.0981 * SgAir)
}

// AngularVelocity computes ω [rad/s] from continuity through the outlet annulus
//   mdot = ρ・(π・D2・h)・Cr2   with   Cr2 = ω・D2/4
func (o Model) AngularVelocity(d Design) float64 {
	return 4.0 * d.Mdot / (d.D2 * d.D2 * o.OutletDensity(d) * d.H * math.Pi)
}

// AngularVelocityRPM computes ω in revolutions per minute
func (o Model) AngularVelocityRPM(d Design) float64 {
	return o.AngularVelocity(d) * 60.0 / (2.0 * math.Pi)
}

// InletAbsoluteVelocity computes C1 from continuity through the inlet disk
func (o Model) InletAbsoluteVelocity(d Design) float64 {
	r1 := d.D1 / 2.0
	return d.Mdot / (o.OutletDensity(d) * math.Pi * r1 * r1)
}

// TipSpeed computes U2 = ω・D2/2
func (o Model) TipSpeed(d Design) float64 {
	return 0.5 * d.D2 * o.AngularVelocity(d)
}

// OutletRadialVelocity estimates C2 as half the tip speed
func (o Model) OutletRadialVelocity(d Design) float64 {
	return 0.25 * d.D2 * o.AngularVelocity(d)
}

// ShaftPower computes P = -mdot・(Cp・(T2-T1) + C2²/2 - C1²/2)
//  Note: C2 is the radial estimate, not the absolute outlet velocity.
//        The sign follows the dominant term: P < 0 when Cp・(T2-T1) + C2²/2 exceeds C1²/2
//        (work done on the gas), P > 0 when the inlet kinetic term C1²/2 dominates,
//        as for small inlets such as D1 = D2/3 with D2 = 0.05 (P ≈ +368 W)
func (o Model) ShaftPower(d Design) float64 {
	T2 := o.OutletTemperature(d)
	C1 := o.InletAbsoluteVelocity(d)
	C2 := o.OutletRadialVelocity(d)
	return -d.Mdot * (o.Gas.Cp*(T2-o.Gas.T1) + 0.5*C2*C2 - 0.5*C1*C1)
}

// AxialThrust computes the inlet momentum flux mdot・C1
func (o Model) AxialThrust(d Design) float64 {
	return d.Mdot * o.InletAbsoluteVelocity(d)
}

// Calc computes all derived quantities
func (o Model) Calc(d Design) (res Derived) {
	res.T2 = o.OutletTemperature(d)
	res.Rho = o.OutletDensity(d)
	res.Head = o.Head(d)
	res.Omega = o.AngularVelocity(d)
	res.OmegaRPM = o.AngularVelocityRPM(d)
	res.C1 = o.InletAbsoluteVelocity(d)
	res.C2 = o.OutletRadialVelocity(d)
	res.Power = o.ShaftPower(d)
	res.Thrust = o.AxialThrust(d)
	return
}
