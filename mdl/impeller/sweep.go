// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package impeller

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// keys of swept series
const (
	KeyOmega  = "omega"
	KeyPower  = "power"
	KeyThrust = "thrust"
)

// XLabel is the label of the swept variable
const XLabel = "Impeller Diameter (m)"

// Sweep defines a sweep over the outlet diameter D2 with D1 = D2/D1Ratio.
// P2, Mdot and H are held fixed for every sample.
type Sweep struct {
	P2      float64 // outlet pressure per sample [Pa]
	Mdot    float64 // mass flow rate per sample [kg/s]
	H       float64 // outlet blade height per sample [m]
	D2Start float64 // first outlet diameter [m]
	D2Stop  float64 // end of range, excluded [m]
	D2Step  float64 // increment [m]
	D1Ratio float64 // D2/D1 [-]
}

// DefaultSweep returns the reference sweep: D2 ∈ [0.05, 0.21) step 0.005, D1 = D2/3
func DefaultSweep() Sweep {
	return Sweep{
		P2:      1.5e5,
		Mdot:    0.1,
		H:       0.005,
		D2Start: 0.05,
		D2Stop:  0.21,
		D2Step:  0.005,
		D1Ratio: 3,
	}
}

// MaxSamples is the largest number of samples accepted by a sweep
const MaxSamples = 100000

// Validate checks the sweep range and fixed parameters
func (o Sweep) Validate() error {
	for _, v := range []float64{o.P2, o.Mdot, o.H, o.D2Start, o.D2Stop, o.D2Step, o.D1Ratio} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return chk.Err("sweep: parameters must be finite. P2=%g, mdot=%g, h=%g, start=%g, stop=%g, step=%g, ratio=%g",
				o.P2, o.Mdot, o.H, o.D2Start, o.D2Stop, o.D2Step, o.D1Ratio)
		}
	}
	if !(o.D2Step > 0) {
		return chk.Err("sweep: step must be positive. step=%g", o.D2Step)
	}
	if !(o.D2Stop > o.D2Start) {
		return chk.Err("sweep: range [%g, %g) is empty", o.D2Start, o.D2Stop)
	}
	if !(o.D2Start > 0) {
		return chk.Err("sweep: first diameter must be positive. start=%g", o.D2Start)
	}
	if !(o.P2 > 0) || !(o.Mdot > 0) || !(o.H > 0) || !(o.D1Ratio > 0) {
		return chk.Err("sweep: P2, mdot, h and D1 ratio must be positive. P2=%g, mdot=%g, h=%g, ratio=%g", o.P2, o.Mdot, o.H, o.D1Ratio)
	}
	if o.count() > MaxSamples {
		return chk.Err("sweep: range [%g, %g) with step %g exceeds %d samples", o.D2Start, o.D2Stop, o.D2Step, MaxSamples)
	}
	return nil
}

// Size returns the number of samples in [D2Start, D2Stop).
// Zero is returned for empty, non-finite or oversized ranges.
func (o Sweep) Size() int {
	if !(o.D2Step > 0) || !(o.D2Stop > o.D2Start) {
		return 0
	}
	c := o.count()
	if math.IsNaN(c) || c > MaxSamples {
		return 0
	}
	return int(c)
}

// count returns ceil((stop-start)/step) without converting to int
func (o Sweep) count() float64 {
	return math.Ceil((o.D2Stop-o.D2Start)/o.D2Step - 1e-9)
}

// Diameters returns the outlet diameters D2Start + i・D2Step
func (o Sweep) Diameters() []float64 {
	n := o.Size()
	switch n {
	case 0:
		return []float64{}
	case 1:
		return []float64{o.D2Start}
	}
	return utl.LinSpace(o.D2Start, o.D2Start+float64(n-1)*o.D2Step, n)
}

// Design returns the design corresponding to outlet diameter D2
func (o Sweep) Design(D2 float64) Design {
	return Design{P2: o.P2, Mdot: o.Mdot, D1: D2 / o.D1Ratio, D2: D2, H: o.H}
}

// SweepResult holds the derived quantities aligned with the swept diameters
type SweepResult struct {
	Id       string    // run identifier
	Mdot     float64   // mass flow rate of all samples [kg/s]
	D2       []float64 // outlet diameters [m]
	D1       []float64 // inlet diameters [m]
	OmegaRPM []float64 // angular velocity [rpm]
	Power    []float64 // shaft power [W]
	Thrust   []float64 // axial thrust [N]
}

// Series returns the sequence corresponding to key and its axis label
func (o SweepResult) Series(key string) (Y []float64, label string, err error) {
	switch key {
	case KeyOmega:
		return o.OmegaRPM, io.Sf("angular velocity (RPM) required for %g kg/s", o.Mdot), nil
	case KeyPower:
		return o.Power, "Shaft power (W)", nil
	case KeyThrust:
		return o.Thrust, "Axial Thrust (N)", nil
	}
	return nil, "", chk.Err("sweep: series %q is not available. options: %q, %q, %q", key, KeyOmega, KeyPower, KeyThrust)
}

// Run evaluates the model for each swept diameter
func (o Sweep) Run(mdl *Model) (res *SweepResult, err error) {
	if err = o.Validate(); err != nil {
		return
	}
	D2s := o.Diameters()
	n := len(D2s)
	id := uuid.NewString()
	entry := log.WithFields(log.Fields{
		"run":     id,
		"samples": n,
		"D2start": o.D2Start,
		"D2stop":  o.D2Stop,
		"D2step":  o.D2Step,
	})
	entry.Info("starting diameter sweep")

	r := &SweepResult{
		Id:       id,
		Mdot:     o.Mdot,
		D2:       D2s,
		D1:       make([]float64, n),
		OmegaRPM: make([]float64, n),
		Power:    make([]float64, n),
		Thrust:   make([]float64, n),
	}
	for i, D2 := range D2s {
		d := o.Design(D2)
		if err = d.Validate(); err != nil {
			return nil, chk.Err("sweep: sample %d: %v", i, err)
		}
		q := mdl.Calc(d)
		if err = q.Finite(); err != nil {
			return nil, chk.Err("sweep: sample %d (D2=%g): %v", i, D2, err)
		}
		r.D1[i] = d.D1
		r.OmegaRPM[i] = q.OmegaRPM
		r.Power[i] = q.Power
		r.Thrust[i] = q.Thrust
		entry.WithFields(log.Fields{
			"D2":    D2,
			"rpm":   q.OmegaRPM,
			"power": q.Power,
		}).Debug("sample")
	}
	entry.Info("diameter sweep finished")
	return r, nil
}
