// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package impeller

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func Test_sweep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep01")

	sw := DefaultSweep()
	D2s := sw.Diameters()
	chk.Int(tst, "size", sw.Size(), 32)
	chk.Int(tst, "len(D2s)", len(D2s), 32)
	chk.Float64(tst, "D2[0]", 1e-15, D2s[0], 0.05)
	chk.Float64(tst, "D2[31]", 1e-14, D2s[31], 0.205)
	for i := 1; i < len(D2s); i++ {
		chk.Float64(tst, io.Sf("ΔD2[%d]", i), 1e-14, D2s[i]-D2s[i-1], 0.005)
	}

	res, err := sw.Run(New(nil))
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if res.Id == "" {
		tst.Errorf("run id must be set\n")
		return
	}
	chk.Int(tst, "len(rpm)", len(res.OmegaRPM), 32)
	chk.Int(tst, "len(power)", len(res.Power), 32)
	chk.Int(tst, "len(thrust)", len(res.Thrust), 32)
	for i, rpm := range res.OmegaRPM {
		if math.IsNaN(rpm) || math.IsInf(rpm, 0) || rpm <= 0 {
			tst.Errorf("rpm[%d] must be finite and positive. rpm=%g\n", i, rpm)
			return
		}
		chk.Float64(tst, io.Sf("D1[%d]", i), 1e-15, res.D1[i], res.D2[i]/3)
		if i > 0 && !(rpm < res.OmegaRPM[i-1]) {
			tst.Errorf("rpm must decrease with D2. rpm[%d]=%g, rpm[%d]=%g\n", i-1, res.OmegaRPM[i-1], i, rpm)
			return
		}
	}

	// first sample matches a direct evaluation
	mdl := New(nil)
	d := sw.Design(res.D2[0])
	chk.Float64(tst, "rpm[0]", 1e-15, res.OmegaRPM[0], mdl.AngularVelocityRPM(d))
	chk.Float64(tst, "thrust[0]", 1e-15, res.Thrust[0], d.Mdot*mdl.InletAbsoluteVelocity(d))

	if chk.Verbose {
		Y, ylbl, _ := res.Series(KeyOmega)
		plt.Reset(false, nil)
		plt.Plot(res.D2, Y, &plt.A{C: "b", Ls: "-"})
		plt.Gll(XLabel, ylbl, nil)
		plt.Save("/tmp/gocomp", "sweep01")
	}
}

func Test_sweep02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep02. series")

	res, err := DefaultSweep().Run(New(nil))
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	Y, lbl, err := res.Series(KeyOmega)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "len(Y)", len(Y), len(res.D2))

	labels := map[string]string{
		KeyOmega:  "angular velocity (RPM) required for 0.1 kg/s",
		KeyPower:  "Shaft power (W)",
		KeyThrust: "Axial Thrust (N)",
	}
	for key, correct := range labels {
		_, lbl, _ = res.Series(key)
		if lbl != correct {
			tst.Errorf("label of %q is incorrect. %q != %q\n", key, lbl, correct)
		}
	}

	if _, _, err = res.Series("efficiency"); err == nil {
		tst.Errorf("unknown series should fail\n")
	}
}

func Test_sweep03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep03. invalid policies")

	bad := []func(*Sweep){
		func(o *Sweep) { o.D2Step = 0 },
		func(o *Sweep) { o.D2Stop = o.D2Start },
		func(o *Sweep) { o.D2Start = 0 },
		func(o *Sweep) { o.H = 0 },
		func(o *Sweep) { o.D1Ratio = -3 },
		func(o *Sweep) { o.D2Stop = math.Inf(1) },
		func(o *Sweep) { o.D2Step = math.NaN() },
		func(o *Sweep) { o.P2 = math.Inf(1) },
		func(o *Sweep) { o.Mdot = math.NaN() },
		func(o *Sweep) { o.D1Ratio = math.Inf(1) },
		func(o *Sweep) { o.D2Stop = 1e3 },
		func(o *Sweep) { o.D2Step = 1e-300 },
	}
	for i, modify := range bad {
		sw := DefaultSweep()
		modify(&sw)
		res, err := sw.Run(New(nil))
		if err == nil {
			tst.Errorf("policy %d should fail\n", i)
			return
		}
		if res != nil {
			tst.Errorf("policy %d should not return a partial result\n", i)
			return
		}
	}

	// single sample
	sw := DefaultSweep()
	sw.D2Stop = sw.D2Start + sw.D2Step/2
	chk.Int(tst, "single", len(sw.Diameters()), 1)

	// non-finite and oversized ranges have no samples
	sw = DefaultSweep()
	sw.D2Stop = math.Inf(1)
	chk.Int(tst, "inf stop", sw.Size(), 0)
	sw = DefaultSweep()
	sw.D2Step = 1e-300
	chk.Int(tst, "tiny step", sw.Size(), 0)
	sw = DefaultSweep()
	sw.D2Stop = sw.D2Start + MaxSamples*sw.D2Step
	chk.Int(tst, "largest", sw.Size(), MaxSamples)
	if err := sw.Validate(); err != nil {
		tst.Errorf("largest range should be accepted: %v\n", err)
	}
}
