// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/ChrisCheang/Bladeless-Drone-DMT/inp"
	"github.com/ChrisCheang/Bladeless-Drone-DMT/mdl/gas"
	"github.com/ChrisCheang/Bladeless-Drone-DMT/mdl/impeller"
	"github.com/ChrisCheang/Bladeless-Drone-DMT/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	log "github.com/sirupsen/logrus"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath := io.ArgToString(0, "")
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, true)

	// simulation data
	sim := inp.Default()
	if fnamepath != "" {
		var err error
		sim, err = inp.ReadSim(fnamepath)
		if err != nil {
			chk.Panic("%v", err)
		}
	}

	// logging
	log.SetLevel(sim.LogLevel())
	if !verbose && sim.LogLevel() > log.WarnLevel {
		log.SetLevel(log.WarnLevel)
	}

	// message
	if verbose {
		io.PfWhite("\nImpeller sizing -- first-order centrifugal compressor estimates\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"simulation file (.ini or .yaml)", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot sweep", "doplot", doplot,
		))
	}

	// model
	var g gas.IdealGas
	err := g.Init(sim.GasPrms())
	if err != nil {
		chk.Panic("%v", err)
	}
	mdl := impeller.New(&g)

	// design point
	d := sim.ImpellerDesign()
	if err = d.Validate(); err != nil {
		chk.Panic("%v", err)
	}
	q := mdl.Calc(d)
	if err = q.Finite(); err != nil {
		chk.Panic("design point: %v", err)
	}
	if verbose {
		io.Pf("\n%v\n", report(d, q))
	}

	// sweep
	res, err := sim.ImpellerSweep().Run(mdl)
	if err != nil {
		chk.Panic("%v", err)
	}
	if verbose {
		io.Pf("%v\n", table(res))
	}

	// plot
	if doplot {
		fnkey := sim.Plot.FnKey
		if fnkey == "" {
			fnkey = io.Sf("%s-%s-%s", sim.Key, sim.Plot.Quantity, res.Id[:8])
		}
		fig := out.Figure{Dirout: sim.Plot.DirOut, Fnkey: fnkey, Color: out.GetColor(sim.Plot.Quantity)}
		if err = out.PlotSweep(fig, res, sim.Plot.Quantity); err != nil {
			chk.Panic("%v", err)
		}
		if verbose {
			io.PfGreen("file <%s/%s.png> written\n", fig.Dirout, fig.Fnkey)
		}
	}
}

// report formats the derived quantities of the design point
func report(d impeller.Design, q impeller.Derived) string {
	return io.ArgsTable("DESIGN POINT",
		"outlet pressure [Pa]", "P2", d.P2,
		"mass flow rate [kg/s]", "mdot", d.Mdot,
		"inlet diameter [m]", "D1", d.D1,
		"outlet diameter [m]", "D2", d.D2,
		"outlet blade height [m]", "h", d.H,
		"outlet temperature [K]", "T2", q.T2,
		"outlet density [kg/m³]", "rho", q.Rho,
		"pump-analogy head [m]", "head", q.Head,
		"angular velocity [rad/s]", "omega", q.Omega,
		"angular velocity [rpm]", "omegaRPM", q.OmegaRPM,
		"inlet absolute velocity [m/s]", "C1", q.C1,
		"outlet radial velocity [m/s]", "C2", q.C2,
		"shaft power [W]", "power", q.Power,
		"axial thrust [N]", "thrust", q.Thrust,
	)
}

// table formats the sweep results
func table(res *impeller.SweepResult) string {
	b := io.Sf("%8s%10s%14s%14s%12s\n", "D2", "D1", "rpm", "power", "thrust")
	for i, D2 := range res.D2 {
		b += io.Sf("%8.3f%10.4f%14.1f%14.3f%12.4f\n", D2, res.D1[i], res.OmegaRPM[i], res.Power[i], res.Thrust[i])
	}
	return b
}
