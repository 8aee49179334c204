// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of simulation data (.ini or .yaml files)
package inp

import (
	"bytes"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChrisCheang/Bladeless-Drone-DMT/mdl/gas"
	"github.com/ChrisCheang/Bladeless-Drone-DMT/mdl/impeller"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// GasData holds the inlet state and gas properties
type GasData struct {
	T1    float64 `yaml:"t1"`    // inlet temperature [K]
	P1    float64 `yaml:"p1"`    // inlet pressure [Pa]
	R     float64 `yaml:"r"`     // specific gas constant [J/(kg・K)]
	Cp    float64 `yaml:"cp"`    // specific heat at constant pressure [J/(kg・K)]
	Gamma float64 `yaml:"gamma"` // ratio of specific heats [-]
}

// DesignData holds the design point to be reported.
// D1 == 0 means D1 = D2/D1Ratio, with D1Ratio taken from the sweep.
type DesignData struct {
	P2   float64 `yaml:"p2"`   // outlet pressure [Pa]
	Mdot float64 `yaml:"mdot"` // mass flow rate [kg/s]
	D1   float64 `yaml:"d1"`   // inlet diameter [m]
	D2   float64 `yaml:"d2"`   // outlet diameter [m]
	H    float64 `yaml:"h"`    // outlet blade height [m]
}

// SweepData holds the outlet diameter sweep policy
type SweepData struct {
	P2      float64 `yaml:"p2"`       // outlet pressure per sample [Pa]
	Mdot    float64 `yaml:"mdot"`     // mass flow rate per sample [kg/s]
	H       float64 `yaml:"h"`        // blade height per sample [m]
	D2Start float64 `yaml:"d2_start"` // first diameter [m]
	D2Stop  float64 `yaml:"d2_stop"`  // end of range (excluded) [m]
	D2Step  float64 `yaml:"d2_step"`  // increment [m]
	D1Ratio float64 `yaml:"d1_ratio"` // D1 = D2/D1Ratio
}

// PlotData holds plotting options
type PlotData struct {
	Quantity string `yaml:"quantity"` // "omega", "power" or "thrust"
	DirOut   string `yaml:"dirout"`   // directory for figures
	FnKey    string `yaml:"fnkey"`    // figure name (without extension); empty => derived from run id
}

// LogData holds logging options
type LogData struct {
	Level string `yaml:"level"` // logrus level; e.g. "info"
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Gas    GasData    `yaml:"gas"`
	Design DesignData `yaml:"design"`
	Sweep  SweepData  `yaml:"sweep"`
	Plot   PlotData   `yaml:"plot"`
	Log    LogData    `yaml:"log"`

	// derived
	Key string `yaml:"-"` // simulation key; e.g. run01.yaml => run01
}

// Default returns the reference simulation: dry air at 298 K and 1.013 bar compressed to 1.5 bar
func Default() *Simulation {
	sw := impeller.DefaultSweep()
	return &Simulation{
		Gas:    GasData{T1: 298, P1: 1.013e5, R: 287, Cp: 1010, Gamma: 1.4},
		Design: DesignData{P2: sw.P2, Mdot: sw.Mdot, D2: 0.05, H: sw.H},
		Sweep: SweepData{
			P2:      sw.P2,
			Mdot:    sw.Mdot,
			H:       sw.H,
			D2Start: sw.D2Start,
			D2Stop:  sw.D2Stop,
			D2Step:  sw.D2Step,
			D1Ratio: sw.D1Ratio,
		},
		Plot: PlotData{Quantity: impeller.KeyOmega, DirOut: "/tmp/gocomp/default"},
		Log:  LogData{Level: "info"},
		Key:  "default",
	}
}

// ReadSim reads simulation data from an .ini or .yaml file.
// Missing entries keep the values of Default().
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// defaults
	o = Default()
	o.Plot.DirOut = ""

	// decode
	ext := strings.ToLower(filepath.Ext(simfilepath))
	switch ext {
	case ".ini":
		err = o.readIni(simfilepath)
	case ".yaml", ".yml":
		err = o.readYaml(simfilepath)
	default:
		err = chk.Err("ReadSim: extension %q of %q is not supported. use .ini or .yaml", ext, simfilepath)
	}
	if err != nil {
		return nil, err
	}

	// filename key and output directory
	o.Key = io.FnKey(filepath.Base(simfilepath))
	if o.Plot.DirOut == "" {
		o.Plot.DirOut = "/tmp/gocomp/" + o.Key
	}
	o.Plot.DirOut = os.ExpandEnv(o.Plot.DirOut)

	// check
	if err = o.Check(); err != nil {
		return nil, chk.Err("ReadSim: %q: %v", simfilepath, err)
	}
	return
}

// Check checks the consistency of the input data
func (o *Simulation) Check() (err error) {
	if _, err = log.ParseLevel(o.Log.Level); err != nil {
		return
	}
	switch o.Plot.Quantity {
	case impeller.KeyOmega, impeller.KeyPower, impeller.KeyThrust:
	default:
		return chk.Err("plot quantity %q is invalid. options: omega, power, thrust", o.Plot.Quantity)
	}
	var g gas.IdealGas
	if err = g.Init(o.GasPrms()); err != nil {
		return
	}
	if err = o.ImpellerDesign().Validate(); err != nil {
		return
	}
	return o.ImpellerSweep().Validate()
}

// GasPrms returns the parameters of the gas model
func (o *Simulation) GasPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "T1", V: o.Gas.T1},
		&dbf.P{N: "P1", V: o.Gas.P1},
		&dbf.P{N: "R", V: o.Gas.R},
		&dbf.P{N: "Cp", V: o.Gas.Cp},
		&dbf.P{N: "gamma", V: o.Gas.Gamma},
	}
}

// ImpellerDesign returns the design point
func (o *Simulation) ImpellerDesign() impeller.Design {
	d := impeller.Design{P2: o.Design.P2, Mdot: o.Design.Mdot, D1: o.Design.D1, D2: o.Design.D2, H: o.Design.H}
	if d.D1 == 0 {
		ratio := o.Sweep.D1Ratio
		if !(ratio > 0) {
			ratio = impeller.DefaultSweep().D1Ratio
		}
		d.D1 = d.D2 / ratio
	}
	return d
}

// ImpellerSweep returns the sweep policy
func (o *Simulation) ImpellerSweep() impeller.Sweep {
	return impeller.Sweep{
		P2:      o.Sweep.P2,
		Mdot:    o.Sweep.Mdot,
		H:       o.Sweep.H,
		D2Start: o.Sweep.D2Start,
		D2Stop:  o.Sweep.D2Stop,
		D2Step:  o.Sweep.D2Step,
		D1Ratio: o.Sweep.D1Ratio,
	}
}

// LogLevel returns the logrus level
func (o *Simulation) LogLevel() log.Level {
	lvl, err := log.ParseLevel(o.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// readYaml decodes a .yaml file on top of the current values. Unknown keys are errors.
func (o *Simulation) readYaml(fn string) error {
	b, err := os.ReadFile(fn)
	if err != nil {
		return chk.Err("ReadSim: cannot read simulation file %q: %v", fn, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err = dec.Decode(o); err != nil && err != goio.EOF {
		return chk.Err("ReadSim: cannot unmarshal simulation file %q: %v", fn, err)
	}
	return nil
}

// iniKeys lists the keys accepted in each section of an .ini file
var iniKeys = map[string][]string{
	"gas":    {"t1", "p1", "r", "cp", "gamma"},
	"design": {"p2", "mdot", "d1", "d2", "h"},
	"sweep":  {"p2", "mdot", "h", "d2_start", "d2_stop", "d2_step", "d1_ratio"},
	"plot":   {"quantity", "dirout", "fnkey"},
	"log":    {"level"},
}

// readIni decodes an .ini file on top of the current values.
// Unknown sections or keys and malformed numbers are errors.
func (o *Simulation) readIni(fn string) error {
	file, err := ini.Load(fn)
	if err != nil {
		return chk.Err("ReadSim: cannot read simulation file %q: %v", fn, err)
	}
	for _, sec := range file.Sections() {
		name := sec.Name()
		known, ok := iniKeys[name]
		if !ok {
			if name == ini.DefaultSection && len(sec.Keys()) == 0 {
				continue
			}
			return chk.Err("ReadSim: %q: section [%s] is unknown", fn, name)
		}
		for _, k := range sec.KeyStrings() {
			if utl.StrIndexSmall(known, k) < 0 {
				return chk.Err("ReadSim: %q: key %q in [%s] is unknown", fn, k, name)
			}
		}
	}

	gs := file.Section("gas")
	design := file.Section("design")
	sweep := file.Section("sweep")
	for _, f := range []struct {
		sec *ini.Section
		key string
		v   *float64
	}{
		{gs, "t1", &o.Gas.T1},
		{gs, "p1", &o.Gas.P1},
		{gs, "r", &o.Gas.R},
		{gs, "cp", &o.Gas.Cp},
		{gs, "gamma", &o.Gas.Gamma},
		{design, "p2", &o.Design.P2},
		{design, "mdot", &o.Design.Mdot},
		{design, "d1", &o.Design.D1},
		{design, "d2", &o.Design.D2},
		{design, "h", &o.Design.H},
		{sweep, "p2", &o.Sweep.P2},
		{sweep, "mdot", &o.Sweep.Mdot},
		{sweep, "h", &o.Sweep.H},
		{sweep, "d2_start", &o.Sweep.D2Start},
		{sweep, "d2_stop", &o.Sweep.D2Stop},
		{sweep, "d2_step", &o.Sweep.D2Step},
		{sweep, "d1_ratio", &o.Sweep.D1Ratio},
	} {
		if err = readFloat(f.sec, f.key, f.v); err != nil {
			return chk.Err("ReadSim: %q: %v", fn, err)
		}
	}

	plot := file.Section("plot")
	o.Plot.Quantity = plot.Key("quantity").MustString(o.Plot.Quantity)
	o.Plot.DirOut = plot.Key("dirout").MustString(o.Plot.DirOut)
	o.Plot.FnKey = plot.Key("fnkey").MustString(o.Plot.FnKey)

	o.Log.Level = file.Section("log").Key("level").MustString(o.Log.Level)
	return nil
}

// readFloat sets v from key in sec if the key is present
func readFloat(sec *ini.Section, key string, v *float64) error {
	if !sec.HasKey(key) {
		return nil
	}
	x, err := sec.Key(key).Float64()
	if err != nil {
		return chk.Err("[%s] %s: %v", sec.Name(), key, err)
	}
	*v = x
	return nil
}
