// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out renders sweep results
package out

import (
	"github.com/ChrisCheang/Bladeless-Drone-DMT/mdl/impeller"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	log "github.com/sirupsen/logrus"
)

// Plotter draws one y(x) line with labelled axes and gridlines
type Plotter interface {
	Plot(X, Y []float64, xlbl, ylbl string) error
}

// Figure implements Plotter with matplotlib (via gosl/plt).
// The figure is written to Dirout/Fnkey.png when Plot returns.
type Figure struct {
	Dirout string // output directory
	Fnkey  string // file name key, without extension
	Color  string // line color; e.g. "b"
	Marker string // marker; e.g. "." (optional)
}

// Plot plots X versus Y and saves the figure
func (o Figure) Plot(X, Y []float64, xlbl, ylbl string) error {
	if len(X) != len(Y) {
		return chk.Err("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(X), len(Y))
	}
	if len(X) == 0 {
		return chk.Err("cannot plot empty series")
	}
	color := o.Color
	if color == "" {
		color = "b"
	}
	plt.Reset(false, nil)
	plt.Plot(X, Y, &plt.A{C: color, M: o.Marker, Ls: "-"})
	plt.Gll(xlbl, ylbl, nil)
	plt.Save(o.Dirout, o.Fnkey)
	log.WithFields(log.Fields{
		"dir":    o.Dirout,
		"fnkey":  o.Fnkey,
		"points": len(X),
	}).Info("figure saved")
	return nil
}

// PlotSweep plots the series named key versus the swept outlet diameter
func PlotSweep(p Plotter, res *impeller.SweepResult, key string) error {
	if res == nil {
		return chk.Err("sweep result is missing")
	}
	Y, ylbl, err := res.Series(key)
	if err != nil {
		return err
	}
	return p.Plot(res.D2, Y, impeller.XLabel, ylbl)
}
