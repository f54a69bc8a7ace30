// Copyright 2025 The cfdeez Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/Rwn-A/cfdeez/ana"
	"github.com/Rwn-A/cfdeez/fld"
	"github.com/Rwn-A/cfdeez/inp"
	"github.com/Rwn-A/cfdeez/out"
	"github.com/Rwn-A/cfdeez/res"
	"github.com/Rwn-A/cfdeez/sim"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	valfnpath, _ := io.ArgToFilename(0, "validation/channel/channel", ".val", true)
	verbose := io.ArgToBool(1, true)
	runSolver := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\ncfdeez validation -- velocity profile extraction\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "valfnpath", valfnpath,
			"show messages", "verbose", verbose,
			"run solver first", "runSolver", runSolver,
		))
	}

	// validation scenario
	val := inp.ReadVal(valfnpath)

	// run solver
	if runSolver {
		runner := sim.Runner{Bin: val.Solver}
		resfn, err := runner.Run(val.Scenario, val.Results)
		if err != nil {
			chk.Panic("solver run failed:\n%v", err)
		}
		if verbose {
			io.Pf("solver finished. results @ %s\n", resfn)
		}
	}

	// load results
	tab, err := res.Read(val.Results)
	if err != nil {
		chk.Panic("cannot load results:\n%v", err)
	}
	if verbose {
		io.Pf("%d samples loaded from %s\n", len(tab.X), val.Results)
	}

	// velocity magnitude field over scattered samples
	field, err := fld.NewScattered(tab.X, tab.Y, tab.VelMag())
	if err != nil {
		chk.Panic("cannot build interpolator:\n%v", err)
	}

	// analytical solution
	var channel *ana.ChannelFlow
	if val.Channel != nil {
		channel = new(ana.ChannelFlow)
		channel.Init(val.Channel.Prms())
	}

	// profiles: one figure per transect location
	ymin, ymax := tab.Yrange()
	for _, xt := range val.Xtargets {

		// query points along vertical transect
		X, Y, err := fld.Transect(xt, ymin, ymax, val.Resolution)
		if err != nil {
			chk.Panic("cannot sample transect @ x=%g:\n%v", xt, err)
		}

		// reconstructed profile
		V := field.EvalAll(X, Y)
		prof := out.NewProfile(xt, Y, V)
		prof.Ytick = val.Ytick

		// analytical overlay
		if channel != nil {
			Ua := make([]float64, len(Y))
			for i, y := range Y {
				Ua[i] = channel.Umag(y)
			}
			prof.AddRef("laminar analytical", Y, Ua)
		}

		// save figure
		fnkey := io.Sf("%s_velocity_profile%g", val.Key, xt)
		prof.Draw(val.DirOut, fnkey)
		if verbose {
			io.Pf("profile saved @ %s\n", io.Sf("%s/%s.png", val.DirOut, fnkey))
		}
	}
}
