// Copyright 2025 The cfdeez Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.val) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// ChannelData holds the parameters of the analytical laminar channel solution
type ChannelData struct {
	H    float64 `json:"h"`    // channel height
	Umax float64 `json:"umax"` // centreline (peak) velocity
}

// Prms returns the parameter set for the analytical solution
func (o ChannelData) Prms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "H", V: o.H},
		&dbf.P{N: "umax", V: o.Umax},
	}
}

// Val holds all data defining one validation scenario
type Val struct {

	// input data
	Desc       string       `json:"desc"`       // description of validation case
	Solver     string       `json:"solver"`     // path to solver binary
	Scenario   string       `json:"scenario"`   // scenario (.fml) file given to the solver
	Results    string       `json:"results"`    // results (.csv) file written by the solver
	DirOut     string       `json:"dirout"`     // directory for output figures; "" means the .val directory
	Xtargets   []float64    `json:"xtargets"`   // x-locations of vertical transects
	Resolution int          `json:"resolution"` // number of query points per transect
	Ytick      float64      `json:"ytick"`      // y-axis major tick interval; 0 disables
	Channel    *ChannelData `json:"channel"`    // analytical channel solution; nil means no overlay

	// derived
	Key string // filename key of the .val file; used to name output figures
}

// ReadVal reads all validation scenario data from a .val JSON file
//  Note: Solver, Scenario, Results and DirOut paths are relative to the
//        directory containing the .val file, unless absolute
func ReadVal(valfilepath string) *Val {

	// read file
	b := io.ReadFile(valfilepath)

	// set default values
	var o Val
	o.Resolution = 200
	o.Ytick = 0.05

	// decode
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadVal: cannot unmarshal validation file %q", valfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(valfilepath)
	dir = os.ExpandEnv(dir)
	o.Key = io.FnKey(filepath.Base(valfilepath))

	// check
	if o.Scenario == "" {
		chk.Panic("ReadVal: %q: scenario file must be given", valfilepath)
	}
	if o.Results == "" {
		chk.Panic("ReadVal: %q: results file must be given", valfilepath)
	}
	if len(o.Xtargets) == 0 {
		chk.Panic("ReadVal: %q: at least one transect location (xtargets) must be given", valfilepath)
	}
	if o.Resolution < 2 {
		chk.Panic("ReadVal: %q: resolution must be at least 2. %d is invalid", valfilepath, o.Resolution)
	}

	// resolve paths
	o.Solver = prependDir(dir, o.Solver)
	o.Scenario = prependDir(dir, o.Scenario)
	o.Results = prependDir(dir, o.Results)
	if o.DirOut == "" {
		o.DirOut = dir
	} else {
		o.DirOut = prependDir(dir, o.DirOut)
	}

	// create directory for output figures
	err = os.MkdirAll(o.DirOut, 0777)
	if err != nil {
		chk.Panic("ReadVal: cannot create directory for output figures (%s): %v", o.DirOut, err)
	}
	return &o
}

// prependDir joins dir and path, unless path is absolute or empty
func prependDir(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
