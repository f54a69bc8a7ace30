// Copyright 2025 The cfdeez Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_segments01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("segments01")

	nan := math.NaN()

	// gap in the middle splits the curve in two
	Y := []float64{0, 0.25, 0.5, 0.75, 1.0}
	V := []float64{1, 1.2, nan, 1.2, 1}
	ys, vs := Segments(Y, V)
	chk.IntAssert(len(ys), 2)
	chk.Array(tst, "ys0", 1e-17, ys[0], []float64{0, 0.25})
	chk.Array(tst, "vs0", 1e-17, vs[0], []float64{1, 1.2})
	chk.Array(tst, "ys1", 1e-17, ys[1], []float64{0.75, 1.0})
	chk.Array(tst, "vs1", 1e-17, vs[1], []float64{1.2, 1})

	// leading and trailing gaps are dropped
	V = []float64{nan, 1.2, 1.5, 1.2, nan}
	ys, vs = Segments(Y, V)
	chk.IntAssert(len(ys), 1)
	chk.Array(tst, "ys0", 1e-17, ys[0], []float64{0.25, 0.5, 0.75})
	chk.Array(tst, "vs0", 1e-17, vs[0], []float64{1.2, 1.5, 1.2})

	// all-NaN profile has nothing to draw
	V = []float64{nan, nan, nan, nan, nan}
	ys, _ = Segments(Y, V)
	chk.IntAssert(len(ys), 0)

	// fully defined profile stays in one piece
	V = []float64{1, 1.2, 1.5, 1.2, 1}
	ys, vs = Segments(Y, V)
	chk.IntAssert(len(ys), 1)
	chk.Array(tst, "vs0", 1e-17, vs[0], V)
}

func Test_profile01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("profile01")

	nan := math.NaN()
	Y := []float64{0, 0.25, 0.5, 0.75, 1.0}
	V := []float64{0, 1.125, 1.5, nan, 0}

	prof := NewProfile(4.5, Y, V)
	prof.AddRef("laminar analytical", Y, []float64{0, 1.125, 1.5, 1.125, 0})
	chk.IntAssert(len(prof.Curves), 2)
	chk.Float64(tst, "xtarget", 1e-17, prof.Xtarget, 4.5)

	if chk.Verbose {
		prof.Draw("/tmp/cfdeez", "profile01_velocity_profile4.5")
	}
}

func Test_profile02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("profile02. mismatched lengths")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("adding curves with mismatched lengths must panic\n")
		}
	}()
	NewProfile(4.5, []float64{0, 1}, []float64{0})
}
