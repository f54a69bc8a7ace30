// Copyright 2025 The cfdeez Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// ChannelFlow implements the fully developed laminar flow between two
// parallel plates (plane Poiseuille flow):
//
//   y=H  ―――――――――――――――――――
//          →
//          ⟶
//          ⟹   u(y) = 4 umax y (H-y) / H²
//          ⟶
//          →
//   y=0  ―――――――――――――――――――
//
// The profile is parabolic, zero at both walls and umax at mid-channel.
type ChannelFlow struct {

	// input
	H    float64 // channel height
	Umax float64 // centreline velocity
}

// Init initialises this structure
func (o *ChannelFlow) Init(prms dbf.Params) {

	// default values
	o.H = 1.0
	o.Umax = 1.5

	// parameters
	for _, p := range prms {
		switch p.N {
		case "H":
			o.H = p.V
		case "umax":
			o.Umax = p.V
		}
	}
}

// Umag returns the velocity magnitude at height y. Outside the channel the
// fluid is at rest.
func (o ChannelFlow) Umag(y float64) float64 {
	if y < 0 || y > o.H {
		return 0
	}
	return 4.0 * o.Umax * y * (o.H - y) / (o.H * o.H)
}

// Profile samples the analytical profile at npts evenly spaced heights,
// walls included
func (o ChannelFlow) Profile(npts int) (Y, U []float64) {
	Y = utl.LinSpace(0, o.H, npts)
	U = make([]float64, npts)
	for i, y := range Y {
		U[i] = o.Umag(y)
	}
	return
}
