// Copyright 2025 The cfdeez Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements plotting of velocity profiles extracted from solver results
package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Curve stores all data for one plotted curve (y versus value)
type Curve struct {
	Label string    // legend label
	Y     []float64 // transect positions
	V     []float64 // values; NaN marks positions with no data
	Style plt.A     // style
}

// Profile stores all curves of one transect figure
type Profile struct {
	Xtarget float64  // transect location; shown in the title
	Ytick   float64  // y-axis major tick interval; 0 disables
	Curves  []*Curve // curves to be plotted
}

// NewProfile starts a transect figure with the reconstructed velocity
// magnitude as its first curve
func NewProfile(xtarget float64, Y, V []float64) *Profile {
	o := &Profile{Xtarget: xtarget, Ytick: 0.05}
	o.Add("velocity magnitude", Y, V, plt.A{C: "b"})
	return o
}

// Add appends a curve
func (o *Profile) Add(label string, Y, V []float64, style plt.A) {
	if len(Y) != len(V) {
		chk.Panic("lengths of y- and v-series are different. len(y)=%d, len(v)=%d", len(Y), len(V))
	}
	style.L = label
	o.Curves = append(o.Curves, &Curve{Label: label, Y: Y, V: V, Style: style})
}

// AddRef appends a reference (e.g. analytical) curve with a dashed style
func (o *Profile) AddRef(label string, Y, V []float64) {
	o.Add(label, Y, V, plt.A{C: "r", Ls: "--"})
}

// Segments splits a curve at NaN entries. Each returned pair of slices is a
// contiguous run of defined values; NaN positions appear in no segment, so
// gaps are drawn as gaps and never as fabricated zeros.
func Segments(Y, V []float64) (ys, vs [][]float64) {
	var cy, cv []float64
	flush := func() {
		if len(cy) > 0 {
			ys = append(ys, cy)
			vs = append(vs, cv)
			cy, cv = nil, nil
		}
	}
	for i := range V {
		if math.IsNaN(V[i]) {
			flush()
			continue
		}
		cy = append(cy, Y[i])
		cv = append(cv, V[i])
	}
	flush()
	return
}

// Draw saves the transect figure as <dirout>/<fnkey>.png, overwriting any
// previous figure. Use fnkey == "" to skip saving (e.g. in tests).
func (o *Profile) Draw(dirout, fnkey string) {
	plt.Reset(true, &plt.A{WidthPt: 455, Dpi: 150, Prop: 0.75})
	if o.Ytick > 0 {
		plt.SetTicksY(o.Ytick, 0, "")
	}
	for _, c := range o.Curves {
		ys, vs := Segments(c.Y, c.V)
		for k := range ys {
			style := c.Style
			if k > 0 {
				style.L = "" // label the first segment only
			}
			plt.Plot(ys[k], vs[k], &style)
		}
	}
	plt.Title(io.Sf("velocity profile at x = %g", o.Xtarget), nil)
	plt.Gll("position y (m)", "velocity (m / s)", nil)
	if fnkey != "" {
		plt.Save(dirout, fnkey)
	}
}
