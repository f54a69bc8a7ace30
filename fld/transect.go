// Copyright 2025 The cfdeez Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fld

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Transect generates npts query points along the vertical line x = xtarget.
// The y-values are evenly spaced and include both ends: the first equals
// ymin and the last equals ymax.
func Transect(xtarget, ymin, ymax float64, npts int) (X, Y []float64, err error) {
	if npts < 2 {
		err = chk.Err("transect needs at least 2 points. npts=%d is invalid", npts)
		return
	}
	if ymax <= ymin {
		err = chk.Err("transect y-range is empty. ymin=%g, ymax=%g", ymin, ymax)
		return
	}
	Y = utl.LinSpace(ymin, ymax, npts)
	X = make([]float64, npts)
	for i := range X {
		X[i] = xtarget
	}
	return
}
