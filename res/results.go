// Copyright 2025 The cfdeez Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package res implements reading of tabular (.csv) result files written by the solver
package res

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// required columns in result files
var reqkeys = []string{"x", "y", "velocity.x", "velocity.y"}

// Results holds one velocity sample per row of the solver's result file.
// Columns are parallel slices in file order.
type Results struct {
	X, Y   []float64 // sample coordinates
	Vx, Vy []float64 // velocity components
}

// Read reads a comma-separated results file. The header row must contain the
// x, y, velocity.x and velocity.y columns; extra columns are ignored. A row
// with a missing or unparseable value aborts the read (rows are never
// silently dropped).
func Read(path string) (*Results, error) {

	// read file
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("cannot open results file %q: %v", path, err)
	}
	defer f.Close()
	rd := csv.NewReader(f)
	rd.TrimLeadingSpace = true
	records, err := rd.ReadAll()
	if err != nil {
		return nil, chk.Err("cannot parse results file %q: %v", path, err)
	}
	if len(records) < 2 {
		return nil, chk.Err("results file %q has no data rows", path)
	}

	// map required keys to column indices
	cols := make([]int, len(reqkeys))
	header := records[0]
	for i, key := range reqkeys {
		cols[i] = -1
		for j, name := range header {
			if strings.TrimSpace(name) == key {
				cols[i] = j
				break
			}
		}
		if cols[i] < 0 {
			return nil, chk.Err("results file %q: missing column %q", path, key)
		}
	}

	// parse rows
	nrows := len(records) - 1
	var o Results
	o.X = make([]float64, nrows)
	o.Y = make([]float64, nrows)
	o.Vx = make([]float64, nrows)
	o.Vy = make([]float64, nrows)
	dst := [][]float64{o.X, o.Y, o.Vx, o.Vy}
	for i, record := range records[1:] {
		for k, j := range cols {
			if j >= len(record) {
				return nil, chk.Err("results file %q: row %d is too short", path, i+2)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(record[j]), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, chk.Err("results file %q: row %d: cannot parse %q value %q", path, i+2, reqkeys[k], record[j])
			}
			dst[k][i] = v
		}
	}
	return &o, nil
}

// VelMag computes the velocity magnitude per sample, preserving order.
// Magnitudes are always recomputed from the components, never stored.
func (o *Results) VelMag() []float64 {
	vmag := make([]float64, len(o.Vx))
	for i := range vmag {
		vmag[i] = math.Sqrt(o.Vx[i]*o.Vx[i] + o.Vy[i]*o.Vy[i])
	}
	return vmag
}

// Yrange returns the minimum and maximum y-coordinate among all samples
func (o *Results) Yrange() (ymin, ymax float64) {
	ymin, ymax = o.Y[0], o.Y[0]
	for _, y := range o.Y[1:] {
		ymin = utl.Min(ymin, y)
		ymax = utl.Max(ymax, y)
	}
	return
}
