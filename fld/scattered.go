// Copyright 2025 The cfdeez Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fld implements reconstruction of scalar fields sampled over
// unstructured 2D point clouds
package fld

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm/tri"
)

// constants
var (
	BaryTol = 1e-10 // tolerance for the barycentric inclusion test; admits queries on edges and nodes
	ColTol  = 1e-14 // tolerance for the collinearity pre-check
)

// Scattered interpolates a scalar field sampled at scattered 2D points.
// The cloud is triangulated once (Delaunay) and each query is answered by
// the barycentric-weighted average of the vertices of the enclosing
// triangle; piecewise linear, exact at the sample points. Queries outside
// the convex hull of the cloud resolve to NaN (no extrapolation), so
// consumers can tell "no data" from "zero velocity".
type Scattered struct {

	// input
	X, Y []float64 // sample coordinates
	V    []float64 // sample values

	// derived: deduplicated cloud and triangulation
	xu, yu []float64 // unique coordinates; solver files may repeat shared boundary nodes
	vu     []float64 // values at unique coordinates; first occurrence wins
	cells  [][]int   // triangle connectivity over the unique cloud; empty for degenerate clouds
}

// NewScattered builds an interpolator for values v sampled at (x, y).
// Rows with identical coordinates are collapsed to their first occurrence
// before triangulating. Clouds with fewer than 3 unique points, or with
// all points collinear, are degenerate: the interpolator is still returned
// but every query resolves to NaN.
func NewScattered(x, y, v []float64) (*Scattered, error) {
	if len(x) != len(y) || len(x) != len(v) {
		return nil, chk.Err("coordinates and values must have equal lengths. len(x)=%d, len(y)=%d, len(v)=%d", len(x), len(y), len(v))
	}
	o := &Scattered{X: x, Y: y, V: v}
	o.dedup()
	if len(o.xu) < 3 || collinear(o.xu, o.yu) {
		return o, nil
	}
	verts, cells := tri.Delaunay(o.xu, o.yu, false)
	if len(verts) != len(o.xu) {
		return nil, chk.Err("triangulation changed the number of vertices. %d != %d", len(verts), len(o.xu))
	}
	o.cells = cells
	return o, nil
}

// Eval returns the interpolated value at (xq, yq), or NaN if the query
// point lies outside the convex hull of the cloud
func (o *Scattered) Eval(xq, yq float64) float64 {
	for _, cell := range o.cells {
		x0, y0 := o.xu[cell[0]], o.yu[cell[0]]
		x1, y1 := o.xu[cell[1]], o.yu[cell[1]]
		x2, y2 := o.xu[cell[2]], o.yu[cell[2]]
		det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
		if det == 0 {
			continue // zero-area triangle
		}
		w0 := ((y1-y2)*(xq-x2) + (x2-x1)*(yq-y2)) / det
		w1 := ((y2-y0)*(xq-x2) + (x0-x2)*(yq-y2)) / det
		w2 := 1.0 - w0 - w1
		if w0 >= -BaryTol && w1 >= -BaryTol && w2 >= -BaryTol {
			return w0*o.vu[cell[0]] + w1*o.vu[cell[1]] + w2*o.vu[cell[2]]
		}
	}
	return math.NaN()
}

// EvalAll evaluates the field at all query points, element-wise
func (o *Scattered) EvalAll(xq, yq []float64) []float64 {
	if len(xq) != len(yq) {
		chk.Panic("query coordinates must have equal lengths. len(xq)=%d, len(yq)=%d", len(xq), len(yq))
	}
	res := make([]float64, len(xq))
	for i := range xq {
		res[i] = o.Eval(xq[i], yq[i])
	}
	return res
}

// Ntriangles returns the number of triangles in the underlying triangulation
func (o *Scattered) Ntriangles() int {
	return len(o.cells)
}

// Nunique returns the number of unique sample coordinates
func (o *Scattered) Nunique() int {
	return len(o.xu)
}

// dedup collapses samples with identical coordinates, keeping the value of
// the first occurrence and preserving input order otherwise
func (o *Scattered) dedup() {
	seen := make(map[[2]float64]bool, len(o.X))
	for i := range o.X {
		key := [2]float64{o.X[i], o.Y[i]}
		if seen[key] {
			continue
		}
		seen[key] = true
		o.xu = append(o.xu, o.X[i])
		o.yu = append(o.yu, o.Y[i])
		o.vu = append(o.vu, o.V[i])
	}
}

// collinear tells whether all points lie on one straight line
func collinear(x, y []float64) bool {

	// find a point distinct from the first one
	x0, y0 := x[0], y[0]
	k := -1
	for i := 1; i < len(x); i++ {
		if x[i] != x0 || y[i] != y0 {
			k = i
			break
		}
	}
	if k < 0 {
		return true // all points coincide
	}

	// all cross products with the (p0, pk) direction must vanish
	dx, dy := x[k]-x0, y[k]-y0
	for i := 1; i < len(x); i++ {
		if math.Abs(dx*(y[i]-y0)-dy*(x[i]-x0)) > ColTol {
			return false
		}
	}
	return true
}
