// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/pitipatw/AsapToolkit/fem"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// DiagramScale returns the scaling factor to draw one diagram component of all
// elements on top of the frame
//  Input:
//   res  -- internal forces of elements
//   key  -- component; e.g. "My"
//   coef -- coefficient to scale max(dimension) divided by max(|value|); e.g. 0.1
func DiagramScale(mdl *fem.Model, res []*InternalForces, key string, coef float64) (sf float64, err error) {

	// largest absolute value
	maxAbs := 0.0
	for _, o := range res {
		v, err := o.Component(key)
		if err != nil {
			return 0, err
		}
		if len(v) > 0 {
			maxAbs = math.Max(maxAbs, floats.Norm(v, math.Inf(1)))
		}
	}

	// largest dimension of frame
	dist := 0.0
	if len(mdl.Nodes) > 0 {
		xmin, xmax := mdl.Nodes[0].X, mdl.Nodes[0].X
		for _, n := range mdl.Nodes {
			for j := 0; j < 3; j++ {
				xmin[j] = math.Min(xmin[j], n.X[j])
				xmax[j] = math.Max(xmax[j], n.X[j])
			}
		}
		for j := 0; j < 3; j++ {
			dist = math.Max(dist, xmax[j]-xmin[j])
		}
	}
	sf = 1.0
	if maxAbs > 1e-7 {
		sf = coef * dist / maxAbs
	}
	return
}

// DiagramPoints returns the global coordinates of the polyline of one diagram
// component drawn along the element. Values are drawn along the local y-axis
// for P, My and Vy and along the local z-axis for Mz and Vz. o must describe
// a single element
//  Output:
//   pts -- [Resolution][3] points
func DiagramPoints(o *InternalForces, key string, sf float64) (pts [][]float64, err error) {
	v, err := o.Component(key)
	if err != nil {
		return
	}
	e := o.Elem
	if e == nil {
		return nil, chk.Err("internal forces must reference an element")
	}
	dir := e.E1
	if key == "Mz" || key == "Vz" {
		dir = e.E2
	}
	x0 := e.Nodes[0].X
	pts = make([][]float64, len(o.X))
	for i, xi := range o.X {
		pts[i] = make([]float64, 3)
		for j := 0; j < 3; j++ {
			pts[i][j] = x0[j] + xi*e.E0[j] + sf*v[i]*dir[j]
		}
	}
	return
}
