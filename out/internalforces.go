// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of frame results: internal force
// diagrams along elements and force envelopes across load cases
package out

import (
	"github.com/pitipatw/AsapToolkit/ele"
	"github.com/pitipatw/AsapToolkit/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// InternalForces holds internal force diagrams sampled along an element (or a
// chain of elements). Values are never modified after construction
type InternalForces struct {
	ele.Diagrams
	Elem       *ele.Beam // element described by the diagrams; first segment for chains
	Resolution int       // number of stations
	X          []float64 // [Resolution] distance of stations from the start node
}

// Sample computes internal forces along element e using the loads assigned to e in mdl
//  Input:
//   resolution -- number of stations; must be at least 2
func Sample(e *ele.Beam, mdl *fem.Model, resolution int) (o *InternalForces, err error) {
	loads, err := mdl.ElemLoads(e)
	if err != nil {
		return
	}
	return SampleLoads(e, loads, resolution)
}

// SampleLoads computes internal forces along element e using an explicit list of
// loads, which must all be bound to e. The current displacements of e's nodes are used
//  Input:
//   resolution -- number of stations; must be at least 2
func SampleLoads(e *ele.Beam, loads []ele.Load, resolution int) (o *InternalForces, err error) {

	// check
	if resolution < 2 {
		return nil, chk.Err("beam %d: resolution must be at least 2. %d is invalid", e.Id, resolution)
	}
	if e.L <= 0 {
		return nil, chk.Err("beam %d: length must be positive. L=%g is invalid", e.Id, e.L)
	}
	for _, load := range loads {
		if load.ElemId() != e.Id {
			return nil, chk.Err("beam %d: load %d is bound to element %d", e.Id, load.Id(), load.ElemId())
		}
	}

	// stations
	x := utl.LinSpace(0, e.L, resolution)

	// end forces: (Fx, Fy, Fz, Mx, My, Mz) @ node 0
	F := e.EndForces(loads)

	// internal forces @ start: from end reactions to forces at a cut
	P0 := -F[0]
	Vy0, My0 := F[1], F[5]
	Vz0, Mz0 := F[2], -F[4]

	// diagrams without applied loads
	d := ele.NewDiagrams(resolution)
	for i, xi := range x {
		d.P[i] = P0
		d.Vy[i] = Vy0
		d.My[i] = Vy0*xi - My0
		d.Vz[i] = Vz0
		d.Mz[i] = Vz0*xi - Mz0
	}

	// superposition of loads
	for _, load := range loads {
		ele.AddLoad(load, e, x, d)
	}
	return &InternalForces{Diagrams: *d, Elem: e, Resolution: resolution, X: x}, nil
}
