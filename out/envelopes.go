// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"runtime"

	"github.com/pitipatw/AsapToolkit/ele"
	"github.com/pitipatw/AsapToolkit/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// ForceEnvelopes holds the lowest and highest internal forces at each station
// of an element across load cases. low[i] ≤ high[i] for all components
type ForceEnvelopes struct {
	Elem       *ele.Beam // element described by the envelopes
	Resolution int       // number of stations
	X          []float64 // [Resolution] distance of stations from the start node
	Low        ele.Diagrams
	High       ele.Diagrams
}

// EnvelopeOpts holds options for BuildEnvelopes
type EnvelopeOpts struct {
	Solver   fem.Solver // solver; nil => fem.LinearSolver
	Nworkers int        // number of cases solved concurrently; ≤ 0 => GOMAXPROCS; 1 => sequential
}

// BuildEnvelopes solves mdl for each load case, samples all elements and reduces
// the results to min/max envelopes; one ForceEnvelopes per element in model order.
// Each case is solved on its own copy of mdl; the displacements of mdl are not modified
//  Input:
//   cases     -- independent load cases
//   increment -- approximate spacing between stations
//   opts      -- options; may be nil
func BuildEnvelopes(mdl *fem.Model, cases [][]ele.Load, increment float64, opts *EnvelopeOpts) (res []*ForceEnvelopes, err error) {

	// check
	if len(cases) == 0 {
		return nil, chk.Err("at least one load case must be given")
	}
	if increment <= 0 {
		return nil, chk.Err("increment must be positive. %g is invalid", increment)
	}
	if opts == nil {
		opts = new(EnvelopeOpts)
	}
	solver := opts.Solver
	if solver == nil {
		solver = new(fem.LinearSolver)
	}
	nworkers := opts.Nworkers
	if nworkers <= 0 {
		nworkers = runtime.GOMAXPROCS(0)
	}

	// solve and sample each case on its own snapshot
	all := make([][]*InternalForces, len(cases))
	var g errgroup.Group
	g.SetLimit(nworkers)
	for k, loads := range cases {
		k, loads := k, loads
		g.Go(func() (err error) {
			snap := mdl.Clone()
			err = solver.Solve(snap, loads)
			if err != nil {
				return chk.Err("load case %d: %v", k, err)
			}
			all[k], err = SampleModel(snap, increment)
			if err != nil {
				return chk.Err("load case %d: %v", k, err)
			}
			return
		})
	}
	err = g.Wait()
	if err != nil {
		return
	}
	if mdl.Verbose {
		io.Pfcyan("> %d load cases solved\n", len(cases))
	}

	// reduce
	return Envelopes(mdl.Elems, all)
}

// Envelopes reduces sampled internal forces to min/max envelopes
//  Input:
//   elems -- elements to be referenced by the results
//   all   -- [ncases][nelems] internal forces; stations must match across cases
func Envelopes(elems []*ele.Beam, all [][]*InternalForces) (res []*ForceEnvelopes, err error) {
	if len(all) == 0 {
		return nil, chk.Err("at least one load case must be given")
	}
	for k, ifs := range all {
		if len(ifs) != len(elems) {
			return nil, chk.Err("load case %d has %d elements; %d were expected", k, len(ifs), len(elems))
		}
	}
	res = make([]*ForceEnvelopes, len(elems))
	for i, e := range elems {
		first := all[0][i]
		o := &ForceEnvelopes{
			Elem:       e,
			Resolution: first.Resolution,
			X:          append([]float64(nil), first.X...),
			Low:        *ele.NewDiagrams(first.Resolution),
			High:       *ele.NewDiagrams(first.Resolution),
		}
		lo, hi := o.Low.Components(), o.High.Components()
		for c, v := range first.Components() {
			copy(lo[c], v)
			copy(hi[c], v)
		}
		for k := 1; k < len(all); k++ {
			ifs := all[k][i]
			if ifs.Resolution != first.Resolution || len(ifs.X) != len(first.X) {
				return nil, chk.Err("element %d: load case %d has %d stations; %d were expected", e.Id, k, ifs.Resolution, first.Resolution)
			}
			for c, v := range ifs.Components() {
				for j, val := range v {
					if val < lo[c][j] {
						lo[c][j] = val
					}
					if val > hi[c][j] {
						hi[c][j] = val
					}
				}
			}
		}
		res[i] = o
	}
	return
}

// Extremes returns the overall lowest and highest values of each component in
// the order P, My, Vy, Mz, Vz
func (o *ForceEnvelopes) Extremes() (low, high []float64) {
	lo, hi := o.Low.Components(), o.High.Components()
	low = make([]float64, len(lo))
	high = make([]float64, len(hi))
	for c := range lo {
		low[c] = floats.Min(lo[c])
		high[c] = floats.Max(hi[c])
	}
	return
}
