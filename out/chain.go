// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/pitipatw/AsapToolkit/ele"
	"github.com/pitipatw/AsapToolkit/fem"

	"github.com/cpmech/gosl/chk"
)

// SampleChain computes internal forces along one physical member represented by
// an ordered chain of elements. Stations of each segment are shifted by the
// length of the previous segments and appended; jumps at junctions are kept.
//  Input:
//   elems      -- ordered segments; all must belong to mdl
//   resolution -- total number of stations; each segment gets max(round(resolution/nseg), 2)
//  Note: Elem of the result is the first segment
func SampleChain(elems []*ele.Beam, mdl *fem.Model, resolution int) (o *InternalForces, err error) {

	// check
	if len(elems) == 0 {
		return nil, chk.Err("chain must have at least one element")
	}
	for i, e := range elems {
		if e == nil || mdl.Cid2elem[e.Id] != e {
			return nil, chk.Err("chain segment %d is not an element of the model", i)
		}
	}
	nseg := int(math.Round(float64(resolution) / float64(len(elems))))
	if nseg < 2 {
		nseg = 2
	}

	// loads of each element
	loadmap, err := mdl.LoadMap()
	if err != nil {
		return
	}

	// sample and stitch
	o = &InternalForces{Elem: elems[0]}
	d := ele.NewDiagrams(0)
	offset := 0.0
	for _, e := range elems {
		seg, err := SampleLoads(e, loadmap[e.Id], nseg)
		if err != nil {
			return nil, err
		}
		for _, xi := range seg.X {
			o.X = append(o.X, xi+offset)
		}
		d.Append(&seg.Diagrams)
		offset += e.L
	}
	o.Diagrams = *d
	o.Resolution = len(o.X)
	return
}
