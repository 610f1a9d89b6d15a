// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/pitipatw/AsapToolkit/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Resolution returns the number of stations for an element of length L such that
// stations are about increment apart; at least 2
func Resolution(L, increment float64) int {
	n := int(math.Round(L / increment))
	if n < 2 {
		return 2
	}
	return n
}

// SampleModel computes internal forces along all elements of mdl, in model order
//  Input:
//   increment -- approximate spacing between stations
func SampleModel(mdl *fem.Model, increment float64) (res []*InternalForces, err error) {
	if increment <= 0 {
		return nil, chk.Err("increment must be positive. %g is invalid", increment)
	}
	loadmap, err := mdl.LoadMap()
	if err != nil {
		return
	}
	res = make([]*InternalForces, len(mdl.Elems))
	for i, e := range mdl.Elems {
		res[i], err = SampleLoads(e, loadmap[e.Id], Resolution(e.L, increment))
		if err != nil {
			return nil, err
		}
	}
	if mdl.Verbose {
		io.Pf("> internal forces sampled along %d elements\n", len(res))
	}
	return
}
