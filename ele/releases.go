// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// Release masks select which local end forces are transmitted (1) or released (0)
//
//  local order:  0   1   2   3   4   5  |  6   7   8   9  10  11
//                Fx  Fy  Fz  Mx  My  Mz |  Fx  Fy  Fz  Mx  My  Mz
//                          end 0        |        end 1
var releases = map[string][]float64{
	"fixedfixed": {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	"fixedfree":  {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
	"freefixed":  {1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1},
	"freefree":   {1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0},
}

// GetRelease returns a copy of the release mask corresponding to name.
// An empty name means "fixedfixed"
func GetRelease(name string) (mask []float64, err error) {
	if name == "" {
		name = "fixedfixed"
	}
	m, ok := releases[name]
	if !ok {
		return nil, chk.Err("release %q is not available. options are fixedfixed, fixedfree, freefixed and freefree", name)
	}
	mask = make([]float64, len(m))
	copy(mask, m)
	return
}

// checkRelease validates a custom mask
func checkRelease(mask []float64) (err error) {
	if len(mask) != 2*Ndof {
		return chk.Err("release mask must have %d components. %d is invalid", 2*Ndof, len(mask))
	}
	for i, v := range mask {
		if v != 0 && v != 1 {
			return chk.Err("release mask component %d must be 0 or 1. %g is invalid", i, v)
		}
	}
	return
}
