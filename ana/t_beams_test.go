// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_beams01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("beams01. simply supported")

	sol := SimpleBeamPointLoad{L: 4, P: 10, A: 1}
	R0, R1 := sol.Reactions()
	chk.Float64(tst, "R0", 1e-15, R0, 7.5)
	chk.Float64(tst, "R1", 1e-15, R1, 2.5)
	V, M := sol.Calc(1)
	chk.Float64(tst, "V @ load", 1e-15, V, -2.5)
	chk.Float64(tst, "M @ load", 1e-15, M, 7.5)
	V, M = sol.Calc(4)
	chk.Float64(tst, "V @ L", 1e-15, V, -2.5)
	chk.Float64(tst, "M @ L", 1e-15, M, 0)

	uni := SimpleBeamUniform{L: 4, Q: 3}
	V, M = uni.Calc(2)
	chk.Float64(tst, "V @ mid", 1e-15, V, 0)
	chk.Float64(tst, "M @ mid", 1e-15, M, 6)
}

func Test_beams02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("beams02. cantilever and clamped beam")

	can := CantileverUniform{L: 3, Q: 2}
	fix := FixedUniform{L: 3, Q: 2}
	for _, x := range utl.LinSpace(0, 3, 7) {
		Vc, Mc := can.Calc(x)
		Vf, Mf := fix.Calc(x)
		io.Pforan("x=%5.2f  cantilever: V=%8.4f M=%8.4f  fixed: V=%8.4f M=%8.4f\n", x, Vc, Mc, Vf, Mf)
	}
	V, M := can.Calc(0)
	chk.Float64(tst, "cantilever: V @ 0", 1e-15, V, 6)
	chk.Float64(tst, "cantilever: M @ 0", 1e-15, M, -9)
	V, M = can.Calc(3)
	chk.Float64(tst, "cantilever: V @ L", 1e-15, V, 0)
	chk.Float64(tst, "cantilever: M @ L", 1e-15, M, 0)

	_, M = fix.Calc(0)
	chk.Float64(tst, "fixed: M @ 0", 1e-15, M, -1.5)
	_, M = fix.Calc(1.5)
	chk.Float64(tst, "fixed: M @ mid", 1e-15, M, 0.75)
	_, M = fix.Calc(3)
	chk.Float64(tst, "fixed: M @ L", 1e-14, M, -1.5)
}
