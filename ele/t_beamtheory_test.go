// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_theory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("theory01. line loads")

	L := 4.0
	chk.Float64(tst, "P @ 0", 1e-15, PLine(3, L, 0), 0)
	chk.Float64(tst, "P @ 2", 1e-15, PLine(3, L, 2), -6)
	chk.Float64(tst, "V @ 4", 1e-15, VLine(3, L, 4), -12)
	chk.Float64(tst, "M @ 2", 1e-15, MLine(3, L, 2), -6)
	chk.Float64(tst, "M @ 4", 1e-15, MLine(3, L, 4), -24)

	// stations outside [0, L] are clipped
	chk.Float64(tst, "V @ 5", 1e-15, VLine(3, L, 5), -12)
	chk.Float64(tst, "M @ -1", 1e-15, MLine(3, L, -1), 0)
}

func Test_theory02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("theory02. point loads")

	L, frac := 4.0, 0.5
	chk.Float64(tst, "P before", 1e-15, PPoint(10, L, 1.999, frac), 0)
	chk.Float64(tst, "P @ load", 1e-15, PPoint(10, L, 2, frac), -10)
	chk.Float64(tst, "V before", 1e-15, VPoint(10, L, 1.999, frac), 0)
	chk.Float64(tst, "V @ load", 1e-15, VPoint(10, L, 2, frac), -10)
	chk.Float64(tst, "V after", 1e-15, VPoint(10, L, 3, frac), -10)
	chk.Float64(tst, "M @ load", 1e-15, MPoint(10, L, 2, frac), 0)
	chk.Float64(tst, "M after", 1e-15, MPoint(10, L, 3.5, frac), -15)

	// loads at the ends
	chk.Float64(tst, "V @ 0 (frac=0)", 1e-15, VPoint(10, L, 0, 0), -10)
	chk.Float64(tst, "V @ L (frac=1)", 1e-15, VPoint(10, L, L, 1), -10)
	chk.Float64(tst, "V before L (frac=1)", 1e-15, VPoint(10, L, 3.9999, 1), 0)
}

func Test_theory03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("theory03. invalid length")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("non-positive length should panic\n")
		}
	}()
	VLine(1, 0, 0)
}
