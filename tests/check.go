// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test elements and frame post-processing
package tests

import (
	"math"
	"testing"

	"github.com/pitipatw/AsapToolkit/ele"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CompareDiagrams compares all components of two sets of diagrams
func CompareDiagrams(tst *testing.T, msg string, tol float64, res, correct *ele.Diagrams) {
	rc, cc := res.Components(), correct.Components()
	for c, key := range ele.ComponentKeys {
		chk.Array(tst, io.Sf("%s: %s", msg, key), tol, rc[c], cc[c])
	}
}

// CheckConstant checks that all values in v are equal to val
func CheckConstant(tst *testing.T, msg string, tol float64, v []float64, val float64) {
	for i, vi := range v {
		if math.Abs(vi-val) > tol {
			tst.Errorf("%s: value @ %d is %g; %g was expected\n", msg, i, vi, val)
			return
		}
	}
}

// CheckAffine checks that m(x) = m(0) + slope * x
func CheckAffine(tst *testing.T, msg string, tol float64, x, m []float64, slope float64) {
	for i, xi := range x {
		correct := m[0] + slope*xi
		if math.Abs(m[i]-correct) > tol {
			tst.Errorf("%s: value @ x=%g is %g; %g was expected\n", msg, xi, m[i], correct)
			return
		}
	}
}

// CompareAna compares sampled shear and moment with an analytical solution
func CompareAna(tst *testing.T, msg string, tol float64, x, V, M []float64, calc func(x float64) (V, M float64), verbose bool) {
	for i, xi := range x {
		v, m := calc(xi)
		chk.AnaNum(tst, io.Sf("%s: V(%g)", msg, xi), tol, v, V[i], verbose)
		chk.AnaNum(tst, io.Sf("%s: M(%g)", msg, xi), tol, m, M[i], verbose)
	}
}
