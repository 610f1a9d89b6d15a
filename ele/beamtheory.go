// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// Contributions of loads to internal forces at a cut x, from the equilibrium
// of the free body [0, x]. Load values w and p must be given in the convention
// returned by LocalLoad. A point load at a = frac*L is included when x ≥ a.

// PLine returns the axial force due to a uniform axial load w
func PLine(w, L, x float64) float64 {
	x = clampX(L, x)
	return -w * x
}

// MLine returns the bending moment due to a uniform transverse load w
func MLine(w, L, x float64) float64 {
	x = clampX(L, x)
	return -w * x * x / 2.0
}

// VLine returns the shear force due to a uniform transverse load w
func VLine(w, L, x float64) float64 {
	x = clampX(L, x)
	return -w * x
}

// PPoint returns the axial force due to a concentrated axial load p
func PPoint(p, L, x, frac float64) float64 {
	x = clampX(L, x)
	if x < frac*L {
		return 0
	}
	return -p
}

// MPoint returns the bending moment due to a concentrated transverse load p
func MPoint(p, L, x, frac float64) float64 {
	x = clampX(L, x)
	a := frac * L
	if x < a {
		return 0
	}
	return -p * (x - a)
}

// VPoint returns the shear force due to a concentrated transverse load p
func VPoint(p, L, x, frac float64) float64 {
	x = clampX(L, x)
	if x < frac*L {
		return 0
	}
	return -p
}

func clampX(L, x float64) float64 {
	if L <= 0 {
		chk.Panic("element length must be positive. L=%g is invalid", L)
	}
	if x < 0 {
		return 0
	}
	if x > L {
		return L
	}
	return x
}
