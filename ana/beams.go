// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

// Classical beam solutions along x ∈ [0, L]. Loads point downwards (against
// the local y-axis) and are given as positive magnitudes. Results follow the
// convention of out.InternalForces: shear is the sum of upward forces to the
// left of the cut and sagging moments are positive

// SimpleBeamPointLoad holds a simply supported beam with a point load P at a
type SimpleBeamPointLoad struct {
	L float64 // length
	P float64 // load
	A float64 // position of load
}

// Reactions returns the upward reactions at x=0 and x=L
func (o SimpleBeamPointLoad) Reactions() (R0, R1 float64) {
	R0 = o.P * (o.L - o.A) / o.L
	R1 = o.P * o.A / o.L
	return
}

// Calc returns shear force and bending moment at x. The load is included at x=A
func (o SimpleBeamPointLoad) Calc(x float64) (V, M float64) {
	R0, _ := o.Reactions()
	if x < o.A {
		return R0, R0 * x
	}
	return R0 - o.P, R0*x - o.P*(x-o.A)
}

// SimpleBeamUniform holds a simply supported beam with uniform load q
type SimpleBeamUniform struct {
	L float64 // length
	Q float64 // load per unit length
}

// Calc returns shear force and bending moment at x
func (o SimpleBeamUniform) Calc(x float64) (V, M float64) {
	V = o.Q*o.L/2.0 - o.Q*x
	M = o.Q * x * (o.L - x) / 2.0
	return
}

// CantileverUniform holds a cantilever clamped at x=0 with uniform load q
type CantileverUniform struct {
	L float64 // length
	Q float64 // load per unit length
}

// Calc returns shear force and bending moment at x
func (o CantileverUniform) Calc(x float64) (V, M float64) {
	r := o.L - x
	V = o.Q * r
	M = -o.Q * r * r / 2.0
	return
}

// FixedUniform holds a beam clamped at both ends with uniform load q
type FixedUniform struct {
	L float64 // length
	Q float64 // load per unit length
}

// Calc returns shear force and bending moment at x
func (o FixedUniform) Calc(x float64) (V, M float64) {
	l := o.L
	V = o.Q*l/2.0 - o.Q*x
	M = o.Q*l*x/2.0 - o.Q*l*l/12.0 - o.Q*x*x/2.0
	return
}
