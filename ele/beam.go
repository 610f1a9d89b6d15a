// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/pitipatw/AsapToolkit/msolid"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Beam represents a 3D frame element (Euler-Bernoulli, linear elastic)
//
//                 y                 local axes:
//                 ^                  x -- from node (0) to node (1)
//                 |                  y -- component of global Z orthogonal to x
//                 |                        (global X for vertical members)
//                (0)-------------(1)---> x
//               ,'                   z -- x cross y
//             z                      y and z are then rotated by Psi about x
//
//  DOFs per end (local and global): ux, uy, uz, rx, ry, rz
type Beam struct {

	// basic data
	Id    int                  // identifier
	Nodes [2]*Node             // end nodes
	Mdl   *msolid.OnedLinElast // section and material
	Psi   float64              // roll angle about local x-axis

	// releases and loads
	Release []float64 // [12] mask: 1 => transmitted, 0 => released
	LoadIds []int     // ids of loads assigned to this element; kept by the model

	// derived
	L  float64    // length
	E0 []float64  // [3] unit vector aligned with local x-axis
	E1 []float64  // [3] unit vector aligned with local y-axis
	E2 []float64  // [3] unit vector aligned with local z-axis
	T  *mat.Dense // [12][12] global-to-local transformation matrix
	Kl *mat.Dense // [12][12] local K matrix; condensed if there are releases
	K  *mat.Dense // [12][12] global K matrix

	// condensation: Qc = mask * (Q - G * Q)
	gcond *mat.Dense // [12][12] Kab * inv(Kbb) placed at rows a and columns b; nil without releases
}

// NewBeam returns a new beam. Recompute must be called before use
func NewBeam(id int, n0, n1 *Node, mdl *msolid.OnedLinElast) *Beam {
	mask, _ := GetRelease("")
	return &Beam{Id: id, Nodes: [2]*Node{n0, n1}, Mdl: mdl, Release: mask}
}

// SetRelease sets release mask by name; e.g. "freefree"
func (o *Beam) SetRelease(name string) (err error) {
	o.Release, err = GetRelease(name)
	return
}

// SetReleaseMask sets a custom release mask
func (o *Beam) SetReleaseMask(mask []float64) (err error) {
	err = checkRelease(mask)
	if err != nil {
		return
	}
	o.Release = make([]float64, len(mask))
	copy(o.Release, mask)
	return
}

// Recompute re-computes axes and matrices after coordinates, releases or parameters are externally changed
func (o *Beam) Recompute() (err error) {

	// check
	if o.Nodes[0] == nil || o.Nodes[1] == nil {
		return chk.Err("beam %d: end nodes must be set", o.Id)
	}
	if o.Mdl == nil {
		return chk.Err("beam %d: section/material model must be set", o.Id)
	}
	err = checkRelease(o.Release)
	if err != nil {
		return chk.Err("beam %d: %v", o.Id, err)
	}

	// length
	v01 := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v01[i] = o.Nodes[1].X[i] - o.Nodes[0].X[i]
	}
	l := math.Sqrt(dot3d(v01, v01))
	if l < 1e-12 {
		return chk.Err("beam %d: length must be positive. L=%g is invalid", o.Id, l)
	}
	o.L = l

	// local axes
	o.E0 = make([]float64, 3)
	for i := 0; i < 3; i++ {
		o.E0[i] = v01[i] / l
	}
	ref := []float64{0, 0, 1}
	if math.Abs(o.E0[2]) > 1.0-1e-9 {
		ref = []float64{1, 0, 0}
	}
	vy := make([]float64, 3)
	c := dot3d(ref, o.E0)
	for i := 0; i < 3; i++ {
		vy[i] = ref[i] - c*o.E0[i]
	}
	ly := math.Sqrt(dot3d(vy, vy))
	for i := 0; i < 3; i++ {
		vy[i] /= ly
	}
	vz := make([]float64, 3)
	cross3d(vz, o.E0, vy) // vz := e0 cross vy
	cψ, sψ := math.Cos(o.Psi), math.Sin(o.Psi)
	o.E1 = make([]float64, 3)
	o.E2 = make([]float64, 3)
	for i := 0; i < 3; i++ {
		o.E1[i] = cψ*vy[i] + sψ*vz[i]
		o.E2[i] = -sψ*vy[i] + cψ*vz[i]
	}

	// global to local transformation matrix
	o.T = mat.NewDense(12, 12, nil)
	for k := 0; k < 4; k++ {
		for j := 0; j < 3; j++ {
			o.T.Set(3*k+0, 3*k+j, o.E0[j])
			o.T.Set(3*k+1, 3*k+j, o.E1[j])
			o.T.Set(3*k+2, 3*k+j, o.E2[j])
		}
	}

	// stiffness matrix in local system, then condensation of released DOFs
	kl := o.localStiffness()
	o.gcond, err = o.condensation(kl)
	if err != nil {
		return
	}
	o.Kl = mat.NewDense(12, 12, nil)
	if o.gcond == nil {
		o.Kl.Copy(kl)
	} else {
		var gk mat.Dense
		gk.Mul(o.gcond, kl)
		o.Kl.Sub(kl, &gk)
		o.applyMaskRows(o.Kl)
	}

	// stiffness matrix in global system
	var tmp mat.Dense
	tmp.Mul(o.Kl, o.T)
	o.K = mat.NewDense(12, 12, nil)
	o.K.Mul(o.T.T(), &tmp) // K := trans(T) * Kl * T
	return
}

// localStiffness computes the uncondensed 12x12 local stiffness matrix
func (o *Beam) localStiffness() (kl *mat.Dense) {

	// constants
	l := o.L
	ll := l * l
	lll := l * ll
	EA, GJ := o.Mdl.E*o.Mdl.A, o.Mdl.G*o.Mdl.J
	EIz, EIy := o.Mdl.E*o.Mdl.Izz, o.Mdl.E*o.Mdl.Iyy

	// axial and torsion
	kl = mat.NewDense(12, 12, nil)
	kl.Set(0, 0, EA/l)
	kl.Set(0, 6, -EA/l)
	kl.Set(6, 0, -EA/l)
	kl.Set(6, 6, EA/l)
	kl.Set(3, 3, GJ/l)
	kl.Set(3, 9, -GJ/l)
	kl.Set(9, 3, -GJ/l)
	kl.Set(9, 9, GJ/l)

	// bending in x-y plane: uy0, rz0, uy1, rz1
	v := []int{1, 5, 7, 11}
	kv := [][]float64{
		{12 * EIz / lll, 6 * EIz / ll, -12 * EIz / lll, 6 * EIz / ll},
		{6 * EIz / ll, 4 * EIz / l, -6 * EIz / ll, 2 * EIz / l},
		{-12 * EIz / lll, -6 * EIz / ll, 12 * EIz / lll, -6 * EIz / ll},
		{6 * EIz / ll, 2 * EIz / l, -6 * EIz / ll, 4 * EIz / l},
	}

	// bending in x-z plane: uz0, ry0, uz1, ry1
	w := []int{2, 4, 8, 10}
	kw := [][]float64{
		{12 * EIy / lll, -6 * EIy / ll, -12 * EIy / lll, -6 * EIy / ll},
		{-6 * EIy / ll, 4 * EIy / l, 6 * EIy / ll, 2 * EIy / l},
		{-12 * EIy / lll, 6 * EIy / ll, 12 * EIy / lll, 6 * EIy / ll},
		{-6 * EIy / ll, 2 * EIy / l, 6 * EIy / ll, 4 * EIy / l},
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			kl.Set(v[i], v[j], kv[i][j])
			kl.Set(w[i], w[j], kw[i][j])
		}
	}
	return
}

// condensation computes G = Kab * inv(Kbb), where b are the released DOFs
func (o *Beam) condensation(kl *mat.Dense) (g *mat.Dense, err error) {
	var a, b []int
	for i, m := range o.Release {
		if m == 0 {
			b = append(b, i)
		} else {
			a = append(a, i)
		}
	}
	if len(b) == 0 {
		return
	}
	kbb := mat.NewDense(len(b), len(b), nil)
	for i, I := range b {
		for j, J := range b {
			kbb.Set(i, j, kl.At(I, J))
		}
	}
	var ibb mat.Dense
	err = ibb.Inverse(kbb)
	if err != nil {
		return nil, chk.Err("beam %d: released DOFs %v yield a mechanism: %v", o.Id, b, err)
	}
	g = mat.NewDense(12, 12, nil)
	for _, I := range a {
		for j := range b {
			sum := 0.0
			for k, K := range b {
				sum += kl.At(I, K) * ibb.At(k, j)
			}
			g.Set(I, b[j], sum)
		}
	}
	return
}

// applyMaskRows zeroes the rows of released DOFs
func (o *Beam) applyMaskRows(m *mat.Dense) {
	for i, r := range o.Release {
		if r == 0 {
			for j := 0; j < 12; j++ {
				m.Set(i, j, 0)
			}
		}
	}
}

// Condense applies the static condensation of released DOFs to a vector of
// local fixed-end reactions (in-place)
func (o *Beam) Condense(q []float64) {
	if o.gcond != nil {
		gq := mat.NewVecDense(12, nil)
		gq.MulVec(o.gcond, mat.NewVecDense(12, q))
		for i := 0; i < 12; i++ {
			q[i] -= gq.AtVec(i)
		}
	}
	for i, r := range o.Release {
		q[i] *= r
	}
}

// Displacements returns the 12 global displacements of both end nodes
func (o *Beam) Displacements() (u []float64) {
	u = make([]float64, 2*Ndof)
	copy(u[:Ndof], o.Nodes[0].U[:])
	copy(u[Ndof:], o.Nodes[1].U[:])
	return
}

// FixedEndForces returns the condensed local fixed-end reactions of loads
func (o *Beam) FixedEndForces(loads []Load) (qf []float64) {
	qf = make([]float64, 2*Ndof)
	for _, load := range loads {
		q := load.FixedEnd(o)
		o.Condense(q)
		for i := 0; i < 2*Ndof; i++ {
			qf[i] += q[i]
		}
	}
	return
}

// EndForces computes the local end forces acting on this element
//  F = mask * (Kl * T * u + Qf)
//  where u holds the end nodes displacements and Qf the fixed-end reactions of loads
func (o *Beam) EndForces(loads []Load) (F []float64) {
	u := mat.NewVecDense(2*Ndof, o.Displacements())
	var ul, fl mat.VecDense
	ul.MulVec(o.T, u)
	fl.MulVec(o.Kl, &ul)
	qf := o.FixedEndForces(loads)
	F = make([]float64, 2*Ndof)
	for i := 0; i < 2*Ndof; i++ {
		F[i] = o.Release[i] * (fl.AtVec(i) + qf[i])
	}
	return
}

// ToLocal converts a global 3-vector into local axes
func (o *Beam) ToLocal(v []float64) []float64 {
	return []float64{dot3d(o.E0, v), dot3d(o.E1, v), dot3d(o.E2, v)}
}

// Clone returns a copy of this element attached to other nodes (with the same ids).
// Matrices are shared since they are never modified after Recompute
func (o *Beam) Clone(n0, n1 *Node) *Beam {
	b := *o
	b.Nodes = [2]*Node{n0, n1}
	b.Release = append([]float64(nil), o.Release...)
	b.LoadIds = append([]int(nil), o.LoadIds...)
	return &b
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

func dot3d(u, v []float64) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// cross3d computes w := u cross v
func cross3d(w, u, v []float64) {
	w[0] = u[1]*v[2] - u[2]*v[1]
	w[1] = u[2]*v[0] - u[0]*v[2]
	w[2] = u[0]*v[1] - u[1]*v[0]
}
