// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/pitipatw/AsapToolkit/ele"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solver computes the displacement state of a model subjected to a load case.
// Solve assigns loads to the model and overwrites the displacements of all nodes
type Solver interface {
	Solve(mdl *Model, loads []ele.Load) (err error)
}

// LinearSolver implements a first-order linear elastic static solver
type LinearSolver struct {
	Tol float64 // DOFs with stiffness below Tol*max(diag(K)) are discarded unless loaded above Tol*max|f|; 0 => 1e-12
}

// Solve solves K u = f for the free DOFs and saves u in the nodes
func (o *LinearSolver) Solve(mdl *Model, loads []ele.Load) (err error) {

	// assign loads
	err = mdl.SetLoads(loads)
	if err != nil {
		return
	}

	// equation numbers
	ny := ele.Ndof * len(mdl.Nodes)
	for i, n := range mdl.Nodes {
		for j := 0; j < ele.Ndof; j++ {
			n.Eqs[j] = i*ele.Ndof + j
		}
	}

	// assemble K and f
	K := mat.NewDense(ny, ny, nil)
	f := make([]float64, ny)
	umap := make([]int, 2*ele.Ndof)
	for _, e := range mdl.Elems {
		for m := 0; m < 2; m++ {
			copy(umap[m*ele.Ndof:], e.Nodes[m].Eqs[:])
		}
		for i, I := range umap {
			for j, J := range umap {
				K.Set(I, J, K.At(I, J)+e.K.At(i, j))
			}
		}
		elemLoads, err := mdl.ElemLoads(e)
		if err != nil {
			return err
		}
		if len(elemLoads) == 0 {
			continue
		}
		var fx mat.VecDense
		qf := mat.NewVecDense(2*ele.Ndof, e.FixedEndForces(elemLoads))
		fx.MulVec(e.T.T(), qf) // fx = trans(T) * Qf
		for i, I := range umap {
			f[I] -= fx.AtVec(i)
		}
	}

	// free DOFs
	tol := o.Tol
	if tol <= 0 {
		tol = 1e-12
	}
	maxdiag := 0.0
	for i := 0; i < ny; i++ {
		maxdiag = math.Max(maxdiag, math.Abs(K.At(i, i)))
	}
	maxf := floats.Norm(f, math.Inf(1))
	var free []int
	for _, n := range mdl.Nodes {
		for j := 0; j < ele.Ndof; j++ {
			n.U[j] = 0
			I := n.Eqs[j]
			if n.Fixed[j] {
				continue
			}
			if math.Abs(K.At(I, I)) <= tol*maxdiag {
				if math.Abs(f[I]) > tol*maxf {
					return chk.Err("node %d: dof %q has no stiffness but is loaded", n.Id, ele.DofKeys[j])
				}
				continue
			}
			free = append(free, I)
		}
	}
	if mdl.Verbose {
		io.Pforan("> solving: %d equations (%d free)\n", ny, len(free))
	}
	if len(free) == 0 {
		return
	}

	// reduced system
	nf := len(free)
	Kff := mat.NewSymDense(nf, nil)
	ff := mat.NewVecDense(nf, nil)
	for i, I := range free {
		ff.SetVec(i, f[I])
		for j := i; j < nf; j++ {
			J := free[j]
			Kff.SetSym(i, j, (K.At(I, J)+K.At(J, I))/2.0)
		}
	}

	// solve
	var uf mat.VecDense
	var chol mat.Cholesky
	if chol.Factorize(Kff) && chol.Cond() < 1e14 {
		err = chol.SolveVecTo(&uf, ff)
	} else {
		err = uf.SolveVec(Kff, ff)
	}
	if err != nil {
		return chk.Err("cannot solve linear system; the model may be a mechanism:\n%v", err)
	}

	// save displacements
	u := make([]float64, ny)
	for i, I := range free {
		u[I] = uf.AtVec(i)
	}
	for _, n := range mdl.Nodes {
		for j := 0; j < ele.Ndof; j++ {
			n.U[j] = u[n.Eqs[j]]
		}
	}
	return
}
