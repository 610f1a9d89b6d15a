// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"github.com/pitipatw/AsapToolkit/ele"
	"github.com/pitipatw/AsapToolkit/fem"
	"github.com/pitipatw/AsapToolkit/msolid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// Section returns a typical steel section
func Section() *msolid.OnedLinElast {
	return &msolid.OnedLinElast{E: 2e8, G: 7.5758e7, A: 1e-2, Izz: 8.3333e-6, Iyy: 8.3333e-6, J: 1.4063e-5, Rho: 7.85}
}

// SimpleBeam returns a model with a simply supported span from (0,0,0) to (L,0,0),
// subdivided into nseg elements. The local y-axis of all elements is global Z
//  Supports: node 0 is pinned (ux, uy, uz and rx); the last node is a roller (uy and uz)
func SimpleBeam(L float64, nseg int, release string) (mdl *fem.Model, err error) {
	nodes := make([]*ele.Node, nseg+1)
	for i := 0; i <= nseg; i++ {
		nodes[i] = ele.NewNode(i, L*float64(i)/float64(nseg), 0, 0)
	}
	nodes[0].Fix("ux", "uy", "uz", "rx")
	nodes[nseg].Fix("uy", "uz")
	elems := make([]*ele.Beam, nseg)
	for i := 0; i < nseg; i++ {
		elems[i] = ele.NewBeam(i, nodes[i], nodes[i+1], Section())
		err = elems[i].SetRelease(release)
		if err != nil {
			return
		}
	}
	return fem.New(nodes, elems)
}

// Cantilever returns a model with one element from (0,0,0) to (L,0,0) clamped at node 0
func Cantilever(L float64) (mdl *fem.Model, err error) {
	n0 := ele.NewNode(0, 0, 0, 0)
	n1 := ele.NewNode(1, L, 0, 0)
	n0.Fix(ele.DofKeys...)
	return fem.New([]*ele.Node{n0, n1}, []*ele.Beam{ele.NewBeam(0, n0, n1, Section())})
}

// Portal returns a portal frame with clamped columns of height H and a beam of span S
//  nodes: 0 (0,0,0), 1 (0,0,H), 2 (S,0,H), 3 (S,0,0); elements: 0 column, 1 beam, 2 column
func Portal(H, S float64) (mdl *fem.Model, err error) {
	nodes := []*ele.Node{
		ele.NewNode(0, 0, 0, 0),
		ele.NewNode(1, 0, 0, H),
		ele.NewNode(2, S, 0, H),
		ele.NewNode(3, S, 0, 0),
	}
	nodes[0].Fix(ele.DofKeys...)
	nodes[3].Fix(ele.DofKeys...)
	elems := []*ele.Beam{
		ele.NewBeam(0, nodes[0], nodes[1], Section()),
		ele.NewBeam(1, nodes[1], nodes[2], Section()),
		ele.NewBeam(2, nodes[2], nodes[3], Section()),
	}
	return fem.New(nodes, elems)
}
