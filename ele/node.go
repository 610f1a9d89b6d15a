// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Ndof is the number of degrees of freedom per node: ux, uy, uz, rx, ry, rz
const Ndof = 6

// DofKeys holds the keys of the nodal degrees of freedom
var DofKeys = []string{"ux", "uy", "uz", "rx", "ry", "rz"}

// Node holds a frame node
type Node struct {
	Id    int           // identifier
	X     [3]float64    // coordinates
	Fixed [Ndof]bool    // supported degrees of freedom
	U     [Ndof]float64 // displacements and rotations in global system. written by the solver only
	Eqs   [Ndof]int     // equation numbers; -1 means not an unknown
}

// NewNode returns a new node with no support and zero displacements
func NewNode(id int, x, y, z float64) *Node {
	o := &Node{Id: id, X: [3]float64{x, y, z}}
	for i := 0; i < Ndof; i++ {
		o.Eqs[i] = -1
	}
	return o
}

// Fix sets supports by key; e.g. "ux", "rz". Returns false if key is invalid
func (o *Node) Fix(keys ...string) bool {
	for _, key := range keys {
		found := false
		for i, k := range DofKeys {
			if k == key {
				o.Fixed[i] = true
				found = true
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Clone returns a copy of this node, including its displacement state
func (o *Node) Clone() *Node {
	n := *o
	return &n
}
