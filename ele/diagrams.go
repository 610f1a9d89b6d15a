// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// Diagrams holds internal forces sampled along an element
//
//  My is the bending moment in the local x-y plane (associated with Vy)
//  Mz is the bending moment in the local x-z plane (associated with Vz)
type Diagrams struct {
	P  []float64 // axial force (tension is positive)
	My []float64 // bending moment due to forces along local y
	Vy []float64 // shear force along local y
	Mz []float64 // bending moment due to forces along local z
	Vz []float64 // shear force along local z
}

// NewDiagrams allocates diagrams with n stations
func NewDiagrams(n int) *Diagrams {
	return &Diagrams{
		P:  make([]float64, n),
		My: make([]float64, n),
		Vy: make([]float64, n),
		Mz: make([]float64, n),
		Vz: make([]float64, n),
	}
}

// Size returns the number of stations
func (o *Diagrams) Size() int { return len(o.P) }

// Components returns the five diagrams in the order P, My, Vy, Mz, Vz
func (o *Diagrams) Components() [][]float64 {
	return [][]float64{o.P, o.My, o.Vy, o.Mz, o.Vz}
}

// Append appends the stations of another set of diagrams
func (o *Diagrams) Append(other *Diagrams) {
	o.P = append(o.P, other.P...)
	o.My = append(o.My, other.My...)
	o.Vy = append(o.Vy, other.Vy...)
	o.Mz = append(o.Mz, other.Mz...)
	o.Vz = append(o.Vz, other.Vz...)
}

// ComponentKeys holds the names of the components returned by Components
var ComponentKeys = []string{"P", "My", "Vy", "Mz", "Vz"}

// Component returns the diagram named key; see ComponentKeys
func (o *Diagrams) Component(key string) (v []float64, err error) {
	switch key {
	case "P":
		return o.P, nil
	case "My":
		return o.My, nil
	case "Vy":
		return o.Vy, nil
	case "Mz":
		return o.Mz, nil
	case "Vz":
		return o.Vz, nil
	}
	return nil, chk.Err("diagram component %q is invalid. options are %v", key, ComponentKeys)
}
