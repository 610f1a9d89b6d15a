// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements section and material models for frame members
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// OnedLinElast implements a linear elastic model for 1D frame elements
//
//  Bending about the local z-axis (deflection along local y) uses Izz;
//  bending about the local y-axis (deflection along local z) uses Iyy.
type OnedLinElast struct {
	E   float64 // Young's modulus
	G   float64 // shear modulus
	A   float64 // cross-sectional area
	Izz float64 // moment of inertia of cross section about local z-axis
	Iyy float64 // moment of inertia of cross section about local y-axis
	J   float64 // torsional constant
	Rho float64 // density
}

// Init initialises model
func (o *OnedLinElast) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "G":
			o.G = p.V
		case "A":
			o.A = p.V
		case "Izz", "I22":
			o.Izz = p.V
		case "Iyy", "I11":
			o.Iyy = p.V
		case "J", "Jtt":
			o.J = p.V
		case "rho":
			o.Rho = p.V
		default:
			return chk.Err("oned-elast: parameter named %q is not available", p.N)
		}
	}
	return o.Check()
}

// Check checks whether all stiffness parameters are positive
func (o *OnedLinElast) Check() (err error) {
	ϵp := 1e-14
	if o.E < ϵp || o.A < ϵp || o.Izz < ϵp {
		return chk.Err("oned-elast: E, A and Izz parameters must be all positive. E=%g A=%g Izz=%g", o.E, o.A, o.Izz)
	}
	if o.G < ϵp || o.Iyy < ϵp || o.J < ϵp {
		return chk.Err("oned-elast: G, Iyy and J parameters must be all positive. G=%g Iyy=%g J=%g", o.G, o.Iyy, o.J)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o OnedLinElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 2.0000e+08},
		&dbf.P{N: "G", V: 7.5758e+07},
		&dbf.P{N: "A", V: 1.0000e-02},
		&dbf.P{N: "Izz", V: 8.3333e-06},
		&dbf.P{N: "Iyy", V: 8.3333e-06},
		&dbf.P{N: "J", V: 1.4063e-05},
		&dbf.P{N: "rho", V: 7.8500e+00},
	}
}
