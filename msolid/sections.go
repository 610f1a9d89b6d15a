// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// CrossSection computes properties of typical cross-sections
//
//   y is the local y-axis of the element (deflection direction for Izz)
//
//   typ : rectangle
//         circle                             tw
//         I-beam                         -->| |<--
//                                    ___    | |     ___
//   ^ y       +-------+            tf |   ########   |
//   |         |       |              ---  ########   |
//   |         |       |                      ##      |
//   +----> z  |       | h = hei              ##      | h = hei
//             |       |                      ##      |
//             |       |              ---  ########   |
//             +-------+            tf_|_  ########  ---
//              b = wid                    b = wid
//
type CrossSection struct {

	// input
	Type string  `json:"type" yaml:"type"` // "rectangle", "I-beam" or "circle"
	Wid  float64 `json:"wid" yaml:"wid"`   // width (b) if not circular
	Hei  float64 `json:"hei" yaml:"hei"`   // height (h) if not circular
	Tf   float64 `json:"tf" yaml:"tf"`     // flange thickness if I-beam
	Tw   float64 `json:"tw" yaml:"tw"`     // web thickness if I-beam
	R    float64 `json:"r" yaml:"r"`       // radius if circular

	// derived
	A   float64 `json:"-" yaml:"-"` // cross-sectional area
	Izz float64 `json:"-" yaml:"-"` // major moment of inertia (about local z)
	Iyy float64 `json:"-" yaml:"-"` // minor moment of inertia (about local y)
	J   float64 `json:"-" yaml:"-"` // torsional constant
}

// Init computes the derived properties
func (o *CrossSection) Init() (err error) {
	switch o.Type {
	case "rectangle":
		b, h := o.Wid, o.Hei
		if b <= 0 || h <= 0 {
			return chk.Err("rectangle: width and height must be positive. b=%g h=%g", b, h)
		}
		b3 := b * b * b
		h3 := h * h * h
		o.A = b * h
		o.Izz = b * h3 / 12.0
		o.Iyy = b3 * h / 12.0
		if b == h {
			o.J = 9.0 * b3 * b / 64.0
		} else {
			if b > h {
				b, h = h, b
				b3, h3 = h3, b3
			}
			o.J = h * b3 * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b3/(12.0*h*h3))) // approximate
		}

	case "I-beam":
		b, h, tf, tw := o.Wid, o.Hei, o.Tf, o.Tw
		if b <= 0 || h <= 0 || tf <= 0 || tw <= 0 || 2*tf >= h || tw >= b {
			return chk.Err("I-beam: dimensions are invalid. b=%g h=%g tf=%g tw=%g", b, h, tf, tw)
		}
		b3 := b * b * b
		h3 := h * h * h
		tf3 := tf * tf * tf
		tw3 := tw * tw * tw
		l := h - 2.0*tf
		l3 := l * l * l
		o.A = b*h - l*(b-tw)
		o.Izz = b*h3/12.0 - (b-tw)*l3/12.0
		o.Iyy = l*tw3/12.0 + tf*b3/6.0
		o.J = (2.0*b*tf3 + l*tw3) / 3.0

	case "circle":
		if o.R <= 0 {
			return chk.Err("circle: radius must be positive. r=%g", o.R)
		}
		r2 := o.R * o.R
		o.A = math.Pi * r2
		o.Izz = math.Pi * r2 * r2 / 4.0
		o.Iyy = o.Izz
		o.J = o.Izz + o.Iyy

	default:
		return chk.Err("cross-section type %q is unavailable. options are \"rectangle\", \"I-beam\" and \"circle\"", o.Type)
	}
	return
}

// GetPrms returns the section parameters of OnedLinElast
func (o *CrossSection) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "A", V: o.A},
		&dbf.P{N: "Izz", V: o.Izz},
		&dbf.P{N: "Iyy", V: o.Iyy},
		&dbf.P{N: "J", V: o.J},
	}
}

// RefMaterial holds parameters of some reference materials
type RefMaterial struct {

	// input
	Type     string // type of material; e.g. "steel"
	UnitPres string // unit of pressure

	// derived
	Desc string  // description
	E    float64 // Young's modulus
	Nu   float64 // Poisson's coefficient
	G    float64 // shear modulus
	Rho  float64 // density
}

// Init initialises material parameters
//  Input:
//   unitPres:  "kPa" => E:[kPa], rho:[Mg/m³]
//              "MPa" => E:[MPa], rho:[Gg/m³]
//              "GPa" => E:[GPa], rho:[Tg/m³]
func (o *RefMaterial) Init(typ, unitPres string) (err error) {

	// material data
	o.Type = typ
	switch typ {
	case "steel":
		o.Desc = "Steel: structural A36"
		o.E = 200000.0  // [MPa]
		o.Nu = 0.32     // [-]
		o.Rho = 7.85e-3 // [Gg/m³]
	case "aluminum":
		o.Desc = "Aluminum: 2014-T6"
		o.E = 73100.0   // [MPa]
		o.Nu = 0.35     // [-]
		o.Rho = 2.79e-3 // [Gg/m³]
	case "concrete-low":
		o.Desc = "Concrete: low strength"
		o.E = 22100.0   // [MPa]
		o.Nu = 0.15     // [-]
		o.Rho = 2.38e-3 // [Gg/m³]
	case "concrete-high":
		o.Desc = "Concrete: high strength"
		o.E = 30000.0   // [MPa]
		o.Nu = 0.15     // [-]
		o.Rho = 2.38e-3 // [Gg/m³]
	case "wood-douglas-fir":
		o.Desc = "Wood: Douglas-fir"
		o.E = 13100.0   // [MPa]
		o.Nu = 0.29     // [-]
		o.Rho = 4.70e-4 // [Gg/m³]
	default:
		return chk.Err("material type %q is unavailable", typ)
	}

	// set unit
	o.UnitPres = unitPres
	MPa_to_unitPres := 1.0
	GgByM3_toUnitDens := 1.0
	switch unitPres {
	case "", "kPa":
		o.UnitPres = "kPa"
		MPa_to_unitPres = 1e3
		GgByM3_toUnitDens = 1e3
	case "MPa":
	case "GPa":
		MPa_to_unitPres = 1e-3
		GgByM3_toUnitDens = 1e-3
	default:
		return chk.Err("unit of pressure %q is invalid", unitPres)
	}
	o.E = o.E * MPa_to_unitPres
	o.Rho = o.Rho * GgByM3_toUnitDens

	// derived quantity
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	return
}

// GetPrms returns the material parameters of OnedLinElast
func (o *RefMaterial) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: o.E},
		&dbf.P{N: "G", V: o.G},
		&dbf.P{N: "rho", V: o.Rho},
	}
}
