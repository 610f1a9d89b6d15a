// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/pitipatw/AsapToolkit/msolid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Material holds section and material data of frame members
type Material struct {

	// input
	Name  string     `json:"name" yaml:"name"`   // name of material
	Model string     `json:"model" yaml:"model"` // name of model; only "oned-elast" is available
	Extra string     `json:"extra" yaml:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms" yaml:"prms"`   // prms holds all model parameters for this material

	// optional: parameters from reference material and cross-section; Prms take precedence
	Ref     string               `json:"ref" yaml:"ref"`         // reference material; e.g. "steel"
	Unit    string               `json:"unit" yaml:"unit"`       // unit of pressure of reference material; default "kPa"
	Section *msolid.CrossSection `json:"section" yaml:"section"` // cross-section

	// derived
	Solid *msolid.OnedLinElast `json:"-" yaml:"-"` // pointer to actual model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb map[string]*Material

// NewMatDb allocates and initialises all models
func NewMatDb(mats MatsData) (mdb MatDb, err error) {
	mdb = make(map[string]*Material)
	for _, m := range mats {
		if m.Name == "" {
			return nil, chk.Err("material name must be given")
		}
		if _, ok := mdb[m.Name]; ok {
			return nil, chk.Err("material %q is defined more than once", m.Name)
		}
		if m.Model != "" && m.Model != "oned-elast" {
			return nil, chk.Err("material %q: model %q is not available", m.Name, m.Model)
		}
		var prms dbf.Params
		if m.Ref != "" {
			var ref msolid.RefMaterial
			err = ref.Init(m.Ref, m.Unit)
			if err != nil {
				return nil, chk.Err("material %q: %v", m.Name, err)
			}
			prms = append(prms, ref.GetPrms()...)
		}
		if m.Section != nil {
			err = m.Section.Init()
			if err != nil {
				return nil, chk.Err("material %q: %v", m.Name, err)
			}
			prms = append(prms, m.Section.GetPrms()...)
		}
		prms = append(prms, m.Prms...)
		m.Solid = new(msolid.OnedLinElast)
		err = m.Solid.Init(prms)
		if err != nil {
			return nil, chk.Err("material %q: %v", m.Name, err)
		}
		mdb[m.Name] = m
	}
	return
}

// Get returns material by name or nil if not found
func (o MatDb) Get(name string) *Material {
	if m, ok := o[name]; ok {
		return m
	}
	return nil
}
