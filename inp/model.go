// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a JSON or YAML model file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data for the analysis
type Data struct {
	Desc       string  `json:"desc" yaml:"desc"`             // description of model
	Increment  float64 `json:"increment" yaml:"increment"`   // spacing between stations along elements
	Resolution int     `json:"resolution" yaml:"resolution"` // number of stations for single element or chain sampling
	Nworkers   int     `json:"nworkers" yaml:"nworkers"`     // number of load cases solved concurrently; 0 => number of CPUs
	Verbose    bool    `json:"verbose" yaml:"verbose"`       // show messages
}

// NodeData holds node data
type NodeData struct {
	Id   int       `json:"id" yaml:"id"`     // identifier
	X    []float64 `json:"x" yaml:"x"`       // [3] coordinates
	Sup  string    `json:"sup" yaml:"sup"`   // support preset: "", "free", "fixed" or "pinned"
	Keys []string  `json:"keys" yaml:"keys"` // supported dofs; e.g. ["ux", "uz", "rx"]
}

// ElemData holds element data
type ElemData struct {
	Id      int       `json:"id" yaml:"id"`           // identifier
	Verts   []int     `json:"verts" yaml:"verts"`     // [2] ids of end nodes
	Mat     string    `json:"mat" yaml:"mat"`         // material name
	Release string    `json:"release" yaml:"release"` // release preset; e.g. "fixedfixed", "freefree"
	Mask    []float64 `json:"mask" yaml:"mask"`       // [12] custom release mask; overrides Release
	Psi     float64   `json:"psi" yaml:"psi"`         // roll angle (radians)
}

// LoadData holds element load data
type LoadData struct {
	Id   int       `json:"id" yaml:"id"`     // identifier
	Type string    `json:"type" yaml:"type"` // "line" or "point"
	Elem int       `json:"elem" yaml:"elem"` // id of element
	V    []float64 `json:"v" yaml:"v"`       // [3] global load vector (intensity for line loads)
	Frac float64   `json:"frac" yaml:"frac"` // point loads: position along element in [0, 1]
}

// CaseData holds one independent load case
type CaseData struct {
	Name  string      `json:"name" yaml:"name"`   // name of load case
	Loads []*LoadData `json:"loads" yaml:"loads"` // loads in this case
}

// MemberData holds one physical member made of an ordered chain of elements
type MemberData struct {
	Name  string `json:"name" yaml:"name"`   // name of member
	Elems []int  `json:"elems" yaml:"elems"` // ids of elements from start to end
}

// ModelData holds all input data
type ModelData struct {

	// input
	Data      Data          `json:"data" yaml:"data"`           // global data
	Materials MatsData      `json:"materials" yaml:"materials"` // section and material data
	Nodes     []*NodeData   `json:"nodes" yaml:"nodes"`         // nodes
	Elems     []*ElemData   `json:"elems" yaml:"elems"`         // elements
	Cases     []*CaseData   `json:"cases" yaml:"cases"`         // load cases
	Members   []*MemberData `json:"members" yaml:"members"`     // members sampled as chains

	// derived
	Key   string `json:"-" yaml:"-"` // filename key; e.g. frame01.yaml => frame01
	MatDb MatDb  `json:"-" yaml:"-"` // materials database
}

// SetDefault sets default values
func (o *Data) SetDefault() {
	o.Increment = 0.1
	o.Resolution = 20
}

// ReadModel reads all model data from a .json, .yaml or .yml file
func ReadModel(fnpath string) (o *ModelData, err error) {
	fi, err := os.Stat(os.ExpandEnv(fnpath))
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", fnpath, err)
	}
	if fi.IsDir() {
		return nil, chk.Err("model file %q is a directory", fnpath)
	}
	b := io.ReadFile(fnpath)
	ext := strings.ToLower(filepath.Ext(fnpath))
	o, err = ParseModel(b, ext)
	if err != nil {
		return nil, chk.Err("cannot parse model file %q:\n%v", fnpath, err)
	}
	o.Key = strings.TrimSuffix(filepath.Base(fnpath), filepath.Ext(fnpath))
	return
}

// ParseModel decodes model data; ext is ".json", ".yaml" or ".yml"
func ParseModel(b []byte, ext string) (o *ModelData, err error) {
	o = new(ModelData)
	o.Data.SetDefault()
	switch ext {
	case ".json":
		err = json.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("model file extension %q is not supported", ext)
	}
	if err != nil {
		return nil, err
	}
	err = o.Check()
	if err != nil {
		return nil, err
	}
	o.MatDb, err = NewMatDb(o.Materials)
	return
}

// Check checks input data
func (o *ModelData) Check() (err error) {
	if o.Data.Increment <= 0 {
		return chk.Err("increment must be positive. %g is invalid", o.Data.Increment)
	}
	if o.Data.Resolution < 2 {
		return chk.Err("resolution must be at least 2. %d is invalid", o.Data.Resolution)
	}
	for _, n := range o.Nodes {
		if len(n.X) != 3 {
			return chk.Err("node %d: coordinates must have 3 components", n.Id)
		}
	}
	for _, e := range o.Elems {
		if len(e.Verts) != 2 {
			return chk.Err("element %d: exactly 2 vertices must be given", e.Id)
		}
	}
	for _, m := range o.Members {
		if len(m.Elems) == 0 {
			return chk.Err("member %q: at least one element must be given", m.Name)
		}
	}
	for _, c := range o.Cases {
		for _, l := range c.Loads {
			if l.Type != "line" && l.Type != "point" {
				return chk.Err("case %q: load %d: type %q is invalid. options are \"line\" and \"point\"", c.Name, l.Id, l.Type)
			}
			if len(l.V) != 3 {
				return chk.Err("case %q: load %d: vector must have 3 components", c.Name, l.Id)
			}
		}
	}
	return
}
