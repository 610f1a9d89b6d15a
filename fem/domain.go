// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the frame model and a linear static solver
package fem

import (
	"github.com/pitipatw/AsapToolkit/ele"
	"github.com/pitipatw/AsapToolkit/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Model holds all Nodes and Elements of a frame in addition to the loads
// currently assigned to elements. The displacement state lives in Nodes
type Model struct {

	// nodes and elements
	Nodes []*ele.Node // all nodes. Note: indices in Nodes do NOT correspond to Ids => use Vid2node
	Elems []*ele.Beam // all elements, in model order
	Loads []ele.Load  // load registry: loads currently assigned to elements

	// auxiliary maps
	Vid2node map[int]*ele.Node // node Id => node
	Cid2elem map[int]*ele.Beam // element Id => element
	Lid2load map[int]ele.Load  // load Id => load

	// options
	Verbose bool // show messages
}

// New returns a new model with given nodes and elements. Elements are recomputed
func New(nodes []*ele.Node, elems []*ele.Beam) (o *Model, err error) {
	o = new(Model)
	o.Nodes = nodes
	o.Elems = elems
	o.Vid2node = make(map[int]*ele.Node)
	o.Cid2elem = make(map[int]*ele.Beam)
	o.Lid2load = make(map[int]ele.Load)
	for _, n := range nodes {
		if _, ok := o.Vid2node[n.Id]; ok {
			return nil, chk.Err("node %d is defined more than once", n.Id)
		}
		o.Vid2node[n.Id] = n
	}
	for _, e := range elems {
		if _, ok := o.Cid2elem[e.Id]; ok {
			return nil, chk.Err("element %d is defined more than once", e.Id)
		}
		for m := 0; m < 2; m++ {
			if e.Nodes[m] == nil || o.Vid2node[e.Nodes[m].Id] != e.Nodes[m] {
				return nil, chk.Err("element %d: end node %d is not in model", e.Id, m)
			}
		}
		err = e.Recompute()
		if err != nil {
			return nil, err
		}
		e.LoadIds = nil
		o.Cid2elem[e.Id] = e
	}
	return
}

// NewModel builds a model from input data. The load registry starts empty
func NewModel(dat *inp.ModelData) (o *Model, err error) {
	if dat.MatDb == nil {
		dat.MatDb, err = inp.NewMatDb(dat.Materials)
		if err != nil {
			return
		}
	}
	nodes := make([]*ele.Node, len(dat.Nodes))
	vid2node := make(map[int]*ele.Node)
	for i, nd := range dat.Nodes {
		nodes[i] = ele.NewNode(nd.Id, nd.X[0], nd.X[1], nd.X[2])
		switch nd.Sup {
		case "", "free":
		case "fixed":
			nodes[i].Fix(ele.DofKeys...)
		case "pinned":
			nodes[i].Fix("ux", "uy", "uz")
		default:
			return nil, chk.Err("node %d: support %q is invalid. options are \"free\", \"fixed\" and \"pinned\"", nd.Id, nd.Sup)
		}
		if !nodes[i].Fix(nd.Keys...) {
			return nil, chk.Err("node %d: support keys %v are invalid", nd.Id, nd.Keys)
		}
		vid2node[nd.Id] = nodes[i]
	}
	elems := make([]*ele.Beam, len(dat.Elems))
	for i, ed := range dat.Elems {
		n0, n1 := vid2node[ed.Verts[0]], vid2node[ed.Verts[1]]
		if n0 == nil || n1 == nil {
			return nil, chk.Err("element %d: cannot find nodes %v", ed.Id, ed.Verts)
		}
		mat := dat.MatDb.Get(ed.Mat)
		if mat == nil {
			return nil, chk.Err("element %d: cannot find material %q", ed.Id, ed.Mat)
		}
		elems[i] = ele.NewBeam(ed.Id, n0, n1, mat.Solid)
		elems[i].Psi = ed.Psi
		if len(ed.Mask) > 0 {
			err = elems[i].SetReleaseMask(ed.Mask)
		} else {
			err = elems[i].SetRelease(ed.Release)
		}
		if err != nil {
			return nil, chk.Err("element %d: %v", ed.Id, err)
		}
	}
	o, err = New(nodes, elems)
	if err != nil {
		return
	}
	o.Verbose = dat.Data.Verbose
	return
}

// NewLoad converts input data into an element load
func NewLoad(ld *inp.LoadData) (load ele.Load, err error) {
	switch ld.Type {
	case "line":
		load = ele.NewLineLoad(ld.Id, ld.Elem, ld.V[0], ld.V[1], ld.V[2])
	case "point":
		load = ele.NewPointLoad(ld.Id, ld.Elem, ld.Frac, ld.V[0], ld.V[1], ld.V[2])
	default:
		return nil, chk.Err("load %d: type %q is invalid", ld.Id, ld.Type)
	}
	err = load.Check()
	return
}

// NewCases converts all load cases in input data
func NewCases(dat *inp.ModelData) (cases [][]ele.Load, err error) {
	cases = make([][]ele.Load, len(dat.Cases))
	for i, c := range dat.Cases {
		for _, ld := range c.Loads {
			load, e := NewLoad(ld)
			if e != nil {
				return nil, chk.Err("case %q: %v", c.Name, e)
			}
			cases[i] = append(cases[i], load)
		}
	}
	return
}

// SetLoads replaces the load registry and the loads assigned to each element
func (o *Model) SetLoads(loads []ele.Load) (err error) {
	lid2load := make(map[int]ele.Load)
	for _, load := range loads {
		err = load.Check()
		if err != nil {
			return
		}
		if _, ok := lid2load[load.Id()]; ok {
			return chk.Err("load %d is defined more than once", load.Id())
		}
		if _, ok := o.Cid2elem[load.ElemId()]; !ok {
			return chk.Err("load %d is bound to element %d which is not in model", load.Id(), load.ElemId())
		}
		lid2load[load.Id()] = load
	}
	for _, e := range o.Elems {
		e.LoadIds = nil
	}
	for _, load := range loads {
		e := o.Cid2elem[load.ElemId()]
		e.LoadIds = append(e.LoadIds, load.Id())
	}
	o.Loads = loads
	o.Lid2load = lid2load
	if o.Verbose {
		io.Pf("> %d loads assigned to %d elements\n", len(loads), len(o.Elems))
	}
	return
}

// ElemLoads returns the loads assigned to element e
func (o *Model) ElemLoads(e *ele.Beam) (loads []ele.Load, err error) {
	for _, lid := range e.LoadIds {
		load, ok := o.Lid2load[lid]
		if !ok {
			return nil, chk.Err("element %d: load %d is not in model", e.Id, lid)
		}
		if load.ElemId() != e.Id {
			return nil, chk.Err("element %d: load %d is bound to element %d", e.Id, lid, load.ElemId())
		}
		loads = append(loads, load)
	}
	return
}

// LoadMap returns a map from element Id to the loads bound to it, in one pass over the registry
func (o *Model) LoadMap() (m map[int][]ele.Load, err error) {
	m = make(map[int][]ele.Load)
	for _, load := range o.Loads {
		if _, ok := o.Cid2elem[load.ElemId()]; !ok {
			return nil, chk.Err("load %d is bound to element %d which is not in model", load.Id(), load.ElemId())
		}
		m[load.ElemId()] = append(m[load.ElemId()], load)
	}
	return
}

// Clone returns a copy of this model with its own nodes (displacement state)
// and elements. Loads are shared since they are never modified
func (o *Model) Clone() (c *Model) {
	c = new(Model)
	c.Verbose = o.Verbose
	c.Nodes = make([]*ele.Node, len(o.Nodes))
	c.Vid2node = make(map[int]*ele.Node)
	for i, n := range o.Nodes {
		c.Nodes[i] = n.Clone()
		c.Vid2node[n.Id] = c.Nodes[i]
	}
	c.Elems = make([]*ele.Beam, len(o.Elems))
	c.Cid2elem = make(map[int]*ele.Beam)
	for i, e := range o.Elems {
		c.Elems[i] = e.Clone(c.Vid2node[e.Nodes[0].Id], c.Vid2node[e.Nodes[1].Id])
		c.Cid2elem[e.Id] = c.Elems[i]
	}
	c.Loads = append([]ele.Load(nil), o.Loads...)
	c.Lid2load = make(map[int]ele.Load)
	for id, load := range o.Lid2load {
		c.Lid2load[id] = load
	}
	return
}

// Member returns the ordered chain of elements with the given ids
func (o *Model) Member(eids []int) (elems []*ele.Beam, err error) {
	if len(eids) == 0 {
		return nil, chk.Err("member must have at least one element")
	}
	elems = make([]*ele.Beam, len(eids))
	for i, eid := range eids {
		e, ok := o.Cid2elem[eid]
		if !ok {
			return nil, chk.Err("member: cannot find element %d", eid)
		}
		elems[i] = e
	}
	return
}
