// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// Load defines what all element loads must compute
type Load interface {
	Id() int                                      // returns the load Id
	ElemId() int                                  // returns the Id of the element this load is bound to
	Check() (err error)                           // checks input data
	FixedEnd(e *Beam) (q []float64)               // [12] local fixed-end reactions (fixed-fixed element)
	Contribute(e *Beam, x []float64, d *Diagrams) // adds contributions at each x to diagrams
}

// LocalLoad converts a global load vector into local axes using the sign
// convention of internal forces: x keeps its sign; y and z are negated
func LocalLoad(e *Beam, v []float64) (w []float64) {
	w = e.ToLocal(v)
	w[1], w[2] = -w[1], -w[2]
	return
}

// AddLoad adds the contribution of one load to the diagrams sampled at x.
// Each load must be added once per sampling pass
func AddLoad(load Load, e *Beam, x []float64, d *Diagrams) {
	load.Contribute(e, x, d)
}

// LineLoad implements a uniform distributed load over the full length of an element
type LineLoad struct {
	Ident int       // identifier
	Eid   int       // element identifier
	Q     []float64 // [3] load intensity (force/length) in global system
}

// NewLineLoad returns a new uniform distributed load
func NewLineLoad(id, eid int, qx, qy, qz float64) *LineLoad {
	return &LineLoad{Ident: id, Eid: eid, Q: []float64{qx, qy, qz}}
}

// Id returns the load Id
func (o *LineLoad) Id() int { return o.Ident }

// ElemId returns the element Id
func (o *LineLoad) ElemId() int { return o.Eid }

// Check checks input data
func (o *LineLoad) Check() (err error) {
	if len(o.Q) != 3 {
		return chk.Err("line load %d: Q must have 3 components. %v is invalid", o.Ident, o.Q)
	}
	return
}

// FixedEnd returns the local fixed-end reactions
func (o *LineLoad) FixedEnd(e *Beam) (q []float64) {
	l := e.L
	ll := l * l
	ql := e.ToLocal(o.Q)
	q = make([]float64, 2*Ndof)
	q[0] = -ql[0] * l / 2.0
	q[1] = -ql[1] * l / 2.0
	q[2] = -ql[2] * l / 2.0
	q[4] = ql[2] * ll / 12.0
	q[5] = -ql[1] * ll / 12.0
	q[6] = -ql[0] * l / 2.0
	q[7] = -ql[1] * l / 2.0
	q[8] = -ql[2] * l / 2.0
	q[10] = -ql[2] * ll / 12.0
	q[11] = ql[1] * ll / 12.0
	return
}

// Contribute adds contributions at each x to diagrams
func (o *LineLoad) Contribute(e *Beam, x []float64, d *Diagrams) {
	w := LocalLoad(e, o.Q)
	for i, xi := range x {
		d.P[i] += PLine(w[0], e.L, xi)
		d.Vy[i] += VLine(w[1], e.L, xi)
		d.My[i] += MLine(w[1], e.L, xi)
		d.Vz[i] += VLine(w[2], e.L, xi)
		d.Mz[i] += MLine(w[2], e.L, xi)
	}
}

// PointLoad implements a concentrated load located at a fraction of the element length
type PointLoad struct {
	Ident int       // identifier
	Eid   int       // element identifier
	P     []float64 // [3] load in global system
	Frac  float64   // position along element: 0 ≤ Frac ≤ 1
}

// NewPointLoad returns a new concentrated load
func NewPointLoad(id, eid int, frac, px, py, pz float64) *PointLoad {
	return &PointLoad{Ident: id, Eid: eid, P: []float64{px, py, pz}, Frac: frac}
}

// Id returns the load Id
func (o *PointLoad) Id() int { return o.Ident }

// ElemId returns the element Id
func (o *PointLoad) ElemId() int { return o.Eid }

// Check checks input data
func (o *PointLoad) Check() (err error) {
	if len(o.P) != 3 {
		return chk.Err("point load %d: P must have 3 components. %v is invalid", o.Ident, o.P)
	}
	if o.Frac < 0 || o.Frac > 1 {
		return chk.Err("point load %d: position must be in [0, 1]. %g is invalid", o.Ident, o.Frac)
	}
	return
}

// FixedEnd returns the local fixed-end reactions
func (o *PointLoad) FixedEnd(e *Beam) (q []float64) {
	l := e.L
	ll := l * l
	lll := ll * l
	a := o.Frac * l
	b := l - a
	pl := e.ToLocal(o.P)
	q = make([]float64, 2*Ndof)
	q[0] = -pl[0] * b / l
	q[1] = -pl[1] * b * b * (3*a + b) / lll
	q[2] = -pl[2] * b * b * (3*a + b) / lll
	q[4] = pl[2] * a * b * b / ll
	q[5] = -pl[1] * a * b * b / ll
	q[6] = -pl[0] * a / l
	q[7] = -pl[1] * a * a * (a + 3*b) / lll
	q[8] = -pl[2] * a * a * (a + 3*b) / lll
	q[10] = -pl[2] * a * a * b / ll
	q[11] = pl[1] * a * a * b / ll
	return
}

// Contribute adds contributions at each x to diagrams
func (o *PointLoad) Contribute(e *Beam, x []float64, d *Diagrams) {
	p := LocalLoad(e, o.P)
	for i, xi := range x {
		d.P[i] += PPoint(p[0], e.L, xi, o.Frac)
		d.Vy[i] += VPoint(p[1], e.L, xi, o.Frac)
		d.My[i] += MPoint(p[1], e.L, xi, o.Frac)
		d.Vz[i] += VPoint(p[2], e.L, xi, o.Frac)
		d.Mz[i] += MPoint(p[2], e.L, xi, o.Frac)
	}
}
