// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frameYaml = `
data:
  desc: one span
  increment: 0.25
  nworkers: 1
materials:
  - name: steel
    prms:
      - {n: E,   v: 2.0e8}
      - {n: G,   v: 7.5e7}
      - {n: A,   v: 1.0e-2}
      - {n: Izz, v: 8.0e-6}
      - {n: Iyy, v: 4.0e-6}
      - {n: J,   v: 1.0e-5}
nodes:
  - {id: 0, x: [0, 0, 0], sup: pinned, keys: [rx]}
  - {id: 1, x: [5, 0, 0], keys: [uy, uz]}
elems:
  - {id: 0, verts: [0, 1], mat: steel, release: freefree, psi: 0.5}
cases:
  - name: point
    loads:
      - {id: 3, type: point, elem: 0, frac: 0.25, v: [0, 0, -8]}
`

const frameJSON = `{
  "data" : { "resolution" : 11 },
  "materials" : [ { "name":"steel", "prms":[
    {"n":"E","v":2e8}, {"n":"G","v":7.5e7}, {"n":"A","v":1e-2},
    {"n":"I22","v":8e-6}, {"n":"I11","v":4e-6}, {"n":"Jtt","v":1e-5} ] } ],
  "nodes" : [ { "id":0, "x":[0,0,0], "sup":"fixed" }, { "id":1, "x":[0,0,3] } ],
  "elems" : [ { "id":0, "verts":[0,1], "mat":"steel", "mask":[1,1,1,1,1,1,1,1,1,1,0,0] } ]
}`

func Test_model01(tst *testing.T) {

	//io.Verbose = true
	chk.PrintTitle("model01. yaml")

	dat, err := ParseModel([]byte(frameYaml), ".yaml")
	require.NoError(tst, err)
	if chk.Verbose {
		io.Pforan("dat = %+v\n", dat.Data)
	}

	assert.Equal(tst, "one span", dat.Data.Desc)
	assert.Equal(tst, 0.25, dat.Data.Increment)
	assert.Equal(tst, 20, dat.Data.Resolution)
	assert.Equal(tst, 1, dat.Data.Nworkers)

	require.Len(tst, dat.Nodes, 2)
	assert.Equal(tst, "pinned", dat.Nodes[0].Sup)
	assert.Equal(tst, []string{"rx"}, dat.Nodes[0].Keys)
	assert.Equal(tst, []float64{5, 0, 0}, dat.Nodes[1].X)

	require.Len(tst, dat.Elems, 1)
	assert.Equal(tst, "freefree", dat.Elems[0].Release)
	assert.Equal(tst, 0.5, dat.Elems[0].Psi)

	require.Len(tst, dat.Cases, 1)
	ld := dat.Cases[0].Loads[0]
	assert.Equal(tst, "point", ld.Type)
	assert.Equal(tst, 0.25, ld.Frac)
	assert.Equal(tst, []float64{0, 0, -8}, ld.V)

	mat := dat.MatDb.Get("steel")
	require.NotNil(tst, mat)
	assert.Equal(tst, 8e-6, mat.Solid.Izz)
	assert.Equal(tst, 4e-6, mat.Solid.Iyy)
	assert.Nil(tst, dat.MatDb.Get("concrete"))
}

func Test_model02(tst *testing.T) {

	//io.Verbose = true
	chk.PrintTitle("model02. json")

	dat, err := ParseModel([]byte(frameJSON), ".json")
	require.NoError(tst, err)
	assert.Equal(tst, 0.1, dat.Data.Increment)
	assert.Equal(tst, 11, dat.Data.Resolution)
	assert.Equal(tst, []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0}, dat.Elems[0].Mask)
	assert.Empty(tst, dat.Cases)

	mat := dat.MatDb.Get("steel")
	require.NotNil(tst, mat)
	assert.Equal(tst, 1e-5, mat.Solid.J)
}

func Test_model03(tst *testing.T) {

	//io.Verbose = true
	chk.PrintTitle("model03. errors")

	_, err := ParseModel([]byte(frameJSON), ".toml")
	assert.Error(tst, err, "extension")

	_, err = ParseModel([]byte("{"), ".json")
	assert.Error(tst, err, "syntax")

	_, err = ParseModel([]byte(`{"data":{"increment":-1}}`), ".json")
	assert.Error(tst, err, "increment")

	_, err = ParseModel([]byte(`{"data":{"resolution":1}}`), ".json")
	assert.Error(tst, err, "resolution")

	_, err = ParseModel([]byte(`{"nodes":[{"id":0,"x":[0,0]}]}`), ".json")
	assert.Error(tst, err, "coordinates")

	_, err = ParseModel([]byte(`{"cases":[{"name":"a","loads":[{"id":0,"type":"moment","v":[0,0,1]}]}]}`), ".json")
	assert.Error(tst, err, "load type")

	_, err = ParseModel([]byte(`{"materials":[{"name":"steel","prms":[{"n":"E","v":2e8}]}]}`), ".json")
	assert.Error(tst, err, "incomplete material")

	_, err = ParseModel([]byte(`{"materials":[{"name":"steel","prms":[{"n":"nu","v":0.3}]}]}`), ".json")
	assert.Error(tst, err, "unknown parameter")

	_, err = ReadModel("data/nonexistent.yaml")
	assert.Error(tst, err, "missing file")

	_, err = ReadModel(tst.TempDir())
	assert.Error(tst, err, "directory")
}

func Test_model05(tst *testing.T) {

	//io.Verbose = true
	chk.PrintTitle("model05. read from file")

	dirout := tst.TempDir()
	io.WriteStringToFileD(dirout, "frame.yaml", frameYaml)
	dat, err := ReadModel(filepath.Join(dirout, "frame.yaml"))
	require.NoError(tst, err)
	assert.Equal(tst, "frame", dat.Key)
	assert.Equal(tst, "one span", dat.Data.Desc)
	require.Len(tst, dat.Cases, 1)
	assert.Equal(tst, "point", dat.Cases[0].Name)
}

func Test_model04(tst *testing.T) {

	//io.Verbose = true
	chk.PrintTitle("model04. reference material and cross-section")

	yml := `
materials:
  - name: column
    ref: steel
    unit: kPa
    section: {type: I-beam, wid: 0.2, hei: 0.3, tf: 0.015, tw: 0.01}
  - name: joist
    ref: wood-douglas-fir
    unit: MPa
    section: {type: rectangle, wid: 0.05, hei: 0.2}
    prms:
      - {n: E, v: 12000}
`
	dat, err := ParseModel([]byte(yml), ".yml")
	require.NoError(tst, err)

	col := dat.MatDb.Get("column").Solid
	assert.InDelta(tst, 2e8, col.E, 1e-6)
	assert.InDelta(tst, 0.2*0.3-0.27*0.19, col.A, 1e-15)
	assert.Greater(tst, col.Izz, col.Iyy)

	// explicit parameters take precedence
	joist := dat.MatDb.Get("joist").Solid
	assert.Equal(tst, 12000.0, joist.E)
	assert.InDelta(tst, 0.01, joist.A, 1e-15)

	_, err = ParseModel([]byte("materials: [{name: a, ref: steel, section: {type: square, wid: 1}}]"), ".yaml")
	assert.Error(tst, err)
}
