// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/pitipatw/AsapToolkit/ele"
	"github.com/pitipatw/AsapToolkit/tests"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

func Test_output01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("output01. diagram drawing")

	mdl, err := tests.SimpleBeam(4, 1, "freefree")
	if err != nil {
		tst.Errorf("SimpleBeam failed:\n%v", err)
		return
	}
	solve(tst, mdl, ele.NewPointLoad(0, 0, 0.5, 0, 0, -10))
	res, err := Sample(mdl.Elems[0], mdl, 5)
	if err != nil {
		tst.Errorf("Sample failed:\n%v", err)
		return
	}
	all := []*InternalForces{res}

	sf, err := DiagramScale(mdl, all, "My", 0.1)
	if err != nil {
		tst.Errorf("DiagramScale failed:\n%v", err)
		return
	}
	chk.Float64(tst, "sf", 1e-12, sf, 0.04)

	pts, err := DiagramPoints(res, "My", sf)
	if err != nil {
		tst.Errorf("DiagramPoints failed:\n%v", err)
		return
	}
	io.Pforan("pts = %v\n", pts)
	chk.IntAssert(len(pts), 5)
	chk.Array(tst, "pt @ 0", 1e-12, pts[0], []float64{0, 0, 0})
	chk.Array(tst, "pt @ 2", 1e-12, pts[2], []float64{2, 0, 0.4})
	chk.Array(tst, "pt @ 4", 1e-12, pts[4], []float64{4, 0, 0})

	// nothing to draw
	sf, err = DiagramScale(mdl, all, "Vz", 0.1)
	if err != nil {
		tst.Errorf("DiagramScale failed:\n%v", err)
		return
	}
	chk.Float64(tst, "sf (zero diagram)", 1e-15, sf, 1)

	// errors
	if _, err = DiagramScale(mdl, all, "T", 0.1); err == nil {
		tst.Errorf("invalid component should fail\n")
	}
	if _, err = DiagramPoints(res, "Mx", 1); err == nil {
		tst.Errorf("invalid component should fail\n")
	}
}

func Test_output02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("output02. summary")

	mdl, err := tests.SimpleBeam(4, 2, "fixedfixed")
	if err != nil {
		tst.Errorf("SimpleBeam failed:\n%v", err)
		return
	}
	cases := [][]ele.Load{
		{ele.NewLineLoad(0, 0, 0, 0, -2)},
		{ele.NewPointLoad(0, 1, 0.5, 0, 0, -4)},
	}
	env, err := BuildEnvelopes(mdl, cases, 0.5, nil)
	if err != nil {
		tst.Errorf("BuildEnvelopes failed:\n%v", err)
		return
	}
	solve(tst, mdl, cases[1]...)
	chain, err := SampleChain(mdl.Elems, mdl, 10)
	if err != nil {
		tst.Errorf("SampleChain failed:\n%v", err)
		return
	}
	sum := NewSummary("beam", len(cases), env)
	sum.AddMember("span", "point", chain)

	// json
	b, err := sum.Encode("json")
	if err != nil {
		tst.Errorf("Encode failed:\n%v", err)
		return
	}
	var fromJSON Summary
	err = json.Unmarshal(b, &fromJSON)
	if err != nil {
		tst.Errorf("Unmarshal failed:\n%v", err)
		return
	}
	chk.IntAssert(fromJSON.Ncases, 2)
	chk.IntAssert(len(fromJSON.Envelopes), 2)
	chk.IntAssert(fromJSON.Envelopes[1].Elem, 1)
	chk.Array(tst, "high My", 1e-15, fromJSON.Envelopes[0].High.My, env[0].High.My)
	chk.Array(tst, "member x", 1e-15, fromJSON.Members[0].X, chain.X)

	// yaml
	dirout := tst.TempDir()
	err = sum.Save(dirout, "yaml")
	if err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}
	b = io.ReadFile(filepath.Join(dirout, "beam.yaml"))
	var fromYAML Summary
	err = yaml.Unmarshal(b, &fromYAML)
	if err != nil {
		tst.Errorf("Unmarshal failed:\n%v", err)
		return
	}
	if fromYAML.Key != "beam" || fromYAML.Members[0].Case != "point" {
		tst.Errorf("yaml summary is incorrect: %+v\n", fromYAML)
	}
	chk.Array(tst, "low Vy", 1e-15, fromYAML.Envelopes[1].Low.Vy, env[1].Low.Vy)

	if _, err = sum.Encode("xml"); err == nil {
		tst.Errorf("invalid format should fail\n")
	}
}
