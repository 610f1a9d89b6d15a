// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"

	"github.com/pitipatw/AsapToolkit/ele"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Summary holds results to be saved
type Summary struct {
	Key       string          `json:"key" yaml:"key"`             // model key
	Ncases    int             `json:"ncases" yaml:"ncases"`       // number of load cases
	Envelopes []*EnvelopeData `json:"envelopes" yaml:"envelopes"` // one per element
	Members   []*MemberResult `json:"members" yaml:"members"`     // member diagrams
}

// DiagramData holds the five diagrams for saving
type DiagramData struct {
	P  []float64 `json:"P" yaml:"P"`
	My []float64 `json:"My" yaml:"My"`
	Vy []float64 `json:"Vy" yaml:"Vy"`
	Mz []float64 `json:"Mz" yaml:"Mz"`
	Vz []float64 `json:"Vz" yaml:"Vz"`
}

// EnvelopeData holds the envelopes of one element for saving
type EnvelopeData struct {
	Elem int         `json:"elem" yaml:"elem"`
	X    []float64   `json:"x" yaml:"x"`
	Low  DiagramData `json:"low" yaml:"low"`
	High DiagramData `json:"high" yaml:"high"`
}

// MemberResult holds the diagrams of one member for one load case
type MemberResult struct {
	Name  string      `json:"name" yaml:"name"`
	Case  string      `json:"case" yaml:"case"`
	X     []float64   `json:"x" yaml:"x"`
	Diags DiagramData `json:"diagrams" yaml:"diagrams"`
}

func newDiagramData(d *ele.Diagrams) DiagramData {
	return DiagramData{P: d.P, My: d.My, Vy: d.Vy, Mz: d.Mz, Vz: d.Vz}
}

// NewSummary collects envelopes and member diagrams
func NewSummary(key string, ncases int, env []*ForceEnvelopes) (o *Summary) {
	o = &Summary{Key: key, Ncases: ncases}
	for _, e := range env {
		o.Envelopes = append(o.Envelopes, &EnvelopeData{
			Elem: e.Elem.Id,
			X:    e.X,
			Low:  newDiagramData(&e.Low),
			High: newDiagramData(&e.High),
		})
	}
	return
}

// AddMember adds the diagrams of a member
func (o *Summary) AddMember(name, casename string, res *InternalForces) {
	o.Members = append(o.Members, &MemberResult{Name: name, Case: casename, X: res.X, Diags: newDiagramData(&res.Diagrams)})
}

// Encode encodes summary; format is "json" or "yaml"
func (o *Summary) Encode(format string) (b []byte, err error) {
	switch format {
	case "json":
		return json.MarshalIndent(o, "", "  ")
	case "yaml":
		return yaml.Marshal(o)
	}
	return nil, chk.Err("format %q is invalid. options are \"json\" and \"yaml\"", format)
}

// Save writes summary to dirout/key.format
func (o *Summary) Save(dirout, format string) (err error) {
	b, err := o.Encode(format)
	if err != nil {
		return
	}
	io.WriteBytesToFileD(dirout, o.Key+"."+format, b)
	return
}
