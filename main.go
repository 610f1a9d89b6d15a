// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/pitipatw/AsapToolkit/ele"
	"github.com/pitipatw/AsapToolkit/fem"
	"github.com/pitipatw/AsapToolkit/inp"
	"github.com/pitipatw/AsapToolkit/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/joho/godotenv"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// defaults from environment; a missing .env file is fine
	_ = godotenv.Load()
	defdir, defformat := defaults()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".yaml", true)
	verbose := io.ArgToBool(1, true)
	dirout := io.ArgToString(2, defdir)
	format := io.ArgToString(3, defformat)

	// message
	if verbose {
		io.PfWhite("\nAsapToolkit -- internal forces and envelopes of frames\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"model filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"directory for output", "dirout", dirout,
			"output format: json or yaml", "format", format,
		))
	}

	// model
	dat, err := inp.ReadModel(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	dat.Data.Verbose = verbose
	mdl, err := fem.NewModel(dat)
	if err != nil {
		chk.Panic("%v", err)
	}
	cases, err := fem.NewCases(dat)
	if err != nil {
		chk.Panic("%v", err)
	}

	// envelopes
	env, err := out.BuildEnvelopes(mdl, cases, dat.Data.Increment, &out.EnvelopeOpts{Nworkers: dat.Data.Nworkers})
	if err != nil {
		chk.Panic("BuildEnvelopes failed:\n%v", err)
	}
	if verbose {
		io.Pf("\n%6s%6s%14s%14s\n", "elem", "comp", "low", "high")
		for _, e := range env {
			low, high := e.Extremes()
			for c, key := range ele.ComponentKeys {
				io.Pf("%6d%6s%14.6g%14.6g\n", e.Elem.Id, key, low[c], high[c])
			}
		}
	}
	sum := out.NewSummary(dat.Key, len(cases), env)

	// members
	solver := new(fem.LinearSolver)
	for k, loads := range cases {
		if len(dat.Members) == 0 {
			break
		}
		err = solver.Solve(mdl, loads)
		if err != nil {
			chk.Panic("case %q: %v", dat.Cases[k].Name, err)
		}
		for _, m := range dat.Members {
			elems, err := mdl.Member(m.Elems)
			if err != nil {
				chk.Panic("member %q: %v", m.Name, err)
			}
			res, err := out.SampleChain(elems, mdl, dat.Data.Resolution)
			if err != nil {
				chk.Panic("member %q: %v", m.Name, err)
			}
			sum.AddMember(m.Name, dat.Cases[k].Name, res)
		}
	}

	// save
	err = sum.Save(dirout, format)
	if err != nil {
		chk.Panic("%v", err)
	}
	if verbose {
		io.Pfcyan("\nfile <%s/%s.%s> written\n", dirout, dat.Key, format)
	}
}

// defaults returns the output directory and format used when not given as arguments
func defaults() (dirout, format string) {
	dirout, format = "/tmp/asaptoolkit", "json"
	if d := os.Getenv("ASAPTOOLKIT_DIROUT"); d != "" {
		dirout = d
	}
	if f := os.Getenv("ASAPTOOLKIT_FORMAT"); f != "" {
		format = f
	}
	return
}
