// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_main01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("main01. defaults")

	tst.Setenv("ASAPTOOLKIT_DIROUT", "")
	tst.Setenv("ASAPTOOLKIT_FORMAT", "")
	dirout, format := defaults()
	chk.StrAssert(dirout, "/tmp/asaptoolkit")
	chk.StrAssert(format, "json")

	tst.Setenv("ASAPTOOLKIT_DIROUT", "/tmp/frames")
	tst.Setenv("ASAPTOOLKIT_FORMAT", "yaml")
	dirout, format = defaults()
	chk.StrAssert(dirout, "/tmp/frames")
	chk.StrAssert(format, "yaml")
}
