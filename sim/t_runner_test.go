// Copyright 2025 The cfdeez Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_runner01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("runner01. missing binary")

	runner := Runner{Bin: "/inexistent/path/to/cfdeez"}
	_, err := runner.Run("scenario.fml", "results.csv")
	if err == nil {
		tst.Errorf("running an inexistent binary must fail\n")
	}
	io.Pforan("err = %v\n", err)
}

func Test_runner02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("runner02. non-zero exit status")

	runner := Runner{Bin: "false"}
	_, err := runner.Run("scenario.fml", "results.csv")
	if err == nil {
		tst.Errorf("non-zero exit status must fail\n")
	}
	io.Pforan("err = %v\n", err)
}

func Test_runner03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("runner03. missing results after clean exit")

	runner := Runner{Bin: "true"}
	_, err := runner.Run("scenario.fml", "/inexistent/results.csv")
	if err == nil {
		tst.Errorf("missing results file must fail\n")
	}
	io.Pforan("err = %v\n", err)
}

func Test_runner04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("runner04. clean run")

	results, err := os.CreateTemp("", "cfdeez_results_*.csv")
	if err != nil {
		tst.Errorf("cannot create temporary results file: %v\n", err)
		return
	}
	results.Close()
	defer os.Remove(results.Name())

	runner := Runner{Bin: "true"}
	resfn, err := runner.Run("scenario.fml", results.Name())
	if err != nil {
		tst.Errorf("clean run failed: %v\n", err)
		return
	}
	chk.StrAssert(resfn, results.Name())
}
