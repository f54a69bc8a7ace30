// Copyright 2025 The cfdeez Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim wraps the external cfdeez solver binary
package sim

import (
	"os"
	"os/exec"

	"github.com/cpmech/gosl/chk"
)

// Runner invokes the solver binary on scenario files. The run is synchronous:
// Run blocks until the solver process exits.
type Runner struct {
	Bin string // path to solver binary
}

// Run executes the solver on a scenario file and returns the path to the
// results file produced by the run. The exit status of the solver is checked
// and a missing results file after a clean exit is an error as well, so the
// caller never proceeds with stale or absent data.
func (o Runner) Run(scenario, results string) (string, error) {
	if o.Bin == "" {
		return "", chk.Err("solver binary is not set")
	}
	cmd := exec.Command(o.Bin, scenario)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err != nil {
		return "", chk.Err("cannot run solver %q with scenario %q: %v", o.Bin, scenario, err)
	}
	if _, err := os.Stat(results); err != nil {
		return "", chk.Err("solver finished but results file %q is missing: %v", results, err)
	}
	return results, nil
}
