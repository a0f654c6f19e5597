// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/joeschools/aspect/inp"
	"github.com/joeschools/aspect/out"
	"github.com/joeschools/aspect/viz"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	nworkers := io.ArgToInt(2, 1)
	chk.Verbose = verbose

	// registry
	reg := viz.DefaultRegistry()

	// message
	if verbose {
		io.PfWhite("\nDerived fields at evaluation points\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"number of workers", "nworkers", nworkers,
		))
		io.Pf("available postprocessors:\n%v\n", reg)
	}

	// simulation data
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation:\n%v", err)
	}
	batches, err := inp.ReadBatches(sim.BatchesPath())
	if err != nil {
		chk.Panic("cannot read batches:\n%v", err)
	}

	// postprocessors
	env := viz.NewEnv(sim.Layout, sim.Mat.Mdl)
	procs, err := out.AllocPostprocs(reg, env, sim.Postprocs)
	if err != nil {
		chk.Panic("cannot allocate postprocessors:\n%v", err)
	}
	if verbose {
		io.Pforan("material = %q (%s)\n", sim.Mat.Name, sim.Mat.Model)
		io.Pforan("required data = %v\n", out.RequiredFlags(procs))
	}

	// run
	res, err := out.Collect(procs, out.CellsFromBatches(batches), nworkers)
	if err != nil {
		chk.Panic("Collect failed:\n%v", err)
	}

	// results
	for _, b := range batches {
		io.Pf("\ncell %d\n", b.Id)
		io.Pf("%4s", "q")
		for _, pp := range procs {
			io.Pf("%23s", pp.Name())
		}
		io.Pf("\n")
		for q := range b.Values {
			io.Pf("%4d", q)
			for _, pp := range procs {
				io.Pf("%23g", res[b.Id].Get(pp.Name(), q))
			}
			io.Pf("\n")
		}
	}
	if verbose {
		io.Pf("\n")
		for _, pp := range procs {
			lo, hi, mean, npts := res.Summary(pp.Name())
			io.Pfyel("%-22s min=%g max=%g mean=%g (%d points)\n", pp.Name(), lo, hi, mean, npts)
		}
	}
}
