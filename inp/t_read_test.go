// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01")

	sim, err := ReadSim("data/box2d.sim")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if chk.Verbose {
		io.Pforan("layout = %+v\n", sim.Layout)
	}
	chk.String(tst, sim.Key, "box2d")
	chk.Int(tst, "ndim", sim.Ndim, 2)
	chk.Int(tst, "ncomp", sim.Layout.Ncomp, 5)
	chk.Strings(tst, "names", sim.Layout.Names, []string{"vx", "vy", "p", "T", "crust"})
	chk.Strings(tst, "postprocs", sim.Postprocs, []string{"density", "viscosity"})
	chk.String(tst, sim.Mat.Name, "mantle")
	chk.String(tst, sim.Mat.Model, "simple")
	if sim.Mat.Mdl == nil {
		tst.Errorf("material model should have been allocated\n")
		return
	}
	chk.Int(tst, "number of materials", len(sim.MatDb.Materials), 2)
	if sim.MatDb.Get("nothing") != nil {
		tst.Errorf("there should be no material named \"nothing\"\n")
	}

	batches, err := ReadBatches(sim.BatchesPath())
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "number of batches", len(batches), 2)
	chk.Int(tst, "nqp of batch 0", len(batches[0].Values), 2)
	chk.Array(tst, "values[0][0]", 1e-17, batches[0].Values[0], []float64{0.1, 0.2, 1e6, 1293, 0})
	chk.Array(tst, "gradients[1][2]", 1e-17, batches[0].Gradients[1][2], []float64{30, 40})
	chk.Array(tst, "points[0][0]", 1e-17, batches[1].Points[0], []float64{0, 1})
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02")

	sim, err := ReadSim("data/custom2d.sim")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Strings(tst, "postprocs", sim.Postprocs, []string{"density"})
	chk.Int(tst, "pressure", sim.Layout.Index(Pressure, 0), 0)
	chk.Int(tst, "temperature", sim.Layout.Index(Temperature, 0), 1)
	chk.Int(tst, "vy", sim.Layout.Index(Velocity, 1), 3)
	chk.String(tst, sim.Mat.Model, "compressible")
	chk.String(tst, sim.BatchesPath(), "")
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03")

	_, err := ReadSim("data/badlayout.sim")
	if err == nil {
		tst.Errorf("ReadSim should have failed with repeated indices in layout\n")
	}
	if chk.Verbose {
		io.Pforan("err = %v\n", err)
	}

	_, err = ReadSim("data/nofile.sim")
	if err == nil {
		tst.Errorf("ReadSim should have failed with missing file\n")
	}

	_, err = ReadMat("data", "nofile.mat", 2, 0)
	if err == nil {
		tst.Errorf("ReadMat should have failed with missing file\n")
	}
}
