// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/joeschools/aspect/inp"
	"github.com/stretchr/testify/assert"
)

func Test_batch01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("batch01")

	// compositional fields stored before velocities
	lay := &inp.Layout{Ndim: 2, Ncomp: 7, Pressure: 6, Temperature: 2, Velocities: []int{4, 5}, Compositions: []int{1, 0, 3}}
	if err := lay.Check(); err != nil {
		tst.Errorf("Check failed: %v\n", err)
		return
	}
	d := newData(2, [][]float64{
		{10, 11, 12, 13, 14, 15, 16},
		{20, 21, 22, 23, 24, 25, 26},
	})
	d.Gradients[0][6] = []float64{-1, -2}
	d.Gradients[1][6] = []float64{-3, -4}
	d.Points[1] = []float64{0.5, 0.25}

	in := BuildInputs(lay, d, false)
	chk.Int(tst, "npoints", in.Npoints(), 2)
	chk.Int(tst, "len(StrainRate)", len(in.StrainRate), 0)
	chk.Array(tst, "pressure", 1e-17, in.Pressure, []float64{16, 26})
	chk.Array(tst, "temperature", 1e-17, in.Temperature, []float64{12, 22})
	chk.Array(tst, "velocity[0]", 1e-17, in.Velocity[0], []float64{14, 15})
	chk.Array(tst, "velocity[1]", 1e-17, in.Velocity[1], []float64{24, 25})
	chk.Array(tst, "∇p[0]", 1e-17, in.PressureGradient[0], []float64{-1, -2})
	chk.Array(tst, "∇p[1]", 1e-17, in.PressureGradient[1], []float64{-3, -4})
	chk.Array(tst, "position[1]", 1e-17, in.Position[1], []float64{0.5, 0.25})
	for q := 0; q < 2; q++ {
		for c := 0; c < lay.Nfields(); c++ {
			chk.Float64(tst, "composition", 1e-17, in.Composition[q][c], d.Values[q][lay.Index(inp.Composition, c)])
		}
	}
	chk.Array(tst, "composition[1]", 1e-17, in.Composition[1], []float64{21, 20, 23})
}

func Test_batch02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("batch02")

	// strain rate from velocity gradients
	lay := inp.NewLayout(2, 0)
	d := newData(2, [][]float64{{0, 0, 0, 1}})
	d.Gradients[0][0] = []float64{1, 2} // ∂vx/∂x, ∂vx/∂y
	d.Gradients[0][1] = []float64{4, 3} // ∂vy/∂x, ∂vy/∂y

	in := BuildInputs(lay, d, true)
	chk.Int(tst, "len(StrainRate)", len(in.StrainRate), 1)
	chk.Array(tst, "ε", 1e-17, in.StrainRate[0], []float64{1, 3, 3, 3})
}

func Test_batch03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("batch03")

	lay := inp.NewLayout(2, 1)
	good := func() *Data { return newData(2, [][]float64{{0, 0, 0, 1, 0}, {0, 0, 0, 1, 0}}) }

	d := good()
	d.Values[1] = d.Values[1][:4]
	assert.Panics(tst, func() { BuildInputs(lay, d, false) }, "wrong number of values")

	d = good()
	d.Gradients = d.Gradients[:1]
	assert.Panics(tst, func() { BuildInputs(lay, d, false) }, "wrong number of gradients")

	d = good()
	d.Gradients[1] = d.Gradients[1][:2]
	assert.Panics(tst, func() { BuildInputs(lay, d, false) }, "wrong number of gradient components")

	d = good()
	d.Gradients[0][lay.Pressure] = []float64{1}
	assert.Panics(tst, func() { BuildInputs(lay, d, false) }, "wrong size of pressure gradient")

	d = good()
	d.Gradients[0][0] = []float64{1}
	assert.NotPanics(tst, func() { BuildInputs(lay, d, false) }, "velocity gradient not needed")
	assert.Panics(tst, func() { BuildInputs(lay, d, true) }, "wrong size of velocity gradient")

	d = good()
	d.Points = d.Points[:1]
	assert.Panics(tst, func() { BuildInputs(lay, d, false) }, "wrong number of points")

	d = good()
	d.Points = nil
	assert.NotPanics(tst, func() { BuildInputs(lay, d, false) }, "points are optional")
}

func Test_writer01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("writer01")

	computed := AllocScalars(3)
	WriteScalars(computed, []float64{1, 2, 3})
	chk.Array(tst, "computed", 1e-17, []float64{computed[0][0], computed[1][0], computed[2][0]}, []float64{1, 2, 3})

	// no partial writes
	computed[2] = []float64{0, 0}
	assert.Panics(tst, func() { WriteScalars(computed, []float64{4, 5, 6}) })
	chk.Float64(tst, "computed[0]", 1e-17, computed[0][0], 1)
	assert.Panics(tst, func() { WriteScalars(AllocScalars(2), []float64{4, 5, 6}) })
}
