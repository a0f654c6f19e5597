// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/joeschools/aspect/mdl/material"
	"github.com/stretchr/testify/assert"
)

func Test_registry01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry01")

	reg := DefaultRegistry()
	if chk.Verbose {
		io.Pf("%v", reg)
	}
	if !reg.Frozen() {
		tst.Errorf("default registry should be frozen\n")
	}
	chk.Strings(tst, "names", reg.Names(), []string{
		"compressibility",
		"density",
		"specific_heat",
		"thermal_conductivity",
		"thermal_expansivity",
		"viscosity",
	})
	chk.String(tst, reg.Description("density"), "A visualization output object that generates output for the density.")
	chk.String(tst, reg.Description("nothing"), "")

	env := NewEnv(scenarioLayout(0), &fakeModel{rho: func(in *material.Inputs, q int) float64 { return 1 }})
	for _, name := range reg.Names() {
		pp, err := reg.New(name, env)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		chk.String(tst, pp.Name(), name)
	}
	_, err := reg.New("nothing", env)
	if err == nil {
		tst.Errorf("New should have failed with unknown postprocessor\n")
	}

	assert.Panics(tst, func() {
		reg.Register("temperature", "", func(env *Env) Postprocessor { return NewDensity(env) })
	}, "frozen registry")
}

func Test_registry02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry02")

	reg := NewRegistry()
	RegisterAll(reg)
	assert.Panics(tst, func() { RegisterAll(reg) }, "repeated names")
	assert.Panics(tst, func() { reg.Register("", "empty", func(env *Env) Postprocessor { return nil }) })
	assert.Panics(tst, func() { reg.Register("none", "nil allocator", nil) })
	reg.Register("rho", "density with another name", func(env *Env) Postprocessor { return NewDensity(env) })
	chk.String(tst, reg.Description("rho"), "density with another name")
	chk.Int(tst, "number of postprocessors", len(reg.Names()), 7)
}

func Test_viscosity01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("viscosity01")

	// fake model returns ε_xx as viscosity
	mdl := &fakeModel{rho: func(in *material.Inputs, q int) float64 { return 1 }}
	env := NewEnv(scenarioLayout(0), mdl)
	pp := NewViscosity(env)
	d := newData(2, [][]float64{{0, 1, 0, 0}, {0, 1, 0, 0}})
	d.Gradients[0][2] = []float64{5, 0} // ∂vx/∂x
	d.Gradients[1][2] = []float64{7, 0}
	computed := AllocScalars(2)
	err := pp.Evaluate(d, computed)
	if err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}
	chk.Int(tst, "len(StrainRate)", len(mdl.last.StrainRate), 2)
	chk.Array(tst, "η", 1e-17, []float64{computed[0][0], computed[1][0]}, []float64{5, 7})

	// density of same data does not request the strain rate
	err = NewDensity(env).Evaluate(d, computed)
	if err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}
	chk.Int(tst, "len(StrainRate)", len(mdl.last.StrainRate), 0)
}

func Test_flags01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flags01")

	chk.String(tst, UpdateFlags(0).String(), "none")
	chk.String(tst, (UpdateValues | UpdateGradients).String(), "values|gradients")
	if !(UpdateValues | UpdateQPoints).Has(UpdateQPoints) {
		tst.Errorf("flags should have q_points\n")
	}
	if UpdateValues.Has(UpdateValues | UpdateGradients) {
		tst.Errorf("flags should not have gradients\n")
	}
	assert.Panics(tst, func() { NewEnv(nil, nil) })
}
