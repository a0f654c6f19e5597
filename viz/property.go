// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"github.com/cpmech/gosl/chk"
	"github.com/joeschools/aspect/mdl/material"
)

// Property implements postprocessors that output one property computed by the material model
type Property struct {
	env    *Env                                  // environment
	name   string                                // name of output field
	strain bool                                  // needs strain rate (viscosity)
	pick   func(out *material.Outputs) []float64 // selects property from outputs
}

// NewDensity returns the density postprocessor
func NewDensity(env *Env) *Property {
	return newProperty(env, "density", false, func(out *material.Outputs) []float64 { return out.Densities })
}

// NewViscosity returns the viscosity postprocessor. The strain rate is computed from the velocity gradients
func NewViscosity(env *Env) *Property {
	return newProperty(env, "viscosity", true, func(out *material.Outputs) []float64 { return out.Viscosities })
}

// NewThermalExpansivity returns the thermal expansion coefficient postprocessor
func NewThermalExpansivity(env *Env) *Property {
	return newProperty(env, "thermal_expansivity", false, func(out *material.Outputs) []float64 { return out.ThermalExpansion })
}

// NewSpecificHeat returns the specific heat capacity postprocessor
func NewSpecificHeat(env *Env) *Property {
	return newProperty(env, "specific_heat", false, func(out *material.Outputs) []float64 { return out.SpecificHeat })
}

// NewThermalConductivity returns the thermal conductivity postprocessor
func NewThermalConductivity(env *Env) *Property {
	return newProperty(env, "thermal_conductivity", false, func(out *material.Outputs) []float64 { return out.ThermalConductivity })
}

// NewCompressibility returns the compressibility postprocessor
func NewCompressibility(env *Env) *Property {
	return newProperty(env, "compressibility", false, func(out *material.Outputs) []float64 { return out.Compressibilities })
}

func newProperty(env *Env, name string, strain bool, pick func(out *material.Outputs) []float64) *Property {
	if env == nil {
		chk.Panic("%s postprocessor requires an environment", name)
	}
	return &Property{env: env, name: name, strain: strain, pick: pick}
}

// Name returns the name of output field
func (o *Property) Name() string {
	return o.name
}

// Flags returns the data required at evaluation points
func (o *Property) Flags() UpdateFlags {
	return UpdateValues | UpdateQPoints | UpdateGradients
}

// Evaluate computes the property at all evaluation points with one call to the material model
//  Note: inconsistent sizes cause a panic before the material model is called and nothing is
//        written to computed. Errors from the material model are returned unchanged
func (o *Property) Evaluate(d *Data, computed [][]float64) (err error) {

	// check sizes
	n := d.Npoints()
	if len(computed) != n {
		chk.Panic("%s: number of computed quantities (%d) must be equal to the number of evaluation points (%d)", o.name, len(computed), n)
	}
	if n == 0 {
		return
	}
	if len(computed[0]) != 1 {
		chk.Panic("%s: computed quantities must hold exactly one scalar. len=%d is invalid", o.name, len(computed[0]))
	}
	if len(d.Values[0]) != o.env.Layout.Ncomp {
		chk.Panic("%s: solution values have %d components but layout has %d", o.name, len(d.Values[0]), o.env.Layout.Ncomp)
	}

	// material model
	in := BuildInputs(o.env.Layout, d, o.strain)
	out := material.NewOutputs(n)
	err = o.env.Model.Evaluate(in, out)
	if err != nil {
		return
	}

	// results
	WriteScalars(computed, o.pick(out))
	return
}
