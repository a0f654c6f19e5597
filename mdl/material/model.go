// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package material implements material models mapping the physical state at a batch of
// evaluation points into physical properties (density, viscosity, etc.)
package material

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Model defines material models
//  Note: Evaluate must tolerate len(in.StrainRate) == 0. In this case, properties that
//        depend on the strain rate (Viscosities) are not computed and out.Viscosities is
//        left untouched
type Model interface {
	Init(ndim, ncomp int, prms dbf.Params) error // initialises model; ncomp is the number of compositional fields
	GetPrms(example bool) dbf.Params             // gets (an example) of parameters
	Evaluate(in *Inputs, out *Outputs) error     // computes properties for the whole batch
}

// Inputs holds the physical state at a batch of evaluation points
type Inputs struct {
	Position         [][]float64 // [n][ndim] coordinates of evaluation points
	Pressure         []float64   // [n] pressure
	Temperature      []float64   // [n] temperature
	Velocity         [][]float64 // [n][ndim] velocity
	PressureGradient [][]float64 // [n][ndim] gradient of pressure
	Composition      [][]float64 // [n][ncomp] compositional fields
	StrainRate       [][]float64 // [n][ndim*ndim] symmetric velocity gradient (row-major). empty => viscosity not needed
}

// Outputs holds the physical properties at a batch of evaluation points
type Outputs struct {
	Densities           []float64 // [n] density
	Viscosities         []float64 // [n] viscosity
	ThermalExpansion    []float64 // [n] thermal expansion coefficient
	SpecificHeat        []float64 // [n] specific heat capacity
	ThermalConductivity []float64 // [n] thermal conductivity
	Compressibilities   []float64 // [n] compressibility (1/ρ・∂ρ/∂p)
}

// NewInputs allocates a new batch of inputs with n points
//  Note: StrainRate is only allocated if withStrain; otherwise it is empty and viscosity is not computed
func NewInputs(n, ndim, ncomp int, withStrain bool) (o *Inputs) {
	o = new(Inputs)
	o.Position = utl.Alloc(n, ndim)
	o.Pressure = make([]float64, n)
	o.Temperature = make([]float64, n)
	o.Velocity = utl.Alloc(n, ndim)
	o.PressureGradient = utl.Alloc(n, ndim)
	o.Composition = utl.Alloc(n, ncomp)
	if withStrain {
		o.StrainRate = utl.Alloc(n, ndim*ndim)
	}
	return
}

// Npoints returns the number of evaluation points in batch
func (o *Inputs) Npoints() int {
	return len(o.Pressure)
}

// NeedsViscosity tells whether the strain rate has been given and hence viscosity is requested
func (o *Inputs) NeedsViscosity() bool {
	return len(o.StrainRate) > 0
}

// NewOutputs allocates a new batch of outputs with n points
func NewOutputs(n int) (o *Outputs) {
	o = new(Outputs)
	o.Densities = make([]float64, n)
	o.Viscosities = make([]float64, n)
	o.ThermalExpansion = make([]float64, n)
	o.SpecificHeat = make([]float64, n)
	o.ThermalConductivity = make([]float64, n)
	o.Compressibilities = make([]float64, n)
	return
}

// Npoints returns the number of evaluation points in batch
func (o *Outputs) Npoints() int {
	return len(o.Densities)
}

// CheckSizes checks whether inputs and outputs are consistent with each other
func CheckSizes(in *Inputs, out *Outputs, ndim, ncomp int) error {
	n := in.Npoints()
	if len(in.Temperature) != n || len(in.Velocity) != n || len(in.Composition) != n {
		return chk.Err("inputs have inconsistent number of points: npres=%d ntemp=%d nvel=%d ncomp=%d", n, len(in.Temperature), len(in.Velocity), len(in.Composition))
	}
	if out.Npoints() != n {
		return chk.Err("outputs have %d points but inputs have %d", out.Npoints(), n)
	}
	if in.NeedsViscosity() && (len(in.StrainRate) != n || len(out.Viscosities) != n) {
		return chk.Err("strain rate has %d points and viscosities %d, but batch has %d points", len(in.StrainRate), len(out.Viscosities), n)
	}
	for q := 0; q < n; q++ {
		if len(in.Composition[q]) != ncomp {
			return chk.Err("point %d has %d compositional fields but model needs %d", q, len(in.Composition[q]), ncomp)
		}
	}
	return nil
}

// New returns a new material model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'material' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

