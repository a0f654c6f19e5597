// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Simple implements an incompressible model with linear thermal expansion
//
//   ρ = ρ0・(1 - α・(T - T0))  +  Δρ・c0
//
//   η = η0・exp(-β・(T - T0)/T0)・ηc^c0     (only when the strain rate is given)
//
//  where c0 is the first compositional field, if any
type Simple struct {

	// parameters
	Rho0 float64 // reference density
	T0   float64 // reference temperature
	Alp  float64 // thermal expansion coefficient α
	Cp   float64 // specific heat capacity
	K    float64 // thermal conductivity
	Eta0 float64 // reference viscosity
	Beta float64 // thermal viscosity exponent β
	EtaC float64 // compositional viscosity prefactor ηc
	DRho float64 // compositional density differential Δρ

	// auxiliary
	ndim  int // space dimension
	ncomp int // number of compositional fields
}

// add model to factory
func init() {
	allocators["simple"] = func() Model { return new(Simple) }
}

// Init initialises model
func (o *Simple) Init(ndim, ncomp int, prms dbf.Params) (err error) {
	*o = Simple{ndim: ndim, ncomp: ncomp, EtaC: 1}
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "rho0":
			o.Rho0 = p.V
		case "t0":
			o.T0 = p.V
		case "alp":
			o.Alp = p.V
		case "cp":
			o.Cp = p.V
		case "k":
			o.K = p.V
		case "eta0":
			o.Eta0 = p.V
		case "beta":
			o.Beta = p.V
		case "etac":
			o.EtaC = p.V
		case "drho":
			o.DRho = p.V
		default:
			return chk.Err("simple: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Rho0 <= 0 {
		return chk.Err("simple: reference density must be positive. rho0=%g is incorrect\n", o.Rho0)
	}
	if o.T0 <= 0 {
		return chk.Err("simple: reference temperature must be positive. T0=%g is incorrect\n", o.T0)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Simple) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rho0", V: 3300}, // [kg/m³]
			&dbf.P{N: "T0", V: 293},    // [K]
			&dbf.P{N: "alp", V: 2e-5},  // [1/K]
			&dbf.P{N: "cp", V: 1250},   // [J/(kg・K)]
			&dbf.P{N: "k", V: 4.7},     // [W/(m・K)]
			&dbf.P{N: "eta0", V: 5e24}, // [Pa・s]
			&dbf.P{N: "beta", V: 0},    // [-]
			&dbf.P{N: "etac", V: 1},    // [-]
			&dbf.P{N: "drho", V: 0},    // [kg/m³]
		}
	}
	return dbf.Params{
		&dbf.P{N: "rho0", V: o.Rho0},
		&dbf.P{N: "T0", V: o.T0},
		&dbf.P{N: "alp", V: o.Alp},
		&dbf.P{N: "cp", V: o.Cp},
		&dbf.P{N: "k", V: o.K},
		&dbf.P{N: "eta0", V: o.Eta0},
		&dbf.P{N: "beta", V: o.Beta},
		&dbf.P{N: "etac", V: o.EtaC},
		&dbf.P{N: "drho", V: o.DRho},
	}
}

// Evaluate computes properties for the whole batch
func (o *Simple) Evaluate(in *Inputs, out *Outputs) (err error) {
	err = CheckSizes(in, out, o.ndim, o.ncomp)
	if err != nil {
		return
	}
	for q := 0; q < in.Npoints(); q++ {
		T := in.Temperature[q]
		if T <= 0 {
			return chk.Err("simple: temperature at point %d is non-physical. T=%g", q, T)
		}
		out.Densities[q] = o.Rho0 * (1.0 - o.Alp*(T-o.T0))
		if o.ncomp > 0 {
			out.Densities[q] += o.DRho * in.Composition[q][0]
		}
		out.ThermalExpansion[q] = o.Alp
		out.SpecificHeat[q] = o.Cp
		out.ThermalConductivity[q] = o.K
		out.Compressibilities[q] = 0
		if in.NeedsViscosity() {
			out.Viscosities[q] = o.viscosity(T, in.Composition[q])
		}
	}
	return
}

// viscosity computes η(T,c)
func (o Simple) viscosity(T float64, c []float64) (eta float64) {
	eta = o.Eta0
	if o.Beta != 0 {
		eta *= math.Exp(-o.Beta * (T - o.T0) / o.T0)
	}
	if o.EtaC != 1 && len(c) > 0 {
		eta *= math.Pow(o.EtaC, math.Max(0, math.Min(1, c[0])))
	}
	return
}
