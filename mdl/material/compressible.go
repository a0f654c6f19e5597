// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Compressible implements a model with linear compressibility and linear thermal expansion
//
//   ρ(p,T) = R0・(1 + C・(p - P0))・(1 - α・(T - T0))   thus   (1/ρ)・∂ρ/∂p = C / (1 + C・(p - P0))
//
//  Viscosity is constant and only set when the strain rate is given
type Compressible struct {

	// parameters
	R0  float64 // density corresponding to (P0,T0)
	P0  float64 // reference pressure
	T0  float64 // reference temperature
	C   float64 // compressibility coefficient
	Alp float64 // thermal expansion coefficient α
	Cp  float64 // specific heat capacity
	K   float64 // thermal conductivity
	Eta float64 // viscosity

	// auxiliary
	ndim  int // space dimension
	ncomp int // number of compositional fields
}

// add model to factory
func init() {
	allocators["compressible"] = func() Model { return new(Compressible) }
}

// Init initialises model
func (o *Compressible) Init(ndim, ncomp int, prms dbf.Params) (err error) {
	*o = Compressible{ndim: ndim, ncomp: ncomp}
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "r0":
			o.R0 = p.V
		case "p0":
			o.P0 = p.V
		case "t0":
			o.T0 = p.V
		case "c":
			o.C = p.V
		case "alp":
			o.Alp = p.V
		case "cp":
			o.Cp = p.V
		case "k":
			o.K = p.V
		case "eta":
			o.Eta = p.V
		default:
			return chk.Err("compressible: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.R0 <= 0 {
		return chk.Err("compressible: reference density must be positive. R0=%g is incorrect\n", o.R0)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Compressible) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "R0", V: 3300},  // [kg/m³]
			&dbf.P{N: "P0", V: 0},     // [Pa]
			&dbf.P{N: "T0", V: 293},   // [K]
			&dbf.P{N: "C", V: 4e-12},  // [1/Pa]
			&dbf.P{N: "alp", V: 2e-5}, // [1/K]
			&dbf.P{N: "cp", V: 1250},  // [J/(kg・K)]
			&dbf.P{N: "k", V: 4.7},    // [W/(m・K)]
			&dbf.P{N: "eta", V: 1e21}, // [Pa・s]
		}
	}
	return dbf.Params{
		&dbf.P{N: "R0", V: o.R0},
		&dbf.P{N: "P0", V: o.P0},
		&dbf.P{N: "T0", V: o.T0},
		&dbf.P{N: "C", V: o.C},
		&dbf.P{N: "alp", V: o.Alp},
		&dbf.P{N: "cp", V: o.Cp},
		&dbf.P{N: "k", V: o.K},
		&dbf.P{N: "eta", V: o.Eta},
	}
}

// Evaluate computes properties for the whole batch
func (o *Compressible) Evaluate(in *Inputs, out *Outputs) (err error) {
	err = CheckSizes(in, out, o.ndim, o.ncomp)
	if err != nil {
		return
	}
	for q := 0; q < in.Npoints(); q++ {
		p, T := in.Pressure[q], in.Temperature[q]
		if T <= 0 {
			return chk.Err("compressible: temperature at point %d is non-physical. T=%g", q, T)
		}
		m := 1.0 + o.C*(p-o.P0)
		if m <= 0 {
			return chk.Err("compressible: pressure at point %d yields a non-positive density. p=%g", q, p)
		}
		out.Densities[q] = o.R0 * m * (1.0 - o.Alp*(T-o.T0))
		out.Compressibilities[q] = o.C / m
		out.ThermalExpansion[q] = o.Alp
		out.SpecificHeat[q] = o.Cp
		out.ThermalConductivity[q] = o.K
		if in.NeedsViscosity() {
			out.Viscosities[q] = o.Eta
		}
	}
	return
}
