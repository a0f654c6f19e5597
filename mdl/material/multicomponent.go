// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// Multicomponent implements a mixture of a background material and one material per
// compositional field. Volume fractions are x_i = clamp(c_i, 0, 1); if Σx_i > 1 they are
// normalised and the background vanishes. Then:
//
//   ρ = x_b・ρ_b + Σ x_i・ρ_i     η = x_b・η_b + Σ x_i・η_i
//
//  with x_b = 1 - Σx_i. Viscosity is only computed when the strain rate is given
type Multicomponent struct {

	// parameters
	RhoB float64   // background density
	EtaB float64   // background viscosity
	Rhos []float64 // [ncomp] density of each compositional field
	Etas []float64 // [ncomp] viscosity of each compositional field
	Alp  float64   // thermal expansion coefficient (all materials)
	Cp   float64   // specific heat capacity (all materials)
	K    float64   // thermal conductivity (all materials)

	// auxiliary
	ndim  int // space dimension
	ncomp int // number of compositional fields
}

// add model to factory
func init() {
	allocators["multicomponent"] = func() Model { return new(Multicomponent) }
}

// Init initialises model
//  Note: densities and viscosities of compositional fields are given by "rho0", "rho1", ...
//        and "eta0", "eta1", ... respectively
func (o *Multicomponent) Init(ndim, ncomp int, prms dbf.Params) (err error) {
	*o = Multicomponent{ndim: ndim, ncomp: ncomp, Rhos: make([]float64, ncomp), Etas: make([]float64, ncomp)}
	found := make([]bool, ncomp)
	for _, p := range prms {
		key := strings.ToLower(p.N)
		switch key {
		case "rhob":
			o.RhoB = p.V
		case "etab":
			o.EtaB = p.V
		case "alp":
			o.Alp = p.V
		case "cp":
			o.Cp = p.V
		case "k":
			o.K = p.V
		default:
			i, isrho, ok := fieldIndex(key)
			if !ok || i >= ncomp {
				return chk.Err("multicomponent: parameter named %q is incorrect\n", p.N)
			}
			if isrho {
				o.Rhos[i] = p.V
				found[i] = true
			} else {
				o.Etas[i] = p.V
			}
		}
	}
	for i, ok := range found {
		if !ok {
			return chk.Err("multicomponent: density of compositional field %d must be given with \"rho%d\"\n", i, i)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Multicomponent) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rhob", V: 3300}, // [kg/m³]
			&dbf.P{N: "etab", V: 1e21}, // [Pa・s]
			&dbf.P{N: "rho0", V: 3000}, // [kg/m³]
			&dbf.P{N: "eta0", V: 1e23}, // [Pa・s]
			&dbf.P{N: "alp", V: 2e-5},  // [1/K]
			&dbf.P{N: "cp", V: 1250},   // [J/(kg・K)]
			&dbf.P{N: "k", V: 4.7},     // [W/(m・K)]
		}
	}
	prms := dbf.Params{
		&dbf.P{N: "rhob", V: o.RhoB},
		&dbf.P{N: "etab", V: o.EtaB},
	}
	for i := 0; i < len(o.Rhos); i++ {
		prms = append(prms, &dbf.P{N: io.Sf("rho%d", i), V: o.Rhos[i]})
		prms = append(prms, &dbf.P{N: io.Sf("eta%d", i), V: o.Etas[i]})
	}
	return append(prms,
		&dbf.P{N: "alp", V: o.Alp},
		&dbf.P{N: "cp", V: o.Cp},
		&dbf.P{N: "k", V: o.K},
	)
}

// Evaluate computes properties for the whole batch
func (o *Multicomponent) Evaluate(in *Inputs, out *Outputs) (err error) {
	err = CheckSizes(in, out, o.ndim, o.ncomp)
	if err != nil {
		return
	}
	x := make([]float64, o.ncomp)
	for q := 0; q < in.Npoints(); q++ {
		xb := o.fractions(x, in.Composition[q])
		out.Densities[q] = xb*o.RhoB + floats.Dot(x, o.Rhos)
		out.ThermalExpansion[q] = o.Alp
		out.SpecificHeat[q] = o.Cp
		out.ThermalConductivity[q] = o.K
		out.Compressibilities[q] = 0
		if in.NeedsViscosity() {
			out.Viscosities[q] = xb*o.EtaB + floats.Dot(x, o.Etas)
		}
	}
	return
}

// fractions computes the volume fractions x of each field and returns the background fraction
func (o Multicomponent) fractions(x, c []float64) (xb float64) {
	for i, ci := range c {
		x[i] = math.Max(0, math.Min(1, ci))
	}
	sum := floats.Sum(x)
	if sum > 1 {
		floats.Scale(1.0/sum, x)
		return 0
	}
	return 1.0 - sum
}

// fieldIndex parses keys such as "rho2" or "eta0"
func fieldIndex(key string) (idx int, isrho, ok bool) {
	var num string
	switch {
	case strings.HasPrefix(key, "rho"):
		isrho, num = true, key[3:]
	case strings.HasPrefix(key, "eta"):
		num = key[3:]
	default:
		return
	}
	idx, err := strconv.Atoi(num)
	if err != nil || idx < 0 {
		return 0, false, false
	}
	return idx, isrho, true
}
