// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"github.com/cpmech/gosl/chk"
	"github.com/joeschools/aspect/inp"
	"github.com/joeschools/aspect/mdl/material"
)

// BuildInputs assembles the inputs of material models from the solution at evaluation points
//  Input:
//   lay        -- layout of solution components
//   d          -- solution at evaluation points
//   withStrain -- compute the strain rate. otherwise in.StrainRate is empty, telling the
//                 material model that viscosity is not needed
//  Note: inconsistent sizes are programming errors of the caller and cause a panic
func BuildInputs(lay *inp.Layout, d *Data, withStrain bool) (in *material.Inputs) {

	// check sizes
	n, ndim, nfields := d.Npoints(), lay.Ndim, lay.Nfields()
	checkData(lay, d, withStrain)

	// allocate
	in = material.NewInputs(n, ndim, nfields, withStrain)

	// positions
	for q := 0; q < len(d.Points); q++ {
		copy(in.Position[q], d.Points[q])
	}

	// state
	p := lay.Index(inp.Pressure, 0)
	T := lay.Index(inp.Temperature, 0)
	for q := 0; q < n; q++ {
		in.Pressure[q] = d.Values[q][p]
		in.Temperature[q] = d.Values[q][T]
		for i := 0; i < ndim; i++ {
			in.Velocity[q][i] = d.Values[q][lay.Index(inp.Velocity, i)]
			in.PressureGradient[q][i] = d.Gradients[q][p][i]
		}
		for c := 0; c < nfields; c++ {
			in.Composition[q][c] = d.Values[q][lay.Index(inp.Composition, c)]
		}
	}

	// strain rate: ε = ½ (∇v + ∇vᵀ)
	if withStrain {
		for q := 0; q < n; q++ {
			for i := 0; i < ndim; i++ {
				gi := d.Gradients[q][lay.Index(inp.Velocity, i)]
				for j := 0; j < ndim; j++ {
					gj := d.Gradients[q][lay.Index(inp.Velocity, j)]
					in.StrainRate[q][i*ndim+j] = 0.5 * (gi[j] + gj[i])
				}
			}
		}
	}
	return
}

// checkData checks the sizes of values, gradients and points in d
func checkData(lay *inp.Layout, d *Data, withStrain bool) {
	n, ndim := d.Npoints(), lay.Ndim
	if len(d.Gradients) != n {
		chk.Panic("number of solution gradients (%d) must be equal to the number of solution values (%d)", len(d.Gradients), n)
	}
	if d.Points != nil && len(d.Points) != n {
		chk.Panic("number of evaluation points (%d) must be equal to the number of solution values (%d)", len(d.Points), n)
	}
	p := lay.Index(inp.Pressure, 0)
	for q := 0; q < n; q++ {
		if len(d.Values[q]) != lay.Ncomp {
			chk.Panic("solution values at point %d have %d components but layout has %d", q, len(d.Values[q]), lay.Ncomp)
		}
		if len(d.Gradients[q]) != lay.Ncomp {
			chk.Panic("solution gradients at point %d have %d components but layout has %d", q, len(d.Gradients[q]), lay.Ncomp)
		}
		if len(d.Gradients[q][p]) != ndim {
			chk.Panic("pressure gradient at point %d has %d entries but ndim is %d", q, len(d.Gradients[q][p]), ndim)
		}
		if withStrain {
			for i := 0; i < ndim; i++ {
				if len(d.Gradients[q][lay.Index(inp.Velocity, i)]) != ndim {
					chk.Panic("gradient of velocity component %d at point %d must have %d entries", i, q, ndim)
				}
			}
		}
		if d.Points != nil && len(d.Points[q]) != ndim {
			chk.Panic("coordinates of evaluation point %d have %d entries but ndim is %d", q, len(d.Points[q]), ndim)
		}
	}
}
