// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/joeschools/aspect/inp"
	"github.com/joeschools/aspect/mdl/material"
)

// fakeModel records its inputs and returns densities computed by a callback
type fakeModel struct {
	ncalls int
	last   *material.Inputs
	rho    func(in *material.Inputs, q int) float64
	err    error
}

func (o *fakeModel) Init(ndim, ncomp int, prms dbf.Params) error { return nil }
func (o *fakeModel) GetPrms(example bool) dbf.Params { return nil }

func (o *fakeModel) Evaluate(in *material.Inputs, out *material.Outputs) error {
	o.ncalls++
	o.last = in
	if o.err != nil {
		return o.err
	}
	if out.Npoints() != in.Npoints() {
		return chk.Err("fake: inconsistent batch sizes")
	}
	for q := 0; q < in.Npoints(); q++ {
		out.Densities[q] = o.rho(in, q)
		if in.NeedsViscosity() {
			out.Viscosities[q] = in.StrainRate[q][0]
		}
	}
	return nil
}

// scenarioLayout maps pressure => 0, temperature => 1 and velocity => {2,3}
func scenarioLayout(nfields int) *inp.Layout {
	lay := &inp.Layout{Ndim: 2, Ncomp: 4 + nfields, Pressure: 0, Temperature: 1, Velocities: []int{2, 3}}
	for c := 0; c < nfields; c++ {
		lay.Compositions = append(lay.Compositions, 4+c)
	}
	return lay
}

// newData returns data with values and zero gradients and points
func newData(ndim int, values [][]float64) *Data {
	d := &Data{Values: values}
	for _, v := range values {
		grads := make([][]float64, len(v))
		for i := range grads {
			grads[i] = make([]float64, ndim)
		}
		d.Gradients = append(d.Gradients, grads)
		d.Points = append(d.Points, make([]float64, ndim))
	}
	return d
}
