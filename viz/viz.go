// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package viz implements visualization postprocessors computing derived scalar fields
// (density, viscosity, etc.) at evaluation points from the solution sampled there
package viz

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/joeschools/aspect/inp"
	"github.com/joeschools/aspect/mdl/material"
)

// UpdateFlags tells the caller which data must be computed at evaluation points
type UpdateFlags int

// update flags
const (
	UpdateValues    UpdateFlags = 1 << iota // solution values
	UpdateQPoints                           // coordinates of evaluation points
	UpdateGradients                         // solution gradients
)

// Has tells whether all flags in f are set in o
func (o UpdateFlags) Has(f UpdateFlags) bool {
	return o&f == f
}

// String returns the names of flags; e.g. "values|q_points"
func (o UpdateFlags) String() string {
	var keys []string
	if o.Has(UpdateValues) {
		keys = append(keys, "values")
	}
	if o.Has(UpdateQPoints) {
		keys = append(keys, "q_points")
	}
	if o.Has(UpdateGradients) {
		keys = append(keys, "gradients")
	}
	if len(keys) == 0 {
		return "none"
	}
	return strings.Join(keys, "|")
}

// Data holds the solution sampled at a batch of evaluation points; e.g. all quadrature points of a cell
type Data struct {
	Values    [][]float64   // [npts][ncomp] solution values
	Gradients [][][]float64 // [npts][ncomp][ndim] solution gradients
	Points    [][]float64   // [npts][ndim] coordinates of evaluation points
}

// Npoints returns the number of evaluation points
func (o *Data) Npoints() int {
	return len(o.Values)
}

// Postprocessor defines visualization postprocessors computing one scalar per evaluation point
type Postprocessor interface {
	Name() string                                  // name of output field; e.g. "density"
	Flags() UpdateFlags                            // data required at evaluation points
	Evaluate(d *Data, computed [][]float64) error // computes quantities. computed[q] holds one scalar
}

// Env holds the configuration shared by all postprocessors during a run. It is read-only
type Env struct {
	Layout *inp.Layout    // layout of solution components
	Model  material.Model // material model
}

// NewEnv returns a new environment
func NewEnv(lay *inp.Layout, mdl material.Model) *Env {
	if lay == nil || mdl == nil {
		chk.Panic("layout and material model are required by postprocessors environment")
	}
	return &Env{Layout: lay, Model: mdl}
}
