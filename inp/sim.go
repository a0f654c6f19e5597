// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.mat) JSON files, and the
// layout of solution components at evaluation points
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path (relative to the .sim file)
	Batches string `json:"batches"` // file with batches of evaluation points (relative to the .sim file)
}

// Simulation holds all simulation data needed to evaluate derived fields
type Simulation struct {

	// input
	Data      Data     `json:"data"`      // global data
	Ndim      int      `json:"ndim"`      // space dimension
	Nfields   int      `json:"nfields"`   // number of compositional fields
	CompNames []string `json:"compnames"` // [optional] names of compositional fields
	Material  string   `json:"material"`  // name of material (model) in materials file
	Postprocs []string `json:"postprocs"` // names of postprocessors to run; e.g. "density"
	Layout    *Layout  `json:"layout"`    // [optional] layout of solution components. default: see NewLayout

	// derived
	DirIn string    // directory of .sim file
	Key   string    // simulation key; e.g. mysim01.sim => mysim01
	MatDb *MatDb    // materials database
	Mat   *Material // selected material
}

// ReadSim reads all simulation data from a .sim JSON file. The materials file is also read
// and the selected material model is initialised
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	o.DirIn = os.ExpandEnv(filepath.Dir(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// layout
	err = o.SetLayout()
	if err != nil {
		return nil, chk.Err("ReadSim: %q:\n%v", simfilepath, err)
	}

	// postprocessors
	if len(o.Postprocs) == 0 {
		o.Postprocs = []string{"density"}
	}

	// materials
	if o.Data.Matfile == "" {
		return nil, chk.Err("ReadSim: %q: materials file must be given in \"data\"", simfilepath)
	}
	o.MatDb, err = ReadMat(o.DirIn, o.Data.Matfile, o.Ndim, o.Nfields)
	if err != nil {
		return nil, chk.Err("ReadSim: %q:\n%v", simfilepath, err)
	}
	o.Mat = o.MatDb.Get(o.Material)
	if o.Mat == nil {
		return nil, chk.Err("ReadSim: %q: cannot find material named %q in %q", simfilepath, o.Material, o.Data.Matfile)
	}
	return
}

// SetLayout sets the standard layout if none was given; otherwise checks the given one
func (o *Simulation) SetLayout() (err error) {
	if o.Layout == nil {
		if o.Ndim < 1 || o.Ndim > 3 {
			return chk.Err("space dimension must be 1, 2 or 3. ndim=%d is invalid", o.Ndim)
		}
		if len(o.CompNames) > 0 && len(o.CompNames) != o.Nfields {
			return chk.Err("number of names of compositional fields (%d) must be equal to nfields (%d)", len(o.CompNames), o.Nfields)
		}
		o.Layout = NewLayout(o.Ndim, o.Nfields, o.CompNames...)
		return
	}
	if o.Ndim == 0 {
		o.Ndim = o.Layout.Ndim
	}
	if o.Layout.Ndim != o.Ndim {
		return chk.Err("ndim of layout (%d) must be equal to ndim of simulation (%d)", o.Layout.Ndim, o.Ndim)
	}
	if o.Layout.Nfields() != o.Nfields {
		return chk.Err("number of compositional fields in layout (%d) must be equal to nfields (%d)", o.Layout.Nfields(), o.Nfields)
	}
	return o.Layout.Check()
}

// BatchesPath returns the full path of the file with batches of evaluation points
func (o *Simulation) BatchesPath() string {
	if o.Data.Batches == "" {
		return ""
	}
	return filepath.Join(o.DirIn, o.Data.Batches)
}
