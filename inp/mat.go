// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/joeschools/aspect/mdl/material"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Model string     `json:"model"` // name of model; e.g. "simple", "compressible", "multicomponent"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Mdl material.Model // pointer to actual material model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// ReadMat reads all materials data from a .mat JSON file. Each model is allocated and initialised
//  Input:
//   dir, fn -- directory and filename
//   ndim    -- space dimension
//   nfields -- number of compositional fields
func ReadMat(dir, fn string, ndim, nfields int) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("ReadMat: cannot unmarshal materials file %q:\n%v", fn, err)
	}

	// alloc/init
	names := make(map[string]bool)
	for _, m := range mdb.Materials {
		if names[m.Name] {
			return nil, chk.Err("ReadMat: material named %q is repeated", m.Name)
		}
		names[m.Name] = true
		m.Mdl, err = material.New(m.Model)
		if err != nil {
			return nil, chk.Err("ReadMat: material %q:\n%v", m.Name, err)
		}
		err = m.Mdl.Init(ndim, nfields, m.Prms)
		if err != nil {
			return nil, chk.Err("ReadMat: cannot initialise model of material %q:\n%v", m.Name, err)
		}
	}
	return
}

// Get returns material by name or nil if not found
func (o MatDb) Get(name string) *Material {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}
