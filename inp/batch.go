// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
)

// Batch holds the solution sampled at the evaluation points of one cell
type Batch struct {
	Id        int           `json:"id"`        // cell id
	Values    [][]float64   `json:"values"`    // [nqp][ncomp] solution values
	Gradients [][][]float64 `json:"gradients"` // [nqp][ncomp][ndim] solution gradients
	Points    [][]float64   `json:"points"`    // [nqp][ndim] coordinates of evaluation points
}

// ReadBatches reads batches of evaluation points from a JSON file
//  Example:
//   {"batches" : [ {"id":0, "values":[[...]], "gradients":[[[...]]], "points":[[...]]} ]}
func ReadBatches(fnpath string) (batches []*Batch, err error) {
	b, err := os.ReadFile(fnpath)
	if err != nil {
		return nil, chk.Err("ReadBatches: cannot read file %q:\n%v", fnpath, err)
	}
	var dat struct {
		Batches []*Batch `json:"batches"`
	}
	err = json.Unmarshal(b, &dat)
	if err != nil {
		return nil, chk.Err("ReadBatches: cannot unmarshal file %q:\n%v", fnpath, err)
	}
	return dat.Batches, nil
}
