// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the evaluation of visualization postprocessors over all cells of
// a domain and the handling of their results
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/joeschools/aspect/inp"
	"github.com/joeschools/aspect/viz"
	"gonum.org/v1/gonum/floats"
)

// Cell holds the solution sampled at the evaluation points of one cell
type Cell struct {
	Id   int       // cell id
	Data *viz.Data // solution at evaluation points
}

// Results maps cell ids to results @ evaluation points
type Results map[int]IpsMap

// CellsFromBatches converts batches read from file into cells
func CellsFromBatches(batches []*inp.Batch) (cells []*Cell) {
	cells = make([]*Cell, len(batches))
	for i, b := range batches {
		cells[i] = &Cell{Id: b.Id, Data: &viz.Data{Values: b.Values, Gradients: b.Gradients, Points: b.Points}}
	}
	return
}

// AllocPostprocs allocates postprocessors by name from registry
func AllocPostprocs(reg *viz.Registry, env *viz.Env, names []string) (procs []viz.Postprocessor, err error) {
	for _, name := range names {
		pp, err := reg.New(name, env)
		if err != nil {
			return nil, err
		}
		procs = append(procs, pp)
	}
	return
}

// RequiredFlags returns the union of update flags of all postprocessors
func RequiredFlags(procs []viz.Postprocessor) (flags viz.UpdateFlags) {
	for _, pp := range procs {
		flags |= pp.Flags()
	}
	return
}

// Collect runs all postprocessors on all cells
//  Input:
//   procs    -- postprocessors
//   cells    -- cells with solution at evaluation points
//   nworkers -- number of go-routines evaluating cells concurrently. <= 1 means serial
//  Note: the first error (in cells' order) aborts the pass and no results are returned
func Collect(procs []viz.Postprocessor, cells []*Cell, nworkers int) (res Results, err error) {

	maps := make([]IpsMap, len(cells))
	errs := make([]error, len(cells))

	// serial
	if nworkers <= 1 || len(cells) < 2 {
		for i, cell := range cells {
			maps[i], errs[i] = evalCell(procs, cell)
			if errs[i] != nil {
				break
			}
		}
	} else {

		// run cells in chunks
		if nworkers > len(cells) {
			nworkers = len(cells)
		}
		done := make(chan int, nworkers)
		for w := 0; w < nworkers; w++ {
			go func(w int) {
				for i := w; i < len(cells); i += nworkers {
					maps[i], errs[i] = evalCell(procs, cells[i])
				}
				done <- 1
			}(w)
		}

		// wait
		for w := 0; w < nworkers; w++ {
			<-done
		}
	}

	// results
	res = make(Results)
	for i, cell := range cells {
		if errs[i] != nil {
			return nil, chk.Err("cannot evaluate cell %d:\n%v", cell.Id, errs[i])
		}
		if _, ok := res[cell.Id]; ok {
			return nil, chk.Err("cell id %d is repeated", cell.Id)
		}
		res[cell.Id] = maps[i]
	}
	if chk.Verbose {
		io.Pfgrey("collected %d postprocessors on %d cells\n", len(procs), len(cells))
	}
	return
}

// Summary returns the min, max and mean of key over all evaluation points
func (o Results) Summary(key string) (lo, hi, mean float64, npts int) {
	var all []float64
	for _, M := range o {
		all = append(all, M[key]...)
	}
	npts = len(all)
	if npts == 0 {
		return
	}
	return floats.Min(all), floats.Max(all), floats.Sum(all) / float64(npts), npts
}

// evalCell runs all postprocessors on one cell
func evalCell(procs []viz.Postprocessor, cell *Cell) (M IpsMap, err error) {
	M = make(IpsMap)
	npts := cell.Data.Npoints()
	for _, pp := range procs {
		computed := viz.AllocScalars(npts)
		err = pp.Evaluate(cell.Data, computed)
		if err != nil {
			return nil, chk.Err("%s:\n%v", pp.Name(), err)
		}
		M.SetAll(pp.Name(), computed)
	}
	return
}
