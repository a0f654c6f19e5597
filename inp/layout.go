// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Quantity defines physical quantities stored in the solution vector
type Quantity int

// quantities
const (
	Pressure Quantity = iota
	Temperature
	Velocity
	Composition
)

// String returns the name of quantity
func (q Quantity) String() string {
	switch q {
	case Pressure:
		return "pressure"
	case Temperature:
		return "temperature"
	case Velocity:
		return "velocity"
	case Composition:
		return "composition"
	}
	return io.Sf("quantity(%d)", int(q))
}

// Layout maps physical quantities to their position in the array of solution components
// at each evaluation point. It is read-only after being built
type Layout struct {
	Ndim         int      `json:"ndim"`         // space dimension
	Ncomp        int      `json:"ncomp"`        // total number of solution components
	Pressure     int      `json:"pressure"`     // index of pressure
	Temperature  int      `json:"temperature"`  // index of temperature
	Velocities   []int    `json:"velocities"`   // [ndim] indices of velocity components
	Compositions []int    `json:"compositions"` // [ncompfields] indices of compositional fields
	Names        []string `json:"names"`        // [ncomp] names of components; e.g. "vx", "p", "T", "c0"
}

// NewLayout returns the standard layout: velocities, pressure, temperature and compositional
// fields, in this order
//  Input:
//   ndim    -- space dimension
//   nfields -- number of compositional fields
//   cnames  -- [optional] names of compositional fields. default: "c0", "c1", ...
func NewLayout(ndim, nfields int, cnames ...string) (o *Layout) {
	if ndim < 1 || ndim > 3 {
		chk.Panic("space dimension must be 1, 2 or 3. ndim=%d is invalid", ndim)
	}
	if len(cnames) > 0 && len(cnames) != nfields {
		chk.Panic("number of names of compositional fields (%d) must be equal to the number of fields (%d)", len(cnames), nfields)
	}
	o = new(Layout)
	o.Ndim = ndim
	o.Ncomp = ndim + 2 + nfields
	o.Velocities = make([]int, ndim)
	for d := 0; d < ndim; d++ {
		o.Velocities[d] = d
		o.Names = append(o.Names, "v"+"xyz"[d:d+1])
	}
	o.Pressure = ndim
	o.Temperature = ndim + 1
	o.Names = append(o.Names, "p", "T")
	o.Compositions = make([]int, nfields)
	for c := 0; c < nfields; c++ {
		o.Compositions[c] = ndim + 2 + c
		if len(cnames) > 0 {
			o.Names = append(o.Names, cnames[c])
		} else {
			o.Names = append(o.Names, io.Sf("c%d", c))
		}
	}
	return
}

// Nfields returns the number of compositional fields
func (o *Layout) Nfields() int {
	return len(o.Compositions)
}

// Index returns the position of quantity in the array of solution components
//  Input:
//   q   -- quantity
//   sub -- velocity axis or compositional field number. ignored for scalars
//  Note: out-of-range sub is a programming error and causes a panic
func (o *Layout) Index(q Quantity, sub int) int {
	switch q {
	case Pressure:
		return o.Pressure
	case Temperature:
		return o.Temperature
	case Velocity:
		if sub < 0 || sub >= len(o.Velocities) {
			chk.Panic("velocity axis %d is out of range [0, %d)", sub, len(o.Velocities))
		}
		return o.Velocities[sub]
	case Composition:
		if sub < 0 || sub >= len(o.Compositions) {
			chk.Panic("compositional field %d is out of range [0, %d)", sub, len(o.Compositions))
		}
		return o.Compositions[sub]
	}
	chk.Panic("cannot find index of unknown %v", q)
	return -1
}

// Check checks whether all indices are in range and unique
func (o *Layout) Check() (err error) {
	if o.Ndim < 1 || o.Ndim > 3 {
		return chk.Err("layout: space dimension must be 1, 2 or 3. ndim=%d is invalid", o.Ndim)
	}
	if len(o.Velocities) != o.Ndim {
		return chk.Err("layout: number of velocity indices (%d) must be equal to ndim (%d)", len(o.Velocities), o.Ndim)
	}
	if len(o.Names) > 0 && len(o.Names) != o.Ncomp {
		return chk.Err("layout: number of names (%d) must be equal to the number of components (%d)", len(o.Names), o.Ncomp)
	}
	used := make(map[int]string)
	check := func(idx int, what string) error {
		if idx < 0 || idx >= o.Ncomp {
			return chk.Err("layout: index %d of %s is out of range [0, %d)", idx, what, o.Ncomp)
		}
		if other, ok := used[idx]; ok {
			return chk.Err("layout: index %d of %s is already used by %s", idx, what, other)
		}
		used[idx] = what
		return nil
	}
	if err = check(o.Pressure, "pressure"); err != nil {
		return
	}
	if err = check(o.Temperature, "temperature"); err != nil {
		return
	}
	for d, idx := range o.Velocities {
		if err = check(idx, io.Sf("velocity[%d]", d)); err != nil {
			return
		}
	}
	for c, idx := range o.Compositions {
		if err = check(idx, io.Sf("composition[%d]", c)); err != nil {
			return
		}
	}
	return
}

// Name returns the name of component with index idx
func (o *Layout) Name(idx int) string {
	if idx >= 0 && idx < len(o.Names) {
		return o.Names[idx]
	}
	return io.Sf("u%d", idx)
}
