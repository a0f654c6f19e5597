// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"bytes"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Allocator defines a function that allocates a postprocessor
type Allocator func(env *Env) Postprocessor

// Registry holds all available postprocessors. It must be filled during start up and
// frozen afterwards; after Freeze, it is read-only and may be shared
type Registry struct {
	descs      map[string]string    // maps names to descriptions
	allocators map[string]Allocator // maps names to allocators
	frozen     bool                 // no more registrations allowed
}

// NewRegistry returns a new empty registry
func NewRegistry() *Registry {
	return &Registry{
		descs:      make(map[string]string),
		allocators: make(map[string]Allocator),
	}
}

// Register sets a new postprocessor allocator
func (o *Registry) Register(name, desc string, fcn Allocator) {
	if o.frozen {
		chk.Panic("cannot register postprocessor %q because registry is frozen", name)
	}
	if name == "" || fcn == nil {
		chk.Panic("cannot register postprocessor without name or allocator. name=%q", name)
	}
	if _, ok := o.allocators[name]; ok {
		chk.Panic("cannot register postprocessor %q because name exists already", name)
	}
	o.descs[name] = desc
	o.allocators[name] = fcn
}

// Freeze prevents further registrations
func (o *Registry) Freeze() {
	o.frozen = true
}

// Frozen tells whether the registry is read-only
func (o *Registry) Frozen() bool {
	return o.frozen
}

// Names returns the sorted names of all postprocessors
func (o *Registry) Names() (names []string) {
	for name := range o.allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Description returns the description of postprocessor or "" if not found
func (o *Registry) Description(name string) string {
	return o.descs[name]
}

// New allocates a new postprocessor
func (o *Registry) New(name string, env *Env) (pp Postprocessor, err error) {
	fcn, ok := o.allocators[name]
	if !ok {
		return nil, chk.Err("postprocessor %q is not available in registry", name)
	}
	return fcn(env), nil
}

// String returns a listing of postprocessors with their descriptions
func (o *Registry) String() string {
	var buf bytes.Buffer
	for _, name := range o.Names() {
		io.Ff(&buf, "%-22s %s\n", name, o.descs[name])
	}
	return buf.String()
}

// RegisterAll registers all postprocessors implemented in this package
func RegisterAll(reg *Registry) {
	reg.Register("density", "A visualization output object that generates output for the density.",
		func(env *Env) Postprocessor { return NewDensity(env) })
	reg.Register("viscosity", "A visualization output object that generates output for the viscosity.",
		func(env *Env) Postprocessor { return NewViscosity(env) })
	reg.Register("thermal_expansivity", "A visualization output object that generates output for the thermal expansion coefficient.",
		func(env *Env) Postprocessor { return NewThermalExpansivity(env) })
	reg.Register("specific_heat", "A visualization output object that generates output for the specific heat capacity.",
		func(env *Env) Postprocessor { return NewSpecificHeat(env) })
	reg.Register("thermal_conductivity", "A visualization output object that generates output for the thermal conductivity.",
		func(env *Env) Postprocessor { return NewThermalConductivity(env) })
	reg.Register("compressibility", "A visualization output object that generates output for the compressibility.",
		func(env *Env) Postprocessor { return NewCompressibility(env) })
}

// DefaultRegistry returns a frozen registry with all postprocessors implemented in this package
func DefaultRegistry() (reg *Registry) {
	reg = NewRegistry()
	RegisterAll(reg)
	reg.Freeze()
	return
}
