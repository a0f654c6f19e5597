// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/cpmech/gosl/chk"

// IpsMap holds results @ evaluation points of one cell. Keys are postprocessor names
type IpsMap map[string][]float64

// Set stores the value of key @ evaluation point idx. The slice of key is allocated with npts
// entries on first use; afterwards npts must match its length
//  Note: an out-of-range idx or a different npts is an error of the caller and causes a panic
func (o IpsMap) Set(key string, idx, npts int, val float64) {
	if idx < 0 || idx >= npts {
		chk.Panic("index of evaluation point %d of %q is out of range [0,%d)", idx, key, npts)
	}
	slice, ok := o[key]
	if !ok {
		slice = make([]float64, npts)
		o[key] = slice
	}
	if len(slice) != npts {
		chk.Panic("%q holds %d evaluation points. npts=%d is invalid", key, len(slice), npts)
	}
	slice[idx] = val
}

// Get returns item corresponding to 'key' and evaluation point 'idx'
//  Note: this function returns 0 if 'key' is not found. It also does not check for out-of-bound errors
func (o IpsMap) Get(key string, idx int) float64 {
	if slice, ok := o[key]; ok {
		return slice[idx]
	}
	return 0
}

// SetAll replaces the slice of key by the single-scalar computed quantities
func (o IpsMap) SetAll(key string, computed [][]float64) {
	for q, c := range computed {
		if len(c) != 1 {
			chk.Panic("computed quantity %q at point %d must hold exactly one scalar. len=%d is invalid", key, q, len(c))
		}
	}
	delete(o, key)
	for q, c := range computed {
		o.Set(key, q, len(computed), c[0])
	}
}
