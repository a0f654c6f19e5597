// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// WriteScalars sets computed[q][0] = vals[q] for all points. Sizes are checked before
// anything is written
func WriteScalars(computed [][]float64, vals []float64) {
	if len(computed) != len(vals) {
		chk.Panic("number of computed quantities (%d) must be equal to the number of values (%d)", len(computed), len(vals))
	}
	for q := 0; q < len(computed); q++ {
		if len(computed[q]) != 1 {
			chk.Panic("computed quantity at point %d must hold exactly one scalar. len=%d is invalid", q, len(computed[q]))
		}
	}
	for q, v := range vals {
		computed[q][0] = v
	}
}

// AllocScalars allocates n single-scalar output slots
func AllocScalars(n int) [][]float64 {
	return utl.Alloc(n, 1)
}
