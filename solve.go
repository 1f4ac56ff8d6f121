// Copyright 2026 Tensoralg. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package sdd

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// solveMode maximizes (x'*s)^2 / (x'*x) over x in {-1,0,+1}^m for the
// score vector s: each entry takes the sign of its score, scores are
// ranked by magnitude, and the prefix length with the best objective
// determines how many entries stay nonzero.
//
// Returns the solved vector x, the number of retained nonzeros imax, and
// the achieved objective value fmax.
//
// The magnitude ranking uses a stable sort, so equal magnitudes keep
// their original index order. The objective scan compares with >=, so on
// a tie the longer prefix wins; both rules are observable in the output
// and kept fixed for reproducibility.
func solveMode(s []float64) (x []float64, imax int, fmax float64) {
	m := len(s)
	x = make([]float64, m)
	abs := make([]float64, m)
	for i, v := range s {
		if v < 0 {
			x[i] = -1
			abs[i] = -v
		} else {
			x[i] = 1
			abs[i] = v
		}
	}

	perm := make([]int, m)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return abs[perm[a]] > abs[perm[b]]
	})

	f := make([]float64, m)
	for i, p := range perm {
		f[i] = abs[p]
	}
	floats.CumSum(f, f)

	for i, sum := range f {
		obj := sum * sum / float64(i+1)
		if obj >= fmax {
			fmax = obj
			imax = i + 1
		}
	}

	// Entries ranked below the winning prefix are dropped.
	for _, p := range perm[imax:] {
		x[p] = 0
	}
	return x, imax, fmax
}
