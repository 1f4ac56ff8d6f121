// Copyright 2026 Tensoralg. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package sdd

import "github.com/tensoralg/sdd/tensor"

// term holds one refined rank-one component before it is committed:
// the per-mode sign vectors, their nonzero counts, the quality score
// beta, the final mode's subproblem objective f, and the number of
// refinement passes spent.
type term struct {
	vectors [][]float64
	nnz     []int
	beta    float64
	f       float64
	passes  int
}

// extractTerm refines one rank-one term against the current residual by
// block coordinate ascent: starting from all-ones vectors, each pass
// re-solves every mode in order against the contraction of the residual
// with the other modes' current vectors. Updated vectors are used
// immediately within a pass (Gauss-Seidel), and the mode order is fixed,
// so the refinement is fully deterministic.
//
// Refinement stops after o.lmax passes, or earlier once the relative
// improvement of beta falls to o.alphamin or below.
func extractTerm(residual *tensor.Tensor, o *options) term {
	shape := residual.Shape()
	n := len(shape)

	xs := make([][]float64, n)
	for j, mj := range shape {
		x := make([]float64, mj)
		for i := range x {
			x[i] = 1
		}
		xs[j] = x
	}

	nnz := make([]int, n)
	var beta, f float64
	passes := 0

	for l := 1; l <= o.lmax; l++ {
		passes = l
		for j := 0; j < n; j++ {
			s := ContractExcept(residual, xs, j, o.parallel)
			xs[j], nnz[j], f = solveMode(s)
		}

		prod := 1.0
		for _, c := range nnz {
			prod *= float64(c)
		}
		betaNew := f * float64(nnz[n-1]) / prod

		if l > 1 {
			alpha := (betaNew - beta) / beta
			beta = betaNew
			if alpha <= o.alphamin {
				break
			}
		} else {
			beta = betaNew
		}
	}

	return term{vectors: xs, nnz: nnz, beta: beta, f: f, passes: passes}
}
