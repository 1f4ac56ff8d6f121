// Copyright 2026 Tensoralg. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package sdd

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tensoralg/sdd/tensor"
)

// Expand reconstructs the full outer-product tensor of the mode vectors:
// the entry at (i1, ..., in) is xs[0][i1] * xs[1][i2] * ... * xs[n-1][in].
//
// The product is built incrementally: the flat accumulator starts as
// xs[0], and each step outer-products it with the next mode vector. The
// row-major flattening of that outer product is exactly the row-major
// layout of the growing tensor, so the final slice reshapes directly
// into the full shape.
func Expand(xs [][]float64) *tensor.Tensor {
	if len(xs) == 0 {
		panic("sdd: expand needs at least one mode vector")
	}
	shape := make(tensor.Shape, len(xs))
	for j, x := range xs {
		if len(x) == 0 {
			panic(fmt.Sprintf("sdd: mode %d vector is empty", j))
		}
		shape[j] = len(x)
	}

	flat := make([]float64, len(xs[0]))
	copy(flat, xs[0])
	for j := 1; j < len(xs); j++ {
		var outer mat.Dense
		outer.Outer(1, mat.NewVecDense(len(flat), flat), mat.NewVecDense(len(xs[j]), xs[j]))
		flat = outer.RawMatrix().Data
	}

	return tensor.New(flat, shape)
}
