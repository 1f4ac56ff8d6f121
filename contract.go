// Copyright 2026 Tensoralg. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package sdd

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tensoralg/sdd/internal/parallel"
	"github.com/tensoralg/sdd/tensor"
)

// Contract computes the full inner product of t with the outer product of
// the mode vectors xs: <t, xs[0] ∘ xs[1] ∘ ... ∘ xs[n-1]>.
//
// Modes are collapsed one at a time from the last to the first: at each
// step the remaining row-major data is viewed as a matrix with the
// current mode as columns and right-multiplied by that mode's vector,
// reducing the order by one until a scalar remains.
func Contract(t *tensor.Tensor, xs [][]float64) float64 {
	checkModeVectors(t.Shape(), xs)
	return collapse(t.Data(), t.Shape(), xs)
}

// ContractExcept contracts every slice of t fixed along mode idx with the
// mode vectors of all other modes. The i-th entry of the result is the
// full contraction of the slice at index i along mode idx, so the result
// has length t.Shape()[idx].
//
// Slices are independent of one another; with cfg enabled they are
// contracted in parallel. Each slice's arithmetic is internal to that
// slice, so parallel and sequential runs produce identical results.
func ContractExcept(t *tensor.Tensor, xs [][]float64, idx int, cfg parallel.Config) []float64 {
	shape := t.Shape()
	checkModeVectors(shape, xs)
	if idx < 0 || idx >= len(shape) {
		panic(fmt.Sprintf("sdd: mode %d out of range for order-%d tensor", idx, len(shape)))
	}

	m := shape[idx]
	inner := 1
	for j := idx + 1; j < len(shape); j++ {
		inner *= shape[j]
	}
	outer := 1
	for j := 0; j < idx; j++ {
		outer *= shape[j]
	}

	restShape := shape.Without(idx)
	restVecs := make([][]float64, 0, len(xs)-1)
	restVecs = append(restVecs, xs[:idx]...)
	restVecs = append(restVecs, xs[idx+1:]...)

	data := t.Data()
	out := make([]float64, m)
	parallel.For(m, func(i int) {
		// Gather the slice at index i along mode idx: for each outer
		// block, one contiguous run of `inner` elements.
		buf := make([]float64, outer*inner)
		for a := 0; a < outer; a++ {
			src := (a*m + i) * inner
			copy(buf[a*inner:(a+1)*inner], data[src:src+inner])
		}
		out[i] = collapse(buf, restShape, restVecs)
	}, cfg)
	return out
}

// collapse reduces flat row-major data of the given shape to a scalar by
// right-multiplying with each mode vector, last mode first. The input
// slices are not modified.
func collapse(data []float64, shape tensor.Shape, xs [][]float64) float64 {
	cur := data
	for j := len(shape) - 1; j >= 0; j-- {
		mj := shape[j]
		rows := len(cur) / mj
		a := mat.NewDense(rows, mj, cur)
		dst := mat.NewVecDense(rows, nil)
		dst.MulVec(a, mat.NewVecDense(mj, xs[j]))
		cur = dst.RawVector().Data
	}
	return cur[0]
}

func checkModeVectors(shape tensor.Shape, xs [][]float64) {
	if len(xs) != len(shape) {
		panic(fmt.Sprintf("sdd: %d mode vectors for order-%d tensor", len(xs), len(shape)))
	}
	for j, x := range xs {
		if len(x) != shape[j] {
			panic(fmt.Sprintf("sdd: mode %d vector has length %d, extent is %d", j, len(x), shape[j]))
		}
	}
}
